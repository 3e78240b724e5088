package controller

import (
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
)

func TestApply_IdleToLoading(t *testing.T) {
	cycleID := uuid.Must(uuid.NewV4())

	next := RequestState{}.apply(event{kind: eventSubmitted, cycleID: cycleID})

	assert.Equal(t, RequestState{Status: StatusLoading, CycleID: cycleID}, next)
}

func TestApply_SubmitWhileLoadingIgnored(t *testing.T) {
	loading := RequestState{Status: StatusLoading, CycleID: uuid.Must(uuid.NewV4())}

	next := loading.apply(event{kind: eventSubmitted, cycleID: uuid.Must(uuid.NewV4())})

	assert.Equal(t, loading, next)
}

func TestApply_LoadingToSuccess(t *testing.T) {
	cycleID := uuid.Must(uuid.NewV4())
	loading := RequestState{Status: StatusLoading, CycleID: cycleID}

	next := loading.apply(event{kind: eventSucceeded, cycleID: cycleID, report: "Sample report"})

	assert.Equal(t, StatusSuccess, next.Status)
	assert.Equal(t, "Sample report", next.Report)
	assert.False(t, next.Loading())
}

func TestApply_LoadingToFailure(t *testing.T) {
	cycleID := uuid.Must(uuid.NewV4())
	loading := RequestState{Status: StatusLoading, CycleID: cycleID}

	next := loading.apply(event{kind: eventFailed, cycleID: cycleID, message: "invalid user"})

	assert.Equal(t, StatusFailure, next.Status)
	assert.Equal(t, "invalid user", next.Message)
	assert.Empty(t, next.Report)
}

func TestApply_FailureClearedBySubmit(t *testing.T) {
	failed := RequestState{Status: StatusFailure, Message: "invalid user", CycleID: uuid.Must(uuid.NewV4())}
	cycleID := uuid.Must(uuid.NewV4())

	next := failed.apply(event{kind: eventSubmitted, cycleID: cycleID})

	assert.Equal(t, RequestState{Status: StatusLoading, CycleID: cycleID}, next)
}

func TestApply_StaleResultIgnored(t *testing.T) {
	loading := RequestState{Status: StatusLoading, CycleID: uuid.Must(uuid.NewV4())}

	next := loading.apply(event{kind: eventSucceeded, cycleID: uuid.Must(uuid.NewV4()), report: "late"})

	assert.Equal(t, loading, next)
}

func TestApply_ResultWithoutLoadingIgnored(t *testing.T) {
	idle := RequestState{}

	assert.Equal(t, idle, idle.apply(event{kind: eventFailed, message: "x"}))
}

func TestStatusAndPanelStrings(t *testing.T) {
	assert.Equal(t, "idle", StatusIdle.String())
	assert.Equal(t, "loading", StatusLoading.String())
	assert.Equal(t, "success", StatusSuccess.String())
	assert.Equal(t, "failure", StatusFailure.String())

	assert.Equal(t, PanelWelcome, panelFor(StatusIdle))
	assert.Equal(t, PanelLoading, panelFor(StatusLoading))
	assert.Equal(t, PanelReport, panelFor(StatusSuccess))
	assert.Equal(t, PanelError, panelFor(StatusFailure))
	assert.Equal(t, "report", PanelReport.String())
}

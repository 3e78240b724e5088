package report

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/budget-report/internal/controller"
	"github.com/carson-networks/budget-report/internal/handlers/v1/breakdown"
)

type reportController interface {
	View() controller.View
	State() controller.RequestState
	SetUserIdentifier(value string)
	Submit(ctx context.Context) bool
}

// State is the API model for the request state.
type State struct {
	Status  string `json:"status" enum:"idle,loading,success,failure" doc:"Request lifecycle phase"`
	Loading bool   `json:"loading" doc:"True while a request is in flight"`
	Report  string `json:"report,omitempty" doc:"Markdown report, set on success"`
	Message string `json:"message,omitempty" doc:"Error message, set on failure"`
	CycleID string `json:"cycleID,omitempty" doc:"Report cycle that produced this state"`
}

// View is the API model for everything a client needs to render.
type View struct {
	Panel     string               `json:"panel" enum:"welcome,loading,error,report" doc:"Panel to show"`
	UserID    string               `json:"userID" doc:"Identifier sent with the next request"`
	State     State                `json:"state"`
	Breakdown *breakdown.Breakdown `json:"breakdown,omitempty" doc:"Chart data, report panel only"`
}

func stateFromController(s controller.RequestState) State {
	out := State{
		Status:  s.Status.String(),
		Loading: s.Loading(),
		Report:  s.Report,
		Message: s.Message,
	}
	if s.CycleID != uuid.Nil {
		out.CycleID = s.CycleID.String()
	}
	return out
}

func viewFromController(v controller.View) View {
	out := View{
		Panel:  v.Panel.String(),
		UserID: v.UserID,
		State:  stateFromController(v.State),
	}
	if v.Breakdown != nil {
		b := breakdown.FromEngine(*v.Breakdown)
		out.Breakdown = &b
	}
	return out
}

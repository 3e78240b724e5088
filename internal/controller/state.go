package controller

import (
	"github.com/gofrs/uuid/v5"
)

// Status is the phase of the report request lifecycle.
type Status int8

const (
	StatusIdle Status = iota
	StatusLoading
	StatusSuccess
	StatusFailure
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusLoading:
		return "loading"
	case StatusSuccess:
		return "success"
	case StatusFailure:
		return "failure"
	default:
		return "unknown"
	}
}

// RequestState is the controller's current state. Report is set only in
// StatusSuccess and Message only in StatusFailure. CycleID identifies the
// report cycle that produced the state and is nil while idle.
type RequestState struct {
	Status  Status
	Report  string
	Message string
	CycleID uuid.UUID
}

// Loading reports whether a request is in flight.
func (s RequestState) Loading() bool {
	return s.Status == StatusLoading
}

type eventKind int8

const (
	eventSubmitted eventKind = iota
	eventSucceeded
	eventFailed
)

type event struct {
	kind    eventKind
	cycleID uuid.UUID
	report  string
	message string
}

// apply is the transition function. Events that do not fit the current
// state are ignored: a submit while loading, or a result for a cycle other
// than the one in flight.
func (s RequestState) apply(e event) RequestState {
	switch e.kind {
	case eventSubmitted:
		if s.Loading() {
			return s
		}
		return RequestState{Status: StatusLoading, CycleID: e.cycleID}
	case eventSucceeded:
		if !s.Loading() || s.CycleID != e.cycleID {
			return s
		}
		return RequestState{Status: StatusSuccess, Report: e.report, CycleID: e.cycleID}
	case eventFailed:
		if !s.Loading() || s.CycleID != e.cycleID {
			return s
		}
		return RequestState{Status: StatusFailure, Message: e.message, CycleID: e.cycleID}
	}
	return s
}

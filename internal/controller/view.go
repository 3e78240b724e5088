package controller

import (
	"github.com/carson-networks/budget-report/internal/visualization"
)

// Panel is the downstream view selected for the current state.
type Panel int8

const (
	PanelWelcome Panel = iota
	PanelLoading
	PanelError
	PanelReport
)

func (p Panel) String() string {
	switch p {
	case PanelWelcome:
		return "welcome"
	case PanelLoading:
		return "loading"
	case PanelError:
		return "error"
	case PanelReport:
		return "report"
	default:
		return "unknown"
	}
}

// View is what a presentation layer needs to render the controller.
// Breakdown is only set on the report panel.
type View struct {
	Panel     Panel
	UserID    string
	State     RequestState
	Breakdown *visualization.Breakdown
}

func panelFor(status Status) Panel {
	switch status {
	case StatusLoading:
		return PanelLoading
	case StatusFailure:
		return PanelError
	case StatusSuccess:
		return PanelReport
	default:
		return PanelWelcome
	}
}

package service

import "github.com/pavlenko-transit/pickboard/modules/periods/model"

// Action names the period state machine's actions.
type Action string

const (
	ActionOpen         Action = "open"
	ActionNotify       Action = "notify"
	ActionSubmit       Action = "submit"
	ActionClose        Action = "close"
	ActionProcess      Action = "process"
	ActionComplete     Action = "complete"
	ActionAbort        Action = "abort"
	ActionNotifyAssign Action = "notifyAssign"
	ActionEdit         Action = "edit"
)

// transitions is the explicit state transition table. Every exported
// PeriodService status or edit mutation and every cross-module caller
// (the Assignment Engine) consults this map before mutating a period
// (Delete is not an action here; it checks UPCOMING/CLOSED itself), rejecting
// anything not in the table at this one boundary instead of
// re-deriving legality ad hoc deep in business logic.
var transitions = map[model.Status]map[Action]model.Status{
	model.StatusUpcoming: {
		ActionOpen:   model.StatusOpen,
		ActionNotify: model.StatusUpcoming,
		ActionEdit:   model.StatusUpcoming,
	},
	model.StatusOpen: {
		ActionSubmit: model.StatusOpen,
		ActionNotify: model.StatusOpen,
		ActionClose:  model.StatusClosed,
		ActionEdit:   model.StatusOpen,
	},
	model.StatusClosed: {
		ActionProcess: model.StatusProcessing,
		ActionEdit:    model.StatusClosed,
	},
	model.StatusProcessing: {
		ActionComplete: model.StatusCompleted,
		ActionAbort:    model.StatusClosed,
	},
	model.StatusCompleted: {
		ActionNotifyAssign: model.StatusCompleted,
	},
}

// CheckTransition reports the resulting status of applying action to
// a period currently in from, or ErrInvalidTransition if the table
// has no entry for (from, action). Exported so the Assignment
// Engine's process/complete/abort sequence — which shares one
// transaction with this module's repository — can validate without
// duplicating the table.
func CheckTransition(from model.Status, action Action) (model.Status, error) {
	byAction, ok := transitions[from]
	if !ok {
		return "", model.ErrInvalidTransition
	}
	to, ok := byAction[action]
	if !ok {
		return "", model.ErrInvalidTransition
	}
	return to, nil
}

package walks

import (
	"github.com/Team-lead001/silver-walks-backend/cmd/models"
)

// Transition names a lifecycle operation on a walk session.
type Transition string

const (
	TransitionConfirm Transition = "confirm"
	TransitionReject  Transition = "reject"
	TransitionCancel  Transition = "cancel"
	TransitionStart   Transition = "start"
	TransitionFinish  Transition = "finish"
)

// transitions is the full lifecycle graph. Anything not listed here is
// illegal, which makes completed, cancelled and rejected terminal.
var transitions = map[models.WalkStatus]map[Transition]models.WalkStatus{
	models.WalkScheduled: {
		TransitionConfirm: models.WalkConfirmed,
		TransitionReject:  models.WalkRejected,
		TransitionCancel:  models.WalkCancelled,
	},
	models.WalkConfirmed: {
		TransitionStart:  models.WalkInProgress,
		TransitionCancel: models.WalkCancelled,
	},
	models.WalkInProgress: {
		TransitionFinish: models.WalkCompleted,
	},
}

// NextStatus resolves the status a transition leads to from the given one,
// or an InvalidTransitionError when the move is not in the lifecycle graph.
func NextStatus(from models.WalkStatus, transition Transition) (models.WalkStatus, error) {
	if to, ok := transitions[from][transition]; ok {
		return to, nil
	}
	return "", models.InvalidTransitionError{From: from, Transition: string(transition)}
}

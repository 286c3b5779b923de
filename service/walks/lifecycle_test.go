package walks

import (
	"errors"
	"testing"

	"github.com/Team-lead001/silver-walks-backend/cmd/models"
)

func TestNextStatus_Lifecycle(t *testing.T) {
	cases := []struct {
		from       models.WalkStatus
		transition Transition
		to         models.WalkStatus
	}{
		{models.WalkScheduled, TransitionConfirm, models.WalkConfirmed},
		{models.WalkScheduled, TransitionReject, models.WalkRejected},
		{models.WalkScheduled, TransitionCancel, models.WalkCancelled},
		{models.WalkConfirmed, TransitionStart, models.WalkInProgress},
		{models.WalkConfirmed, TransitionCancel, models.WalkCancelled},
		{models.WalkInProgress, TransitionFinish, models.WalkCompleted},
	}

	for _, c := range cases {
		got, err := NextStatus(c.from, c.transition)
		if err != nil {
			t.Errorf("NextStatus(%s, %s): unexpected error %v", c.from, c.transition, err)
			continue
		}
		if got != c.to {
			t.Errorf("NextStatus(%s, %s) = %s, want %s", c.from, c.transition, got, c.to)
		}
	}
}

func TestNextStatus_IllegalMoves(t *testing.T) {
	cases := []struct {
		from       models.WalkStatus
		transition Transition
	}{
		{models.WalkScheduled, TransitionStart},
		{models.WalkScheduled, TransitionFinish},
		{models.WalkConfirmed, TransitionConfirm},
		{models.WalkConfirmed, TransitionReject},
		{models.WalkInProgress, TransitionCancel},
		{models.WalkInProgress, TransitionConfirm},
	}

	for _, c := range cases {
		_, err := NextStatus(c.from, c.transition)
		if err == nil {
			t.Errorf("NextStatus(%s, %s): expected error", c.from, c.transition)
			continue
		}
		var ite models.InvalidTransitionError
		if !errors.As(err, &ite) {
			t.Errorf("NextStatus(%s, %s): expected InvalidTransitionError, got %T", c.from, c.transition, err)
		}
	}
}

func TestNextStatus_TerminalStatesAdmitNothing(t *testing.T) {
	terminals := []models.WalkStatus{models.WalkCompleted, models.WalkCancelled, models.WalkRejected}
	all := []Transition{TransitionConfirm, TransitionReject, TransitionCancel, TransitionStart, TransitionFinish}

	for _, status := range terminals {
		if !status.Terminal() {
			t.Errorf("%s should report terminal", status)
		}
		for _, tr := range all {
			if _, err := NextStatus(status, tr); err == nil {
				t.Errorf("NextStatus(%s, %s): terminal state must admit no transition", status, tr)
			}
		}
	}
}

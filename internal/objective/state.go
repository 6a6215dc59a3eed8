package objective

import (
	"github.com/SunpowderDev/Dice-Chess-Project-sub001/internal/chess"
)

// InitializeStates seeds one pending state per definition, carrying over
// any author-specified initial progress.
func InitializeStates(defs []Definition) []*State {
	states := make([]*State, 0, len(defs))
	for _, def := range defs {
		state := &State{ID: def.ID}
		if def.InitialProgress != nil {
			progress := *def.InitialProgress
			state.Progress = &progress
		}
		states = append(states, state)
	}
	return states
}

// CheckAll evaluates every still-pending objective against the current
// tracking and transitions states. allowNonPermanent gates completion for
// conditions that could still regress; the host passes true only at
// moments where the outcome is final (typically level end). The protocol
// is the caller's contract, the engine does not second-guess it.
//
// The returned delta lists only objectives that transitioned during this
// call. Terminal states are never re-evaluated, so repeated calls with
// unchanged tracking are idempotent.
func CheckAll(defs []Definition, states []*State, tracking *Tracking, board chess.BoardSnapshot, allowNonPermanent bool, notifier Notifier) Delta {
	byID := make(map[string]*State, len(states))
	for _, state := range states {
		byID[state.ID] = state
	}

	var delta Delta
	for _, def := range defs {
		state, ok := byID[def.ID]
		if !ok || state.Terminal() {
			continue
		}

		result := Evaluate(def.Condition, tracking, board, notifier)

		if result.Progress != nil {
			progress := *result.Progress
			state.Progress = &progress
		}

		// Completion before failure: a result claiming both can only
		// land in one terminal state.
		if result.Met && (result.PermanentlyMet || allowNonPermanent) {
			state.Completed = true
			turn := currentTurn(tracking)
			state.CompletedTurn = &turn
			delta.Completed = append(delta.Completed, state.ID)
		}
		if result.Failed && !state.Terminal() {
			state.Failed = true
			turn := currentTurn(tracking)
			state.FailedTurn = &turn
			delta.Failed = append(delta.Failed, state.ID)
		}
	}
	return delta
}

func currentTurn(tracking *Tracking) int {
	if tracking == nil {
		return 0
	}
	return tracking.Turn()
}

package objective

import (
	"github.com/SunpowderDev/Dice-Chess-Project-sub001/internal/chess"
)

// Progress is a current/target pair for objectives that count toward a
// threshold.
type Progress struct {
	Current int `json:"current"`
	Target  int `json:"target"`
}

// Definition is an authored optional objective: identifier, description
// template, condition, and reward. Rewards may be overridden per
// difficulty. InitialProgress seeds the state's progress pair so the UI
// can show a target before the first check.
type Definition struct {
	ID               string                   `json:"id"`
	Description      string                   `json:"description"`
	PlainDescription string                   `json:"plainDescription,omitempty"`
	Condition        Condition                `json:"condition"`
	Reward           int                      `json:"reward"`
	RewardOverrides  map[chess.Difficulty]int `json:"rewardOverrides,omitempty"`
	InitialProgress  *Progress                `json:"initialProgress,omitempty"`
}

// State is the per-session record for one objective. Completed and Failed
// are terminal and mutually exclusive; once either is set no further
// evaluation alters the record.
type State struct {
	ID            string    `json:"id"`
	Completed     bool      `json:"completed"`
	Failed        bool      `json:"failed"`
	Progress      *Progress `json:"progress,omitempty"`
	CompletedTurn *int      `json:"completedTurn,omitempty"`
	FailedTurn    *int      `json:"failedTurn,omitempty"`
}

// Terminal reports whether the objective has reached a final state.
func (s *State) Terminal() bool {
	return s != nil && (s.Completed || s.Failed)
}

// Result is the transient outcome of evaluating a condition. It is
// recomputed on every check and never persisted. PermanentlyMet marks
// conditions whose satisfied status cannot regress within the session.
type Result struct {
	Met            bool
	Failed         bool
	PermanentlyMet bool
	Progress       *Progress
}

// Delta lists the objective ids that transitioned during one CheckAll
// call. Previously terminal objectives never reappear here.
type Delta struct {
	Completed []string
	Failed    []string
}

package objective

import (
	"testing"

	"github.com/SunpowderDev/Dice-Chess-Project-sub001/internal/chess"
)

func TestRewardFor(t *testing.T) {
	tests := []struct {
		name       string
		def        Definition
		difficulty chess.Difficulty
		want       int
	}{
		{
			"base reward only",
			Definition{Reward: 10},
			chess.DifficultyNormal,
			10,
		},
		{
			"explicit override",
			Definition{Reward: 10, RewardOverrides: map[chess.Difficulty]int{
				chess.DifficultyHard: 25,
			}},
			chess.DifficultyHard,
			25,
		},
		{
			"easy fallback when difficulty has no override",
			Definition{Reward: 10, RewardOverrides: map[chess.Difficulty]int{
				chess.DifficultyEasy: 5,
			}},
			chess.DifficultyNormal,
			5,
		},
		{
			"hard fallback after easy",
			Definition{Reward: 10, RewardOverrides: map[chess.Difficulty]int{
				chess.DifficultyHard: 25,
			}},
			chess.DifficultyNormal,
			25,
		},
		{
			"easy preferred over hard",
			Definition{Reward: 10, RewardOverrides: map[chess.Difficulty]int{
				chess.DifficultyEasy: 5,
				chess.DifficultyHard: 25,
			}},
			"",
			5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RewardFor(tt.def, tt.difficulty); got != tt.want {
				t.Errorf("RewardFor() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestBonus(t *testing.T) {
	defs := []Definition{
		{ID: "done", Reward: 10},
		{ID: "done-too", Reward: 5, RewardOverrides: map[chess.Difficulty]int{
			chess.DifficultyHard: 15,
		}},
		{ID: "failed", Reward: 100},
		{ID: "pending", Reward: 100},
	}
	states := []*State{
		{ID: "done", Completed: true},
		{ID: "done-too", Completed: true},
		{ID: "failed", Failed: true},
		{ID: "pending"},
	}

	if got := Bonus(defs, states, chess.DifficultyNormal); got != 15 {
		t.Errorf("Bonus(normal) = %d, want 15", got)
	}
	if got := Bonus(defs, states, chess.DifficultyHard); got != 25 {
		t.Errorf("Bonus(hard) = %d, want 25", got)
	}
}

func TestBonusIgnoresUnknownStates(t *testing.T) {
	defs := []Definition{{ID: "known", Reward: 10}}
	states := []*State{
		{ID: "known", Completed: true},
		{ID: "orphan", Completed: true},
	}

	if got := Bonus(defs, states, chess.DifficultyNormal); got != 10 {
		t.Errorf("Bonus() = %d, want 10", got)
	}
}

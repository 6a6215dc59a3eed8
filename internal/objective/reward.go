package objective

import (
	"github.com/SunpowderDev/Dice-Chess-Project-sub001/internal/chess"
)

// RewardFor resolves a definition's reward for the given difficulty: the
// explicit override when one exists, else the easy override, else the
// hard override, else the base reward.
func RewardFor(def Definition, difficulty chess.Difficulty) int {
	if difficulty != "" {
		if reward, ok := def.RewardOverrides[difficulty]; ok {
			return reward
		}
	}
	if reward, ok := def.RewardOverrides[chess.DifficultyEasy]; ok {
		return reward
	}
	if reward, ok := def.RewardOverrides[chess.DifficultyHard]; ok {
		return reward
	}
	return def.Reward
}

// Bonus sums the resolved rewards of every completed objective. Failed
// and pending objectives contribute nothing.
func Bonus(defs []Definition, states []*State, difficulty chess.Difficulty) int {
	byID := make(map[string]Definition, len(defs))
	for _, def := range defs {
		byID[def.ID] = def
	}

	total := 0
	for _, state := range states {
		if !state.Completed {
			continue
		}
		def, ok := byID[state.ID]
		if !ok {
			continue
		}
		total += RewardFor(def, difficulty)
	}
	return total
}

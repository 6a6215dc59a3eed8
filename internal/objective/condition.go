package objective

import (
	"github.com/SunpowderDev/Dice-Chess-Project-sub001/internal/chess"
)

// ConditionKind identifies a condition's evaluation semantics. The set is
// closed; unknown kinds evaluate as inert.
type ConditionKind string

const (
	KindNoPieceTypeLost    ConditionKind = "no_piece_type_lost"
	KindWinUnderTurns      ConditionKind = "win_under_turns"
	KindKingAtPosition     ConditionKind = "king_at_position"
	KindConvertPieces      ConditionKind = "convert_pieces"
	KindKillCount          ConditionKind = "kill_count"
	KindNoItemUsed         ConditionKind = "no_item_used"
	KindMaxCasualties      ConditionKind = "max_casualties"
	KindKeepKingDisguised  ConditionKind = "keep_king_disguised"
	KindCheckmateWithPiece ConditionKind = "checkmate_with_piece"
	KindDontKillCourtiers  ConditionKind = "dont_kill_courtiers"
	// KindCustom is an inert placeholder for externally scripted goals.
	KindCustom ConditionKind = "custom"
)

// Parameter keys recognized by the evaluator.
const (
	ParamPieceType     = "pieceType"
	ParamPieceName     = "pieceName"
	ParamMaxTurns      = "maxTurns"
	ParamRank          = "rank"
	ParamFile          = "file"
	ParamArea          = "area"
	ParamCount         = "count"
	ParamComparison    = "comparison"
	ParamVictimType    = "victimType"
	ParamKillerType    = "killerType"
	ParamKillerName    = "killerName"
	ParamKillerTerrain = "killerTerrain"
	ParamVictimStunned = "victimStunned"
	ParamItem          = "item"
	ParamMaxLosses     = "maxLosses"
	ParamMaxCourtiers  = "maxCourtiers"
)

// Kill count comparison modes.
const (
	CompareExact   = "exact"
	CompareAtLeast = "atleast"
	CompareAtMost  = "atmost"
)

// Params holds a condition's parameters. Values arrive from authored
// JSON, so numbers may be float64.
type Params map[string]any

// Int returns the named parameter as an int.
func (p Params) Int(key string) (int, bool) {
	switch n := p[key].(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	default:
		return 0, false
	}
}

// String returns the named parameter as a string.
func (p Params) String(key string) (string, bool) {
	s, ok := p[key].(string)
	return s, ok
}

// Bool returns the named parameter as a bool.
func (p Params) Bool(key string) (bool, bool) {
	b, ok := p[key].(bool)
	return b, ok
}

// Clone returns a shallow copy of the parameter set.
func (p Params) Clone() Params {
	if p == nil {
		return Params{}
	}
	out := make(Params, len(p))
	for key, value := range p {
		out[key] = value
	}
	return out
}

// Condition is the declarative predicate attached to an objective: a kind,
// its base parameters and optional per-difficulty overrides.
type Condition struct {
	Kind             ConditionKind               `json:"kind"`
	Params           Params                      `json:"params,omitempty"`
	DifficultyParams map[chess.Difficulty]Params `json:"difficultyParams,omitempty"`
}

// EffectiveParams merges the base parameters with the difficulty's
// overrides, key by key. When no difficulty is supplied the easy override
// set applies if present, else the hard set, else the base alone.
func (c Condition) EffectiveParams(difficulty chess.Difficulty) Params {
	merged := c.Params.Clone()

	overrides, ok := c.overridesFor(difficulty)
	if !ok {
		return merged
	}
	for key, value := range overrides {
		merged[key] = value
	}
	return merged
}

func (c Condition) overridesFor(difficulty chess.Difficulty) (Params, bool) {
	if len(c.DifficultyParams) == 0 {
		return nil, false
	}
	if difficulty != "" {
		overrides, ok := c.DifficultyParams[difficulty]
		return overrides, ok
	}
	if overrides, ok := c.DifficultyParams[chess.DifficultyEasy]; ok {
		return overrides, true
	}
	if overrides, ok := c.DifficultyParams[chess.DifficultyHard]; ok {
		return overrides, true
	}
	return nil, false
}

package objective

import (
	"github.com/SunpowderDev/Dice-Chess-Project-sub001/internal/chess"
)

// KillRecord captures one enemy piece kill: the victim, the killer's
// type, name and terrain, and whether the victim was stunned when it
// died. KingDefeat is set only when the victim was a king.
type KillRecord struct {
	Victim        chess.Piece          `json:"victim"`
	VictimStunned bool                 `json:"victimStunned,omitempty"`
	KillerType    chess.PieceType      `json:"killerType,omitempty"`
	KillerName    string               `json:"killerName,omitempty"`
	KillerTerrain chess.Terrain        `json:"killerTerrain,omitempty"`
	KingDefeat    chess.KingDefeatKind `json:"kingDefeat,omitempty"`
}

// TrackingConfig contains the session parameters for a new Tracking.
type TrackingConfig struct {
	PlayerColor chess.Color
	Victory     chess.VictoryCondition
	Difficulty  chess.Difficulty
}

// Tracking is the mutable per-session telemetry record objectives are
// evaluated against. One instance is created at level start, owned
// exclusively by that session's game loop, and discarded at level end.
// All mutation goes through the Record/Set methods.
type Tracking struct {
	playerColor chess.Color
	victory     chess.VictoryCondition
	difficulty  chess.Difficulty

	turn        int
	playerTurns int

	piecesLost         []chess.Piece
	kills              []KillRecord
	conversions        int
	courtiersDestroyed int
	itemsUsed          map[chess.ItemKind]struct{}

	kingPosition  *chess.Square
	kingDisguised bool

	winningBlowType         chess.PieceType
	winningBlowOriginalType chess.PieceType
}

// NewTracking creates an empty tracking record for a level session.
func NewTracking(cfg TrackingConfig) *Tracking {
	return &Tracking{
		playerColor: cfg.PlayerColor,
		victory:     cfg.Victory,
		difficulty:  cfg.Difficulty,
		itemsUsed:   map[chess.ItemKind]struct{}{},
	}
}

// PlayerColor returns the side the player controls.
func (t *Tracking) PlayerColor() chess.Color {
	return t.playerColor
}

// Victory returns the session's active victory condition.
func (t *Tracking) Victory() chess.VictoryCondition {
	return t.victory
}

// Difficulty returns the session's active difficulty.
func (t *Tracking) Difficulty() chess.Difficulty {
	return t.difficulty
}

// AdvanceTurn records the start of a turn for the given color. The
// overall turn counter always advances; the player turn counter advances
// only on the player's own turns.
func (t *Tracking) AdvanceTurn(color chess.Color) {
	t.turn++
	if color == t.playerColor {
		t.playerTurns++
	}
}

// Turn returns the current overall turn number.
func (t *Tracking) Turn() int {
	return t.turn
}

// PlayerTurns returns how many turns the player's color has taken.
func (t *Tracking) PlayerTurns() int {
	return t.playerTurns
}

// RecordPieceLost appends a player piece loss.
func (t *Tracking) RecordPieceLost(piece chess.Piece) {
	t.piecesLost = append(t.piecesLost, piece)
}

// PiecesLost returns a copy of the player's losses so far.
func (t *Tracking) PiecesLost() []chess.Piece {
	out := make([]chess.Piece, len(t.piecesLost))
	copy(out, t.piecesLost)
	return out
}

// LossCount returns the number of player pieces lost.
func (t *Tracking) LossCount() int {
	return len(t.piecesLost)
}

// RecordKill appends an enemy piece kill.
func (t *Tracking) RecordKill(kill KillRecord) {
	t.kills = append(t.kills, kill)
}

// Kills returns a copy of the recorded kills.
func (t *Tracking) Kills() []KillRecord {
	out := make([]KillRecord, len(t.kills))
	copy(out, t.kills)
	return out
}

// RecordConversion counts one enemy piece converted to the player's side.
func (t *Tracking) RecordConversion() {
	t.conversions++
}

// Conversions returns the conversion count.
func (t *Tracking) Conversions() int {
	return t.conversions
}

// RecordCourtierDestroyed counts one destroyed courtier obstacle.
func (t *Tracking) RecordCourtierDestroyed() {
	t.courtiersDestroyed++
}

// CourtiersDestroyed returns the destroyed courtier count.
func (t *Tracking) CourtiersDestroyed() int {
	return t.courtiersDestroyed
}

// RecordItemUsed adds an item kind to the used set.
func (t *Tracking) RecordItemUsed(item chess.ItemKind) {
	t.itemsUsed[item] = struct{}{}
}

// ItemUsed reports whether an item kind has been used this session.
func (t *Tracking) ItemUsed(item chess.ItemKind) bool {
	_, ok := t.itemsUsed[item]
	return ok
}

// SetKingPosition records the king's current square.
func (t *Tracking) SetKingPosition(square chess.Square) {
	t.kingPosition = &square
}

// KingPosition returns the king's recorded square, if any.
func (t *Tracking) KingPosition() (chess.Square, bool) {
	if t.kingPosition == nil {
		return chess.Square{}, false
	}
	return *t.kingPosition, true
}

// SetKingDisguised toggles the king's disguise flag.
func (t *Tracking) SetKingDisguised(active bool) {
	t.kingDisguised = active
}

// KingDisguised reports whether the king's disguise is currently active.
func (t *Tracking) KingDisguised() bool {
	return t.kingDisguised
}

// SetWinningBlow records the piece type that delivered the winning blow
// and its original type before any disguise.
func (t *Tracking) SetWinningBlow(delivered, original chess.PieceType) {
	t.winningBlowType = delivered
	t.winningBlowOriginalType = original
}

// WinningBlow returns the delivered and original piece types of the
// winning blow. Both are empty until the level is won.
func (t *Tracking) WinningBlow() (delivered, original chess.PieceType) {
	return t.winningBlowType, t.winningBlowOriginalType
}

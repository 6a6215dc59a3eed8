// Package chess defines the shared vocabulary the objective engine uses to
// talk about a dice chess session: colors, piece types, board squares,
// terrain, items, difficulty tiers and victory conditions.
//
// Board representation and move legality live in the host game; this
// package only carries the identifiers and the read-only board view the
// engine consumes.
package chess

// Color identifies a side of the board.
type Color string

const (
	ColorWhite Color = "white"
	ColorBlack Color = "black"
)

// PieceType identifies a chess piece kind.
type PieceType string

const (
	PiecePawn   PieceType = "pawn"
	PieceKnight PieceType = "knight"
	PieceBishop PieceType = "bishop"
	PieceRook   PieceType = "rook"
	PieceQueen  PieceType = "queen"
	PieceKing   PieceType = "king"
)

// Terrain identifies the terrain of the square a piece stands on.
type Terrain string

const (
	TerrainPlains   Terrain = "plains"
	TerrainForest   Terrain = "forest"
	TerrainMountain Terrain = "mountain"
	TerrainSwamp    Terrain = "swamp"
)

// ItemKind identifies a consumable item.
type ItemKind string

// Difficulty identifies a session difficulty tier.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyNormal Difficulty = "normal"
	DifficultyHard   Difficulty = "hard"
)

// VictoryCondition identifies how a level is won.
type VictoryCondition string

const (
	VictoryCheckmate    VictoryCondition = "checkmate"
	VictoryAnnihilation VictoryCondition = "annihilation"
	VictorySurvival     VictoryCondition = "survival"
)

// KingDefeatKind tags how a king was brought down.
type KingDefeatKind string

const (
	KingDefeatCheckmate KingDefeatKind = "checkmate"
	KingDefeatSlain     KingDefeatKind = "slain"
	KingDefeatCaptured  KingDefeatKind = "captured"
)

// Board dimensions. Dice chess plays on a standard 8x8 board.
const (
	BoardFiles = 8
	BoardRanks = 8
)

// Square is a zero-indexed board coordinate: file 0 is the a-file,
// rank 0 is white's back rank.
type Square struct {
	File int `json:"file"`
	Rank int `json:"rank"`
}

// OnBoard reports whether the square lies within the board.
func (s Square) OnBoard() bool {
	return s.File >= 0 && s.File < BoardFiles && s.Rank >= 0 && s.Rank < BoardRanks
}

// Area names a region of the board used by positional objectives.
type Area string

const (
	AreaEdge       Area = "edge"
	AreaTopEdge    Area = "top_edge"
	AreaBottomEdge Area = "bottom_edge"
	AreaLeftEdge   Area = "left_edge"
	AreaRightEdge  Area = "right_edge"
	AreaCenter     Area = "center"
)

// Contains reports whether the square falls inside the area. Unknown
// areas contain nothing.
func (a Area) Contains(s Square) bool {
	if !s.OnBoard() {
		return false
	}
	switch a {
	case AreaEdge:
		return s.File == 0 || s.File == BoardFiles-1 || s.Rank == 0 || s.Rank == BoardRanks-1
	case AreaTopEdge:
		return s.Rank == BoardRanks-1
	case AreaBottomEdge:
		return s.Rank == 0
	case AreaLeftEdge:
		return s.File == 0
	case AreaRightEdge:
		return s.File == BoardFiles-1
	case AreaCenter:
		return s.File >= 2 && s.File <= 5 && s.Rank >= 2 && s.Rank <= 5
	default:
		return false
	}
}

// Piece is the engine's view of a piece: its kind, its authored name
// (empty for unnamed pieces) and the side it fights for.
type Piece struct {
	Type  PieceType `json:"type"`
	Name  string    `json:"name,omitempty"`
	Color Color     `json:"color,omitempty"`
}

// BoardSnapshot is the read-only board view passed into objective
// evaluation. Implementations belong to the host game.
type BoardSnapshot interface {
	// HasPiece reports whether a living piece with the given name is on
	// the board for the given color.
	HasPiece(color Color, name string) bool
}

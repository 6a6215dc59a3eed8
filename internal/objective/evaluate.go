package objective

import (
	"fmt"

	"github.com/SunpowderDev/Dice-Chess-Project-sub001/internal/chess"
)

// Evaluate maps a condition, the session tracking and an optional board
// snapshot to a Result. It has no side effects on its inputs and never
// fails: unknown kinds and missing parameters degrade to an inert result
// plus a diagnostic notice.
func Evaluate(cond Condition, tracking *Tracking, board chess.BoardSnapshot, notifier Notifier) Result {
	if tracking == nil {
		return Result{}
	}
	params := cond.EffectiveParams(tracking.Difficulty())

	switch cond.Kind {
	case KindNoPieceTypeLost:
		return evalNoPieceTypeLost(params, tracking, board)
	case KindWinUnderTurns:
		return evalWinUnderTurns(params, tracking)
	case KindKingAtPosition:
		return evalKingAtPosition(params, tracking)
	case KindConvertPieces:
		return evalConvertPieces(params, tracking)
	case KindKillCount:
		return evalKillCount(params, tracking)
	case KindNoItemUsed:
		return evalNoItemUsed(params, tracking)
	case KindMaxCasualties:
		return evalMaxCasualties(params, tracking)
	case KindKeepKingDisguised:
		return evalKeepKingDisguised(tracking)
	case KindCheckmateWithPiece:
		return evalCheckmateWithPiece(params, tracking)
	case KindDontKillCourtiers:
		return evalDontKillCourtiers(params, tracking)
	case KindCustom:
		notify(notifier, Notice{
			Code:    NoticeCustomCondition,
			Message: "custom condition is a placeholder and never resolves",
		})
		return Result{}
	default:
		notify(notifier, Notice{
			Code:     NoticeUnknownConditionKind,
			Message:  fmt.Sprintf("unknown condition kind: %s", cond.Kind),
			Metadata: map[string]string{"Kind": string(cond.Kind)},
		})
		return Result{}
	}
}

// evalNoPieceTypeLost succeeds while no piece of the given type has been
// lost. When a specific named piece is required it must also still be on
// the board. Only finalized at level end, so never permanently met.
func evalNoPieceTypeLost(params Params, tracking *Tracking, board chess.BoardSnapshot) Result {
	pieceType, _ := params.String(ParamPieceType)
	pieceName, hasName := params.String(ParamPieceName)
	if pieceName == "" {
		hasName = false
	}

	lost := 0
	for _, piece := range tracking.PiecesLost() {
		if pieceType != "" && piece.Type != chess.PieceType(pieceType) {
			continue
		}
		if hasName && piece.Name != pieceName {
			continue
		}
		lost++
	}

	missing := false
	if hasName && board != nil && !board.HasPiece(tracking.PlayerColor(), pieceName) {
		missing = true
	}

	result := Result{
		Met:    lost == 0 && !missing,
		Failed: lost > 0 || missing,
	}
	if !hasName {
		result.Progress = &Progress{Current: lost}
	}
	return result
}

func evalWinUnderTurns(params Params, tracking *Tracking) Result {
	maxTurns, ok := params.Int(ParamMaxTurns)
	if !ok {
		return Result{}
	}
	turns := tracking.PlayerTurns()
	return Result{
		Met:      turns <= maxTurns,
		Failed:   turns > maxTurns,
		Progress: &Progress{Current: turns, Target: maxTurns},
	}
}

// evalKingAtPosition checks the king's recorded square against whichever
// of rank, file and area are specified. Positional goals are only
// meaningful at level end, so the condition never fails mid-session.
func evalKingAtPosition(params Params, tracking *Tracking) Result {
	square, ok := tracking.KingPosition()
	if !ok {
		return Result{}
	}

	if rank, ok := params.Int(ParamRank); ok && square.Rank != rank {
		return Result{}
	}
	if file, ok := params.Int(ParamFile); ok && square.File != file {
		return Result{}
	}
	if area, ok := params.String(ParamArea); ok && !chess.Area(area).Contains(square) {
		return Result{}
	}
	return Result{Met: true}
}

func evalConvertPieces(params Params, tracking *Tracking) Result {
	target, ok := params.Int(ParamCount)
	if !ok {
		return Result{}
	}
	converted := tracking.Conversions()
	met := converted >= target
	return Result{
		Met:            met,
		PermanentlyMet: met,
		Progress:       &Progress{Current: converted, Target: target},
	}
}

func evalKillCount(params Params, tracking *Tracking) Result {
	target, ok := params.Int(ParamCount)
	if !ok {
		return Result{}
	}
	comparison, ok := params.String(ParamComparison)
	if !ok {
		comparison = CompareAtLeast
	}

	count := 0
	for _, kill := range tracking.Kills() {
		if !killMatches(params, kill) {
			continue
		}
		count++
	}

	result := Result{Progress: &Progress{Current: count, Target: target}}
	switch comparison {
	case CompareExact:
		result.Met = count == target
	case CompareAtMost:
		result.Met = count <= target
		result.Failed = count > target
	default: // at least
		result.Met = count >= target
		result.PermanentlyMet = result.Met
	}
	return result
}

func killMatches(params Params, kill KillRecord) bool {
	if victimType, ok := params.String(ParamVictimType); ok && kill.Victim.Type != chess.PieceType(victimType) {
		return false
	}
	if killerType, ok := params.String(ParamKillerType); ok && kill.KillerType != chess.PieceType(killerType) {
		return false
	}
	if killerName, ok := params.String(ParamKillerName); ok && kill.KillerName != killerName {
		return false
	}
	if killerTerrain, ok := params.String(ParamKillerTerrain); ok && kill.KillerTerrain != chess.Terrain(killerTerrain) {
		return false
	}
	if stunned, ok := params.Bool(ParamVictimStunned); ok && kill.VictimStunned != stunned {
		return false
	}
	return true
}

func evalNoItemUsed(params Params, tracking *Tracking) Result {
	item, ok := params.String(ParamItem)
	if !ok {
		return Result{}
	}
	used := tracking.ItemUsed(chess.ItemKind(item))
	return Result{Met: !used, Failed: used}
}

func evalMaxCasualties(params Params, tracking *Tracking) Result {
	maxLosses, ok := params.Int(ParamMaxLosses)
	if !ok {
		return Result{}
	}
	losses := tracking.LossCount()
	return Result{
		Met:      losses <= maxLosses,
		Failed:   losses > maxLosses,
		Progress: &Progress{Current: losses, Target: maxLosses},
	}
}

func evalKeepKingDisguised(tracking *Tracking) Result {
	disguised := tracking.KingDisguised()
	return Result{Met: disguised, Failed: !disguised}
}

// evalCheckmateWithPiece compares the winning blow's original piece type
// (before any disguise) against the required type. Inert until a winning
// blow has been recorded.
func evalCheckmateWithPiece(params Params, tracking *Tracking) Result {
	required, ok := params.String(ParamPieceType)
	if !ok {
		return Result{}
	}
	_, original := tracking.WinningBlow()
	if original == "" {
		return Result{}
	}
	met := original == chess.PieceType(required)
	return Result{
		Met:            met,
		PermanentlyMet: met,
		Failed:         !met,
	}
}

func evalDontKillCourtiers(params Params, tracking *Tracking) Result {
	maxCourtiers, ok := params.Int(ParamMaxCourtiers)
	if !ok {
		return Result{}
	}
	destroyed := tracking.CourtiersDestroyed()
	return Result{
		Met:      destroyed <= maxCourtiers,
		Failed:   destroyed > maxCourtiers,
		Progress: &Progress{Current: destroyed, Target: maxCourtiers},
	}
}

package objective

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/SunpowderDev/Dice-Chess-Project-sub001/internal/chess"
	apperrors "github.com/SunpowderDev/Dice-Chess-Project-sub001/internal/platform/errors"
)

// EventType identifies one kind of session event.
type EventType string

const (
	EventTurnAdvance       EventType = "turn_advance"
	EventPieceLost         EventType = "piece_lost"
	EventPieceKilled       EventType = "piece_killed"
	EventConversion        EventType = "conversion"
	EventCourtierDestroyed EventType = "courtier_destroyed"
	EventItemUsed          EventType = "item_used"
	EventKingMoved         EventType = "king_moved"
	EventKingDisguise      EventType = "king_disguise"
	EventWinningBlow       EventType = "winning_blow"
)

// Event is one entry in a session's timeline. Exactly the fields for
// its type are set; the rest stay zero.
type Event struct {
	Type EventType `json:"type"`

	Color     chess.Color     `json:"color,omitempty"`     // turn_advance
	Piece     *chess.Piece    `json:"piece,omitempty"`     // piece_lost
	Kill      *KillRecord     `json:"kill,omitempty"`      // piece_killed
	Item      chess.ItemKind  `json:"item,omitempty"`      // item_used
	Square    *chess.Square   `json:"square,omitempty"`    // king_moved
	Active    bool            `json:"active,omitempty"`    // king_disguise
	Delivered chess.PieceType `json:"delivered,omitempty"` // winning_blow
	Original  chess.PieceType `json:"original,omitempty"`  // winning_blow
}

// Apply folds one event into the tracking record.
func (t *Tracking) Apply(event Event) error {
	switch event.Type {
	case EventTurnAdvance:
		t.AdvanceTurn(event.Color)
	case EventPieceLost:
		if event.Piece == nil {
			return apperrors.New(apperrors.CodeEventDecode, "piece_lost event is missing its piece")
		}
		t.RecordPieceLost(*event.Piece)
	case EventPieceKilled:
		if event.Kill == nil {
			return apperrors.New(apperrors.CodeEventDecode, "piece_killed event is missing its kill record")
		}
		t.RecordKill(*event.Kill)
	case EventConversion:
		t.RecordConversion()
	case EventCourtierDestroyed:
		t.RecordCourtierDestroyed()
	case EventItemUsed:
		if event.Item == "" {
			return apperrors.New(apperrors.CodeEventDecode, "item_used event is missing its item")
		}
		t.RecordItemUsed(event.Item)
	case EventKingMoved:
		if event.Square == nil {
			return apperrors.New(apperrors.CodeEventDecode, "king_moved event is missing its square")
		}
		t.SetKingPosition(*event.Square)
	case EventKingDisguise:
		t.SetKingDisguised(event.Active)
	case EventWinningBlow:
		t.SetWinningBlow(event.Delivered, event.Original)
	default:
		return apperrors.WithMetadata(
			apperrors.CodeEventUnknownType,
			fmt.Sprintf("unknown session event type: %s", event.Type),
			map[string]string{"Type": string(event.Type)},
		)
	}
	return nil
}

// SessionLog is a recorded session: its setup plus the event timeline.
type SessionLog struct {
	SessionID   string                 `json:"sessionId"`
	LevelID     string                 `json:"levelId"`
	PlayerColor chess.Color            `json:"playerColor"`
	Victory     chess.VictoryCondition `json:"victory,omitempty"`
	Difficulty  chess.Difficulty       `json:"difficulty,omitempty"`
	Events      []Event                `json:"events"`
}

// DecodeSessionLog reads one JSON session log.
func DecodeSessionLog(r io.Reader) (SessionLog, error) {
	var log SessionLog
	if err := json.NewDecoder(r).Decode(&log); err != nil {
		return SessionLog{}, apperrors.Wrap(apperrors.CodeEventDecode, "decode session log", err)
	}
	return log, nil
}

// Replay runs a recorded session through the engine: it folds the
// timeline into a fresh Tracking, re-checks the objectives after every
// turn advance, and finalizes with a level-end check that also allows
// non-permanent completions.
func Replay(defs []Definition, log SessionLog, board chess.BoardSnapshot, notifier Notifier) (*Tracking, []*State, error) {
	tracking := NewTracking(TrackingConfig{
		PlayerColor: log.PlayerColor,
		Victory:     log.Victory,
		Difficulty:  log.Difficulty,
	})
	states := InitializeStates(defs)

	for i, event := range log.Events {
		if err := tracking.Apply(event); err != nil {
			return nil, nil, fmt.Errorf("apply event %d: %w", i, err)
		}
		if event.Type == EventTurnAdvance {
			CheckAll(defs, states, tracking, board, false, notifier)
		}
	}

	CheckAll(defs, states, tracking, board, true, notifier)
	return tracking, states, nil
}

// Package storage defines the persistence interfaces for the objectives
// subsystem: authored level definitions, per-session settlements and
// engine diagnostic notices.
package storage

import (
	"context"
	"errors"
	"time"

	"github.com/SunpowderDev/Dice-Chess-Project-sub001/internal/chess"
	"github.com/SunpowderDev/Dice-Chess-Project-sub001/internal/objective"
)

// ErrNotFound indicates a requested record is missing.
var ErrNotFound = errors.New("record not found")

// ErrAlreadyExists indicates a record with the same key is already stored.
var ErrAlreadyExists = errors.New("record already exists")

// Settlement is the terminal record of one session's objectives: the
// final state of every tracked objective and the resolved bonus.
type Settlement struct {
	SessionID  string
	LevelID    string
	Difficulty chess.Difficulty
	Bonus      int
	States     []objective.State
	SettledAt  time.Time
}

// NoticeRecord is a persisted engine diagnostic.
type NoticeRecord struct {
	SessionID string
	Code      string
	Message   string
	Metadata  map[string]string
	CreatedAt time.Time
}

// DefinitionStore persists authored objective definitions per level.
type DefinitionStore interface {
	PutLevelDefinitions(ctx context.Context, levelID string, defs []objective.Definition) error
	LevelDefinitions(ctx context.Context, levelID string) ([]objective.Definition, error)
}

// SettlementStore persists session settlements. SaveSettlement returns
// ErrAlreadyExists when the session was settled before.
type SettlementStore interface {
	SaveSettlement(ctx context.Context, settlement Settlement) error
	Settlement(ctx context.Context, sessionID string) (Settlement, error)
}

// NoticeStore appends and lists engine diagnostics.
type NoticeStore interface {
	AppendNotice(ctx context.Context, notice NoticeRecord) error
	Notices(ctx context.Context, sessionID string) ([]NoticeRecord, error)
}

// Store aggregates the objectives persistence surface.
type Store interface {
	DefinitionStore
	SettlementStore
	NoticeStore
	Close() error
}

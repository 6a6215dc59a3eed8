// Package sqlite provides a SQLite-backed objectives storage implementation.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/SunpowderDev/Dice-Chess-Project-sub001/internal/chess"
	"github.com/SunpowderDev/Dice-Chess-Project-sub001/internal/objective"
	sqlitemigrate "github.com/SunpowderDev/Dice-Chess-Project-sub001/internal/platform/storage/sqlitemigrate"
	"github.com/SunpowderDev/Dice-Chess-Project-sub001/internal/storage"
	"github.com/SunpowderDev/Dice-Chess-Project-sub001/internal/storage/sqlite/migrations"
	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"
)

// Store persists objectives state in SQLite.
type Store struct {
	sqlDB *sql.DB
}

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// Open opens a SQLite objectives store and applies embedded migrations.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := sqlitemigrate.ApplyMigrations(sqlDB, migrations.FS, ""); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// PutLevelDefinitions stores a level's authored definitions, replacing
// any previous set.
func (s *Store) PutLevelDefinitions(ctx context.Context, levelID string, defs []objective.Definition) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	levelID = strings.TrimSpace(levelID)
	if levelID == "" {
		return fmt.Errorf("level id is required")
	}

	payload, err := json.Marshal(defs)
	if err != nil {
		return fmt.Errorf("encode definitions: %w", err)
	}

	_, err = s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO level_definitions (level_id, payload, updated_at)
		 VALUES (?, ?, ?)
		 ON CONFLICT(level_id) DO UPDATE SET
		   payload = excluded.payload,
		   updated_at = excluded.updated_at`,
		levelID,
		string(payload),
		toMillis(time.Now()),
	)
	if err != nil {
		return fmt.Errorf("put level definitions: %w", err)
	}
	return nil
}

// LevelDefinitions returns a level's authored definitions.
func (s *Store) LevelDefinitions(ctx context.Context, levelID string) ([]objective.Definition, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}
	levelID = strings.TrimSpace(levelID)
	if levelID == "" {
		return nil, fmt.Errorf("level id is required")
	}

	row := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT payload FROM level_definitions WHERE level_id = ?`,
		levelID,
	)

	var payload string
	if err := row.Scan(&payload); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("get level definitions: %w", err)
	}

	var defs []objective.Definition
	if err := json.Unmarshal([]byte(payload), &defs); err != nil {
		return nil, fmt.Errorf("decode definitions: %w", err)
	}
	return defs, nil
}

// SaveSettlement stores one session's terminal objective record. A
// session settles at most once.
func (s *Store) SaveSettlement(ctx context.Context, settlement storage.Settlement) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	sessionID := strings.TrimSpace(settlement.SessionID)
	levelID := strings.TrimSpace(settlement.LevelID)
	if sessionID == "" {
		return fmt.Errorf("session id is required")
	}
	if levelID == "" {
		return fmt.Errorf("level id is required")
	}
	settledAt := settlement.SettledAt
	if settledAt.IsZero() {
		settledAt = time.Now()
	}

	states, err := json.Marshal(settlement.States)
	if err != nil {
		return fmt.Errorf("encode states: %w", err)
	}

	_, err = s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO session_settlements (
		   session_id, level_id, difficulty, bonus, states, settled_at
		 ) VALUES (?, ?, ?, ?, ?, ?)`,
		sessionID,
		levelID,
		string(settlement.Difficulty),
		settlement.Bonus,
		string(states),
		toMillis(settledAt),
	)
	if err != nil {
		if isSettlementUniqueViolation(err) {
			return storage.ErrAlreadyExists
		}
		return fmt.Errorf("save settlement: %w", err)
	}
	return nil
}

// Settlement returns one session's settlement record.
func (s *Store) Settlement(ctx context.Context, sessionID string) (storage.Settlement, error) {
	if err := ctx.Err(); err != nil {
		return storage.Settlement{}, err
	}
	if s == nil || s.sqlDB == nil {
		return storage.Settlement{}, fmt.Errorf("storage is not configured")
	}
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return storage.Settlement{}, fmt.Errorf("session id is required")
	}

	row := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT session_id, level_id, difficulty, bonus, states, settled_at
		   FROM session_settlements
		  WHERE session_id = ?`,
		sessionID,
	)

	var settlement storage.Settlement
	var difficulty string
	var states string
	var settledAt int64
	err := row.Scan(
		&settlement.SessionID,
		&settlement.LevelID,
		&difficulty,
		&settlement.Bonus,
		&states,
		&settledAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.Settlement{}, storage.ErrNotFound
		}
		return storage.Settlement{}, fmt.Errorf("get settlement: %w", err)
	}

	if err := json.Unmarshal([]byte(states), &settlement.States); err != nil {
		return storage.Settlement{}, fmt.Errorf("decode states: %w", err)
	}
	settlement.Difficulty = chess.Difficulty(difficulty)
	settlement.SettledAt = fromMillis(settledAt)
	return settlement, nil
}

// AppendNotice stores one engine diagnostic.
func (s *Store) AppendNotice(ctx context.Context, notice storage.NoticeRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	sessionID := strings.TrimSpace(notice.SessionID)
	if sessionID == "" {
		return fmt.Errorf("session id is required")
	}
	if strings.TrimSpace(notice.Code) == "" {
		return fmt.Errorf("notice code is required")
	}
	createdAt := notice.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	metadata := notice.Metadata
	if metadata == nil {
		metadata = map[string]string{}
	}
	encoded, err := json.Marshal(metadata)
	if err != nil {
		return fmt.Errorf("encode metadata: %w", err)
	}

	_, err = s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO session_notices (session_id, code, message, metadata, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		sessionID,
		notice.Code,
		notice.Message,
		string(encoded),
		toMillis(createdAt),
	)
	if err != nil {
		return fmt.Errorf("append notice: %w", err)
	}
	return nil
}

// Notices returns a session's diagnostics in append order.
func (s *Store) Notices(ctx context.Context, sessionID string) ([]storage.NoticeRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return nil, fmt.Errorf("session id is required")
	}

	rows, err := s.sqlDB.QueryContext(
		ctx,
		`SELECT session_id, code, message, metadata, created_at
		   FROM session_notices
		  WHERE session_id = ?
		  ORDER BY id ASC`,
		sessionID,
	)
	if err != nil {
		return nil, fmt.Errorf("list notices: %w", err)
	}
	defer rows.Close()

	var notices []storage.NoticeRecord
	for rows.Next() {
		var notice storage.NoticeRecord
		var metadata string
		var createdAt int64
		if err := rows.Scan(
			&notice.SessionID,
			&notice.Code,
			&notice.Message,
			&metadata,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("list notices: %w", err)
		}
		if err := json.Unmarshal([]byte(metadata), &notice.Metadata); err != nil {
			return nil, fmt.Errorf("decode notice metadata: %w", err)
		}
		notice.CreatedAt = fromMillis(createdAt)
		notices = append(notices, notice)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list notices: %w", err)
	}
	return notices, nil
}

func isSettlementUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3lib.SQLITE_CONSTRAINT_UNIQUE:
			return true
		}
	}
	message := strings.ToLower(err.Error())
	return strings.Contains(message, "unique constraint failed") &&
		strings.Contains(message, "session_settlements.session_id")
}

var _ storage.Store = (*Store)(nil)

// Package telemetry forwards engine diagnostics to persistent storage.
package telemetry

import (
	"context"
	"log"
	"time"

	"github.com/SunpowderDev/Dice-Chess-Project-sub001/internal/objective"
	"github.com/SunpowderDev/Dice-Chess-Project-sub001/internal/storage"
)

// Emitter records engine diagnostic notices for one session. It
// implements objective.Notifier, so it can be handed straight to the
// evaluator. A nil emitter or nil store drops notices silently.
type Emitter struct {
	store     storage.NoticeStore
	sessionID string
	clock     func() time.Time
}

// NewEmitter creates a notice emitter bound to one session.
func NewEmitter(store storage.NoticeStore, sessionID string) *Emitter {
	return &Emitter{store: store, sessionID: sessionID, clock: time.Now}
}

// Notice persists one engine diagnostic. Storage failures are logged
// rather than surfaced: diagnostics must never interrupt evaluation.
func (e *Emitter) Notice(n objective.Notice) {
	if e == nil || e.store == nil {
		return
	}
	now := time.Now
	if e.clock != nil {
		now = e.clock
	}
	record := storage.NoticeRecord{
		SessionID: e.sessionID,
		Code:      n.Code,
		Message:   n.Message,
		Metadata:  n.Metadata,
		CreatedAt: now().UTC(),
	}
	if err := e.store.AppendNotice(context.Background(), record); err != nil {
		log.Printf("objective notice dropped: %v", err)
	}
}

var _ objective.Notifier = (*Emitter)(nil)

// Package audit records billing lifecycle events (bill generated, document
// downloaded, handoff dispatched) for the owner's end-of-day report.
//
// Emission is fail-open: a bill must never be blocked because its audit
// event could not be persisted or published.
package audit

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Action identifies what happened to a bill.
type Action string

const (
	ActionBillGenerated      Action = "bill_generated"
	ActionDocumentDownloaded Action = "document_downloaded"
	ActionHandoffDispatched  Action = "handoff_dispatched"
)

// Event is one audit record. Metadata carries small display values
// (party name, amount, target), never the rendered document itself.
type Event struct {
	ID        uuid.UUID         `json:"id"`
	BillID    uuid.UUID         `json:"bill_id"`
	Action    Action            `json:"action"`
	Timestamp time.Time         `json:"timestamp"`
	Metadata  map[string]string `json:"metadata,omitempty"`
}

// Store persists events. The memory store is the default; a broker-backed
// publisher satisfies Publisher directly without a store.
type Store interface {
	Append(ctx context.Context, event Event) error
	ListByBill(ctx context.Context, billID uuid.UUID) ([]Event, error)
}

// Publisher emits audit events. Implementations must be safe for concurrent
// use and must not block the billing path on slow sinks.
type Publisher interface {
	Emit(ctx context.Context, event Event) error
	Close() error
}

// normalize fills in identity and timestamp so callers only provide the
// business fields.
func normalize(event Event) Event {
	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}
	return event
}

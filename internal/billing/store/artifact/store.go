// Package artifact stores the rendered document for each bill so it can be
// downloaded again after the initial response. One artifact per bill,
// replaced wholesale on re-render; a failed render never evicts the prior
// artifact because the service only calls Put after a successful render.
package artifact

import (
	"context"

	"github.com/google/uuid"

	"fishbill/internal/document"
)

// Store keeps rendered documents keyed by bill ID.
type Store interface {
	Put(ctx context.Context, billID uuid.UUID, doc *document.Document) error
	Get(ctx context.Context, billID uuid.UUID) (*document.Document, error)
}

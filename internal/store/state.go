package store

import (
	"context"

	"github.com/ejolly/lingolog/internal/domain"
)

// StateStore is the persistence collaborator's contract: wholesale load and
// save of the full application state. The coordinator loads once at startup
// and saves after every mutation; there is no partial update path.
type StateStore interface {
	// Load retrieves the persisted state.
	// Returns ErrStateNotFound when nothing has been persisted yet (first
	// run); the caller initializes empty collections in that case.
	Load(ctx context.Context) (*domain.State, error)

	// Save persists the given state wholesale, replacing whatever was
	// stored before. The write must be atomic: a failed save leaves the
	// previously persisted state intact.
	Save(ctx context.Context, state *domain.State) error
}

// Package ports defines the persistence contracts of the sample tracking
// domain. Adapters in internal/adapters/out implement them; command handlers
// depend only on these interfaces.
package ports

import (
	"context"

	"booksamples/internal/core/domain/model/kernel"
	"booksamples/internal/core/domain/model/loading"
)

// LoadingRepository defines the persistence contract for loadings.
type LoadingRepository interface {
	// Add persists a new loading with its lines.
	Add(ctx context.Context, aggregate *loading.Loading) error

	// Update persists header changes and replaces the lines.
	Update(ctx context.Context, aggregate *loading.Loading) error

	// Get returns the loading or an errs.ObjectNotFoundError.
	Get(ctx context.Context, id kernel.UUID) (*loading.Loading, error)
}

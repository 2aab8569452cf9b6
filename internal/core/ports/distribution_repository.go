package ports

import (
	"context"

	"booksamples/internal/core/domain/model/distribution"
	"booksamples/internal/core/domain/model/kernel"
)

// DistributionRepository defines the persistence contract for distributions.
type DistributionRepository interface {
	// Add persists a new distribution with its lines.
	Add(ctx context.Context, aggregate *distribution.Distribution) error

	// Update persists the distribution under optimistic locking. The row is
	// written only when its stored version still equals aggregate.Version();
	// otherwise an errs.VersionIsInvalidError is returned. On success the
	// aggregate's version is advanced.
	//
	// Example:
	//   if err := repo.Update(ctx, d); errors.Is(err, errs.ErrVersionIsInvalid) {
	//       // another collection changed the distribution first; reload and retry
	//   }
	Update(ctx context.Context, aggregate *distribution.Distribution) error

	// Get returns the distribution or an errs.ObjectNotFoundError.
	Get(ctx context.Context, id kernel.UUID) (*distribution.Distribution, error)
}

package ports

import (
	"context"

	"booksamples/internal/core/domain/model/collection"
	"booksamples/internal/core/domain/model/kernel"
)

// CollectionRepository defines the persistence contract for collections.
type CollectionRepository interface {
	Add(ctx context.Context, aggregate *collection.Collection) error
	Update(ctx context.Context, aggregate *collection.Collection) error
	Get(ctx context.Context, id kernel.UUID) (*collection.Collection, error)
}

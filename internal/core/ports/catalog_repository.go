package ports

import (
	"context"

	"booksamples/internal/core/domain/model/catalog"
)

// CatalogRepository defines the persistence contract for items and class
// grades.
type CatalogRepository interface {
	AddItem(ctx context.Context, item *catalog.Item) error

	// GetItem returns the item or an errs.ObjectNotFoundError.
	GetItem(ctx context.Context, code string) (*catalog.Item, error)

	// ListClassGrades returns every class grade ordered by order.
	ListClassGrades(ctx context.Context) ([]catalog.ClassGrade, error)

	AddClassGrade(ctx context.Context, grade catalog.ClassGrade) error
}

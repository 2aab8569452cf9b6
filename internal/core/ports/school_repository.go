package ports

import (
	"context"

	"booksamples/internal/core/domain/model/kernel"
	"booksamples/internal/core/domain/model/school"
)

// SchoolRepository defines the persistence contract for schools and the
// customers created for them.
type SchoolRepository interface {
	Add(ctx context.Context, aggregate *school.School) error
	Update(ctx context.Context, aggregate *school.School) error
	Get(ctx context.Context, id kernel.UUID) (*school.School, error)

	// AddCustomer persists a customer record.
	AddCustomer(ctx context.Context, customer *school.Customer) error
}

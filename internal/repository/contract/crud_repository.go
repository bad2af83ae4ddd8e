package contract

import (
	"context"

	"casino-admin-be/internal/repository/specification"

	"github.com/google/uuid"
)

// CrudRepository is the surface every table repository shares. FindOne returns
// nil, nil when nothing matches.
type CrudRepository[E any] interface {
	Create(ctx context.Context, e *E) error
	Update(ctx context.Context, e *E) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*E, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*E, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}

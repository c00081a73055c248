package catalog

import (
	"context"

	"github.com/google/uuid"
)

// CategoriaRepository defines the read contract the domain consumes
// for category validations.
type CategoriaRepository interface {
	// GetByID finds a category by its ID, nil if absent
	GetByID(ctx context.Context, id uuid.UUID) (*Categoria, error)

	// ExistsByCodigo checks whether another category in the cost center
	// already uses the code; excludeID (when non-nil) leaves that
	// category out of the check
	ExistsByCodigo(ctx context.Context, centroCustoID uuid.UUID, codigo string, excludeID *uuid.UUID) (bool, error)

	// GetFilhasByPaiID lists the direct children of a category
	GetFilhasByPaiID(ctx context.Context, paiID uuid.UUID) ([]Categoria, error)
}

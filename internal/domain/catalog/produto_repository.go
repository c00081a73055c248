package catalog

import (
	"context"

	"github.com/google/uuid"
)

// ProdutoRepository defines the read contract the domain consumes for
// product validations. Product codes are unique across the whole
// catalog; names are unique only within a category.
type ProdutoRepository interface {
	// GetByID finds a product by its ID, nil if absent
	GetByID(ctx context.Context, id uuid.UUID) (*Produto, error)

	// ExistsByCodigo checks whether another product anywhere in the
	// catalog already uses the code
	ExistsByCodigo(ctx context.Context, codigo string, excludeID *uuid.UUID) (bool, error)

	// ExistsByNomeInCategoria checks whether another product in the same
	// category already uses the name
	ExistsByNomeInCategoria(ctx context.Context, categoriaID uuid.UUID, nome string, excludeID *uuid.UUID) (bool, error)

	// GetByCategoriaID lists the products of a category
	GetByCategoriaID(ctx context.Context, categoriaID uuid.UUID) ([]Produto, error)
}

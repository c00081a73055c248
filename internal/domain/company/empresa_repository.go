package company

import (
	"context"

	"github.com/google/uuid"
	"github.com/restoerp/backend/internal/domain/shared/valueobject"
)

// EmpresaRepository defines the read contract the domain consumes for
// company validations. Implementations live in the persistence layer;
// results reflect committed state at call time, with no implicit
// locking. Database-level uniqueness constraints remain the final
// backstop for the read-then-decide checks built on these methods.
type EmpresaRepository interface {
	// GetByID finds a company by its ID, nil if absent
	GetByID(ctx context.Context, id uuid.UUID) (*Empresa, error)

	// ExistsByCnpj checks whether another company already uses the CNPJ;
	// excludeID (when non-nil) leaves that company out of the check
	ExistsByCnpj(ctx context.Context, cnpj valueobject.Cnpj, excludeID *uuid.UUID) (bool, error)

	// ExistsByEmail checks whether another company already uses the
	// e-mail; excludeID (when non-nil) leaves that company out
	ExistsByEmail(ctx context.Context, email valueobject.Email, excludeID *uuid.UUID) (bool, error)

	// CountFiliaisAtivas counts the company's active branches
	CountFiliaisAtivas(ctx context.Context, empresaID uuid.UUID) (int, error)
}

package company

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/restoerp/backend/internal/domain/shared"
	"github.com/restoerp/backend/internal/domain/shared/valueobject"
)

// PlanPolicy maps each plan tier to its branch ceiling (SemLimite for
// unlimited). The defaults are the published tiers; deployments may
// override them through configuration.
type PlanPolicy struct {
	MaxFiliais map[Plano]int
}

// DefaultPlanPolicy returns the published plan ceilings.
func DefaultPlanPolicy() PlanPolicy {
	return PlanPolicy{
		MaxFiliais: map[Plano]int{
			PlanoBasico:       1,
			PlanoProfissional: 5,
			PlanoEnterprise:   SemLimite,
		},
	}
}

// limitFor returns the ceiling for a plan, falling back to the
// published tier when the policy does not name it.
func (p PlanPolicy) limitFor(plano Plano) int {
	if limit, ok := p.MaxFiliais[plano]; ok {
		return limit
	}
	limit, _ := plano.MaxFiliais()
	return limit
}

// EmpresaDomainService evaluates cross-aggregate rules for companies:
// uniqueness, inactivation gating and plan-based branch capacity. It
// is stateless and safe for concurrent use; every outcome is a Result,
// never an exception. The uniqueness checks are read-then-decide and
// accept the inherent race with concurrent writers.
type EmpresaDomainService struct {
	repo       EmpresaRepository
	planPolicy PlanPolicy
}

// EmpresaDomainServiceOption is a functional option for configuring EmpresaDomainService
type EmpresaDomainServiceOption func(*EmpresaDomainService)

// WithPlanPolicy overrides the published plan ceilings
func WithPlanPolicy(policy PlanPolicy) EmpresaDomainServiceOption {
	return func(s *EmpresaDomainService) {
		if policy.MaxFiliais != nil {
			s.planPolicy = policy
		}
	}
}

// NewEmpresaDomainService creates a new EmpresaDomainService
func NewEmpresaDomainService(repo EmpresaRepository, opts ...EmpresaDomainServiceOption) *EmpresaDomainService {
	s := &EmpresaDomainService{
		repo:       repo,
		planPolicy: DefaultPlanPolicy(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ValidateEmpresaCreation checks CNPJ and e-mail uniqueness for a new
// company. Both checks run independently so a caller violating both
// rules sees both messages in a single failure.
func (s *EmpresaDomainService) ValidateEmpresaCreation(ctx context.Context, cnpj valueobject.Cnpj, email valueobject.Email) shared.Result[shared.Void] {
	return s.validateUniqueness(ctx, cnpj, email, nil)
}

// ValidateEmpresaUpdate checks CNPJ and e-mail uniqueness for an
// existing company, excluding the company itself from both checks.
func (s *EmpresaDomainService) ValidateEmpresaUpdate(ctx context.Context, empresaID uuid.UUID, cnpj valueobject.Cnpj, email valueobject.Email) shared.Result[shared.Void] {
	return s.validateUniqueness(ctx, cnpj, email, &empresaID)
}

func (s *EmpresaDomainService) validateUniqueness(ctx context.Context, cnpj valueobject.Cnpj, email valueobject.Email, excludeID *uuid.UUID) shared.Result[shared.Void] {
	cnpjResult := shared.OK()
	exists, err := s.repo.ExistsByCnpj(ctx, cnpj, excludeID)
	if err != nil {
		return shared.FailureFromError[shared.Void](err)
	}
	if exists {
		cnpjResult = shared.Fail("Já existe uma empresa com este CNPJ")
	}

	emailResult := shared.OK()
	exists, err = s.repo.ExistsByEmail(ctx, email, excludeID)
	if err != nil {
		return shared.FailureFromError[shared.Void](err)
	}
	if exists {
		emailResult = shared.Fail("Já existe uma empresa com este e-mail")
	}

	return shared.Combine(cnpjResult, emailResult)
}

// ValidateEmpresaInactivation blocks inactivation while the company
// still has active branches, reporting how many are in the way.
func (s *EmpresaDomainService) ValidateEmpresaInactivation(ctx context.Context, empresaID uuid.UUID) shared.Result[shared.Void] {
	count, err := s.repo.CountFiliaisAtivas(ctx, empresaID)
	if err != nil {
		return shared.FailureFromError[shared.Void](err)
	}
	if count > 0 {
		return shared.Fail(fmt.Sprintf("Empresa possui %d filial(is) ativa(s) e não pode ser inativada", count))
	}
	return shared.OK()
}

// CanCreateMoreFiliais answers whether the company may open another
// branch under its subscription plan. A missing or lapsed subscription
// is itself a failure, not a "false" capacity answer.
func (s *EmpresaDomainService) CanCreateMoreFiliais(ctx context.Context, empresaID uuid.UUID) shared.Result[bool] {
	empresa, err := s.repo.GetByID(ctx, empresaID)
	if err != nil {
		return shared.FailureFromError[bool](err)
	}
	if empresa == nil {
		return shared.Failure[bool]("Empresa não encontrada")
	}
	if empresa.AssinaturaAtiva == nil || !empresa.AssinaturaAtiva.EstaVigente() {
		return shared.Failure[bool]("Empresa não possui assinatura ativa")
	}

	limit := s.planPolicy.limitFor(empresa.AssinaturaAtiva.Plano)
	if limit == SemLimite {
		return shared.Success(true)
	}

	count, err := s.repo.CountFiliaisAtivas(ctx, empresaID)
	if err != nil {
		return shared.FailureFromError[bool](err)
	}
	return shared.Success(count < limit)
}

// ValidateEmpresaHierarchy checks that a branch belongs to the given
// company and that adding it would not produce a second headquarters.
func (s *EmpresaDomainService) ValidateEmpresaHierarchy(empresa *Empresa, filial *Filial) shared.Result[shared.Void] {
	if empresa == nil || filial == nil {
		return shared.Fail("Empresa e filial são obrigatórias")
	}
	if filial.EmpresaID != empresa.ID {
		return shared.Fail("Filial não pertence a esta empresa")
	}
	if filial.Matriz {
		if matriz := empresa.FilialMatriz(); matriz != nil && matriz.ID != filial.ID {
			return shared.Fail("Empresa já possui uma filial matriz")
		}
	}
	return shared.OK()
}

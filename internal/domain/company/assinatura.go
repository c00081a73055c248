package company

import (
	"time"

	"github.com/restoerp/backend/internal/domain/shared"
)

// Plano represents a subscription plan tier
type Plano string

const (
	PlanoBasico       Plano = "Básico"
	PlanoProfissional Plano = "Profissional"
	PlanoEnterprise   Plano = "Enterprise"
)

// SemLimite marks a plan ceiling as unlimited.
const SemLimite = -1

// MaxFiliais returns the published branch ceiling for the plan and
// whether the plan is limited at all.
func (p Plano) MaxFiliais() (int, bool) {
	switch p {
	case PlanoBasico:
		return 1, true
	case PlanoProfissional:
		return 5, true
	case PlanoEnterprise:
		return SemLimite, false
	}
	return 0, true
}

// IsValid returns true for a known plan tier.
func (p Plano) IsValid() bool {
	switch p {
	case PlanoBasico, PlanoProfissional, PlanoEnterprise:
		return true
	}
	return false
}

// Assinatura is a company subscription: a plan tier, an active flag
// and an optional expiry date. A subscription flagged active must not
// be past its expiry; Empresa enforces that invariant.
type Assinatura struct {
	Plano         Plano
	Ativa         bool
	DataInicio    time.Time
	DataExpiracao *time.Time
}

// NewAssinatura creates an active subscription for a known plan tier.
// A nil expiry means the subscription does not expire.
func NewAssinatura(plano Plano, dataExpiracao *time.Time) (Assinatura, error) {
	if !plano.IsValid() {
		return Assinatura{}, shared.NewValidationError("plano de assinatura inválido")
	}
	if dataExpiracao != nil && !dataExpiracao.After(time.Now()) {
		return Assinatura{}, shared.NewValidationError("data de expiração da assinatura deve ser futura")
	}
	return Assinatura{
		Plano:         plano,
		Ativa:         true,
		DataInicio:    time.Now(),
		DataExpiracao: dataExpiracao,
	}, nil
}

// Expirada returns true if the expiry date has passed.
func (a Assinatura) Expirada() bool {
	return a.DataExpiracao != nil && time.Now().After(*a.DataExpiracao)
}

// EstaVigente returns true for an active, non-expired subscription.
func (a Assinatura) EstaVigente() bool {
	return a.Ativa && !a.Expirada()
}

// Cancelar returns a cancelled copy of the subscription.
func (a Assinatura) Cancelar() Assinatura {
	a.Ativa = false
	return a
}

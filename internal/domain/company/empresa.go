package company

import (
	"strings"

	"github.com/restoerp/backend/internal/domain/shared"
	"github.com/restoerp/backend/internal/domain/shared/valueobject"
)

// Empresa is the tenant root of the system: a registered company with
// its branches and subscription. All mutators revalidate the affected
// invariants, stamp the alteration time, increment Version and raise a
// domain event; removal is only ever soft-deactivation.
type Empresa struct {
	shared.BaseAggregateRoot
	RazaoSocial     string
	NomeFantasia    string
	Cnpj            valueobject.Cnpj
	Email           valueobject.Email
	Telefone        valueobject.Telefone
	Endereco        valueobject.Endereco
	Filiais         []Filial
	AssinaturaAtiva *Assinatura
}

// NewEmpresa creates a company. Uniqueness of CNPJ/e-mail across
// companies is the domain service's concern, not the constructor's.
func NewEmpresa(razaoSocial, nomeFantasia string, cnpj valueobject.Cnpj, email valueobject.Email, endereco valueobject.Endereco) (*Empresa, error) {
	if err := validateRazaoSocial(razaoSocial); err != nil {
		return nil, err
	}
	if nomeFantasia != "" && len(nomeFantasia) > 200 {
		return nil, shared.NewValidationError("nome fantasia não pode exceder 200 caracteres")
	}
	if cnpj.IsZero() {
		return nil, shared.NewValidationError("CNPJ da empresa é obrigatório")
	}
	if email.IsZero() {
		return nil, shared.NewValidationError("e-mail da empresa é obrigatório")
	}
	if endereco.IsZero() {
		return nil, shared.NewValidationError("endereço da empresa é obrigatório")
	}

	empresa := &Empresa{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		RazaoSocial:       strings.TrimSpace(razaoSocial),
		NomeFantasia:      strings.TrimSpace(nomeFantasia),
		Cnpj:              cnpj,
		Email:             email,
		Endereco:          endereco,
		Filiais:           make([]Filial, 0),
	}

	empresa.AddDomainEvent(NewEmpresaCreatedEvent(empresa))

	return empresa, nil
}

// AtualizarDados updates the company's registration data.
func (e *Empresa) AtualizarDados(razaoSocial, nomeFantasia string, telefone valueobject.Telefone, endereco valueobject.Endereco) error {
	if err := validateRazaoSocial(razaoSocial); err != nil {
		return err
	}
	if nomeFantasia != "" && len(nomeFantasia) > 200 {
		return shared.NewValidationError("nome fantasia não pode exceder 200 caracteres")
	}
	if endereco.IsZero() {
		return shared.NewValidationError("endereço da empresa é obrigatório")
	}

	e.RazaoSocial = strings.TrimSpace(razaoSocial)
	e.NomeFantasia = strings.TrimSpace(nomeFantasia)
	e.Telefone = telefone
	e.Endereco = endereco
	e.Touch()
	e.IncrementVersion()

	e.AddDomainEvent(NewEmpresaUpdatedEvent(e))
	e.assertConsistent()

	return nil
}

// AtualizarEmail updates the company's e-mail address.
func (e *Empresa) AtualizarEmail(email valueobject.Email) error {
	if email.IsZero() {
		return shared.NewValidationError("e-mail da empresa é obrigatório")
	}

	e.Email = email
	e.Touch()
	e.IncrementVersion()

	e.AddDomainEvent(NewEmpresaUpdatedEvent(e))

	return nil
}

// AdicionarFilial adds a branch to the company. At most one branch may
// carry the Matriz flag.
func (e *Empresa) AdicionarFilial(filial *Filial) error {
	if filial == nil {
		return shared.NewValidationError("filial é obrigatória")
	}
	if filial.EmpresaID != e.ID {
		return shared.NewValidationError("filial não pertence a esta empresa")
	}
	if filial.Matriz && e.FilialMatriz() != nil {
		return shared.NewValidationError("empresa já possui uma filial matriz")
	}
	for _, f := range e.Filiais {
		if f.Cnpj.Equals(filial.Cnpj) {
			return shared.NewValidationError("empresa já possui uma filial com este CNPJ")
		}
	}

	e.Filiais = append(e.Filiais, *filial)
	e.Touch()
	e.IncrementVersion()

	e.AddDomainEvent(NewFilialAddedEvent(e, filial))
	e.assertConsistent()

	return nil
}

// FilialMatriz returns the headquarters branch, or nil if none is set.
func (e *Empresa) FilialMatriz() *Filial {
	for i := range e.Filiais {
		if e.Filiais[i].Matriz {
			return &e.Filiais[i]
		}
	}
	return nil
}

// FiliaisAtivas returns the number of active branches.
func (e *Empresa) FiliaisAtivas() int {
	count := 0
	for i := range e.Filiais {
		if e.Filiais[i].EstaAtiva() {
			count++
		}
	}
	return count
}

// DefinirAssinatura sets the company's active subscription.
func (e *Empresa) DefinirAssinatura(assinatura Assinatura) error {
	if !assinatura.Plano.IsValid() {
		return shared.NewValidationError("plano de assinatura inválido")
	}
	if assinatura.Ativa && assinatura.Expirada() {
		return shared.NewValidationError("assinatura ativa não pode estar expirada")
	}

	e.AssinaturaAtiva = &assinatura
	e.Touch()
	e.IncrementVersion()

	e.AddDomainEvent(NewAssinaturaChangedEvent(e, assinatura.Plano, assinatura.Ativa))
	e.assertConsistent()

	return nil
}

// CancelarAssinatura cancels the active subscription.
func (e *Empresa) CancelarAssinatura() error {
	if e.AssinaturaAtiva == nil {
		return shared.NewDomainError("NO_SUBSCRIPTION", "empresa não possui assinatura")
	}

	cancelada := e.AssinaturaAtiva.Cancelar()
	e.AssinaturaAtiva = &cancelada
	e.Touch()
	e.IncrementVersion()

	e.AddDomainEvent(NewAssinaturaChangedEvent(e, cancelada.Plano, false))

	return nil
}

// Ativar activates the company.
func (e *Empresa) Ativar() {
	if e.Ativa {
		return
	}
	e.BaseEntity.Ativar()
	e.IncrementVersion()
	e.AddDomainEvent(NewEmpresaStatusChangedEvent(e, true))
}

// Inativar deactivates the company. Whether inactivation is allowed at
// all (no active branches remaining) is validated by the domain
// service against repository state before this is called.
func (e *Empresa) Inativar() {
	if !e.Ativa {
		return
	}
	e.BaseEntity.Inativar()
	e.IncrementVersion()
	e.AddDomainEvent(NewEmpresaStatusChangedEvent(e, false))
}

// ValidateInvariants checks the aggregate's structural invariants: at
// most one headquarters branch, and an active subscription must not be
// past its expiry.
func (e *Empresa) ValidateInvariants() error {
	var violations []string

	matrizes := 0
	for i := range e.Filiais {
		if e.Filiais[i].Matriz {
			matrizes++
		}
	}
	if matrizes > 1 {
		violations = append(violations, "empresa não pode ter mais de uma filial matriz")
	}

	if e.AssinaturaAtiva != nil && e.AssinaturaAtiva.Ativa && e.AssinaturaAtiva.Expirada() {
		violations = append(violations, "assinatura ativa não pode estar expirada")
	}

	if len(violations) > 0 {
		return shared.NewInvariantViolationError(AggregateTypeEmpresa, violations)
	}
	return nil
}

// assertConsistent panics if the invariants no longer hold after a
// mutation. Reaching this means a guard upstream let bad state through
// and the in-memory graph cannot be trusted.
func (e *Empresa) assertConsistent() {
	if err := e.ValidateInvariants(); err != nil {
		panic(err)
	}
}

func validateRazaoSocial(razaoSocial string) error {
	razaoSocial = strings.TrimSpace(razaoSocial)
	if razaoSocial == "" {
		return shared.NewValidationError("razão social não pode ser vazia")
	}
	if len(razaoSocial) > 200 {
		return shared.NewValidationError("razão social não pode exceder 200 caracteres")
	}
	return nil
}

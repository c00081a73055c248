package company

import (
	"github.com/google/uuid"
	"github.com/restoerp/backend/internal/domain/shared"
)

// Aggregate type constant
const AggregateTypeEmpresa = "Empresa"

// Event type constants
const (
	EventTypeEmpresaCreated       = "EmpresaCreated"
	EventTypeEmpresaUpdated       = "EmpresaUpdated"
	EventTypeEmpresaStatusChanged = "EmpresaStatusChanged"
	EventTypeFilialAdded          = "FilialAdded"
	EventTypeAssinaturaChanged    = "AssinaturaChanged"
)

// EmpresaCreatedEvent is raised when a new company is registered
type EmpresaCreatedEvent struct {
	shared.BaseDomainEvent
	RazaoSocial string `json:"razao_social"`
	Cnpj        string `json:"cnpj"`
	Email       string `json:"email"`
}

// NewEmpresaCreatedEvent creates a new EmpresaCreatedEvent
func NewEmpresaCreatedEvent(empresa *Empresa) *EmpresaCreatedEvent {
	return &EmpresaCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeEmpresaCreated, AggregateTypeEmpresa, empresa.ID, empresa.ID),
		RazaoSocial:     empresa.RazaoSocial,
		Cnpj:            empresa.Cnpj.OnlyDigits(),
		Email:           empresa.Email.Value(),
	}
}

// EmpresaUpdatedEvent is raised when a company's data changes
type EmpresaUpdatedEvent struct {
	shared.BaseDomainEvent
	RazaoSocial string `json:"razao_social"`
}

// NewEmpresaUpdatedEvent creates a new EmpresaUpdatedEvent
func NewEmpresaUpdatedEvent(empresa *Empresa) *EmpresaUpdatedEvent {
	return &EmpresaUpdatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeEmpresaUpdated, AggregateTypeEmpresa, empresa.ID, empresa.ID),
		RazaoSocial:     empresa.RazaoSocial,
	}
}

// EmpresaStatusChangedEvent is raised on activation/inactivation
type EmpresaStatusChangedEvent struct {
	shared.BaseDomainEvent
	Ativa bool `json:"ativa"`
}

// NewEmpresaStatusChangedEvent creates a new EmpresaStatusChangedEvent
func NewEmpresaStatusChangedEvent(empresa *Empresa, ativa bool) *EmpresaStatusChangedEvent {
	return &EmpresaStatusChangedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeEmpresaStatusChanged, AggregateTypeEmpresa, empresa.ID, empresa.ID),
		Ativa:           ativa,
	}
}

// FilialAddedEvent is raised when a branch is added to a company
type FilialAddedEvent struct {
	shared.BaseDomainEvent
	FilialID uuid.UUID `json:"filial_id"`
	Nome     string    `json:"nome"`
	Matriz   bool      `json:"matriz"`
}

// NewFilialAddedEvent creates a new FilialAddedEvent
func NewFilialAddedEvent(empresa *Empresa, filial *Filial) *FilialAddedEvent {
	return &FilialAddedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeFilialAdded, AggregateTypeEmpresa, empresa.ID, empresa.ID),
		FilialID:        filial.ID,
		Nome:            filial.Nome,
		Matriz:          filial.Matriz,
	}
}

// AssinaturaChangedEvent is raised when the subscription changes
type AssinaturaChangedEvent struct {
	shared.BaseDomainEvent
	Plano Plano `json:"plano"`
	Ativa bool  `json:"ativa"`
}

// NewAssinaturaChangedEvent creates a new AssinaturaChangedEvent
func NewAssinaturaChangedEvent(empresa *Empresa, plano Plano, ativa bool) *AssinaturaChangedEvent {
	return &AssinaturaChangedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeAssinaturaChanged, AggregateTypeEmpresa, empresa.ID, empresa.ID),
		Plano:           plano,
		Ativa:           ativa,
	}
}

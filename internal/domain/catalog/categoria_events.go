package catalog

import (
	"github.com/google/uuid"
	"github.com/restoerp/backend/internal/domain/shared"
)

// Aggregate type constants
const (
	AggregateTypeCategoria = "Categoria"
	AggregateTypeProduto   = "Produto"
)

// Event type constants
const (
	EventTypeCategoriaCreated       = "CategoriaCreated"
	EventTypeCategoriaUpdated       = "CategoriaUpdated"
	EventTypeCategoriaStatusChanged = "CategoriaStatusChanged"
)

// CategoriaCreatedEvent is raised when a category is created
type CategoriaCreatedEvent struct {
	shared.BaseDomainEvent
	CentroCustoID  uuid.UUID  `json:"centro_custo_id"`
	CategoriaPaiID *uuid.UUID `json:"categoria_pai_id,omitempty"`
	Codigo         string     `json:"codigo"`
	Nome           string     `json:"nome"`
	Nivel          int        `json:"nivel"`
}

// NewCategoriaCreatedEvent creates a new CategoriaCreatedEvent
func NewCategoriaCreatedEvent(categoria *Categoria) *CategoriaCreatedEvent {
	return &CategoriaCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeCategoriaCreated, AggregateTypeCategoria, categoria.ID, categoria.EmpresaID),
		CentroCustoID:   categoria.CentroCustoID,
		CategoriaPaiID:  categoria.CategoriaPaiID,
		Codigo:          categoria.Codigo,
		Nome:            categoria.Nome,
		Nivel:           categoria.Nivel,
	}
}

// CategoriaUpdatedEvent is raised when a category's data changes
type CategoriaUpdatedEvent struct {
	shared.BaseDomainEvent
	Nome string `json:"nome"`
}

// NewCategoriaUpdatedEvent creates a new CategoriaUpdatedEvent
func NewCategoriaUpdatedEvent(categoria *Categoria) *CategoriaUpdatedEvent {
	return &CategoriaUpdatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeCategoriaUpdated, AggregateTypeCategoria, categoria.ID, categoria.EmpresaID),
		Nome:            categoria.Nome,
	}
}

// CategoriaStatusChangedEvent is raised on activation/inactivation
type CategoriaStatusChangedEvent struct {
	shared.BaseDomainEvent
	Ativa bool `json:"ativa"`
}

// NewCategoriaStatusChangedEvent creates a new CategoriaStatusChangedEvent
func NewCategoriaStatusChangedEvent(categoria *Categoria, ativa bool) *CategoriaStatusChangedEvent {
	return &CategoriaStatusChangedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeCategoriaStatusChanged, AggregateTypeCategoria, categoria.ID, categoria.EmpresaID),
		Ativa:           ativa,
	}
}

package catalog

import (
	"github.com/google/uuid"
	"github.com/restoerp/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Event type constants
const (
	EventTypeProdutoCreated       = "ProdutoCreated"
	EventTypeProdutoUpdated       = "ProdutoUpdated"
	EventTypeProdutoPrecoAlterado = "ProdutoPrecoAlterado"
	EventTypeProdutoStatusChanged = "ProdutoStatusChanged"
)

// ProdutoCreatedEvent is raised when a product is created
type ProdutoCreatedEvent struct {
	shared.BaseDomainEvent
	CategoriaID uuid.UUID       `json:"categoria_id"`
	Codigo      string          `json:"codigo"`
	Nome        string          `json:"nome"`
	Preco       decimal.Decimal `json:"preco"`
}

// NewProdutoCreatedEvent creates a new ProdutoCreatedEvent
func NewProdutoCreatedEvent(produto *Produto) *ProdutoCreatedEvent {
	return &ProdutoCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeProdutoCreated, AggregateTypeProduto, produto.ID, produto.EmpresaID),
		CategoriaID:     produto.CategoriaID,
		Codigo:          produto.Codigo,
		Nome:            produto.Nome,
		Preco:           produto.Preco,
	}
}

// ProdutoUpdatedEvent is raised when a product's data or configuration changes
type ProdutoUpdatedEvent struct {
	shared.BaseDomainEvent
	Nome           string `json:"nome"`
	ProdutoVenda   bool   `json:"produto_venda"`
	ProdutoEstoque bool   `json:"produto_estoque"`
}

// NewProdutoUpdatedEvent creates a new ProdutoUpdatedEvent
func NewProdutoUpdatedEvent(produto *Produto) *ProdutoUpdatedEvent {
	return &ProdutoUpdatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeProdutoUpdated, AggregateTypeProduto, produto.ID, produto.EmpresaID),
		Nome:            produto.Nome,
		ProdutoVenda:    produto.ProdutoVenda,
		ProdutoEstoque:  produto.ProdutoEstoque,
	}
}

// ProdutoPrecoAlteradoEvent records a price change with both values
type ProdutoPrecoAlteradoEvent struct {
	shared.BaseDomainEvent
	PrecoAnterior decimal.Decimal `json:"preco_anterior"`
	PrecoNovo     decimal.Decimal `json:"preco_novo"`
}

// NewProdutoPrecoAlteradoEvent creates a new ProdutoPrecoAlteradoEvent
func NewProdutoPrecoAlteradoEvent(produto *Produto, anterior, novo decimal.Decimal) *ProdutoPrecoAlteradoEvent {
	return &ProdutoPrecoAlteradoEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeProdutoPrecoAlterado, AggregateTypeProduto, produto.ID, produto.EmpresaID),
		PrecoAnterior:   anterior,
		PrecoNovo:       novo,
	}
}

// ProdutoStatusChangedEvent is raised on activation/inactivation
type ProdutoStatusChangedEvent struct {
	shared.BaseDomainEvent
	Ativa bool `json:"ativa"`
}

// NewProdutoStatusChangedEvent creates a new ProdutoStatusChangedEvent
func NewProdutoStatusChangedEvent(produto *Produto, ativa bool) *ProdutoStatusChangedEvent {
	return &ProdutoStatusChangedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeProdutoStatusChanged, AggregateTypeProduto, produto.ID, produto.EmpresaID),
		Ativa:           ativa,
	}
}

package catalog

import (
	"strings"

	"github.com/google/uuid"
	"github.com/restoerp/backend/internal/domain/shared"
	"github.com/restoerp/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// MaxPrecoProduto is the hard ceiling on a product's price.
var MaxPrecoProduto = decimal.RequireFromString("1000000.00")

// Ingrediente links a product to one of its components, e.g. a recipe
// item of a menu dish.
type Ingrediente struct {
	ProdutoIngredienteID uuid.UUID
	Nome                 string
	Quantidade           valueobject.Quantidade
}

// NewIngrediente creates a recipe ingredient.
func NewIngrediente(produtoIngredienteID uuid.UUID, nome string, quantidade valueobject.Quantidade) (Ingrediente, error) {
	if produtoIngredienteID == uuid.Nil {
		return Ingrediente{}, shared.NewValidationError("ingrediente deve referenciar um produto")
	}
	nome = strings.TrimSpace(nome)
	if nome == "" {
		return Ingrediente{}, shared.NewValidationError("nome do ingrediente não pode ser vazio")
	}
	if quantidade.IsZero() {
		return Ingrediente{}, shared.NewValidationError("quantidade do ingrediente deve ser maior que zero")
	}
	return Ingrediente{
		ProdutoIngredienteID: produtoIngredienteID,
		Nome:                 nome,
		Quantidade:           quantidade,
	}, nil
}

// Produto is a sellable and/or stock-controlled item of a category.
// Preco is kept as a plain decimal at the entity level; monetary math
// around it (discounts, margins) goes through the value objects.
type Produto struct {
	shared.BaseAggregateRoot
	EmpresaID      uuid.UUID
	CategoriaID    uuid.UUID
	Codigo         string
	Nome           string
	Descricao      string
	Preco          decimal.Decimal
	UnidadeMedida  string
	ProdutoVenda   bool
	ProdutoEstoque bool
	Ingredientes   []Ingrediente
}

// NewProduto creates a product. Code and per-category name uniqueness
// are the domain service's concern.
func NewProduto(empresaID, categoriaID uuid.UUID, codigo, nome, descricao string, preco decimal.Decimal, unidadeMedida string, produtoVenda, produtoEstoque bool) (*Produto, error) {
	if empresaID == uuid.Nil {
		return nil, shared.NewValidationError("produto deve pertencer a uma empresa")
	}
	if categoriaID == uuid.Nil {
		return nil, shared.NewValidationError("produto deve referenciar uma categoria")
	}
	if err := validateCodigoProduto(codigo); err != nil {
		return nil, err
	}
	if err := validateNomeProduto(nome); err != nil {
		return nil, err
	}
	if err := validatePreco(preco); err != nil {
		return nil, err
	}
	if strings.TrimSpace(unidadeMedida) == "" {
		return nil, shared.NewValidationError("unidade de medida do produto não pode ser vazia")
	}
	if !produtoVenda && !produtoEstoque {
		return nil, shared.NewValidationError("produto deve ser de venda, de estoque ou ambos")
	}

	produto := &Produto{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		EmpresaID:         empresaID,
		CategoriaID:       categoriaID,
		Codigo:            strings.TrimSpace(codigo),
		Nome:              strings.TrimSpace(nome),
		Descricao:         strings.TrimSpace(descricao),
		Preco:             preco.Round(2),
		UnidadeMedida:     strings.ToUpper(strings.TrimSpace(unidadeMedida)),
		ProdutoVenda:      produtoVenda,
		ProdutoEstoque:    produtoEstoque,
		Ingredientes:      make([]Ingrediente, 0),
	}

	produto.AddDomainEvent(NewProdutoCreatedEvent(produto))

	return produto, nil
}

// AtualizarDados updates the product's name and description.
func (p *Produto) AtualizarDados(nome, descricao string) error {
	if err := validateNomeProduto(nome); err != nil {
		return err
	}

	p.Nome = strings.TrimSpace(nome)
	p.Descricao = strings.TrimSpace(descricao)
	p.Touch()
	p.IncrementVersion()

	p.AddDomainEvent(NewProdutoUpdatedEvent(p))
	p.assertConsistent()

	return nil
}

// AtualizarPreco changes the product's price and records the change.
// Swing-size policy (fat-finger guard) is enforced by the domain
// service before this is called.
func (p *Produto) AtualizarPreco(novoPreco decimal.Decimal) error {
	if err := validatePreco(novoPreco); err != nil {
		return err
	}

	precoAnterior := p.Preco
	p.Preco = novoPreco.Round(2)
	p.Touch()
	p.IncrementVersion()

	p.AddDomainEvent(NewProdutoPrecoAlteradoEvent(p, precoAnterior, p.Preco))
	p.assertConsistent()

	return nil
}

// AtivarParaVenda marks the product as sellable.
func (p *Produto) AtivarParaVenda() error {
	if err := validatePreco(p.Preco); err != nil {
		return shared.NewValidationError("produto sem preço válido não pode ser ativado para venda")
	}
	if p.ProdutoVenda {
		return nil
	}

	p.ProdutoVenda = true
	p.Touch()
	p.IncrementVersion()
	p.AddDomainEvent(NewProdutoUpdatedEvent(p))

	return nil
}

// DesativarParaVenda removes the product from sale. A product must
// remain sellable or stock-controlled.
func (p *Produto) DesativarParaVenda() error {
	if !p.ProdutoVenda {
		return nil
	}
	if !p.ProdutoEstoque {
		return shared.NewValidationError("produto deve ser de venda, de estoque ou ambos")
	}

	p.ProdutoVenda = false
	p.Touch()
	p.IncrementVersion()
	p.AddDomainEvent(NewProdutoUpdatedEvent(p))

	return nil
}

// AtivarControleEstoque enables stock control for the product.
func (p *Produto) AtivarControleEstoque() {
	if p.ProdutoEstoque {
		return
	}
	p.ProdutoEstoque = true
	p.Touch()
	p.IncrementVersion()
	p.AddDomainEvent(NewProdutoUpdatedEvent(p))
}

// AdicionarIngrediente adds a recipe ingredient. The product must be
// active and must not reference itself or repeat an ingredient.
func (p *Produto) AdicionarIngrediente(ingrediente Ingrediente) error {
	if !p.Ativa {
		return shared.NewValidationError("produto inativo não pode receber ingredientes")
	}
	if ingrediente.ProdutoIngredienteID == p.ID {
		return shared.NewValidationError("produto não pode ser ingrediente de si mesmo")
	}
	for _, i := range p.Ingredientes {
		if i.ProdutoIngredienteID == ingrediente.ProdutoIngredienteID {
			return shared.NewValidationError("produto já possui este ingrediente")
		}
	}

	p.Ingredientes = append(p.Ingredientes, ingrediente)
	p.Touch()
	p.IncrementVersion()

	p.AddDomainEvent(NewProdutoUpdatedEvent(p))
	p.assertConsistent()

	return nil
}

// Ativar activates the product.
func (p *Produto) Ativar() {
	if p.Ativa {
		return
	}
	p.BaseEntity.Ativar()
	p.IncrementVersion()
	p.AddDomainEvent(NewProdutoStatusChangedEvent(p, true))
}

// Inativar deactivates the product. Ingredient lists only make sense
// on active products, so they are cleared on the way out.
func (p *Produto) Inativar() {
	if !p.Ativa {
		return
	}
	p.BaseEntity.Inativar()
	p.Ingredientes = p.Ingredientes[:0]
	p.IncrementVersion()
	p.AddDomainEvent(NewProdutoStatusChangedEvent(p, false))
}

// ValidateInvariants checks the product's structural invariants.
func (p *Produto) ValidateInvariants() error {
	var violations []string

	if !p.Preco.IsPositive() {
		violations = append(violations, "preço do produto deve ser maior que zero")
	}
	if p.Preco.GreaterThan(MaxPrecoProduto) {
		violations = append(violations, "preço do produto não pode exceder R$ 1.000.000,00")
	}
	if p.ProdutoVenda && !p.Preco.IsPositive() {
		violations = append(violations, "produto de venda deve ter preço válido")
	}
	if !p.Ativa && len(p.Ingredientes) > 0 {
		violations = append(violations, "produto com ingredientes deve estar ativo")
	}

	if len(violations) > 0 {
		return shared.NewInvariantViolationError(AggregateTypeProduto, violations)
	}
	return nil
}

func (p *Produto) assertConsistent() {
	if err := p.ValidateInvariants(); err != nil {
		panic(err)
	}
}

func validatePreco(preco decimal.Decimal) error {
	if !preco.IsPositive() {
		return shared.NewValidationError("preço do produto deve ser maior que zero")
	}
	if preco.GreaterThan(MaxPrecoProduto) {
		return shared.NewValidationError("preço do produto não pode exceder R$ 1.000.000,00")
	}
	return nil
}

func validateCodigoProduto(codigo string) error {
	codigo = strings.TrimSpace(codigo)
	if codigo == "" {
		return shared.NewValidationError("código do produto não pode ser vazio")
	}
	if len(codigo) > 50 {
		return shared.NewValidationError("código do produto não pode exceder 50 caracteres")
	}
	return nil
}

func validateNomeProduto(nome string) error {
	nome = strings.TrimSpace(nome)
	if nome == "" {
		return shared.NewValidationError("nome do produto não pode ser vazio")
	}
	if len(nome) > 100 {
		return shared.NewValidationError("nome do produto não pode exceder 100 caracteres")
	}
	return nil
}

package catalog

import (
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/restoerp/backend/internal/domain/shared"
)

// Category hierarchy depth limits.
const (
	NivelMinimo = 1
	NivelMaximo = 3
)

// Categoria is a node of the product category tree under a cost
// center. Levels run 1..3; a level-1 category is a root and has no
// parent, deeper levels always do. Children and products loaded with
// the aggregate participate in its invariants.
type Categoria struct {
	shared.BaseAggregateRoot
	EmpresaID        uuid.UUID
	CentroCustoID    uuid.UUID
	CategoriaPaiID   *uuid.UUID
	Codigo           string
	Nome             string
	Descricao        string
	Nivel            int
	CategoriasFilhas []Categoria
	Produtos         []Produto
}

// NewCategoria creates a category. Structural level/parent rules are
// enforced here; the cross-aggregate rules (parent level, same cost
// center, code uniqueness) belong to CategoriaDomainService.
func NewCategoria(empresaID, centroCustoID uuid.UUID, categoriaPaiID *uuid.UUID, codigo, nome, descricao string, nivel int) (*Categoria, error) {
	if empresaID == uuid.Nil {
		return nil, shared.NewValidationError("categoria deve pertencer a uma empresa")
	}
	if centroCustoID == uuid.Nil {
		return nil, shared.NewValidationError("categoria deve referenciar um centro de custo")
	}
	if err := validateCodigoCategoria(codigo); err != nil {
		return nil, err
	}
	if err := validateNomeCategoria(nome); err != nil {
		return nil, err
	}
	if err := validateNivelParent(nivel, categoriaPaiID); err != nil {
		return nil, err
	}

	categoria := &Categoria{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		EmpresaID:         empresaID,
		CentroCustoID:     centroCustoID,
		CategoriaPaiID:    categoriaPaiID,
		Codigo:            strings.TrimSpace(codigo),
		Nome:              strings.TrimSpace(nome),
		Descricao:         strings.TrimSpace(descricao),
		Nivel:             nivel,
		CategoriasFilhas:  make([]Categoria, 0),
		Produtos:          make([]Produto, 0),
	}

	categoria.AddDomainEvent(NewCategoriaCreatedEvent(categoria))

	return categoria, nil
}

// AtualizarDados updates the category's name and description.
func (c *Categoria) AtualizarDados(nome, descricao string) error {
	if err := validateNomeCategoria(nome); err != nil {
		return err
	}

	c.Nome = strings.TrimSpace(nome)
	c.Descricao = strings.TrimSpace(descricao)
	c.Touch()
	c.IncrementVersion()

	c.AddDomainEvent(NewCategoriaUpdatedEvent(c))
	c.assertConsistent()

	return nil
}

// Ativar activates the category.
func (c *Categoria) Ativar() {
	if c.Ativa {
		return
	}
	c.BaseEntity.Ativar()
	c.IncrementVersion()
	c.AddDomainEvent(NewCategoriaStatusChangedEvent(c, true))
}

// Inativar deactivates the category. It refuses while active children
// or active products loaded in the aggregate would be orphaned; the
// domain service performs the same check against repository state for
// partially loaded aggregates.
func (c *Categoria) Inativar() error {
	if !c.Ativa {
		return nil
	}
	for i := range c.CategoriasFilhas {
		if c.CategoriasFilhas[i].EstaAtiva() {
			return shared.NewValidationError("categoria possui subcategorias ativas e não pode ser inativada")
		}
	}
	for i := range c.Produtos {
		if c.Produtos[i].EstaAtiva() {
			return shared.NewValidationError("categoria possui produtos ativos e não pode ser inativada")
		}
	}

	c.BaseEntity.Inativar()
	c.IncrementVersion()
	c.AddDomainEvent(NewCategoriaStatusChangedEvent(c, false))

	return nil
}

// FilhasAtivas returns the number of active child categories loaded in
// the aggregate.
func (c *Categoria) FilhasAtivas() int {
	count := 0
	for i := range c.CategoriasFilhas {
		if c.CategoriasFilhas[i].EstaAtiva() {
			count++
		}
	}
	return count
}

// ProdutosAtivos returns the number of active products loaded in the
// aggregate.
func (c *Categoria) ProdutosAtivos() int {
	count := 0
	for i := range c.Produtos {
		if c.Produtos[i].EstaAtiva() {
			count++
		}
	}
	return count
}

// ValidateInvariants checks the category's structural invariants.
func (c *Categoria) ValidateInvariants() error {
	var violations []string

	if c.Nivel < NivelMinimo || c.Nivel > NivelMaximo {
		violations = append(violations, "nível da categoria deve estar entre 1 e 3")
	}
	if c.Nivel == NivelMinimo && c.CategoriaPaiID != nil {
		violations = append(violations, "categoria de nível 1 não pode ter categoria pai")
	}
	if c.Nivel > NivelMinimo && c.CategoriaPaiID == nil {
		violations = append(violations, "categoria de nível maior que 1 deve ter categoria pai")
	}
	if c.CategoriaPaiID != nil && *c.CategoriaPaiID == c.ID {
		violations = append(violations, "categoria não pode ser pai de si mesma")
	}
	if !c.Ativa && (c.FilhasAtivas() > 0 || c.ProdutosAtivos() > 0) {
		violations = append(violations, "categoria com subcategorias ou produtos ativos deve estar ativa")
	}

	if len(violations) > 0 {
		return shared.NewInvariantViolationError(AggregateTypeCategoria, violations)
	}
	return nil
}

func (c *Categoria) assertConsistent() {
	if err := c.ValidateInvariants(); err != nil {
		panic(err)
	}
}

func validateNivelParent(nivel int, categoriaPaiID *uuid.UUID) error {
	if nivel < NivelMinimo || nivel > NivelMaximo {
		return shared.NewValidationError("nível da categoria deve estar entre 1 e 3")
	}
	if nivel == NivelMinimo && categoriaPaiID != nil {
		return shared.NewValidationError("categoria de nível 1 não pode ter categoria pai")
	}
	if nivel > NivelMinimo && categoriaPaiID == nil {
		return shared.NewValidationError("categoria de nível " + strconv.Itoa(nivel) + " deve ter uma categoria pai")
	}
	return nil
}

func validateCodigoCategoria(codigo string) error {
	codigo = strings.TrimSpace(codigo)
	if codigo == "" {
		return shared.NewValidationError("código da categoria não pode ser vazio")
	}
	if len(codigo) > 50 {
		return shared.NewValidationError("código da categoria não pode exceder 50 caracteres")
	}
	return nil
}

func validateNomeCategoria(nome string) error {
	nome = strings.TrimSpace(nome)
	if nome == "" {
		return shared.NewValidationError("nome da categoria não pode ser vazio")
	}
	if len(nome) > 100 {
		return shared.NewValidationError("nome da categoria não pode exceder 100 caracteres")
	}
	return nil
}

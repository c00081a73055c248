package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/restoerp/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// PriceSwingPolicy bounds how far a single price change may move
// relative to the current price. The defaults guard against fat-finger
// entry, not business pricing; deployments may override them through
// configuration.
type PriceSwingPolicy struct {
	MaxIncreaseRatio decimal.Decimal
	MaxDecreaseRatio decimal.Decimal
}

// DefaultPriceSwingPolicy returns the published swing bounds: a new
// price more than 5x or less than 0.5x the current one is rejected.
func DefaultPriceSwingPolicy() PriceSwingPolicy {
	return PriceSwingPolicy{
		MaxIncreaseRatio: decimal.RequireFromString("5.0"),
		MaxDecreaseRatio: decimal.RequireFromString("0.5"),
	}
}

// ProdutoDomainService evaluates cross-aggregate rules for products:
// uniqueness, category fitness, price-change sanity and margin math.
// Stateless and safe for concurrent use.
type ProdutoDomainService struct {
	produtoRepo   ProdutoRepository
	categoriaRepo CategoriaRepository
	priceSwing    PriceSwingPolicy
}

// ProdutoDomainServiceOption is a functional option for configuring ProdutoDomainService
type ProdutoDomainServiceOption func(*ProdutoDomainService)

// WithPriceSwingPolicy overrides the published price swing bounds
func WithPriceSwingPolicy(policy PriceSwingPolicy) ProdutoDomainServiceOption {
	return func(s *ProdutoDomainService) {
		if policy.MaxIncreaseRatio.IsPositive() && policy.MaxDecreaseRatio.IsPositive() {
			s.priceSwing = policy
		}
	}
}

// NewProdutoDomainService creates a new ProdutoDomainService
func NewProdutoDomainService(produtoRepo ProdutoRepository, categoriaRepo CategoriaRepository, opts ...ProdutoDomainServiceOption) *ProdutoDomainService {
	s := &ProdutoDomainService{
		produtoRepo:   produtoRepo,
		categoriaRepo: categoriaRepo,
		priceSwing:    DefaultPriceSwingPolicy(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ValidateProdutoCreation checks the placement rules for a new
// product: the category must exist and be active, the code must be
// unique across the catalog and the name unique within the category.
// The checks run independently so every violated rule is reported.
func (s *ProdutoDomainService) ValidateProdutoCreation(ctx context.Context, categoriaID uuid.UUID, codigo, nome string) shared.Result[shared.Void] {
	return s.validatePlacement(ctx, categoriaID, codigo, nome, nil)
}

// ValidateProdutoUpdate checks the placement rules for an existing
// product, excluding the product itself from the uniqueness checks.
func (s *ProdutoDomainService) ValidateProdutoUpdate(ctx context.Context, produtoID, categoriaID uuid.UUID, codigo, nome string) shared.Result[shared.Void] {
	return s.validatePlacement(ctx, categoriaID, codigo, nome, &produtoID)
}

func (s *ProdutoDomainService) validatePlacement(ctx context.Context, categoriaID uuid.UUID, codigo, nome string, excludeID *uuid.UUID) shared.Result[shared.Void] {
	categoriaResult := shared.OK()
	categoria, err := s.categoriaRepo.GetByID(ctx, categoriaID)
	if err != nil {
		return shared.FailureFromError[shared.Void](err)
	}
	switch {
	case categoria == nil:
		categoriaResult = shared.Fail("Categoria do produto não encontrada")
	case !categoria.EstaAtiva():
		categoriaResult = shared.Fail("Categoria do produto deve estar ativa")
	}

	codigoResult := shared.OK()
	exists, err := s.produtoRepo.ExistsByCodigo(ctx, codigo, excludeID)
	if err != nil {
		return shared.FailureFromError[shared.Void](err)
	}
	if exists {
		codigoResult = shared.Fail("Já existe um produto com este código")
	}

	nomeResult := shared.OK()
	exists, err = s.produtoRepo.ExistsByNomeInCategoria(ctx, categoriaID, nome, excludeID)
	if err != nil {
		return shared.FailureFromError[shared.Void](err)
	}
	if exists {
		nomeResult = shared.Fail("Já existe um produto com este nome nesta categoria")
	}

	return shared.Combine(categoriaResult, codigoResult, nomeResult)
}

// ValidatePriceChange rejects a non-positive new price and any change
// whose ratio to the current price exceeds the swing bounds: strictly
// greater than MaxIncreaseRatio or strictly less than
// MaxDecreaseRatio. A ratio exactly at a bound passes.
func (s *ProdutoDomainService) ValidatePriceChange(current, novo decimal.Decimal) shared.Result[shared.Void] {
	if !novo.IsPositive() {
		return shared.Fail("Novo preço deve ser maior que zero")
	}
	if !current.IsPositive() {
		// no previous price to compare against, accept the new one
		return shared.OK()
	}

	ratio := novo.Div(current)
	if ratio.GreaterThan(s.priceSwing.MaxIncreaseRatio) {
		return shared.Fail("Variação de preço muito alta: aumento superior a " + s.priceSwing.MaxIncreaseRatio.String() + "x o preço atual")
	}
	if ratio.LessThan(s.priceSwing.MaxDecreaseRatio) {
		return shared.Fail("Variação de preço muito alta: redução superior a " + s.priceSwing.MaxDecreaseRatio.Mul(decimal.NewFromInt(100)).String() + "% do preço atual")
	}
	return shared.OK()
}

// ValidateProdutoConfiguration requires a product to serve at least
// one purpose: for sale, stock-controlled, or both.
func (s *ProdutoDomainService) ValidateProdutoConfiguration(produtoVenda, produtoEstoque bool) shared.Result[shared.Void] {
	if !produtoVenda && !produtoEstoque {
		return shared.Fail("Produto deve ser de venda, de estoque ou ambos")
	}
	return shared.OK()
}

// CalculateProfitMargin computes the margin of a sale over its cost as
// a percentage of the sale price, rounded to 2 decimal places:
// ((sale - cost) / sale) * 100.
func (s *ProdutoDomainService) CalculateProfitMargin(custo, venda decimal.Decimal) shared.Result[decimal.Decimal] {
	if !custo.IsPositive() {
		return shared.Failure[decimal.Decimal]("Custo deve ser maior que zero")
	}
	if !venda.IsPositive() {
		return shared.Failure[decimal.Decimal]("Preço de venda deve ser maior que zero")
	}
	if venda.LessThan(custo) {
		return shared.Failure[decimal.Decimal]("Preço de venda não pode ser menor que o custo")
	}

	margin := venda.Sub(custo).Div(venda).Mul(decimal.NewFromInt(100)).Round(2)
	return shared.Success(margin)
}

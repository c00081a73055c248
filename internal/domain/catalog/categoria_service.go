package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/restoerp/backend/internal/domain/shared"
)

// CategoriaDomainService evaluates cross-aggregate rules for the
// category tree: parenting, removal gating and path resolution. It is
// stateless and safe for concurrent use.
type CategoriaDomainService struct {
	categoriaRepo CategoriaRepository
	produtoRepo   ProdutoRepository
}

// NewCategoriaDomainService creates a new CategoriaDomainService
func NewCategoriaDomainService(categoriaRepo CategoriaRepository, produtoRepo ProdutoRepository) *CategoriaDomainService {
	return &CategoriaDomainService{
		categoriaRepo: categoriaRepo,
		produtoRepo:   produtoRepo,
	}
}

// ValidateCategoriaCreation checks that no category in the cost center
// already uses the code.
func (s *CategoriaDomainService) ValidateCategoriaCreation(ctx context.Context, centroCustoID uuid.UUID, codigo string) shared.Result[shared.Void] {
	return s.validateCodigoUnico(ctx, centroCustoID, codigo, nil)
}

// ValidateCategoriaUpdate checks the code uniqueness rule for an
// existing category, excluding the category itself.
func (s *CategoriaDomainService) ValidateCategoriaUpdate(ctx context.Context, categoriaID, centroCustoID uuid.UUID, codigo string) shared.Result[shared.Void] {
	return s.validateCodigoUnico(ctx, centroCustoID, codigo, &categoriaID)
}

func (s *CategoriaDomainService) validateCodigoUnico(ctx context.Context, centroCustoID uuid.UUID, codigo string, excludeID *uuid.UUID) shared.Result[shared.Void] {
	exists, err := s.categoriaRepo.ExistsByCodigo(ctx, centroCustoID, codigo, excludeID)
	if err != nil {
		return shared.FailureFromError[shared.Void](err)
	}
	if exists {
		return shared.Fail("Já existe uma categoria com este código neste centro de custo")
	}
	return shared.OK()
}

// ValidateCategoriaHierarchy checks that a category at the given level
// may be parented under paiID within centroCustoID: levels are not
// skipped (child level == parent level + 1) and parent and child share
// the same cost center.
func (s *CategoriaDomainService) ValidateCategoriaHierarchy(ctx context.Context, nivel int, paiID *uuid.UUID, centroCustoID uuid.UUID) shared.Result[shared.Void] {
	if nivel < NivelMinimo || nivel > NivelMaximo {
		return shared.Fail("Nível da categoria deve estar entre 1 e 3")
	}

	if nivel == NivelMinimo {
		if paiID != nil {
			return shared.Fail("Categoria de nível 1 não pode ter uma categoria pai")
		}
		return shared.OK()
	}

	if paiID == nil {
		return shared.Fail(fmt.Sprintf("Categoria de nível %d deve ter uma categoria pai", nivel))
	}

	pai, err := s.categoriaRepo.GetByID(ctx, *paiID)
	if err != nil {
		return shared.FailureFromError[shared.Void](err)
	}
	if pai == nil {
		return shared.Fail("Categoria pai não encontrada")
	}

	var errs []string
	if !pai.EstaAtiva() {
		errs = append(errs, "Categoria pai deve estar ativa")
	}
	if pai.Nivel != nivel-1 {
		errs = append(errs, fmt.Sprintf("Categoria de nível %d deve ter uma categoria pai de nível %d", nivel, nivel-1))
	}
	if pai.CentroCustoID != centroCustoID {
		errs = append(errs, "Categoria pai deve pertencer ao mesmo centro de custo")
	}
	if len(errs) > 0 {
		return shared.Fail(errs...)
	}
	return shared.OK()
}

// ValidateCategoriaRemoval blocks deactivation of a category that
// still has active children or active products, checked against
// repository state rather than whatever happens to be loaded.
func (s *CategoriaDomainService) ValidateCategoriaRemoval(ctx context.Context, categoriaID uuid.UUID) shared.Result[shared.Void] {
	filhas, err := s.categoriaRepo.GetFilhasByPaiID(ctx, categoriaID)
	if err != nil {
		return shared.FailureFromError[shared.Void](err)
	}
	for i := range filhas {
		if filhas[i].EstaAtiva() {
			return shared.Fail("Categoria possui subcategorias ativas e não pode ser removida")
		}
	}

	produtos, err := s.produtoRepo.GetByCategoriaID(ctx, categoriaID)
	if err != nil {
		return shared.FailureFromError[shared.Void](err)
	}
	for i := range produtos {
		if produtos[i].EstaAtiva() {
			return shared.Fail("Categoria possui produtos ativos e não pode ser removida")
		}
	}

	return shared.OK()
}

// CalculateNextLevel returns the level a child of pai would occupy: 1
// for a root (nil parent), parent level + 1 otherwise, failing when
// the tree is already at maximum depth.
func (s *CategoriaDomainService) CalculateNextLevel(pai *Categoria) shared.Result[int] {
	if pai == nil {
		return shared.Success(NivelMinimo)
	}
	next := pai.Nivel + 1
	if next > NivelMaximo {
		return shared.Failure[int](fmt.Sprintf("Categoria não pode ter nível maior que %d", NivelMaximo))
	}
	return shared.Success(next)
}

// GetCategoriaPath resolves the breadcrumb from the root category down
// to the given one, e.g. "Bebidas > Refrigerantes > Lata". The walk is
// bounded by the maximum tree depth, so a corrupted parent cycle
// terminates; a dangling parent reference just stops the walk there.
func (s *CategoriaDomainService) GetCategoriaPath(ctx context.Context, categoriaID uuid.UUID) shared.Result[string] {
	categoria, err := s.categoriaRepo.GetByID(ctx, categoriaID)
	if err != nil {
		return shared.FailureFromError[string](err)
	}
	if categoria == nil {
		return shared.Failure[string]("Categoria não encontrada")
	}

	names := []string{categoria.Nome}
	current := categoria
	for depth := 0; depth < NivelMaximo && current.CategoriaPaiID != nil; depth++ {
		pai, err := s.categoriaRepo.GetByID(ctx, *current.CategoriaPaiID)
		if err != nil {
			return shared.FailureFromError[string](err)
		}
		if pai == nil {
			break
		}
		names = append(names, pai.Nome)
		current = pai
	}

	for i, j := 0, len(names)-1; i < j; i, j = i+1, j-1 {
		names[i], names[j] = names[j], names[i]
	}
	return shared.Success(strings.Join(names, " > "))
}

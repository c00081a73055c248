package catalog

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCategoriaRepository is an in-memory CategoriaRepository for tests.
type fakeCategoriaRepository struct {
	categorias map[uuid.UUID]*Categoria
	err        error
}

func newFakeCategoriaRepository() *fakeCategoriaRepository {
	return &fakeCategoriaRepository{categorias: make(map[uuid.UUID]*Categoria)}
}

func (f *fakeCategoriaRepository) add(c *Categoria) {
	f.categorias[c.ID] = c
}

func (f *fakeCategoriaRepository) GetByID(_ context.Context, id uuid.UUID) (*Categoria, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.categorias[id], nil
}

func (f *fakeCategoriaRepository) ExistsByCodigo(_ context.Context, centroCustoID uuid.UUID, codigo string, excludeID *uuid.UUID) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	for id, c := range f.categorias {
		if excludeID != nil && *excludeID == id {
			continue
		}
		if c.CentroCustoID == centroCustoID && strings.EqualFold(c.Codigo, codigo) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeCategoriaRepository) GetFilhasByPaiID(_ context.Context, paiID uuid.UUID) ([]Categoria, error) {
	if f.err != nil {
		return nil, f.err
	}
	var filhas []Categoria
	for _, c := range f.categorias {
		if c.CategoriaPaiID != nil && *c.CategoriaPaiID == paiID {
			filhas = append(filhas, *c)
		}
	}
	return filhas, nil
}

// fakeProdutoRepository is an in-memory ProdutoRepository for tests.
type fakeProdutoRepository struct {
	produtos map[uuid.UUID]*Produto
	err      error
}

func newFakeProdutoRepository() *fakeProdutoRepository {
	return &fakeProdutoRepository{produtos: make(map[uuid.UUID]*Produto)}
}

func (f *fakeProdutoRepository) add(p *Produto) {
	f.produtos[p.ID] = p
}

func (f *fakeProdutoRepository) GetByID(_ context.Context, id uuid.UUID) (*Produto, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.produtos[id], nil
}

func (f *fakeProdutoRepository) ExistsByCodigo(_ context.Context, codigo string, excludeID *uuid.UUID) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	for id, p := range f.produtos {
		if excludeID != nil && *excludeID == id {
			continue
		}
		if strings.EqualFold(p.Codigo, codigo) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeProdutoRepository) ExistsByNomeInCategoria(_ context.Context, categoriaID uuid.UUID, nome string, excludeID *uuid.UUID) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	for id, p := range f.produtos {
		if excludeID != nil && *excludeID == id {
			continue
		}
		if p.CategoriaID == categoriaID && strings.EqualFold(p.Nome, nome) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeProdutoRepository) GetByCategoriaID(_ context.Context, categoriaID uuid.UUID) ([]Produto, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []Produto
	for _, p := range f.produtos {
		if p.CategoriaID == categoriaID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func newCategoriaService(catRepo *fakeCategoriaRepository, prodRepo *fakeProdutoRepository) *CategoriaDomainService {
	return NewCategoriaDomainService(catRepo, prodRepo)
}

func TestValidateCategoriaCreation(t *testing.T) {
	ctx := context.Background()

	t.Run("unused code passes", func(t *testing.T) {
		service := newCategoriaService(newFakeCategoriaRepository(), newFakeProdutoRepository())

		result := service.ValidateCategoriaCreation(ctx, uuid.New(), "CAT-001")

		assert.True(t, result.IsSuccess())
	})

	t.Run("code taken in the cost center fails", func(t *testing.T) {
		repo := newFakeCategoriaRepository()
		existente := newTestCategoria(t, 1, nil)
		repo.add(existente)
		service := newCategoriaService(repo, newFakeProdutoRepository())

		result := service.ValidateCategoriaCreation(ctx, existente.CentroCustoID, existente.Codigo)

		require.True(t, result.IsFailure())
		assert.Contains(t, result.Error(), "código")
	})

	t.Run("same code in another cost center passes", func(t *testing.T) {
		repo := newFakeCategoriaRepository()
		existente := newTestCategoria(t, 1, nil)
		repo.add(existente)
		service := newCategoriaService(repo, newFakeProdutoRepository())

		result := service.ValidateCategoriaCreation(ctx, uuid.New(), existente.Codigo)

		assert.True(t, result.IsSuccess())
	})

	t.Run("repository error becomes a failure", func(t *testing.T) {
		repo := newFakeCategoriaRepository()
		repo.err = errors.New("conexão recusada")
		service := newCategoriaService(repo, newFakeProdutoRepository())

		result := service.ValidateCategoriaCreation(ctx, uuid.New(), "CAT-001")

		assert.True(t, result.IsFailure())
	})
}

func TestValidateCategoriaUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("a category may keep its own code", func(t *testing.T) {
		repo := newFakeCategoriaRepository()
		categoria := newTestCategoria(t, 1, nil)
		repo.add(categoria)
		service := newCategoriaService(repo, newFakeProdutoRepository())

		result := service.ValidateCategoriaUpdate(ctx, categoria.ID, categoria.CentroCustoID, categoria.Codigo)

		assert.True(t, result.IsSuccess())
	})

	t.Run("another category's code is still blocked", func(t *testing.T) {
		repo := newFakeCategoriaRepository()
		existente := newTestCategoria(t, 1, nil)
		repo.add(existente)
		service := newCategoriaService(repo, newFakeProdutoRepository())

		result := service.ValidateCategoriaUpdate(ctx, uuid.New(), existente.CentroCustoID, existente.Codigo)

		assert.True(t, result.IsFailure())
	})
}

func TestValidateCategoriaHierarchy(t *testing.T) {
	ctx := context.Background()

	t.Run("level 1 without parent passes", func(t *testing.T) {
		service := newCategoriaService(newFakeCategoriaRepository(), newFakeProdutoRepository())

		result := service.ValidateCategoriaHierarchy(ctx, 1, nil, uuid.New())

		assert.True(t, result.IsSuccess())
	})

	t.Run("level 1 with parent fails", func(t *testing.T) {
		service := newCategoriaService(newFakeCategoriaRepository(), newFakeProdutoRepository())
		pai := uuid.New()

		result := service.ValidateCategoriaHierarchy(ctx, 1, &pai, uuid.New())

		assert.True(t, result.IsFailure())
	})

	t.Run("level 2 under a level 1 parent passes", func(t *testing.T) {
		repo := newFakeCategoriaRepository()
		pai := newTestCategoria(t, 1, nil)
		repo.add(pai)
		service := newCategoriaService(repo, newFakeProdutoRepository())

		result := service.ValidateCategoriaHierarchy(ctx, 2, &pai.ID, pai.CentroCustoID)

		assert.True(t, result.IsSuccess())
	})

	t.Run("level 3 under a level 1 parent names the required level", func(t *testing.T) {
		repo := newFakeCategoriaRepository()
		pai := newTestCategoria(t, 1, nil)
		repo.add(pai)
		service := newCategoriaService(repo, newFakeProdutoRepository())

		result := service.ValidateCategoriaHierarchy(ctx, 3, &pai.ID, pai.CentroCustoID)

		require.True(t, result.IsFailure())
		assert.Contains(t, result.Error(), "nível 2")
	})

	t.Run("parent in another cost center fails", func(t *testing.T) {
		repo := newFakeCategoriaRepository()
		pai := newTestCategoria(t, 1, nil)
		repo.add(pai)
		service := newCategoriaService(repo, newFakeProdutoRepository())

		result := service.ValidateCategoriaHierarchy(ctx, 2, &pai.ID, uuid.New())

		require.True(t, result.IsFailure())
		assert.Contains(t, result.Error(), "centro de custo")
	})

	t.Run("missing parent fails", func(t *testing.T) {
		service := newCategoriaService(newFakeCategoriaRepository(), newFakeProdutoRepository())
		pai := uuid.New()

		result := service.ValidateCategoriaHierarchy(ctx, 2, &pai, uuid.New())

		assert.True(t, result.IsFailure())
	})

	t.Run("inactive parent fails", func(t *testing.T) {
		repo := newFakeCategoriaRepository()
		pai := newTestCategoria(t, 1, nil)
		require.NoError(t, pai.Inativar())
		repo.add(pai)
		service := newCategoriaService(repo, newFakeProdutoRepository())

		result := service.ValidateCategoriaHierarchy(ctx, 2, &pai.ID, pai.CentroCustoID)

		assert.True(t, result.IsFailure())
	})

	t.Run("repository error becomes a failure", func(t *testing.T) {
		repo := newFakeCategoriaRepository()
		repo.err = errors.New("conexão recusada")
		service := newCategoriaService(repo, newFakeProdutoRepository())
		pai := uuid.New()

		result := service.ValidateCategoriaHierarchy(ctx, 2, &pai, uuid.New())

		assert.True(t, result.IsFailure())
	})
}

func TestValidateCategoriaRemoval(t *testing.T) {
	ctx := context.Background()

	t.Run("empty category may be removed", func(t *testing.T) {
		service := newCategoriaService(newFakeCategoriaRepository(), newFakeProdutoRepository())

		result := service.ValidateCategoriaRemoval(ctx, uuid.New())

		assert.True(t, result.IsSuccess())
	})

	t.Run("active child blocks removal", func(t *testing.T) {
		repo := newFakeCategoriaRepository()
		pai := newTestCategoria(t, 1, nil)
		repo.add(pai)
		repo.add(newTestCategoria(t, 2, &pai.ID))
		service := newCategoriaService(repo, newFakeProdutoRepository())

		result := service.ValidateCategoriaRemoval(ctx, pai.ID)

		assert.True(t, result.IsFailure())
	})

	t.Run("inactive children do not block removal", func(t *testing.T) {
		repo := newFakeCategoriaRepository()
		pai := newTestCategoria(t, 1, nil)
		repo.add(pai)
		filha := newTestCategoria(t, 2, &pai.ID)
		require.NoError(t, filha.Inativar())
		repo.add(filha)
		service := newCategoriaService(repo, newFakeProdutoRepository())

		result := service.ValidateCategoriaRemoval(ctx, pai.ID)

		assert.True(t, result.IsSuccess())
	})

	t.Run("active product blocks removal", func(t *testing.T) {
		catRepo := newFakeCategoriaRepository()
		prodRepo := newFakeProdutoRepository()
		categoria := newTestCategoria(t, 1, nil)
		catRepo.add(categoria)
		prodRepo.add(newTestProduto(t, categoria.ID))
		service := newCategoriaService(catRepo, prodRepo)

		result := service.ValidateCategoriaRemoval(ctx, categoria.ID)

		assert.True(t, result.IsFailure())
	})
}

func TestCalculateNextLevel(t *testing.T) {
	service := newCategoriaService(newFakeCategoriaRepository(), newFakeProdutoRepository())

	t.Run("nil parent means root level", func(t *testing.T) {
		assert.Equal(t, 1, service.CalculateNextLevel(nil).MustValue())
	})

	t.Run("child is one level below the parent", func(t *testing.T) {
		assert.Equal(t, 2, service.CalculateNextLevel(newTestCategoria(t, 1, nil)).MustValue())
	})

	t.Run("fails past the maximum depth", func(t *testing.T) {
		pai := uuid.New()
		leaf := newTestCategoria(t, 3, &pai)

		assert.True(t, service.CalculateNextLevel(leaf).IsFailure())
	})
}

func TestGetCategoriaPath(t *testing.T) {
	ctx := context.Background()

	buildTree := func(t *testing.T) (*fakeCategoriaRepository, *Categoria) {
		t.Helper()
		repo := newFakeCategoriaRepository()
		raiz, err := NewCategoria(uuid.New(), uuid.New(), nil, "BEB", "Bebidas", "", 1)
		require.NoError(t, err)
		meio, err := NewCategoria(raiz.EmpresaID, raiz.CentroCustoID, &raiz.ID, "BEB-REF", "Refrigerantes", "", 2)
		require.NoError(t, err)
		folha, err := NewCategoria(raiz.EmpresaID, raiz.CentroCustoID, &meio.ID, "BEB-REF-LT", "Lata", "", 3)
		require.NoError(t, err)
		repo.add(raiz)
		repo.add(meio)
		repo.add(folha)
		return repo, folha
	}

	t.Run("resolves root to leaf", func(t *testing.T) {
		repo, folha := buildTree(t)
		service := newCategoriaService(repo, newFakeProdutoRepository())

		result := service.GetCategoriaPath(ctx, folha.ID)

		assert.Equal(t, "Bebidas > Refrigerantes > Lata", result.MustValue())
	})

	t.Run("unknown category fails", func(t *testing.T) {
		service := newCategoriaService(newFakeCategoriaRepository(), newFakeProdutoRepository())

		assert.True(t, service.GetCategoriaPath(ctx, uuid.New()).IsFailure())
	})

	t.Run("dangling parent stops the walk", func(t *testing.T) {
		repo := newFakeCategoriaRepository()
		pai := uuid.New() // never stored
		orfa, err := NewCategoria(uuid.New(), uuid.New(), &pai, "ORF", "Órfã", "", 2)
		require.NoError(t, err)
		repo.add(orfa)
		service := newCategoriaService(repo, newFakeProdutoRepository())

		result := service.GetCategoriaPath(ctx, orfa.ID)

		assert.Equal(t, "Órfã", result.MustValue())
	})

	t.Run("parent cycle terminates", func(t *testing.T) {
		repo := newFakeCategoriaRepository()
		dummy := uuid.New()
		a := newTestCategoria(t, 2, &dummy)
		b := newTestCategoria(t, 2, &dummy)
		a.CategoriaPaiID = &b.ID
		b.CategoriaPaiID = &a.ID
		repo.add(a)
		repo.add(b)
		service := newCategoriaService(repo, newFakeProdutoRepository())

		result := service.GetCategoriaPath(ctx, a.ID)

		assert.True(t, result.IsSuccess())
	})
}

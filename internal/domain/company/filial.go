package company

import (
	"strings"

	"github.com/google/uuid"
	"github.com/restoerp/backend/internal/domain/shared"
	"github.com/restoerp/backend/internal/domain/shared/valueobject"
)

// Filial is a branch of a company. It lives inside the Empresa
// aggregate; the Matriz flag marks the headquarters branch.
type Filial struct {
	shared.BaseEntity
	EmpresaID uuid.UUID
	Nome      string
	Cnpj      valueobject.Cnpj
	Matriz    bool
}

// NewFilial creates a branch for the given company.
func NewFilial(empresaID uuid.UUID, nome string, cnpj valueobject.Cnpj, matriz bool) (*Filial, error) {
	if empresaID == uuid.Nil {
		return nil, shared.NewValidationError("filial deve referenciar uma empresa")
	}
	if err := validateNomeFilial(nome); err != nil {
		return nil, err
	}
	if cnpj.IsZero() {
		return nil, shared.NewValidationError("CNPJ da filial é obrigatório")
	}

	return &Filial{
		BaseEntity: shared.NewBaseEntity(),
		EmpresaID:  empresaID,
		Nome:       strings.TrimSpace(nome),
		Cnpj:       cnpj,
		Matriz:     matriz,
	}, nil
}

// AtualizarDados updates the branch name.
func (f *Filial) AtualizarDados(nome string) error {
	if err := validateNomeFilial(nome); err != nil {
		return err
	}
	f.Nome = strings.TrimSpace(nome)
	f.Touch()
	return nil
}

func validateNomeFilial(nome string) error {
	nome = strings.TrimSpace(nome)
	if nome == "" {
		return shared.NewValidationError("nome da filial não pode ser vazio")
	}
	if len(nome) > 200 {
		return shared.NewValidationError("nome da filial não pode exceder 200 caracteres")
	}
	return nil
}

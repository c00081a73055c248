package valueobject

import (
	"fmt"
	"strings"

	"github.com/restoerp/backend/internal/domain/shared"
)

// ufs lists the 26 Brazilian states plus the Federal District.
var ufs = map[string]struct{}{
	"AC": {}, "AL": {}, "AP": {}, "AM": {}, "BA": {}, "CE": {}, "DF": {},
	"ES": {}, "GO": {}, "MA": {}, "MT": {}, "MS": {}, "MG": {}, "PA": {},
	"PB": {}, "PR": {}, "PE": {}, "PI": {}, "RJ": {}, "RN": {}, "RS": {},
	"RO": {}, "RR": {}, "SC": {}, "SP": {}, "SE": {}, "TO": {},
}

// Endereco is a composite value object for a Brazilian address.
// Immutable; equality is structural over every field.
type Endereco struct {
	logradouro  string
	numero      string
	complemento string
	cep         Cep
	bairro      string
	cidade      string
	uf          string
}

// NewEndereco creates an Endereco. Logradouro, numero, bairro, cidade,
// a valid CEP and a two-letter UF are required; complemento is
// optional.
func NewEndereco(logradouro, numero, complemento string, cep Cep, bairro, cidade, uf string) (Endereco, error) {
	logradouro = strings.TrimSpace(logradouro)
	numero = strings.TrimSpace(numero)
	complemento = strings.TrimSpace(complemento)
	bairro = strings.TrimSpace(bairro)
	cidade = strings.TrimSpace(cidade)
	uf = strings.ToUpper(strings.TrimSpace(uf))

	if logradouro == "" {
		return Endereco{}, shared.NewValidationError("logradouro não pode ser vazio")
	}
	if len(logradouro) > 200 {
		return Endereco{}, shared.NewValidationError("logradouro não pode exceder 200 caracteres")
	}
	if numero == "" {
		return Endereco{}, shared.NewValidationError("número não pode ser vazio")
	}
	if cep.IsZero() {
		return Endereco{}, shared.NewValidationError("CEP é obrigatório")
	}
	if bairro == "" {
		return Endereco{}, shared.NewValidationError("bairro não pode ser vazio")
	}
	if cidade == "" {
		return Endereco{}, shared.NewValidationError("cidade não pode ser vazia")
	}
	if _, ok := ufs[uf]; !ok {
		return Endereco{}, shared.NewValidationError("UF inválida")
	}

	return Endereco{
		logradouro:  logradouro,
		numero:      numero,
		complemento: complemento,
		cep:         cep,
		bairro:      bairro,
		cidade:      cidade,
		uf:          uf,
	}, nil
}

// MustNewEndereco creates an Endereco and panics on error. Test helper.
func MustNewEndereco(logradouro, numero, complemento string, cep Cep, bairro, cidade, uf string) Endereco {
	e, err := NewEndereco(logradouro, numero, complemento, cep, bairro, cidade, uf)
	if err != nil {
		panic(err)
	}
	return e
}

// Logradouro returns the street name.
func (e Endereco) Logradouro() string { return e.logradouro }

// Numero returns the street number.
func (e Endereco) Numero() string { return e.numero }

// Complemento returns the optional address complement.
func (e Endereco) Complemento() string { return e.complemento }

// Cep returns the postal code.
func (e Endereco) Cep() Cep { return e.cep }

// Bairro returns the district.
func (e Endereco) Bairro() string { return e.bairro }

// Cidade returns the city.
func (e Endereco) Cidade() string { return e.cidade }

// UF returns the two-letter state code.
func (e Endereco) UF() string { return e.uf }

// IsZero returns true for the zero value (no address set).
func (e Endereco) IsZero() bool {
	return e.logradouro == "" && e.cidade == "" && e.cep.IsZero()
}

// FullAddress returns the composed display form, e.g.
// "Av. Paulista, 1000 - Sala 42 - Bela Vista, São Paulo/SP - CEP 01310-100".
func (e Endereco) FullAddress() string {
	if e.IsZero() {
		return ""
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s, %s", e.logradouro, e.numero)
	if e.complemento != "" {
		fmt.Fprintf(&sb, " - %s", e.complemento)
	}
	fmt.Fprintf(&sb, " - %s, %s/%s - CEP %s", e.bairro, e.cidade, e.uf, e.cep.Formatted())
	return sb.String()
}

// Equals returns true when every field matches.
func (e Endereco) Equals(other Endereco) bool {
	return e.logradouro == other.logradouro &&
		e.numero == other.numero &&
		e.complemento == other.complemento &&
		e.cep.Equals(other.cep) &&
		e.bairro == other.bairro &&
		e.cidade == other.cidade &&
		e.uf == other.uf
}

// String returns the composed display form.
func (e Endereco) String() string {
	return e.FullAddress()
}

package shared

import (
	"time"

	"github.com/google/uuid"
)

// Entity is the base interface for all domain entities
type Entity interface {
	GetID() uuid.UUID
	EstaAtiva() bool
	GetDataCriacao() time.Time
	GetDataUltimaAlteracao() time.Time
}

// BaseEntity provides the common lifecycle for all entities: identity,
// an activation flag and creation/alteration timestamps. Entities are
// never hard-deleted; they are deactivated via Inativar.
type BaseEntity struct {
	ID                  uuid.UUID
	Ativa               bool
	DataCriacao         time.Time
	DataUltimaAlteracao time.Time
}

// GetID returns the entity ID
func (e *BaseEntity) GetID() uuid.UUID {
	return e.ID
}

// EstaAtiva returns true if the entity is active
func (e *BaseEntity) EstaAtiva() bool {
	return e.Ativa
}

// GetDataCriacao returns the creation timestamp
func (e *BaseEntity) GetDataCriacao() time.Time {
	return e.DataCriacao
}

// GetDataUltimaAlteracao returns the last alteration timestamp
func (e *BaseEntity) GetDataUltimaAlteracao() time.Time {
	return e.DataUltimaAlteracao
}

// Ativar activates the entity and stamps the alteration time
func (e *BaseEntity) Ativar() {
	e.Ativa = true
	e.Touch()
}

// Inativar deactivates the entity and stamps the alteration time.
// Deactivation is the only form of removal in the domain model.
func (e *BaseEntity) Inativar() {
	e.Ativa = false
	e.Touch()
}

// Touch stamps the alteration time
func (e *BaseEntity) Touch() {
	e.DataUltimaAlteracao = time.Now()
}

// NewBaseEntity creates a new active base entity with generated ID
func NewBaseEntity() BaseEntity {
	now := time.Now()
	return BaseEntity{
		ID:                  uuid.New(),
		Ativa:               true,
		DataCriacao:         now,
		DataUltimaAlteracao: now,
	}
}

package postgres

import (
	"context"
	"fmt"

	"github.com/sisacad/nomina-docentes-api/internal/domain/entity"
	"github.com/sisacad/nomina-docentes-api/internal/domain/repository"
)

var _ repository.AuditoriaRepository = (*AuditoriaRepo)(nil)

// AuditoriaRepo sumidero append-only del log de auditoría.
type AuditoriaRepo struct {
	db Querier
}

// NewAuditoriaRepository construye el adaptador del log de auditoría.
func NewAuditoriaRepository(db Querier) *AuditoriaRepo {
	return &AuditoriaRepo{db: db}
}

// Insert agrega una entrada. actor_id y entidad_id admiten NULL.
func (r *AuditoriaRepo) Insert(ctx context.Context, e *entity.Auditoria) error {
	actor := any(e.ActorID)
	if e.ActorID == "" {
		actor = nil
	}
	entidadID := any(e.EntidadID)
	if e.EntidadID == "" {
		entidadID = nil
	}
	_, err := r.db.Exec(ctx, `
		INSERT INTO auditoria (id, actor_id, accion, entidad, entidad_id, payload, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		e.ID, actor, e.Accion, e.Entidad, entidadID, e.Payload, e.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert auditoria: %w", err)
	}
	return nil
}

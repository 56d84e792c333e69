package repository

import (
	"context"

	"github.com/sisacad/nomina-docentes-api/internal/domain/entity"
)

// AuditoriaRepository define el puerto del log de auditoría. Solo escritura:
// la aplicación nunca consulta estas filas.
type AuditoriaRepository interface {
	Insert(ctx context.Context, entrada *entity.Auditoria) error
}

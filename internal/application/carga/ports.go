package carga

import (
	"context"

	"github.com/sisacad/nomina-docentes-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que un lote confirmado sea
// atómico a nivel de almacenamiento: un error de DB a mitad de lote no
// deja upserts parciales.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		cargaRepo repository.CargaHorasRepository,
		auditoriaRepo repository.AuditoriaRepository,
	) error) error
}

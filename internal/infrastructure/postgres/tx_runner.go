package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sisacad/nomina-docentes-api/internal/application/carga"
	"github.com/sisacad/nomina-docentes-api/internal/domain/repository"
)

// Ensure TxRunner implements carga.TxRunner.
var _ carga.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL. Es la
// frontera de atomicidad del lote de cargas: todos los upserts del lote y
// su entrada de auditoría se confirman o se revierten juntos.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace
// Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(
	cargaRepo repository.CargaHorasRepository,
	auditoriaRepo repository.AuditoriaRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	cargaRepo := NewCargaHorasRepository(tx)
	auditoriaRepo := NewAuditoriaRepository(tx)

	if err := fn(cargaRepo, auditoriaRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// Package audit escribe entradas en el log de auditoría. El log es un
// sumidero de solo escritura; un fallo al auditar no debe tumbar la
// operación de negocio, por eso Registrar no devuelve error.
package audit

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/sisacad/nomina-docentes-api/internal/domain/entity"
	"github.com/sisacad/nomina-docentes-api/internal/domain/repository"
)

// Registrar inserta una entrada de auditoría. payload se serializa a JSON;
// si la serialización o el insert fallan, se registra en el log y se sigue.
func Registrar(ctx context.Context, repo repository.AuditoriaRepository, actorID, accion, entidad, entidadID string, payload interface{}) {
	var raw json.RawMessage
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			log.Warn().Err(err).Str("accion", accion).Msg("auditoría: payload no serializable")
		} else {
			raw = b
		}
	}
	entrada := &entity.Auditoria{
		ID:        uuid.New().String(),
		ActorID:   actorID,
		Accion:    accion,
		Entidad:   entidad,
		EntidadID: entidadID,
		Payload:   raw,
		CreatedAt: time.Now(),
	}
	if err := repo.Insert(ctx, entrada); err != nil {
		log.Warn().Err(err).Str("accion", accion).Str("entidad", entidad).Msg("auditoría: no se pudo insertar la entrada")
	}
}

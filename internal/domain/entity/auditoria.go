package entity

import (
	"encoding/json"
	"time"
)

// Auditoria es una entrada del log de auditoría. Solo se escribe, nunca se
// lee desde la aplicación (sumidero de cumplimiento).
type Auditoria struct {
	ID        string
	ActorID   string // vacío cuando la acción no tiene usuario asociado
	Accion    string
	Entidad   string
	EntidadID string
	Payload   json.RawMessage
	CreatedAt time.Time
}

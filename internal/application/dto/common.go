package dto

// PageRequest paginación para listados. Todos los listados aceptan además
// un texto libre `query` para búsqueda.
type PageRequest struct {
	Page     int    `query:"page"`
	PageSize int    `query:"pageSize"`
	Query    string `query:"query"`
}

// DefaultPage aplica valores por defecto si Page/PageSize son cero.
func (p *PageRequest) DefaultPage() {
	if p.Page <= 0 {
		p.Page = 1
	}
	if p.PageSize <= 0 {
		p.PageSize = 20
	}
	if p.PageSize > 100 {
		p.PageSize = 100
	}
}

// Limit devuelve el límite SQL equivalente.
func (p PageRequest) Limit() int { return p.PageSize }

// Offset devuelve el desplazamiento SQL equivalente.
func (p PageRequest) Offset() int { return (p.Page - 1) * p.PageSize }

// PageResponse metadatos de página en respuestas.
type PageResponse struct {
	Page     int `json:"page"`
	PageSize int `json:"pageSize"`
	Total    int `json:"total"`
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

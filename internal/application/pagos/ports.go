package pagos

import (
	"github.com/sisacad/nomina-docentes-api/internal/application/dto"
	"github.com/sisacad/nomina-docentes-api/internal/domain/repository"
)

// AreaDetalle cargas de un periodo agrupadas por área, para los exportes
// por área (una hoja o un archivo por área).
type AreaDetalle struct {
	AreaID     string
	AreaNombre string
	Filas      []*repository.CargaDetalle
}

// ExcelGenerator genera los reportes en XLSX. Lo implementa
// infrastructure/excel.
type ExcelGenerator interface {
	// GenerarPivote produce un libro con la matriz docentes × áreas.
	GenerarPivote(nombrePeriodo string, piv *dto.PivoteResponse) ([]byte, error)
	// GenerarAreasMultihojas produce un libro con una hoja por área
	// (detalle con subtotal por docente y total del área).
	GenerarAreasMultihojas(nombrePeriodo string, areas []AreaDetalle) ([]byte, error)
	// GenerarAreasZip produce un ZIP con un XLSX por área.
	GenerarAreasZip(nombrePeriodo string, areas []AreaDetalle) ([]byte, error)
}

// PDFGenerator genera la representación PDF del pivote. Lo implementa
// infrastructure/pdf.
type PDFGenerator interface {
	GenerarPivote(nombrePeriodo string, piv *dto.PivoteResponse) ([]byte, error)
}

package pagos_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sisacad/nomina-docentes-api/internal/application/pagos"
	"github.com/sisacad/nomina-docentes-api/internal/domain/entity"
	"github.com/sisacad/nomina-docentes-api/internal/domain/repository"
)

func detalle(docenteID, codigo, nombre, areaID, materia string, horas, tarifa int64) *repository.CargaDetalle {
	h := decimal.NewFromInt(horas)
	t := decimal.NewFromInt(tarifa)
	return &repository.CargaDetalle{
		Carga: entity.CargaHoras{
			DocenteID: docenteID,
			AreaID:    areaID,
			Materia:   materia,
			Horas:     h,
			Tarifa:    t,
			Pagable:   true,
		},
		DocenteCodigo: codigo,
		DocenteNombre: nombre,
		Importe:       h.Mul(t),
	}
}

func importe(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func TestBuildPivote(t *testing.T) {
	areas := []*entity.Area{
		{ID: "a1", Nombre: "Sistemas", Activo: true},
		{ID: "a2", Nombre: "Matemáticas", Activo: true},
	}
	detalles := []*repository.CargaDetalle{
		detalle("d1", "000123", "García Ruiz Ana", "a1", "Redes", 4, 350),      // 1400
		detalle("d1", "000123", "García Ruiz Ana", "a1", "Bases", 2, 350),      // 700
		detalle("d1", "000123", "García Ruiz Ana", "a2", "Cálculo", 3, 400),    // 1200
		detalle("d2", "000456", "Pérez López Juan", "a2", "Álgebra", 5, 400),   // 2000
	}

	piv := pagos.BuildPivote("per-1", detalles, areas)

	require.Len(t, piv.Areas, 2)
	require.Len(t, piv.Filas, 2)

	// filas ordenadas por nombre de docente
	f0, f1 := piv.Filas[0], piv.Filas[1]
	assert.Equal(t, "García Ruiz Ana", f0.DocenteNombre)
	assert.Equal(t, "Pérez López Juan", f1.DocenteNombre)

	// los importes por área acumulan varias materias del mismo docente
	assert.True(t, f0.Importes[0].Equal(importe(2100)), "Sistemas de Ana: 1400 + 700")
	assert.True(t, f0.Importes[1].Equal(importe(1200)))
	assert.True(t, f0.Total.Equal(importe(3300)))

	assert.True(t, f1.Importes[0].IsZero())
	assert.True(t, f1.Importes[1].Equal(importe(2000)))
	assert.True(t, f1.Total.Equal(importe(2000)))

	// totales por columna y gran total
	assert.True(t, piv.Totales[0].Equal(importe(2100)))
	assert.True(t, piv.Totales[1].Equal(importe(3200)))
	assert.True(t, piv.GranTotal.Equal(importe(5300)))
}

// El total de cada fila debe ser la suma de los importes crudos del
// docente, incluso cuando varias materias caen en la misma celda.
func TestBuildPivote_TotalFilaEsSumaDeImportesCrudos(t *testing.T) {
	areas := []*entity.Area{{ID: "a1", Nombre: "Sistemas", Activo: true}}
	detalles := []*repository.CargaDetalle{
		detalle("d1", "000123", "García Ruiz Ana", "a1", "Redes", 4, 350),
		detalle("d1", "000123", "García Ruiz Ana", "a1", "Bases", 2, 350),
		detalle("d1", "000123", "García Ruiz Ana", "a1", "Compiladores", 1, 500),
	}

	piv := pagos.BuildPivote("per-1", detalles, areas)

	require.Len(t, piv.Filas, 1)
	esperado := importe(4*350 + 2*350 + 1*500)
	assert.True(t, piv.Filas[0].Total.Equal(esperado))
	assert.True(t, piv.GranTotal.Equal(esperado))
}

func TestBuildPivote_AreasInactivasSinColumna(t *testing.T) {
	// solo las áreas activas forman columnas; las cargas de áreas dadas
	// de baja se omiten de la matriz
	areas := []*entity.Area{{ID: "a1", Nombre: "Sistemas", Activo: true}}
	detalles := []*repository.CargaDetalle{
		detalle("d1", "000123", "García Ruiz Ana", "a1", "Redes", 4, 350),
		detalle("d1", "000123", "García Ruiz Ana", "a-baja", "Historia", 2, 300),
	}

	piv := pagos.BuildPivote("per-1", detalles, areas)

	require.Len(t, piv.Areas, 1)
	require.Len(t, piv.Filas, 1)
	assert.True(t, piv.Filas[0].Total.Equal(importe(1400)),
		"la carga del área dada de baja no debe sumar")
	assert.True(t, piv.GranTotal.Equal(importe(1400)))
}

func TestBuildPivote_SinCargas(t *testing.T) {
	areas := []*entity.Area{{ID: "a1", Nombre: "Sistemas", Activo: true}}
	piv := pagos.BuildPivote("per-1", nil, areas)

	assert.Empty(t, piv.Filas)
	require.Len(t, piv.Totales, 1)
	assert.True(t, piv.Totales[0].IsZero())
	assert.True(t, piv.GranTotal.IsZero())
}

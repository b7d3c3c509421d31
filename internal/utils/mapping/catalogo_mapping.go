package mapping

import (
	"github.com/inmofin/backoffice-caja/internal/core/domain"
	"github.com/inmofin/backoffice-caja/internal/models"
)

// ToDomainTipoMovimiento converts a model TipoMovimiento to its domain form.
func ToDomainTipoMovimiento(m models.TipoMovimiento) domain.TipoMovimiento {
	return domain.TipoMovimiento{
		TipoMovimientoID: m.TipoMovimientoID,
		Nombre:           m.Nombre,
		EsTraspaso:       m.EsTraspaso,
	}
}

// ToDomainTipoOperacion converts a model TipoOperacion to its domain form.
func ToDomainTipoOperacion(m models.TipoOperacion) domain.TipoOperacion {
	return domain.TipoOperacion{
		TipoOperacionID: m.TipoOperacionID,
		Nombre:          m.Nombre,
		Semantica:       domain.OperacionSemantica(m.Semantica),
		TipoInversoID:   m.TipoInversoID,
	}
}

// ToDomainTipoCaja converts a model TipoCaja to its domain form.
func ToDomainTipoCaja(m models.TipoCaja) domain.TipoCaja {
	return domain.TipoCaja{
		TipoCajaID:  m.TipoCajaID,
		Nombre:      m.Nombre,
		CierreAnual: m.CierreAnual,
	}
}

// ToDomainEstadoCaja converts a model EstadoCaja to its domain form.
func ToDomainEstadoCaja(m models.EstadoCaja) domain.EstadoCaja {
	return domain.EstadoCaja{
		EstadoCajaID: m.EstadoCajaID,
		Nombre:       m.Nombre,
	}
}

package mapping

import (
	"github.com/inmofin/backoffice-caja/internal/core/domain"
	"github.com/inmofin/backoffice-caja/internal/models"
)

// ToModelMovimiento converts a domain CajaMovimiento to a model CajaMovimiento.
func ToModelMovimiento(d domain.CajaMovimiento) models.CajaMovimiento {
	return models.CajaMovimiento{
		MovimientoID:     d.MovimientoID,
		CajaID:           d.CajaID,
		CajaDestinoID:    d.CajaDestinoID,
		TipoMovimientoID: d.TipoMovimientoID,
		TipoOperacionID:  d.TipoOperacionID,
		Monto:            d.Monto,
		Descripcion:      d.Descripcion,
		Referencia:       d.Referencia,
		Fecha:            d.Fecha,
		UsuarioID:        d.UsuarioID,
		Estado:           models.MovimientoEstado(d.Estado),
		AuditFields:      ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainMovimiento converts a model CajaMovimiento to a domain CajaMovimiento.
func ToDomainMovimiento(m models.CajaMovimiento) domain.CajaMovimiento {
	return domain.CajaMovimiento{
		MovimientoID:     m.MovimientoID,
		CajaID:           m.CajaID,
		CajaDestinoID:    m.CajaDestinoID,
		TipoMovimientoID: m.TipoMovimientoID,
		TipoOperacionID:  m.TipoOperacionID,
		Monto:            m.Monto,
		Descripcion:      m.Descripcion,
		Referencia:       m.Referencia,
		Fecha:            m.Fecha,
		UsuarioID:        m.UsuarioID,
		Estado:           domain.MovimientoEstado(m.Estado),
		AuditFields:      ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainMovimientoSlice converts a slice of model movements to domain movements.
func ToDomainMovimientoSlice(ms []models.CajaMovimiento) []domain.CajaMovimiento {
	ds := make([]domain.CajaMovimiento, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainMovimiento(m)
	}
	return ds
}

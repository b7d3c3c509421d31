package mapping

import (
	"github.com/inmofin/backoffice-caja/internal/core/domain"
	"github.com/inmofin/backoffice-caja/internal/models"
)

// ToModelCaja converts a domain Caja to a model Caja.
func ToModelCaja(d domain.Caja) models.Caja {
	return models.Caja{
		CajaID:        d.CajaID,
		Nombre:        d.Nombre,
		TipoCajaID:    d.TipoCajaID,
		PuntoVentaID:  d.PuntoVentaID,
		Estado:        models.CajaEstado(d.Estado),
		FechaApertura: d.FechaApertura,
		FechaCierre:   d.FechaCierre,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCaja converts a model Caja to a domain Caja.
// EstadoNombre is left empty; the service resolves it via the catalog.
func ToDomainCaja(m models.Caja) domain.Caja {
	return domain.Caja{
		CajaID:        m.CajaID,
		Nombre:        m.Nombre,
		TipoCajaID:    m.TipoCajaID,
		PuntoVentaID:  m.PuntoVentaID,
		Estado:        domain.CajaEstado(m.Estado),
		FechaApertura: m.FechaApertura,
		FechaCierre:   m.FechaCierre,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

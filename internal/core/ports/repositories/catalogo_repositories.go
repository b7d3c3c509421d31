package repositories

import (
	"context"

	"github.com/inmofin/backoffice-caja/internal/core/domain"
)

// CatalogoRepositoryFacade defines read-only access to the reference
// catalogs. Catalogs are bounded and small, so they are always listed whole;
// maintenance of their rows happens outside this service.
type CatalogoRepositoryFacade interface {
	ListTiposMovimiento(ctx context.Context) ([]domain.TipoMovimiento, error)
	ListTiposOperacion(ctx context.Context) ([]domain.TipoOperacion, error)
	ListTiposCaja(ctx context.Context) ([]domain.TipoCaja, error)
	ListEstadosCaja(ctx context.Context) ([]domain.EstadoCaja, error)
}

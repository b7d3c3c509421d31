package services

import (
	"context"

	"github.com/inmofin/backoffice-caja/internal/core/domain"
)

// CatalogoKind names one of the reference catalogs for label resolution.
type CatalogoKind string

const (
	KindTipoMovimiento CatalogoKind = "tipo_movimiento"
	KindTipoOperacion  CatalogoKind = "tipo_operacion"
	KindTipoCaja       CatalogoKind = "tipo_caja"
	KindEstadoCaja     CatalogoKind = "estado_caja"
)

// CatalogoSvcFacade is the read-only, cached catalog resolver. Lookups of
// unknown ids degrade to a placeholder label; classification never blocks
// rendering or aggregation.
type CatalogoSvcFacade interface {
	ListTiposMovimiento(ctx context.Context) ([]domain.TipoMovimiento, error)
	ListTiposOperacion(ctx context.Context) ([]domain.TipoOperacion, error)
	ListTiposCaja(ctx context.Context) ([]domain.TipoCaja, error)
	ListEstadosCaja(ctx context.Context) ([]domain.EstadoCaja, error)

	GetTipoMovimiento(ctx context.Context, tipoMovimientoID string) (*domain.TipoMovimiento, error)
	GetTipoOperacion(ctx context.Context, tipoOperacionID string) (*domain.TipoOperacion, error)
	GetTipoCaja(ctx context.Context, tipoCajaID string) (*domain.TipoCaja, error)

	// TiposOperacionPorID returns the operation-type catalog keyed by id,
	// the shape the aggregator consumes.
	TiposOperacionPorID(ctx context.Context) (map[string]domain.TipoOperacion, error)

	// ResolverNombre returns the display label for a catalog id, or
	// "Desconocido (<id>)" when the id is unknown.
	ResolverNombre(ctx context.Context, kind CatalogoKind, id string) string
}

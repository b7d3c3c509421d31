package repositories

import (
	"context"
	"time"

	"github.com/inmofin/backoffice-caja/internal/core/domain"
)

// MovimientoFiltro holds the conjunctive filter criteria for listing entries.
// Nil fields are not applied.
type MovimientoFiltro struct {
	CajaID          *string
	TipoOperacionID *string
	Estado          *domain.MovimientoEstado
	// Texto matches descripcion or referencia, case-insensitively.
	Texto      *string
	FechaDesde *time.Time
	FechaHasta *time.Time
}

// MovimientoReader defines read operations for ledger entries.
type MovimientoReader interface {
	// FindMovimientoByID retrieves a ledger entry by its unique identifier.
	FindMovimientoByID(ctx context.Context, movimientoID string) (*domain.CajaMovimiento, error)

	// ListMovimientos retrieves a page of entries matching the filter using
	// token-based keyset pagination, plus the total match count.
	ListMovimientos(ctx context.Context, filtro MovimientoFiltro, limit int, nextToken *string) ([]domain.CajaMovimiento, int, *string, error)

	// ListMovimientosFiltrados retrieves every entry matching the filter,
	// newest first. Register ledgers are bounded, so aggregation loads the
	// whole filtered set.
	ListMovimientosFiltrados(ctx context.Context, filtro MovimientoFiltro) ([]domain.CajaMovimiento, error)
}

// MovimientoWriter defines write operations for ledger entries.
type MovimientoWriter interface {
	// CreateMovimiento persists a new ledger entry.
	CreateMovimiento(ctx context.Context, movimiento domain.CajaMovimiento) error

	// UpdateMovimiento replaces the mutable fields of an entry.
	UpdateMovimiento(ctx context.Context, movimiento domain.CajaMovimiento) error

	// DeleteMovimiento removes an entry.
	DeleteMovimiento(ctx context.Context, movimientoID string) error

	// SetMovimientoEstado transitions the approval state, guarded by the
	// expected current state; returns apperrors.ErrConflict when the entry
	// is no longer in that state.
	SetMovimientoEstado(ctx context.Context, movimientoID string, desde, hacia domain.MovimientoEstado, updatedBy string, updatedAt time.Time) error
}

// MovimientoRepositoryFacade combines all ledger-entry repository interfaces.
type MovimientoRepositoryFacade interface {
	MovimientoReader
	MovimientoWriter
}

package repositories

import (
	"context"

	"github.com/inmofin/backoffice-caja/internal/core/domain"
)

// CajaReader defines read operations for register data.
type CajaReader interface {
	// FindCajaByID retrieves a register by its unique identifier.
	FindCajaByID(ctx context.Context, cajaID string) (*domain.Caja, error)

	// ListCajas retrieves registers, optionally filtered by point of sale
	// and lifecycle state.
	ListCajas(ctx context.Context, puntoVentaID *string, estado *domain.CajaEstado) ([]domain.Caja, error)
}

// CajaWriter defines write operations for register data.
type CajaWriter interface {
	// SetCajaEstado persists the register's state and timestamps, guarded by
	// the expected current state. Concurrent transitions on the same register
	// are serialized here: when the row is no longer in the expected state
	// the update affects nothing and apperrors.ErrConflict is returned.
	SetCajaEstado(ctx context.Context, caja domain.Caja, desde domain.CajaEstado) error
}

// CajaRepositoryFacade combines all register repository interfaces.
type CajaRepositoryFacade interface {
	CajaReader
	CajaWriter
}

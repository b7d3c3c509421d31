package services

import (
	"context"

	"github.com/inmofin/backoffice-caja/internal/core/domain"
	"github.com/inmofin/backoffice-caja/internal/dto"
)

// MovimientoSvcFacade exposes the ledger-entry approval workflow.
type MovimientoSvcFacade interface {
	// CrearMovimiento validates and persists a new entry in Pendiente state.
	CrearMovimiento(ctx context.Context, cajaID string, req dto.CrearMovimientoRequest, creatorUserID string) (*domain.CajaMovimiento, error)

	// ActualizarMovimiento replaces the mutable fields of a pending entry.
	ActualizarMovimiento(ctx context.Context, movimientoID string, req dto.ActualizarMovimientoRequest, userID string) (*domain.CajaMovimiento, error)

	// EliminarMovimiento removes a pending entry.
	EliminarMovimiento(ctx context.Context, movimientoID string, userID string) error

	// AprobarMovimiento performs the one-way Pendiente -> Aprobado transition.
	AprobarMovimiento(ctx context.Context, movimientoID string, userID string) (*domain.CajaMovimiento, error)

	// GetMovimiento retrieves a single entry.
	GetMovimiento(ctx context.Context, movimientoID string) (*domain.CajaMovimiento, error)

	// ListMovimientos retrieves a filtered page of a register's entries plus
	// the summary of the whole filtered set.
	ListMovimientos(ctx context.Context, cajaID string, params dto.ListMovimientosParams) (*dto.ListMovimientosResponse, error)
}

// TraspasoSvcFacade posts inter-register transfers as matched entry pairs.
type TraspasoSvcFacade interface {
	// RegistrarTraspaso creates the primary leg at the origin and then the
	// reverse leg at the destination. When the reverse leg fails the primary
	// is kept and the returned error wraps the reverse failure.
	RegistrarTraspaso(ctx context.Context, req dto.RegistrarTraspasoRequest, userID string) (*domain.Traspaso, error)
}

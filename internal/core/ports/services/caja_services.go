package services

import (
	"context"

	"github.com/inmofin/backoffice-caja/internal/core/domain"
)

// CajaReaderSvc exposes read access to registers.
type CajaReaderSvc interface {
	GetCaja(ctx context.Context, cajaID string) (*domain.Caja, error)
	ListCajas(ctx context.Context, puntoVentaID *string, estado *domain.CajaEstado) ([]domain.Caja, error)

	// ResumenCaja computes the projected balance over every entry of the
	// register, typically consulted before a close.
	ResumenCaja(ctx context.Context, cajaID string) (*domain.ResumenCaja, error)
}

// CajaLifecycleSvc drives the register open/close state machine.
type CajaLifecycleSvc interface {
	// AbrirCaja transitions the register to Abierta. Opening is unrestricted
	// apart from not already being open.
	AbrirCaja(ctx context.Context, cajaID string, userID string) (*domain.Caja, error)

	// CerrarCaja transitions the register to Cerrada. Registers whose type
	// carries the annual-close lock are refused until the next calendar year
	// after their opening. Closing is irreversible; there is no reopen.
	CerrarCaja(ctx context.Context, cajaID string, userID string) (*domain.Caja, error)
}

// CajaSvcFacade combines the register service interfaces.
type CajaSvcFacade interface {
	CajaReaderSvc
	CajaLifecycleSvc
}

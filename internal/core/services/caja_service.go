package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/inmofin/backoffice-caja/internal/apperrors"
	"github.com/inmofin/backoffice-caja/internal/core/domain"
	portsrepo "github.com/inmofin/backoffice-caja/internal/core/ports/repositories"
	portssvc "github.com/inmofin/backoffice-caja/internal/core/ports/services"
	"github.com/inmofin/backoffice-caja/internal/middleware"
	"github.com/inmofin/backoffice-caja/internal/utils/contabilidad"
)

var (
	// ErrCajaYaAbierta rejects opening a register that is already open.
	ErrCajaYaAbierta = errors.New("la caja ya se encuentra abierta")
	// ErrCajaNoAbierta rejects closing a register that is not open.
	ErrCajaNoAbierta = errors.New("la caja no se encuentra abierta")
	// ErrCierreBloqueado rejects closing a restricted-type register before
	// the first day of the calendar year following its opening.
	ErrCierreBloqueado = errors.New("el tipo de caja solo permite el cierre a partir del proximo ejercicio anual")
)

// cajaService drives the register lifecycle: open freely, close gated.
type cajaService struct {
	cajaRepo       portsrepo.CajaRepositoryFacade
	movimientoRepo portsrepo.MovimientoReader
	catalogoSvc    portssvc.CatalogoSvcFacade
}

// NewCajaService creates a new register service.
func NewCajaService(cajaRepo portsrepo.CajaRepositoryFacade, movimientoRepo portsrepo.MovimientoReader, catalogoSvc portssvc.CatalogoSvcFacade) portssvc.CajaSvcFacade {
	return &cajaService{
		cajaRepo:       cajaRepo,
		movimientoRepo: movimientoRepo,
		catalogoSvc:    catalogoSvc,
	}
}

var _ portssvc.CajaSvcFacade = (*cajaService)(nil)

// GetCaja retrieves a register with its status label resolved once at read
// time, so consumers never re-derive it from catalog ids.
func (s *cajaService) GetCaja(ctx context.Context, cajaID string) (*domain.Caja, error) {
	caja, err := s.cajaRepo.FindCajaByID(ctx, cajaID)
	if err != nil {
		return nil, fmt.Errorf("failed to find caja %s: %w", cajaID, err)
	}
	caja.EstadoNombre = s.catalogoSvc.ResolverNombre(ctx, portssvc.KindEstadoCaja, string(caja.Estado))
	return caja, nil
}

// ListCajas retrieves registers with status labels resolved.
func (s *cajaService) ListCajas(ctx context.Context, puntoVentaID *string, estado *domain.CajaEstado) ([]domain.Caja, error) {
	cajas, err := s.cajaRepo.ListCajas(ctx, puntoVentaID, estado)
	if err != nil {
		return nil, fmt.Errorf("failed to list cajas: %w", err)
	}
	for i := range cajas {
		cajas[i].EstadoNombre = s.catalogoSvc.ResolverNombre(ctx, portssvc.KindEstadoCaja, string(cajas[i].Estado))
	}
	return cajas, nil
}

// AbrirCaja transitions a register to Abierta. Opening is unrestricted
// beyond the state precondition and touches no ledger entries.
func (s *cajaService) AbrirCaja(ctx context.Context, cajaID string, userID string) (*domain.Caja, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	caja, err := s.cajaRepo.FindCajaByID(ctx, cajaID)
	if err != nil {
		return nil, fmt.Errorf("failed to find caja %s: %w", cajaID, err)
	}
	if caja.EstaAbierta() {
		return nil, ErrCajaYaAbierta
	}

	desde := caja.Estado
	now := time.Now().UTC()
	caja.Estado = domain.CajaAbierta
	caja.FechaApertura = &now
	caja.FechaCierre = nil
	caja.LastUpdatedAt = now
	caja.LastUpdatedBy = userID

	if err := s.cajaRepo.SetCajaEstado(ctx, *caja, desde); err != nil {
		logger.Error("Failed to open caja", slog.String("caja_id", cajaID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to open caja %s: %w", cajaID, err)
	}

	logger.Info("Caja abierta", slog.String("caja_id", cajaID))
	caja.EstadoNombre = s.catalogoSvc.ResolverNombre(ctx, portssvc.KindEstadoCaja, string(caja.Estado))
	return caja, nil
}

// CerrarCaja transitions a register to Cerrada. Registers whose type carries
// the annual-close lock may only close from the first day of the calendar
// year after their opening. The caller is expected to have confirmed the
// projected balance via ResumenCaja beforehand; no balance is recomputed
// here. Closing is irreversible: there is no reopen operation.
func (s *cajaService) CerrarCaja(ctx context.Context, cajaID string, userID string) (*domain.Caja, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	caja, err := s.cajaRepo.FindCajaByID(ctx, cajaID)
	if err != nil {
		return nil, fmt.Errorf("failed to find caja %s: %w", cajaID, err)
	}
	if !caja.EstaAbierta() {
		return nil, ErrCajaNoAbierta
	}

	tipoCaja, err := s.catalogoSvc.GetTipoCaja(ctx, caja.TipoCajaID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("failed to resolve tipo de caja %s: %w", caja.TipoCajaID, err)
		}
		// Unknown type: treat as unrestricted rather than blocking the close.
		logger.Warn("Tipo de caja desconocido al cerrar", slog.String("caja_id", cajaID), slog.String("tipo_caja_id", caja.TipoCajaID))
		tipoCaja = &domain.TipoCaja{TipoCajaID: caja.TipoCajaID}
	}

	now := time.Now().UTC()
	if tipoCaja.CierreAnual {
		// A register provisioned open without a recorded opening date has no
		// exercise year to anchor the lock to; it closes unrestricted.
		if caja.FechaApertura == nil {
			logger.Warn("Caja abierta sin fecha de apertura registrada", slog.String("caja_id", cajaID))
		} else {
			desbloqueo := time.Date(caja.FechaApertura.Year()+1, time.January, 1, 0, 0, 0, 0, time.UTC)
			if now.Before(desbloqueo) {
				return nil, fmt.Errorf("%w: disponible desde %s", ErrCierreBloqueado, desbloqueo.Format("2006-01-02"))
			}
		}
	}

	caja.Estado = domain.CajaCerrada
	caja.FechaCierre = &now
	caja.LastUpdatedAt = now
	caja.LastUpdatedBy = userID

	if err := s.cajaRepo.SetCajaEstado(ctx, *caja, domain.CajaAbierta); err != nil {
		logger.Error("Failed to close caja", slog.String("caja_id", cajaID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to close caja %s: %w", cajaID, err)
	}

	logger.Info("Caja cerrada", slog.String("caja_id", cajaID))
	caja.EstadoNombre = s.catalogoSvc.ResolverNombre(ctx, portssvc.KindEstadoCaja, string(caja.Estado))
	return caja, nil
}

// ResumenCaja computes the projected balance over every entry of the
// register. Ledgers are bounded per register, so the whole set is loaded and
// summarized in memory.
func (s *cajaService) ResumenCaja(ctx context.Context, cajaID string) (*domain.ResumenCaja, error) {
	if _, err := s.cajaRepo.FindCajaByID(ctx, cajaID); err != nil {
		return nil, fmt.Errorf("failed to find caja %s: %w", cajaID, err)
	}

	movimientos, err := s.movimientoRepo.ListMovimientosFiltrados(ctx, portsrepo.MovimientoFiltro{CajaID: &cajaID})
	if err != nil {
		return nil, fmt.Errorf("failed to list movimientos for caja %s: %w", cajaID, err)
	}

	tiposOperacion, err := s.catalogoSvc.TiposOperacionPorID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load tipos de operacion: %w", err)
	}

	resumen := contabilidad.Resumir(movimientos, tiposOperacion)
	return &resumen, nil
}

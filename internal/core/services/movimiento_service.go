package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/inmofin/backoffice-caja/internal/apperrors"
	"github.com/inmofin/backoffice-caja/internal/core/domain"
	portsrepo "github.com/inmofin/backoffice-caja/internal/core/ports/repositories"
	portssvc "github.com/inmofin/backoffice-caja/internal/core/ports/services"
	"github.com/inmofin/backoffice-caja/internal/dto"
	"github.com/inmofin/backoffice-caja/internal/middleware"
	"github.com/inmofin/backoffice-caja/internal/platform/metrics"
	"github.com/inmofin/backoffice-caja/internal/utils/contabilidad"
)

var (
	// ErrMovimientoAprobado rejects update/delete of an approved entry.
	// Approval is a reconciliation sign-off; once given, the entry is
	// immutable and non-deletable.
	ErrMovimientoAprobado = errors.New("el movimiento ya fue aprobado y no admite cambios")
	// ErrYaAprobado rejects a repeated approval.
	ErrYaAprobado = errors.New("el movimiento ya se encuentra aprobado")
	// ErrDestinoRequerido rejects a traspaso without a distinct destination.
	ErrDestinoRequerido = errors.New("un traspaso requiere una caja de destino distinta del origen")
	// ErrDestinoNoPermitido rejects a destination on a non-traspaso entry.
	ErrDestinoNoPermitido = errors.New("solo un traspaso puede indicar caja de destino")
)

const defaultMovimientosLimit = 20

// movimientoService implements the ledger-entry approval workflow: entries
// are born Pendiente, stay mutable until approved, and approval is terminal.
type movimientoService struct {
	movimientoRepo portsrepo.MovimientoRepositoryFacade
	cajaRepo       portsrepo.CajaReader
	catalogoSvc    portssvc.CatalogoSvcFacade
}

// NewMovimientoService creates a new ledger-entry service.
func NewMovimientoService(movimientoRepo portsrepo.MovimientoRepositoryFacade, cajaRepo portsrepo.CajaReader, catalogoSvc portssvc.CatalogoSvcFacade) portssvc.MovimientoSvcFacade {
	return &movimientoService{
		movimientoRepo: movimientoRepo,
		cajaRepo:       cajaRepo,
		catalogoSvc:    catalogoSvc,
	}
}

var _ portssvc.MovimientoSvcFacade = (*movimientoService)(nil)

// validarMonto rejects non-positive amounts before anything touches storage.
func validarMonto(monto decimal.Decimal) error {
	if monto.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("%w: el monto debe ser mayor a cero", apperrors.ErrValidation)
	}
	return nil
}

// CrearMovimiento validates and persists a new entry in Pendiente state.
func (s *movimientoService) CrearMovimiento(ctx context.Context, cajaID string, req dto.CrearMovimientoRequest, creatorUserID string) (*domain.CajaMovimiento, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := validarMonto(req.Monto); err != nil {
		return nil, err
	}

	caja, err := s.cajaRepo.FindCajaByID(ctx, cajaID)
	if err != nil {
		return nil, fmt.Errorf("failed to find caja %s: %w", cajaID, err)
	}
	if !caja.EstaAbierta() {
		return nil, ErrCajaNoAbierta
	}

	tipoMovimiento, err := s.catalogoSvc.GetTipoMovimiento(ctx, req.TipoMovimientoID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: tipo de movimiento %s inexistente", apperrors.ErrValidation, req.TipoMovimientoID)
		}
		return nil, err
	}
	if _, err := s.catalogoSvc.GetTipoOperacion(ctx, req.TipoOperacionID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: tipo de operacion %s inexistente", apperrors.ErrValidation, req.TipoOperacionID)
		}
		return nil, err
	}

	if tipoMovimiento.EsTraspaso {
		if req.CajaDestinoID == nil || *req.CajaDestinoID == cajaID {
			return nil, ErrDestinoRequerido
		}
	} else if req.CajaDestinoID != nil {
		return nil, ErrDestinoNoPermitido
	}

	now := time.Now().UTC()
	fecha := now
	if req.Fecha != nil {
		fecha = *req.Fecha
	}

	movimiento := domain.CajaMovimiento{
		MovimientoID:     uuid.NewString(),
		CajaID:           cajaID,
		CajaDestinoID:    req.CajaDestinoID,
		TipoMovimientoID: req.TipoMovimientoID,
		TipoOperacionID:  req.TipoOperacionID,
		Monto:            req.Monto,
		Descripcion:      req.Descripcion,
		Referencia:       req.Referencia,
		Fecha:            fecha,
		UsuarioID:        creatorUserID,
		Estado:           domain.MovimientoPendiente,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.movimientoRepo.CreateMovimiento(ctx, movimiento); err != nil {
		logger.Error("Failed to create movimiento", slog.String("caja_id", cajaID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to create movimiento: %w", err)
	}

	logger.Info("Movimiento creado", slog.String("movimiento_id", movimiento.MovimientoID), slog.String("caja_id", cajaID))
	return &movimiento, nil
}

// ActualizarMovimiento replaces the mutable fields of a pending entry.
func (s *movimientoService) ActualizarMovimiento(ctx context.Context, movimientoID string, req dto.ActualizarMovimientoRequest, userID string) (*domain.CajaMovimiento, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	movimiento, err := s.movimientoRepo.FindMovimientoByID(ctx, movimientoID)
	if err != nil {
		return nil, fmt.Errorf("failed to find movimiento %s: %w", movimientoID, err)
	}
	if !movimiento.EsModificable() {
		return nil, ErrMovimientoAprobado
	}

	updated := false
	if req.Monto != nil {
		if err := validarMonto(*req.Monto); err != nil {
			return nil, err
		}
		movimiento.Monto = *req.Monto
		updated = true
	}
	if req.TipoOperacionID != nil {
		if _, err := s.catalogoSvc.GetTipoOperacion(ctx, *req.TipoOperacionID); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("%w: tipo de operacion %s inexistente", apperrors.ErrValidation, *req.TipoOperacionID)
			}
			return nil, err
		}
		movimiento.TipoOperacionID = *req.TipoOperacionID
		updated = true
	}
	if req.Descripcion != nil {
		movimiento.Descripcion = *req.Descripcion
		updated = true
	}
	if req.Referencia != nil {
		movimiento.Referencia = *req.Referencia
		updated = true
	}
	if req.Fecha != nil {
		movimiento.Fecha = *req.Fecha
		updated = true
	}

	if !updated {
		return movimiento, nil
	}

	now := time.Now().UTC()
	movimiento.LastUpdatedAt = now
	movimiento.LastUpdatedBy = userID

	if err := s.movimientoRepo.UpdateMovimiento(ctx, *movimiento); err != nil {
		logger.Error("Failed to update movimiento", slog.String("movimiento_id", movimientoID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to update movimiento %s: %w", movimientoID, err)
	}

	logger.Info("Movimiento actualizado", slog.String("movimiento_id", movimientoID))
	return movimiento, nil
}

// EliminarMovimiento removes a pending entry. Approved entries are never
// physically removed.
func (s *movimientoService) EliminarMovimiento(ctx context.Context, movimientoID string, userID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	movimiento, err := s.movimientoRepo.FindMovimientoByID(ctx, movimientoID)
	if err != nil {
		return fmt.Errorf("failed to find movimiento %s: %w", movimientoID, err)
	}
	if !movimiento.EsModificable() {
		return ErrMovimientoAprobado
	}

	if err := s.movimientoRepo.DeleteMovimiento(ctx, movimientoID); err != nil {
		logger.Error("Failed to delete movimiento", slog.String("movimiento_id", movimientoID), slog.String("error", err.Error()))
		return fmt.Errorf("failed to delete movimiento %s: %w", movimientoID, err)
	}

	logger.Info("Movimiento eliminado", slog.String("movimiento_id", movimientoID))
	return nil
}

// AprobarMovimiento performs the one-way Pendiente -> Aprobado transition.
// There is no reject or unapprove; the supervisor sign-off is terminal.
func (s *movimientoService) AprobarMovimiento(ctx context.Context, movimientoID string, userID string) (*domain.CajaMovimiento, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	movimiento, err := s.movimientoRepo.FindMovimientoByID(ctx, movimientoID)
	if err != nil {
		return nil, fmt.Errorf("failed to find movimiento %s: %w", movimientoID, err)
	}
	if movimiento.Estado == domain.MovimientoAprobado {
		return nil, ErrYaAprobado
	}

	now := time.Now().UTC()
	if err := s.movimientoRepo.SetMovimientoEstado(ctx, movimientoID, domain.MovimientoPendiente, domain.MovimientoAprobado, userID, now); err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			// Lost the race against another approver.
			return nil, ErrYaAprobado
		}
		logger.Error("Failed to approve movimiento", slog.String("movimiento_id", movimientoID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to approve movimiento %s: %w", movimientoID, err)
	}

	metrics.MovimientosAprobados.Inc()
	logger.Info("Movimiento aprobado", slog.String("movimiento_id", movimientoID))

	movimiento.Estado = domain.MovimientoAprobado
	movimiento.LastUpdatedAt = now
	movimiento.LastUpdatedBy = userID
	return movimiento, nil
}

// GetMovimiento retrieves a single entry.
func (s *movimientoService) GetMovimiento(ctx context.Context, movimientoID string) (*domain.CajaMovimiento, error) {
	movimiento, err := s.movimientoRepo.FindMovimientoByID(ctx, movimientoID)
	if err != nil {
		return nil, fmt.Errorf("failed to find movimiento %s: %w", movimientoID, err)
	}
	return movimiento, nil
}

// ListMovimientos retrieves a filtered page of a register's entries plus the
// summary of the whole filtered set. The summary is recomputed on every call
// rather than maintained incrementally; ledgers are bounded per register.
func (s *movimientoService) ListMovimientos(ctx context.Context, cajaID string, params dto.ListMovimientosParams) (*dto.ListMovimientosResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	filtro := portsrepo.MovimientoFiltro{
		CajaID:          &cajaID,
		TipoOperacionID: params.TipoOperacionID,
		Texto:           params.Texto,
		FechaDesde:      params.FechaDesde,
		FechaHasta:      params.FechaHasta,
	}
	if params.Estado != nil {
		estado := domain.MovimientoEstado(*params.Estado)
		if estado != domain.MovimientoPendiente && estado != domain.MovimientoAprobado {
			return nil, fmt.Errorf("%w: estado %s invalido", apperrors.ErrValidation, *params.Estado)
		}
		filtro.Estado = &estado
	}

	limit := params.Limit
	if limit <= 0 {
		limit = defaultMovimientosLimit
	}

	movimientos, totalCount, nextToken, err := s.movimientoRepo.ListMovimientos(ctx, filtro, limit, params.NextToken)
	if err != nil {
		logger.Error("Failed to list movimientos", slog.String("caja_id", cajaID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list movimientos: %w", err)
	}

	completos, err := s.movimientoRepo.ListMovimientosFiltrados(ctx, filtro)
	if err != nil {
		return nil, fmt.Errorf("failed to load filtered movimientos: %w", err)
	}
	tiposOperacion, err := s.catalogoSvc.TiposOperacionPorID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load tipos de operacion: %w", err)
	}
	resumen := contabilidad.Resumir(completos, tiposOperacion)

	resp := &dto.ListMovimientosResponse{
		Movimientos: dto.ToMovimientoResponses(movimientos),
		TotalCount:  totalCount,
		NextToken:   nextToken,
		Resumen:     dto.ToResumenResponse(resumen),
	}

	logger.Debug("Movimientos listados", slog.String("caja_id", cajaID), slog.Int("count", len(movimientos)), slog.Int("total", totalCount))
	return resp, nil
}

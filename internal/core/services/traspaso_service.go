package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/inmofin/backoffice-caja/internal/apperrors"
	"github.com/inmofin/backoffice-caja/internal/core/domain"
	portsrepo "github.com/inmofin/backoffice-caja/internal/core/ports/repositories"
	portssvc "github.com/inmofin/backoffice-caja/internal/core/ports/services"
	"github.com/inmofin/backoffice-caja/internal/dto"
	"github.com/inmofin/backoffice-caja/internal/middleware"
	"github.com/inmofin/backoffice-caja/internal/platform/metrics"
)

var (
	// ErrTraspasoMismaCaja rejects a transfer whose origin and destination
	// are the same register.
	ErrTraspasoMismaCaja = errors.New("el traspaso requiere cajas de origen y destino distintas")
	// ErrOperacionSinInversa rejects an operation type with no configured
	// inverse; the reverse leg cannot be classified without it.
	ErrOperacionSinInversa = errors.New("el tipo de operacion no tiene inversa configurada")
	// ErrTipoTraspasoNoConfigurado signals that the catalog has no movement
	// type flagged as traspaso.
	ErrTipoTraspasoNoConfigurado = errors.New("no hay tipo de movimiento de traspaso configurado")
	// ErrReversoFallido signals that the primary leg was recorded but the
	// reverse leg at the destination could not be. The primary is final and
	// is NOT rolled back; an operator must reconcile the destination by
	// hand. Callers treat this as success with a follow-up required.
	ErrReversoFallido = errors.New("el movimiento de origen fue registrado pero el reverso en destino fallo")
)

// traspasoService posts inter-register transfers as a pair of independently
// committed ledger entries: debit at origin, mirrored credit at destination.
// The two legs are deliberately not wrapped in a single transaction; the
// registers may belong to different operators and the surrounding system has
// no cross-register transaction primitive.
type traspasoService struct {
	movimientoRepo portsrepo.MovimientoWriter
	cajaRepo       portsrepo.CajaReader
	catalogoSvc    portssvc.CatalogoSvcFacade
}

// NewTraspasoService creates a new transfer engine.
func NewTraspasoService(movimientoRepo portsrepo.MovimientoWriter, cajaRepo portsrepo.CajaReader, catalogoSvc portssvc.CatalogoSvcFacade) portssvc.TraspasoSvcFacade {
	return &traspasoService{
		movimientoRepo: movimientoRepo,
		cajaRepo:       cajaRepo,
		catalogoSvc:    catalogoSvc,
	}
}

var _ portssvc.TraspasoSvcFacade = (*traspasoService)(nil)

// tipoTraspaso finds the movement type flagged as traspaso in the catalog.
func (s *traspasoService) tipoTraspaso(ctx context.Context) (*domain.TipoMovimiento, error) {
	tipos, err := s.catalogoSvc.ListTiposMovimiento(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load tipos de movimiento: %w", err)
	}
	for i := range tipos {
		if tipos[i].EsTraspaso {
			tipo := tipos[i]
			return &tipo, nil
		}
	}
	return nil, ErrTipoTraspasoNoConfigurado
}

// RegistrarTraspaso validates the pair, records the primary leg at the
// origin, and only after it is durably stored attempts the reverse leg at
// the destination with the inverse operation type.
func (s *traspasoService) RegistrarTraspaso(ctx context.Context, req dto.RegistrarTraspasoRequest, userID string) (*domain.Traspaso, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	// Domain-rule violations are all rejected before any persistence.
	if req.CajaOrigenID == req.CajaDestinoID {
		return nil, ErrTraspasoMismaCaja
	}
	if err := validarMonto(req.Monto); err != nil {
		return nil, err
	}

	origen, err := s.cajaRepo.FindCajaByID(ctx, req.CajaOrigenID)
	if err != nil {
		return nil, fmt.Errorf("failed to find caja de origen %s: %w", req.CajaOrigenID, err)
	}
	if !origen.EstaAbierta() {
		return nil, ErrCajaNoAbierta
	}

	tipoMovimiento, err := s.tipoTraspaso(ctx)
	if err != nil {
		return nil, err
	}

	tipoOperacion, err := s.catalogoSvc.GetTipoOperacion(ctx, req.TipoOperacionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: tipo de operacion %s inexistente", apperrors.ErrValidation, req.TipoOperacionID)
		}
		return nil, err
	}
	if tipoOperacion.TipoInversoID == "" {
		return nil, ErrOperacionSinInversa
	}
	tipoInverso, err := s.catalogoSvc.GetTipoOperacion(ctx, tipoOperacion.TipoInversoID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve tipo de operacion inverso %s: %w", tipoOperacion.TipoInversoID, err)
	}

	now := time.Now().UTC()
	destinoID := req.CajaDestinoID
	origenID := req.CajaOrigenID

	primario := domain.CajaMovimiento{
		MovimientoID:     uuid.NewString(),
		CajaID:           origenID,
		CajaDestinoID:    &destinoID,
		TipoMovimientoID: tipoMovimiento.TipoMovimientoID,
		TipoOperacionID:  tipoOperacion.TipoOperacionID,
		Monto:            req.Monto,
		Descripcion:      req.Descripcion,
		Referencia:       req.Referencia,
		Fecha:            now,
		UsuarioID:        userID,
		Estado:           domain.MovimientoPendiente,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	// The primary leg must be durably recorded before the reverse leg is
	// even attempted.
	if err := s.movimientoRepo.CreateMovimiento(ctx, primario); err != nil {
		logger.Error("Failed to create primary traspaso leg", slog.String("caja_origen", origenID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to create traspaso at origin %s: %w", origenID, err)
	}
	metrics.TraspasosRegistrados.Inc()

	traspaso := &domain.Traspaso{Primario: &primario}

	reverso, err := s.registrarReverso(ctx, req, tipoMovimiento.TipoMovimientoID, tipoInverso.TipoOperacionID, userID, now)
	if err != nil {
		// The economic effect at the origin is final once recorded; the
		// destination posting is a best-effort mirror. Surface the failure
		// distinctly so an operator reconciles it, but keep the primary.
		metrics.TraspasosReversoFallido.Inc()
		logger.Warn("Reverse traspaso leg failed, primary kept",
			slog.String("movimiento_primario", primario.MovimientoID),
			slog.String("caja_origen", origenID),
			slog.String("caja_destino", destinoID),
			slog.String("error", err.Error()),
		)
		return traspaso, fmt.Errorf("%w: %v", ErrReversoFallido, err)
	}

	traspaso.Reverso = reverso
	logger.Info("Traspaso registrado",
		slog.String("movimiento_primario", primario.MovimientoID),
		slog.String("movimiento_reverso", reverso.MovimientoID),
		slog.String("caja_origen", origenID),
		slog.String("caja_destino", destinoID),
	)
	return traspaso, nil
}

// registrarReverso posts the mirrored entry at the destination register.
func (s *traspasoService) registrarReverso(ctx context.Context, req dto.RegistrarTraspasoRequest, tipoMovimientoID, tipoOperacionInversoID, userID string, now time.Time) (*domain.CajaMovimiento, error) {
	destino, err := s.cajaRepo.FindCajaByID(ctx, req.CajaDestinoID)
	if err != nil {
		return nil, fmt.Errorf("failed to find caja de destino %s: %w", req.CajaDestinoID, err)
	}
	if !destino.EstaAbierta() {
		return nil, fmt.Errorf("caja de destino %s: %w", req.CajaDestinoID, ErrCajaNoAbierta)
	}

	origenID := req.CajaOrigenID
	reverso := domain.CajaMovimiento{
		MovimientoID:     uuid.NewString(),
		CajaID:           req.CajaDestinoID,
		CajaDestinoID:    &origenID,
		TipoMovimientoID: tipoMovimientoID,
		TipoOperacionID:  tipoOperacionInversoID,
		Monto:            req.Monto,
		Descripcion:      fmt.Sprintf("%s - Recibido desde caja %s", req.Descripcion, origenID),
		Referencia:       req.Referencia,
		Fecha:            now,
		UsuarioID:        userID,
		Estado:           domain.MovimientoPendiente,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.movimientoRepo.CreateMovimiento(ctx, reverso); err != nil {
		return nil, fmt.Errorf("failed to create reverse leg at destination %s: %w", req.CajaDestinoID, err)
	}
	return &reverso, nil
}

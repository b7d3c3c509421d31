package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/inmofin/backoffice-caja/internal/apperrors"
	portssvc "github.com/inmofin/backoffice-caja/internal/core/ports/services"
	"github.com/inmofin/backoffice-caja/internal/core/services"
	"github.com/inmofin/backoffice-caja/internal/dto"
	"github.com/inmofin/backoffice-caja/internal/middleware"
)

// traspasoHandler handles HTTP requests for inter-register transfers.
type traspasoHandler struct {
	traspasoService portssvc.TraspasoSvcFacade
}

// newTraspasoHandler creates a new traspasoHandler.
func newTraspasoHandler(ts portssvc.TraspasoSvcFacade) *traspasoHandler {
	return &traspasoHandler{
		traspasoService: ts,
	}
}

// registerTraspasoRoutes registers the transfer route.
func registerTraspasoRoutes(rg *gin.RouterGroup, traspasoService portssvc.TraspasoSvcFacade) {
	h := newTraspasoHandler(traspasoService)

	rg.POST("/traspasos", h.registrarTraspaso)
}

// registrarTraspaso godoc
// @Summary Post an inter-register transfer
// @Description Records the primary leg at the origin and the reverse leg at the destination. When only the reverse leg fails the response is still 201 with the primary leg and a warning; the destination must be reconciled by hand.
// @Tags traspasos
// @Accept json
// @Produce json
// @Param traspaso body dto.RegistrarTraspasoRequest true "Transfer details"
// @Success 201 {object} dto.TraspasoResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Origin register not found"
// @Failure 409 {object} ErrorResponse "Origin register not open"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /traspasos [post]
func (h *traspasoHandler) registrarTraspaso(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.RegistrarTraspasoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for RegistrarTraspaso", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	traspaso, err := h.traspasoService.RegistrarTraspaso(c.Request.Context(), req, userID)
	if err != nil {
		if errors.Is(err, services.ErrReversoFallido) && traspaso != nil {
			// The primary leg is final; surface the failed reverse leg as a
			// warning on an otherwise successful creation.
			advertencia := err.Error()
			c.JSON(http.StatusCreated, dto.ToTraspasoResponse(traspaso, &advertencia))
			return
		}
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Caja de origen not found"})
		case errors.Is(err, services.ErrCajaNoAbierta):
			c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
		case errors.Is(err, apperrors.ErrValidation),
			errors.Is(err, services.ErrTraspasoMismaCaja),
			errors.Is(err, services.ErrOperacionSinInversa),
			errors.Is(err, services.ErrTipoTraspasoNoConfigurado):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		default:
			logger.Error("Failed to register traspaso", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to register traspaso"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToTraspasoResponse(traspaso, nil))
}

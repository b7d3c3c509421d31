package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/inmofin/backoffice-caja/internal/apperrors"
	"github.com/inmofin/backoffice-caja/internal/core/domain"
	portssvc "github.com/inmofin/backoffice-caja/internal/core/ports/services"
	"github.com/inmofin/backoffice-caja/internal/core/services"
	"github.com/inmofin/backoffice-caja/internal/dto"
	"github.com/inmofin/backoffice-caja/internal/middleware"
)

// cajaHandler handles HTTP requests related to registers.
type cajaHandler struct {
	cajaService portssvc.CajaSvcFacade
}

// newCajaHandler creates a new cajaHandler.
func newCajaHandler(cs portssvc.CajaSvcFacade) *cajaHandler {
	return &cajaHandler{
		cajaService: cs,
	}
}

// registerCajaRoutes registers routes related to registers and their entries.
func registerCajaRoutes(rg *gin.RouterGroup, cajaService portssvc.CajaSvcFacade, movimientoService portssvc.MovimientoSvcFacade) {
	h := newCajaHandler(cajaService)
	mh := newMovimientoHandler(movimientoService)

	cajas := rg.Group("/cajas")
	{
		cajas.GET("", h.listCajas)
		cajas.GET("/:caja_id", h.getCaja)
		cajas.GET("/:caja_id/resumen", h.getResumen)
		cajas.POST("/:caja_id/abrir", h.abrirCaja)
		cajas.POST("/:caja_id/cerrar", h.cerrarCaja)

		cajas.POST("/:caja_id/movimientos", mh.crearMovimiento)
		cajas.GET("/:caja_id/movimientos", mh.listMovimientos)
	}
}

// listCajas godoc
// @Summary List registers
// @Description Retrieves registers, optionally filtered by point of sale and state
// @Tags cajas
// @Produce json
// @Param puntoVentaID query string false "Point of sale filter"
// @Param estado query string false "State filter (ABIERTA or CERRADA)"
// @Success 200 {object} dto.ListCajasResponse
// @Failure 400 {object} ErrorResponse "Invalid state filter"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /cajas [get]
func (h *cajaHandler) listCajas(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var puntoVentaID *string
	if v := c.Query("puntoVentaID"); v != "" {
		puntoVentaID = &v
	}
	var estado *domain.CajaEstado
	if v := c.Query("estado"); v != "" {
		e := domain.CajaEstado(v)
		if e != domain.CajaAbierta && e != domain.CajaCerrada {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "estado must be ABIERTA or CERRADA"})
			return
		}
		estado = &e
	}

	cajas, err := h.cajaService.ListCajas(c.Request.Context(), puntoVentaID, estado)
	if err != nil {
		logger.Error("Failed to list cajas", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list cajas"})
		return
	}

	c.JSON(http.StatusOK, dto.ListCajasResponse{Cajas: dto.ToCajaResponses(cajas)})
}

// getCaja godoc
// @Summary Get a register
// @Description Retrieves a register by id with its status label resolved
// @Tags cajas
// @Produce json
// @Param caja_id path string true "Register ID"
// @Success 200 {object} dto.CajaResponse
// @Failure 404 {object} ErrorResponse "Register not found"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /cajas/{caja_id} [get]
func (h *cajaHandler) getCaja(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	cajaID := c.Param("caja_id")

	caja, err := h.cajaService.GetCaja(c.Request.Context(), cajaID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Caja not found"})
			return
		}
		logger.Error("Failed to get caja", slog.String("caja_id", cajaID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve caja"})
		return
	}

	c.JSON(http.StatusOK, dto.ToCajaResponse(caja))
}

// getResumen godoc
// @Summary Get a register's projected balance
// @Description Computes income, expense and balance totals over every entry of the register, typically before a close
// @Tags cajas
// @Produce json
// @Param caja_id path string true "Register ID"
// @Success 200 {object} dto.ResumenResponse
// @Failure 404 {object} ErrorResponse "Register not found"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /cajas/{caja_id}/resumen [get]
func (h *cajaHandler) getResumen(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	cajaID := c.Param("caja_id")

	resumen, err := h.cajaService.ResumenCaja(c.Request.Context(), cajaID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Caja not found"})
			return
		}
		logger.Error("Failed to compute resumen", slog.String("caja_id", cajaID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to compute resumen"})
		return
	}

	c.JSON(http.StatusOK, dto.ToResumenResponse(*resumen))
}

// abrirCaja godoc
// @Summary Open a register
// @Description Transitions the register to Abierta; fails if it is already open
// @Tags cajas
// @Produce json
// @Param caja_id path string true "Register ID"
// @Success 200 {object} dto.CajaResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Register not found"
// @Failure 409 {object} ErrorResponse "Register already open"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /cajas/{caja_id}/abrir [post]
func (h *cajaHandler) abrirCaja(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	cajaID := c.Param("caja_id")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	caja, err := h.cajaService.AbrirCaja(c.Request.Context(), cajaID, userID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Caja not found"})
		case errors.Is(err, services.ErrCajaYaAbierta), errors.Is(err, apperrors.ErrConflict):
			c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
		default:
			logger.Error("Failed to open caja", slog.String("caja_id", cajaID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to open caja"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToCajaResponse(caja))
}

// cerrarCaja godoc
// @Summary Close a register
// @Description Transitions the register to Cerrada; restricted types are locked until the next calendar year after opening
// @Tags cajas
// @Produce json
// @Param caja_id path string true "Register ID"
// @Success 200 {object} dto.CajaResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Register not found"
// @Failure 409 {object} ErrorResponse "Register not open"
// @Failure 422 {object} ErrorResponse "Annual close lock in effect"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /cajas/{caja_id}/cerrar [post]
func (h *cajaHandler) cerrarCaja(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	cajaID := c.Param("caja_id")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	caja, err := h.cajaService.CerrarCaja(c.Request.Context(), cajaID, userID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Caja not found"})
		case errors.Is(err, services.ErrCajaNoAbierta), errors.Is(err, apperrors.ErrConflict):
			c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
		case errors.Is(err, services.ErrCierreBloqueado):
			c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
		default:
			logger.Error("Failed to close caja", slog.String("caja_id", cajaID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to close caja"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToCajaResponse(caja))
}

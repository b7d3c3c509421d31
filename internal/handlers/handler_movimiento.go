package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/inmofin/backoffice-caja/internal/apperrors"
	portssvc "github.com/inmofin/backoffice-caja/internal/core/ports/services"
	"github.com/inmofin/backoffice-caja/internal/core/services"
	"github.com/inmofin/backoffice-caja/internal/dto"
	"github.com/inmofin/backoffice-caja/internal/middleware"
)

const fechaQueryFormat = "2006-01-02"

// movimientoHandler handles HTTP requests related to ledger entries.
type movimientoHandler struct {
	movimientoService portssvc.MovimientoSvcFacade
}

// newMovimientoHandler creates a new movimientoHandler.
func newMovimientoHandler(ms portssvc.MovimientoSvcFacade) *movimientoHandler {
	return &movimientoHandler{
		movimientoService: ms,
	}
}

// registerMovimientoRoutes registers routes addressing entries by id. The
// creation and listing routes live under the register in handler_caja.go.
func registerMovimientoRoutes(rg *gin.RouterGroup, movimientoService portssvc.MovimientoSvcFacade) {
	h := newMovimientoHandler(movimientoService)

	movimientos := rg.Group("/movimientos")
	{
		movimientos.GET("/:movimiento_id", h.getMovimiento)
		movimientos.PUT("/:movimiento_id", h.actualizarMovimiento)
		movimientos.DELETE("/:movimiento_id", h.eliminarMovimiento)
		movimientos.POST("/:movimiento_id/aprobar", h.aprobarMovimiento)
	}
}

// crearMovimiento godoc
// @Summary Create a ledger entry
// @Description Records a new entry in Pendiente state against an open register
// @Tags movimientos
// @Accept json
// @Produce json
// @Param caja_id path string true "Register ID"
// @Param movimiento body dto.CrearMovimientoRequest true "Entry details"
// @Success 201 {object} dto.MovimientoResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Register not found"
// @Failure 409 {object} ErrorResponse "Register not open"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /cajas/{caja_id}/movimientos [post]
func (h *movimientoHandler) crearMovimiento(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	cajaID := c.Param("caja_id")

	var req dto.CrearMovimientoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CrearMovimiento", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	movimiento, err := h.movimientoService.CrearMovimiento(c.Request.Context(), cajaID, req, userID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Caja not found"})
		case errors.Is(err, services.ErrCajaNoAbierta):
			c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
		case errors.Is(err, apperrors.ErrValidation),
			errors.Is(err, services.ErrDestinoRequerido),
			errors.Is(err, services.ErrDestinoNoPermitido):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		default:
			logger.Error("Failed to create movimiento", slog.String("caja_id", cajaID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create movimiento"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToMovimientoResponse(movimiento))
}

// listMovimientos godoc
// @Summary List a register's entries
// @Description Retrieves a filtered page of entries plus the summary of the whole filtered set
// @Tags movimientos
// @Produce json
// @Param caja_id path string true "Register ID"
// @Param tipoOperacionID query string false "Operation type filter"
// @Param estado query string false "Approval state filter (PENDIENTE or APROBADO)"
// @Param texto query string false "Case-insensitive text match over description and reference"
// @Param fechaDesde query string false "Start date (YYYY-MM-DD)"
// @Param fechaHasta query string false "End date (YYYY-MM-DD)"
// @Param limit query int false "Page size (default 20)"
// @Param nextToken query string false "Pagination token from a previous page"
// @Success 200 {object} dto.ListMovimientosResponse
// @Failure 400 {object} ErrorResponse "Invalid filter"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /cajas/{caja_id}/movimientos [get]
func (h *movimientoHandler) listMovimientos(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	cajaID := c.Param("caja_id")

	params, err := parseListMovimientosParams(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	resp, err := h.movimientoService.ListMovimientos(c.Request.Context(), cajaID, params)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to list movimientos", slog.String("caja_id", cajaID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list movimientos"})
		return
	}

	c.JSON(http.StatusOK, resp)
}

func parseListMovimientosParams(c *gin.Context) (dto.ListMovimientosParams, error) {
	var params dto.ListMovimientosParams

	if v := c.Query("tipoOperacionID"); v != "" {
		params.TipoOperacionID = &v
	}
	if v := c.Query("estado"); v != "" {
		params.Estado = &v
	}
	if v := c.Query("texto"); v != "" {
		params.Texto = &v
	}
	if v := c.Query("fechaDesde"); v != "" {
		fecha, err := time.Parse(fechaQueryFormat, v)
		if err != nil {
			return params, errors.New("fechaDesde must be YYYY-MM-DD")
		}
		params.FechaDesde = &fecha
	}
	if v := c.Query("fechaHasta"); v != "" {
		fecha, err := time.Parse(fechaQueryFormat, v)
		if err != nil {
			return params, errors.New("fechaHasta must be YYYY-MM-DD")
		}
		// Inclusive end of day.
		hasta := fecha.Add(24*time.Hour - time.Nanosecond)
		params.FechaHasta = &hasta
	}
	if v := c.Query("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil || limit < 0 {
			return params, errors.New("limit must be a non-negative integer")
		}
		params.Limit = limit
	}
	if v := c.Query("nextToken"); v != "" {
		params.NextToken = &v
	}

	return params, nil
}

// getMovimiento godoc
// @Summary Get a ledger entry
// @Tags movimientos
// @Produce json
// @Param movimiento_id path string true "Entry ID"
// @Success 200 {object} dto.MovimientoResponse
// @Failure 404 {object} ErrorResponse "Entry not found"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /movimientos/{movimiento_id} [get]
func (h *movimientoHandler) getMovimiento(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	movimientoID := c.Param("movimiento_id")

	movimiento, err := h.movimientoService.GetMovimiento(c.Request.Context(), movimientoID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Movimiento not found"})
			return
		}
		logger.Error("Failed to get movimiento", slog.String("movimiento_id", movimientoID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve movimiento"})
		return
	}

	c.JSON(http.StatusOK, dto.ToMovimientoResponse(movimiento))
}

// actualizarMovimiento godoc
// @Summary Update a pending ledger entry
// @Description Replaces the mutable fields of an entry; approved entries are immutable
// @Tags movimientos
// @Accept json
// @Produce json
// @Param movimiento_id path string true "Entry ID"
// @Param movimiento body dto.ActualizarMovimientoRequest true "Fields to update"
// @Success 200 {object} dto.MovimientoResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Entry not found"
// @Failure 409 {object} ErrorResponse "Entry already approved"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /movimientos/{movimiento_id} [put]
func (h *movimientoHandler) actualizarMovimiento(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	movimientoID := c.Param("movimiento_id")

	var req dto.ActualizarMovimientoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for ActualizarMovimiento", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	movimiento, err := h.movimientoService.ActualizarMovimiento(c.Request.Context(), movimientoID, req, userID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Movimiento not found"})
		case errors.Is(err, services.ErrMovimientoAprobado), errors.Is(err, apperrors.ErrConflict):
			c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		default:
			logger.Error("Failed to update movimiento", slog.String("movimiento_id", movimientoID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update movimiento"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToMovimientoResponse(movimiento))
}

// eliminarMovimiento godoc
// @Summary Delete a pending ledger entry
// @Description Removes an entry; approved entries are never deleted
// @Tags movimientos
// @Produce json
// @Param movimiento_id path string true "Entry ID"
// @Success 204 "No Content"
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Entry not found"
// @Failure 409 {object} ErrorResponse "Entry already approved"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /movimientos/{movimiento_id} [delete]
func (h *movimientoHandler) eliminarMovimiento(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	movimientoID := c.Param("movimiento_id")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	err := h.movimientoService.EliminarMovimiento(c.Request.Context(), movimientoID, userID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Movimiento not found"})
		case errors.Is(err, services.ErrMovimientoAprobado), errors.Is(err, apperrors.ErrConflict):
			c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
		default:
			logger.Error("Failed to delete movimiento", slog.String("movimiento_id", movimientoID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete movimiento"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// aprobarMovimiento godoc
// @Summary Approve a ledger entry
// @Description One-way Pendiente to Aprobado transition; there is no unapprove
// @Tags movimientos
// @Produce json
// @Param movimiento_id path string true "Entry ID"
// @Success 200 {object} dto.MovimientoResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Entry not found"
// @Failure 409 {object} ErrorResponse "Entry already approved"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /movimientos/{movimiento_id}/aprobar [post]
func (h *movimientoHandler) aprobarMovimiento(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	movimientoID := c.Param("movimiento_id")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	movimiento, err := h.movimientoService.AprobarMovimiento(c.Request.Context(), movimientoID, userID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Movimiento not found"})
		case errors.Is(err, services.ErrYaAprobado):
			c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
		default:
			logger.Error("Failed to approve movimiento", slog.String("movimiento_id", movimientoID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to approve movimiento"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToMovimientoResponse(movimiento))
}

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/inmofin/backoffice-caja/internal/core/ports/services"
	"github.com/inmofin/backoffice-caja/internal/dto"
	"github.com/inmofin/backoffice-caja/internal/middleware"
)

// catalogoHandler serves the read-only reference catalogs.
type catalogoHandler struct {
	catalogoService portssvc.CatalogoSvcFacade
}

// newCatalogoHandler creates a new catalogoHandler.
func newCatalogoHandler(cs portssvc.CatalogoSvcFacade) *catalogoHandler {
	return &catalogoHandler{
		catalogoService: cs,
	}
}

// registerCatalogoRoutes registers the catalog listing routes.
func registerCatalogoRoutes(rg *gin.RouterGroup, catalogoService portssvc.CatalogoSvcFacade) {
	h := newCatalogoHandler(catalogoService)

	catalogos := rg.Group("/catalogos")
	{
		catalogos.GET("/tipos-movimiento", h.listTiposMovimiento)
		catalogos.GET("/tipos-operacion", h.listTiposOperacion)
		catalogos.GET("/tipos-caja", h.listTiposCaja)
		catalogos.GET("/estados-caja", h.listEstadosCaja)
	}
}

// listTiposMovimiento godoc
// @Summary List movement types
// @Tags catalogos
// @Produce json
// @Success 200 {array} dto.TipoMovimientoResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /catalogos/tipos-movimiento [get]
func (h *catalogoHandler) listTiposMovimiento(c *gin.Context) {
	tipos, err := h.catalogoService.ListTiposMovimiento(c.Request.Context())
	if err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to list tipos de movimiento", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list tipos de movimiento"})
		return
	}
	c.JSON(http.StatusOK, dto.ToTipoMovimientoResponses(tipos))
}

// listTiposOperacion godoc
// @Summary List operation types
// @Tags catalogos
// @Produce json
// @Success 200 {array} dto.TipoOperacionResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /catalogos/tipos-operacion [get]
func (h *catalogoHandler) listTiposOperacion(c *gin.Context) {
	tipos, err := h.catalogoService.ListTiposOperacion(c.Request.Context())
	if err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to list tipos de operacion", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list tipos de operacion"})
		return
	}
	c.JSON(http.StatusOK, dto.ToTipoOperacionResponses(tipos))
}

// listTiposCaja godoc
// @Summary List register types
// @Tags catalogos
// @Produce json
// @Success 200 {array} dto.TipoCajaResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /catalogos/tipos-caja [get]
func (h *catalogoHandler) listTiposCaja(c *gin.Context) {
	tipos, err := h.catalogoService.ListTiposCaja(c.Request.Context())
	if err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to list tipos de caja", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list tipos de caja"})
		return
	}
	c.JSON(http.StatusOK, dto.ToTipoCajaResponses(tipos))
}

// listEstadosCaja godoc
// @Summary List register statuses
// @Tags catalogos
// @Produce json
// @Success 200 {array} dto.EstadoCajaResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /catalogos/estados-caja [get]
func (h *catalogoHandler) listEstadosCaja(c *gin.Context) {
	estados, err := h.catalogoService.ListEstadosCaja(c.Request.Context())
	if err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to list estados de caja", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list estados de caja"})
		return
	}
	c.JSON(http.StatusOK, dto.ToEstadoCajaResponses(estados))
}

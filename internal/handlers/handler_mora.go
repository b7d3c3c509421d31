package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/inmofin/backoffice-caja/internal/apperrors"
	portssvc "github.com/inmofin/backoffice-caja/internal/core/ports/services"
	"github.com/inmofin/backoffice-caja/internal/dto"
	"github.com/inmofin/backoffice-caja/internal/middleware"
)

// moraHandler proxies late-fee queries to the external collaborator.
type moraHandler struct {
	moraService portssvc.MoraSvcFacade
}

// newMoraHandler creates a new moraHandler.
func newMoraHandler(ms portssvc.MoraSvcFacade) *moraHandler {
	return &moraHandler{
		moraService: ms,
	}
}

// registerMoraRoutes registers the late-fee query route.
func registerMoraRoutes(rg *gin.RouterGroup, moraService portssvc.MoraSvcFacade) {
	h := newMoraHandler(moraService)

	rg.GET("/mora", h.calcularMora)
}

// calcularMora godoc
// @Summary Query a precomputed late fee
// @Description Forwards the query to the cobranzas service and displays its answer as-is; the fee formula is never evaluated here
// @Tags mora
// @Produce json
// @Param fechaVencimiento query string true "Due date (YYYY-MM-DD)"
// @Param monto query string true "Base amount"
// @Param empresaID query string true "Company ID"
// @Param al query string false "Valuation date (YYYY-MM-DD), defaults to today"
// @Success 200 {object} dto.MoraResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 502 {object} ErrorResponse "Collaborator unavailable"
// @Security BearerAuth
// @Router /mora [get]
func (h *moraHandler) calcularMora(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.MoraRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	resp, err := h.moraService.CalcularMora(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to query mora service", slog.String("error", err.Error()))
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: "Mora service unavailable"})
		return
	}

	c.JSON(http.StatusOK, resp)
}

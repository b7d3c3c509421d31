package dto

import (
	"github.com/shopspring/decimal"

	"github.com/inmofin/backoffice-caja/internal/core/domain"
)

// RegistrarTraspasoRequest is the payload for posting an inter-register
// transfer.
type RegistrarTraspasoRequest struct {
	CajaOrigenID    string          `json:"cajaOrigenID" binding:"required"`
	CajaDestinoID   string          `json:"cajaDestinoID" binding:"required"`
	TipoOperacionID string          `json:"tipoOperacionID" binding:"required"`
	Monto           decimal.Decimal `json:"monto" binding:"required"`
	Descripcion     string          `json:"descripcion" binding:"required"`
	Referencia      string          `json:"referencia"`
}

// TraspasoResponse returns both legs of a transfer. Advertencia is set when
// the reverse leg could not be posted; the primary leg is final regardless
// and an operator must reconcile the destination by hand.
type TraspasoResponse struct {
	Primario    MovimientoResponse  `json:"primario"`
	Reverso     *MovimientoResponse `json:"reverso,omitempty"`
	Advertencia *string             `json:"advertencia,omitempty"`
}

// ToTraspasoResponse converts a domain.Traspaso to its response DTO.
func ToTraspasoResponse(t *domain.Traspaso, advertencia *string) TraspasoResponse {
	resp := TraspasoResponse{
		Primario:    ToMovimientoResponse(t.Primario),
		Advertencia: advertencia,
	}
	if t.Reverso != nil {
		reverso := ToMovimientoResponse(t.Reverso)
		resp.Reverso = &reverso
	}
	return resp
}

package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/inmofin/backoffice-caja/internal/core/domain"
)

// CrearMovimientoRequest is the payload for creating a ledger entry.
// The register id comes from the URL; the acting user from the session.
type CrearMovimientoRequest struct {
	TipoMovimientoID string          `json:"tipoMovimientoID" binding:"required"`
	TipoOperacionID  string          `json:"tipoOperacionID" binding:"required"`
	CajaDestinoID    *string         `json:"cajaDestinoID,omitempty"`
	Monto            decimal.Decimal `json:"monto" binding:"required"`
	Descripcion      string          `json:"descripcion" binding:"required"`
	Referencia       string          `json:"referencia"`
	Fecha            *time.Time      `json:"fecha,omitempty"`
}

// ActualizarMovimientoRequest is the payload for updating a pending entry.
// Nil fields are left unchanged.
type ActualizarMovimientoRequest struct {
	TipoOperacionID *string          `json:"tipoOperacionID,omitempty"`
	Monto           *decimal.Decimal `json:"monto,omitempty"`
	Descripcion     *string          `json:"descripcion,omitempty"`
	Referencia      *string          `json:"referencia,omitempty"`
	Fecha           *time.Time       `json:"fecha,omitempty"`
}

// ListMovimientosParams holds the filter and pagination inputs for listing
// entries of a register. All criteria are conjunctive.
type ListMovimientosParams struct {
	TipoOperacionID *string
	Estado          *string
	Texto           *string
	FechaDesde      *time.Time
	FechaHasta      *time.Time
	Limit           int
	NextToken       *string
}

// MovimientoResponse defines the data returned for a ledger entry.
type MovimientoResponse struct {
	MovimientoID     string          `json:"movimientoID"`
	CajaID           string          `json:"cajaID"`
	CajaDestinoID    *string         `json:"cajaDestinoID,omitempty"`
	TipoMovimientoID string          `json:"tipoMovimientoID"`
	TipoOperacionID  string          `json:"tipoOperacionID"`
	Monto            decimal.Decimal `json:"monto"`
	Descripcion      string          `json:"descripcion"`
	Referencia       string          `json:"referencia,omitempty"`
	Fecha            time.Time       `json:"fecha"`
	UsuarioID        string          `json:"usuarioID"`
	Estado           string          `json:"estado"`
	CreatedAt        time.Time       `json:"createdAt"`
}

// ListMovimientosResponse wraps a page of entries plus the summary of the
// whole filtered set.
type ListMovimientosResponse struct {
	Movimientos []MovimientoResponse `json:"movimientos"`
	TotalCount  int                  `json:"totalCount"`
	NextToken   *string              `json:"nextToken,omitempty"`
	Resumen     ResumenResponse      `json:"resumen"`
}

// ToMovimientoResponse converts a domain.CajaMovimiento to its response DTO.
func ToMovimientoResponse(m *domain.CajaMovimiento) MovimientoResponse {
	return MovimientoResponse{
		MovimientoID:     m.MovimientoID,
		CajaID:           m.CajaID,
		CajaDestinoID:    m.CajaDestinoID,
		TipoMovimientoID: m.TipoMovimientoID,
		TipoOperacionID:  m.TipoOperacionID,
		Monto:            m.Monto,
		Descripcion:      m.Descripcion,
		Referencia:       m.Referencia,
		Fecha:            m.Fecha,
		UsuarioID:        m.UsuarioID,
		Estado:           string(m.Estado),
		CreatedAt:        m.CreatedAt,
	}
}

// ToMovimientoResponses converts a slice of domain entries to response DTOs.
func ToMovimientoResponses(movimientos []domain.CajaMovimiento) []MovimientoResponse {
	responses := make([]MovimientoResponse, len(movimientos))
	for i := range movimientos {
		responses[i] = ToMovimientoResponse(&movimientos[i])
	}
	return responses
}

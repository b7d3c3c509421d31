package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// MoraRequest asks the external late-fee collaborator for a precomputed
// amount. This service never evaluates the formula itself.
type MoraRequest struct {
	FechaVencimiento time.Time       `form:"fechaVencimiento" time_format:"2006-01-02" binding:"required"`
	Monto            decimal.Decimal `form:"monto" binding:"required"`
	EmpresaID        string          `form:"empresaID" binding:"required"`
	Al               *time.Time      `form:"al" time_format:"2006-01-02"`
}

// MoraResponse is the collaborator's answer, displayed as-is.
type MoraResponse struct {
	MontoMora decimal.Decimal `json:"montoMora"`
	Dias      int             `json:"dias"`
}

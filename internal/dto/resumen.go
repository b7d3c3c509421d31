package dto

import (
	"github.com/shopspring/decimal"

	"github.com/inmofin/backoffice-caja/internal/core/domain"
)

// ResumenResponse carries the totals of a filtered entry set.
type ResumenResponse struct {
	TotalIngresos decimal.Decimal `json:"totalIngresos"`
	TotalEgresos  decimal.Decimal `json:"totalEgresos"`
	Saldo         decimal.Decimal `json:"saldo"`
}

// ToResumenResponse converts a domain.ResumenCaja to its response DTO.
func ToResumenResponse(r domain.ResumenCaja) ResumenResponse {
	return ResumenResponse{
		TotalIngresos: r.TotalIngresos,
		TotalEgresos:  r.TotalEgresos,
		Saldo:         r.Saldo,
	}
}

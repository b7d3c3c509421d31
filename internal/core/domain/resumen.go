package domain

import "github.com/shopspring/decimal"

// ResumenCaja summarizes a filtered set of ledger entries.
// Saldo is always TotalIngresos minus TotalEgresos.
type ResumenCaja struct {
	TotalIngresos decimal.Decimal `json:"totalIngresos"`
	TotalEgresos  decimal.Decimal `json:"totalEgresos"`
	Saldo         decimal.Decimal `json:"saldo"`
}

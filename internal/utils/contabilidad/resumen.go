// Package contabilidad holds the pure aggregation rules for register ledgers.
package contabilidad

import (
	"github.com/shopspring/decimal"

	"github.com/inmofin/backoffice-caja/internal/core/domain"
)

// Resumir computes income/expense totals and the balance over an
// already-filtered set of entries. Classification uses the operation type's
// semantic tag; entries whose type is unknown or tagged Otra contribute zero
// to both totals. The function is pure: same inputs, same output, no side
// effects, so callers simply recompute whenever the entry set changes.
func Resumir(movimientos []domain.CajaMovimiento, tiposOperacion map[string]domain.TipoOperacion) domain.ResumenCaja {
	ingresos := decimal.Zero
	egresos := decimal.Zero

	for _, mov := range movimientos {
		tipo, ok := tiposOperacion[mov.TipoOperacionID]
		if !ok {
			continue
		}
		switch tipo.Semantica {
		case domain.SemanticaIngreso:
			ingresos = ingresos.Add(mov.Monto)
		case domain.SemanticaEgreso:
			egresos = egresos.Add(mov.Monto)
		}
	}

	return domain.ResumenCaja{
		TotalIngresos: ingresos,
		TotalEgresos:  egresos,
		Saldo:         ingresos.Sub(egresos),
	}
}

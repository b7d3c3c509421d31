package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// MovimientoEstado mirrors domain.MovimientoEstado at the storage layer.
type MovimientoEstado string

const (
	MovimientoPendiente MovimientoEstado = "PENDIENTE"
	MovimientoAprobado  MovimientoEstado = "APROBADO"
)

// CajaMovimiento is the database row for a ledger entry.
type CajaMovimiento struct {
	MovimientoID     string           `db:"movimiento_id"`
	CajaID           string           `db:"caja_id"`
	CajaDestinoID    *string          `db:"caja_destino_id"`
	TipoMovimientoID string           `db:"tipo_movimiento_id"`
	TipoOperacionID  string           `db:"tipo_operacion_id"`
	Monto            decimal.Decimal  `db:"monto"`
	Descripcion      string           `db:"descripcion"`
	Referencia       string           `db:"referencia"`
	Fecha            time.Time        `db:"fecha"`
	UsuarioID        string           `db:"usuario_id"`
	Estado           MovimientoEstado `db:"estado"`
	AuditFields
}

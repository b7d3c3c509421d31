package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// MovimientoEstado is the approval state of a ledger entry.
type MovimientoEstado string

const (
	MovimientoPendiente MovimientoEstado = "PENDIENTE"
	MovimientoAprobado  MovimientoEstado = "APROBADO"
)

// CajaMovimiento is a single ledger entry against a register.
// Monto is always positive; the economic direction comes from the
// operation type's semantics, never from the sign.
type CajaMovimiento struct {
	MovimientoID string `json:"movimientoID"`
	CajaID       string `json:"cajaID"`
	// CajaDestinoID is present only when the movement type is a traspaso;
	// the reverse leg lives at that register as its own entry.
	CajaDestinoID    *string          `json:"cajaDestinoID,omitempty"`
	TipoMovimientoID string           `json:"tipoMovimientoID"`
	TipoOperacionID  string           `json:"tipoOperacionID"`
	Monto            decimal.Decimal  `json:"monto"`
	Descripcion      string           `json:"descripcion"`
	Referencia       string           `json:"referencia"`
	Fecha            time.Time        `json:"fecha"`
	UsuarioID        string           `json:"usuarioID"`
	Estado           MovimientoEstado `json:"estado"`
	AuditFields
}

// EsModificable reports whether update/delete are still permitted.
// An approved entry is immutable and non-deletable.
func (m *CajaMovimiento) EsModificable() bool {
	return m.Estado == MovimientoPendiente
}

// Traspaso is the result of posting an inter-register transfer: the primary
// leg at the origin register and, when it posted, the reverse leg at the
// destination. Reverso is nil when the reverse leg failed; the primary is
// considered final regardless.
type Traspaso struct {
	Primario *CajaMovimiento `json:"primario"`
	Reverso  *CajaMovimiento `json:"reverso,omitempty"`
}

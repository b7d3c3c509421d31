package domain

import "time"

// CajaEstado is the lifecycle state of a register.
type CajaEstado string

const (
	CajaAbierta CajaEstado = "ABIERTA"
	CajaCerrada CajaEstado = "CERRADA"
)

// Caja represents a cash register owned by a point of sale.
// A register is provisioned externally; this service only drives its
// open/close lifecycle and never deletes it.
type Caja struct {
	CajaID       string     `json:"cajaID"`
	Nombre       string     `json:"nombre"`
	TipoCajaID   string     `json:"tipoCajaID"`
	PuntoVentaID string     `json:"puntoVentaID"`
	Estado       CajaEstado `json:"estado"`
	// EstadoNombre is the catalog display label for Estado, resolved once at
	// read time so consumers never re-derive it from catalog ids.
	EstadoNombre  string     `json:"estadoNombre"`
	FechaApertura *time.Time `json:"fechaApertura"` // nil until first opened
	FechaCierre   *time.Time `json:"fechaCierre"`   // set iff Estado == CajaCerrada
	AuditFields
}

// EstaAbierta reports whether the register currently accepts movements.
func (c *Caja) EstaAbierta() bool {
	return c.Estado == CajaAbierta
}

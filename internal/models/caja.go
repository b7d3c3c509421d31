package models

import "time"

// CajaEstado mirrors domain.CajaEstado at the storage layer.
type CajaEstado string

const (
	CajaAbierta CajaEstado = "ABIERTA"
	CajaCerrada CajaEstado = "CERRADA"
)

// Caja is the database row for a register.
type Caja struct {
	CajaID        string     `db:"caja_id"`
	Nombre        string     `db:"nombre"`
	TipoCajaID    string     `db:"tipo_caja_id"`
	PuntoVentaID  string     `db:"punto_venta_id"`
	Estado        CajaEstado `db:"estado"`
	FechaApertura *time.Time `db:"fecha_apertura"`
	FechaCierre   *time.Time `db:"fecha_cierre"`
	AuditFields
}

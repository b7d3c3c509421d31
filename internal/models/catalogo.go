package models

// TipoMovimiento is the database row for a movement-type catalog entry.
type TipoMovimiento struct {
	TipoMovimientoID string `db:"tipo_movimiento_id"`
	Nombre           string `db:"nombre"`
	EsTraspaso       bool   `db:"es_traspaso"`
}

// TipoOperacion is the database row for an operation-type catalog entry.
type TipoOperacion struct {
	TipoOperacionID string `db:"tipo_operacion_id"`
	Nombre          string `db:"nombre"`
	Semantica       string `db:"semantica"`
	TipoInversoID   string `db:"tipo_inverso_id"`
}

// TipoCaja is the database row for a register-type catalog entry.
type TipoCaja struct {
	TipoCajaID  string `db:"tipo_caja_id"`
	Nombre      string `db:"nombre"`
	CierreAnual bool   `db:"cierre_anual"`
}

// EstadoCaja is the database row for a register-status catalog entry.
type EstadoCaja struct {
	EstadoCajaID string `db:"estado_caja_id"`
	Nombre       string `db:"nombre"`
}

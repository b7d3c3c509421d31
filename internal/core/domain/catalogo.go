package domain

// OperacionSemantica tags an operation type with its economic meaning.
// Classification always compares this tag, never display labels.
type OperacionSemantica string

const (
	SemanticaIngreso OperacionSemantica = "INGRESO"
	SemanticaEgreso  OperacionSemantica = "EGRESO"
	SemanticaOtra    OperacionSemantica = "OTRA"
)

// TipoMovimiento is a catalog entry classifying a movement (venta, cobro,
// traspaso, ajuste...). EsTraspaso marks the types that require a paired
// entry at a destination register.
type TipoMovimiento struct {
	TipoMovimientoID string `json:"tipoMovimientoID"`
	Nombre           string `json:"nombre"`
	EsTraspaso       bool   `json:"esTraspaso"`
}

// TipoOperacion is a catalog entry giving an entry its economic direction.
// TipoInversoID links each operation type to its inverse (egreso <-> ingreso)
// so the transfer engine can derive the reverse leg without label matching.
type TipoOperacion struct {
	TipoOperacionID string             `json:"tipoOperacionID"`
	Nombre          string             `json:"nombre"`
	Semantica       OperacionSemantica `json:"semantica"`
	TipoInversoID   string             `json:"tipoInversoID"`
}

// TipoCaja is a catalog entry classifying registers. CierreAnual marks the
// restricted set ("central", "chica") whose close is locked until the next
// accounting year.
type TipoCaja struct {
	TipoCajaID  string `json:"tipoCajaID"`
	Nombre      string `json:"nombre"`
	CierreAnual bool   `json:"cierreAnual"`
}

// EstadoCaja is the catalog entry backing the register state labels.
type EstadoCaja struct {
	EstadoCajaID string `json:"estadoCajaID"`
	Nombre       string `json:"nombre"`
}

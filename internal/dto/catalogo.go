package dto

import "github.com/inmofin/backoffice-caja/internal/core/domain"

// TipoMovimientoResponse defines the data returned for a movement type.
type TipoMovimientoResponse struct {
	TipoMovimientoID string `json:"tipoMovimientoID"`
	Nombre           string `json:"nombre"`
	EsTraspaso       bool   `json:"esTraspaso"`
}

// TipoOperacionResponse defines the data returned for an operation type.
type TipoOperacionResponse struct {
	TipoOperacionID string `json:"tipoOperacionID"`
	Nombre          string `json:"nombre"`
	Semantica       string `json:"semantica"`
	TipoInversoID   string `json:"tipoInversoID,omitempty"`
}

// TipoCajaResponse defines the data returned for a register type.
type TipoCajaResponse struct {
	TipoCajaID  string `json:"tipoCajaID"`
	Nombre      string `json:"nombre"`
	CierreAnual bool   `json:"cierreAnual"`
}

// EstadoCajaResponse defines the data returned for a register status.
type EstadoCajaResponse struct {
	EstadoCajaID string `json:"estadoCajaID"`
	Nombre       string `json:"nombre"`
}

// ToTipoMovimientoResponses converts domain movement types to response DTOs.
func ToTipoMovimientoResponses(tipos []domain.TipoMovimiento) []TipoMovimientoResponse {
	responses := make([]TipoMovimientoResponse, len(tipos))
	for i, t := range tipos {
		responses[i] = TipoMovimientoResponse{
			TipoMovimientoID: t.TipoMovimientoID,
			Nombre:           t.Nombre,
			EsTraspaso:       t.EsTraspaso,
		}
	}
	return responses
}

// ToTipoOperacionResponses converts domain operation types to response DTOs.
func ToTipoOperacionResponses(tipos []domain.TipoOperacion) []TipoOperacionResponse {
	responses := make([]TipoOperacionResponse, len(tipos))
	for i, t := range tipos {
		responses[i] = TipoOperacionResponse{
			TipoOperacionID: t.TipoOperacionID,
			Nombre:          t.Nombre,
			Semantica:       string(t.Semantica),
			TipoInversoID:   t.TipoInversoID,
		}
	}
	return responses
}

// ToTipoCajaResponses converts domain register types to response DTOs.
func ToTipoCajaResponses(tipos []domain.TipoCaja) []TipoCajaResponse {
	responses := make([]TipoCajaResponse, len(tipos))
	for i, t := range tipos {
		responses[i] = TipoCajaResponse{
			TipoCajaID:  t.TipoCajaID,
			Nombre:      t.Nombre,
			CierreAnual: t.CierreAnual,
		}
	}
	return responses
}

// ToEstadoCajaResponses converts domain register statuses to response DTOs.
func ToEstadoCajaResponses(estados []domain.EstadoCaja) []EstadoCajaResponse {
	responses := make([]EstadoCajaResponse, len(estados))
	for i, e := range estados {
		responses[i] = EstadoCajaResponse{
			EstadoCajaID: e.EstadoCajaID,
			Nombre:       e.Nombre,
		}
	}
	return responses
}

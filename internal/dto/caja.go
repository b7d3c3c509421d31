package dto

import (
	"time"

	"github.com/inmofin/backoffice-caja/internal/core/domain"
)

// CajaResponse defines the data returned for a register.
type CajaResponse struct {
	CajaID        string     `json:"cajaID"`
	Nombre        string     `json:"nombre"`
	TipoCajaID    string     `json:"tipoCajaID"`
	PuntoVentaID  string     `json:"puntoVentaID"`
	Estado        string     `json:"estado"`
	EstadoNombre  string     `json:"estadoNombre"`
	FechaApertura *time.Time `json:"fechaApertura,omitempty"`
	FechaCierre   *time.Time `json:"fechaCierre,omitempty"`
}

// ListCajasResponse wraps the register listing.
type ListCajasResponse struct {
	Cajas []CajaResponse `json:"cajas"`
}

// ToCajaResponse converts a domain.Caja to its response DTO.
func ToCajaResponse(c *domain.Caja) CajaResponse {
	return CajaResponse{
		CajaID:        c.CajaID,
		Nombre:        c.Nombre,
		TipoCajaID:    c.TipoCajaID,
		PuntoVentaID:  c.PuntoVentaID,
		Estado:        string(c.Estado),
		EstadoNombre:  c.EstadoNombre,
		FechaApertura: c.FechaApertura,
		FechaCierre:   c.FechaCierre,
	}
}

// ToCajaResponses converts a slice of domain registers to response DTOs.
func ToCajaResponses(cajas []domain.Caja) []CajaResponse {
	responses := make([]CajaResponse, len(cajas))
	for i := range cajas {
		responses[i] = ToCajaResponse(&cajas[i])
	}
	return responses
}

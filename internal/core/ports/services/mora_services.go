package services

import (
	"context"

	"github.com/inmofin/backoffice-caja/internal/dto"
)

// MoraSvcFacade is the external late-fee collaborator. The ledger only
// displays the precomputed amount and day count it returns.
type MoraSvcFacade interface {
	CalcularMora(ctx context.Context, req dto.MoraRequest) (*dto.MoraResponse, error)
}

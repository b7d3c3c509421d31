package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/inmofin/backoffice-caja/internal/apperrors"
	"github.com/inmofin/backoffice-caja/internal/core/domain"
	portsrepo "github.com/inmofin/backoffice-caja/internal/core/ports/repositories"
	"github.com/inmofin/backoffice-caja/internal/models"
	"github.com/inmofin/backoffice-caja/internal/utils/mapping"
)

type PgxCajaRepository struct {
	BaseRepository
}

// newPgxCajaRepository creates a new repository for register data.
func newPgxCajaRepository(pool *pgxpool.Pool) portsrepo.CajaRepositoryFacade {
	return &PgxCajaRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.CajaRepositoryFacade = (*PgxCajaRepository)(nil)

const cajaColumns = `caja_id, nombre, tipo_caja_id, punto_venta_id, estado, fecha_apertura, fecha_cierre, created_at, created_by, last_updated_at, last_updated_by`

func scanCaja(row pgx.Row) (models.Caja, error) {
	var caja models.Caja
	err := row.Scan(
		&caja.CajaID,
		&caja.Nombre,
		&caja.TipoCajaID,
		&caja.PuntoVentaID,
		&caja.Estado,
		&caja.FechaApertura,
		&caja.FechaCierre,
		&caja.CreatedAt,
		&caja.CreatedBy,
		&caja.LastUpdatedAt,
		&caja.LastUpdatedBy,
	)
	return caja, err
}

// FindCajaByID retrieves a register by its unique identifier.
func (r *PgxCajaRepository) FindCajaByID(ctx context.Context, cajaID string) (*domain.Caja, error) {
	query := fmt.Sprintf(`SELECT %s FROM cajas WHERE caja_id = $1;`, cajaColumns)

	modelCaja, err := scanCaja(r.Pool.QueryRow(ctx, query, cajaID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find caja by id %s: %w", cajaID, err)
	}

	domainCaja := mapping.ToDomainCaja(modelCaja)
	return &domainCaja, nil
}

// ListCajas retrieves registers, optionally filtered by point of sale and
// lifecycle state.
func (r *PgxCajaRepository) ListCajas(ctx context.Context, puntoVentaID *string, estado *domain.CajaEstado) ([]domain.Caja, error) {
	query := fmt.Sprintf(`SELECT %s FROM cajas`, cajaColumns)
	args := []interface{}{}

	conditions := ""
	if puntoVentaID != nil {
		args = append(args, *puntoVentaID)
		conditions += fmt.Sprintf(" WHERE punto_venta_id = $%d", len(args))
	}
	if estado != nil {
		args = append(args, string(*estado))
		if conditions == "" {
			conditions = fmt.Sprintf(" WHERE estado = $%d", len(args))
		} else {
			conditions += fmt.Sprintf(" AND estado = $%d", len(args))
		}
	}
	query += conditions + " ORDER BY nombre;"

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query cajas: %w", err)
	}
	defer rows.Close()

	modelCajas, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Caja, error) {
		return scanCaja(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan cajas: %w", err)
	}

	cajas := make([]domain.Caja, len(modelCajas))
	for i, m := range modelCajas {
		cajas[i] = mapping.ToDomainCaja(m)
	}
	return cajas, nil
}

// SetCajaEstado persists the register's state and timestamps, guarded by the
// expected current state. When the row is no longer in that state the update
// matches nothing and apperrors.ErrConflict is returned, serializing
// concurrent open/close attempts without locks.
func (r *PgxCajaRepository) SetCajaEstado(ctx context.Context, caja domain.Caja, desde domain.CajaEstado) error {
	modelCaja := mapping.ToModelCaja(caja)

	query := `
		UPDATE cajas
		SET estado = $1, fecha_apertura = $2, fecha_cierre = $3, last_updated_at = $4, last_updated_by = $5
		WHERE caja_id = $6 AND estado = $7;
	`

	tag, err := r.Pool.Exec(ctx, query,
		modelCaja.Estado,
		modelCaja.FechaApertura,
		modelCaja.FechaCierre,
		modelCaja.LastUpdatedAt,
		modelCaja.LastUpdatedBy,
		modelCaja.CajaID,
		string(desde),
	)
	if err != nil {
		return fmt.Errorf("failed to update caja %s: %w", modelCaja.CajaID, err)
	}
	if tag.RowsAffected() == 0 {
		// Either the register vanished or another writer moved it first.
		if _, findErr := r.FindCajaByID(ctx, caja.CajaID); findErr != nil {
			return findErr
		}
		return apperrors.ErrConflict
	}
	return nil
}

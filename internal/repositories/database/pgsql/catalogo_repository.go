package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/inmofin/backoffice-caja/internal/core/domain"
	portsrepo "github.com/inmofin/backoffice-caja/internal/core/ports/repositories"
	"github.com/inmofin/backoffice-caja/internal/models"
	"github.com/inmofin/backoffice-caja/internal/utils/mapping"
)

type PgxCatalogoRepository struct {
	BaseRepository
}

// newPgxCatalogoRepository creates a new read-only repository for the
// reference catalogs.
func newPgxCatalogoRepository(pool *pgxpool.Pool) portsrepo.CatalogoRepositoryFacade {
	return &PgxCatalogoRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.CatalogoRepositoryFacade = (*PgxCatalogoRepository)(nil)

// ListTiposMovimiento retrieves all movement types.
func (r *PgxCatalogoRepository) ListTiposMovimiento(ctx context.Context) ([]domain.TipoMovimiento, error) {
	query := `SELECT tipo_movimiento_id, nombre, es_traspaso FROM tipos_movimiento ORDER BY nombre;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query tipos de movimiento: %w", err)
	}
	defer rows.Close()

	modelTipos, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.TipoMovimiento, error) {
		var tipo models.TipoMovimiento
		err := row.Scan(&tipo.TipoMovimientoID, &tipo.Nombre, &tipo.EsTraspaso)
		return tipo, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan tipos de movimiento: %w", err)
	}

	tipos := make([]domain.TipoMovimiento, len(modelTipos))
	for i, m := range modelTipos {
		tipos[i] = mapping.ToDomainTipoMovimiento(m)
	}
	return tipos, nil
}

// ListTiposOperacion retrieves all operation types with their inverses.
func (r *PgxCatalogoRepository) ListTiposOperacion(ctx context.Context) ([]domain.TipoOperacion, error) {
	query := `SELECT tipo_operacion_id, nombre, semantica, COALESCE(tipo_inverso_id, '') FROM tipos_operacion ORDER BY nombre;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query tipos de operacion: %w", err)
	}
	defer rows.Close()

	modelTipos, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.TipoOperacion, error) {
		var tipo models.TipoOperacion
		err := row.Scan(&tipo.TipoOperacionID, &tipo.Nombre, &tipo.Semantica, &tipo.TipoInversoID)
		return tipo, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan tipos de operacion: %w", err)
	}

	tipos := make([]domain.TipoOperacion, len(modelTipos))
	for i, m := range modelTipos {
		tipos[i] = mapping.ToDomainTipoOperacion(m)
	}
	return tipos, nil
}

// ListTiposCaja retrieves all register types.
func (r *PgxCatalogoRepository) ListTiposCaja(ctx context.Context) ([]domain.TipoCaja, error) {
	query := `SELECT tipo_caja_id, nombre, cierre_anual FROM tipos_caja ORDER BY nombre;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query tipos de caja: %w", err)
	}
	defer rows.Close()

	modelTipos, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.TipoCaja, error) {
		var tipo models.TipoCaja
		err := row.Scan(&tipo.TipoCajaID, &tipo.Nombre, &tipo.CierreAnual)
		return tipo, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan tipos de caja: %w", err)
	}

	tipos := make([]domain.TipoCaja, len(modelTipos))
	for i, m := range modelTipos {
		tipos[i] = mapping.ToDomainTipoCaja(m)
	}
	return tipos, nil
}

// ListEstadosCaja retrieves all register status labels.
func (r *PgxCatalogoRepository) ListEstadosCaja(ctx context.Context) ([]domain.EstadoCaja, error) {
	query := `SELECT estado_caja_id, nombre FROM estados_caja ORDER BY nombre;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query estados de caja: %w", err)
	}
	defer rows.Close()

	modelEstados, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.EstadoCaja, error) {
		var estado models.EstadoCaja
		err := row.Scan(&estado.EstadoCajaID, &estado.Nombre)
		return estado, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan estados de caja: %w", err)
	}

	estados := make([]domain.EstadoCaja, len(modelEstados))
	for i, m := range modelEstados {
		estados[i] = mapping.ToDomainEstadoCaja(m)
	}
	return estados, nil
}

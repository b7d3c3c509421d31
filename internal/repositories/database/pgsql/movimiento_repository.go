package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/inmofin/backoffice-caja/internal/apperrors"
	"github.com/inmofin/backoffice-caja/internal/core/domain"
	portsrepo "github.com/inmofin/backoffice-caja/internal/core/ports/repositories"
	"github.com/inmofin/backoffice-caja/internal/models"
	"github.com/inmofin/backoffice-caja/internal/utils/mapping"
	"github.com/inmofin/backoffice-caja/internal/utils/pagination"
)

type PgxMovimientoRepository struct {
	BaseRepository
}

// newPgxMovimientoRepository creates a new repository for ledger entries.
func newPgxMovimientoRepository(pool *pgxpool.Pool) portsrepo.MovimientoRepositoryFacade {
	return &PgxMovimientoRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.MovimientoRepositoryFacade = (*PgxMovimientoRepository)(nil)

const movimientoColumns = `movimiento_id, caja_id, caja_destino_id, tipo_movimiento_id, tipo_operacion_id, monto, descripcion, referencia, fecha, usuario_id, estado, created_at, created_by, last_updated_at, last_updated_by`

func scanMovimiento(row pgx.Row) (models.CajaMovimiento, error) {
	var m models.CajaMovimiento
	err := row.Scan(
		&m.MovimientoID,
		&m.CajaID,
		&m.CajaDestinoID,
		&m.TipoMovimientoID,
		&m.TipoOperacionID,
		&m.Monto,
		&m.Descripcion,
		&m.Referencia,
		&m.Fecha,
		&m.UsuarioID,
		&m.Estado,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// filtroWhere builds the WHERE clause for a MovimientoFiltro. All criteria
// are conjunctive; nil fields add nothing.
func filtroWhere(filtro portsrepo.MovimientoFiltro) (string, []interface{}) {
	var conditions []string
	var args []interface{}

	add := func(condition string, value interface{}) {
		args = append(args, value)
		conditions = append(conditions, fmt.Sprintf(condition, len(args)))
	}

	if filtro.CajaID != nil {
		add("caja_id = $%d", *filtro.CajaID)
	}
	if filtro.TipoOperacionID != nil {
		add("tipo_operacion_id = $%d", *filtro.TipoOperacionID)
	}
	if filtro.Estado != nil {
		add("estado = $%d", string(*filtro.Estado))
	}
	if filtro.Texto != nil {
		args = append(args, "%"+*filtro.Texto+"%")
		conditions = append(conditions, fmt.Sprintf("(descripcion ILIKE $%d OR referencia ILIKE $%d)", len(args), len(args)))
	}
	if filtro.FechaDesde != nil {
		add("fecha >= $%d", *filtro.FechaDesde)
	}
	if filtro.FechaHasta != nil {
		add("fecha <= $%d", *filtro.FechaHasta)
	}

	if len(conditions) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conditions, " AND "), args
}

// FindMovimientoByID retrieves a ledger entry by its unique identifier.
func (r *PgxMovimientoRepository) FindMovimientoByID(ctx context.Context, movimientoID string) (*domain.CajaMovimiento, error) {
	query := fmt.Sprintf(`SELECT %s FROM caja_movimientos WHERE movimiento_id = $1;`, movimientoColumns)

	model, err := scanMovimiento(r.Pool.QueryRow(ctx, query, movimientoID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find movimiento by id %s: %w", movimientoID, err)
	}

	movimiento := mapping.ToDomainMovimiento(model)
	return &movimiento, nil
}

// ListMovimientos retrieves a page of entries matching the filter using
// keyset pagination on (fecha, movimiento_id) descending, plus the total
// match count for the whole filter.
func (r *PgxMovimientoRepository) ListMovimientos(ctx context.Context, filtro portsrepo.MovimientoFiltro, limit int, nextToken *string) ([]domain.CajaMovimiento, int, *string, error) {
	where, args := filtroWhere(filtro)

	countQuery := "SELECT COUNT(*) FROM caja_movimientos" + where
	var totalCount int
	if err := r.Pool.QueryRow(ctx, countQuery, args...).Scan(&totalCount); err != nil {
		return nil, 0, nil, fmt.Errorf("failed to count movimientos: %w", err)
	}

	pageArgs := args
	pageWhere := where
	if nextToken != nil && *nextToken != "" {
		fecha, movimientoID, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, 0, nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
		}
		pageArgs = append(pageArgs, fecha, movimientoID)
		keyset := fmt.Sprintf("(fecha, movimiento_id) < ($%d, $%d)", len(pageArgs)-1, len(pageArgs))
		if pageWhere == "" {
			pageWhere = " WHERE " + keyset
		} else {
			pageWhere += " AND " + keyset
		}
	}

	// Fetch one extra row to decide whether a further page exists.
	pageArgs = append(pageArgs, limit+1)
	query := fmt.Sprintf(`SELECT %s FROM caja_movimientos%s ORDER BY fecha DESC, movimiento_id DESC LIMIT $%d;`,
		movimientoColumns, pageWhere, len(pageArgs))

	rows, err := r.Pool.Query(ctx, query, pageArgs...)
	if err != nil {
		return nil, 0, nil, fmt.Errorf("failed to query movimientos: %w", err)
	}
	defer rows.Close()

	modelMovimientos, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.CajaMovimiento, error) {
		return scanMovimiento(row)
	})
	if err != nil {
		return nil, 0, nil, fmt.Errorf("failed to scan movimientos: %w", err)
	}

	var newToken *string
	if len(modelMovimientos) > limit {
		modelMovimientos = modelMovimientos[:limit]
		last := modelMovimientos[len(modelMovimientos)-1]
		token := pagination.EncodeToken(last.Fecha, last.MovimientoID)
		newToken = &token
	}

	return mapping.ToDomainMovimientoSlice(modelMovimientos), totalCount, newToken, nil
}

// ListMovimientosFiltrados retrieves every entry matching the filter, newest
// first. Register ledgers are bounded, so aggregation loads the whole set.
func (r *PgxMovimientoRepository) ListMovimientosFiltrados(ctx context.Context, filtro portsrepo.MovimientoFiltro) ([]domain.CajaMovimiento, error) {
	where, args := filtroWhere(filtro)
	query := fmt.Sprintf(`SELECT %s FROM caja_movimientos%s ORDER BY fecha DESC, movimiento_id DESC;`, movimientoColumns, where)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query movimientos: %w", err)
	}
	defer rows.Close()

	modelMovimientos, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.CajaMovimiento, error) {
		return scanMovimiento(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan movimientos: %w", err)
	}

	return mapping.ToDomainMovimientoSlice(modelMovimientos), nil
}

// CreateMovimiento persists a new ledger entry.
func (r *PgxMovimientoRepository) CreateMovimiento(ctx context.Context, movimiento domain.CajaMovimiento) error {
	model := mapping.ToModelMovimiento(movimiento)

	query := `
		INSERT INTO caja_movimientos (movimiento_id, caja_id, caja_destino_id, tipo_movimiento_id, tipo_operacion_id, monto, descripcion, referencia, fecha, usuario_id, estado, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
	`

	_, err := r.Pool.Exec(ctx, query,
		model.MovimientoID,
		model.CajaID,
		model.CajaDestinoID,
		model.TipoMovimientoID,
		model.TipoOperacionID,
		model.Monto,
		model.Descripcion,
		model.Referencia,
		model.Fecha,
		model.UsuarioID,
		model.Estado,
		model.CreatedAt,
		model.CreatedBy,
		model.LastUpdatedAt,
		model.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" { // unique_violation
				return fmt.Errorf("movimiento %s: %w", model.MovimientoID, apperrors.ErrDuplicate)
			}
		}
		return fmt.Errorf("failed to insert movimiento %s: %w", model.MovimientoID, err)
	}
	return nil
}

// UpdateMovimiento replaces the mutable fields of an entry. The row's
// approval state is intentionally not touched here; transitions go through
// SetMovimientoEstado.
func (r *PgxMovimientoRepository) UpdateMovimiento(ctx context.Context, movimiento domain.CajaMovimiento) error {
	model := mapping.ToModelMovimiento(movimiento)

	query := `
		UPDATE caja_movimientos
		SET tipo_operacion_id = $1, monto = $2, descripcion = $3, referencia = $4, fecha = $5, last_updated_at = $6, last_updated_by = $7
		WHERE movimiento_id = $8 AND estado = $9;
	`

	tag, err := r.Pool.Exec(ctx, query,
		model.TipoOperacionID,
		model.Monto,
		model.Descripcion,
		model.Referencia,
		model.Fecha,
		model.LastUpdatedAt,
		model.LastUpdatedBy,
		model.MovimientoID,
		string(models.MovimientoPendiente),
	)
	if err != nil {
		return fmt.Errorf("failed to update movimiento %s: %w", model.MovimientoID, err)
	}
	if tag.RowsAffected() == 0 {
		if _, findErr := r.FindMovimientoByID(ctx, movimiento.MovimientoID); findErr != nil {
			return findErr
		}
		// Approved concurrently.
		return apperrors.ErrConflict
	}
	return nil
}

// DeleteMovimiento removes a pending entry. An approved row never matches,
// so a concurrent approval surfaces as a conflict instead of a silent drop.
func (r *PgxMovimientoRepository) DeleteMovimiento(ctx context.Context, movimientoID string) error {
	query := `DELETE FROM caja_movimientos WHERE movimiento_id = $1 AND estado = $2;`

	tag, err := r.Pool.Exec(ctx, query, movimientoID, string(models.MovimientoPendiente))
	if err != nil {
		return fmt.Errorf("failed to delete movimiento %s: %w", movimientoID, err)
	}
	if tag.RowsAffected() == 0 {
		if _, findErr := r.FindMovimientoByID(ctx, movimientoID); findErr != nil {
			return findErr
		}
		return apperrors.ErrConflict
	}
	return nil
}

// SetMovimientoEstado transitions the approval state, guarded by the expected
// current state.
func (r *PgxMovimientoRepository) SetMovimientoEstado(ctx context.Context, movimientoID string, desde, hacia domain.MovimientoEstado, updatedBy string, updatedAt time.Time) error {
	query := `
		UPDATE caja_movimientos
		SET estado = $1, last_updated_at = $2, last_updated_by = $3
		WHERE movimiento_id = $4 AND estado = $5;
	`

	tag, err := r.Pool.Exec(ctx, query, string(hacia), updatedAt, updatedBy, movimientoID, string(desde))
	if err != nil {
		return fmt.Errorf("failed to transition movimiento %s: %w", movimientoID, err)
	}
	if tag.RowsAffected() == 0 {
		if _, findErr := r.FindMovimientoByID(ctx, movimientoID); findErr != nil {
			return findErr
		}
		return apperrors.ErrConflict
	}
	return nil
}

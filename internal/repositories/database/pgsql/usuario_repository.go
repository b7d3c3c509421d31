package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/inmofin/backoffice-caja/internal/apperrors"
	"github.com/inmofin/backoffice-caja/internal/core/domain"
	portsrepo "github.com/inmofin/backoffice-caja/internal/core/ports/repositories"
	"github.com/inmofin/backoffice-caja/internal/models"
	"github.com/inmofin/backoffice-caja/internal/utils/mapping"
)

type PgxUsuarioRepository struct {
	BaseRepository
}

// newPgxUsuarioRepository creates a new repository for user data.
func newPgxUsuarioRepository(pool *pgxpool.Pool) portsrepo.UsuarioRepositoryFacade {
	return &PgxUsuarioRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.UsuarioRepositoryFacade = (*PgxUsuarioRepository)(nil)

const usuarioColumns = `usuario_id, nombre, email, password_hash, activo, created_at, created_by, last_updated_at, last_updated_by`

func scanUsuario(row pgx.Row) (models.Usuario, error) {
	var u models.Usuario
	err := row.Scan(
		&u.UsuarioID,
		&u.Nombre,
		&u.Email,
		&u.PasswordHash,
		&u.Activo,
		&u.CreatedAt,
		&u.CreatedBy,
		&u.LastUpdatedAt,
		&u.LastUpdatedBy,
	)
	return u, err
}

// FindUsuarioByID retrieves a user by id.
func (r *PgxUsuarioRepository) FindUsuarioByID(ctx context.Context, usuarioID string) (*domain.Usuario, error) {
	query := fmt.Sprintf(`SELECT %s FROM usuarios WHERE usuario_id = $1;`, usuarioColumns)

	model, err := scanUsuario(r.Pool.QueryRow(ctx, query, usuarioID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find usuario by id %s: %w", usuarioID, err)
	}

	usuario := mapping.ToDomainUsuario(model)
	return &usuario, nil
}

// FindUsuarioByEmail retrieves a user by email.
func (r *PgxUsuarioRepository) FindUsuarioByEmail(ctx context.Context, email string) (*domain.Usuario, error) {
	query := fmt.Sprintf(`SELECT %s FROM usuarios WHERE email = $1;`, usuarioColumns)

	model, err := scanUsuario(r.Pool.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find usuario by email: %w", err)
	}

	usuario := mapping.ToDomainUsuario(model)
	return &usuario, nil
}

// CreateUsuario persists a new user.
func (r *PgxUsuarioRepository) CreateUsuario(ctx context.Context, usuario domain.Usuario) error {
	model := mapping.ToModelUsuario(usuario)

	query := `
		INSERT INTO usuarios (usuario_id, nombre, email, password_hash, activo, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`

	_, err := r.Pool.Exec(ctx, query,
		model.UsuarioID,
		model.Nombre,
		model.Email,
		model.PasswordHash,
		model.Activo,
		model.CreatedAt,
		model.CreatedBy,
		model.LastUpdatedAt,
		model.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" { // unique_violation
				return fmt.Errorf("usuario %s: %w", model.Email, apperrors.ErrDuplicate)
			}
		}
		return fmt.Errorf("failed to insert usuario %s: %w", model.UsuarioID, err)
	}
	return nil
}

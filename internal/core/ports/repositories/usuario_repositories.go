package repositories

import (
	"context"

	"github.com/inmofin/backoffice-caja/internal/core/domain"
)

// UsuarioReader defines read operations for user data.
type UsuarioReader interface {
	FindUsuarioByID(ctx context.Context, usuarioID string) (*domain.Usuario, error)
	FindUsuarioByEmail(ctx context.Context, email string) (*domain.Usuario, error)
}

// UsuarioWriter defines write operations for user data.
type UsuarioWriter interface {
	CreateUsuario(ctx context.Context, usuario domain.Usuario) error
}

// UsuarioRepositoryFacade combines all user repository interfaces.
type UsuarioRepositoryFacade interface {
	UsuarioReader
	UsuarioWriter
}

package services

import (
	"context"

	"github.com/inmofin/backoffice-caja/internal/core/domain"
)

// UsuarioSvcFacade supplies the acting principal attached to every created
// entry. Authorization decisions beyond identity live outside this service.
type UsuarioSvcFacade interface {
	CreateUsuario(ctx context.Context, nombre, email, password string) (*domain.Usuario, error)
	GetUsuarioByID(ctx context.Context, usuarioID string) (*domain.Usuario, error)

	// VerifyCredentials checks email/password and returns the active user.
	VerifyCredentials(ctx context.Context, email, password string) (*domain.Usuario, error)
}

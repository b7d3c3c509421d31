package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/inmofin/backoffice-caja/internal/apperrors"
	"github.com/inmofin/backoffice-caja/internal/core/domain"
	portsrepo "github.com/inmofin/backoffice-caja/internal/core/ports/repositories"
	portssvc "github.com/inmofin/backoffice-caja/internal/core/ports/services"
	"github.com/inmofin/backoffice-caja/internal/utils"
)

// ErrCredencialesInvalidas is returned for any credential failure. It does
// not distinguish unknown email from wrong password or inactive account.
var ErrCredencialesInvalidas = errors.New("credenciales invalidas")

type usuarioService struct {
	repo portsrepo.UsuarioRepositoryFacade
}

// NewUsuarioService creates a new user service.
func NewUsuarioService(repo portsrepo.UsuarioRepositoryFacade) portssvc.UsuarioSvcFacade {
	return &usuarioService{repo: repo}
}

var _ portssvc.UsuarioSvcFacade = (*usuarioService)(nil)

func (s *usuarioService) CreateUsuario(ctx context.Context, nombre, email, password string) (*domain.Usuario, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if nombre == "" || email == "" {
		return nil, fmt.Errorf("%w: nombre y email son obligatorios", apperrors.ErrValidation)
	}
	if len(password) < 8 {
		return nil, fmt.Errorf("%w: la contrasena requiere al menos 8 caracteres", apperrors.ErrValidation)
	}

	if existing, err := s.repo.FindUsuarioByEmail(ctx, email); err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check email %s: %w", email, err)
	} else if existing != nil {
		return nil, fmt.Errorf("%w: email %s ya registrado", apperrors.ErrDuplicate, email)
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now().UTC()
	usuario := domain.Usuario{
		UsuarioID:    uuid.NewString(),
		Nombre:       nombre,
		Email:        email,
		PasswordHash: hash,
		Activo:       true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}
	if err := s.repo.CreateUsuario(ctx, usuario); err != nil {
		return nil, fmt.Errorf("failed to create usuario: %w", err)
	}
	return &usuario, nil
}

func (s *usuarioService) GetUsuarioByID(ctx context.Context, usuarioID string) (*domain.Usuario, error) {
	usuario, err := s.repo.FindUsuarioByID(ctx, usuarioID)
	if err != nil {
		return nil, fmt.Errorf("failed to find usuario %s: %w", usuarioID, err)
	}
	return usuario, nil
}

func (s *usuarioService) VerifyCredentials(ctx context.Context, email, password string) (*domain.Usuario, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	usuario, err := s.repo.FindUsuarioByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, ErrCredencialesInvalidas
		}
		return nil, fmt.Errorf("failed to find usuario by email: %w", err)
	}
	if !usuario.Activo {
		return nil, ErrCredencialesInvalidas
	}
	if !utils.CheckPasswordHash(password, usuario.PasswordHash) {
		return nil, ErrCredencialesInvalidas
	}
	return usuario, nil
}

package services_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/inmofin/backoffice-caja/internal/core/domain"
	portsrepo "github.com/inmofin/backoffice-caja/internal/core/ports/repositories"
	portssvc "github.com/inmofin/backoffice-caja/internal/core/ports/services"
)

// --- Mock CajaRepository ---

type MockCajaRepository struct {
	mock.Mock
}

func (m *MockCajaRepository) FindCajaByID(ctx context.Context, cajaID string) (*domain.Caja, error) {
	args := m.Called(ctx, cajaID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Caja), args.Error(1)
}

func (m *MockCajaRepository) ListCajas(ctx context.Context, puntoVentaID *string, estado *domain.CajaEstado) ([]domain.Caja, error) {
	args := m.Called(ctx, puntoVentaID, estado)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Caja), args.Error(1)
}

func (m *MockCajaRepository) SetCajaEstado(ctx context.Context, caja domain.Caja, desde domain.CajaEstado) error {
	args := m.Called(ctx, caja, desde)
	return args.Error(0)
}

// --- Mock MovimientoRepository ---

type MockMovimientoRepository struct {
	mock.Mock
}

func (m *MockMovimientoRepository) FindMovimientoByID(ctx context.Context, movimientoID string) (*domain.CajaMovimiento, error) {
	args := m.Called(ctx, movimientoID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CajaMovimiento), args.Error(1)
}

func (m *MockMovimientoRepository) ListMovimientos(ctx context.Context, filtro portsrepo.MovimientoFiltro, limit int, nextToken *string) ([]domain.CajaMovimiento, int, *string, error) {
	args := m.Called(ctx, filtro, limit, nextToken)
	var movs []domain.CajaMovimiento
	if args.Get(0) != nil {
		movs = args.Get(0).([]domain.CajaMovimiento)
	}
	var token *string
	if args.Get(2) != nil {
		token = args.Get(2).(*string)
	}
	return movs, args.Int(1), token, args.Error(3)
}

func (m *MockMovimientoRepository) ListMovimientosFiltrados(ctx context.Context, filtro portsrepo.MovimientoFiltro) ([]domain.CajaMovimiento, error) {
	args := m.Called(ctx, filtro)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CajaMovimiento), args.Error(1)
}

func (m *MockMovimientoRepository) CreateMovimiento(ctx context.Context, movimiento domain.CajaMovimiento) error {
	args := m.Called(ctx, movimiento)
	return args.Error(0)
}

func (m *MockMovimientoRepository) UpdateMovimiento(ctx context.Context, movimiento domain.CajaMovimiento) error {
	args := m.Called(ctx, movimiento)
	return args.Error(0)
}

func (m *MockMovimientoRepository) DeleteMovimiento(ctx context.Context, movimientoID string) error {
	args := m.Called(ctx, movimientoID)
	return args.Error(0)
}

func (m *MockMovimientoRepository) SetMovimientoEstado(ctx context.Context, movimientoID string, desde, hacia domain.MovimientoEstado, updatedBy string, updatedAt time.Time) error {
	args := m.Called(ctx, movimientoID, desde, hacia, updatedBy, updatedAt)
	return args.Error(0)
}

// --- Mock CatalogoService ---

type MockCatalogoService struct {
	mock.Mock
}

func (m *MockCatalogoService) ListTiposMovimiento(ctx context.Context) ([]domain.TipoMovimiento, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TipoMovimiento), args.Error(1)
}

func (m *MockCatalogoService) ListTiposOperacion(ctx context.Context) ([]domain.TipoOperacion, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TipoOperacion), args.Error(1)
}

func (m *MockCatalogoService) ListTiposCaja(ctx context.Context) ([]domain.TipoCaja, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TipoCaja), args.Error(1)
}

func (m *MockCatalogoService) ListEstadosCaja(ctx context.Context) ([]domain.EstadoCaja, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.EstadoCaja), args.Error(1)
}

func (m *MockCatalogoService) GetTipoMovimiento(ctx context.Context, tipoMovimientoID string) (*domain.TipoMovimiento, error) {
	args := m.Called(ctx, tipoMovimientoID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TipoMovimiento), args.Error(1)
}

func (m *MockCatalogoService) GetTipoOperacion(ctx context.Context, tipoOperacionID string) (*domain.TipoOperacion, error) {
	args := m.Called(ctx, tipoOperacionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TipoOperacion), args.Error(1)
}

func (m *MockCatalogoService) GetTipoCaja(ctx context.Context, tipoCajaID string) (*domain.TipoCaja, error) {
	args := m.Called(ctx, tipoCajaID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TipoCaja), args.Error(1)
}

func (m *MockCatalogoService) TiposOperacionPorID(ctx context.Context) (map[string]domain.TipoOperacion, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.TipoOperacion), args.Error(1)
}

func (m *MockCatalogoService) ResolverNombre(ctx context.Context, kind portssvc.CatalogoKind, id string) string {
	args := m.Called(ctx, kind, id)
	return args.String(0)
}

// --- Mock UsuarioRepository ---

type MockUsuarioRepository struct {
	mock.Mock
}

func (m *MockUsuarioRepository) FindUsuarioByID(ctx context.Context, usuarioID string) (*domain.Usuario, error) {
	args := m.Called(ctx, usuarioID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Usuario), args.Error(1)
}

func (m *MockUsuarioRepository) FindUsuarioByEmail(ctx context.Context, email string) (*domain.Usuario, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Usuario), args.Error(1)
}

func (m *MockUsuarioRepository) CreateUsuario(ctx context.Context, usuario domain.Usuario) error {
	args := m.Called(ctx, usuario)
	return args.Error(0)
}

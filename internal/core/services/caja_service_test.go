package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/inmofin/backoffice-caja/internal/apperrors"
	"github.com/inmofin/backoffice-caja/internal/core/domain"
	portsrepo "github.com/inmofin/backoffice-caja/internal/core/ports/repositories"
	portssvc "github.com/inmofin/backoffice-caja/internal/core/ports/services"
	"github.com/inmofin/backoffice-caja/internal/core/services"
)

type CajaServiceTestSuite struct {
	suite.Suite
	mockCajaRepo       *MockCajaRepository
	mockMovimientoRepo *MockMovimientoRepository
	mockCatalogo       *MockCatalogoService
	service            portssvc.CajaSvcFacade
}

func (suite *CajaServiceTestSuite) SetupTest() {
	suite.mockCajaRepo = new(MockCajaRepository)
	suite.mockMovimientoRepo = new(MockMovimientoRepository)
	suite.mockCatalogo = new(MockCatalogoService)
	suite.service = services.NewCajaService(suite.mockCajaRepo, suite.mockMovimientoRepo, suite.mockCatalogo)
}

func (suite *CajaServiceTestSuite) cajaCerrada() *domain.Caja {
	apertura := time.Date(2024, time.January, 2, 9, 0, 0, 0, time.UTC)
	cierre := time.Date(2024, time.December, 31, 18, 0, 0, 0, time.UTC)
	return &domain.Caja{
		CajaID:        uuid.NewString(),
		Nombre:        "Caja Central",
		TipoCajaID:    "tc-central",
		PuntoVentaID:  "pv-1",
		Estado:        domain.CajaCerrada,
		FechaApertura: &apertura,
		FechaCierre:   &cierre,
	}
}

func (suite *CajaServiceTestSuite) cajaAbierta(apertura time.Time) *domain.Caja {
	return &domain.Caja{
		CajaID:        uuid.NewString(),
		Nombre:        "Caja Chica",
		TipoCajaID:    "tc-chica",
		PuntoVentaID:  "pv-1",
		Estado:        domain.CajaAbierta,
		FechaApertura: &apertura,
	}
}

func (suite *CajaServiceTestSuite) TestGetCaja_ResuelveEstadoNombre() {
	ctx := context.Background()
	caja := suite.cajaAbierta(time.Now().UTC())

	suite.mockCajaRepo.On("FindCajaByID", ctx, caja.CajaID).Return(caja, nil).Once()
	suite.mockCatalogo.On("ResolverNombre", ctx, portssvc.KindEstadoCaja, string(domain.CajaAbierta)).Return("Abierta").Once()

	got, err := suite.service.GetCaja(ctx, caja.CajaID)

	suite.Require().NoError(err)
	suite.Equal("Abierta", got.EstadoNombre)
	suite.mockCajaRepo.AssertExpectations(suite.T())
}

func (suite *CajaServiceTestSuite) TestGetCaja_NotFound() {
	ctx := context.Background()
	cajaID := uuid.NewString()

	suite.mockCajaRepo.On("FindCajaByID", ctx, cajaID).Return(nil, apperrors.ErrNotFound).Once()

	got, err := suite.service.GetCaja(ctx, cajaID)

	suite.Require().Error(err)
	suite.Nil(got)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *CajaServiceTestSuite) TestAbrirCaja_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	caja := suite.cajaCerrada()

	suite.mockCajaRepo.On("FindCajaByID", ctx, caja.CajaID).Return(caja, nil).Once()
	suite.mockCajaRepo.On("SetCajaEstado", ctx, mock.MatchedBy(func(c domain.Caja) bool {
		return c.Estado == domain.CajaAbierta && c.FechaCierre == nil && c.LastUpdatedBy == userID
	}), domain.CajaCerrada).Return(nil).Once()
	suite.mockCatalogo.On("ResolverNombre", ctx, portssvc.KindEstadoCaja, string(domain.CajaAbierta)).Return("Abierta").Once()

	got, err := suite.service.AbrirCaja(ctx, caja.CajaID, userID)

	suite.Require().NoError(err)
	suite.Equal(domain.CajaAbierta, got.Estado)
	suite.Nil(got.FechaCierre)
	suite.Require().NotNil(got.FechaApertura)
	suite.WithinDuration(time.Now().UTC(), *got.FechaApertura, time.Minute)
	suite.mockCajaRepo.AssertExpectations(suite.T())
}

func (suite *CajaServiceTestSuite) TestAbrirCaja_NuncaAbierta() {
	ctx := context.Background()
	userID := uuid.NewString()
	// A freshly provisioned register has never been through AbrirCaja, so it
	// carries no opening or closing date at all.
	caja := &domain.Caja{
		CajaID:       uuid.NewString(),
		Nombre:       "Caja Nueva",
		TipoCajaID:   "tc-central",
		PuntoVentaID: "pv-1",
		Estado:       domain.CajaCerrada,
	}

	suite.mockCajaRepo.On("FindCajaByID", ctx, caja.CajaID).Return(caja, nil).Once()
	suite.mockCajaRepo.On("SetCajaEstado", ctx, mock.MatchedBy(func(c domain.Caja) bool {
		return c.Estado == domain.CajaAbierta && c.FechaApertura != nil && c.FechaCierre == nil
	}), domain.CajaCerrada).Return(nil).Once()
	suite.mockCatalogo.On("ResolverNombre", ctx, portssvc.KindEstadoCaja, string(domain.CajaAbierta)).Return("Abierta").Once()

	got, err := suite.service.AbrirCaja(ctx, caja.CajaID, userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(got.FechaApertura)
	suite.WithinDuration(time.Now().UTC(), *got.FechaApertura, time.Minute)
	suite.mockCajaRepo.AssertExpectations(suite.T())
}

func (suite *CajaServiceTestSuite) TestAbrirCaja_YaAbierta() {
	ctx := context.Background()
	caja := suite.cajaAbierta(time.Now().UTC())

	suite.mockCajaRepo.On("FindCajaByID", ctx, caja.CajaID).Return(caja, nil).Once()

	got, err := suite.service.AbrirCaja(ctx, caja.CajaID, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(got)
	suite.ErrorIs(err, services.ErrCajaYaAbierta)
	suite.mockCajaRepo.AssertNotCalled(suite.T(), "SetCajaEstado", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *CajaServiceTestSuite) TestCerrarCaja_Success_TipoSinRestriccion() {
	ctx := context.Background()
	userID := uuid.NewString()
	caja := suite.cajaAbierta(time.Now().UTC())

	suite.mockCajaRepo.On("FindCajaByID", ctx, caja.CajaID).Return(caja, nil).Once()
	suite.mockCatalogo.On("GetTipoCaja", ctx, caja.TipoCajaID).Return(&domain.TipoCaja{
		TipoCajaID:  caja.TipoCajaID,
		Nombre:      "Caja ejecutiva",
		CierreAnual: false,
	}, nil).Once()
	suite.mockCajaRepo.On("SetCajaEstado", ctx, mock.MatchedBy(func(c domain.Caja) bool {
		return c.Estado == domain.CajaCerrada && c.FechaCierre != nil
	}), domain.CajaAbierta).Return(nil).Once()
	suite.mockCatalogo.On("ResolverNombre", ctx, portssvc.KindEstadoCaja, string(domain.CajaCerrada)).Return("Cerrada").Once()

	got, err := suite.service.CerrarCaja(ctx, caja.CajaID, userID)

	suite.Require().NoError(err)
	suite.Equal(domain.CajaCerrada, got.Estado)
	suite.Require().NotNil(got.FechaCierre)
	suite.mockCajaRepo.AssertExpectations(suite.T())
}

func (suite *CajaServiceTestSuite) TestCerrarCaja_NoAbierta() {
	ctx := context.Background()
	caja := suite.cajaCerrada()

	suite.mockCajaRepo.On("FindCajaByID", ctx, caja.CajaID).Return(caja, nil).Once()

	got, err := suite.service.CerrarCaja(ctx, caja.CajaID, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(got)
	suite.ErrorIs(err, services.ErrCajaNoAbierta)
}

func (suite *CajaServiceTestSuite) TestCerrarCaja_CierreAnualBloqueado() {
	ctx := context.Background()
	// Opened this year: the lock holds until January 1st of next year.
	caja := suite.cajaAbierta(time.Now().UTC())

	suite.mockCajaRepo.On("FindCajaByID", ctx, caja.CajaID).Return(caja, nil).Once()
	suite.mockCatalogo.On("GetTipoCaja", ctx, caja.TipoCajaID).Return(&domain.TipoCaja{
		TipoCajaID:  caja.TipoCajaID,
		Nombre:      "Caja chica",
		CierreAnual: true,
	}, nil).Once()

	got, err := suite.service.CerrarCaja(ctx, caja.CajaID, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(got)
	suite.ErrorIs(err, services.ErrCierreBloqueado)
	suite.mockCajaRepo.AssertNotCalled(suite.T(), "SetCajaEstado", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *CajaServiceTestSuite) TestCerrarCaja_CierreAnualDesbloqueado() {
	ctx := context.Background()
	userID := uuid.NewString()
	// Opened two years back: January 1st of the following year has passed.
	caja := suite.cajaAbierta(time.Now().UTC().AddDate(-2, 0, 0))

	suite.mockCajaRepo.On("FindCajaByID", ctx, caja.CajaID).Return(caja, nil).Once()
	suite.mockCatalogo.On("GetTipoCaja", ctx, caja.TipoCajaID).Return(&domain.TipoCaja{
		TipoCajaID:  caja.TipoCajaID,
		Nombre:      "Caja central",
		CierreAnual: true,
	}, nil).Once()
	suite.mockCajaRepo.On("SetCajaEstado", ctx, mock.AnythingOfType("domain.Caja"), domain.CajaAbierta).Return(nil).Once()
	suite.mockCatalogo.On("ResolverNombre", ctx, portssvc.KindEstadoCaja, string(domain.CajaCerrada)).Return("Cerrada").Once()

	got, err := suite.service.CerrarCaja(ctx, caja.CajaID, userID)

	suite.Require().NoError(err)
	suite.Equal(domain.CajaCerrada, got.Estado)
	suite.mockCajaRepo.AssertExpectations(suite.T())
}

func (suite *CajaServiceTestSuite) TestCerrarCaja_SinFechaAperturaNoBloquea() {
	ctx := context.Background()
	userID := uuid.NewString()
	// Provisioned already open, so no opening date was ever recorded; the
	// annual lock has no exercise year to anchor to and does not apply.
	caja := &domain.Caja{
		CajaID:       uuid.NewString(),
		Nombre:       "Caja Migrada",
		TipoCajaID:   "tc-central",
		PuntoVentaID: "pv-1",
		Estado:       domain.CajaAbierta,
	}

	suite.mockCajaRepo.On("FindCajaByID", ctx, caja.CajaID).Return(caja, nil).Once()
	suite.mockCatalogo.On("GetTipoCaja", ctx, caja.TipoCajaID).Return(&domain.TipoCaja{
		TipoCajaID:  caja.TipoCajaID,
		Nombre:      "Caja central",
		CierreAnual: true,
	}, nil).Once()
	suite.mockCajaRepo.On("SetCajaEstado", ctx, mock.AnythingOfType("domain.Caja"), domain.CajaAbierta).Return(nil).Once()
	suite.mockCatalogo.On("ResolverNombre", ctx, portssvc.KindEstadoCaja, string(domain.CajaCerrada)).Return("Cerrada").Once()

	got, err := suite.service.CerrarCaja(ctx, caja.CajaID, userID)

	suite.Require().NoError(err)
	suite.Equal(domain.CajaCerrada, got.Estado)
	suite.mockCajaRepo.AssertExpectations(suite.T())
}

func (suite *CajaServiceTestSuite) TestCerrarCaja_TipoDesconocidoNoBloquea() {
	ctx := context.Background()
	caja := suite.cajaAbierta(time.Now().UTC())

	suite.mockCajaRepo.On("FindCajaByID", ctx, caja.CajaID).Return(caja, nil).Once()
	suite.mockCatalogo.On("GetTipoCaja", ctx, caja.TipoCajaID).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockCajaRepo.On("SetCajaEstado", ctx, mock.AnythingOfType("domain.Caja"), domain.CajaAbierta).Return(nil).Once()
	suite.mockCatalogo.On("ResolverNombre", ctx, portssvc.KindEstadoCaja, string(domain.CajaCerrada)).Return("Cerrada").Once()

	got, err := suite.service.CerrarCaja(ctx, caja.CajaID, uuid.NewString())

	suite.Require().NoError(err)
	suite.Equal(domain.CajaCerrada, got.Estado)
}

func (suite *CajaServiceTestSuite) TestCerrarCaja_ConflictoConcurrente() {
	ctx := context.Background()
	caja := suite.cajaAbierta(time.Now().UTC())

	suite.mockCajaRepo.On("FindCajaByID", ctx, caja.CajaID).Return(caja, nil).Once()
	suite.mockCatalogo.On("GetTipoCaja", ctx, caja.TipoCajaID).Return(&domain.TipoCaja{TipoCajaID: caja.TipoCajaID}, nil).Once()
	suite.mockCajaRepo.On("SetCajaEstado", ctx, mock.AnythingOfType("domain.Caja"), domain.CajaAbierta).Return(apperrors.ErrConflict).Once()

	got, err := suite.service.CerrarCaja(ctx, caja.CajaID, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(got)
	suite.ErrorIs(err, apperrors.ErrConflict)
}

func (suite *CajaServiceTestSuite) TestResumenCaja_Success() {
	ctx := context.Background()
	caja := suite.cajaAbierta(time.Now().UTC())

	movimientos := []domain.CajaMovimiento{
		{MovimientoID: uuid.NewString(), CajaID: caja.CajaID, TipoOperacionID: "op-ing", Monto: decimal.RequireFromString("500.00")},
		{MovimientoID: uuid.NewString(), CajaID: caja.CajaID, TipoOperacionID: "op-egr", Monto: decimal.RequireFromString("120.50")},
	}
	tipos := map[string]domain.TipoOperacion{
		"op-ing": {TipoOperacionID: "op-ing", Semantica: domain.SemanticaIngreso},
		"op-egr": {TipoOperacionID: "op-egr", Semantica: domain.SemanticaEgreso},
	}

	suite.mockCajaRepo.On("FindCajaByID", ctx, caja.CajaID).Return(caja, nil).Once()
	suite.mockMovimientoRepo.On("ListMovimientosFiltrados", ctx, mock.MatchedBy(func(f portsrepo.MovimientoFiltro) bool {
		return f.CajaID != nil && *f.CajaID == caja.CajaID && f.Estado == nil
	})).Return(movimientos, nil).Once()
	suite.mockCatalogo.On("TiposOperacionPorID", ctx).Return(tipos, nil).Once()

	resumen, err := suite.service.ResumenCaja(ctx, caja.CajaID)

	suite.Require().NoError(err)
	suite.True(resumen.TotalIngresos.Equal(decimal.RequireFromString("500.00")))
	suite.True(resumen.TotalEgresos.Equal(decimal.RequireFromString("120.50")))
	suite.True(resumen.Saldo.Equal(decimal.RequireFromString("379.50")))
	suite.mockMovimientoRepo.AssertExpectations(suite.T())
}

func (suite *CajaServiceTestSuite) TestResumenCaja_RepoError() {
	ctx := context.Background()
	caja := suite.cajaAbierta(time.Now().UTC())
	expectedErr := assert.AnError

	suite.mockCajaRepo.On("FindCajaByID", ctx, caja.CajaID).Return(caja, nil).Once()
	suite.mockMovimientoRepo.On("ListMovimientosFiltrados", ctx, mock.Anything).Return(nil, expectedErr).Once()

	resumen, err := suite.service.ResumenCaja(ctx, caja.CajaID)

	suite.Require().Error(err)
	suite.Nil(resumen)
	suite.ErrorIs(err, expectedErr)
}

func TestCajaService(t *testing.T) {
	suite.Run(t, new(CajaServiceTestSuite))
}

package services_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/inmofin/backoffice-caja/internal/apperrors"
	"github.com/inmofin/backoffice-caja/internal/core/domain"
	portssvc "github.com/inmofin/backoffice-caja/internal/core/ports/services"
	"github.com/inmofin/backoffice-caja/internal/core/services"
	"github.com/inmofin/backoffice-caja/internal/dto"
)

type TraspasoServiceTestSuite struct {
	suite.Suite
	mockMovimientoRepo *MockMovimientoRepository
	mockCajaRepo       *MockCajaRepository
	mockCatalogo       *MockCatalogoService
	service            portssvc.TraspasoSvcFacade

	origen  *domain.Caja
	destino *domain.Caja
}

func (suite *TraspasoServiceTestSuite) SetupTest() {
	suite.mockMovimientoRepo = new(MockMovimientoRepository)
	suite.mockCajaRepo = new(MockCajaRepository)
	suite.mockCatalogo = new(MockCatalogoService)
	suite.service = services.NewTraspasoService(suite.mockMovimientoRepo, suite.mockCajaRepo, suite.mockCatalogo)

	apertura := time.Now().UTC()
	suite.origen = &domain.Caja{
		CajaID:        uuid.NewString(),
		Nombre:        "Caja Central",
		Estado:        domain.CajaAbierta,
		FechaApertura: &apertura,
	}
	suite.destino = &domain.Caja{
		CajaID:        uuid.NewString(),
		Nombre:        "Caja Chica",
		Estado:        domain.CajaAbierta,
		FechaApertura: &apertura,
	}
}

func (suite *TraspasoServiceTestSuite) request() dto.RegistrarTraspasoRequest {
	return dto.RegistrarTraspasoRequest{
		CajaOrigenID:    suite.origen.CajaID,
		CajaDestinoID:   suite.destino.CajaID,
		TipoOperacionID: "op-egr",
		Monto:           decimal.RequireFromString("150.00"),
		Descripcion:     "Fondo para gastos menores",
		Referencia:      "TRF-001",
	}
}

func (suite *TraspasoServiceTestSuite) expectCatalogos() {
	suite.mockCatalogo.On("ListTiposMovimiento", mock.Anything).Return([]domain.TipoMovimiento{
		{TipoMovimientoID: "tm-cobro", Nombre: "Cobro"},
		{TipoMovimientoID: "tm-traspaso", Nombre: "Traspaso", EsTraspaso: true},
	}, nil).Once()
	suite.mockCatalogo.On("GetTipoOperacion", mock.Anything, "op-egr").Return(&domain.TipoOperacion{
		TipoOperacionID: "op-egr",
		Nombre:          "Egreso",
		Semantica:       domain.SemanticaEgreso,
		TipoInversoID:   "op-ing",
	}, nil).Once()
	suite.mockCatalogo.On("GetTipoOperacion", mock.Anything, "op-ing").Return(&domain.TipoOperacion{
		TipoOperacionID: "op-ing",
		Nombre:          "Ingreso",
		Semantica:       domain.SemanticaIngreso,
		TipoInversoID:   "op-egr",
	}, nil).Once()
}

func (suite *TraspasoServiceTestSuite) TestRegistrarTraspaso_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	req := suite.request()

	suite.mockCajaRepo.On("FindCajaByID", ctx, suite.origen.CajaID).Return(suite.origen, nil).Once()
	suite.expectCatalogos()
	suite.mockMovimientoRepo.On("CreateMovimiento", ctx, mock.MatchedBy(func(m domain.CajaMovimiento) bool {
		return m.CajaID == suite.origen.CajaID &&
			m.TipoOperacionID == "op-egr" &&
			m.CajaDestinoID != nil && *m.CajaDestinoID == suite.destino.CajaID &&
			m.Monto.Equal(req.Monto) &&
			m.Estado == domain.MovimientoPendiente
	})).Return(nil).Once()
	suite.mockCajaRepo.On("FindCajaByID", ctx, suite.destino.CajaID).Return(suite.destino, nil).Once()
	suite.mockMovimientoRepo.On("CreateMovimiento", ctx, mock.MatchedBy(func(m domain.CajaMovimiento) bool {
		return m.CajaID == suite.destino.CajaID &&
			m.TipoOperacionID == "op-ing" &&
			m.CajaDestinoID != nil && *m.CajaDestinoID == suite.origen.CajaID &&
			m.Monto.Equal(req.Monto) &&
			strings.Contains(m.Descripcion, "Recibido desde caja "+suite.origen.CajaID)
	})).Return(nil).Once()

	traspaso, err := suite.service.RegistrarTraspaso(ctx, req, userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(traspaso.Primario)
	suite.Require().NotNil(traspaso.Reverso)
	suite.True(traspaso.Primario.Monto.Equal(traspaso.Reverso.Monto))
	suite.Equal(traspaso.Primario.Referencia, traspaso.Reverso.Referencia)
	suite.Equal(traspaso.Primario.Fecha, traspaso.Reverso.Fecha)
	suite.mockMovimientoRepo.AssertExpectations(suite.T())
}

func (suite *TraspasoServiceTestSuite) TestRegistrarTraspaso_MismaCaja() {
	ctx := context.Background()
	req := suite.request()
	req.CajaDestinoID = req.CajaOrigenID

	traspaso, err := suite.service.RegistrarTraspaso(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(traspaso)
	suite.ErrorIs(err, services.ErrTraspasoMismaCaja)
	suite.mockMovimientoRepo.AssertNotCalled(suite.T(), "CreateMovimiento", mock.Anything, mock.Anything)
}

func (suite *TraspasoServiceTestSuite) TestRegistrarTraspaso_MontoNoPositivo() {
	ctx := context.Background()
	req := suite.request()
	req.Monto = decimal.RequireFromString("-10.00")

	traspaso, err := suite.service.RegistrarTraspaso(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(traspaso)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *TraspasoServiceTestSuite) TestRegistrarTraspaso_OrigenCerrada() {
	ctx := context.Background()
	suite.origen.Estado = domain.CajaCerrada

	suite.mockCajaRepo.On("FindCajaByID", ctx, suite.origen.CajaID).Return(suite.origen, nil).Once()

	traspaso, err := suite.service.RegistrarTraspaso(ctx, suite.request(), uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(traspaso)
	suite.ErrorIs(err, services.ErrCajaNoAbierta)
	suite.mockMovimientoRepo.AssertNotCalled(suite.T(), "CreateMovimiento", mock.Anything, mock.Anything)
}

func (suite *TraspasoServiceTestSuite) TestRegistrarTraspaso_OperacionSinInversa() {
	ctx := context.Background()
	req := suite.request()
	req.TipoOperacionID = "op-ajuste"

	suite.mockCajaRepo.On("FindCajaByID", ctx, suite.origen.CajaID).Return(suite.origen, nil).Once()
	suite.mockCatalogo.On("ListTiposMovimiento", ctx).Return([]domain.TipoMovimiento{
		{TipoMovimientoID: "tm-traspaso", EsTraspaso: true},
	}, nil).Once()
	suite.mockCatalogo.On("GetTipoOperacion", ctx, "op-ajuste").Return(&domain.TipoOperacion{
		TipoOperacionID: "op-ajuste",
		Semantica:       domain.SemanticaOtra,
	}, nil).Once()

	traspaso, err := suite.service.RegistrarTraspaso(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(traspaso)
	suite.ErrorIs(err, services.ErrOperacionSinInversa)
}

func (suite *TraspasoServiceTestSuite) TestRegistrarTraspaso_SinTipoTraspaso() {
	ctx := context.Background()

	suite.mockCajaRepo.On("FindCajaByID", ctx, suite.origen.CajaID).Return(suite.origen, nil).Once()
	suite.mockCatalogo.On("ListTiposMovimiento", ctx).Return([]domain.TipoMovimiento{
		{TipoMovimientoID: "tm-cobro", Nombre: "Cobro"},
	}, nil).Once()

	traspaso, err := suite.service.RegistrarTraspaso(ctx, suite.request(), uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(traspaso)
	suite.ErrorIs(err, services.ErrTipoTraspasoNoConfigurado)
}

func (suite *TraspasoServiceTestSuite) TestRegistrarTraspaso_DestinoCerrada_PrimarioQueda() {
	ctx := context.Background()
	suite.destino.Estado = domain.CajaCerrada
	req := suite.request()

	suite.mockCajaRepo.On("FindCajaByID", ctx, suite.origen.CajaID).Return(suite.origen, nil).Once()
	suite.expectCatalogos()
	suite.mockMovimientoRepo.On("CreateMovimiento", ctx, mock.MatchedBy(func(m domain.CajaMovimiento) bool {
		return m.CajaID == suite.origen.CajaID
	})).Return(nil).Once()
	suite.mockCajaRepo.On("FindCajaByID", ctx, suite.destino.CajaID).Return(suite.destino, nil).Once()

	traspaso, err := suite.service.RegistrarTraspaso(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrReversoFallido)
	suite.Require().NotNil(traspaso)
	suite.Require().NotNil(traspaso.Primario)
	suite.Nil(traspaso.Reverso)
	suite.mockMovimientoRepo.AssertNumberOfCalls(suite.T(), "CreateMovimiento", 1)
}

func (suite *TraspasoServiceTestSuite) TestRegistrarTraspaso_ReversoFallaEnRepo() {
	ctx := context.Background()
	req := suite.request()

	suite.mockCajaRepo.On("FindCajaByID", ctx, suite.origen.CajaID).Return(suite.origen, nil).Once()
	suite.expectCatalogos()
	suite.mockMovimientoRepo.On("CreateMovimiento", ctx, mock.MatchedBy(func(m domain.CajaMovimiento) bool {
		return m.CajaID == suite.origen.CajaID
	})).Return(nil).Once()
	suite.mockCajaRepo.On("FindCajaByID", ctx, suite.destino.CajaID).Return(suite.destino, nil).Once()
	suite.mockMovimientoRepo.On("CreateMovimiento", ctx, mock.MatchedBy(func(m domain.CajaMovimiento) bool {
		return m.CajaID == suite.destino.CajaID
	})).Return(assert.AnError).Once()

	traspaso, err := suite.service.RegistrarTraspaso(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrReversoFallido)
	suite.Require().NotNil(traspaso)
	suite.Require().NotNil(traspaso.Primario)
	suite.Nil(traspaso.Reverso)
	suite.mockMovimientoRepo.AssertExpectations(suite.T())
}

func (suite *TraspasoServiceTestSuite) TestRegistrarTraspaso_FalloPrimario_NoIntentaReverso() {
	ctx := context.Background()

	suite.mockCajaRepo.On("FindCajaByID", ctx, suite.origen.CajaID).Return(suite.origen, nil).Once()
	suite.expectCatalogos()
	suite.mockMovimientoRepo.On("CreateMovimiento", ctx, mock.AnythingOfType("domain.CajaMovimiento")).Return(assert.AnError).Once()

	traspaso, err := suite.service.RegistrarTraspaso(ctx, suite.request(), uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(traspaso)
	suite.NotErrorIs(err, services.ErrReversoFallido)
	suite.mockMovimientoRepo.AssertNumberOfCalls(suite.T(), "CreateMovimiento", 1)
}

func TestTraspasoService(t *testing.T) {
	suite.Run(t, new(TraspasoServiceTestSuite))
}

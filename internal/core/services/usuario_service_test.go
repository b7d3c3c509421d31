package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/inmofin/backoffice-caja/internal/apperrors"
	"github.com/inmofin/backoffice-caja/internal/core/domain"
	portssvc "github.com/inmofin/backoffice-caja/internal/core/ports/services"
	"github.com/inmofin/backoffice-caja/internal/core/services"
	"github.com/inmofin/backoffice-caja/internal/utils"
)

type UsuarioServiceTestSuite struct {
	suite.Suite
	mockRepo *MockUsuarioRepository
	service  portssvc.UsuarioSvcFacade
}

func (suite *UsuarioServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockUsuarioRepository)
	suite.service = services.NewUsuarioService(suite.mockRepo)
}

func (suite *UsuarioServiceTestSuite) TestCreateUsuario_Success() {
	ctx := context.Background()

	suite.mockRepo.On("FindUsuarioByEmail", ctx, "ana@inmofin.test").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("CreateUsuario", ctx, mock.MatchedBy(func(u domain.Usuario) bool {
		return u.Email == "ana@inmofin.test" && u.Activo && u.PasswordHash != "" && u.PasswordHash != "secreto123"
	})).Return(nil).Once()

	usuario, err := suite.service.CreateUsuario(ctx, "Ana", "Ana@Inmofin.test", "secreto123")

	suite.Require().NoError(err)
	suite.Equal("ana@inmofin.test", usuario.Email)
	suite.True(utils.CheckPasswordHash("secreto123", usuario.PasswordHash))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UsuarioServiceTestSuite) TestCreateUsuario_PasswordCorta() {
	ctx := context.Background()

	usuario, err := suite.service.CreateUsuario(ctx, "Ana", "ana@inmofin.test", "corta")

	suite.Require().Error(err)
	suite.Nil(usuario)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *UsuarioServiceTestSuite) TestCreateUsuario_EmailDuplicado() {
	ctx := context.Background()
	existente := &domain.Usuario{UsuarioID: uuid.NewString(), Email: "ana@inmofin.test"}

	suite.mockRepo.On("FindUsuarioByEmail", ctx, "ana@inmofin.test").Return(existente, nil).Once()

	usuario, err := suite.service.CreateUsuario(ctx, "Ana", "ana@inmofin.test", "secreto123")

	suite.Require().Error(err)
	suite.Nil(usuario)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockRepo.AssertNotCalled(suite.T(), "CreateUsuario", mock.Anything, mock.Anything)
}

func (suite *UsuarioServiceTestSuite) TestVerifyCredentials_Success() {
	ctx := context.Background()
	hash, err := utils.HashPassword("secreto123")
	suite.Require().NoError(err)
	existente := &domain.Usuario{
		UsuarioID:    uuid.NewString(),
		Email:        "ana@inmofin.test",
		PasswordHash: hash,
		Activo:       true,
	}

	suite.mockRepo.On("FindUsuarioByEmail", ctx, "ana@inmofin.test").Return(existente, nil).Once()

	usuario, err := suite.service.VerifyCredentials(ctx, "ana@inmofin.test", "secreto123")

	suite.Require().NoError(err)
	suite.Equal(existente.UsuarioID, usuario.UsuarioID)
}

func (suite *UsuarioServiceTestSuite) TestVerifyCredentials_PasswordIncorrecta() {
	ctx := context.Background()
	hash, err := utils.HashPassword("secreto123")
	suite.Require().NoError(err)
	existente := &domain.Usuario{Email: "ana@inmofin.test", PasswordHash: hash, Activo: true}

	suite.mockRepo.On("FindUsuarioByEmail", ctx, "ana@inmofin.test").Return(existente, nil).Once()

	usuario, err := suite.service.VerifyCredentials(ctx, "ana@inmofin.test", "otra")

	suite.Require().Error(err)
	suite.Nil(usuario)
	suite.ErrorIs(err, services.ErrCredencialesInvalidas)
}

func (suite *UsuarioServiceTestSuite) TestVerifyCredentials_UsuarioInactivo() {
	ctx := context.Background()
	hash, err := utils.HashPassword("secreto123")
	suite.Require().NoError(err)
	existente := &domain.Usuario{Email: "ana@inmofin.test", PasswordHash: hash, Activo: false}

	suite.mockRepo.On("FindUsuarioByEmail", ctx, "ana@inmofin.test").Return(existente, nil).Once()

	usuario, err := suite.service.VerifyCredentials(ctx, "ana@inmofin.test", "secreto123")

	suite.Require().Error(err)
	suite.Nil(usuario)
	suite.ErrorIs(err, services.ErrCredencialesInvalidas)
}

func (suite *UsuarioServiceTestSuite) TestVerifyCredentials_EmailDesconocido() {
	ctx := context.Background()

	suite.mockRepo.On("FindUsuarioByEmail", ctx, "nadie@inmofin.test").Return(nil, apperrors.ErrNotFound).Once()

	usuario, err := suite.service.VerifyCredentials(ctx, "nadie@inmofin.test", "secreto123")

	suite.Require().Error(err)
	suite.Nil(usuario)
	suite.ErrorIs(err, services.ErrCredencialesInvalidas)
}

func TestUsuarioService(t *testing.T) {
	suite.Run(t, new(UsuarioServiceTestSuite))
}

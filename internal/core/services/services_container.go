package services

import (
	"github.com/go-redis/redis/v8"

	"github.com/inmofin/backoffice-caja/internal/clients/mora"
	portsrepo "github.com/inmofin/backoffice-caja/internal/core/ports/repositories"
	portssvc "github.com/inmofin/backoffice-caja/internal/core/ports/services"
	"github.com/inmofin/backoffice-caja/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, rdb *redis.Client) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// The catalog service comes first since the ledger services resolve
	// every type and state name through it.
	container.Catalogo = NewCatalogoService(repos.CatalogoRepo, rdb)

	container.Caja = NewCajaService(repos.CajaRepo, repos.MovimientoRepo, container.Catalogo)
	container.Movimiento = NewMovimientoService(repos.MovimientoRepo, repos.CajaRepo, container.Catalogo)
	container.Traspaso = NewTraspasoService(repos.MovimientoRepo, repos.CajaRepo, container.Catalogo)
	container.Usuario = NewUsuarioService(repos.UsuarioRepo)

	container.Mora = mora.NewClient(cfg.MoraBaseURL)

	return container
}

// Compile-time interface implementation checks.
var (
	_ portssvc.CajaSvcFacade       = (*cajaService)(nil)
	_ portssvc.MovimientoSvcFacade = (*movimientoService)(nil)
	_ portssvc.TraspasoSvcFacade   = (*traspasoService)(nil)
	_ portssvc.CatalogoSvcFacade   = (*catalogoService)(nil)
	_ portssvc.UsuarioSvcFacade    = (*usuarioService)(nil)
)

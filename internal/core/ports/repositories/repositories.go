package repositories

// RepositoryProvider aggregates the repository implementations handed to the
// service container at startup.
type RepositoryProvider struct {
	CajaRepo       CajaRepositoryFacade
	MovimientoRepo MovimientoRepositoryFacade
	CatalogoRepo   CatalogoRepositoryFacade
	UsuarioRepo    UsuarioRepositoryFacade
}

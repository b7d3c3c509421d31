package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/inmofin/backoffice-caja/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		CajaRepo:       newPgxCajaRepository(dbPool),
		MovimientoRepo: newPgxMovimientoRepository(dbPool),
		CatalogoRepo:   newPgxCatalogoRepository(dbPool),
		UsuarioRepo:    newPgxUsuarioRepository(dbPool),
	}
}

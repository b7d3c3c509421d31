package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// BaseRepository provides the shared connection pool for all repositories.
// There is deliberately no transaction helper here: the transfer engine
// posts its two legs as independent commits and never rolls back.
type BaseRepository struct {
	Pool *pgxpool.Pool
}

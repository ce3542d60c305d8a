package store

import (
	"context"
	"database/sql"
)

// DBTX is the query surface the state store runs against. Both *sql.DB and
// *sql.Tx satisfy it, so load helpers can read from the pool directly while
// save helpers run inside the replace transaction.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

package database

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBTX is the query surface repositories run against.
//
// *pgxpool.Pool, *pgxpool.Conn, *pgx.Conn and pgx.Tx all satisfy it.
type DBTX interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Session is a connection owned by a single request.
// Release returns it to the pool and must be called exactly once.
type Session interface {
	DBTX
	Release()
}

// SessionProvider hands out request-scoped sessions.
type SessionProvider interface {
	Acquire(ctx context.Context) (Session, error)
}

var _ SessionProvider = (*Database)(nil)

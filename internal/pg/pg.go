package pg

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type Database interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Pool is satisfied by *pgxpool.Pool and by pgxmock pools.
type Pool interface {
	Database
	Begin(ctx context.Context) (pgx.Tx, error)
}

type txKey struct{}

// DB routes queries to the transaction stored in ctx by TXManager, or to the pool.
type DB struct {
	pool Pool
}

func New(pool Pool) *DB {
	return &DB{pool: pool}
}

func (db *DB) conn(ctx context.Context) Database {
	if tx, ok := ctx.Value(txKey{}).(pgx.Tx); ok {
		return tx
	}
	return db.pool
}

func (db *DB) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return db.conn(ctx).Exec(ctx, sql, arguments...)
}

func (db *DB) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return db.conn(ctx).Query(ctx, sql, args...)
}

func (db *DB) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return db.conn(ctx).QueryRow(ctx, sql, args...)
}

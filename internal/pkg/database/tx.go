package database

import (
	"context"

	"github.com/jackc/pgx/v5"
)

type txKey struct{}

// ContextWithTx returns a context carrying an open transaction. Repositories
// pick it up via TxFromContext so reads and writes inside a transactional
// boundary share the same connection.
func ContextWithTx(ctx context.Context, tx pgx.Tx) context.Context {
	return context.WithValue(ctx, txKey{}, tx)
}

// TxFromContext extracts the transaction carried by ctx, if any.
func TxFromContext(ctx context.Context) (pgx.Tx, bool) {
	tx, ok := ctx.Value(txKey{}).(pgx.Tx)
	return tx, ok
}

// TxManager runs a function inside a database transaction: both writes or
// neither. Services depend on this interface so state transitions can be
// tested without a database.
type TxManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

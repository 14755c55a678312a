package persistence

import (
	"context"

	"gorm.io/gorm"
)

type txKey struct{}

// InTx runs fn inside a single database transaction. Repositories
// called with the derived context join the transaction, so a multi-
// repository operation commits or rolls back as one unit.
func (d *Database) InTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return d.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}

// conn returns the transaction bound to ctx, or the base connection
func conn(ctx context.Context, db *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx
	}
	return db.WithContext(ctx)
}

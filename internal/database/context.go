package database

import "context"

type contextKey struct{}

// NewContext returns a copy of ctx carrying the database handle.
func NewContext(ctx context.Context, db *DB) context.Context {
	return context.WithValue(ctx, contextKey{}, db)
}

// FromContext returns the database handle stored in ctx, or nil.
func FromContext(ctx context.Context) *DB {
	db, _ := ctx.Value(contextKey{}).(*DB)
	return db
}

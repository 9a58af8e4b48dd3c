package repository

import (
	"context"

	"veriface.io/infrastructure/database"
)

// RecordStore is the durable store contract the pipeline needs: atomic
// create and point lookup. No update or delete — records are immutable.
type RecordStore[T database.Record] interface {
	CreateOne(ctx context.Context, payload T) (*T, error)
	FindByID(ctx context.Context, id string) (*T, error)
}

package memory

import (
	"context"
	"sync"

	"veriface.io/infrastructure/database"
)

// MemoryRepository is the in-process record store used when no datastore
// url is configured. Creation is atomic under the lock and records are
// never mutated after insertion.
type MemoryRepository[T database.Record] struct {
	mu      sync.RWMutex
	records map[string]T
}

func NewMemoryRepository[T database.Record]() *MemoryRepository[T] {
	return &MemoryRepository[T]{records: map[string]T{}}
}

func (repo *MemoryRepository[T]) CreateOne(ctx context.Context, payload T) (*T, error) {
	parsed := payload.ParseModel().(*T)
	repo.mu.Lock()
	repo.records[(*parsed).RecordID()] = *parsed
	repo.mu.Unlock()
	return parsed, nil
}

func (repo *MemoryRepository[T]) FindByID(ctx context.Context, id string) (*T, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()
	record, ok := repo.records[id]
	if !ok {
		return nil, nil
	}
	return &record, nil
}

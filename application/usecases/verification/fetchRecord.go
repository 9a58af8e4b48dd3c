package verification

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"veriface.io/application/repository"
	"veriface.io/infrastructure/database"
	"veriface.io/infrastructure/database/repository/cache"
)

// FetchRecord resolves a stored record by kind and id, reading through the
// cache when one is configured.
func FetchRecord(ctx context.Context, kind string, id string) (any, error) {
	switch kind {
	case "document":
		return fetchCached(ctx, repository.DocumentRecordRepo(), kind, id)
	case "liveness":
		return fetchCached(ctx, repository.LivenessRecordRepo(), kind, id)
	case "match":
		return fetchCached(ctx, repository.MatchRecordRepo(), kind, id)
	default:
		return nil, fmt.Errorf("unsupported record kind %s", kind)
	}
}

func fetchCached[T database.Record](ctx context.Context, store repository.RecordStore[T], kind string, id string) (*T, error) {
	if os.Getenv("REDIS_ADDR") != "" {
		if cached := cache.Cache.FindOneByteArray(recordCacheKey(kind, id)); cached != nil {
			var record T
			if err := json.Unmarshal(*cached, &record); err == nil {
				return &record, nil
			}
		}
	}
	record, err := store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, fmt.Errorf("%s record %s: %w", kind, id, ErrRecordNotFound)
	}
	cacheRecord(kind, id, record)
	return record, nil
}

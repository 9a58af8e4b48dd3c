package repository

import (
	"sync"

	"veriface.io/entities"
	"veriface.io/infrastructure/database/connection/datastore"
	"veriface.io/infrastructure/database/repository/memory"
	"veriface.io/infrastructure/database/repository/mongo"
)

var matchRecordOnce = sync.Once{}

var matchRecordRepository RecordStore[entities.MatchRecord]

func MatchRecordRepo() RecordStore[entities.MatchRecord] {
	matchRecordOnce.Do(func() {
		if datastore.Available() {
			matchRecordRepository = &mongo.MongoRepository[entities.MatchRecord]{Model: datastore.MatchRecordModel}
		} else {
			matchRecordRepository = memory.NewMemoryRepository[entities.MatchRecord]()
		}
	})
	return matchRecordRepository
}

package repository

import (
	"sync"

	"veriface.io/entities"
	"veriface.io/infrastructure/database/connection/datastore"
	"veriface.io/infrastructure/database/repository/memory"
	"veriface.io/infrastructure/database/repository/mongo"
)

var documentRecordOnce = sync.Once{}

var documentRecordRepository RecordStore[entities.DocumentRecord]

func DocumentRecordRepo() RecordStore[entities.DocumentRecord] {
	documentRecordOnce.Do(func() {
		if datastore.Available() {
			documentRecordRepository = &mongo.MongoRepository[entities.DocumentRecord]{Model: datastore.DocumentRecordModel}
		} else {
			documentRecordRepository = memory.NewMemoryRepository[entities.DocumentRecord]()
		}
	})
	return documentRecordRepository
}

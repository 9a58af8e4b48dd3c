package repository

import (
	"sync"

	"veriface.io/entities"
	"veriface.io/infrastructure/database/connection/datastore"
	"veriface.io/infrastructure/database/repository/memory"
	"veriface.io/infrastructure/database/repository/mongo"
)

var livenessRecordOnce = sync.Once{}

var livenessRecordRepository RecordStore[entities.LivenessRecord]

func LivenessRecordRepo() RecordStore[entities.LivenessRecord] {
	livenessRecordOnce.Do(func() {
		if datastore.Available() {
			livenessRecordRepository = &mongo.MongoRepository[entities.LivenessRecord]{Model: datastore.LivenessRecordModel}
		} else {
			livenessRecordRepository = memory.NewMemoryRepository[entities.LivenessRecord]()
		}
	})
	return livenessRecordRepository
}

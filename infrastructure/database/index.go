package database

import "veriface.io/infrastructure/database/connection"

func SetUpDatabase() {
	connection.ConnectToDatabase()
}

type BaseModel interface {
	ParseModel() any
}

// Record is a BaseModel whose identifier can be read back after parsing.
// Every persisted verification record satisfies it.
type Record interface {
	BaseModel
	RecordID() string
}

package datastore

import (
	"context"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"veriface.io/infrastructure/logger"
)

var (
	DocumentRecordModel *mongo.Collection
	LivenessRecordModel *mongo.Collection
	MatchRecordModel    *mongo.Collection
)

var dbCancel *context.CancelFunc

func ConnectToDatabase() {
	dbCancel = connectMongo()
}

func CleanUp() {
	if dbCancel != nil {
		(*dbCancel)()
	}
}

// Available reports whether a datastore connection was established. When it
// is false, repositories fall back to the in-memory store.
func Available() bool {
	return DocumentRecordModel != nil
}

func connectMongo() *context.CancelFunc {
	url := os.Getenv("DB_URL")

	if url == "" {
		logger.Warning("mongo url missing, falling back to in-memory record store")
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)

	clientOpts := options.Client().ApplyURI(url)
	clientOpts.SetMinPoolSize(5)
	clientOpts.SetMaxPoolSize(10)

	client, err := mongo.Connect(ctx, clientOpts)

	if err != nil {
		logger.Warning("an error occured while starting the database", logger.LoggerOptions{Key: "error", Data: err})
		return &cancel
	}

	db := client.Database(os.Getenv("DB_NAME"))
	setUpIndexes(ctx, db)

	logger.Info("connected to mongodb successfully")
	return &cancel
}

// Set up the indexes for the database
func setUpIndexes(ctx context.Context, db *mongo.Database) {
	DocumentRecordModel = db.Collection("DocumentRecords")
	DocumentRecordModel.Indexes().CreateMany(ctx, []mongo.IndexModel{{
		Keys:    bson.D{{Key: "createdAt", Value: 1}},
		Options: options.Index(),
	}, {
		Keys:    bson.D{{Key: "status", Value: 1}},
		Options: options.Index(),
	}})

	LivenessRecordModel = db.Collection("LivenessRecords")
	LivenessRecordModel.Indexes().CreateMany(ctx, []mongo.IndexModel{{
		Keys:    bson.D{{Key: "createdAt", Value: 1}},
		Options: options.Index(),
	}})

	MatchRecordModel = db.Collection("MatchRecords")
	MatchRecordModel.Indexes().CreateMany(ctx, []mongo.IndexModel{{
		Keys:    bson.D{{Key: "documentID", Value: 1}},
		Options: options.Index(),
	}, {
		Keys:    bson.D{{Key: "livenessID", Value: 1}},
		Options: options.Index(),
	}})

	logger.Info("mongodb indexes set up successfully")
}

package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"veriface.io/infrastructure/logger"
)

// CreateOne inserts a parsed model as a single atomic write. The record is
// either fully visible with its identifier or not visible at all.
func (repo *MongoRepository[T]) CreateOne(ctx context.Context, payload T) (*T, error) {
	parsed := payload.ParseModel().(*T)
	_, err := repo.Model.InsertOne(ctx, parsed)
	if err != nil {
		logger.Error("an error occured while creating record", logger.LoggerOptions{
			Key:  "error",
			Data: err,
		}, logger.LoggerOptions{
			Key:  "collection",
			Data: repo.Model.Name(),
		})
		return nil, err
	}
	return parsed, nil
}

// FindByID returns the record with the given identifier, or nil when no
// such record exists.
func (repo *MongoRepository[T]) FindByID(ctx context.Context, id string) (*T, error) {
	var result T
	err := repo.Model.FindOne(ctx, bson.M{"_id": id}).Decode(&result)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		logger.Error("an error occured while fetching record by id", logger.LoggerOptions{
			Key:  "error",
			Data: err,
		}, logger.LoggerOptions{
			Key:  "id",
			Data: id,
		})
		return nil, err
	}
	return &result, nil
}

func (repo *MongoRepository[T]) CountDocs(ctx context.Context, filter map[string]interface{}) (int64, error) {
	count, err := repo.Model.CountDocuments(ctx, filter)
	if err != nil {
		logger.Error("an error occured while counting records", logger.LoggerOptions{
			Key:  "error",
			Data: err,
		})
		return 0, err
	}
	return count, nil
}

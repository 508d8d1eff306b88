package sensorRepo

import (
	"context"
	"fmt"
	"time"

	"neuroglove/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoSensorDataRepo implements SensorDataRepository using MongoDB.
type MongoSensorDataRepo struct {
	coll *mongo.Collection
}

// NewMongoSensorDataRepo creates a new instance of SensorDataRepository using MongoDB.
func NewMongoSensorDataRepo(db *mongo.Database) SensorDataRepository {
	repo := &MongoSensorDataRepo{coll: db.Collection("sensor_data")}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create sensor data indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoSensorDataRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "userId", Value: 1}, {Key: "deviceId", Value: 1}, {Key: "timestamp", Value: -1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Insert appends a reading.
func (r *MongoSensorDataRepo) Insert(data *models.SensorData) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, data); err != nil {
		return fmt.Errorf("failed to insert sensor data: %w", err)
	}
	return nil
}

// Latest retrieves up to limit readings for a user's device, newest first.
func (r *MongoSensorDataRepo) Latest(userID, deviceID string, limit int64) ([]models.SensorData, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{"userId": userID, "deviceId": deviceID}
	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetLimit(limit)

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve sensor data: %w", err)
	}
	defer cursor.Close(ctx)

	readings := []models.SensorData{}
	for cursor.Next(ctx) {
		var d models.SensorData
		if err := cursor.Decode(&d); err != nil {
			return nil, fmt.Errorf("failed to decode sensor data: %w", err)
		}
		readings = append(readings, d)
	}
	return readings, nil
}

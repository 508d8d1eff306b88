package deviceRepo

import (
	"context"
	"fmt"
	"time"

	"neuroglove/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoDeviceRepo implements DeviceRepository using MongoDB.
type MongoDeviceRepo struct {
	coll *mongo.Collection
}

// NewMongoDeviceRepo creates a new instance of DeviceRepository using MongoDB.
func NewMongoDeviceRepo(db *mongo.Database) DeviceRepository {
	repo := &MongoDeviceRepo{coll: db.Collection("devices")}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create device indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoDeviceRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "deviceId", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Upsert saves a device pairing keyed by (userId, deviceId).
func (r *MongoDeviceRepo) Upsert(device *models.BluetoothDevice) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"userId": device.UserID, "deviceId": device.DeviceID}
	update := bson.M{
		"$set": bson.M{
			"deviceName":  device.DeviceName,
			"connectedAt": device.ConnectedAt,
		},
		"$setOnInsert": bson.M{
			"id":       device.ID,
			"userId":   device.UserID,
			"deviceId": device.DeviceID,
		},
	}
	opts := options.Update().SetUpsert(true)
	if _, err := r.coll.UpdateOne(ctx, filter, update, opts); err != nil {
		return fmt.Errorf("failed to upsert device: %w", err)
	}
	return nil
}

// ListByUser retrieves all devices paired by a user.
func (r *MongoDeviceRepo) ListByUser(userID string) ([]models.BluetoothDevice, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"userId": userID})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve devices: %w", err)
	}
	defer cursor.Close(ctx)

	devices := []models.BluetoothDevice{}
	for cursor.Next(ctx) {
		var d models.BluetoothDevice
		if err := cursor.Decode(&d); err != nil {
			return nil, fmt.Errorf("failed to decode device: %w", err)
		}
		devices = append(devices, d)
	}
	return devices, nil
}

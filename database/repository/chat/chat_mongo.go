package chatRepo

import (
	"context"
	"fmt"
	"time"

	"neuroglove/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoChatRepo implements ChatRepository using MongoDB.
type MongoChatRepo struct {
	coll *mongo.Collection
}

// NewMongoChatRepo creates a new instance of ChatRepository using MongoDB.
func NewMongoChatRepo(db *mongo.Database) ChatRepository {
	return &MongoChatRepo{coll: db.Collection("chat_history")}
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// Insert appends one assistant exchange.
func (r *MongoChatRepo) Insert(msg *models.ChatMessage) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, msg); err != nil {
		return fmt.Errorf("failed to insert chat message: %w", err)
	}
	return nil
}

// History retrieves up to limit exchanges for a user, newest first.
func (r *MongoChatRepo) History(userID string, limit int64) ([]models.ChatMessage, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetLimit(limit)

	cursor, err := r.coll.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve chat history: %w", err)
	}
	defer cursor.Close(ctx)

	history := []models.ChatMessage{}
	for cursor.Next(ctx) {
		var m models.ChatMessage
		if err := cursor.Decode(&m); err != nil {
			return nil, fmt.Errorf("failed to decode chat message: %w", err)
		}
		history = append(history, m)
	}
	return history, nil
}

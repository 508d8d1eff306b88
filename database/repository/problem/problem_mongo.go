package problemRepo

import (
	"context"
	"fmt"
	"time"

	"neuroglove/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// MongoProblemRepo implements ProblemRepository using MongoDB.
type MongoProblemRepo struct {
	coll *mongo.Collection
}

// NewMongoProblemRepo creates a new instance of ProblemRepository using MongoDB.
func NewMongoProblemRepo(db *mongo.Database) ProblemRepository {
	return &MongoProblemRepo{coll: db.Collection("problems")}
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// Insert stores a new problem report.
func (r *MongoProblemRepo) Insert(problem *models.Problem) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, problem); err != nil {
		return fmt.Errorf("failed to insert problem report: %w", err)
	}
	return nil
}

// File: database/repository/coach/coach_mongo.go
package coachRepo

import (
	"context"
	"fmt"
	"time"

	"coachify/config"
	"coachify/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type mongoCoachRepo struct {
	coll *mongo.Collection
	now  func() time.Time
}

// NewMongoCoachRepo constructs a MongoDB CoachRepository. The clock is
// injected so expiry pruning is deterministic under test.
func NewMongoCoachRepo(now func() time.Time) CoachRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	r := &mongoCoachRepo{
		coll: db.Collection("coaches"),
		now:  now,
	}
	if err := r.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return r
}

// ensureIndexes creates indexes for fields frequently used in queries.
func (r *mongoCoachRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "name", Value: 1}}, Options: options.Index().SetUnique(true)},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

func (r *mongoCoachRepo) today() string {
	return r.now().Format("2006-01-02")
}

// pruneExpired drops date entries strictly before today. It runs ahead
// of every mutation, standing in for the original pre-save hook.
func (r *mongoCoachRepo) pruneExpired(ctx context.Context, coachID string) error {
	filter := bson.M{"id": coachID}
	update := bson.M{"$pull": bson.M{"dates": bson.M{"date": bson.M{"$lt": r.today()}}}}
	_, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to prune expired dates for coach %s: %w", coachID, err)
	}
	return nil
}

func newContext(d time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), d)
}

// File: database/repository/coach/crud.go
package coachRepo

import (
	"context"
	"fmt"
	"time"

	"coachify/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Create inserts a new coach document with an empty date list.
func (r *mongoCoachRepo) Create(ctx context.Context, coach *models.Coach) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if coach.ID == "" {
		coach.ID = uuid.New().String()
	}
	if coach.Dates == nil {
		coach.Dates = []models.CoachDate{}
	}
	now := r.now()
	coach.CreatedAt = now
	coach.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, coach); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return err
		}
		return fmt.Errorf("failed to create coach: %w", err)
	}
	return nil
}

// Update applies a partial name/description change and returns the new document.
func (r *mongoCoachRepo) Update(ctx context.Context, id string, name, description *string) (*models.Coach, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := r.pruneExpired(ctx, id); err != nil {
		return nil, err
	}

	set := bson.M{"updated_at": r.now()}
	if name != nil {
		set["name"] = *name
	}
	if description != nil {
		set["description"] = *description
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var coach models.Coach
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"id": id}, bson.M{"$set": set}, opts).Decode(&coach)
	if err != nil {
		return nil, err
	}
	return &coach, nil
}

// Delete removes a coach document and returns what was deleted.
func (r *mongoCoachRepo) Delete(ctx context.Context, id string) (*models.Coach, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var coach models.Coach
	err := r.coll.FindOneAndDelete(ctx, bson.M{"id": id}).Decode(&coach)
	if err != nil {
		return nil, err
	}
	return &coach, nil
}

func (r *mongoCoachRepo) GetByID(ctx context.Context, id string) (*models.Coach, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var coach models.Coach
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&coach)
	if err != nil {
		return nil, err
	}
	return &coach, nil
}

func (r *mongoCoachRepo) GetByName(ctx context.Context, name string) (*models.Coach, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var coach models.Coach
	err := r.coll.FindOne(ctx, bson.M{"name": name}).Decode(&coach)
	if err != nil {
		return nil, err
	}
	return &coach, nil
}

func (r *mongoCoachRepo) GetAll(ctx context.Context) ([]models.Coach, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list coaches: %w", err)
	}
	defer cursor.Close(ctx)

	var coaches []models.Coach
	if err := cursor.All(ctx, &coaches); err != nil {
		return nil, err
	}
	return coaches, nil
}

// File: database/repository/booking/crud.go
package bookingRepo

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

// Create inserts a new booking request document.
func (r *mongoBookingRepo) Create(ctx context.Context, req *models.BookingRequest) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if req.ID == "" {
		req.ID = uuid.New().String()
	}
	now := time.Now()
	req.CreatedAt = now
	req.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, req); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return err
		}
		return fmt.Errorf("failed to create booking request: %w", err)
	}
	return nil
}

func (r *mongoBookingRepo) GetByID(ctx context.Context, id string) (*models.BookingRequest, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var req models.BookingRequest
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&req); err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *mongoBookingRepo) GetAll(ctx context.Context) ([]models.BookingRequest, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list booking requests: %w", err)
	}
	defer cursor.Close(ctx)

	var reqs []models.BookingRequest
	if err := cursor.All(ctx, &reqs); err != nil {
		return nil, err
	}
	return reqs, nil
}

// Update applies a partial edit and returns the new document.
func (r *mongoBookingRepo) Update(ctx context.Context, id string, updates models.BookingUpdate) (*models.BookingRequest, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	set := bson.M{"updated_at": time.Now()}
	if updates.Name != nil {
		set["name"] = *updates.Name
	}
	if updates.Email != nil {
		set["email"] = *updates.Email
	}
	if updates.Date != nil {
		set["date"] = *updates.Date
	}
	if updates.Time != nil {
		set["time"] = updates.Time
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var req models.BookingRequest
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"id": id}, bson.M{"$set": set}, opts).Decode(&req)
	if err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *mongoBookingRepo) Delete(ctx context.Context, id string) (*models.BookingRequest, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var req models.BookingRequest
	if err := r.coll.FindOneAndDelete(ctx, bson.M{"id": id}).Decode(&req); err != nil {
		return nil, err
	}
	return &req, nil
}

// SetRangeApproval flips one range's flag and overwrites the request-wide
// status in a single document update.
func (r *mongoBookingRepo) SetRangeApproval(ctx context.Context, id string, rangeIndex int, flag bool, status string) (*models.BookingRequest, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	set := bson.M{
		fmt.Sprintf("time.%d.flag", rangeIndex): flag,
		"status":     status,
		"updated_at": time.Now(),
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var req models.BookingRequest
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"id": id}, bson.M{"$set": set}, opts).Decode(&req)
	if err != nil {
		return nil, err
	}
	return &req, nil
}

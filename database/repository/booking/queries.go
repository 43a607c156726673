// File: database/repository/booking/queries.go
package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"coachify/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// searchFilter builds the search query. A term naming a status filters by
// status, anything else becomes a case-insensitive name substring match.
// The status check comes first; that ordering is part of the contract.
func searchFilter(term string) bson.M {
	if models.IsStatus(term) {
		return bson.M{"status": bson.M{"$regex": term, "$options": "i"}}
	}
	return bson.M{"name": bson.M{"$regex": term, "$options": "i"}}
}

func (r *mongoBookingRepo) Search(ctx context.Context, term string) ([]models.BookingRequest, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, searchFilter(term))
	if err != nil {
		return nil, fmt.Errorf("failed to search booking requests: %w", err)
	}
	defer cursor.Close(ctx)

	var reqs []models.BookingRequest
	if err := cursor.All(ctx, &reqs); err != nil {
		return nil, err
	}
	return reqs, nil
}

func (r *mongoBookingRepo) Count(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	return r.coll.CountDocuments(ctx, bson.M{}, options.Count())
}

func (r *mongoBookingRepo) CountByStatus(ctx context.Context, status string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	return r.coll.CountDocuments(ctx, bson.M{"status": status})
}

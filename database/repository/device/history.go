// File: database/repository/device/history.go
package deviceRepo

import (
	"context"
	"fmt"
	"time"

	"coachify/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreateRecords inserts one history row per delivered token.
func (r *mongoDeviceRepo) CreateRecords(ctx context.Context, records []models.NotificationRecord) error {
	if len(records) == 0 {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	docs := make([]interface{}, len(records))
	for i, rec := range records {
		if rec.ID == "" {
			rec.ID = uuid.New().String()
		}
		if rec.SentAt.IsZero() {
			rec.SentAt = time.Now()
		}
		docs[i] = rec
	}

	if _, err := r.history.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("failed to save notification history: %w", err)
	}
	return nil
}

func (r *mongoDeviceRepo) ListByUser(ctx context.Context, userID string) ([]models.NotificationRecord, error) {
	return r.listHistory(ctx, bson.M{"user_id": userID})
}

func (r *mongoDeviceRepo) ListUnreadByUser(ctx context.Context, userID string) ([]models.NotificationRecord, error) {
	return r.listHistory(ctx, bson.M{"user_id": userID, "read": false})
}

func (r *mongoDeviceRepo) ListAll(ctx context.Context) ([]models.NotificationRecord, error) {
	return r.listHistory(ctx, bson.M{})
}

// MarkRead flags a history record as read and returns the new document.
func (r *mongoDeviceRepo) MarkRead(ctx context.Context, recordID string) (*models.NotificationRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var rec models.NotificationRecord
	err := r.history.FindOneAndUpdate(ctx,
		bson.M{"id": recordID},
		bson.M{"$set": bson.M{"read": true}},
		opts,
	).Decode(&rec)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *mongoDeviceRepo) listHistory(ctx context.Context, filter bson.M) ([]models.NotificationRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "sent_at", Value: -1}})
	cursor, err := r.history.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list notification history: %w", err)
	}
	defer cursor.Close(ctx)

	var records []models.NotificationRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}

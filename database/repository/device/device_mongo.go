// File: database/repository/device/device_mongo.go
package deviceRepo

import (
	"context"
	"fmt"
	"time"

	"coachify/config"
	"coachify/database"
	"coachify/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type mongoDeviceRepo struct {
	devices *mongo.Collection
	history *mongo.Collection
}

// NewMongoDeviceRepo constructs a MongoDB DeviceRepository.
func NewMongoDeviceRepo() DeviceRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	r := &mongoDeviceRepo{
		devices: db.Collection("devices"),
		history: db.Collection("notification_history"),
	}
	if err := r.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return r
}

func (r *mongoDeviceRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := r.devices.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "fcm_token", Value: 1}}, Options: options.Index().SetUnique(true)},
	})
	if err != nil {
		return fmt.Errorf("failed to create device indexes: %w", err)
	}

	_, err = r.history.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "sent_at", Value: -1}}},
	})
	if err != nil {
		return fmt.Errorf("failed to create history indexes: %w", err)
	}
	return nil
}

// SaveToken registers a device token, returning the existing record when
// the token is already known.
func (r *mongoDeviceRepo) SaveToken(ctx context.Context, device *models.Device) (*models.Device, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var existing models.Device
	err := r.devices.FindOne(ctx, bson.M{"fcm_token": device.FCMToken}).Decode(&existing)
	if err == nil {
		return &existing, nil
	}
	if err != mongo.ErrNoDocuments {
		return nil, fmt.Errorf("failed to look up device token: %w", err)
	}

	if device.ID == "" {
		device.ID = uuid.New().String()
	}
	device.LastActive = time.Now()
	if _, err := r.devices.InsertOne(ctx, device); err != nil {
		return nil, fmt.Errorf("failed to save device token: %w", err)
	}
	return device, nil
}

func (r *mongoDeviceRepo) GetAll(ctx context.Context) ([]models.Device, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.devices.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list devices: %w", err)
	}
	defer cursor.Close(ctx)

	var devices []models.Device
	if err := cursor.All(ctx, &devices); err != nil {
		return nil, err
	}
	return devices, nil
}

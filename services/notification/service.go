// File: services/notification/service.go
package notification

import (
	"context"
	"errors"
	"fmt"

	deviceRepo "coachify/database/repository/device"
	"coachify/models"
	"coachify/utils"

	"firebase.google.com/go/v4/messaging"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// FCM multicast caps at 500 tokens per call; we batch well below that.
const chunkSize = 200

// DefaultNotificationService is the production implementation.
type DefaultNotificationService struct {
	Repo   deviceRepo.DeviceRepository
	Client Messenger
}

// RegisterDevice stores the FCM token a client presents on login.
// Registering a token twice returns the existing record.
func (s *DefaultNotificationService) RegisterDevice(ctx context.Context, userID, username, email, fcmToken string) (*models.Device, error) {
	if fcmToken == "" {
		return nil, utils.NewValidation("FCM token is required")
	}
	device := &models.Device{
		UserID:   userID,
		Username: username,
		Email:    email,
		FCMToken: fcmToken,
	}
	return s.Repo.SaveToken(ctx, device)
}

// SendCustom broadcasts a push to every registered device in chunks and
// records one history row per token. Partial FCM failures are counted,
// not retried.
func (s *DefaultNotificationService) SendCustom(ctx context.Context, title, description, contentURL string) (*models.SendResult, error) {
	devices, err := s.Repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load devices: %w", err)
	}

	var targets []models.Device
	for _, d := range devices {
		if d.FCMToken != "" {
			targets = append(targets, d)
		}
	}
	result := &models.SendResult{Devices: len(targets)}
	if len(targets) == 0 {
		return result, nil
	}

	logger := utils.GetLogger()
	for start := 0; start < len(targets); start += chunkSize {
		end := start + chunkSize
		if end > len(targets) {
			end = len(targets)
		}
		batch := targets[start:end]

		tokens := make([]string, len(batch))
		for i, d := range batch {
			tokens[i] = d.FCMToken
		}

		msg := &messaging.MulticastMessage{
			Notification: &messaging.Notification{
				Title: title,
				Body:  description,
			},
			Tokens: tokens,
		}
		resp, err := s.Client.SendEachForMulticast(ctx, msg)
		if err != nil {
			return nil, fmt.Errorf("failed to send FCM multicast: %w", err)
		}
		result.SuccessCount += resp.SuccessCount
		result.FailureCount += resp.FailureCount

		records := make([]models.NotificationRecord, len(batch))
		for i, d := range batch {
			records[i] = models.NotificationRecord{
				UserID:      d.UserID,
				Title:       title,
				Description: description,
				FCMToken:    d.FCMToken,
				ContentURL:  contentURL,
			}
		}
		if err := s.Repo.CreateRecords(ctx, records); err != nil {
			logger.Error("failed to persist notification history", zap.Error(err))
		}
	}

	return result, nil
}

func (s *DefaultNotificationService) GetForUser(ctx context.Context, userID string) ([]models.NotificationRecord, error) {
	return s.Repo.ListByUser(ctx, userID)
}

func (s *DefaultNotificationService) GetUnreadForUser(ctx context.Context, userID string) ([]models.NotificationRecord, error) {
	return s.Repo.ListUnreadByUser(ctx, userID)
}

func (s *DefaultNotificationService) MarkRead(ctx context.Context, recordID string) (*models.NotificationRecord, error) {
	rec, err := s.Repo.MarkRead(ctx, recordID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, utils.NewNotFound("Notification not found")
		}
		return nil, err
	}
	return rec, nil
}

func (s *DefaultNotificationService) GetAllForAdmin(ctx context.Context) ([]models.NotificationRecord, error) {
	return s.Repo.ListAll(ctx)
}

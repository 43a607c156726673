// File: services/notification/interface.go
package notification

import (
	"context"

	"coachify/models"

	"firebase.google.com/go/v4/messaging"
)

// NotificationService registers device tokens, broadcasts FCM pushes and
// serves the notification history.
type NotificationService interface {
	RegisterDevice(ctx context.Context, userID, username, email, fcmToken string) (*models.Device, error)
	SendCustom(ctx context.Context, title, description, contentURL string) (*models.SendResult, error)

	GetForUser(ctx context.Context, userID string) ([]models.NotificationRecord, error)
	GetUnreadForUser(ctx context.Context, userID string) ([]models.NotificationRecord, error)
	MarkRead(ctx context.Context, recordID string) (*models.NotificationRecord, error)
	GetAllForAdmin(ctx context.Context) ([]models.NotificationRecord, error)
}

// Messenger is the slice of the FCM client the service uses; it keeps
// the transport swappable under test.
type Messenger interface {
	SendEachForMulticast(ctx context.Context, message *messaging.MulticastMessage) (*messaging.BatchResponse, error)
}

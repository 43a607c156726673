// File: database/repository/device/interface.go
package deviceRepo

import (
	"context"

	"coachify/models"
)

// DeviceRepository stores registered FCM tokens and the per-token
// history of pushes sent to them.
type DeviceRepository interface {
	SaveToken(ctx context.Context, device *models.Device) (*models.Device, error)
	GetAll(ctx context.Context) ([]models.Device, error)

	CreateRecords(ctx context.Context, records []models.NotificationRecord) error
	ListByUser(ctx context.Context, userID string) ([]models.NotificationRecord, error)
	ListUnreadByUser(ctx context.Context, userID string) ([]models.NotificationRecord, error)
	MarkRead(ctx context.Context, recordID string) (*models.NotificationRecord, error)
	ListAll(ctx context.Context) ([]models.NotificationRecord, error)
}

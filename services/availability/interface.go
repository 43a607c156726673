// File: services/availability/interface.go
package availability

import (
	"context"

	"coachify/models"
)

// AvailabilityService manages coaches and their per-date slot sets.
type AvailabilityService interface {
	CreateCoach(ctx context.Context, name, description string) (*models.Coach, error)
	UpdateCoach(ctx context.Context, coachID string, name, description *string) (*models.Coach, error)
	DeleteCoach(ctx context.Context, coachID string) (*models.Coach, error)
	GetAllCoaches(ctx context.Context) ([]models.Coach, error)
	GetCoachByID(ctx context.Context, coachID string) (*models.Coach, error)

	AddDate(ctx context.Context, coachID, date string) (*models.Coach, error)
	UpdateSlot(ctx context.Context, coachID, date string, updates models.SlotUpdates) (*models.Coach, error)
	DeleteSlot(ctx context.Context, coachID, date, slotKey string) (*models.Coach, error)
	ToggleSlotFlag(ctx context.Context, coachID, date, slotKey string) (*models.Coach, error)
	GetSlotsByDate(ctx context.Context, coachID, date string) (*models.CoachDate, error)
}

// File: database/repository/coach/interface.go
package coachRepo

import (
	"context"

	"coachify/models"
)

// CoachRepository persists coaches and their date-keyed slot sets.
// Each mutation is a single atomic document update; expired dates
// (date < today) are pruned as a pre-write step on every mutation.
type CoachRepository interface {
	Create(ctx context.Context, coach *models.Coach) error
	Update(ctx context.Context, id string, name, description *string) (*models.Coach, error)
	Delete(ctx context.Context, id string) (*models.Coach, error)
	GetByID(ctx context.Context, id string) (*models.Coach, error)
	GetByName(ctx context.Context, name string) (*models.Coach, error)
	GetAll(ctx context.Context) ([]models.Coach, error)

	// Date and slot operations. All return the updated coach document,
	// or mongo.ErrNoDocuments when the coach/date filter matched nothing.
	PushDate(ctx context.Context, coachID string, entry models.CoachDate) (*models.Coach, error)
	SetSlots(ctx context.Context, coachID, date string, updates models.SlotUpdates) (*models.Coach, error)
	ClearSlot(ctx context.Context, coachID, date, slotKey string) (*models.Coach, error)
	PullDate(ctx context.Context, coachID, date string) (*models.Coach, error)
	SetSlotFlag(ctx context.Context, coachID, date, slotKey string, flag int) (*models.Coach, error)
}

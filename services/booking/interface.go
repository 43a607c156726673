// File: services/booking/interface.go
package booking

import (
	"context"

	"coachify/models"
)

// BookingService manages booking requests and the approval workflow.
type BookingService interface {
	Create(ctx context.Context, name, email, date string, ranges []string) (*models.BookingRequest, error)
	GetAll(ctx context.Context) ([]models.BookingRequest, error)
	GetByID(ctx context.Context, id string) (*models.BookingRequest, error)
	Update(ctx context.Context, id string, updates models.BookingUpdate) (*models.BookingRequest, error)
	Delete(ctx context.Context, id string) (*models.BookingRequest, error)

	UpdateSlotStatus(ctx context.Context, id, rangeLabel, action string) (*models.BookingRequest, error)
	Search(ctx context.Context, term string) ([]models.BookingRequest, error)
	Stats(ctx context.Context) (*models.CoachingStats, error)
}

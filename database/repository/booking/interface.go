// File: database/repository/booking/interface.go
package bookingRepo

import (
	"context"

	"coachify/models"
)

// BookingRepository persists booking requests. Email carries a unique
// index, so a duplicate insert surfaces as a driver duplicate-key error.
type BookingRepository interface {
	Create(ctx context.Context, req *models.BookingRequest) error
	GetByID(ctx context.Context, id string) (*models.BookingRequest, error)
	GetAll(ctx context.Context) ([]models.BookingRequest, error)
	Update(ctx context.Context, id string, updates models.BookingUpdate) (*models.BookingRequest, error)
	Delete(ctx context.Context, id string) (*models.BookingRequest, error)

	// SetRangeApproval atomically writes one range's flag together with
	// the request-wide status.
	SetRangeApproval(ctx context.Context, id string, rangeIndex int, flag bool, status string) (*models.BookingRequest, error)

	Search(ctx context.Context, term string) ([]models.BookingRequest, error)
	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status string) (int64, error)
}

// File: services/booking/service.go
package booking

import (
	"context"
	"errors"

	bookingRepo "coachify/database/repository/booking"
	"coachify/models"
	"coachify/utils"

	"go.mongodb.org/mongo-driver/mongo"
)

// DefaultBookingService is the production implementation.
type DefaultBookingService struct {
	Repo bookingRepo.BookingRepository
}

// Create stores a new request with status PENDING and every range unapproved.
func (s *DefaultBookingService) Create(ctx context.Context, name, email, date string, ranges []string) (*models.BookingRequest, error) {
	if len(ranges) == 0 {
		return nil, utils.NewValidation("At least one time range is required")
	}

	timeRanges := make([]models.TimeRange, len(ranges))
	for i, r := range ranges {
		timeRanges[i] = models.TimeRange{Range: r}
	}

	req := &models.BookingRequest{
		Name:   name,
		Email:  email,
		Date:   date,
		Time:   timeRanges,
		Status: models.StatusPending,
	}
	if err := s.Repo.Create(ctx, req); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, utils.NewConflict("A booking request with this email already exists")
		}
		return nil, err
	}
	return req, nil
}

func (s *DefaultBookingService) GetAll(ctx context.Context) ([]models.BookingRequest, error) {
	return s.Repo.GetAll(ctx)
}

func (s *DefaultBookingService) GetByID(ctx context.Context, id string) (*models.BookingRequest, error) {
	req, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, utils.NewNotFound("Booking request not found")
		}
		return nil, err
	}
	return req, nil
}

func (s *DefaultBookingService) Update(ctx context.Context, id string, updates models.BookingUpdate) (*models.BookingRequest, error) {
	req, err := s.Repo.Update(ctx, id, updates)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, utils.NewNotFound("Booking request not found")
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, utils.NewConflict("A booking request with this email already exists")
		}
		return nil, err
	}
	return req, nil
}

func (s *DefaultBookingService) Delete(ctx context.Context, id string) (*models.BookingRequest, error) {
	req, err := s.Repo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, utils.NewNotFound("Booking request not found")
		}
		return nil, err
	}
	return req, nil
}

func (s *DefaultBookingService) Search(ctx context.Context, term string) ([]models.BookingRequest, error) {
	return s.Repo.Search(ctx, term)
}

func (s *DefaultBookingService) Stats(ctx context.Context) (*models.CoachingStats, error) {
	total, err := s.Repo.Count(ctx)
	if err != nil {
		return nil, err
	}
	approved, err := s.Repo.CountByStatus(ctx, models.StatusApproved)
	if err != nil {
		return nil, err
	}
	denied, err := s.Repo.CountByStatus(ctx, models.StatusDenied)
	if err != nil {
		return nil, err
	}
	return &models.CoachingStats{
		TotalUsers:    total,
		TotalApproved: approved,
		TotalDenied:   denied,
	}, nil
}

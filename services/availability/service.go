// File: services/availability/service.go
package availability

import (
	"context"
	"errors"
	"fmt"

	coachRepo "coachify/database/repository/coach"
	"coachify/models"
	"coachify/utils"

	"go.mongodb.org/mongo-driver/mongo"
)

// DefaultAvailabilityService is the production implementation.
type DefaultAvailabilityService struct {
	Repo coachRepo.CoachRepository
}

// CreateCoach creates a coach with an empty date list. The name check is
// read-then-insert; the unique index backstops the race between two
// concurrent creates.
func (s *DefaultAvailabilityService) CreateCoach(ctx context.Context, name, description string) (*models.Coach, error) {
	_, err := s.Repo.GetByName(ctx, name)
	if err == nil {
		return nil, utils.NewConflict("Coach already exists")
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("failed to check coach name: %w", err)
	}

	coach := &models.Coach{Name: name, Description: description}
	if err := s.Repo.Create(ctx, coach); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, utils.NewConflict("Coach already exists")
		}
		return nil, err
	}
	return coach, nil
}

func (s *DefaultAvailabilityService) UpdateCoach(ctx context.Context, coachID string, name, description *string) (*models.Coach, error) {
	coach, err := s.Repo.Update(ctx, coachID, name, description)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, utils.NewNotFound("Coach not found")
		}
		return nil, err
	}
	return coach, nil
}

func (s *DefaultAvailabilityService) DeleteCoach(ctx context.Context, coachID string) (*models.Coach, error) {
	coach, err := s.Repo.Delete(ctx, coachID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, utils.NewNotFound("Coach not found")
		}
		return nil, err
	}
	return coach, nil
}

func (s *DefaultAvailabilityService) GetAllCoaches(ctx context.Context) ([]models.Coach, error) {
	return s.Repo.GetAll(ctx)
}

func (s *DefaultAvailabilityService) GetCoachByID(ctx context.Context, coachID string) (*models.Coach, error) {
	coach, err := s.Repo.GetByID(ctx, coachID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, utils.NewNotFound("Coach not found")
		}
		return nil, err
	}
	return coach, nil
}

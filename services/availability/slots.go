// File: services/availability/slots.go
package availability

import (
	"context"
	"errors"
	"fmt"

	"coachify/models"
	"coachify/utils"

	"go.mongodb.org/mongo-driver/mongo"
)

// AddDate appends a CoachDate with the three default slots. The
// existence check and the push are separate document operations, so two
// concurrent adds of the same date can race; that matches the store's
// single-document atomicity and is accepted.
func (s *DefaultAvailabilityService) AddDate(ctx context.Context, coachID, date string) (*models.Coach, error) {
	coach, err := s.Repo.GetByID(ctx, coachID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, utils.NewNotFound("Coach not found")
		}
		return nil, err
	}
	if coach.FindDate(date) != nil {
		return nil, utils.NewConflict("Date already exists")
	}

	slot1, slot2, slot3 := models.DefaultSlots()
	entry := models.CoachDate{Date: date, Slot1: slot1, Slot2: slot2, Slot3: slot3}

	updated, err := s.Repo.PushDate(ctx, coachID, entry)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, utils.NewNotFound("Coach not found")
		}
		return nil, err
	}
	return updated, nil
}

// UpdateSlot replaces the named slot sub-documents in place for the
// matching date; omitted fields are untouched.
func (s *DefaultAvailabilityService) UpdateSlot(ctx context.Context, coachID, date string, updates models.SlotUpdates) (*models.Coach, error) {
	if updates.Slot1 == nil && updates.Slot2 == nil && updates.Slot3 == nil {
		return nil, utils.NewValidation("No slot updates provided")
	}

	coach, err := s.Repo.SetSlots(ctx, coachID, date, updates)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, utils.NewNotFound("Coach or date not found")
		}
		return nil, err
	}
	return coach, nil
}

// DeleteSlot sets the named slot to absent. When the other two slots are
// already absent the whole CoachDate is removed instead of leaving an
// empty shell.
func (s *DefaultAvailabilityService) DeleteSlot(ctx context.Context, coachID, date, slotKey string) (*models.Coach, error) {
	if !isSlotKey(slotKey) {
		return nil, utils.NewValidation(fmt.Sprintf("Invalid slot key %q", slotKey))
	}

	coach, err := s.Repo.GetByID(ctx, coachID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, utils.NewNotFound("Coach not found")
		}
		return nil, err
	}
	dateDoc := coach.FindDate(date)
	if dateDoc == nil {
		return nil, utils.NewNotFound("Date not found")
	}

	othersEmpty := true
	for _, key := range models.SlotKeys {
		if key == slotKey {
			continue
		}
		if dateDoc.SlotByKey(key) != nil {
			othersEmpty = false
			break
		}
	}

	var updated *models.Coach
	if othersEmpty {
		updated, err = s.Repo.PullDate(ctx, coachID, date)
	} else {
		updated, err = s.Repo.ClearSlot(ctx, coachID, date, slotKey)
	}
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, utils.NewNotFound("Coach or date not found")
		}
		return nil, err
	}
	return updated, nil
}

// ToggleSlotFlag flips the named slot between open (0) and blocked (1).
// The slot being absent is a not-found even when the date exists.
func (s *DefaultAvailabilityService) ToggleSlotFlag(ctx context.Context, coachID, date, slotKey string) (*models.Coach, error) {
	if !isSlotKey(slotKey) {
		return nil, utils.NewValidation(fmt.Sprintf("Invalid slot key %q", slotKey))
	}

	coach, err := s.Repo.GetByID(ctx, coachID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, utils.NewNotFound("Coach not found")
		}
		return nil, err
	}
	dateDoc := coach.FindDate(date)
	if dateDoc == nil {
		return nil, utils.NewNotFound("Date not found")
	}

	slot := dateDoc.SlotByKey(slotKey)
	if slot == nil {
		return nil, utils.NewNotFound(fmt.Sprintf("Slot %s not found for date %s", slotKey, date))
	}

	newFlag := 1
	if slot.Flag == 1 {
		newFlag = 0
	}

	updated, err := s.Repo.SetSlotFlag(ctx, coachID, date, slotKey, newFlag)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, utils.NewNotFound("Coach or date not found")
		}
		return nil, err
	}
	return updated, nil
}

// GetSlotsByDate returns the CoachDate sub-document for the given day.
func (s *DefaultAvailabilityService) GetSlotsByDate(ctx context.Context, coachID, date string) (*models.CoachDate, error) {
	coach, err := s.Repo.GetByID(ctx, coachID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, utils.NewNotFound("Coach not found")
		}
		return nil, err
	}
	dateDoc := coach.FindDate(date)
	if dateDoc == nil {
		return nil, utils.NewNotFound("Date not found")
	}
	return dateDoc, nil
}

func isSlotKey(key string) bool {
	for _, k := range models.SlotKeys {
		if k == key {
			return true
		}
	}
	return false
}

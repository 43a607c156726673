// File: services/booking/approval.go
package booking

import (
	"context"
	"errors"
	"strings"

	"coachify/models"
	"coachify/utils"

	"go.mongodb.org/mongo-driver/mongo"
)

// UpdateSlotStatus applies an admin approve/deny action to one range.
// The range's flag and the request-wide status are written together in a
// single document update. The status is request-wide on purpose: the
// latest action overwrites it, whatever earlier actions set, and nothing
// guards against re-flipping an already decided request.
func (s *DefaultBookingService) UpdateSlotStatus(ctx context.Context, id, rangeLabel, action string) (*models.BookingRequest, error) {
	action = strings.ToUpper(strings.TrimSpace(action))
	if action != models.StatusApproved && action != models.StatusDenied {
		return nil, utils.NewValidation("Action must be APPROVED or DENIED")
	}

	req, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, utils.NewNotFound("Booking request not found")
		}
		return nil, err
	}

	idx := -1
	want := strings.TrimSpace(rangeLabel)
	for i, tr := range req.Time {
		if strings.EqualFold(strings.TrimSpace(tr.Range), want) {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, utils.NewNotFound("Slot not found")
	}

	flag := action == models.StatusApproved
	updated, err := s.Repo.SetRangeApproval(ctx, id, idx, flag, action)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, utils.NewNotFound("Booking request not found")
		}
		return nil, err
	}
	return updated, nil
}

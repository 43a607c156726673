// File: database/repository/coach/slots.go
package coachRepo

import (
	"context"
	"time"

	"coachify/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// PushDate appends a new CoachDate entry to the coach's date list.
func (r *mongoCoachRepo) PushDate(ctx context.Context, coachID string, entry models.CoachDate) (*models.Coach, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := r.pruneExpired(ctx, coachID); err != nil {
		return nil, err
	}

	update := bson.M{
		"$push": bson.M{"dates": entry},
		"$set":  bson.M{"updated_at": r.now()},
	}
	return r.findOneAndUpdate(ctx, bson.M{"id": coachID}, update)
}

// SetSlots replaces the named slot sub-documents in place for the matching
// date. Fields absent from updates are left untouched.
func (r *mongoCoachRepo) SetSlots(ctx context.Context, coachID, date string, updates models.SlotUpdates) (*models.Coach, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := r.pruneExpired(ctx, coachID); err != nil {
		return nil, err
	}

	set := bson.M{"updated_at": r.now()}
	if updates.Slot1 != nil {
		set["dates.$.slot1"] = updates.Slot1
	}
	if updates.Slot2 != nil {
		set["dates.$.slot2"] = updates.Slot2
	}
	if updates.Slot3 != nil {
		set["dates.$.slot3"] = updates.Slot3
	}

	filter := bson.M{"id": coachID, "dates.date": date}
	return r.findOneAndUpdate(ctx, filter, bson.M{"$set": set})
}

// ClearSlot sets the named slot to absent for the matching date.
func (r *mongoCoachRepo) ClearSlot(ctx context.Context, coachID, date, slotKey string) (*models.Coach, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := r.pruneExpired(ctx, coachID); err != nil {
		return nil, err
	}

	filter := bson.M{"id": coachID, "dates.date": date}
	update := bson.M{
		"$unset": bson.M{"dates.$." + slotKey: ""},
		"$set":   bson.M{"updated_at": r.now()},
	}
	return r.findOneAndUpdate(ctx, filter, update)
}

// PullDate removes the whole CoachDate entry for the given day.
func (r *mongoCoachRepo) PullDate(ctx context.Context, coachID, date string) (*models.Coach, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := r.pruneExpired(ctx, coachID); err != nil {
		return nil, err
	}

	update := bson.M{
		"$pull": bson.M{"dates": bson.M{"date": date}},
		"$set":  bson.M{"updated_at": r.now()},
	}
	return r.findOneAndUpdate(ctx, bson.M{"id": coachID}, update)
}

// SetSlotFlag writes the open/blocked flag of the named slot.
func (r *mongoCoachRepo) SetSlotFlag(ctx context.Context, coachID, date, slotKey string, flag int) (*models.Coach, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := r.pruneExpired(ctx, coachID); err != nil {
		return nil, err
	}

	filter := bson.M{"id": coachID, "dates.date": date}
	update := bson.M{"$set": bson.M{
		"dates.$." + slotKey + ".flag": flag,
		"updated_at":                   r.now(),
	}}
	return r.findOneAndUpdate(ctx, filter, update)
}

func (r *mongoCoachRepo) findOneAndUpdate(ctx context.Context, filter, update bson.M) (*models.Coach, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var coach models.Coach
	if err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&coach); err != nil {
		return nil, err
	}
	return &coach, nil
}

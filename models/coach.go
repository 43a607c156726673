package models

import "time"

// Slot is a labeled time range a coach offers on a given date.
// Flag 0 means the slot is open, 1 means it is blocked.
type Slot struct {
	Value string `bson:"value" json:"value"` // time range text, e.g. "9am-10am"
	Flag  int    `bson:"flag" json:"flag"`
}

// CoachDate holds the up-to-three slots a coach offers on one calendar day.
// A nil slot was deleted; when all three are nil the CoachDate itself is removed.
type CoachDate struct {
	Date  string `bson:"date" json:"date"` // "YYYY-MM-DD", unique within a coach
	Slot1 *Slot  `bson:"slot1,omitempty" json:"slot1"`
	Slot2 *Slot  `bson:"slot2,omitempty" json:"slot2"`
	Slot3 *Slot  `bson:"slot3,omitempty" json:"slot3"`
}

// Coach is an entity offering bookable time slots across multiple dates.
type Coach struct {
	ID          string      `bson:"id" json:"id"`
	Name        string      `bson:"name" json:"name"`
	Description string      `bson:"description" json:"description"`
	Dates       []CoachDate `bson:"dates" json:"dates"`
	CreatedAt   time.Time   `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time   `bson:"updated_at" json:"updated_at"`
}

// SlotKeys are the only addressable slot positions within a CoachDate.
var SlotKeys = []string{"slot1", "slot2", "slot3"}

// SlotByKey returns the slot stored under the given key, or nil.
func (d *CoachDate) SlotByKey(key string) *Slot {
	switch key {
	case "slot1":
		return d.Slot1
	case "slot2":
		return d.Slot2
	case "slot3":
		return d.Slot3
	}
	return nil
}

// FindDate returns the CoachDate for the given day, or nil.
func (c *Coach) FindDate(date string) *CoachDate {
	for i := range c.Dates {
		if c.Dates[i].Date == date {
			return &c.Dates[i]
		}
	}
	return nil
}

// DefaultSlots returns the three slots every freshly added date starts with.
func DefaultSlots() (slot1, slot2, slot3 *Slot) {
	return &Slot{Value: "9am-10am"}, &Slot{Value: "11am-12pm"}, &Slot{Value: "3pm-4pm"}
}

// SlotUpdates carries the optional in-place slot replacements for one date.
type SlotUpdates struct {
	Slot1 *Slot `json:"slot1,omitempty"`
	Slot2 *Slot `json:"slot2,omitempty"`
	Slot3 *Slot `json:"slot3,omitempty"`
}

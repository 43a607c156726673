package models

import (
	"strings"
	"time"
)

// Booking request status values.
const (
	StatusPending  = "PENDING"
	StatusApproved = "APPROVED"
	StatusDenied   = "DENIED"
)

// IsStatus reports whether s is one of the known status values, ignoring case.
func IsStatus(s string) bool {
	return strings.EqualFold(s, StatusPending) ||
		strings.EqualFold(s, StatusApproved) ||
		strings.EqualFold(s, StatusDenied)
}

// TimeRange is one requested time range within a booking request.
// Flag is set to true when an admin approves that range.
type TimeRange struct {
	Range string `bson:"range" json:"range"`
	Flag  bool   `bson:"flag" json:"flag"`
}

// BookingRequest is a user's request for coaching time ranges on a date.
// Status is a single request-wide value overwritten by the latest
// approve/deny action, not an aggregate of the per-range flags.
type BookingRequest struct {
	ID        string      `bson:"id" json:"id"`
	Name      string      `bson:"name" json:"name"`
	Email     string      `bson:"email" json:"email"` // unique
	Date      string      `bson:"date" json:"date"`
	Time      []TimeRange `bson:"time" json:"time"`
	Status    string      `bson:"status" json:"status"` // PENDING | APPROVED | DENIED
	CreatedAt time.Time   `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time   `bson:"updated_at" json:"updated_at"`
}

// BookingUpdate carries a partial edit of a booking request.
type BookingUpdate struct {
	Name  *string     `json:"name,omitempty"`
	Email *string     `json:"email,omitempty"`
	Date  *string     `json:"date,omitempty"`
	Time  []TimeRange `json:"time,omitempty"`
}

// CoachingStats aggregates booking request counts for the dashboard.
type CoachingStats struct {
	TotalUsers    int64 `json:"totalUsers"`
	TotalApproved int64 `json:"totalApproved"`
	TotalDenied   int64 `json:"totalDenied"`
}

package models

import "time"

// Device maps a user to one registered FCM token.
type Device struct {
	ID         string    `bson:"id" json:"id"`
	UserID     string    `bson:"user_id" json:"userId"`
	Username   string    `bson:"username" json:"username"`
	Email      string    `bson:"email" json:"email"`
	FCMToken   string    `bson:"fcm_token" json:"fcmToken"`
	LastActive time.Time `bson:"last_active" json:"lastActive"`
}

// NotificationRecord is one delivered (or attempted) push, kept per token.
type NotificationRecord struct {
	ID          string    `bson:"id" json:"id"`
	UserID      string    `bson:"user_id,omitempty" json:"userId,omitempty"`
	Title       string    `bson:"title" json:"title"`
	Description string    `bson:"description" json:"description"`
	FCMToken    string    `bson:"fcm_token,omitempty" json:"fcmToken,omitempty"`
	ContentURL  string    `bson:"content_url,omitempty" json:"contentUrl,omitempty"`
	Read        bool      `bson:"read" json:"read"`
	SentAt      time.Time `bson:"sent_at" json:"sentAt"`
}

// SendResult summarizes one broadcast: how many pushes FCM accepted
// and how many it rejected across all batches.
type SendResult struct {
	SuccessCount int `json:"successCount"`
	FailureCount int `json:"failureCount"`
	Devices      int `json:"devices"`
}

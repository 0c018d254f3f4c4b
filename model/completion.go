package model

import "time"

// EventCompletion marks one calendar day of a study event as done. At most one
// record exists per (event_id, date) pair; the completions collection carries a
// unique index on that pair and the service layer upserts within the day bucket.
type EventCompletion struct {
	CompletionID string    `bson:"_id,omitempty" json:"id"`
	EventID      string    `bson:"event_id" json:"event_id"`
	UserID       string    `bson:"user_id" json:"user_id"`
	Date         time.Time `bson:"date" json:"date"`
	Completed    bool      `bson:"completed" json:"completed"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updated_at"`
}

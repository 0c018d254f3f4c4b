package model

import "time"

type RecurrenceType string

const (
	RecurrenceDaily  RecurrenceType = "DAILY"
	RecurrenceWeekly RecurrenceType = "WEEKLY"
	RecurrenceCustom RecurrenceType = "CUSTOM"
)

type StudyEvent struct {
	EventID     string         `bson:"_id,omitempty" json:"id"`
	UserID      string         `bson:"user_id" json:"user_id"`
	Title       string         `bson:"title" json:"title" binding:"required"`
	IsRecurring bool           `bson:"is_recurring" json:"is_recurring"`
	FixedDate   time.Time      `bson:"fixed_date,omitempty" json:"fixed_date,omitempty"`
	Recurrence  RecurrenceType `bson:"recurrence,omitempty" json:"recurrence,omitempty"`
	DaysOfWeek  []int          `bson:"days_of_week,omitempty" json:"days_of_week,omitempty"`
	ExamID      string         `bson:"exam_id,omitempty" json:"exam_id,omitempty"`
	SubjectID   string         `bson:"subject_id,omitempty" json:"subject_id,omitempty"`
	TopicID     string         `bson:"topic_id,omitempty" json:"topic_id,omitempty"`
	CreatedAt   time.Time      `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time      `bson:"updated_at" json:"updated_at"`
}

// FiresOn reports whether a recurring event is scheduled on the given day.
// DaysOfWeek uses Go's weekday numbering (0 = Sunday). One-off events never
// fire here; the schedule service places them by fixed date directly.
// An unrecognized recurrence type never fires.
func (e *StudyEvent) FiresOn(day time.Time) bool {
	if !e.IsRecurring {
		return false
	}
	switch e.Recurrence {
	case RecurrenceDaily:
		return true
	case RecurrenceWeekly, RecurrenceCustom:
		// WEEKLY and CUSTOM match the same way; the tag only matters for display
		weekday := int(day.Weekday())
		for _, d := range e.DaysOfWeek {
			if d == weekday {
				return true
			}
		}
		return false
	default:
		return false
	}
}

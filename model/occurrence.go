package model

import "time"

// Occurrence is a single calendar-day instance of a study event inside a
// queried range. Occurrences are derived fresh on every query and never stored;
// their identity is (event id, date).
type Occurrence struct {
	Event     *StudyEvent `json:"event"`
	Date      time.Time   `json:"date"`
	Completed bool        `json:"completed"`
}

// ScheduleStats summarizes one materialized range for display in the UI.
// TotalEvents counts the user's event definitions, not occurrences.
type ScheduleStats struct {
	Total          int     `json:"total"`
	Completed      int     `json:"completed"`
	Pending        int     `json:"pending"`
	CompletionRate float64 `json:"completion_rate"`
	TotalEvents    int     `json:"total_events"`
}

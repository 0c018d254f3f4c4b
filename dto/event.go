package dto

import (
	"time"

	"studytrack/model"
)

type EventResponse struct {
	ID          string               `json:"id"`
	Title       string               `json:"title"`
	IsRecurring bool                 `json:"is_recurring"`
	FixedDate   *time.Time           `json:"fixed_date,omitempty"`
	Recurrence  model.RecurrenceType `json:"recurrence,omitempty"`
	DaysOfWeek  []int                `json:"days_of_week,omitempty"`
	ExamID      string               `json:"exam_id,omitempty"`
	SubjectID   string               `json:"subject_id,omitempty"`
	TopicID     string               `json:"topic_id,omitempty"`
	CreatedAt   time.Time            `json:"created_at"`
	UpdatedAt   time.Time            `json:"updated_at"`
}

// OccurrenceResponse carries the event snapshot plus the concrete day this
// occurrence fell on, which for recurring events differs per entry.
type OccurrenceResponse struct {
	Event     EventResponse `json:"event"`
	Date      string        `json:"date"`
	Completed bool          `json:"completed"`
}

type CompletionResponse struct {
	ID        string    `json:"id"`
	EventID   string    `json:"event_id"`
	Date      string    `json:"date"`
	Completed bool      `json:"completed"`
	UpdatedAt time.Time `json:"updated_at"`
}

func ToEventResponse(event *model.StudyEvent) EventResponse {
	response := EventResponse{
		ID:          event.EventID,
		Title:       event.Title,
		IsRecurring: event.IsRecurring,
		Recurrence:  event.Recurrence,
		DaysOfWeek:  event.DaysOfWeek,
		ExamID:      event.ExamID,
		SubjectID:   event.SubjectID,
		TopicID:     event.TopicID,
		CreatedAt:   event.CreatedAt,
		UpdatedAt:   event.UpdatedAt,
	}

	if !event.FixedDate.IsZero() {
		fixed := event.FixedDate
		response.FixedDate = &fixed
	}

	return response
}

func ToEventResponses(events []*model.StudyEvent) []EventResponse {
	responses := make([]EventResponse, len(events))
	for i, event := range events {
		responses[i] = ToEventResponse(event)
	}
	return responses
}

func ToOccurrenceResponse(occ *model.Occurrence) OccurrenceResponse {
	return OccurrenceResponse{
		Event:     ToEventResponse(occ.Event),
		Date:      occ.Date.Format("2006-01-02"),
		Completed: occ.Completed,
	}
}

func ToOccurrenceResponses(occurrences []*model.Occurrence) []OccurrenceResponse {
	responses := make([]OccurrenceResponse, len(occurrences))
	for i, occ := range occurrences {
		responses[i] = ToOccurrenceResponse(occ)
	}
	return responses
}

func ToCompletionResponse(record *model.EventCompletion) CompletionResponse {
	return CompletionResponse{
		ID:        record.CompletionID,
		EventID:   record.EventID,
		Date:      record.Date.Format("2006-01-02"),
		Completed: record.Completed,
		UpdatedAt: record.UpdatedAt,
	}
}

package usecase

import (
	"context"
	"errors"
	"sort"
	"time"

	"studytrack/model"
	"studytrack/utils"

	"github.com/google/uuid"
)

var (
	ErrEventNotFound      = errors.New("event not found")
	ErrTitleRequired      = errors.New("title is required")
	ErrFixedDateRequired  = errors.New("fixed date is required for one-off events")
	ErrDaysOfWeekRequired = errors.New("days of week are required for weekly and custom recurrence")
	ErrInvalidDayOfWeek   = errors.New("days of week must be between 0 (Sunday) and 6 (Saturday)")
	ErrInvalidRecurrence  = errors.New("invalid recurrence type")
)

// EventReader is the read-only slice of the events collection the schedule
// and completion services depend on.
type EventReader interface {
	GetUserEvents(ctx context.Context, userID string) ([]*model.StudyEvent, error)
	GetEventByID(ctx context.Context, userID string, eventID string) (*model.StudyEvent, error)
	CountUserEvents(ctx context.Context, userID string) (int, error)
}

// EventStore adds the write operations used by the events service.
type EventStore interface {
	EventReader
	CreateEvent(ctx context.Context, event *model.StudyEvent) error
	UpdateEvent(ctx context.Context, eventID string, userID string, updates *model.StudyEvent) error
}

type EventsService struct {
	Events EventStore
	Clock  utils.Clock
}

func NewEventsService(events EventStore) *EventsService {
	return &EventsService{Events: events, Clock: utils.RealClock{}}
}

// CreateEvent validates and stores a new event definition. Validation happens
// before any write: a recurring event needs a recognized recurrence type and,
// for WEEKLY/CUSTOM, a non-empty weekday set; a one-off event needs a fixed
// date, which is normalized to local midnight.
func (svc *EventsService) CreateEvent(ctx context.Context, event *model.StudyEvent) error {
	if event.UserID == "" {
		return errors.New("user ID is required")
	}
	if event.Title == "" {
		return ErrTitleRequired
	}

	if err := validateRecurrence(event); err != nil {
		return err
	}

	if event.IsRecurring {
		// recurrence metadata owns the schedule; a stray fixed date would be
		// misread as a one-off occurrence
		event.FixedDate = time.Time{}
	} else {
		event.FixedDate = utils.StartOfDay(event.FixedDate)
		event.Recurrence = ""
		event.DaysOfWeek = nil
	}

	now := svc.Clock.Now()
	if event.EventID == "" {
		event.EventID = uuid.New().String()
	}
	event.CreatedAt = now
	event.UpdatedAt = now

	return svc.Events.CreateEvent(ctx, event)
}

// GetUserEvents lists the caller's event definitions, newest first.
func (svc *EventsService) GetUserEvents(ctx context.Context, userID string) ([]*model.StudyEvent, error) {
	events, err := svc.Events.GetUserEvents(ctx, userID)
	if err != nil {
		return nil, err
	}

	sort.Slice(events, func(i, j int) bool {
		return events[i].CreatedAt.After(events[j].CreatedAt)
	})

	return events, nil
}

// UpdateEvent edits title, fixed date and recurrence of an owned event.
// Changing the recurrence rule leaves historical completions untouched; they
// stay attached to the days they were recorded for.
func (svc *EventsService) UpdateEvent(ctx context.Context, eventID string, userID string, updates *model.StudyEvent) (*model.StudyEvent, error) {
	existing, err := svc.Events.GetEventByID(ctx, userID, eventID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrEventNotFound
	}

	if updates.Title != "" {
		existing.Title = updates.Title
	}

	existing.IsRecurring = updates.IsRecurring
	existing.Recurrence = updates.Recurrence
	existing.DaysOfWeek = updates.DaysOfWeek
	existing.FixedDate = updates.FixedDate

	if err := validateRecurrence(existing); err != nil {
		return nil, err
	}

	if existing.IsRecurring {
		existing.FixedDate = time.Time{}
	} else {
		existing.FixedDate = utils.StartOfDay(existing.FixedDate)
		existing.Recurrence = ""
		existing.DaysOfWeek = nil
	}

	if updates.ExamID != "" {
		existing.ExamID = updates.ExamID
	}
	if updates.SubjectID != "" {
		existing.SubjectID = updates.SubjectID
	}
	if updates.TopicID != "" {
		existing.TopicID = updates.TopicID
	}

	existing.UpdatedAt = svc.Clock.Now()

	if err := svc.Events.UpdateEvent(ctx, eventID, userID, existing); err != nil {
		return nil, err
	}

	return existing, nil
}

func validateRecurrence(event *model.StudyEvent) error {
	if !event.IsRecurring {
		if event.FixedDate.IsZero() {
			return ErrFixedDateRequired
		}
		return nil
	}

	switch event.Recurrence {
	case model.RecurrenceDaily:
		return nil
	case model.RecurrenceWeekly, model.RecurrenceCustom:
		if len(event.DaysOfWeek) == 0 {
			return ErrDaysOfWeekRequired
		}
		for _, d := range event.DaysOfWeek {
			if d < 0 || d > 6 {
				return ErrInvalidDayOfWeek
			}
		}
		return nil
	default:
		return ErrInvalidRecurrence
	}
}

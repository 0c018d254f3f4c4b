package usecase

import (
	"context"
	"time"

	"studytrack/model"
	"studytrack/utils"

	"github.com/google/uuid"
)

// CompletionsService records that one occurrence of an event was done. It is
// the only writer of completion records, and always for a single
// (event, day) pair.
type CompletionsService struct {
	Events      EventReader
	Completions CompletionStore
	Clock       utils.Clock
}

func NewCompletionsService(events EventReader, completions CompletionStore) *CompletionsService {
	return &CompletionsService{
		Events:      events,
		Completions: completions,
		Clock:       utils.RealClock{},
	}
}

// MarkComplete marks the event's occurrence on the given day as done and
// returns the resulting record. A zero date means today. The ownership check
// runs before any write; an event owned by someone else is indistinguishable
// from a missing one. Re-completing an already completed day is a no-op that
// returns the existing record.
func (svc *CompletionsService) MarkComplete(ctx context.Context, eventID string, userID string, date time.Time) (*model.EventCompletion, error) {
	event, err := svc.Events.GetEventByID(ctx, userID, eventID)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, ErrEventNotFound
	}

	if date.IsZero() {
		date = svc.Clock.Now()
	}
	day := utils.StartOfDay(date)

	existing, err := svc.Completions.FindForDay(ctx, eventID, day)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		// The record matched this day's bucket but its decoded date is a UTC
		// instant; carry the normalized day so the response names the right one.
		existing.Date = day
		return svc.ensureCompleted(ctx, existing)
	}

	now := svc.Clock.Now()
	record := &model.EventCompletion{
		CompletionID: uuid.New().String(),
		EventID:      eventID,
		UserID:       userID,
		Date:         day,
		Completed:    true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := svc.Completions.CreateCompletion(ctx, record); err != nil {
		// A concurrent call may have inserted the same (event, day) first and
		// tripped the unique index. Adopt the surviving row; otherwise the
		// insert failure stands.
		again, findErr := svc.Completions.FindForDay(ctx, eventID, day)
		if findErr == nil && again != nil {
			again.Date = day
			return svc.ensureCompleted(ctx, again)
		}
		return nil, err
	}

	utils.TrackEventCompletion()
	return record, nil
}

func (svc *CompletionsService) ensureCompleted(ctx context.Context, record *model.EventCompletion) (*model.EventCompletion, error) {
	if !record.Completed {
		if err := svc.Completions.SetCompleted(ctx, record.CompletionID); err != nil {
			return nil, err
		}
		record.Completed = true
		record.UpdatedAt = svc.Clock.Now()
	}
	return record, nil
}

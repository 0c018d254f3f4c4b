package usecase

import (
	"context"
	"errors"
	"time"

	"studytrack/model"
)

// In-memory stands-ins for the mongo repositories.

type fakeEventStore struct {
	events []*model.StudyEvent
	err    error
}

func (f *fakeEventStore) GetUserEvents(ctx context.Context, userID string) ([]*model.StudyEvent, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*model.StudyEvent
	for _, e := range f.events {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeEventStore) GetEventByID(ctx context.Context, userID string, eventID string) (*model.StudyEvent, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, e := range f.events {
		if e.EventID == eventID && e.UserID == userID {
			return e, nil
		}
	}
	return nil, nil
}

func (f *fakeEventStore) CountUserEvents(ctx context.Context, userID string) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	count := 0
	for _, e := range f.events {
		if e.UserID == userID {
			count++
		}
	}
	return count, nil
}

func (f *fakeEventStore) CreateEvent(ctx context.Context, event *model.StudyEvent) error {
	if f.err != nil {
		return f.err
	}
	f.events = append(f.events, event)
	return nil
}

func (f *fakeEventStore) UpdateEvent(ctx context.Context, eventID string, userID string, updates *model.StudyEvent) error {
	if f.err != nil {
		return f.err
	}
	for i, e := range f.events {
		if e.EventID == eventID && e.UserID == userID {
			f.events[i] = updates
			return nil
		}
	}
	return errors.New("event not found")
}

type fakeCompletionStore struct {
	records []*model.EventCompletion

	rangeCalls int
	findErr    error

	// failNextCreate simulates losing the insert race: the rival row appears
	// and the unique index rejects ours.
	failNextCreate bool
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}

func (f *fakeCompletionStore) GetCompletionsInRange(ctx context.Context, eventIDs []string, start, end time.Time) ([]*model.EventCompletion, error) {
	f.rangeCalls++
	if f.findErr != nil {
		return nil, f.findErr
	}
	ids := make(map[string]bool, len(eventIDs))
	for _, id := range eventIDs {
		ids[id] = true
	}
	// Same instant-range filter as the mongo query: [start, end+1d).
	var out []*model.EventCompletion
	for _, r := range f.records {
		if ids[r.EventID] && !r.Date.Before(start) && r.Date.Before(end.AddDate(0, 0, 1)) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeCompletionStore) FindForDay(ctx context.Context, eventID string, day time.Time) (*model.EventCompletion, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	for _, r := range f.records {
		if r.EventID == eventID && !r.Date.Before(day) && r.Date.Before(day.AddDate(0, 0, 1)) {
			return r, nil
		}
	}
	return nil, nil
}

func (f *fakeCompletionStore) CreateCompletion(ctx context.Context, record *model.EventCompletion) error {
	if f.failNextCreate {
		f.failNextCreate = false
		rival := *record
		rival.CompletionID = "rival-" + record.CompletionID
		rival.Completed = false
		f.records = append(f.records, &rival)
		return errors.New("E11000 duplicate key error")
	}
	for _, r := range f.records {
		if r.EventID == record.EventID && sameDay(r.Date, record.Date) {
			return errors.New("E11000 duplicate key error")
		}
	}
	f.records = append(f.records, record)
	return nil
}

func (f *fakeCompletionStore) SetCompleted(ctx context.Context, completionID string) error {
	for _, r := range f.records {
		if r.CompletionID == completionID {
			r.Completed = true
			return nil
		}
	}
	return errors.New("completion not found")
}

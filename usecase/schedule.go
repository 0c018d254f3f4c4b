package usecase

import (
	"context"
	"errors"
	"sort"
	"time"

	"studytrack/model"
	"studytrack/utils"
)

var (
	ErrInvalidRange = errors.New("range end is before range start")
	ErrInvalidMonth = errors.New("invalid month, expected YYYY-MM")
)

// CompletionStore is the slice of the completions collection the schedule and
// completion services depend on.
type CompletionStore interface {
	GetCompletionsInRange(ctx context.Context, eventIDs []string, start, end time.Time) ([]*model.EventCompletion, error)
	FindForDay(ctx context.Context, eventID string, day time.Time) (*model.EventCompletion, error)
	CreateCompletion(ctx context.Context, record *model.EventCompletion) error
	SetCompleted(ctx context.Context, completionID string) error
}

// ScheduleService expands event definitions into concrete occurrences for a
// date range and annotates each one with its completion state. It never
// writes; marking days done is the completions service's job.
type ScheduleService struct {
	Events      EventReader
	Completions CompletionStore
	Clock       utils.Clock
}

func NewScheduleService(events EventReader, completions CompletionStore) *ScheduleService {
	return &ScheduleService{
		Events:      events,
		Completions: completions,
		Clock:       utils.RealClock{},
	}
}

// Occurrences materializes every occurrence between start and end (whole
// days, both ends inclusive). One-off events contribute a single occurrence
// when their fixed date falls in range; recurring events contribute one per
// day their rule fires on. Completions for all candidates are loaded in a
// single query and matched by (event id, day). The result is sorted by date
// ascending, same-day entries by event id so responses are stable.
func (svc *ScheduleService) Occurrences(ctx context.Context, userID string, start, end time.Time) ([]*model.Occurrence, error) {
	start = utils.StartOfDay(start)
	end = utils.StartOfDay(end)
	if end.Before(start) {
		return nil, ErrInvalidRange
	}

	events, err := svc.Events.GetUserEvents(ctx, userID)
	if err != nil {
		return nil, err
	}

	occurrences := []*model.Occurrence{}
	var eventIDs []string
	seen := make(map[string]bool)

	for _, event := range events {
		candidate := false

		if !event.IsRecurring {
			if event.FixedDate.IsZero() {
				continue
			}
			// Decoded datetimes come back in UTC; shift into the query's
			// zone before deciding which calendar day this is.
			day := utils.StartOfDay(event.FixedDate.In(start.Location()))
			if !day.Before(start) && !day.After(end) {
				occurrences = append(occurrences, &model.Occurrence{Event: event, Date: day})
				candidate = true
			}
		} else {
			for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
				if event.FiresOn(day) {
					occurrences = append(occurrences, &model.Occurrence{Event: event, Date: day})
					candidate = true
				}
			}
		}

		if candidate && !seen[event.EventID] {
			seen[event.EventID] = true
			eventIDs = append(eventIDs, event.EventID)
		}
	}

	if len(occurrences) == 0 {
		return occurrences, nil
	}

	records, err := svc.Completions.GetCompletionsInRange(ctx, eventIDs, start, end)
	if err != nil {
		return nil, err
	}

	completed := make(map[string]bool, len(records))
	for _, record := range records {
		day := utils.StartOfDay(record.Date.In(start.Location()))
		completed[completionKey(record.EventID, day)] = record.Completed
	}

	for _, occ := range occurrences {
		occ.Completed = completed[completionKey(occ.Event.EventID, occ.Date)]
	}

	sort.Slice(occurrences, func(i, j int) bool {
		if !occurrences[i].Date.Equal(occurrences[j].Date) {
			return occurrences[i].Date.Before(occurrences[j].Date)
		}
		return occurrences[i].Event.EventID < occurrences[j].Event.EventID
	})

	utils.OccurrencesMaterialized.Observe(float64(len(occurrences)))
	return occurrences, nil
}

// MonthOccurrences materializes a full calendar month from a YYYY-MM token.
func (svc *ScheduleService) MonthOccurrences(ctx context.Context, userID string, month string) ([]*model.Occurrence, error) {
	start, end, err := monthRange(month)
	if err != nil {
		return nil, err
	}
	return svc.Occurrences(ctx, userID, start, end)
}

// Today materializes the single-day range for the current date. It is the
// most frequent query and produces exactly what the month view would show for
// today.
func (svc *ScheduleService) Today(ctx context.Context, userID string) ([]*model.Occurrence, error) {
	day := utils.StartOfDay(svc.Clock.Now())
	return svc.Occurrences(ctx, userID, day, day)
}

// MonthStats summarizes a month's occurrences for display in the UI.
func (svc *ScheduleService) MonthStats(ctx context.Context, userID string, month string) (*model.ScheduleStats, error) {
	occurrences, err := svc.MonthOccurrences(ctx, userID, month)
	if err != nil {
		return nil, err
	}

	stats := &model.ScheduleStats{Total: len(occurrences)}
	for _, occ := range occurrences {
		if occ.Completed {
			stats.Completed++
		}
	}
	stats.Pending = stats.Total - stats.Completed
	if stats.Total > 0 {
		stats.CompletionRate = float64(stats.Completed) / float64(stats.Total)
	}

	definitions, err := svc.Events.CountUserEvents(ctx, userID)
	if err != nil {
		return nil, err
	}
	stats.TotalEvents = definitions

	return stats, nil
}

func monthRange(month string) (time.Time, time.Time, error) {
	parsed, err := time.ParseInLocation("2006-01", month, time.Local)
	if err != nil {
		return time.Time{}, time.Time{}, ErrInvalidMonth
	}
	start := parsed
	end := start.AddDate(0, 1, -1)
	return start, end, nil
}

func completionKey(eventID string, day time.Time) string {
	return eventID + "_" + day.Format("2006-01-02")
}

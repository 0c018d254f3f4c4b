package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func TestFiresOnDaily(t *testing.T) {
	event := &StudyEvent{IsRecurring: true, Recurrence: RecurrenceDaily}

	// every day of a full week, plus a leap day
	days := []time.Time{
		date(2024, time.March, 4),  // Monday
		date(2024, time.March, 5),
		date(2024, time.March, 6),
		date(2024, time.March, 7),
		date(2024, time.March, 8),
		date(2024, time.March, 9),
		date(2024, time.March, 10), // Sunday
		date(2024, time.February, 29),
	}
	for _, day := range days {
		assert.True(t, event.FiresOn(day), "daily must fire on %s", day.Format("2006-01-02"))
	}
}

func TestFiresOnWeekly(t *testing.T) {
	// Monday, Wednesday, Friday
	event := &StudyEvent{
		IsRecurring: true,
		Recurrence:  RecurrenceWeekly,
		DaysOfWeek:  []int{1, 3, 5},
	}

	tests := []struct {
		name  string
		day   time.Time
		fires bool
	}{
		{"monday", date(2024, time.March, 4), true},
		{"tuesday", date(2024, time.March, 5), false},
		{"wednesday", date(2024, time.March, 6), true},
		{"thursday", date(2024, time.March, 7), false},
		{"friday", date(2024, time.March, 8), true},
		{"saturday", date(2024, time.March, 9), false},
		{"sunday", date(2024, time.March, 10), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.fires, event.FiresOn(tt.day))
		})
	}
}

func TestFiresOnCustomMatchesWeekly(t *testing.T) {
	weekly := &StudyEvent{IsRecurring: true, Recurrence: RecurrenceWeekly, DaysOfWeek: []int{0, 6}}
	custom := &StudyEvent{IsRecurring: true, Recurrence: RecurrenceCustom, DaysOfWeek: []int{0, 6}}

	for d := 1; d <= 31; d++ {
		day := date(2024, time.March, d)
		assert.Equal(t, weekly.FiresOn(day), custom.FiresOn(day),
			"weekly and custom must match identically on %s", day.Format("2006-01-02"))
	}
}

func TestFiresOnFailClosed(t *testing.T) {
	tests := []struct {
		name  string
		event *StudyEvent
	}{
		{"one-off never fires", &StudyEvent{IsRecurring: false, FixedDate: date(2024, time.March, 4)}},
		{"unknown recurrence type", &StudyEvent{IsRecurring: true, Recurrence: "MONTHLY", DaysOfWeek: []int{1}}},
		{"empty recurrence type", &StudyEvent{IsRecurring: true}},
		{"weekly without days", &StudyEvent{IsRecurring: true, Recurrence: RecurrenceWeekly}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for d := 1; d <= 7; d++ {
				assert.False(t, tt.event.FiresOn(date(2024, time.March, d)))
			}
		})
	}
}

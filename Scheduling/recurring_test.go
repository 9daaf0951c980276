package Scheduling

import (
	"testing"

	"HealingRays/Models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandRecurringMondayWednesday(t *testing.T) {
	// 2024-01-01 is a Monday
	req := RecurringRequest{
		Type:       Models.SessionTypeHealing,
		DaysOfWeek: []int{1, 3},
		StartTime:  "10:00",
		EndTime:    "11:00",
		StartDate:  "2024-01-01",
		EndDate:    "2024-01-07",
		Fee:        500,
	}

	sessions, err := ExpandRecurring(req, 7)

	require.NoError(t, err)
	require.Len(t, sessions, 2)
	assert.Equal(t, "2024-01-01", sessions[0].ScheduledDate)
	assert.Equal(t, "2024-01-03", sessions[1].ScheduledDate)
	for _, s := range sessions {
		assert.Equal(t, uint(7), s.UserID)
		assert.True(t, s.Active)
		assert.Equal(t, Models.SessionStatusScheduled, s.Status)
		assert.Equal(t, "10:00", s.StartTime)
		assert.Equal(t, "11:00", s.EndTime)
		assert.Empty(t, s.Attachments)
	}
}

func TestExpandRecurringSundayIsZero(t *testing.T) {
	req := RecurringRequest{
		DaysOfWeek: []int{0},
		StartDate:  "2024-01-01",
		EndDate:    "2024-01-14",
	}

	sessions, err := ExpandRecurring(req, 1)

	require.NoError(t, err)
	require.Len(t, sessions, 2)
	assert.Equal(t, "2024-01-07", sessions[0].ScheduledDate)
	assert.Equal(t, "2024-01-14", sessions[1].ScheduledDate)
}

func TestExpandRecurringNoMatchingDays(t *testing.T) {
	req := RecurringRequest{
		DaysOfWeek: []int{},
		StartDate:  "2024-01-01",
		EndDate:    "2024-01-31",
	}

	sessions, err := ExpandRecurring(req, 1)

	require.NoError(t, err)
	assert.Empty(t, sessions)
}

func TestExpandRecurringInclusiveBounds(t *testing.T) {
	// single-day range matching its own weekday
	req := RecurringRequest{
		DaysOfWeek: []int{5}, // Friday
		StartDate:  "2024-01-05",
		EndDate:    "2024-01-05",
	}

	sessions, err := ExpandRecurring(req, 1)

	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Equal(t, "2024-01-05", sessions[0].ScheduledDate)
}

func TestExpandRecurringBadRange(t *testing.T) {
	req := RecurringRequest{
		DaysOfWeek: []int{1},
		StartDate:  "soon",
		EndDate:    "2024-01-07",
	}

	_, err := ExpandRecurring(req, 1)

	assert.ErrorIs(t, err, ErrBadRecurringRange)
}

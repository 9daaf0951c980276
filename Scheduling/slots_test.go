package Scheduling

import (
	"testing"

	"HealingRays/Models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeSlotsDropsIncomplete(t *testing.T) {
	raw := []Models.ScheduleSlot{
		{FromDate: "2024-01-01", ToDate: "2024-01-02", FromTime: "10:00", ToTime: "11:00"},
		{FromDate: "2024-01-03", ToDate: "2024-01-04", FromTime: "10:00"}, // missing to_time
		{FromDate: "not-a-date", ToDate: "2024-01-05", FromTime: "10:00", ToTime: "11:00"},
	}

	slots := NormalizeSlots(raw)

	require.Len(t, slots, 1)
	assert.Equal(t, "2024-01-01", slots[0].FromDate)
	assert.Equal(t, "2024-01-02", slots[0].ToDate)
}

func TestNormalizeSlotsCanonicalizesDateFormats(t *testing.T) {
	raw := []Models.ScheduleSlot{
		{FromDate: "2024/01/01", ToDate: "2024-01-02T00:00:00Z", FromTime: "09:00", ToTime: "10:00"},
	}

	slots := NormalizeSlots(raw)

	require.Len(t, slots, 1)
	assert.Equal(t, "2024-01-01", slots[0].FromDate)
	assert.Equal(t, "2024-01-02", slots[0].ToDate)
}

func TestNormalizeSlotsDoesNotEnforceOrdering(t *testing.T) {
	// from_date after to_date is a documented gap, not an error
	raw := []Models.ScheduleSlot{
		{FromDate: "2024-02-10", ToDate: "2024-02-01", FromTime: "18:00", ToTime: "09:00"},
	}

	slots := NormalizeSlots(raw)

	require.Len(t, slots, 1)
}

func TestApplyPrimaryFromFirstSlot(t *testing.T) {
	raw := []Models.ScheduleSlot{
		{FromDate: "2024-01-01", ToDate: "2024-01-02", FromTime: "10:00", ToTime: "11:00"},
		{FromDate: "2024-01-03", ToDate: "2024-01-04", FromTime: "10:00"},
	}

	slots := NormalizeSlots(raw)
	primary := ApplyPrimary(slots, Primary{})

	assert.Equal(t, "2024-01-01", primary.ScheduledDate)
	assert.Equal(t, "10:00", primary.StartTime)
	assert.Equal(t, "11:00", primary.EndTime)
}

func TestApplyPrimaryKeepsExplicitFields(t *testing.T) {
	slots := Models.ScheduleSlots{
		{FromDate: "2024-01-01", ToDate: "2024-01-02", FromTime: "10:00", ToTime: "11:00"},
	}

	primary := ApplyPrimary(slots, Primary{ScheduledDate: "2024-03-15"})

	assert.Equal(t, "2024-03-15", primary.ScheduledDate)
	assert.Equal(t, "10:00", primary.StartTime)
}

func TestApplyPrimaryNoSlots(t *testing.T) {
	primary := ApplyPrimary(nil, Primary{ScheduledDate: "2024-03-15"})
	assert.Equal(t, "2024-03-15", primary.ScheduledDate)
	assert.Empty(t, primary.StartTime)
}

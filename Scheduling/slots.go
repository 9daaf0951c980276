package Scheduling

import (
	"time"

	"HealingRays/Models"
)

// dateLayouts are the formats slot dates arrive in. Canonical output is
// always "2006-01-02".
var dateLayouts = []string{"2006-01-02", "2006/01/02", time.RFC3339}

const canonicalDate = "2006-01-02"

// ParseDate parses a slot or session date in any accepted layout.
func ParseDate(value string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// NormalizeSlots drops any slot missing a parseable from_date/to_date or an
// empty time field, and canonicalizes the surviving dates. Partial garbage
// slots are discarded silently, never errored. Date/time ordering inside a
// slot is not enforced; times are opaque strings.
func NormalizeSlots(raw []Models.ScheduleSlot) Models.ScheduleSlots {
	slots := Models.ScheduleSlots{}
	for _, slot := range raw {
		from, okFrom := ParseDate(slot.FromDate)
		to, okTo := ParseDate(slot.ToDate)
		if !okFrom || !okTo || slot.FromTime == "" || slot.ToTime == "" {
			continue
		}
		slots = append(slots, Models.ScheduleSlot{
			FromDate: from.Format(canonicalDate),
			ToDate:   to.Format(canonicalDate),
			FromTime: slot.FromTime,
			ToTime:   slot.ToTime,
		})
	}
	return slots
}

// Primary holds the top-level scheduling fields derived from the first slot.
type Primary struct {
	ScheduledDate string
	StartTime     string
	EndTime       string
}

// ApplyPrimary fills any unset primary field from the first valid slot. Fields
// the caller already set explicitly are left alone.
func ApplyPrimary(slots Models.ScheduleSlots, p Primary) Primary {
	if len(slots) == 0 {
		return p
	}
	first := slots[0]
	if p.ScheduledDate == "" {
		p.ScheduledDate = first.FromDate
	}
	if p.StartTime == "" {
		p.StartTime = first.FromTime
	}
	if p.EndTime == "" {
		p.EndTime = first.ToTime
	}
	return p
}

package Scheduling

import (
	"errors"

	"HealingRays/Models"
)

// RecurringRequest expands into one session per matching calendar day.
// Weekdays use 0=Sunday..6=Saturday.
type RecurringRequest struct {
	Type        string   `json:"type"`
	ClientID    *uint    `json:"client_id"`
	ProtocolIDs []uint   `json:"protocol_ids"`
	DaysOfWeek  []int    `json:"daysOfWeek"`
	StartTime   string   `json:"startTime"`
	EndTime     string   `json:"endTime"`
	StartDate   string   `json:"startDate"`
	EndDate     string   `json:"endDate"`
	Notes       string   `json:"notes"`
	Fee         float64  `json:"fee"`
	SelfSession bool     `json:"self_session"`
}

var ErrBadRecurringRange = errors.New("invalid recurring date range")

// ExpandRecurring walks every calendar day from StartDate to EndDate inclusive
// and emits one scheduled session for each day whose weekday is requested.
// Iteration uses calendar-day arithmetic, not fixed 24-hour steps, so the
// expansion stays correct across daylight-saving transitions. Zero matching
// days yields an empty batch, not an error. Attachments are always empty on
// generated sessions.
func ExpandRecurring(req RecurringRequest, userID uint) ([]Models.Session, error) {
	start, okStart := ParseDate(req.StartDate)
	end, okEnd := ParseDate(req.EndDate)
	if !okStart || !okEnd {
		return nil, ErrBadRecurringRange
	}

	wanted := make(map[int]bool, len(req.DaysOfWeek))
	for _, day := range req.DaysOfWeek {
		wanted[day] = true
	}

	sessions := []Models.Session{}
	for current := start; !current.After(end); current = current.AddDate(0, 0, 1) {
		if !wanted[int(current.Weekday())] {
			continue
		}
		sessions = append(sessions, Models.Session{
			Owned:         Models.Owned{UserID: userID, Active: true},
			Type:          req.Type,
			ClientID:      req.ClientID,
			ProtocolIDs:   req.ProtocolIDs,
			ScheduledDate: current.Format(canonicalDate),
			StartTime:     req.StartTime,
			EndTime:       req.EndTime,
			Status:        Models.SessionStatusScheduled,
			Notes:         req.Notes,
			Fee:           req.Fee,
			SelfSession:   req.SelfSession,
			Attachments:   Models.Attachments{},
		})
	}
	return sessions, nil
}

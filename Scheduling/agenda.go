package Scheduling

import (
	"sort"
	"strings"

	"HealingRays/Models"
)

const (
	AgendaKindSession   = "session"
	AgendaKindNurturing = "nurturing"
)

// AgendaItem is one entry of the unified agenda. Exactly one of Session or
// Nurturing is set, and Date is the item's effective date.
type AgendaItem struct {
	Kind       string                   `json:"kind"`
	Date       string                   `json:"date"`
	ClientName string                   `json:"client_name,omitempty"`
	Session    *Models.Session          `json:"session,omitempty"`
	Nurturing  *Models.NurturingSession `json:"nurturing_session,omitempty"`
}

// AgendaFilter narrows the merged list. Status matches exactly
// (case-sensitive); Search is a case-insensitive substring match over the
// client name, the item name and the notes.
type AgendaFilter struct {
	Status string
	Search string
}

// MergeAgenda concatenates healing sessions and nurturing sessions into one
// list, applies the filters and sorts ascending by effective date. The sort is
// stable, so ties keep insertion order.
func MergeAgenda(sessions []Models.Session, nurturing []Models.NurturingSession, clientNames map[uint]string, filter AgendaFilter) []AgendaItem {
	agenda := make([]AgendaItem, 0, len(sessions)+len(nurturing))

	for i := range sessions {
		session := &sessions[i]
		item := AgendaItem{
			Kind:    AgendaKindSession,
			Date:    session.ScheduledDate,
			Session: session,
		}
		if session.ClientID != nil {
			item.ClientName = clientNames[*session.ClientID]
		}
		agenda = append(agenda, item)
	}
	for i := range nurturing {
		agenda = append(agenda, AgendaItem{
			Kind:      AgendaKindNurturing,
			Date:      nurturing[i].Date,
			Nurturing: &nurturing[i],
		})
	}

	if filter.Status != "" {
		kept := agenda[:0]
		for _, item := range agenda {
			if itemStatus(item) == filter.Status {
				kept = append(kept, item)
			}
		}
		agenda = kept
	}

	if filter.Search != "" {
		term := strings.ToLower(filter.Search)
		kept := agenda[:0]
		for _, item := range agenda {
			if matchesSearch(item, term) {
				kept = append(kept, item)
			}
		}
		agenda = kept
	}

	sort.SliceStable(agenda, func(i, j int) bool {
		return agenda[i].Date < agenda[j].Date
	})

	return agenda
}

func itemStatus(item AgendaItem) string {
	if item.Session != nil {
		return item.Session.Status
	}
	return item.Nurturing.Status
}

func matchesSearch(item AgendaItem, term string) bool {
	if strings.Contains(strings.ToLower(item.ClientName), term) {
		return true
	}
	if item.Session != nil {
		return strings.Contains(strings.ToLower(item.Session.Notes), term)
	}
	return strings.Contains(strings.ToLower(item.Nurturing.Name), term) ||
		strings.Contains(strings.ToLower(item.Nurturing.Coordinator), term) ||
		strings.Contains(strings.ToLower(item.Nurturing.PaymentDetails), term)
}

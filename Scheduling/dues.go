package Scheduling

import (
	"sort"

	"HealingRays/Models"
)

const (
	DuesStatusPending = "Pending"
	DuesStatusAdvance = "Advance"
	DuesStatusSettled = "Settled"
)

// ClientDues is the derived financial summary for one client. Balance is
// signed: negative means the client owes, positive means the client holds an
// advance.
type ClientDues struct {
	ClientID    uint    `json:"client_id"`
	ClientName  string  `json:"client_name"`
	TotalBilled float64 `json:"total_billed"`
	TotalPaid   float64 `json:"total_paid"`
	Balance     float64 `json:"balance"`
	Status      string  `json:"status"`
}

// ComputeDues recomputes billed-vs-paid per client from source records on
// every call; no running balance is ever cached. Billed sums the fees of
// completed sessions, paid sums Paid payments only (Pending is excluded).
// Clients with nothing billed and nothing paid are absent from the result,
// not reported as settled. The result is ordered by client id.
func ComputeDues(sessions []Models.Session, payments []Models.Payment, clientNames map[uint]string) []ClientDues {
	billed := map[uint]float64{}
	paid := map[uint]float64{}

	for _, session := range sessions {
		if session.Status != Models.SessionStatusCompleted || session.ClientID == nil {
			continue
		}
		billed[*session.ClientID] += session.Fee
	}

	for _, payment := range payments {
		if payment.Status != Models.PaymentStatusPaid {
			continue
		}
		paid[payment.ClientID] += payment.Amount
	}

	ids := make([]uint, 0, len(billed)+len(paid))
	seen := map[uint]bool{}
	for id := range billed {
		if !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}
	for id := range paid {
		if !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	dues := make([]ClientDues, 0, len(ids))
	for _, id := range ids {
		entry := ClientDues{
			ClientID:    id,
			ClientName:  clientNames[id],
			TotalBilled: billed[id],
			TotalPaid:   paid[id],
		}
		entry.Balance = entry.TotalPaid - entry.TotalBilled
		switch {
		case entry.Balance < 0:
			entry.Status = DuesStatusPending
		case entry.Balance > 0:
			entry.Status = DuesStatusAdvance
		default:
			entry.Status = DuesStatusSettled
		}
		dues = append(dues, entry)
	}
	return dues
}

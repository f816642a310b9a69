package usecase

import (
	"sort"
	"strings"

	"quotedesk/internal/domain/entities"
)

const filterAll = "all"

// QuoteFilter narrows the admin list. Empty or "all" disables a criterion.
type QuoteFilter struct {
	Search      string
	ServiceType string
	Status      string
}

// QuoteStats is the admin dashboard summary.
type QuoteStats struct {
	Total         int                          `json:"total"`
	New           int                          `json:"new"`
	ByStatus      map[entities.QuoteStatus]int `json:"byStatus"`
	ByServiceType map[entities.ServiceType]int `json:"byServiceType"`
}

func (f QuoteFilter) active(v string) bool {
	v = strings.TrimSpace(v)
	return v != "" && v != filterAll
}

// FilterQuotes keeps quotes matching every active criterion. Search matches
// name, address and additional info case-insensitively and the phone number
// as typed.
func FilterQuotes(quotes []entities.Quote, f QuoteFilter) []entities.Quote {
	out := make([]entities.Quote, 0, len(quotes))
	term := strings.TrimSpace(f.Search)
	lowered := strings.ToLower(term)

	var status entities.QuoteStatus
	if f.active(f.Status) {
		if parsed, ok := entities.ParseQuoteStatus(f.Status); ok {
			status = parsed
		} else {
			status = entities.QuoteStatus(f.Status)
		}
	}

	for _, q := range quotes {
		if term != "" && !matchesSearch(q, term, lowered) {
			continue
		}
		if f.active(f.ServiceType) && string(q.ServiceType) != strings.TrimSpace(f.ServiceType) {
			continue
		}
		if status != "" && q.Status != status {
			continue
		}
		out = append(out, q)
	}
	return out
}

func matchesSearch(q entities.Quote, term, lowered string) bool {
	return strings.Contains(strings.ToLower(q.Contact.Name), lowered) ||
		strings.Contains(q.Contact.Phone, term) ||
		strings.Contains(strings.ToLower(q.Location.Address), lowered) ||
		strings.Contains(strings.ToLower(q.AdditionalInfo), lowered)
}

// SortQuotes returns a new slice ordered by status priority, then newest first.
// Ties keep their input order.
func SortQuotes(quotes []entities.Quote) []entities.Quote {
	out := make([]entities.Quote, len(quotes))
	copy(out, quotes)
	sort.SliceStable(out, func(i, j int) bool {
		pi, pj := out[i].Status.Priority(), out[j].Status.Priority()
		if pi != pj {
			return pi < pj
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

func AggregateStats(quotes []entities.Quote) QuoteStats {
	stats := QuoteStats{
		Total:         len(quotes),
		ByStatus:      make(map[entities.QuoteStatus]int, len(entities.AllQuoteStatuses)),
		ByServiceType: make(map[entities.ServiceType]int, 2),
	}
	for _, s := range entities.AllQuoteStatuses {
		stats.ByStatus[s] = 0
	}
	for _, q := range quotes {
		stats.ByStatus[q.Status]++
		stats.ByServiceType[q.ServiceType]++
		if q.Status == entities.QuoteStatusNew {
			stats.New++
		}
	}
	return stats
}

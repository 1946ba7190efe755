package usecase

import "ponto_eletronica/internal/domain/entities"

// RecentLimit is the size of the dashboard's recent-activity list.
const RecentLimit = 5

// Stats are the dashboard counters.
type Stats struct {
	Total     int     `json:"total"`
	Pending   int     `json:"pending"`
	Completed int     `json:"completed"`
	Abandoned int     `json:"abandoned"`
	Quotes    int     `json:"quotes"`
	Revenue   float64 `json:"revenue"`
}

// Dashboard is the summary screen: counters plus the latest records.
type Dashboard struct {
	Stats  Stats                   `json:"stats"`
	Recent []entities.ServiceOrder `json:"recent"`
}

// ComputeStats counts statuses and sums the value of completed orders in one pass.
func ComputeStats(orders []entities.ServiceOrder) Stats {
	var s Stats
	for _, o := range orders {
		s.Total++
		switch o.Status {
		case entities.StatusPending:
			s.Pending++
		case entities.StatusCompleted:
			s.Completed++
			s.Revenue += o.ServiceValue.Float64()
		case entities.StatusAbandoned:
			s.Abandoned++
		case entities.StatusQuote:
			s.Quotes++
		}
	}
	return s
}

// Recent returns up to n records, most recently created first.
func Recent(orders []entities.ServiceOrder, n int) []entities.ServiceOrder {
	out := Filter(orders, Query{View: ViewHistory})
	if n >= 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

func BuildDashboard(orders []entities.ServiceOrder) Dashboard {
	return Dashboard{Stats: ComputeStats(orders), Recent: Recent(orders, RecentLimit)}
}

package usecase

import (
	"slices"
	"strings"

	"ponto_eletronica/internal/domain/entities"
)

// View is a screen of the shop UI. Each list view applies its own inclusion rule.
type View string

const (
	ViewDashboard View = "dashboard"
	ViewOrders    View = "orders"
	ViewBudgets   View = "budgets"
	ViewCreate    View = "create"
	ViewHistory   View = "history"
)

// StatusFilterAll disables the status filter.
const StatusFilterAll = "all"

// ParseStatusFilter resolves a status filter typed by the user. Blank stays
// blank, "all" and "todos" (any case) disable the filter, and everything else
// must name a status. The result is the stored wire value.
func ParseStatusFilter(v string) (string, bool) {
	v = strings.TrimSpace(v)
	switch {
	case v == "":
		return "", true
	case strings.EqualFold(v, StatusFilterAll), strings.EqualFold(v, "todos"):
		return StatusFilterAll, true
	}
	s, ok := entities.ParseStatus(v)
	if !ok {
		return "", false
	}
	return string(s), true
}

func ParseView(v string) (View, bool) {
	switch View(strings.ToLower(strings.TrimSpace(v))) {
	case ViewDashboard:
		return ViewDashboard, true
	case ViewOrders:
		return ViewOrders, true
	case ViewBudgets:
		return ViewBudgets, true
	case ViewCreate:
		return ViewCreate, true
	case ViewHistory, "":
		return ViewHistory, true
	}
	return "", false
}

// Query selects the records shown by a list view.
type Query struct {
	Search string
	Status string
	View   View
}

// Filter returns the records matching q, most recently created first.
//
// It is pure: orders is not modified and the same inputs always give the same output.
// Ties on CreatedAt keep collection order.
func Filter(orders []entities.ServiceOrder, q Query) []entities.ServiceOrder {
	search := strings.ToLower(q.Search)
	out := make([]entities.ServiceOrder, 0, len(orders))
	for _, o := range orders {
		if matchesSearch(o, search) && matchesStatus(o, q.Status) && matchesView(o, q.View) {
			out = append(out, o.Clone())
		}
	}
	sortByRecency(out)
	return out
}

func matchesSearch(o entities.ServiceOrder, term string) bool {
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(o.CustomerName), term) ||
		strings.Contains(strings.ToLower(o.EquipmentBrand), term) ||
		strings.Contains(strings.ToLower(o.ID), term)
}

func matchesStatus(o entities.ServiceOrder, status string) bool {
	if status == "" || strings.EqualFold(status, StatusFilterAll) || strings.EqualFold(status, "todos") {
		return true
	}
	return o.Status == entities.ServiceStatus(status)
}

func matchesView(o entities.ServiceOrder, view View) bool {
	switch view {
	case ViewOrders:
		return o.Status != entities.StatusQuote
	case ViewBudgets:
		return o.Status == entities.StatusQuote
	}
	return true
}

func sortByRecency(orders []entities.ServiceOrder) {
	slices.SortStableFunc(orders, func(a, b entities.ServiceOrder) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
}

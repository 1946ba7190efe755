package entities

import "strings"

// ServiceStatus is the lifecycle state of a service order.
//
// Values are the labels persisted by the shop front-end, so they are kept in
// Portuguese. Quote (orçamento) is the only status with routing behavior: it sends
// a record to the budgets view instead of the orders view.
type ServiceStatus string

const (
	StatusPending   ServiceStatus = "Pendente"
	StatusCompleted ServiceStatus = "Concluído"
	StatusAbandoned ServiceStatus = "Desistência"
	StatusQuote     ServiceStatus = "Orçamento"
)

// StatusOptions lists the statuses in the order the form shows them.
var StatusOptions = []ServiceStatus{StatusPending, StatusCompleted, StatusAbandoned, StatusQuote}

var statusAliases = map[string]ServiceStatus{
	"pending":     StatusPending,
	"pendente":    StatusPending,
	"completed":   StatusCompleted,
	"concluído":   StatusCompleted,
	"concluido":   StatusCompleted,
	"abandoned":   StatusAbandoned,
	"desistência": StatusAbandoned,
	"desistencia": StatusAbandoned,
	"quote":       StatusQuote,
	"orçamento":   StatusQuote,
	"orcamento":   StatusQuote,
}

func (s ServiceStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusCompleted, StatusAbandoned, StatusQuote:
		return true
	}
	return false
}

func (s ServiceStatus) String() string {
	return string(s)
}

// ParseStatus resolves user input (wire value or English name, any case).
func ParseStatus(v string) (ServiceStatus, bool) {
	s, ok := statusAliases[strings.ToLower(strings.TrimSpace(v))]
	return s, ok
}

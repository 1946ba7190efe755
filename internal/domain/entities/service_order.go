package entities

import (
	"slices"
	"strings"
	"time"
)

// DateLayout is the calendar format used by arrival and delivery dates.
const DateLayout = "2006-01-02"

// ServiceOrder is a repair order or a quote (orçamento) kept by the shop.
//
// Storage model: the whole collection is serialized as a JSON array into a single
// slot. Field names follow the front-end wire format.
//
// Immutable after creation:
//   - ID
//   - CreatedAt (the only recency sort key)
type ServiceOrder struct {
	ID                  string        `json:"id"`
	CustomerName        string        `json:"customerName"`
	CustomerPhone       string        `json:"customerPhone"`
	CustomerAddress     string        `json:"customerAddress"`
	EquipmentType       EquipmentType `json:"equipmentType"`
	EquipmentCustomType string        `json:"equipmentCustomType,omitempty"`
	EquipmentBrand      string        `json:"equipmentBrand"`
	ReportedDefect      string        `json:"reportedDefect"`
	ServicePerformed    string        `json:"servicePerformed"`
	ServiceValue        Amount        `json:"serviceValue"`
	EstimatedValue      *Amount       `json:"estimatedValue,omitempty"`
	GuaranteeDays       int           `json:"guaranteeDays"`
	ArrivalDate         string        `json:"arrivalDate"`
	DeliveryDate        string        `json:"deliveryDate"`
	Status              ServiceStatus `json:"status"`
	Images              []string      `json:"images"`
	CreatedAt           time.Time     `json:"createdAt"`
}

// NewServiceOrderDefaults returns the blank working copy shown by the form.
func NewServiceOrderDefaults(status ServiceStatus, now time.Time) ServiceOrder {
	if status == "" {
		status = StatusPending
	}
	return ServiceOrder{
		EquipmentType: EquipmentTV,
		GuaranteeDays: DefaultGuaranteeDays,
		ArrivalDate:   now.Format(DateLayout),
		Status:        status,
		Images:        []string{},
	}
}

func (o ServiceOrder) IsQuote() bool {
	return o.Status == StatusQuote
}

// EquipmentLabel resolves the custom label for EquipmentOther.
func (o ServiceOrder) EquipmentLabel() string {
	return o.EquipmentType.Label(o.EquipmentCustomType)
}

// Reference is the upper-cased first 8 characters of the id, printed on documents.
func (o ServiceOrder) Reference() string {
	id := []rune(o.ID)
	if len(id) > 8 {
		id = id[:8]
	}
	return strings.ToUpper(string(id))
}

// ShortID is the leading segment of the id, up to the first '-'.
func (o ServiceOrder) ShortID() string {
	seg, _, _ := strings.Cut(o.ID, "-")
	return seg
}

// Clone returns a copy that shares no slices with o.
func (o ServiceOrder) Clone() ServiceOrder {
	c := o
	c.Images = slices.Clone(o.Images)
	if o.EstimatedValue != nil {
		v := *o.EstimatedValue
		c.EstimatedValue = &v
	}
	return c
}

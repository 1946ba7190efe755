package request

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"

	"ponto_eletronica/internal/usecase"
	"ponto_eletronica/internal/usecase/form"
)

// FormValue accepts a JSON string or number and keeps it as text, so that numeric
// parsing happens in the form layer like any other typed input.
type FormValue string

func (v *FormValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = FormValue(s)
		return nil
	}
	if string(data) == "null" {
		*v = ""
		return nil
	}
	*v = FormValue(data)
	return nil
}

// ServiceOrderFormRequest is a partial form update. Absent fields are left as
// they are in the draft.
type ServiceOrderFormRequest struct {
	CustomerName        *string    `json:"customerName"`
	CustomerPhone       *string    `json:"customerPhone"`
	CustomerAddress     *string    `json:"customerAddress"`
	EquipmentType       *string    `json:"equipmentType"`
	EquipmentCustomType *string    `json:"equipmentCustomType"`
	EquipmentBrand      *string    `json:"equipmentBrand"`
	ReportedDefect      *string    `json:"reportedDefect"`
	ServicePerformed    *string    `json:"servicePerformed"`
	ServiceValue        *FormValue `json:"serviceValue" swaggertype:"string"`
	EstimatedValue      *FormValue `json:"estimatedValue" swaggertype:"string"`
	GuaranteeDays       *FormValue `json:"guaranteeDays" swaggertype:"string"`
	ArrivalDate         *string    `json:"arrivalDate"`
	DeliveryDate        *string    `json:"deliveryDate"`
	Status              *string    `json:"status"`
}

func (r ServiceOrderFormRequest) ToInput() form.Input {
	return form.Input{
		CustomerName:        r.CustomerName,
		CustomerPhone:       r.CustomerPhone,
		CustomerAddress:     r.CustomerAddress,
		EquipmentType:       r.EquipmentType,
		EquipmentCustomType: r.EquipmentCustomType,
		EquipmentBrand:      r.EquipmentBrand,
		ReportedDefect:      r.ReportedDefect,
		ServicePerformed:    r.ServicePerformed,
		ServiceValue:        formValue(r.ServiceValue),
		EstimatedValue:      formValue(r.EstimatedValue),
		GuaranteeDays:       formValue(r.GuaranteeDays),
		ArrivalDate:         r.ArrivalDate,
		DeliveryDate:        r.DeliveryDate,
		Status:              r.Status,
	}
}

func formValue(v *FormValue) *string {
	if v == nil {
		return nil
	}
	s := string(*v)
	return &s
}

// OpenDraftRequest starts a form session. EditID opens an existing record;
// otherwise Status is the entry-point hint (empty or "Orçamento").
type OpenDraftRequest struct {
	Status string `json:"status"`
	EditID string `json:"edit_id"`
}

func (r OpenDraftRequest) ResolveEditID() string {
	return strings.TrimSpace(r.EditID)
}

// ListServiceOrdersQuery are the list filters, all optional.
type ListServiceOrdersQuery struct {
	View   string `form:"view"`
	Status string `form:"status"`
	Search string `form:"q"`
}

var (
	ErrUnknownView   = errors.New("unknown view")
	ErrUnknownStatus = errors.New("unknown status")
)

// ToQuery resolves the view and status names, accepting any spelling ParseView
// and ParseStatusFilter accept.
func (q ListServiceOrdersQuery) ToQuery() (usecase.Query, error) {
	view, ok := usecase.ParseView(q.View)
	if !ok {
		return usecase.Query{}, ErrUnknownView
	}
	status, ok := usecase.ParseStatusFilter(q.Status)
	if !ok {
		return usecase.Query{}, ErrUnknownStatus
	}
	return usecase.Query{
		Search: strings.TrimSpace(q.Search),
		Status: status,
		View:   view,
	}, nil
}

type DeleteServiceOrderQuery struct {
	Confirm bool `form:"confirm"`
}

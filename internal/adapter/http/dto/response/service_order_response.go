package response

import (
	"time"

	"ponto_eletronica/internal/domain/entities"
	"ponto_eletronica/internal/usecase"
	"ponto_eletronica/internal/usecase/form"
)

type ServiceOrderResponse struct {
	ID                  string    `json:"id"`
	Reference           string    `json:"reference"`
	CustomerName        string    `json:"customerName"`
	CustomerPhone       string    `json:"customerPhone"`
	CustomerAddress     string    `json:"customerAddress"`
	EquipmentType       string    `json:"equipmentType"`
	EquipmentCustomType string    `json:"equipmentCustomType,omitempty"`
	EquipmentLabel      string    `json:"equipmentLabel"`
	EquipmentBrand      string    `json:"equipmentBrand"`
	ReportedDefect      string    `json:"reportedDefect"`
	ServicePerformed    string    `json:"servicePerformed"`
	ServiceValue        float64   `json:"serviceValue"`
	EstimatedValue      *float64  `json:"estimatedValue,omitempty"`
	GuaranteeDays       int       `json:"guaranteeDays"`
	ArrivalDate         string    `json:"arrivalDate"`
	DeliveryDate        string    `json:"deliveryDate"`
	Status              string    `json:"status"`
	Images              []string  `json:"images"`
	CreatedAt           time.Time `json:"createdAt"`
}

func FromServiceOrder(o entities.ServiceOrder) ServiceOrderResponse {
	resp := ServiceOrderResponse{
		ID:                  o.ID,
		Reference:           o.Reference(),
		CustomerName:        o.CustomerName,
		CustomerPhone:       o.CustomerPhone,
		CustomerAddress:     o.CustomerAddress,
		EquipmentType:       string(o.EquipmentType),
		EquipmentCustomType: o.EquipmentCustomType,
		EquipmentLabel:      o.EquipmentLabel(),
		EquipmentBrand:      o.EquipmentBrand,
		ReportedDefect:      o.ReportedDefect,
		ServicePerformed:    o.ServicePerformed,
		ServiceValue:        o.ServiceValue.Float64(),
		GuaranteeDays:       o.GuaranteeDays,
		ArrivalDate:         o.ArrivalDate,
		DeliveryDate:        o.DeliveryDate,
		Status:              string(o.Status),
		Images:              o.Images,
		CreatedAt:           o.CreatedAt,
	}
	if resp.Images == nil {
		resp.Images = []string{}
	}
	if o.EstimatedValue != nil {
		v := o.EstimatedValue.Float64()
		resp.EstimatedValue = &v
	}
	return resp
}

func FromServiceOrders(orders []entities.ServiceOrder) []ServiceOrderResponse {
	out := make([]ServiceOrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromServiceOrder(o))
	}
	return out
}

type ServiceOrderListResponse struct {
	Items []ServiceOrderResponse `json:"items"`
	Total int                    `json:"total"`
}

func FromServiceOrderList(orders []entities.ServiceOrder) ServiceOrderListResponse {
	items := FromServiceOrders(orders)
	return ServiceOrderListResponse{Items: items, Total: len(items)}
}

type DashboardResponse struct {
	Stats  usecase.Stats          `json:"stats"`
	Recent []ServiceOrderResponse `json:"recent"`
}

func FromDashboard(d usecase.Dashboard) DashboardResponse {
	return DashboardResponse{Stats: d.Stats, Recent: FromServiceOrders(d.Recent)}
}

// DraftResponse is an open form session and its working copy.
type DraftResponse struct {
	DraftID string               `json:"draft_id"`
	Mode    string               `json:"mode"`
	Order   ServiceOrderResponse `json:"order"`
}

func FromDraft(id string, c *form.Controller) DraftResponse {
	return DraftResponse{
		DraftID: id,
		Mode:    string(c.Mode()),
		Order:   FromServiceOrder(c.Snapshot()),
	}
}

type AttachImagesResponse struct {
	Accepted int            `json:"accepted"`
	Warnings []form.Warning `json:"warnings"`
	Draft    DraftResponse  `json:"draft"`
}

func FromAttachResult(id string, c *form.Controller, res form.AttachResult) AttachImagesResponse {
	warnings := res.Warnings
	if warnings == nil {
		warnings = []form.Warning{}
	}
	return AttachImagesResponse{
		Accepted: res.Accepted,
		Warnings: warnings,
		Draft:    FromDraft(id, c),
	}
}

type PingResponse struct {
	Message      string `json:"message"`
	Storage      string `json:"storage"`
	StorageError string `json:"storage_error,omitempty"`
}

package entities

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"
)

// UnmarshalJSON decodes a stored record field by field. Stored collections may
// have been hand-edited, so a field of the wrong type degrades to a usable value
// instead of failing the whole collection:
//   - text fields accept numbers and booleans as their literal text
//   - guaranteeDays accepts numeric strings, anything else is 0
//   - createdAt accepts RFC 3339, a plain date or epoch milliseconds, anything
//     else is the zero time (sorted last)
//
// Only a record that is not a JSON object is an error.
func (o *ServiceOrder) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	next := ServiceOrder{
		ID:                  lenientString(fields["id"]),
		CustomerName:        lenientString(fields["customerName"]),
		CustomerPhone:       lenientString(fields["customerPhone"]),
		CustomerAddress:     lenientString(fields["customerAddress"]),
		EquipmentType:       EquipmentType(lenientString(fields["equipmentType"])),
		EquipmentCustomType: lenientString(fields["equipmentCustomType"]),
		EquipmentBrand:      lenientString(fields["equipmentBrand"]),
		ReportedDefect:      lenientString(fields["reportedDefect"]),
		ServicePerformed:    lenientString(fields["servicePerformed"]),
		GuaranteeDays:       lenientInt(fields["guaranteeDays"]),
		ArrivalDate:         lenientString(fields["arrivalDate"]),
		DeliveryDate:        lenientString(fields["deliveryDate"]),
		Status:              ServiceStatus(lenientString(fields["status"])),
		Images:              lenientStrings(fields["images"]),
		CreatedAt:           lenientTime(fields["createdAt"]),
	}
	if raw, ok := fields["serviceValue"]; ok {
		_ = next.ServiceValue.UnmarshalJSON(raw)
	}
	if raw, ok := fields["estimatedValue"]; ok && !isNull(raw) {
		var v Amount
		_ = v.UnmarshalJSON(raw)
		next.EstimatedValue = &v
	}

	*o = next
	return nil
}

func isNull(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)
	return len(raw) == 0 || bytes.Equal(raw, []byte("null"))
}

func lenientString(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if isNull(raw) {
		return ""
	}
	switch raw[0] {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return ""
		}
		return s
	case '{', '[':
		return ""
	}
	return string(raw)
}

func lenientStrings(raw json.RawMessage) []string {
	if isNull(raw) {
		return nil
	}
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return []string{}
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s := lenientString(item); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func lenientInt(raw json.RawMessage) int {
	f, err := strconv.ParseFloat(strings.TrimSpace(lenientString(raw)), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return int(f)
}

func lenientTime(raw json.RawMessage) time.Time {
	raw = bytes.TrimSpace(raw)
	if isNull(raw) {
		return time.Time{}
	}
	if raw[0] != '"' {
		ms, err := strconv.ParseFloat(string(raw), 64)
		if err != nil || math.IsNaN(ms) || math.IsInf(ms, 0) {
			return time.Time{}
		}
		return time.UnixMilli(int64(ms)).UTC()
	}
	s := strings.TrimSpace(lenientString(raw))
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t
	}
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t
	}
	return time.Time{}
}

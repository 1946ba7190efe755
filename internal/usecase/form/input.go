package form

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"ponto_eletronica/internal/domain/entities"
)

// Input carries the form fields as typed by the user. Nil fields are left as they
// are in the working copy. Numeric fields stay raw strings so that parsing happens
// here, at the input boundary.
type Input struct {
	CustomerName        *string
	CustomerPhone       *string
	CustomerAddress     *string
	EquipmentType       *string
	EquipmentCustomType *string
	EquipmentBrand      *string
	ReportedDefect      *string
	ServicePerformed    *string
	ServiceValue        *string
	EstimatedValue      *string
	GuaranteeDays       *string
	ArrivalDate         *string
	DeliveryDate        *string
	Status              *string
}

// FieldError reports an input that is outside its closed set.
type FieldError struct {
	Field string
	Value string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("invalid value %q for %s", e.Value, e.Field)
}

// ParseAmountOrZero parses a currency input. Unparsable or negative input is 0.
func ParseAmountOrZero(v string) entities.Amount {
	f := entities.ParseFloatOrZero(v)
	if f < 0 {
		return 0
	}
	return entities.Amount(math.Round(f*100) / 100)
}

// ParseGuaranteeDays parses the warranty selector. Unparsable input is 0 (no
// warranty); a number outside the offered periods is rejected.
func ParseGuaranteeDays(v string) (int, error) {
	days, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0, nil
	}
	if !entities.IsValidGuarantee(days) {
		return 0, &FieldError{Field: "guaranteeDays", Value: v}
	}
	return days, nil
}

// apply copies the provided fields onto o. It either applies every field or none.
func (in Input) apply(o *entities.ServiceOrder) error {
	next := o.Clone()

	setString(&next.CustomerName, in.CustomerName)
	setString(&next.CustomerPhone, in.CustomerPhone)
	setString(&next.CustomerAddress, in.CustomerAddress)
	setString(&next.EquipmentCustomType, in.EquipmentCustomType)
	setString(&next.EquipmentBrand, in.EquipmentBrand)
	setString(&next.ReportedDefect, in.ReportedDefect)
	setString(&next.ServicePerformed, in.ServicePerformed)
	setString(&next.ArrivalDate, in.ArrivalDate)
	setString(&next.DeliveryDate, in.DeliveryDate)

	if in.EquipmentType != nil {
		e, ok := entities.ParseEquipmentType(*in.EquipmentType)
		if !ok {
			return &FieldError{Field: "equipmentType", Value: *in.EquipmentType}
		}
		next.EquipmentType = e
	}
	if in.Status != nil {
		s, ok := entities.ParseStatus(*in.Status)
		if !ok {
			return &FieldError{Field: "status", Value: *in.Status}
		}
		next.Status = s
	}
	if in.ServiceValue != nil {
		next.ServiceValue = ParseAmountOrZero(*in.ServiceValue)
	}
	if in.EstimatedValue != nil {
		if strings.TrimSpace(*in.EstimatedValue) == "" {
			next.EstimatedValue = nil
		} else {
			v := ParseAmountOrZero(*in.EstimatedValue)
			next.EstimatedValue = &v
		}
	}
	if in.GuaranteeDays != nil {
		days, err := ParseGuaranteeDays(*in.GuaranteeDays)
		if err != nil {
			return err
		}
		next.GuaranteeDays = days
	}

	*o = next
	return nil
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

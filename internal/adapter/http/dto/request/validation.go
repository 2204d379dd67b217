package request

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// ValidationError names the first field that failed boundary validation.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

func required(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return &ValidationError{Field: field, Reason: "is required"}
	}
	return nil
}

// FlexInt accepts 2020, "2020" or "" from loosely typed chat payloads.
type FlexInt int

func (f *FlexInt) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		*f = 0
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		s = strings.TrimSpace(s)
		if s == "" {
			*f = 0
			return nil
		}
		v, err := strconv.Atoi(s)
		if err != nil {
			return &ValidationError{Field: "vehicle_year", Reason: "must be a number"}
		}
		*f = FlexInt(v)
		return nil
	}
	var v int
	if err := json.Unmarshal(b, &v); err != nil {
		return &ValidationError{Field: "vehicle_year", Reason: "must be a number"}
	}
	*f = FlexInt(v)
	return nil
}

// VehicleFields is shared by every request that prices a vehicle.
type VehicleFields struct {
	VehicleYear  FlexInt `json:"vehicle_year"`
	VehicleMake  string  `json:"vehicle_make"`
	VehicleModel string  `json:"vehicle_model"`
}

func (v VehicleFields) validate() error {
	if v.VehicleYear < 0 || v.VehicleYear > 2100 {
		return &ValidationError{Field: "vehicle_year", Reason: "is out of range"}
	}
	return nil
}

// ProductFields selects the material.
type ProductFields struct {
	ProductType  string  `json:"product_type"`
	ProductID    string  `json:"product_id"`
	ProductName  string  `json:"product_name"`
	ProductPrice float64 `json:"product_price"`
}

func (p ProductFields) validate() error {
	if p.ProductPrice < 0 {
		return &ValidationError{Field: "product_price", Reason: "must not be negative"}
	}
	return nil
}

// CustomerFields identifies the quote recipient.
type CustomerFields struct {
	CustomerEmail string `json:"customer_email"`
	CustomerName  string `json:"customer_name"`
	CustomerPhone string `json:"customer_phone"`
}

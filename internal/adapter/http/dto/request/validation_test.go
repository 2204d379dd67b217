package request

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestFlexInt_UnmarshalJSON(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{`{"vehicle_year":2020}`, 2020},
		{`{"vehicle_year":"2019"}`, 2019},
		{`{"vehicle_year":" 2018 "}`, 2018},
		{`{"vehicle_year":""}`, 0},
		{`{"vehicle_year":null}`, 0},
		{`{}`, 0},
	}
	for _, tc := range cases {
		var v VehicleFields
		if err := json.Unmarshal([]byte(tc.in), &v); err != nil {
			t.Fatalf("%s: unexpected error: %v", tc.in, err)
		}
		if int(v.VehicleYear) != tc.want {
			t.Fatalf("%s: expected %d, got %d", tc.in, tc.want, v.VehicleYear)
		}
	}
}

func TestFlexInt_RejectsText(t *testing.T) {
	var v VehicleFields
	err := json.Unmarshal([]byte(`{"vehicle_year":"next year"}`), &v)
	var verr *ValidationError
	if !errors.As(err, &verr) || verr.Field != "vehicle_year" {
		t.Fatalf("expected vehicle_year validation error, got %v", err)
	}
}

func TestCreateQuoteFromChatRequest_Validate(t *testing.T) {
	r := CreateQuoteFromChatRequest{}
	err := r.Validate()
	var verr *ValidationError
	if !errors.As(err, &verr) || verr.Field != "customer_email" {
		t.Fatalf("expected customer_email error, got %v", err)
	}

	r.CustomerEmail = "a@b.com"
	if err := r.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	r.VehicleYear = 3000
	if err := r.Validate(); err == nil {
		t.Fatalf("expected year range error")
	}
}

func TestCreateQuoteDraftRequest_Validate(t *testing.T) {
	conf := 0.8
	r := CreateQuoteDraftRequest{SourceAgent: "website_chat", Confidence: &conf}
	r.CustomerEmail = "a@b.com"
	if err := r.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.ResolveConfidence() != 0.8 {
		t.Fatalf("unexpected confidence %v", r.ResolveConfidence())
	}

	bad := -0.1
	r.Confidence = &bad
	if err := r.Validate(); err == nil {
		t.Fatalf("expected confidence error")
	}

	r.Confidence = nil
	if r.ResolveConfidence() != 0.5 {
		t.Fatalf("expected default confidence 0.5")
	}

	r.SourceAgent = " "
	var verr *ValidationError
	if err := r.Validate(); !errors.As(err, &verr) || verr.Field != "source_agent" {
		t.Fatalf("expected source_agent error, got %v", err)
	}
}

func TestExecuteQuoteDraftRequest_Validate(t *testing.T) {
	if err := (ExecuteQuoteDraftRequest{}).Validate(); err == nil {
		t.Fatalf("expected draft_id error")
	}
	if err := (ExecuteQuoteDraftRequest{DraftID: "d-1"}).Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := (RejectQuoteDraftRequest{}).Validate(); err == nil {
		t.Fatalf("expected draft_id error")
	}
}

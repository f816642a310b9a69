package request

import (
	"encoding/json"
	"testing"
)

func TestQuoteSubmitRequest_ToSubmission(t *testing.T) {
	t.Run("absent nested objects become empty values", func(t *testing.T) {
		var r QuoteSubmitRequest
		if err := json.Unmarshal([]byte(`{"serviceType":"direct","cleaningType":"입주청소"}`), &r); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		s := r.ToSubmission()
		if s.ServiceType != "direct" || s.CleaningType != "입주청소" {
			t.Fatalf("unexpected submission %+v", s)
		}
		if s.Contact.Name != "" || s.Location.Address != "" || s.Space.Type != "" || s.Schedule.Urgency != "" {
			t.Fatalf("expected empty defaults, got %+v", s)
		}
	})

	t.Run("null objects and scalars", func(t *testing.T) {
		var r QuoteSubmitRequest
		body := `{"serviceType":" partner ","contact":{"name":null,"phone":12345678},"space":null,"schedule":{"urgency":true}}`
		if err := json.Unmarshal([]byte(body), &r); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		s := r.ToSubmission()
		if s.ServiceType != "partner" {
			t.Fatalf("expected trimmed service type, got %q", s.ServiceType)
		}
		if s.Contact.Name != "" || s.Contact.Phone != "12345678" || s.Schedule.Urgency != "true" {
			t.Fatalf("unexpected submission %+v", s)
		}
	})

	t.Run("full payload", func(t *testing.T) {
		var r QuoteSubmitRequest
		body := `{
			"serviceType":"direct","cleaningType":"이사청소",
			"contact":{"name":"김철수","phone":"010-1234-5678","email":"kim@example.com"},
			"location":{"address":"서울 강남구","detailAddress":"101동","floor":"3"},
			"space":{"type":"아파트","size":"32평","rooms":"3"},
			"schedule":{"preferredDate":"2025-03-10","preferredTime":"오전","urgency":"보통"},
			"additionalInfo":"베란다 포함","submittedAt":"2025-03-01T09:30:00Z"
		}`
		if err := json.Unmarshal([]byte(body), &r); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		s := r.ToSubmission()
		if s.Location.DetailAddress != "101동" || s.Space.Size != "32평" || s.Schedule.PreferredTime != "오전" ||
			s.Contact.Email != "kim@example.com" || s.SubmittedAt != "2025-03-01T09:30:00Z" {
			t.Fatalf("unexpected submission %+v", s)
		}
	})
}

func TestFlexString_RejectsStructuredValues(t *testing.T) {
	for _, body := range []string{`{"serviceType":{"a":1}}`, `{"cleaningType":["x"]}`, `{"contact":"kim"}`} {
		var r QuoteSubmitRequest
		if err := json.Unmarshal([]byte(body), &r); err == nil {
			t.Fatalf("expected error for %s", body)
		}
	}
}

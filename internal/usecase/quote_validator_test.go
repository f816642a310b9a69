package usecase

import (
	"errors"
	"reflect"
	"testing"
)

func validSubmission() QuoteSubmission {
	return QuoteSubmission{
		ServiceType:  "direct",
		CleaningType: "입주청소",
		Contact:      SubmissionContact{Name: "홍길동", Phone: "010-1234-5678", Email: "hong@example.com"},
		Location:     SubmissionLocation{Address: "서울 서초구"},
	}
}

func TestQuoteValidator_Validate(t *testing.T) {
	v := NewQuoteValidator()

	cases := []struct {
		name       string
		mutate     func(*QuoteSubmission)
		wantCode   string
		wantFields []string
	}{
		{name: "valid", mutate: func(*QuoteSubmission) {}},
		{name: "valid partner with spaced phone", mutate: func(s *QuoteSubmission) {
			s.ServiceType = "partner"
			s.Contact.Phone = " 010 1234 5678 "
		}},
		{name: "valid international phone", mutate: func(s *QuoteSubmission) { s.Contact.Phone = "+82 (10) 1234-5678" }},
		{
			name: "every required field missing",
			mutate: func(s *QuoteSubmission) {
				*s = QuoteSubmission{}
			},
			wantCode:   CodeMissingRequired,
			wantFields: []string{"serviceType", "cleaningType", "contact.name", "contact.phone", "location.address"},
		},
		{
			name:       "missing address only",
			mutate:     func(s *QuoteSubmission) { s.Location.Address = "" },
			wantCode:   CodeMissingRequired,
			wantFields: []string{"location.address"},
		},
		{
			name: "missing wins over bad service type",
			mutate: func(s *QuoteSubmission) {
				s.ServiceType = "other"
				s.CleaningType = ""
			},
			wantCode:   CodeMissingRequired,
			wantFields: []string{"cleaningType"},
		},
		{
			name:       "unknown service type",
			mutate:     func(s *QuoteSubmission) { s.ServiceType = "DIRECT" },
			wantCode:   CodeInvalidServiceType,
			wantFields: []string{"serviceType"},
		},
		{
			name: "service type wins over bad phone",
			mutate: func(s *QuoteSubmission) {
				s.ServiceType = "other"
				s.Contact.Phone = "abc"
			},
			wantCode:   CodeInvalidServiceType,
			wantFields: []string{"serviceType"},
		},
		{
			name:       "phone too short",
			mutate:     func(s *QuoteSubmission) { s.Contact.Phone = "0101234" },
			wantCode:   CodeInvalidPhoneFormat,
			wantFields: []string{"contact.phone"},
		},
		{
			name:       "phone with letters",
			mutate:     func(s *QuoteSubmission) { s.Contact.Phone = "010-CALL-ME" },
			wantCode:   CodeInvalidPhoneFormat,
			wantFields: []string{"contact.phone"},
		},
		{
			name:       "phone too long",
			mutate:     func(s *QuoteSubmission) { s.Contact.Phone = "010123456789012345678" },
			wantCode:   CodeInvalidPhoneFormat,
			wantFields: []string{"contact.phone"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := validSubmission()
			tc.mutate(&s)
			err := v.Validate(s)

			if tc.wantCode == "" {
				if err != nil {
					t.Fatalf("expected valid, got %v", err)
				}
				return
			}
			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if ve.Code != tc.wantCode {
				t.Fatalf("code = %q, want %q", ve.Code, tc.wantCode)
			}
			if !reflect.DeepEqual(ve.Fields, tc.wantFields) {
				t.Fatalf("fields = %v, want %v", ve.Fields, tc.wantFields)
			}
			if ve.Message == "" {
				t.Fatalf("expected a user-facing message")
			}
		})
	}
}

func TestValidPhone(t *testing.T) {
	if !ValidPhone("010\t1234\n5678") {
		t.Fatalf("whitespace must be stripped before matching")
	}
	if ValidPhone("") {
		t.Fatalf("empty phone must not match")
	}
}

package usecase

import (
	"errors"
	"reflect"
	"regexp"
	"strings"
	"unicode"

	"quotedesk/internal/domain/entities"

	"github.com/go-playground/validator/v10"
)

var phonePattern = regexp.MustCompile(`^[0-9+\-() ]{8,20}$`)

type SubmissionContact struct {
	Name  string `json:"name" validate:"required"`
	Phone string `json:"phone" validate:"required,quote_phone"`
	Email string `json:"email"`
}

type SubmissionLocation struct {
	Address       string `json:"address" validate:"required"`
	DetailAddress string `json:"detailAddress"`
	Floor         string `json:"floor"`
}

// QuoteSubmission is a normalized intake payload: every optional nested
// object has already been replaced with empty strings.
type QuoteSubmission struct {
	ServiceType    string                 `json:"serviceType" validate:"required,oneof=direct partner"`
	CleaningType   string                 `json:"cleaningType" validate:"required"`
	Contact        SubmissionContact      `json:"contact"`
	Location       SubmissionLocation     `json:"location"`
	Space          entities.QuoteSpace    `json:"space"`
	Schedule       entities.QuoteSchedule `json:"schedule"`
	AdditionalInfo string                 `json:"additionalInfo"`
	SubmittedAt    string                 `json:"submittedAt"`
}

// QuoteValidator checks intake payloads against the quote schema.
type QuoteValidator struct {
	v *validator.Validate
}

func NewQuoteValidator() *QuoteValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("quote_phone", func(fl validator.FieldLevel) bool {
		return ValidPhone(fl.Field().String())
	})
	return &QuoteValidator{v: v}
}

// ValidPhone strips whitespace and matches the accepted phone character set.
func ValidPhone(phone string) bool {
	stripped := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, phone)
	return phonePattern.MatchString(stripped)
}

// Validate returns nil or a *ValidationError. Missing required fields win
// over an unknown service type, which wins over a malformed phone.
func (qv *QuoteValidator) Validate(s QuoteSubmission) error {
	err := qv.v.Struct(s)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return NewInvalidBodyError()
	}

	var missing []string
	var badService, badPhone bool
	for _, fe := range fieldErrs {
		switch fe.Tag() {
		case "required":
			missing = append(missing, fieldPath(fe.Namespace()))
		case "oneof":
			badService = true
		case "quote_phone":
			badPhone = true
		}
	}

	switch {
	case len(missing) > 0:
		return &ValidationError{Code: CodeMissingRequired, Message: "필수 항목을 입력해주세요.", Fields: missing}
	case badService:
		return &ValidationError{Code: CodeInvalidServiceType, Message: "올바른 서비스 유형을 선택해주세요.", Fields: []string{"serviceType"}}
	case badPhone:
		return &ValidationError{Code: CodeInvalidPhoneFormat, Message: "올바른 연락처를 입력해주세요.", Fields: []string{"contact.phone"}}
	}
	return NewInvalidBodyError()
}

// fieldPath drops the root struct name: "QuoteSubmission.contact.name" -> "contact.name".
func fieldPath(ns string) string {
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

package request

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"quotedesk/internal/domain/entities"
	"quotedesk/internal/usecase"
)

// FlexString accepts a JSON string, number or boolean and keeps its text.
// null decodes to "".
type FlexString string

func (s *FlexString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*s = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var v string
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		*s = FlexString(v)
		return nil
	}
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	switch v.(type) {
	case float64, bool:
		*s = FlexString(string(b))
		return nil
	}
	return fmt.Errorf("expected a scalar value, got %s", b)
}

func (s FlexString) String() string {
	return strings.TrimSpace(string(s))
}

type ContactRequest struct {
	Name  FlexString `json:"name"`
	Phone FlexString `json:"phone"`
	Email FlexString `json:"email"`
}

type LocationRequest struct {
	Address       FlexString `json:"address"`
	DetailAddress FlexString `json:"detailAddress"`
	Floor         FlexString `json:"floor"`
}

type SpaceRequest struct {
	Type  FlexString `json:"type"`
	Size  FlexString `json:"size"`
	Rooms FlexString `json:"rooms"`
}

type ScheduleRequest struct {
	PreferredDate FlexString `json:"preferredDate"`
	PreferredTime FlexString `json:"preferredTime"`
	Urgency       FlexString `json:"urgency"`
}

// QuoteSubmitRequest is the public intake payload. Every nested object is
// optional on the wire.
type QuoteSubmitRequest struct {
	ServiceType    FlexString       `json:"serviceType" example:"direct"`
	CleaningType   FlexString       `json:"cleaningType" example:"입주청소"`
	Contact        *ContactRequest  `json:"contact"`
	Location       *LocationRequest `json:"location"`
	Space          *SpaceRequest    `json:"space"`
	Schedule       *ScheduleRequest `json:"schedule"`
	AdditionalInfo FlexString       `json:"additionalInfo"`
	SubmittedAt    FlexString       `json:"submittedAt" example:"2025-03-01T09:30:00Z"`
}

// ToSubmission replaces absent nested objects with empty values and trims
// every field.
func (r QuoteSubmitRequest) ToSubmission() usecase.QuoteSubmission {
	contact := ContactRequest{}
	if r.Contact != nil {
		contact = *r.Contact
	}
	location := LocationRequest{}
	if r.Location != nil {
		location = *r.Location
	}
	space := SpaceRequest{}
	if r.Space != nil {
		space = *r.Space
	}
	schedule := ScheduleRequest{}
	if r.Schedule != nil {
		schedule = *r.Schedule
	}

	return usecase.QuoteSubmission{
		ServiceType:  r.ServiceType.String(),
		CleaningType: r.CleaningType.String(),
		Contact: usecase.SubmissionContact{
			Name:  contact.Name.String(),
			Phone: contact.Phone.String(),
			Email: contact.Email.String(),
		},
		Location: usecase.SubmissionLocation{
			Address:       location.Address.String(),
			DetailAddress: location.DetailAddress.String(),
			Floor:         location.Floor.String(),
		},
		Space: entities.QuoteSpace{
			Type:  space.Type.String(),
			Size:  space.Size.String(),
			Rooms: space.Rooms.String(),
		},
		Schedule: entities.QuoteSchedule{
			PreferredDate: schedule.PreferredDate.String(),
			PreferredTime: schedule.PreferredTime.String(),
			Urgency:       schedule.Urgency.String(),
		},
		AdditionalInfo: r.AdditionalInfo.String(),
		SubmittedAt:    r.SubmittedAt.String(),
	}
}

type StatusUpdateRequest struct {
	Status string `json:"status" binding:"required" example:"contacted"`
}

type TestNotificationRequest struct {
	Type string `json:"type" example:"test"`
}

package entities

import (
	"encoding/json"
	"strings"
	"time"
)

// QuoteStatus represents the lifecycle of a quote request (견적 요청).
//
// Domain notes:
//   - Any status may move to any other status; there is no transition table.
//   - "pending" is a legacy spelling of "new" kept only for input compatibility.

type QuoteStatus string

const (
	QuoteStatusNew        QuoteStatus = "new"
	QuoteStatusContacted  QuoteStatus = "contacted"
	QuoteStatusInProgress QuoteStatus = "in_progress"
	QuoteStatusCompleted  QuoteStatus = "completed"
	QuoteStatusCancelled  QuoteStatus = "cancelled"

	legacyQuoteStatusPending = "pending"
)

// AllQuoteStatuses lists the recognized statuses in priority order.
var AllQuoteStatuses = []QuoteStatus{
	QuoteStatusNew,
	QuoteStatusContacted,
	QuoteStatusInProgress,
	QuoteStatusCompleted,
	QuoteStatusCancelled,
}

// ParseQuoteStatus resolves raw input into a canonical status.
func ParseQuoteStatus(raw string) (QuoteStatus, bool) {
	v := strings.ToLower(strings.TrimSpace(raw))
	if v == legacyQuoteStatusPending {
		return QuoteStatusNew, true
	}
	for _, s := range AllQuoteStatuses {
		if string(s) == v {
			return s, true
		}
	}
	return "", false
}

// UnmarshalJSON folds the legacy "pending" spelling into "new" so documents
// written by older builds read back canonical. Unknown values are kept as-is.
func (s *QuoteStatus) UnmarshalJSON(b []byte) error {
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	if parsed, ok := ParseQuoteStatus(raw); ok {
		*s = parsed
		return nil
	}
	*s = QuoteStatus(raw)
	return nil
}

// Priority is the operational urgency of a status; lower sorts first.
func (s QuoteStatus) Priority() int {
	switch s {
	case QuoteStatusNew:
		return 1
	case QuoteStatusContacted:
		return 2
	case QuoteStatusInProgress:
		return 3
	case QuoteStatusCompleted:
		return 4
	case QuoteStatusCancelled:
		return 5
	}
	return 999
}

// Label returns the admin-facing Korean label.
func (s QuoteStatus) Label() string {
	switch s {
	case QuoteStatusContacted:
		return "연락완료"
	case QuoteStatusInProgress:
		return "진행중"
	case QuoteStatusCompleted:
		return "완료"
	case QuoteStatusCancelled:
		return "취소"
	}
	return "새요청"
}

type ServiceType string

const (
	ServiceTypeDirect  ServiceType = "direct"
	ServiceTypePartner ServiceType = "partner"
)

func (t ServiceType) Valid() bool {
	return t == ServiceTypeDirect || t == ServiceTypePartner
}

func (t ServiceType) Label() string {
	if t == ServiceTypeDirect {
		return "직접청소"
	}
	return "업체연결"
}

type QuoteContact struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

type QuoteLocation struct {
	Address       string `json:"address"`
	DetailAddress string `json:"detailAddress"`
	Floor         string `json:"floor"`
}

type QuoteSpace struct {
	Type  string `json:"type"`
	Size  string `json:"size"`
	Rooms string `json:"rooms"`
}

type QuoteSchedule struct {
	PreferredDate string `json:"preferredDate"`
	PreferredTime string `json:"preferredTime"`
	Urgency       string `json:"urgency"`
}

// Quote is one customer's service request and its processing status.
//
// Storage model:
//   - file backend: one JSON array document, field names as tagged below.
//   - DynamoDB backend: PK id.
//
// UpdatedAt is nil until the first status change.
type Quote struct {
	ID             string        `json:"id"`
	ServiceType    ServiceType   `json:"serviceType"`
	CleaningType   string        `json:"cleaningType"`
	Contact        QuoteContact  `json:"contact"`
	Location       QuoteLocation `json:"location"`
	Space          QuoteSpace    `json:"space"`
	Schedule       QuoteSchedule `json:"schedule"`
	AdditionalInfo string        `json:"additionalInfo"`
	Status         QuoteStatus   `json:"status"`
	CreatedAt      time.Time     `json:"createdAt"`
	SubmittedAt    time.Time     `json:"submittedAt"`
	UpdatedAt      *time.Time    `json:"updatedAt,omitempty"`
}

// Region joins address and detail address the way the admin list shows it.
func (q Quote) Region() string {
	return strings.TrimSpace(q.Location.Address + " " + q.Location.DetailAddress)
}

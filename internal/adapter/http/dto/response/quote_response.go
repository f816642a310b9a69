package response

import (
	"time"

	"quotedesk/internal/domain/entities"
	"quotedesk/internal/usecase"
)

const SubmitSuccessMessage = "견적 요청이 성공적으로 접수되었습니다. 곧 연락드리겠습니다."

type SubmitResponse struct {
	OK      bool   `json:"ok"`
	ID      string `json:"id"`
	Message string `json:"message"`
}

func FromSubmitted(q entities.Quote) SubmitResponse {
	return SubmitResponse{OK: true, ID: q.ID, Message: SubmitSuccessMessage}
}

// QuoteView is a stored quote plus the labels the admin list shows.
type QuoteView struct {
	ID               string                 `json:"id"`
	ServiceType      string                 `json:"serviceType"`
	ServiceTypeLabel string                 `json:"serviceTypeLabel"`
	CleaningType     string                 `json:"cleaningType"`
	Contact          entities.QuoteContact  `json:"contact"`
	Location         entities.QuoteLocation `json:"location"`
	Region           string                 `json:"region"`
	Space            entities.QuoteSpace    `json:"space"`
	Schedule         entities.QuoteSchedule `json:"schedule"`
	AdditionalInfo   string                 `json:"additionalInfo"`
	Status           string                 `json:"status"`
	StatusLabel      string                 `json:"statusLabel"`
	CreatedAt        time.Time              `json:"createdAt"`
	SubmittedAt      time.Time              `json:"submittedAt"`
	UpdatedAt        *time.Time             `json:"updatedAt,omitempty"`
}

func FromQuote(q entities.Quote) QuoteView {
	return QuoteView{
		ID:               q.ID,
		ServiceType:      string(q.ServiceType),
		ServiceTypeLabel: q.ServiceType.Label(),
		CleaningType:     q.CleaningType,
		Contact:          q.Contact,
		Location:         q.Location,
		Region:           q.Region(),
		Space:            q.Space,
		Schedule:         q.Schedule,
		AdditionalInfo:   q.AdditionalInfo,
		Status:           string(q.Status),
		StatusLabel:      q.Status.Label(),
		CreatedAt:        q.CreatedAt,
		SubmittedAt:      q.SubmittedAt,
		UpdatedAt:        q.UpdatedAt,
	}
}

func FromQuotes(quotes []entities.Quote) []QuoteView {
	out := make([]QuoteView, 0, len(quotes))
	for _, q := range quotes {
		out = append(out, FromQuote(q))
	}
	return out
}

type QuoteResponse struct {
	OK    bool      `json:"ok"`
	Quote QuoteView `json:"quote"`
}

type QuoteListResponse struct {
	OK     bool               `json:"ok"`
	Quotes []QuoteView        `json:"quotes"`
	Stats  usecase.QuoteStats `json:"stats"`
}

type StatsResponse struct {
	OK    bool               `json:"ok"`
	Stats usecase.QuoteStats `json:"stats"`
}

type MessageResponse struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
}

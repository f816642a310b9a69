package response

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"quotedesk/internal/domain/entities"
)

func TestFromQuote(t *testing.T) {
	created := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	q := entities.Quote{
		ID:          "QUOTE_1",
		ServiceType: entities.ServiceTypePartner,
		Location:    entities.QuoteLocation{Address: "서울 강남구", DetailAddress: "101동"},
		Status:      entities.QuoteStatusInProgress,
		CreatedAt:   created,
	}

	v := FromQuote(q)
	if v.Region != "서울 강남구 101동" || v.StatusLabel != "진행중" || v.ServiceTypeLabel != "업체연결" {
		t.Fatalf("unexpected view %+v", v)
	}

	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Contains(string(b), "updatedAt") {
		t.Fatalf("updatedAt must be omitted until the first status change: %s", b)
	}
}

func TestFromQuotes_EmptyIsArray(t *testing.T) {
	b, _ := json.Marshal(QuoteListResponse{OK: true, Quotes: FromQuotes(nil)})
	if !strings.Contains(string(b), `"quotes":[]`) {
		t.Fatalf("expected empty array, got %s", b)
	}
}

func TestFromSubmitted(t *testing.T) {
	r := FromSubmitted(entities.Quote{ID: "QUOTE_9"})
	if !r.OK || r.ID != "QUOTE_9" || r.Message != SubmitSuccessMessage {
		t.Fatalf("unexpected response %+v", r)
	}
}

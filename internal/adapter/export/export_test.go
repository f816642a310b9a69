package export

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"quotedesk/internal/domain/entities"

	"github.com/xuri/excelize/v2"
)

func exportFixture() []entities.Quote {
	return []entities.Quote{
		{
			ID:             "QUOTE_1",
			ServiceType:    entities.ServiceTypeDirect,
			CleaningType:   "입주청소",
			Contact:        entities.QuoteContact{Name: "홍길동", Phone: "010-1234-5678"},
			Location:       entities.QuoteLocation{Address: "서울 서초구", DetailAddress: "101호"},
			AdditionalInfo: `창문 "꼭", 베란다`,
			Status:         entities.QuoteStatusInProgress,
			CreatedAt:      time.Date(2025, 3, 1, 9, 30, 5, 0, time.UTC),
		},
		{
			ID:          "QUOTE_2",
			ServiceType: entities.ServiceTypePartner,
			Status:      entities.QuoteStatus("archived"),
		},
	}
}

func TestCSVExporter_EmptyCollection(t *testing.T) {
	got := string(NewCSVExporter().Export(nil))
	if got != CSVHeader+"\n" {
		t.Fatalf("expected header only, got %q", got)
	}
}

func TestCSVExporter_Rows(t *testing.T) {
	got := string(NewCSVExporter().Export(exportFixture()))
	lines := strings.Split(got, "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header + 2 rows, got %d: %q", len(lines), got)
	}
	if lines[0] != CSVHeader {
		t.Fatalf("unexpected header %q", lines[0])
	}

	want1 := `2025. 3. 1. 오후 6:30:05,홍길동,010-1234-5678,서울 서초구 101호,직접청소,입주청소,"창문 ""꼭"", 베란다",진행중`
	if lines[1] != want1 {
		t.Fatalf("row 1:\n got %q\nwant %q", lines[1], want1)
	}
	want2 := `날짜없음,이름없음,연락처없음,주소없음,업체연결,유형없음,"",새요청`
	if lines[2] != want2 {
		t.Fatalf("row 2:\n got %q\nwant %q", lines[2], want2)
	}
}

func TestCSVExporter_ErrorRow(t *testing.T) {
	quotes := exportFixture()
	quotes = append(quotes, entities.Quote{Contact: entities.QuoteContact{Name: "no id"}})

	lines := strings.Split(string(NewCSVExporter().Export(quotes)), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d", len(lines))
	}
	if lines[3] != "오류,오류,오류,오류,오류,오류,오류,오류" {
		t.Fatalf("unexpected error row %q", lines[3])
	}
	if !strings.HasPrefix(lines[1], "2025. 3. 1.") {
		t.Fatalf("other rows must still render, got %q", lines[1])
	}
}

func TestCSVExporter_FormatTimestamp(t *testing.T) {
	e := NewCSVExporter()
	cases := map[time.Time]string{
		time.Date(2025, 12, 31, 15, 0, 0, 0, time.UTC): "2026. 1. 1. 오전 12:00:00",
		time.Date(2025, 6, 1, 3, 4, 5, 0, time.UTC):    "2025. 6. 1. 오후 12:04:05",
		time.Date(2025, 6, 1, 0, 0, 9, 0, time.UTC):    "2025. 6. 1. 오전 9:00:09",
	}
	for in, want := range cases {
		if got := e.FormatTimestamp(in); got != want {
			t.Fatalf("FormatTimestamp(%v) = %q, want %q", in, got, want)
		}
	}
}

func TestEscapeField(t *testing.T) {
	if escapeField("plain") != "plain" {
		t.Fatalf("plain field must not be quoted")
	}
	if got := escapeField("a,b"); got != `"a,b"` {
		t.Fatalf("got %q", got)
	}
	if got := escapeField("line\nbreak"); got != "\"line\nbreak\"" {
		t.Fatalf("got %q", got)
	}
}

func TestXLSXExporter_Export(t *testing.T) {
	quotes := exportFixture()
	quotes = append(quotes, entities.Quote{})

	data, err := NewXLSXExporter().Export(quotes)
	if err != nil {
		t.Fatalf("export: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(xlsxSheet)
	if err != nil {
		t.Fatalf("rows: %v", err)
	}
	if len(rows) != 4 {
		t.Fatalf("expected header + 3 rows, got %d", len(rows))
	}
	if strings.Join(rows[0], ",") != CSVHeader {
		t.Fatalf("unexpected header %v", rows[0])
	}
	if rows[1][1] != "홍길동" || rows[1][6] != `창문 "꼭", 베란다` || rows[1][7] != "진행중" {
		t.Fatalf("unexpected row %v", rows[1])
	}
	if rows[3][0] != "오류" {
		t.Fatalf("expected error row, got %v", rows[3])
	}
}

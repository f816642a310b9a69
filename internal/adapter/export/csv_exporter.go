package export

import (
	"fmt"
	"strings"
	"time"

	"quotedesk/internal/domain/entities"
	"quotedesk/internal/infrastructure/logging"

	"github.com/sirupsen/logrus"
)

// CSVHeader is the first line of every admin export.
const CSVHeader = "접수시간,이름,연락처,지역,서비스,청소유형,요청내용,상태"

const columnCount = 8

var kst = time.FixedZone("KST", 9*60*60)

var errorRow = strings.TrimSuffix(strings.Repeat("오류,", columnCount), ",")

// CSVExporter renders quotes the way the admin spreadsheet expects them.
type CSVExporter struct {
	loc *time.Location
}

func NewCSVExporter() *CSVExporter {
	return &CSVExporter{loc: kst}
}

// Export returns the header plus one line per quote. A quote that cannot be
// rendered becomes an all-"오류" row instead of failing the export.
func (e *CSVExporter) Export(quotes []entities.Quote) []byte {
	var b strings.Builder
	b.WriteString(CSVHeader)
	b.WriteByte('\n')

	rows := make([]string, 0, len(quotes))
	for i, q := range quotes {
		row, err := e.row(q)
		if err != nil {
			logging.L().WithFields(logrus.Fields{"index": i, "id": q.ID, "err": err}).
				Warn("[quote][export] csv row failed")
			row = errorRow
		}
		rows = append(rows, row)
	}
	b.WriteString(strings.Join(rows, "\n"))
	return []byte(b.String())
}

func (e *CSVExporter) row(q entities.Quote) (row string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("render panic: %v", r)
		}
	}()
	if strings.TrimSpace(q.ID) == "" {
		return "", fmt.Errorf("quote without id")
	}

	fields := []string{
		escapeField(e.FormatTimestamp(q.CreatedAt)),
		escapeField(orDefault(q.Contact.Name, "이름없음")),
		escapeField(orDefault(q.Contact.Phone, "연락처없음")),
		escapeField(Region(q)),
		escapeField(q.ServiceType.Label()),
		escapeField(orDefault(q.CleaningType, "유형없음")),
		quoteField(q.AdditionalInfo),
		escapeField(q.Status.Label()),
	}
	return strings.Join(fields, ","), nil
}

// FormatTimestamp renders t like the ko-KR locale does, in Korean time:
// "2025. 3. 1. 오후 6:30:00". A zero time is "날짜없음".
func (e *CSVExporter) FormatTimestamp(t time.Time) string {
	if t.IsZero() {
		return "날짜없음"
	}
	t = t.In(e.loc)
	meridiem := "오전"
	if t.Hour() >= 12 {
		meridiem = "오후"
	}
	hour := t.Hour() % 12
	if hour == 0 {
		hour = 12
	}
	return fmt.Sprintf("%d. %d. %d. %s %d:%02d:%02d",
		t.Year(), int(t.Month()), t.Day(), meridiem, hour, t.Minute(), t.Second())
}

// Region is "address detailAddress" trimmed, or "주소없음" without an address.
func Region(q entities.Quote) string {
	address := orDefault(q.Location.Address, "주소없음")
	return strings.TrimSpace(address + " " + q.Location.DetailAddress)
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func quoteField(v string) string {
	return `"` + strings.ReplaceAll(v, `"`, `""`) + `"`
}

func escapeField(v string) string {
	if strings.ContainsAny(v, ",\"\r\n") {
		return quoteField(v)
	}
	return v
}

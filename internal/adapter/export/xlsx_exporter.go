package export

import (
	"fmt"
	"strings"

	"quotedesk/internal/domain/entities"

	"github.com/xuri/excelize/v2"
)

const xlsxSheet = "quotes"

// XLSXExporter writes the same columns as the CSV export into a workbook.
type XLSXExporter struct {
	csv *CSVExporter
}

func NewXLSXExporter() *XLSXExporter {
	return &XLSXExporter{csv: NewCSVExporter()}
}

func (e *XLSXExporter) Export(quotes []entities.Quote) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), xlsxSheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	header := strings.Split(CSVHeader, ",")
	if err := setRow(f, 1, header); err != nil {
		return nil, err
	}
	if err := f.SetPanes(xlsxSheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return nil, fmt.Errorf("freeze header: %w", err)
	}

	for i, q := range quotes {
		if err := setRow(f, i+2, e.cells(q)); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func (e *XLSXExporter) cells(q entities.Quote) []string {
	if strings.TrimSpace(q.ID) == "" {
		return strings.Split(errorRow, ",")
	}
	return []string{
		e.csv.FormatTimestamp(q.CreatedAt),
		orDefault(q.Contact.Name, "이름없음"),
		orDefault(q.Contact.Phone, "연락처없음"),
		Region(q),
		q.ServiceType.Label(),
		orDefault(q.CleaningType, "유형없음"),
		q.AdditionalInfo,
		q.Status.Label(),
	}
}

func setRow(f *excelize.File, row int, values []string) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	vals := make([]interface{}, len(values))
	for i, v := range values {
		vals[i] = v
	}
	if err := f.SetSheetRow(xlsxSheet, cell, &vals); err != nil {
		return fmt.Errorf("write row %d: %w", row, err)
	}
	return nil
}

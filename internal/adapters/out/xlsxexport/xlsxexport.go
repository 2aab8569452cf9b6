// Package xlsxexport renders the sample reports as XLSX workbooks.
package xlsxexport

import (
	"fmt"
	"io"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// ContentType is the MIME type of the written workbooks.
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

const dateLayout = "2006-01-02"

type Column struct {
	Title string
	Width float64
}

// Sheet is a single-sheet workbook: a bold header row followed by Rows.
type Sheet struct {
	Name    string
	Columns []Column
	Rows    [][]any
}

// Write renders sheet as a workbook into w.
func Write(w io.Writer, sheet Sheet) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	name := sheet.Name
	if name == "" {
		name = "Sheet1"
	}
	if err := f.SetSheetName("Sheet1", name); err != nil {
		return err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#D9E1F2"}},
		Border: []excelize.Border{
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})
	if err != nil {
		return err
	}

	header := make([]any, len(sheet.Columns))
	for i, c := range sheet.Columns {
		header[i] = c.Title
		col, colErr := excelize.ColumnNumberToName(i + 1)
		if colErr != nil {
			return colErr
		}
		if c.Width > 0 {
			if err = f.SetColWidth(name, col, col, c.Width); err != nil {
				return err
			}
		}
	}
	if err = f.SetSheetRow(name, "A1", &header); err != nil {
		return err
	}
	if len(sheet.Columns) > 0 {
		last, _ := excelize.ColumnNumberToName(len(sheet.Columns))
		if err = f.SetCellStyle(name, "A1", last+"1", headerStyle); err != nil {
			return err
		}
	}

	for i, row := range sheet.Rows {
		values := make([]any, len(row))
		for j, v := range row {
			values[j] = cellValue(v)
		}
		if err = f.SetSheetRow(name, fmt.Sprintf("A%d", i+2), &values); err != nil {
			return err
		}
	}

	return f.Write(w)
}

// cellValue converts quantities to numbers and dates to ISO text.
func cellValue(v any) any {
	switch value := v.(type) {
	case decimal.Decimal:
		return value.InexactFloat64()
	case time.Time:
		return value.Format(dateLayout)
	case *time.Time:
		if value == nil {
			return ""
		}
		return value.Format(dateLayout)
	default:
		return v
	}
}

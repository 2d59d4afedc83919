package export

import (
	"io"

	"github.com/xuri/excelize/v2"

	"jobtrack-backend/internal/jobs"
)

const sheetName = "Applications"

// Column widths mirror the export layout the dashboard has always produced.
var columnWidths = []float64{20, 30, 15, 15, 15, 12, 40, 40, 12}

// WriteXLSX renders the record set as an XLSX workbook with a single
// Applications sheet and writes it to w.
func WriteXLSX(w io.Writer, snapshot []jobs.Job) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return err
	}

	header := make([]interface{}, len(Columns))
	for i, col := range Columns {
		header[i] = col
	}
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return err
	}

	for i, row := range Rows(snapshot) {
		cells := make([]interface{}, len(row))
		for j, val := range row {
			cells[j] = val
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheetName, cell, &cells); err != nil {
			return err
		}
	}

	for i, width := range columnWidths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheetName, col, col, width); err != nil {
			return err
		}
	}

	return f.Write(w)
}

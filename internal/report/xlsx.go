package report

import (
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/fenwickmays/receiptproc/internal/extraction"
)

const sheetName = "Expenses"

// WriteXLSX writes the records as an XLSX workbook with the same columns
// as the CSV output.
func WriteXLSX(w io.Writer, records []extraction.Record) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return err
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return err
	}

	for i, h := range Columns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheetName, cell, h); err != nil {
			return err
		}
	}

	for row, r := range records {
		values := []string{r.Filename, r.Date, r.Cost, r.Comment, r.Review}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				return err
			}
		}
	}

	return f.Write(w)
}

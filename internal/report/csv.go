// Package report serializes receipt records for expense submission.
package report

import (
	"encoding/csv"
	"io"

	"github.com/fenwickmays/receiptproc/internal/extraction"
)

// Columns is the fixed output header, in order.
var Columns = []string{"Filename", "Date", "Cost", "Comment", "Review"}

// WriteCSV writes one header row followed by one row per record, UTF-8
// encoded, fields quoted as needed by encoding/csv.
func WriteCSV(w io.Writer, records []extraction.Record) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(Columns); err != nil {
		return err
	}
	for _, r := range records {
		if err := cw.Write([]string{r.Filename, r.Date, r.Cost, r.Comment, r.Review}); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

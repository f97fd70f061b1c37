package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffhelp"

	"github.com/fenwickmays/receiptproc/internal/email"
	"github.com/fenwickmays/receiptproc/internal/extraction"
	"github.com/fenwickmays/receiptproc/internal/ingest"
	"github.com/fenwickmays/receiptproc/internal/logger"
	"github.com/fenwickmays/receiptproc/internal/pdftext"
	"github.com/fenwickmays/receiptproc/internal/report"
)

func main() {
	fs := ff.NewFlagSet("receiptproc")
	var (
		output  = fs.StringLong("out", "", "Output file path (default <dir>/expenses.csv)")
		format  = fs.StringLong("format", "csv", "Output format: 'csv' or 'xlsx'")
		verbose = fs.BoolLong("verbose", "Enable debug logging")
	)

	if err := ff.Parse(fs, os.Args[1:],
		ff.WithEnvVarPrefix("RECEIPTPROC"),
	); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", ffhelp.Flags(fs))
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	args := fs.GetArgs()
	if len(args) != 1 {
		fmt.Fprintf(os.Stderr, "usage: receiptproc [flags] <directory>\n")
		fmt.Fprintf(os.Stderr, "%s\n", ffhelp.Flags(fs))
		os.Exit(1)
	}
	targetDir := args[0]

	info, err := os.Stat(targetDir)
	if err != nil || !info.IsDir() {
		fmt.Fprintf(os.Stderr, "error: %s is not a valid directory\n", targetDir)
		os.Exit(1)
	}

	log := logger.New(*verbose).With().
		Str("run_id", uuid.New().String()).
		Logger()

	files, skipped, err := ingest.Discover(targetDir)
	if err != nil {
		log.Error().Err(err).Msg("directory scan failed")
		os.Exit(1)
	}
	if skipped > 0 {
		log.Info().Int("count", skipped).Msg("skipping pre-approval files")
	}
	if len(files) == 0 {
		log.Info().Str("dir", targetDir).Msg("no receipt files found")
		return
	}

	log.Info().Int("count", len(files)).Msg("processing receipts")

	engine := extraction.NewEngine(pdftext.NewReader(pdftext.NoOCR{}, log), log)

	records := make([]extraction.Record, 0, len(files))
	for _, file := range files {
		log.Info().Str("file", filepath.Base(file)).Msg("processing")
		records = append(records, processFile(engine, file))
	}

	outPath := *output
	if outPath == "" {
		outPath = filepath.Join(targetDir, "expenses."+*format)
	}

	if err := writeReport(outPath, *format, records); err != nil {
		log.Error().Err(err).Str("path", outPath).Msg("report write failed")
		os.Exit(1)
	}

	log.Info().Str("path", outPath).Int("records", len(records)).Msg("expense report written")
}

// processFile routes emails to the email parser and everything else
// through the extraction engine.
func processFile(engine *extraction.Engine, path string) extraction.Record {
	filename := filepath.Base(path)

	if strings.EqualFold(filepath.Ext(path), ".eml") {
		rcpt, err := email.ParseFile(path)
		if err != nil {
			return extraction.Record{
				Filename: filename,
				Comment:  fmt.Sprintf("Could not extract text from %s", filename),
				Review:   "REVIEW: no text extracted",
			}
		}
		details := rcpt.Details
		if details == "" {
			details = rcpt.Vendor + " booking"
		}
		return extraction.NewRecord(filename, rcpt.Date, rcpt.Cost, details)
	}

	return engine.Process(path)
}

func writeReport(path, format string, records []extraction.Record) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	switch format {
	case "xlsx":
		return report.WriteXLSX(f, records)
	case "csv":
		return report.WriteCSV(f, records)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

package extraction

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/rs/zerolog"
)

// Record is the single output unit for one receipt file. Date and Cost
// are "" when absent; Review lists the missing fields when either is.
type Record struct {
	Filename string
	Date     string
	Cost     string
	Comment  string
	Review   string
}

// TextSource supplies best-effort text for a receipt file. Text is the
// primary (embedded text layer) extraction; OCRText renders the document
// and recognizes it. Either may return empty text without error.
type TextSource interface {
	Text(path string) (string, error)
	OCRText(path string) (string, error)
}

// Engine runs the full per-file pipeline: text acquisition with quality
// fallback, classification, date/cost extraction and detail summary.
// It holds no per-file state and is safe to reuse across files.
type Engine struct {
	src TextSource
	log zerolog.Logger
}

func NewEngine(src TextSource, log zerolog.Logger) *Engine {
	return &Engine{src: src, log: log}
}

// tubeTravelDateRe finds a travel date on TfL statements: a date
// immediately followed by a fare, as opposed to the statement date.
var tubeTravelDateRe = regexp.MustCompile(`(\d{2}/\d{2}/\d{4})\s+£\d+\.\d{2}`)

// Process turns one receipt file into a Record. It never returns an
// error: every failure mode degrades into a flagged, low-information
// record.
func (e *Engine) Process(path string) Record {
	filename := filepath.Base(path)

	text := e.acquireText(path)
	if strings.TrimSpace(text) == "" {
		return Record{
			Filename: filename,
			Comment:  fmt.Sprintf("Could not extract text from %s", filename),
			Review:   "REVIEW: no text extracted",
		}
	}

	category := ClassifyReceipt(text)

	var date string
	if category == CategoryTube {
		// Prefer the travel date over the statement date.
		if m := tubeTravelDateRe.FindStringSubmatch(text); m != nil {
			date = m[1]
		}
	}
	if date == "" {
		date = ParseDate(text)
	}

	cost := ParseCost(text)
	comment := DetailComment(category, text)

	record := NewRecord(filename, date, cost, comment)

	e.log.Debug().
		Str("file", filename).
		Stringer("category", category).
		Str("date", date).
		Str("cost", cost).
		Msg("receipt processed")

	return record
}

// acquireText dispatches on file extension. PDFs use the embedded text
// layer first, falling back to OCR when the layer is empty or fails the
// corruption check; images go straight to OCR. OCR replacement text
// supersedes the embedded text entirely, never merged.
func (e *Engine) acquireText(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		text, err := e.src.Text(path)
		if err != nil {
			e.log.Warn().Err(err).Str("file", filepath.Base(path)).Msg("embedded text extraction failed")
			text = ""
		}
		if text == "" || NeedsOCRFallback(text) {
			if text != "" {
				e.log.Info().Str("file", filepath.Base(path)).
					Float64("garbled_ratio", GarbledRatio(text)).
					Msg("poor quality embedded text, trying OCR")
			}
			if ocrText, err := e.src.OCRText(path); err == nil && ocrText != "" {
				return ocrText
			}
		}
		return text
	case ".jpg", ".jpeg", ".png":
		text, err := e.src.OCRText(path)
		if err != nil {
			e.log.Warn().Err(err).Str("file", filepath.Base(path)).Msg("image OCR failed")
			return ""
		}
		return text
	default:
		return ""
	}
}

// NewRecord assembles a record and derives its review flag from the
// missing fields.
func NewRecord(filename, date, cost, comment string) Record {
	return Record{
		Filename: filename,
		Date:     date,
		Cost:     cost,
		Comment:  comment,
		Review:   reviewFlag(date, cost),
	}
}

// reviewFlag is set iff the date or the cost is absent.
func reviewFlag(date, cost string) string {
	var missing []string
	if date == "" {
		missing = append(missing, "missing date")
	}
	if cost == "" {
		missing = append(missing, "missing cost")
	}
	if len(missing) == 0 {
		return ""
	}
	return "REVIEW: " + strings.Join(missing, ", ")
}

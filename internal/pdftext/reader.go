// Package pdftext acquires best-effort raw text from receipt files. The
// primary path reads a PDF's embedded text layer; the OCR path is
// delegated to a pluggable client so the engine can run without a local
// OCR stack installed.
package pdftext

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/rs/zerolog"
)

const (
	// maxTextBytes caps extracted text; receipts are small and anything
	// past this is boilerplate.
	maxTextBytes = 100 * 1024

	// scannedThreshold is the chars-per-page count below which a PDF is
	// treated as a scanned image with no usable text layer.
	scannedThreshold = 50
)

// OCRClient performs image-based text recognition on a document. It is a
// collaborator boundary: implementations may shell out to a local OCR
// engine or call a service.
type OCRClient interface {
	Recognize(path string) (string, error)
}

// NoOCR is the default client for environments without an OCR engine.
// It reports OCR as unavailable; the engine degrades to whatever the
// text layer produced.
type NoOCR struct{}

func (NoOCR) Recognize(path string) (string, error) {
	return "", &ExtractError{Code: ErrOCRUnavailable, Path: path}
}

// Reader implements the engine's TextSource over local files.
type Reader struct {
	ocr OCRClient
	log zerolog.Logger
}

func NewReader(ocr OCRClient, log zerolog.Logger) *Reader {
	if ocr == nil {
		ocr = NoOCR{}
	}
	return &Reader{ocr: ocr, log: log}
}

// Text returns the PDF's embedded text layer, or empty text when the
// document looks scanned. The pdf library panics on some malformed
// inputs, so extraction is recover-wrapped and never takes down the run.
func (r *Reader) Text(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", &ExtractError{Code: ErrPDFOpen, Path: path, Cause: err}
	}

	text, pages, err := extractEmbeddedText(data)
	if err != nil {
		return "", err
	}

	if isLikelyScanned(text, pages) {
		r.log.Debug().Str("path", path).Int("pages", pages).Msg("PDF looks scanned, no usable text layer")
		return "", nil
	}
	return text, nil
}

// OCRText runs the OCR-mode extraction for PDFs and images.
func (r *Reader) OCRText(path string) (string, error) {
	return r.ocr.Recognize(path)
}

func extractEmbeddedText(data []byte) (text string, pages int, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			text = ""
			err = &ExtractError{Code: ErrPDFRead, Cause: fmt.Errorf("panic during PDF read: %v", rec)}
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", 0, &ExtractError{Code: ErrPDFOpen, Cause: err}
	}

	pages = reader.NumPage()
	if pages < 1 {
		pages = 1
	}

	plainText, err := reader.GetPlainText()
	if err != nil {
		return "", pages, &ExtractError{Code: ErrPDFRead, Cause: err}
	}

	textBytes, err := io.ReadAll(io.LimitReader(plainText, maxTextBytes))
	if err != nil {
		return "", pages, &ExtractError{Code: ErrPDFRead, Cause: err}
	}

	return string(textBytes), pages, nil
}

// isLikelyScanned returns true when there is too little text per page
// for the layer to be real (scanned image with no OCR layer).
func isLikelyScanned(text string, pages int) bool {
	if pages <= 0 {
		pages = 1
	}
	return len(strings.TrimSpace(text))/pages < scannedThreshold
}

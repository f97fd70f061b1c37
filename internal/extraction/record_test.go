package extraction

import (
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

type fakeSource struct {
	text    string
	textErr error
	ocr     string
	ocrErr  error
}

func (f fakeSource) Text(string) (string, error)    { return f.text, f.textErr }
func (f fakeSource) OCRText(string) (string, error) { return f.ocr, f.ocrErr }

func newTestEngine(src TextSource) *Engine {
	return NewEngine(src, zerolog.Nop())
}

func TestProcessTrainReceipt(t *testing.T) {
	src := fakeSource{text: "Trainline\nYour return trip London to Manchester\n5 November 2025\nTotal amount: £45.50\n"}
	got := newTestEngine(src).Process("/receipts/receipt.pdf")

	want := Record{
		Filename: "receipt.pdf",
		Date:     "05/11/2025",
		Cost:     "£45.50",
		Comment:  "Return train: London to Manchester",
	}
	if got != want {
		t.Errorf("Process = %+v, want %+v", got, want)
	}
}

func TestProcessFlagsMissingFields(t *testing.T) {
	src := fakeSource{text: "PayByPhone session confirmation"}
	got := newTestEngine(src).Process("parking.pdf")

	if got.Date != "" || got.Cost != "" {
		t.Fatalf("Process extracted date=%q cost=%q from text without either", got.Date, got.Cost)
	}
	if got.Comment != "Parking" {
		t.Errorf("Comment = %q, want Parking", got.Comment)
	}
	if got.Review != "REVIEW: missing date, missing cost" {
		t.Errorf("Review = %q, want both fields flagged", got.Review)
	}
}

func TestProcessNoText(t *testing.T) {
	src := fakeSource{text: "", ocr: ""}
	got := newTestEngine(src).Process("scan.pdf")

	want := Record{
		Filename: "scan.pdf",
		Comment:  "Could not extract text from scan.pdf",
		Review:   "REVIEW: no text extracted",
	}
	if got != want {
		t.Errorf("Process = %+v, want %+v", got, want)
	}
}

func TestProcessGarbledTextUsesOCR(t *testing.T) {
	src := fakeSource{
		text: strings.Repeat("¥• ab ", 30),
		ocr:  "Trainline\n05/11/2025\nTotal: £10.00",
	}
	got := newTestEngine(src).Process("ticket.pdf")

	want := Record{
		Filename: "ticket.pdf",
		Date:     "05/11/2025",
		Cost:     "£10.00",
		Comment:  "Train ticket",
	}
	if got != want {
		t.Errorf("Process = %+v, want %+v", got, want)
	}
}

func TestProcessEmbeddedTextErrorFallsBackToOCR(t *testing.T) {
	src := fakeSource{
		textErr: errFake,
		ocr:     "Trainline\n05/11/2025\nTotal: £10.00",
	}
	got := newTestEngine(src).Process("ticket.pdf")

	if got.Date != "05/11/2025" || got.Cost != "£10.00" {
		t.Errorf("Process = %+v, want OCR-derived fields", got)
	}
}

var errFake = &fakeError{}

type fakeError struct{}

func (*fakeError) Error() string { return "boom" }

func TestProcessImageUsesOCROnly(t *testing.T) {
	src := fakeSource{
		text: "embedded text must not be consulted",
		ocr:  "Greggs\nTotal: £3.50\n05/11/2025",
	}
	got := newTestEngine(src).Process("photo.jpg")

	want := Record{
		Filename: "photo.jpg",
		Date:     "05/11/2025",
		Cost:     "£3.50",
		Comment:  "Meal at Greggs",
	}
	if got != want {
		t.Errorf("Process = %+v, want %+v", got, want)
	}
}

func TestProcessTubePrefersTravelDate(t *testing.T) {
	src := fakeSource{text: "Transport for London\nStatement date: 01/11/2025\n14/10/2025 £5.80\n"}
	got := newTestEngine(src).Process("tfl.pdf")

	if got.Date != "14/10/2025" {
		t.Errorf("Date = %q, want the travel date 14/10/2025", got.Date)
	}
	if got.Cost != "£5.80" {
		t.Errorf("Cost = %q, want £5.80", got.Cost)
	}
	if got.Comment != "TfL travel" {
		t.Errorf("Comment = %q, want TfL travel", got.Comment)
	}
}

func TestProcessUnknownExtension(t *testing.T) {
	src := fakeSource{text: "some text", ocr: "some text"}
	got := newTestEngine(src).Process("notes.txt")

	if got.Review != "REVIEW: no text extracted" {
		t.Errorf("Review = %q, want no-text flag for unsupported extension", got.Review)
	}
}

// The review flag is present exactly when the date or the cost is
// missing.
func TestReviewFlag(t *testing.T) {
	tests := []struct {
		name string
		date string
		cost string
		want string
	}{
		{"both present", "05/11/2025", "£45.50", ""},
		{"date missing", "", "£45.50", "REVIEW: missing date"},
		{"cost missing", "05/11/2025", "", "REVIEW: missing cost"},
		{"both missing", "", "", "REVIEW: missing date, missing cost"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := NewRecord("f.pdf", tt.date, tt.cost, "comment")
			if rec.Review != tt.want {
				t.Errorf("Review = %q, want %q", rec.Review, tt.want)
			}
		})
	}
}

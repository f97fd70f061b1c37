// Package email parses receipt details out of .eml booking confirmation
// messages. Booking emails are far more regular than vendor PDFs, so
// this is plain pattern matching over the text/plain body.
package email

import (
	"encoding/base64"
	"errors"
	"io"
	"mime"
	"mime/multipart"
	"mime/quotedprintable"
	"net/mail"
	"os"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/fenwickmays/receiptproc/internal/extraction"
)

// ErrUnrecognized is returned for senders/subjects this parser has no
// rules for. Callers fall back to a flagged record.
var ErrUnrecognized = errors.New("email: unrecognized receipt sender")

// Receipt is the structured result of parsing one booking email.
type Receipt struct {
	Vendor   string
	Category extraction.Category
	Date     string // canonical DD/MM/YYYY, "" when absent
	Cost     string // £N.NN, "" when absent
	Details  string
}

var (
	trainTotalRe = regexp.MustCompile(`Total amount:\s*£([\d.]+)`)
	journeyDateRe = regexp.MustCompile(`(?i)(\d{1,2}\s+(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*\s+\d{4})`)

	trainRoutePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)return trip\s+([^(]+?)\s+to\s+([^\n(]+)`),
		regexp.MustCompile(`(?i)booking confirmation for\s+([^t]+?)\s+to\s+([^\n(]+)`),
	}

	hotelCostPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)Total.*?£([\d.]+)`),
		regexp.MustCompile(`(?i)Amount.*?£([\d.]+)`),
		regexp.MustCompile(`(?i)Price.*?£([\d.]+)`),
	}
)

// ParseFile parses a .eml file from disk.
func ParseFile(path string) (*Receipt, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f)
}

// Parse reads one RFC 5322 message and dispatches on sender/subject.
func Parse(r io.Reader) (*Receipt, error) {
	msg, err := mail.ReadMessage(r)
	if err != nil {
		return nil, err
	}

	body, err := plainBody(msg)
	if err != nil {
		return nil, err
	}

	subject := strings.ToLower(msg.Header.Get("Subject"))
	sender := strings.ToLower(msg.Header.Get("From"))

	switch {
	case strings.Contains(sender, "trainline") || strings.Contains(subject, "trainline"):
		return parseTrainline(body), nil
	case strings.Contains(subject, "hotel") || strings.Contains(subject, "booking"):
		return parseHotel(body), nil
	}
	return nil, ErrUnrecognized
}

func parseTrainline(body string) *Receipt {
	rcpt := &Receipt{Vendor: "Trainline", Category: extraction.CategoryTrain}

	if m := trainTotalRe.FindStringSubmatch(body); m != nil {
		rcpt.Cost = formatAmount(m[1])
	}
	if m := journeyDateRe.FindStringSubmatch(body); m != nil {
		rcpt.Date = extraction.ParseDate(m[1])
	}
	for _, re := range trainRoutePatterns {
		if m := re.FindStringSubmatch(body); m != nil {
			rcpt.Details = "Train from " + strings.TrimSpace(m[1]) + " to " + strings.TrimSpace(m[2])
			break
		}
	}
	return rcpt
}

func parseHotel(body string) *Receipt {
	rcpt := &Receipt{Vendor: "Hotel", Category: extraction.CategoryHotel}

	for _, re := range hotelCostPatterns {
		if m := re.FindStringSubmatch(body); m != nil {
			rcpt.Cost = formatAmount(m[1])
			break
		}
	}
	if m := journeyDateRe.FindStringSubmatch(body); m != nil {
		rcpt.Date = extraction.ParseDate(m[1])
	}
	return rcpt
}

// formatAmount renders a captured numeral as £N.NN, dropping anything
// that fails to parse.
func formatAmount(raw string) string {
	amount, err := decimal.NewFromString(strings.TrimSuffix(raw, "."))
	if err != nil {
		return ""
	}
	return "£" + amount.StringFixed(2)
}

// plainBody walks the MIME structure and concatenates text/plain parts.
// Non-multipart messages return their (decoded) body as-is.
func plainBody(msg *mail.Message) (string, error) {
	contentType := msg.Header.Get("Content-Type")
	if contentType == "" {
		data, err := io.ReadAll(decoded(msg.Body, msg.Header.Get("Content-Transfer-Encoding")))
		return string(data), err
	}

	mediaType, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		return "", err
	}

	if !strings.HasPrefix(mediaType, "multipart/") {
		data, err := io.ReadAll(decoded(msg.Body, msg.Header.Get("Content-Transfer-Encoding")))
		return string(data), err
	}

	var sb strings.Builder
	mr := multipart.NewReader(msg.Body, params["boundary"])
	for {
		part, err := mr.NextPart()
		if err == io.EOF {
			break
		}
		if err != nil {
			return sb.String(), nil // keep whatever was readable
		}
		partType, _, _ := mime.ParseMediaType(part.Header.Get("Content-Type"))
		if partType != "text/plain" {
			continue
		}
		data, err := io.ReadAll(decoded(part, part.Header.Get("Content-Transfer-Encoding")))
		if err != nil {
			continue
		}
		sb.Write(data)
	}
	return sb.String(), nil
}

func decoded(r io.Reader, encoding string) io.Reader {
	switch strings.ToLower(strings.TrimSpace(encoding)) {
	case "quoted-printable":
		return quotedprintable.NewReader(r)
	case "base64":
		return base64.NewDecoder(base64.StdEncoding, r)
	default:
		return r
	}
}

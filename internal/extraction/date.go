package extraction

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// CanonicalDateLayout is the output form for every extracted date.
const CanonicalDateLayout = "02/01/2006"

type dateRepair int

const (
	repairNone dateRepair = iota
	// repairMangledSlashes recovers dates where "/11/20" was misread as
	// "112J" (e.g. "03112J25"). The month digit is unrecoverable, so the
	// rule assumes December. Best-effort guess for an observed corruption
	// signature, not general inference.
	repairMangledSlashes
	// repairMangledWeekday recovers a garbled weekday token followed by
	// loose day and year digits ("W•dnMday 03 ... 2025"). Same December
	// assumption as above.
	repairMangledWeekday
)

// datePatterns are tried in order; the first successful match wins.
var datePatterns = []struct {
	re     *regexp.Regexp
	repair dateRepair
}{
	{re: regexp.MustCompile(`\b(\d{4})[/-](\d{1,2})[/-](\d{1,2})\b`)},
	{re: regexp.MustCompile(`\b(\d{1,2})[/-](\d{1,2})[/-](\d{2,4})\b`)},
	{re: regexp.MustCompile(`(\d{2})112J(\d{2})`), repair: repairMangledSlashes},
	{re: regexp.MustCompile(`(?i)\b(January|February|March|April|May|June|July|August|September|October|November|December)\s+(\d{1,2})(?:st|nd|rd|th)?,?\s+(\d{4})\b`)},
	{re: regexp.MustCompile(`(?i)\b(\d{1,2})\s+(Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*\s+(\d{2,4})\b`)},
	{re: regexp.MustCompile(`(?i)\b(Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*\s+(\d{1,2}),?\s+(\d{2,4})\b`)},
	{re: regexp.MustCompile(`(?i)W•dn[^0-9]*?(\d{2})[^0-9]+(\d{4})`), repair: repairMangledWeekday},
}

// dateLayouts to try when parsing a matched substring. Day-first layouts
// come before anything ambiguous, so "05/11/2025" is 5 November. The
// month-first numeric layouts sit after them and only catch dates a
// day-first reading cannot parse, such as "12/31/2025".
var dateLayouts = []string{
	"2/1/2006",
	"2-1-2006",
	"2/1/06",
	"2-1-06",
	"2006/1/2",
	"2006-1-2",
	"1/2/2006",
	"1-2-2006",
	"1/2/06",
	"1-2-06",
	"2 January 2006",
	"January 2 2006",
	"2 Jan 2006",
	"Jan 2 2006",
	"2 January 06",
	"January 2 06",
	"2 Jan 06",
	"Jan 2 06",
}

var ordinalSuffixRe = regexp.MustCompile(`(?i)(\d)(st|nd|rd|th)\b`)

// September is the only month with a four-letter abbreviation; collapse
// it to the three-letter form the layouts use.
var septRe = regexp.MustCompile(`(?i)\bSept\b`)

// ParseDate finds a date in receipt text and normalizes it to DD/MM/YYYY.
// Returns "" when no pattern matches.
func ParseDate(text string) string {
	for _, p := range datePatterns {
		m := p.re.FindStringSubmatch(text)
		if m == nil {
			continue
		}

		switch p.repair {
		case repairMangledSlashes:
			return fmt.Sprintf("%s/12/20%s", m[1], m[2])
		case repairMangledWeekday:
			return fmt.Sprintf("%s/12/%s", m[1], m[2])
		}

		if t, ok := parseFlexibleDate(m[0]); ok {
			return t.Format(CanonicalDateLayout)
		}
		// Parse failure counts as a pattern miss; try the next rule.
	}
	return ""
}

// parseFlexibleDate parses a date substring against the ordered layout
// list, preferring day-before-month on ambiguous numeric forms.
func parseFlexibleDate(s string) (time.Time, bool) {
	s = ordinalSuffixRe.ReplaceAllString(s, "$1")
	s = septRe.ReplaceAllString(s, "Sep")
	s = strings.ReplaceAll(s, ",", "")
	s = strings.Join(strings.Fields(s), " ")

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

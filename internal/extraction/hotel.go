package extraction

import (
	"fmt"
	"regexp"
	"strings"
)

// hotelNamePatterns: brand-specific shapes first, then generic
// "<Name> Hotel" / "Hotel <Name>" forms.
var hotelNamePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(Premier Inn)`),
	regexp.MustCompile(`(?i)(Point A Hotel [^\n|]+)`),
	regexp.MustCompile(`(?i)([A-Z][a-z]+(?: [A-Z][a-z]+)* Hotel(?: [A-Z][a-z]+)*)`),
	regexp.MustCompile(`(?i)(Hotel [A-Z][a-z]+(?: [A-Z][a-z]+)*)`),
}

var (
	// "4JnvAI" and "QapJnuf8" are observed OCR misreadings of "Arrival"
	// and "Departure" on one hotel chain's invoices.
	hotelArrivalRe   = regexp.MustCompile(`(?i)(?:Arrival|4JnvAI)[^0-9]*?(\d{2})[/\s]+(\d{2})[/\s]+(\d{4})`)
	hotelDepartureRe = regexp.MustCompile(`(?i)(?:Departure|QapJnuf8)[^0-9]*?(\d{2})[/\s]+(\d{2})[/\s]+(\d{4})`)
	hotelNightsRe    = regexp.MustCompile(`(?i)(\d+)\s*night`)

	londonAddressRe = regexp.MustCompile(`(?i)(\d+\s+[^\n]+,\s*London[^\n]*)`)
	knownCityRe     = regexp.MustCompile(`(?i),\s*(London|Birmingham|Manchester|Cardiff)[,\s]`)

	pipeSuffixRe = regexp.MustCompile(`\s*\|.*`)
)

func extractHotelDetails(text string) string {
	hotelName := "Hotel"
	for _, re := range hotelNamePatterns {
		if m := re.FindStringSubmatch(text); m != nil {
			hotelName = pipeSuffixRe.ReplaceAllString(strings.TrimSpace(m[1]), "")
			break
		}
	}

	// Arrival/departure markers without parseable dates default to one
	// night; otherwise an explicit "N night(s)" mention wins.
	nights := "1"
	if hotelArrivalRe.MatchString(text) && hotelDepartureRe.MatchString(text) {
		nights = "1"
	} else if m := hotelNightsRe.FindStringSubmatch(text); m != nil {
		nights = m[1]
	}

	location := ""
	if m := londonAddressRe.FindStringSubmatch(text); m != nil {
		location = pipeSuffixRe.ReplaceAllString(strings.TrimSpace(m[1]), "")
	} else if m := knownCityRe.FindStringSubmatch(text); m != nil {
		location = m[1]
	}

	comment := fmt.Sprintf("%s night(s) at %s", nights, hotelName)
	if location != "" {
		comment += ", " + location
	}
	return comment
}

package extraction

import (
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// detailFunc produces a one-line description from receipt text. It never
// fails and never returns an empty string.
type detailFunc func(text string) string

// detailExtractors dispatches on category. Adding a category means adding
// one entry here, not growing a conditional chain.
var detailExtractors = map[Category]detailFunc{
	CategoryTrain:   extractTrainDetails,
	CategoryFlight:  extractFlightDetails,
	CategoryHotel:   extractHotelDetails,
	CategoryFood:    extractFoodDetails,
	CategoryParking: extractParkingDetails,
	CategoryTube:    extractTubeDetails,
	CategoryOther:   extractOtherDetails,
}

// DetailComment returns the category-specific description for the text.
func DetailComment(category Category, text string) string {
	if fn, ok := detailExtractors[category]; ok {
		return fn(text)
	}
	return "Receipt"
}

var (
	trainReturnTripRe = regexp.MustCompile(`(?i)return\s+trip\s+([A-Z][a-z]+(?: [A-Z][a-z]+)*(?:\s+\([^)]+\))?)\s+to\s+([A-Z][a-z]+(?: [A-Z][a-z]+)*)`)
	parentheticalRe   = regexp.MustCompile(`\s*\([^)]+\)`)

	// Journey patterns common in booking confirmations; the last shape
	// pairs two departure times with their station names.
	trainJourneyPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?is)(?:from|From:)\s+([A-Z][a-z]+(?: [A-Z][a-z]+)*(?:\s+(?:Station|Central|Parkway))?)\s+(?:to|To:)\s+([A-Z][a-z]+(?: [A-Z][a-z]+)*(?:\s+(?:Station|Central|Parkway))?)`),
		regexp.MustCompile(`(?is)Your\s+(?:booking|trip)\s+(?:confirmation\s+)?(?:for|to)\s+([A-Z][a-z]+(?: [A-Z][a-z]+)*)\s+to\s+([A-Z][a-z]+(?: [A-Z][a-z]+)*)`),
		regexp.MustCompile(`(?is)(\d{2}:\d{2})\s+([A-Z][a-z]+(?: [A-Z][a-z]+)*(?:\s+(?:Station|Central|Parkway))?)\s+.*?\s+(\d{2}:\d{2})\s+([A-Z][a-z]+(?: [A-Z][a-z]+)*(?:\s+(?:Station|Central|Parkway))?)`),
	}

	stationNameRe = regexp.MustCompile(`\b([A-Z][a-z]+(?: [A-Z][a-z]+)*)\s+(?:Station|Central|Parkway)\b`)
)

func extractTrainDetails(text string) string {
	if m := trainReturnTripRe.FindStringSubmatch(text); m != nil {
		origin := parentheticalRe.ReplaceAllString(strings.TrimSpace(m[1]), "")
		destination := parentheticalRe.ReplaceAllString(strings.TrimSpace(m[2]), "")
		return fmt.Sprintf("Return train: %s to %s", origin, destination)
	}

	for _, re := range trainJourneyPatterns {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		switch len(m) {
		case 3:
			return fmt.Sprintf("Train from %s to %s", strings.TrimSpace(m[1]), strings.TrimSpace(m[2]))
		case 5: // time-paired pattern: stations are groups 2 and 4
			return fmt.Sprintf("Train from %s to %s", strings.TrimSpace(m[2]), strings.TrimSpace(m[4]))
		}
	}

	stations := stationNameRe.FindAllStringSubmatch(text, -1)
	if len(stations) >= 2 {
		return fmt.Sprintf("Train from %s to %s", stations[0][1], stations[1][1])
	}
	if len(stations) == 1 {
		return fmt.Sprintf("Train ticket involving %s", stations[0][1])
	}
	return "Train ticket"
}

var airportCodeRe = regexp.MustCompile(`\b([A-Z]{3})\b`)

func extractFlightDetails(text string) string {
	airports := airportCodeRe.FindAllStringSubmatch(text, -1)
	if len(airports) >= 2 {
		return fmt.Sprintf("Flight from %s to %s", airports[0][1], airports[1][1])
	}
	return "Flight ticket"
}

var (
	parkingDescriptionRe = regexp.MustCompile(`(?i)Description[:\s]*([^\n]+)`)
	capsStationRe        = regexp.MustCompile(`([A-Z][A-Z\s]+STATION)`)

	titleCaser = cases.Title(language.English)
)

func extractParkingDetails(text string) string {
	if m := parkingDescriptionRe.FindStringSubmatch(text); m != nil {
		return "Parking at " + strings.TrimSpace(m[1])
	}
	if m := capsStationRe.FindStringSubmatch(text); m != nil {
		return "Parking at " + titleCaser.String(strings.ToLower(m[1]))
	}
	return "Parking"
}

// tubeJourneyRe matches an "<origin> to <destination> £N.NN" fare line.
var tubeJourneyRe = regexp.MustCompile(`([A-Z][a-z]+(?: [A-Z][a-z]+)*)\s+to\s+([A-Z][a-z]+(?: [A-Z][a-z]+)*)\s+£(\d+\.\d{2})`)

func extractTubeDetails(text string) string {
	journeys := tubeJourneyRe.FindAllStringSubmatch(text, -1)
	switch {
	case len(journeys) == 1:
		return fmt.Sprintf("Tube from %s to %s", journeys[0][1], journeys[0][2])
	case len(journeys) == 2:
		return fmt.Sprintf("Tube: %s to %s, %s to %s",
			journeys[0][1], journeys[0][2], journeys[1][1], journeys[1][2])
	case len(journeys) > 2:
		return fmt.Sprintf("Tube: %d journeys", len(journeys))
	}
	return "TfL travel"
}

var purposePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)Payment for[:\s]*([^\n]+)`),
	regexp.MustCompile(`(?i)Purpose[:\s]*([^\n]+)`),
	regexp.MustCompile(`(?i)Description[:\s]*([^\n]+)`),
}

func extractOtherDetails(text string) string {
	for _, re := range purposePatterns {
		if m := re.FindStringSubmatch(text); m != nil {
			return strings.TrimSpace(m[1])
		}
	}

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if i >= 10 {
			break
		}
		trimmed := strings.TrimSpace(line)
		if len(trimmed) > 10 {
			return trimmed
		}
	}
	return "Other expense"
}

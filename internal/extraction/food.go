package extraction

import (
	"regexp"
	"strconv"
	"strings"
)

// Known venue names are matched before falling back to the first
// plausible line of the receipt header.
var foodVenuePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(Wasabi[^\n]*)`),
	regexp.MustCompile(`(?i)(Nonna Bakery[^\n]*)`),
	regexp.MustCompile(`(?i)(Starbucks[^\n]*)`),
	regexp.MustCompile(`(?i)(Costa[^\n]*)`),
	regexp.MustCompile(`(?i)(Pret A Manger[^\n]*)`),
	regexp.MustCompile(`(?i)(Greggs[^\n]*)`),
}

var foodLocationPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:Address|Location)[:\s]*([^\n]+)`),
	regexp.MustCompile(`(?i)(Paddington[^\n]*Station)`),
	regexp.MustCompile(`(?i)(High Holborn)`),
	regexp.MustCompile(`(?i)([A-Z][a-z]+\s+Station)`),
}

var (
	venueTrailerRe = regexp.MustCompile(`,.*`)
	numericLineRe  = regexp.MustCompile(`^[\d\s\-/:]+$`)
	timeOfDayRe    = regexp.MustCompile(`(?i)(\d{1,2}):(\d{2})(?:\s*(AM|PM))?`)
)

// Header words that disqualify a line from being the venue name.
var venueSkipWords = []string{"receipt", "invoice", "payment", "customer", "till", "duplicate"}

func extractFoodDetails(text string) string {
	lower := strings.ToLower(text)

	venue := ""
	for _, re := range foodVenuePatterns {
		if m := re.FindStringSubmatch(text); m != nil {
			venue = venueTrailerRe.ReplaceAllString(strings.TrimSpace(m[1]), "")
			break
		}
	}

	if venue == "" {
		venue = firstHeaderLine(text)
	}

	mealType := mealTypeFromTime(text)

	// Explicit keyword mentions override the time-derived meal type.
	switch {
	case strings.Contains(lower, "breakfast") || strings.Contains(lower, "morning"):
		mealType = "Breakfast"
	case strings.Contains(lower, "lunch") || strings.Contains(lower, "afternoon"):
		mealType = "Lunch"
	case strings.Contains(lower, "dinner") || strings.Contains(lower, "evening") || strings.Contains(lower, "supper"):
		mealType = "Evening meal"
	case strings.Contains(lower, "coffee") || strings.Contains(lower, "cafe"):
		mealType = "Coffee/drinks"
	}

	location := ""
	for _, re := range foodLocationPatterns {
		if m := re.FindStringSubmatch(text); m != nil {
			location = strings.TrimSpace(m[1])
			break
		}
	}

	if venue != "" {
		venue = CleanOCRText(venue)
	}
	if location != "" {
		location = CleanOCRText(location)
	}

	comment := mealType
	if venue != "" {
		comment += " at " + venue
	}
	if location != "" && venue != "" && !strings.Contains(strings.ToLower(location), strings.ToLower(venue)) {
		comment += ", " + location
	}
	return comment
}

// firstHeaderLine picks the venue from the first 10 lines: the first
// non-empty line longer than 3 characters that is not purely numeric and
// not a common header word.
func firstHeaderLine(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if i >= 10 {
			break
		}
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || len(trimmed) <= 3 || numericLineRe.MatchString(trimmed) {
			continue
		}
		lower := strings.ToLower(trimmed)
		skip := false
		for _, word := range venueSkipWords {
			if strings.Contains(lower, word) {
				skip = true
				break
			}
		}
		if !skip {
			return trimmed
		}
	}
	return ""
}

// mealTypeFromTime derives the meal type from the first time-of-day on
// the receipt: 05:00-10:59 breakfast, 11:00-14:59 lunch, 15:00-23:59
// evening meal. 12-hour clock values are converted when AM/PM is present.
func mealTypeFromTime(text string) string {
	m := timeOfDayRe.FindStringSubmatch(text)
	if m == nil {
		return "Meal"
	}

	hour, err := strconv.Atoi(m[1])
	if err != nil {
		return "Meal"
	}

	switch strings.ToUpper(m[3]) {
	case "PM":
		if hour != 12 {
			hour += 12
		}
	case "AM":
		if hour == 12 {
			hour = 0
		}
	}

	switch {
	case hour >= 5 && hour < 11:
		return "Breakfast"
	case hour >= 11 && hour < 15:
		return "Lunch"
	case hour >= 15 && hour < 24:
		return "Evening meal"
	}
	return "Meal"
}

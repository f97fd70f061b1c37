// Package extraction turns raw receipt text into structured expense fields
// using ordered, deterministic heuristics.
package extraction

import "strings"

// Vendor and fare keywords checked in fixed priority order before any
// score-based fallback. Train is deliberately checked before parking:
// train booking PDFs routinely upsell "pre-book parking" and would
// otherwise be misclassified.
var (
	trainVendorKeywords = []string{"trainline", "advance single", "anytime day single"}

	parkingVendorKeywords = []string{"paybyphone", "parking receipt", "airport parking"}

	tubeKeywords = []string{"tfl", "transport for london", "oyster", "contactless.tfl"}

	foodVendorKeywords = []string{"wasabi", "nonna bakery", "starbucks", "costa", "pret", "greggs"}

	adminKeywords = []string{"dbs", "disclosure and barring", "criminal record check"}

	genericParkingKeywords = []string{"parking", "car park"}
)

// Fallback keyword sets: one point per distinct keyword present.
var (
	trainScoreKeywords  = []string{"trainline", "railway", "rail", "advance single", "anytime", "platform", "coach"}
	flightScoreKeywords = []string{"flight", "airline", "boarding", "gate", "terminal", "passenger"}
	hotelScoreKeywords  = []string{"hotel", "accommodation", "check-in", "check-out", "room", "guest"}
	foodScoreKeywords   = []string{"restaurant", "cafe", "coffee", "breakfast", "lunch", "dinner", "meal", "food", "bar", "pub"}
)

// scoredCategories fixes the tie-break order for the fallback heuristic.
var scoredCategories = []struct {
	category Category
	keywords []string
}{
	{CategoryTrain, trainScoreKeywords},
	{CategoryFlight, flightScoreKeywords},
	{CategoryHotel, hotelScoreKeywords},
	{CategoryFood, foodScoreKeywords},
}

// ClassifyReceipt assigns exactly one category to the receipt text.
// Rules are evaluated in priority order and the first match wins.
func ClassifyReceipt(text string) Category {
	lower := strings.ToLower(text)

	if containsAny(lower, trainVendorKeywords) {
		return CategoryTrain
	}
	if containsAny(lower, parkingVendorKeywords) {
		return CategoryParking
	}
	if containsAny(lower, tubeKeywords) {
		return CategoryTube
	}
	if containsAny(lower, foodVendorKeywords) {
		return CategoryFood
	}
	if containsAny(lower, adminKeywords) {
		return CategoryOther
	}
	if containsAny(lower, genericParkingKeywords) {
		return CategoryParking
	}

	best := CategoryOther
	bestScore := 0
	for _, sc := range scoredCategories {
		score := 0
		for _, kw := range sc.keywords {
			if strings.Contains(lower, kw) {
				score++
			}
		}
		// Strictly greater keeps the earlier category on ties.
		if score > bestScore {
			best = sc.category
			bestScore = score
		}
	}

	if bestScore == 0 {
		return CategoryOther
	}
	return best
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

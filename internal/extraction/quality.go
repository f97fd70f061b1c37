package extraction

import "regexp"

// garbledRunRe matches runs of two or more characters outside the set a
// legible UK receipt uses. Such runs are a cheap proxy for misrecognized
// glyphs in an embedded text layer.
var garbledRunRe = regexp.MustCompile(`[^\w\s£.,:\-/()]{2,}`)

// corruptionThreshold is the garbled-run count per 100 characters above
// which embedded text is considered unusable.
const corruptionThreshold = 5.0

// GarbledRatio returns the number of garbled runs per 100 characters of
// text. Empty text scores zero.
func GarbledRatio(text string) float64 {
	if len(text) == 0 {
		return 0
	}
	runs := garbledRunRe.FindAllString(text, -1)
	return float64(len(runs)) / (float64(len(text)) / 100)
}

// NeedsOCRFallback reports whether non-empty embedded text is corrupted
// enough that an OCR re-extraction should be preferred.
func NeedsOCRFallback(text string) bool {
	return text != "" && GarbledRatio(text) > corruptionThreshold
}

package extraction

import (
	"regexp"
	"strings"
)

// Literal fixes for observed misreadings of one airport name. These run
// before the generic rules so the generic rules see the repaired form.
var airportNameFixes = strings.NewReplacer(
	"Newcast l e Ai rport", "Newcastle Airport",
	"Newcast leAi rport", "Newcastle Airport",
	"Newcast l eAi rport", "Newcastle Airport",
)

var (
	splitLERe   = regexp.MustCompile(`(?i)\bl\s+e\b`)
	splitEARe   = regexp.MustCompile(`\be\s+A`)
	caseBreakRe = regexp.MustCompile(`([a-z])\s+([A-Z])`)
)

// CleanOCRText repairs a small set of known OCR misrecognitions: the
// airport-name literals, two split-letter fixes, and spurious spaces
// between a lowercase letter and a following capital. This is a narrow
// denoising pass, not a spell-checker; text without these signatures
// passes through unchanged.
func CleanOCRText(text string) string {
	cleaned := airportNameFixes.Replace(text)
	cleaned = splitLERe.ReplaceAllString(cleaned, "le")
	cleaned = splitEARe.ReplaceAllString(cleaned, "eA")
	cleaned = caseBreakRe.ReplaceAllString(cleaned, "$1$2")
	return cleaned
}

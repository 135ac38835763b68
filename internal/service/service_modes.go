package service

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Supported values of the mode setting.
const (
	ModeHappy      = "happy mode"
	ModeProduction = "production"
)

// Banner lines prepended to the transformed content.
const (
	HappyBanner      = "Happy Mode result:"
	ProductionBanner = "Production Mode result:"
)

type transformFunc func(content string) string

// transforms is the complete set of modes. Anything not listed here is
// rejected by ProcessContent.
var transforms = map[string]transformFunc{
	ModeHappy:      processHappy,
	ModeProduction: processProduction,
}

// processHappy upper-cases the whole content with full Unicode case
// mapping, so a single rune may expand ("ß" becomes "SS").
func processHappy(content string) string {
	return HappyBanner + "\n" + cases.Upper(language.Und).String(content)
}

// processProduction strips leading and trailing whitespace only.
func processProduction(content string) string {
	return ProductionBanner + "\n" + strings.TrimSpace(content)
}

// Package webfmt holds the presentation helpers shared by the view
// renderers: currency and category labels, star icon markup, discount
// percentages and the syntactic email check.
package webfmt

import (
	"math"
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var usd = message.NewPrinter(language.AmericanEnglish)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

var categoryLabels = map[string]string{
	"processors":  "Processors",
	"graphics":    "Graphics Cards",
	"monitors":    "Monitors",
	"peripherals": "Peripherals",
	"storage":     "Storage",
	"memory":      "Memory",
}

// Currency renders an amount as US dollars, e.g. 1599.99 -> "$1,599.99".
func Currency(amount float64) string {
	return usd.Sprintf("$%v", number.Decimal(amount,
		number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}

// IsValidEmail reports whether the address is syntactically plausible.
// This is a demo-grade check, not RFC validation.
func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// Category returns the display label for a category slug. Unknown slugs are
// title-cased as-is. Casers are not safe for concurrent use, so one is built
// per call.
func Category(slug string) string {
	if label, ok := categoryLabels[slug]; ok {
		return label
	}
	return cases.Title(language.AmericanEnglish).String(slug)
}

// Discount returns the rounded discount percentage, or 0 when the original
// price is absent or does not exceed the current one.
func Discount(originalPrice, currentPrice float64) int {
	if originalPrice <= currentPrice || originalPrice == 0 {
		return 0
	}
	return int(math.Round((1 - currentPrice/originalPrice) * 100))
}

// Stars renders a 0 to 5 rating as font-awesome icon markup: full stars, an
// optional half star, then empty stars up to five.
func Stars(rating float64) string {
	full := int(math.Floor(rating))
	half := rating != math.Floor(rating)
	empty := 5 - full
	if half {
		empty--
	}

	var b strings.Builder
	for i := 0; i < full; i++ {
		b.WriteString(`<i class="fas fa-star"></i>`)
	}
	if half {
		b.WriteString(`<i class="fas fa-star-half-alt"></i>`)
	}
	for i := 0; i < empty; i++ {
		b.WriteString(`<i class="far fa-star"></i>`)
	}
	return b.String()
}

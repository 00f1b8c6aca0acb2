package engine

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

const amountBody = `((?:\d{1,3}\.)*\d{1,3},\d{2})`

var (
	amountPattern       = regexp.MustCompile(`\s*([+-])\s*` + amountBody)
	creditPattern       = regexp.MustCompile(`\s*([+])\s*` + amountBody)
	debitPattern        = regexp.MustCompile(`\s*([-])\s*` + amountBody)
	localeAmountPattern = regexp.MustCompile(`^\s*([+-]?)\s*` + amountBody + `\s*$`)
	datePattern         = regexp.MustCompile(`\d{2}\.\d{2}\.\s*\d{4}`)
)

// ParseAmount finds a signed, German-formatted amount such as "- 1.234,56" in text.
func ParseAmount(text string) (decimal.Decimal, bool) {
	_, d, ok := matchAmount(text)
	return d, ok
}

// matchAmount is ParseAmount that also reports the sign character.
func matchAmount(text string) (string, decimal.Decimal, bool) {
	m := amountPattern.FindStringSubmatch(text)
	if m == nil {
		return "", decimal.Zero, false
	}
	d, ok := toDecimal(m[1], m[2])
	return m[1], d, ok
}

// ParseLocaleAmount parses a whole cell like "1.234,56" or "-12,00"; the sign is optional.
func ParseLocaleAmount(text string) (decimal.Decimal, bool) {
	m := localeAmountPattern.FindStringSubmatch(text)
	if m == nil {
		return decimal.Zero, false
	}
	return toDecimal(m[1], m[2])
}

func toDecimal(sign, digits string) (decimal.Decimal, bool) {
	normalized := strings.ReplaceAll(digits, ".", "")
	normalized = strings.Replace(normalized, ",", ".", 1)
	d, err := decimal.NewFromString(normalized)
	if err != nil {
		return decimal.Zero, false
	}
	if sign == "-" {
		d = d.Neg()
	}
	return d, true
}

// FormatAmount renders d with a leading sign, dot thousands separators and a decimal comma.
func FormatAmount(d decimal.Decimal) string {
	sign := "+"
	if d.IsNegative() {
		sign = "-"
	}
	fixed := d.Abs().StringFixed(2)
	intPart, frac, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}
	return sign + b.String() + "," + frac
}

func isDate(text string) bool {
	return datePattern.MatchString(text)
}

func isCredit(text string) bool {
	return creditPattern.MatchString(text)
}

func isDebit(text string) bool {
	return debitPattern.MatchString(text)
}

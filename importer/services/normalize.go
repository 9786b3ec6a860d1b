package services

import (
	"strings"

	"github.com/shopspring/decimal"
)

// CleanCurrency strips currency punctuation from a free-text money string and
// returns the value formatted to exactly two decimal places. Empty or
// non-numeric input yields "0.00". Negative values pass through formatted
// normally.
func CleanCurrency(text string) string {
	cleaned := strings.NewReplacer("$", "", ",", "", " ", "", "\t", "").Replace(strings.TrimSpace(text))
	if cleaned == "" {
		return "0.00"
	}
	value, err := decimal.NewFromString(cleaned)
	if err != nil {
		return "0.00"
	}
	return value.StringFixed(2)
}

// ParseClientName splits a full name on runs of whitespace. One token becomes
// the first name with an empty last name; two tokens split directly; with
// three or more the first token is the first name and the remainder, joined
// with single spaces, is the last name.
func ParseClientName(fullName string) (firstName, lastName string) {
	tokens := strings.Fields(fullName)
	switch len(tokens) {
	case 0:
		return "", ""
	case 1:
		return tokens[0], ""
	case 2:
		return tokens[0], tokens[1]
	default:
		return tokens[0], strings.Join(tokens[1:], " ")
	}
}

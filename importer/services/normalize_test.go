package services

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCleanCurrency(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain integer", "750", "750.00"},
		{"dollar sign and comma", "$1,234.50", "1234.50"},
		{"internal whitespace", " $ 1 234.50 ", "1234.50"},
		{"tab characters", "\t$900\t", "900.00"},
		{"already formatted", "850.25", "850.25"},
		{"negative value", "-45.5", "-45.50"},
		{"empty string", "", "0.00"},
		{"whitespace only", "   ", "0.00"},
		{"non-numeric", "n/a", "0.00"},
		{"trailing garbage", "12abc", "0.00"},
		{"extra precision rounds", "100.555", "100.56"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CleanCurrency(tt.input))
		})
	}
}

func TestParseClientName(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		firstName string
		lastName  string
	}{
		{"two tokens", "Lonelle Johnson", "Lonelle", "Johnson"},
		{"single token", "Madonna", "Madonna", ""},
		{"three tokens", "Mary Jane Watson", "Mary", "Jane Watson"},
		{"four tokens", "Juan de la Cruz", "Juan", "de la Cruz"},
		{"extra whitespace", "  Lonelle   Johnson  ", "Lonelle", "Johnson"},
		{"empty", "", "", ""},
		{"whitespace only", "   ", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first, last := ParseClientName(tt.input)
			assert.Equal(t, tt.firstName, first)
			assert.Equal(t, tt.lastName, last)
		})
	}
}

func TestEstimateBedroomsFromRent(t *testing.T) {
	tests := []struct {
		rent      string
		bedrooms  int
		bathrooms int
	}{
		{"0", 1, 1},
		{"-100", 1, 1},
		{"850", 1, 1},
		{"850.01", 2, 1},
		{"1200", 2, 1},
		{"1200.01", 3, 2},
		{"1600", 3, 2},
		{"1600.01", 4, 2},
		{"2500", 4, 2},
	}

	for _, tt := range tests {
		t.Run(tt.rent, func(t *testing.T) {
			rent, err := decimal.NewFromString(tt.rent)
			assert.NoError(t, err)
			bedrooms, bathrooms := EstimateBedroomsFromRent(rent)
			assert.Equal(t, tt.bedrooms, bedrooms)
			assert.Equal(t, tt.bathrooms, bathrooms)
		})
	}
}

func TestCombinedNotes(t *testing.T) {
	assert.Equal(t, "", ImportRecord{}.CombinedNotes())
	assert.Equal(t, "paid late", ImportRecord{Comment: " paid late "}.CombinedNotes())
	assert.Equal(t, "paid late moved out", ImportRecord{Comment: "paid late", Notes: "moved out"}.CombinedNotes())
}

func TestIsCaseInactive(t *testing.T) {
	assert.True(t, ImportRecord{Notes: "Case Inactive - moved out"}.IsCaseInactive())
	assert.True(t, ImportRecord{Comment: "CASE INACTIVE"}.IsCaseInactive())
	assert.False(t, ImportRecord{Notes: "active case"}.IsCaseInactive())
	assert.False(t, ImportRecord{}.IsCaseInactive())
}

package services

import (
	"strings"

	"housing-assist-backend/db/models"
)

// ValidateClient checks required fields on a client before it is persisted.
// Returns an empty string when the client is valid, otherwise a message
// describing the first problem found.
func ValidateClient(client *models.Client) string {
	if strings.TrimSpace(client.FirstName) == "" {
		return "first_name is required"
	}
	if client.CompanyID.String() == "00000000-0000-0000-0000-000000000000" {
		return "company_id is required"
	}
	if client.Status != "" && !IsValidStatus(string(client.Status)) {
		return "status must be one of: active, inactive"
	}
	if client.CountyAmount.IsNegative() {
		return "county_amount cannot be negative"
	}
	return ""
}

func IsValidStatus(status string) bool {
	switch models.ClientStatus(strings.ToLower(status)) {
	case models.ClientActive, models.ClientInactive:
		return true
	}
	return false
}

package services

import (
	"testing"

	"housing-assist-backend/db/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestValidateClient(t *testing.T) {
	valid := &models.Client{
		CompanyID: uuid.New(),
		FirstName: "Lonelle",
		LastName:  "Johnson",
		Status:    models.ClientActive,
	}
	assert.Empty(t, ValidateClient(valid))

	missingName := &models.Client{CompanyID: uuid.New()}
	assert.Contains(t, ValidateClient(missingName), "first_name")

	missingCompany := &models.Client{FirstName: "Lonelle"}
	assert.Contains(t, ValidateClient(missingCompany), "company_id")

	badStatus := &models.Client{
		CompanyID: uuid.New(),
		FirstName: "Lonelle",
		Status:    "archived",
	}
	assert.Contains(t, ValidateClient(badStatus), "status")

	negativeAmount := &models.Client{
		CompanyID:    uuid.New(),
		FirstName:    "Lonelle",
		CountyAmount: decimal.NewFromInt(-1),
	}
	assert.Contains(t, ValidateClient(negativeAmount), "county_amount")
}

func TestIsValidStatus(t *testing.T) {
	assert.True(t, IsValidStatus("active"))
	assert.True(t, IsValidStatus("Inactive"))
	assert.False(t, IsValidStatus("archived"))
	assert.False(t, IsValidStatus(""))
}

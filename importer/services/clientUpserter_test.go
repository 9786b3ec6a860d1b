package services

import (
	"testing"

	"housing-assist-backend/db/models"
	"housing-assist-backend/importer/repositories"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpsertCreatesClientWithPlaceholders(t *testing.T) {
	repo, db := newTestRepo(t)
	companyID := uuid.New()
	resolver := NewEntityResolver(repo, NewImportCache(), "tester@example.com")
	upserter := NewClientUpserter(repo, resolver, MergeOverwrite, "tester@example.com").WithCountyKey(true)

	result, err := upserter.Upsert(ImportRecord{
		ClientName:     "Lonelle Johnson",
		ManagementName: "Maple Grove Apartments",
		OfficeAddress:  "100 Maple St",
		RentAmount:     "$950",
		CountyAmount:   "$1,200.00",
		Notes:          "referred by county worker",
	}, companyID)
	require.NoError(t, err)
	assert.True(t, result.Created)
	assert.True(t, result.BuildingCreated)
	assert.True(t, result.PropertyCreated)

	var client models.Client
	require.NoError(t, db.First(&client, "id = ?", result.ClientID).Error)
	assert.Equal(t, "Lonelle", client.FirstName)
	assert.Equal(t, "Johnson", client.LastName)
	assert.Equal(t, "Lonelle Johnson", client.FullName)
	assert.Equal(t, "Ramsey", client.County)
	assert.Equal(t, "1200.00", client.CountyAmount.StringFixed(2))
	assert.Equal(t, "000-00-0000", client.SSN)
	assert.Equal(t, "unknown", client.EmploymentStatus)
	assert.Equal(t, "000-000-0000", client.PhoneNumber)
	assert.Equal(t, "lonelle.johnson@ramsey.county.placeholder", client.Email)
	assert.Equal(t, "referred by county worker", client.Notes)
	assert.Equal(t, models.ClientActive, client.Status)
	assert.True(t, client.IsActive)
	require.NotNil(t, client.PropertyID)
	require.NotNil(t, client.BuildingID)
}

func TestUpsertMarksInactiveCases(t *testing.T) {
	repo, db := newTestRepo(t)
	companyID := uuid.New()
	resolver := NewEntityResolver(repo, NewImportCache(), "tester@example.com")
	upserter := NewClientUpserter(repo, resolver, MergeOverwrite, "tester@example.com").WithCountyKey(true)

	result, err := upserter.Upsert(ImportRecord{
		ClientName:     "Dana Reeves",
		ManagementName: "Maple Grove Apartments",
		Notes:          "Case Inactive - moved out",
	}, companyID)
	require.NoError(t, err)

	var client models.Client
	require.NoError(t, db.First(&client, "id = ?", result.ClientID).Error)
	assert.Equal(t, models.ClientInactive, client.Status)
	assert.False(t, client.IsActive)
}

func TestUpsertRejectsUnusableNames(t *testing.T) {
	repo, _ := newTestRepo(t)
	resolver := NewEntityResolver(repo, NewImportCache(), "tester@example.com")
	upserter := NewClientUpserter(repo, resolver, MergeOverwrite, "tester@example.com")

	_, err := upserter.Upsert(ImportRecord{ClientName: ""}, uuid.New())
	assert.ErrorIs(t, err, ErrMissingName)

	_, err = upserter.Upsert(ImportRecord{ClientName: "Madonna"}, uuid.New())
	assert.ErrorIs(t, err, ErrMissingName)
}

func TestUpsertUpdatesExistingByCountyKey(t *testing.T) {
	repo, db := newTestRepo(t)
	companyID := uuid.New()
	resolver := NewEntityResolver(repo, NewImportCache(), "tester@example.com")
	upserter := NewClientUpserter(repo, resolver, MergeOverwrite, "tester@example.com").WithCountyKey(true)

	first, err := upserter.Upsert(ImportRecord{
		ClientName:     "Lonelle Johnson",
		ManagementName: "Maple Grove Apartments",
		CountyAmount:   "800",
	}, companyID)
	require.NoError(t, err)
	require.True(t, first.Created)

	second, err := upserter.Upsert(ImportRecord{
		ClientName:     "Lonelle Johnson",
		ManagementName: "Maple Grove Apartments",
		CountyAmount:   "950",
	}, companyID)
	require.NoError(t, err)
	assert.False(t, second.Created)
	assert.Equal(t, first.ClientID, second.ClientID)

	assert.EqualValues(t, 1, countRows(t, db, &models.Client{}))

	var client models.Client
	require.NoError(t, db.First(&client, "id = ?", second.ClientID).Error)
	assert.Equal(t, "950.00", client.CountyAmount.StringFixed(2))
}

func TestUpsertMergeOverwriteBlanksFields(t *testing.T) {
	repo, db := newTestRepo(t)
	companyID := uuid.New()
	resolver := NewEntityResolver(repo, NewImportCache(), "tester@example.com")
	upserter := NewClientUpserter(repo, resolver, MergeOverwrite, "tester@example.com").WithCountyKey(true)

	seedExistingClient(t, repo, companyID)

	result, err := upserter.Upsert(ImportRecord{
		ClientName:     "Lonelle Johnson",
		ManagementName: "Maple Grove Apartments",
	}, companyID)
	require.NoError(t, err)
	require.False(t, result.Created)

	var client models.Client
	require.NoError(t, db.First(&client, "id = ?", result.ClientID).Error)
	assert.Equal(t, "", client.CaseNumber)
	assert.Equal(t, "", client.Email)
	assert.Equal(t, "", client.PhoneNumber)
}

func TestUpsertMergeCoalesceKeepsFieldsOnBlankIncoming(t *testing.T) {
	repo, db := newTestRepo(t)
	companyID := uuid.New()
	resolver := NewEntityResolver(repo, NewImportCache(), "tester@example.com")
	upserter := NewClientUpserter(repo, resolver, MergeCoalesceEmpty, "tester@example.com").WithCountyKey(true)

	seedExistingClient(t, repo, companyID)

	result, err := upserter.Upsert(ImportRecord{
		ClientName:     "Lonelle Johnson",
		ManagementName: "Maple Grove Apartments",
	}, companyID)
	require.NoError(t, err)
	require.False(t, result.Created)

	var client models.Client
	require.NoError(t, db.First(&client, "id = ?", result.ClientID).Error)
	assert.Equal(t, "CN-1001", client.CaseNumber)
	assert.Equal(t, "lonelle@example.com", client.Email)
	assert.Equal(t, "651-555-0199", client.PhoneNumber)
}

func TestUpsertMergeCoalesceTakesNonBlankIncoming(t *testing.T) {
	repo, db := newTestRepo(t)
	companyID := uuid.New()
	resolver := NewEntityResolver(repo, NewImportCache(), "tester@example.com")
	upserter := NewClientUpserter(repo, resolver, MergeCoalesceEmpty, "tester@example.com").WithCountyKey(true)

	seedExistingClient(t, repo, companyID)

	result, err := upserter.Upsert(ImportRecord{
		ClientName:     "Lonelle Johnson",
		ManagementName: "Maple Grove Apartments",
		CaseNumber:     "CN-2002",
		Email:          "l.johnson@example.com",
	}, companyID)
	require.NoError(t, err)

	var client models.Client
	require.NoError(t, db.First(&client, "id = ?", result.ClientID).Error)
	assert.Equal(t, "CN-2002", client.CaseNumber)
	assert.Equal(t, "l.johnson@example.com", client.Email)
	assert.Equal(t, "651-555-0199", client.PhoneNumber)
}

func seedExistingClient(t *testing.T, repo repositories.ImportRepository, companyID uuid.UUID) {
	t.Helper()
	_, err := repo.CreateClient(&models.Client{
		CompanyID:   companyID,
		FirstName:   "Lonelle",
		LastName:    "Johnson",
		FullName:    "Lonelle Johnson",
		CaseNumber:  "CN-1001",
		County:      "Ramsey",
		Email:       "lonelle@example.com",
		PhoneNumber: "651-555-0199",
		Status:      models.ClientActive,
		IsActive:    true,
	})
	require.NoError(t, err)
}

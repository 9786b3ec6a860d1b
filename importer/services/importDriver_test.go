package services

import (
	"strings"
	"testing"

	"housing-assist-backend/db/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestImportTabDataCountsLineKinds(t *testing.T) {
	repo, _ := newTestRepo(t)
	driver := NewImportDriver(repo, zap.NewNop())
	companyID := uuid.New()

	data := strings.Join([]string{
		"Client\tProperties\tRental Office Address\tRent\tCounty\tNotes",
		"",
		"OnlyOneField",
		"Lonelle Johnson\tMaple Grove Apartments\t100 Maple St\t$950\t$1,200.00\treferred",
	}, "\n") + "\n"

	summary, err := driver.ImportTabData(data, companyID, DefaultTabImportOptions("tester@example.com"))
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Processed)
	assert.Equal(t, 1, summary.Created)
	assert.Equal(t, 0, summary.Updated)
	assert.Equal(t, 3, summary.Skipped)
}

func TestImportTabDataEndToEnd(t *testing.T) {
	repo, db := newTestRepo(t)
	driver := NewImportDriver(repo, zap.NewNop())
	companyID := uuid.New()

	data := "Lonelle Johnson\t14th Avenue South (11 Unit)\t100 Main St\t700.00\t259.00\treferred by county worker\n"

	summary, err := driver.ImportTabData(data, companyID, DefaultTabImportOptions("tester@example.com"))
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Processed)
	assert.Equal(t, 1, summary.Created)
	assert.Equal(t, 0, summary.Skipped)

	var client models.Client
	require.NoError(t, db.First(&client, "company_id = ?", companyID).Error)
	assert.Equal(t, "Lonelle", client.FirstName)
	assert.Equal(t, "Johnson", client.LastName)
	assert.Equal(t, "Ramsey", client.County)
	assert.Equal(t, "259.00", client.CountyAmount.StringFixed(2))
	require.NotNil(t, client.PropertyID)
	require.NotNil(t, client.BuildingID)

	var building models.Building
	require.NoError(t, db.First(&building, "id = ?", *client.BuildingID).Error)
	assert.Equal(t, "14th Avenue South (11 Unit)", building.Name)
	assert.Equal(t, "100 Main St", building.Address)

	var property models.Property
	require.NoError(t, db.First(&property, "id = ?", *client.PropertyID).Error)
	assert.Equal(t, *client.BuildingID, property.BuildingID)
	assert.Equal(t, "700.00", property.RentAmount.StringFixed(2))
}

func TestImportTabDataSecondRunUpdates(t *testing.T) {
	repo, db := newTestRepo(t)
	driver := NewImportDriver(repo, zap.NewNop())
	companyID := uuid.New()

	data := "Lonelle Johnson\tMaple Grove Apartments\t100 Maple St\t$950\t$1,200.00\t\n"
	opts := DefaultTabImportOptions("tester@example.com")

	first, err := driver.ImportTabData(data, companyID, opts)
	require.NoError(t, err)
	assert.Equal(t, 1, first.Created)

	second, err := driver.ImportTabData(data, companyID, opts)
	require.NoError(t, err)
	assert.Equal(t, 0, second.Created)
	assert.Equal(t, 1, second.Updated)

	assert.EqualValues(t, 1, countRows(t, db, &models.Client{}))
	assert.EqualValues(t, 1, countRows(t, db, &models.Building{}))
	assert.EqualValues(t, 1, countRows(t, db, &models.Property{}))
}

func TestProcessCSVRecordsAccumulatesCounts(t *testing.T) {
	repo, db := newTestRepo(t)
	driver := NewImportDriver(repo, zap.NewNop())
	companyID := uuid.New()

	records := []ImportRecord{
		{ClientName: "Lonelle Johnson", ManagementName: "Maple Grove Apartments", OfficeAddress: "100 Maple St", RentAmount: "950"},
		{ClientName: "Dana Reeves", ManagementName: "Maple Grove Apartments", OfficeAddress: "100 Maple St", RentAmount: "950"},
		{ClientName: "Sam Okafor", ManagementName: "Riverside Flats", OfficeAddress: "5 River Rd", RentAmount: "1450"},
		{ClientName: ""}, // unusable name, silently dropped
	}

	result, err := driver.ProcessCSVRecords(records, companyID, DefaultCSVImportOptions("tester@example.com"))
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.Equal(t, 3, result.ClientsCreated)
	assert.Equal(t, 0, result.ClientsUpdated)
	assert.Equal(t, 2, result.BuildingsCreated)
	assert.Equal(t, 2, result.PropertiesCreated)

	assert.EqualValues(t, 3, countRows(t, db, &models.Client{}))
	assert.EqualValues(t, 2, countRows(t, db, &models.Building{}))
	assert.EqualValues(t, 2, countRows(t, db, &models.Property{}))
}

func TestProcessCSVRecordsSharesUnitsWithinRun(t *testing.T) {
	repo, db := newTestRepo(t)
	driver := NewImportDriver(repo, zap.NewNop())
	companyID := uuid.New()

	records := []ImportRecord{
		{ClientName: "Lonelle Johnson", ManagementName: "Maple Grove Apartments", OfficeAddress: "100 Maple St"},
		{ClientName: "Dana Reeves", ManagementName: "Maple Grove Apartments", OfficeAddress: "100 Maple St"},
	}

	_, err := driver.ProcessCSVRecords(records, companyID, DefaultCSVImportOptions("tester@example.com"))
	require.NoError(t, err)

	var clients []models.Client
	require.NoError(t, db.Find(&clients).Error)
	require.Len(t, clients, 2)
	assert.Equal(t, *clients[0].PropertyID, *clients[1].PropertyID)
	assert.Equal(t, *clients[0].BuildingID, *clients[1].BuildingID)
}

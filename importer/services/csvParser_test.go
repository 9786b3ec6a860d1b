package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClientsCSVMapsHeaderColumns(t *testing.T) {
	// Columns deliberately out of canonical order.
	input := strings.Join([]string{
		`Client Name,Case Number,County,Properties Management,Rental Office Address,Rent Amount,County Amount,Notes`,
		`Lonelle Johnson,CN-1001,Ramsey,Maple Grove Apartments,100 Maple St,$950,"$1,200.00",referred`,
		`Dana Reeves,CN-1002,Hennepin,Riverside Flats,5 River Rd,1450,800,`,
	}, "\n")

	records, err := ParseClientsCSV(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "Lonelle Johnson", records[0].ClientName)
	assert.Equal(t, "CN-1001", records[0].CaseNumber)
	assert.Equal(t, "Ramsey", records[0].County)
	assert.Equal(t, "Maple Grove Apartments", records[0].ManagementName)
	assert.Equal(t, "100 Maple St", records[0].OfficeAddress)
	assert.Equal(t, "$950", records[0].RentAmount)
	assert.Equal(t, "$1,200.00", records[0].CountyAmount)
	assert.Equal(t, "referred", records[0].Notes)

	assert.Equal(t, "Dana Reeves", records[1].ClientName)
	assert.Equal(t, "Hennepin", records[1].County)
	assert.Equal(t, "", records[1].Notes)
}

func TestParseClientsCSVToleratesMissingOptionalColumns(t *testing.T) {
	input := "Client Name\nLonelle Johnson\n"

	records, err := ParseClientsCSV(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Lonelle Johnson", records[0].ClientName)
	assert.Equal(t, "", records[0].CaseNumber)
	assert.Equal(t, "", records[0].ManagementName)
}

func TestParseClientsCSVRequiresClientNameColumn(t *testing.T) {
	input := "Case Number,County\nCN-1001,Ramsey\n"

	_, err := ParseClientsCSV(strings.NewReader(input))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Client Name")
}

func TestParseClientsCSVFailsOnMalformedRow(t *testing.T) {
	input := "Client Name,County\n\"unterminated,Ramsey\n"

	records, err := ParseClientsCSV(strings.NewReader(input))
	require.Error(t, err)
	assert.Nil(t, records)
}

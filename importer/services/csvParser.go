package services

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// Column names of the header-based CSV export. The parser requires the name
// columns and tolerates any of the others being absent.
const (
	columnCaseNumber    = "Case Number"
	columnClientName    = "Client Name"
	columnClientNumber  = "Client Number"
	columnClientAddress = "Client Address"
	columnManagement    = "Properties Management"
	columnCounty        = "County"
	columnCellNumber    = "Cell Number"
	columnEmail         = "Email"
	columnComment       = "Comment"
	columnOfficeAddress = "Rental Office Address"
	columnRentAmount    = "Rent Amount"
	columnCountyAmount  = "County Amount"
	columnNotes         = "Notes"
)

// ParseClientsCSV reads a header-based CSV export into import records. A
// malformed file yields an error and no partial records.
func ParseClientsCSV(r io.Reader) ([]ImportRecord, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(name)] = i
	}
	if _, ok := index[columnClientName]; !ok {
		return nil, fmt.Errorf("CSV is missing the %q column", columnClientName)
	}

	var records []ImportRecord
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to parse CSV row: %w", err)
		}

		field := func(name string) string {
			i, ok := index[name]
			if !ok || i >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[i])
		}

		records = append(records, ImportRecord{
			CaseNumber:     field(columnCaseNumber),
			ClientName:     field(columnClientName),
			ClientNumber:   field(columnClientNumber),
			ClientAddress:  field(columnClientAddress),
			ManagementName: field(columnManagement),
			County:         field(columnCounty),
			Phone:          field(columnCellNumber),
			Email:          field(columnEmail),
			Comment:        field(columnComment),
			OfficeAddress:  field(columnOfficeAddress),
			RentAmount:     field(columnRentAmount),
			CountyAmount:   field(columnCountyAmount),
			Notes:          field(columnNotes),
		})
	}

	return records, nil
}

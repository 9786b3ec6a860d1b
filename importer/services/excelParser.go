package services

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ParseClientsExcel reads the first sheet of an .xlsx workbook whose first
// row carries the same column names as the CSV export, and maps the remaining
// rows into import records.
func ParseClientsExcel(path string) ([]ImportRecord, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read rows from Excel sheet: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	index := make(map[string]int, len(rows[0]))
	for i, name := range rows[0] {
		index[strings.TrimSpace(name)] = i
	}
	if _, ok := index[columnClientName]; !ok {
		return nil, fmt.Errorf("Excel sheet is missing the %q column", columnClientName)
	}

	var records []ImportRecord
	for _, row := range rows[1:] {
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

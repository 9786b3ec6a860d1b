package services

import "strings"

// Placeholder values for fields the import formats do not carry but the
// client schema requires.
const (
	defaultLandlordPhone    = "000-000-0000"
	defaultLandlordEmail    = "office@unknown-management.local"
	defaultClientPhone      = "000-000-0000"
	defaultSSN              = "000-00-0000"
	defaultEmploymentStatus = "unknown"
	defaultCounty           = "Ramsey"
)

// ImportRecord is the normalized shape of one source row, shared by the
// tab-delimited, header-CSV and Excel paths. Fields absent from a given
// format stay empty.
type ImportRecord struct {
	CaseNumber     string
	ClientName     string
	ClientNumber   string
	ClientAddress  string
	ManagementName string
	County         string
	Phone          string
	Email          string
	Comment        string
	OfficeAddress  string
	RentAmount     string
	CountyAmount   string
	Notes          string
}

// CombinedNotes concatenates the two free-text source columns into the
// client's notes field.
func (r ImportRecord) CombinedNotes() string {
	parts := []string{}
	if strings.TrimSpace(r.Comment) != "" {
		parts = append(parts, strings.TrimSpace(r.Comment))
	}
	if strings.TrimSpace(r.Notes) != "" {
		parts = append(parts, strings.TrimSpace(r.Notes))
	}
	return strings.Join(parts, " ")
}

// IsCaseInactive reports whether the free-text notes mark the case as
// inactive. This is a substring match; any unrelated "case inactive" text in
// the notes also flips the flag.
func (r ImportRecord) IsCaseInactive() bool {
	return strings.Contains(strings.ToLower(r.CombinedNotes()), "case inactive")
}

package services

import (
	"errors"
	"fmt"
	"strings"

	"housing-assist-backend/db/models"
	"housing-assist-backend/importer/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ErrMissingName marks a row whose client name is unusable. Drivers count
// these as skipped and carry on.
var ErrMissingName = errors.New("client row is missing a first or last name")

// MergeStrategy controls how an update treats fields that are blank in the
// incoming row.
type MergeStrategy string

const (
	// MergeOverwrite replaces every field with the incoming payload,
	// blanks included.
	MergeOverwrite MergeStrategy = "overwrite"
	// MergeCoalesceEmpty keeps the existing case number, email and phone
	// when the incoming value is blank.
	MergeCoalesceEmpty MergeStrategy = "coalesce"
)

// UpsertResult reports what one record did to the database.
type UpsertResult struct {
	Created         bool
	ClientID        uuid.UUID
	BuildingCreated bool
	PropertyCreated bool
}

// ClientUpserter finds an existing client by natural key and either updates
// or inserts it, after resolving the record's property/building pair.
type ClientUpserter struct {
	repo      repositories.ImportRepository
	resolver  *EntityResolver
	merge     MergeStrategy
	byCounty  bool
	createdBy string
}

func NewClientUpserter(repo repositories.ImportRepository, resolver *EntityResolver, merge MergeStrategy, createdBy string) *ClientUpserter {
	return &ClientUpserter{
		repo:      repo,
		resolver:  resolver,
		merge:     merge,
		createdBy: createdBy,
	}
}

// WithCountyKey switches the natural key from (name, company) to
// (name, county), the key used by the county export format.
func (u *ClientUpserter) WithCountyKey(byCounty bool) *ClientUpserter {
	u.byCounty = byCounty
	return u
}

// Upsert threads one record through resolution and the client upsert.
func (u *ClientUpserter) Upsert(record ImportRecord, companyID uuid.UUID) (*UpsertResult, error) {
	firstName, lastName := ParseClientName(record.ClientName)
	if firstName == "" || lastName == "" {
		return nil, ErrMissingName
	}

	unit, err := u.resolver.ResolveProperty(record, companyID)
	if err != nil {
		return nil, err
	}

	county := strings.TrimSpace(record.County)
	if county == "" {
		county = defaultCounty
	}

	existing, err := u.findExisting(companyID, firstName, lastName, county)
	if err != nil {
		return nil, err
	}

	payload := u.buildPayload(record, companyID, firstName, lastName, county, unit)
	result := &UpsertResult{
		BuildingCreated: unit.BuildingCreated,
		PropertyCreated: unit.PropertyCreated,
	}

	if existing != nil {
		u.applyMerge(existing, payload)
		updated, err := u.repo.UpdateClient(existing)
		if err != nil {
			return nil, err
		}
		result.ClientID = updated.ID
		return result, nil
	}

	if payload.Email == "" {
		payload.Email = countyPlaceholderEmail(firstName, lastName, county)
	}
	if payload.PhoneNumber == "" {
		payload.PhoneNumber = defaultClientPhone
	}
	created, err := u.repo.CreateClient(payload)
	if err != nil {
		return nil, err
	}
	result.Created = true
	result.ClientID = created.ID
	return result, nil
}

func (u *ClientUpserter) findExisting(companyID uuid.UUID, firstName, lastName, county string) (*models.Client, error) {
	if u.byCounty {
		return u.repo.GetClientByNameAndCounty(companyID, firstName, lastName, county)
	}
	return u.repo.GetClientByNameAndCompany(companyID, firstName, lastName)
}

func (u *ClientUpserter) buildPayload(record ImportRecord, companyID uuid.UUID, firstName, lastName, county string, unit *ResolvedUnit) *models.Client {
	countyAmount, _ := decimal.NewFromString(CleanCurrency(record.CountyAmount))

	status := models.ClientActive
	isActive := true
	if record.IsCaseInactive() {
		status = models.ClientInactive
		isActive = false
	}

	return &models.Client{
		CompanyID:        companyID,
		FirstName:        firstName,
		LastName:         lastName,
		FullName:         strings.TrimSpace(firstName + " " + lastName),
		CaseNumber:       strings.TrimSpace(record.CaseNumber),
		ClientNumber:     strings.TrimSpace(record.ClientNumber),
		County:           county,
		Address:          strings.TrimSpace(record.ClientAddress),
		PhoneNumber:      strings.TrimSpace(record.Phone),
		Email:            strings.TrimSpace(record.Email),
		SSN:              defaultSSN,
		EmploymentStatus: defaultEmploymentStatus,
		MonthlyIncome:    decimal.Zero,
		CountyAmount:     countyAmount,
		Notes:            record.CombinedNotes(),
		Status:           status,
		IsActive:         isActive,
		PropertyID:       unit.PropertyID,
		BuildingID:       unit.BuildingID,
		CreatedBy:        u.createdBy,
	}
}

// applyMerge overwrites the existing client with the payload, honoring the
// configured strategy for blank incoming fields.
func (u *ClientUpserter) applyMerge(existing *models.Client, payload *models.Client) {
	keptCaseNumber := existing.CaseNumber
	keptEmail := existing.Email
	keptPhone := existing.PhoneNumber

	existing.FirstName = payload.FirstName
	existing.LastName = payload.LastName
	existing.FullName = payload.FullName
	existing.CaseNumber = payload.CaseNumber
	existing.ClientNumber = payload.ClientNumber
	existing.County = payload.County
	existing.Address = payload.Address
	existing.PhoneNumber = payload.PhoneNumber
	existing.Email = payload.Email
	existing.CountyAmount = payload.CountyAmount
	existing.Notes = payload.Notes
	existing.Status = payload.Status
	existing.IsActive = payload.IsActive
	existing.PropertyID = payload.PropertyID
	existing.BuildingID = payload.BuildingID

	if u.merge == MergeCoalesceEmpty {
		if payload.CaseNumber == "" {
			existing.CaseNumber = keptCaseNumber
		}
		if payload.Email == "" {
			existing.Email = keptEmail
		}
		if payload.PhoneNumber == "" {
			existing.PhoneNumber = keptPhone
		}
	}
}

// countyPlaceholderEmail builds the synthetic contact address used when a new
// client arrives without one.
func countyPlaceholderEmail(firstName, lastName, county string) string {
	slug := func(s string) string {
		return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(s), " ", ""))
	}
	return fmt.Sprintf("%s.%s@%s.county.placeholder", slug(firstName), slug(lastName), slug(county))
}

package services

import (
	"strings"

	"housing-assist-backend/db/models"
	"housing-assist-backend/importer/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ResolvedUnit is the outcome of resolving one record's management-company
// and address fields into a property/building pair. Both ids come back
// together so a client always references a property belonging to its own
// building.
type ResolvedUnit struct {
	PropertyID      *uuid.UUID
	BuildingID      *uuid.UUID
	BuildingCreated bool
	PropertyCreated bool
}

// EntityResolver finds or creates the Building and Property for an import
// record. The default path keys buildings on (name, address, company) and
// properties on their building, memoizing decisions in the run cache so a
// distinct key creates at most one row per run.
//
// AllowDuplicateUnits switches to the legacy county behavior: the property
// lookup joins on building name only, and a miss always creates a fresh
// property even when the building already exists. Re-resolving the same
// management name can then stack duplicate units under one building, which is
// why it is opt-in.
type EntityResolver struct {
	repo                repositories.ImportRepository
	cache               *ImportCache
	bedrooms            BedroomPolicy
	allowDuplicateUnits bool
	createdBy           string
}

func NewEntityResolver(repo repositories.ImportRepository, cache *ImportCache, createdBy string) *EntityResolver {
	return &EntityResolver{
		repo:      repo,
		cache:     cache,
		bedrooms:  EstimateBedroomsFromRent,
		createdBy: createdBy,
	}
}

// WithBedroomPolicy swaps the room-count policy applied to new properties.
func (r *EntityResolver) WithBedroomPolicy(policy BedroomPolicy) *EntityResolver {
	r.bedrooms = policy
	return r
}

// WithDuplicateUnits enables the legacy duplicate-creating behavior.
func (r *EntityResolver) WithDuplicateUnits(allow bool) *EntityResolver {
	r.allowDuplicateUnits = allow
	return r
}

// ResolveProperty resolves the (management name, office address) pair of one
// record into a property/building id pair, creating rows as needed. An empty
// management name resolves to no unit at all.
func (r *EntityResolver) ResolveProperty(record ImportRecord, companyID uuid.UUID) (*ResolvedUnit, error) {
	managementName := strings.TrimSpace(record.ManagementName)
	if managementName == "" {
		return &ResolvedUnit{}, nil
	}

	if r.allowDuplicateUnits {
		return r.resolveLegacy(record, managementName, companyID)
	}
	return r.resolveMemoized(record, managementName, companyID)
}

func (r *EntityResolver) resolveMemoized(record ImportRecord, managementName string, companyID uuid.UUID) (*ResolvedUnit, error) {
	address := strings.TrimSpace(record.OfficeAddress)
	unit := &ResolvedUnit{}

	buildingKey := cacheKey(managementName, address, companyID.String())
	buildingID, cached := r.cache.BuildingID(buildingKey)
	if !cached {
		existing, err := r.repo.GetBuildingByNameAndAddress(companyID, managementName, address)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			buildingID = existing.ID
		} else {
			created, err := r.repo.CreateBuilding(r.newBuilding(managementName, address, companyID))
			if err != nil {
				return nil, err
			}
			buildingID = created.ID
			unit.BuildingCreated = true
		}
		r.cache.RememberBuilding(buildingKey, buildingID)
	}
	unit.BuildingID = &buildingID

	propertyKey := cacheKey(managementName, buildingID.String(), companyID.String())
	propertyID, cached := r.cache.PropertyID(propertyKey)
	if !cached {
		existing, err := r.repo.GetPropertyByBuilding(companyID, buildingID)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			propertyID = existing.ID
		} else {
			created, err := r.repo.CreateProperty(r.newProperty(record, managementName, buildingID, companyID))
			if err != nil {
				return nil, err
			}
			propertyID = created.ID
			unit.PropertyCreated = true
		}
		r.cache.RememberProperty(propertyKey, propertyID)
	}
	unit.PropertyID = &propertyID

	return unit, nil
}

// resolveLegacy reproduces the original county import behavior: property
// lookup joined by building name only, and a new property created whenever
// that combined lookup misses, even on a reused building.
func (r *EntityResolver) resolveLegacy(record ImportRecord, managementName string, companyID uuid.UUID) (*ResolvedUnit, error) {
	unit := &ResolvedUnit{}

	property, err := r.repo.GetPropertyByBuildingName(companyID, managementName)
	if err != nil {
		return nil, err
	}
	if property != nil {
		unit.PropertyID = &property.ID
		unit.BuildingID = &property.BuildingID
		return unit, nil
	}

	building, err := r.repo.GetBuildingByName(companyID, managementName)
	if err != nil {
		return nil, err
	}
	if building == nil {
		building, err = r.repo.CreateBuilding(r.newBuilding(managementName, strings.TrimSpace(record.OfficeAddress), companyID))
		if err != nil {
			return nil, err
		}
		unit.BuildingCreated = true
	}

	created, err := r.repo.CreateProperty(&models.Property{
		CompanyID:     companyID,
		BuildingID:    building.ID,
		Name:          managementName,
		UnitNumber:    "1",
		RentAmount:    decimal.Zero,
		DepositAmount: decimal.Zero,
		Bedrooms:      1,
		Bathrooms:     1,
		Status:        models.PropertyOccupied,
		CreatedBy:     r.createdBy,
	})
	if err != nil {
		return nil, err
	}
	unit.PropertyCreated = true
	unit.PropertyID = &created.ID
	unit.BuildingID = &building.ID
	return unit, nil
}

func (r *EntityResolver) newBuilding(name, address string, companyID uuid.UUID) *models.Building {
	return &models.Building{
		CompanyID:     companyID,
		Name:          name,
		Address:       address,
		LandlordName:  name,
		LandlordPhone: defaultLandlordPhone,
		LandlordEmail: defaultLandlordEmail,
		TotalUnits:    1,
		Status:        models.BuildingActive,
		CreatedBy:     r.createdBy,
	}
}

func (r *EntityResolver) newProperty(record ImportRecord, name string, buildingID, companyID uuid.UUID) *models.Property {
	rent, _ := decimal.NewFromString(CleanCurrency(record.RentAmount))
	bedrooms, bathrooms := r.bedrooms(rent)
	return &models.Property{
		CompanyID:     companyID,
		BuildingID:    buildingID,
		Name:          name,
		UnitNumber:    "1",
		RentAmount:    rent,
		DepositAmount: decimal.Zero,
		Bedrooms:      bedrooms,
		Bathrooms:     bathrooms,
		Status:        models.PropertyOccupied,
		CreatedBy:     r.createdBy,
	}
}

package repositories

import (
	"strings"

	"housing-assist-backend/config"
	"housing-assist-backend/db/models"

	"github.com/blevesearch/bleve/v2"
	"go.uber.org/zap"
)

type bleveBuildingDoc struct {
	ID           string                `json:"id"`
	Name         string                `json:"name"`
	Address      string                `json:"address"`
	LandlordName string                `json:"landlord_name"`
	BuildingType string                `json:"building_type"`
	Status       models.BuildingStatus `json:"status"`
	TotalUnits   int                   `json:"total_units"`
}

func newBleveBuildingDoc(building models.Building) bleveBuildingDoc {
	return bleveBuildingDoc{
		ID:           building.ID.String(),
		Name:         building.Name,
		Address:      building.Address,
		LandlordName: building.LandlordName,
		BuildingType: building.BuildingType,
		Status:       building.Status,
		TotalUnits:   building.TotalUnits,
	}
}

func (r *BleveRepository) IndexSingleBuilding(building models.Building) error {
	err := r.indexer.IndexDocument("buildings", building.ID.String(), newBleveBuildingDoc(building))
	if err != nil {
		config.Logger.Error("Failed to index single building into Bleve", zap.Error(err), zap.String("building_id", building.ID.String()))
		return err
	}
	return nil
}

func (r *BleveRepository) IndexExistingBuildings(buildings []models.Building) error {
	docsToBleveIndex := make(map[string]interface{})
	for _, building := range buildings {
		docsToBleveIndex[building.ID.String()] = newBleveBuildingDoc(building)
	}

	if len(docsToBleveIndex) > 0 {
		config.Logger.Info("Attempting to bulk index buildings into Bleve", zap.Int("count", len(docsToBleveIndex)))
		return r.indexer.BulkIndexDocuments("buildings", docsToBleveIndex)
	}
	return nil
}

func (r *BleveRepository) SearchBuildings(queryString string, status string) (*bleve.SearchResult, error) {
	queryString = strings.TrimSpace(strings.ToLower(queryString))
	exactFields := []string{"name", "address", "landlord_name"}
	fuzzyFields := []string{"name", "address", "landlord_name", "building_type"}
	return r.searchWithStrategies("buildings", queryString, exactFields, fuzzyFields, "status", strings.ToLower(status), 20)
}

func (r *BleveRepository) UpdateBuilding(building models.Building) error {
	err := r.indexer.UpdateDocument("buildings", building.ID.String(), newBleveBuildingDoc(building))
	if err != nil {
		config.Logger.Error("Failed to update building in Bleve", zap.Error(err), zap.String("building_id", building.ID.String()))
		return err
	}
	return nil
}

func (r *BleveRepository) DeleteBuilding(buildingID string) error {
	return r.indexer.DeleteDocument("buildings", buildingID)
}

func (r *BleveRepository) GetBuildingDocument(id string) (interface{}, error) {
	return r.indexer.GetDocument("buildings", id)
}

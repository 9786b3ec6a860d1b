package repositories

import (
	"strings"

	"housing-assist-backend/config"
	"housing-assist-backend/db/models"

	"github.com/blevesearch/bleve/v2"
	"go.uber.org/zap"
)

type bleveClientDoc struct {
	ID         string              `json:"id"`
	FirstName  string              `json:"first_name"`
	LastName   string              `json:"last_name"`
	FullName   string              `json:"full_name"`
	CaseNumber string              `json:"case_number"`
	County     string              `json:"county"`
	Email      string              `json:"email"`
	Phone      string              `json:"phone_number"`
	Status     models.ClientStatus `json:"status"`
	IsActive   bool                `json:"is_active"`
}

func newBleveClientDoc(client models.Client) bleveClientDoc {
	return bleveClientDoc{
		ID:         client.ID.String(),
		FirstName:  client.FirstName,
		LastName:   client.LastName,
		FullName:   client.FullName,
		CaseNumber: client.CaseNumber,
		County:     client.County,
		Email:      client.Email,
		Phone:      client.PhoneNumber,
		Status:     client.Status,
		IsActive:   client.IsActive,
	}
}

func (r *BleveRepository) IndexSingleClient(client models.Client) error {
	err := r.indexer.IndexDocument("clients", client.ID.String(), newBleveClientDoc(client))
	if err != nil {
		config.Logger.Error("Failed to index single client into Bleve", zap.Error(err), zap.String("client_id", client.ID.String()))
		return err
	}
	return nil
}

func (r *BleveRepository) IndexExistingClients(clients []models.Client) error {
	docsToBleveIndex := make(map[string]interface{})
	for _, client := range clients {
		docsToBleveIndex[client.ID.String()] = newBleveClientDoc(client)
	}

	if len(docsToBleveIndex) > 0 {
		config.Logger.Info("Attempting to bulk index clients into Bleve", zap.Int("count", len(docsToBleveIndex)))
		return r.indexer.BulkIndexDocuments("clients", docsToBleveIndex)
	}
	return nil
}

func (r *BleveRepository) SearchClients(queryString string, status string) (*bleve.SearchResult, error) {
	queryString = strings.TrimSpace(strings.ToLower(queryString))
	exactFields := []string{"full_name", "case_number", "email", "phone_number"}
	fuzzyFields := []string{"full_name", "first_name", "last_name", "county", "email"}
	return r.searchWithStrategies("clients", queryString, exactFields, fuzzyFields, "status", strings.ToLower(status), 20)
}

func (r *BleveRepository) UpdateClient(client models.Client) error {
	err := r.indexer.UpdateDocument("clients", client.ID.String(), newBleveClientDoc(client))
	if err != nil {
		config.Logger.Error("Failed to update client in Bleve", zap.Error(err), zap.String("client_id", client.ID.String()))
		return err
	}
	return nil
}

func (r *BleveRepository) DeleteClient(clientID string) error {
	return r.indexer.DeleteDocument("clients", clientID)
}

func (r *BleveRepository) GetClientDocument(id string) (interface{}, error) {
	return r.indexer.GetDocument("clients", id)
}

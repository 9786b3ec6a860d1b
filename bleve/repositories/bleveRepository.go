package repositories

import (
	"context"

	bleveindex "housing-assist-backend/bleve/services"
	"housing-assist-backend/db/models"

	"github.com/blevesearch/bleve/v2"
)

type BleveRepository struct {
	indexer *bleveindex.IndexingService
}

type BleveRepositoryInterface interface {
	// General
	DeleteAllIndices(ctx context.Context) error

	// ==== Client Indexing ====
	IndexSingleClient(client models.Client) error
	IndexExistingClients(clients []models.Client) error
	UpdateClient(client models.Client) error
	DeleteClient(clientID string) error

	// ==== Building Indexing ====
	IndexSingleBuilding(building models.Building) error
	IndexExistingBuildings(buildings []models.Building) error
	UpdateBuilding(building models.Building) error
	DeleteBuilding(buildingID string) error
}

// Constructor returning both the struct and the interface
func NewBleveRepository(indexer *bleveindex.IndexingService) (*BleveRepository, BleveRepositoryInterface) {
	repo := &BleveRepository{indexer: indexer}
	return repo, repo
}

func (r *BleveRepository) DeleteAllIndices(ctx context.Context) error {
	return r.indexer.DeleteAllIndices()
}

// searchWithStrategies layers term, phrase, fuzzy and prefix sub-queries over
// the given fields, boosted from exact to loose, the way all search entry
// points here query their index.
func (r *BleveRepository) searchWithStrategies(indexName, queryString string, exactFields, fuzzyFields []string, filterField, filterValue string, size int) (*bleve.SearchResult, error) {
	booleanQuery := bleve.NewBooleanQuery()

	exactMatch := bleve.NewBooleanQuery()
	for _, field := range exactFields {
		termQuery := bleve.NewTermQuery(queryString)
		termQuery.SetField(field)
		termQuery.SetBoost(6.0)
		exactMatch.AddShould(termQuery)
	}

	phraseMatch := bleve.NewBooleanQuery()
	for _, field := range exactFields {
		phraseQuery := bleve.NewMatchPhraseQuery(queryString)
		phraseQuery.SetField(field)
		phraseQuery.SetBoost(5.0)
		phraseMatch.AddShould(phraseQuery)
	}

	fuzzyMatch := bleve.NewBooleanQuery()
	for _, field := range fuzzyFields {
		fuzzyQuery := bleve.NewFuzzyQuery(queryString)
		fuzzyQuery.SetField(field)
		fuzzyQuery.SetFuzziness(2)
		fuzzyQuery.SetBoost(3.0)
		fuzzyMatch.AddShould(fuzzyQuery)
	}

	prefixMatch := bleve.NewBooleanQuery()
	for _, field := range fuzzyFields {
		prefixQuery := bleve.NewPrefixQuery(queryString)
		prefixQuery.SetField(field)
		prefixQuery.SetBoost(2.0)
		prefixMatch.AddShould(prefixQuery)
	}

	wildcardMatch := bleve.NewBooleanQuery()
	wildcardQuery := bleve.NewWildcardQuery("*" + queryString + "*")
	wildcardQuery.SetBoost(1.0)
	wildcardMatch.AddShould(wildcardQuery)

	booleanQuery.AddShould(exactMatch)
	booleanQuery.AddShould(phraseMatch)
	booleanQuery.AddShould(fuzzyMatch)
	booleanQuery.AddShould(prefixMatch)
	booleanQuery.AddShould(wildcardMatch)

	finalQuery := bleve.NewBooleanQuery()
	finalQuery.AddMust(booleanQuery)

	if filterValue != "" {
		filterQuery := bleve.NewTermQuery(filterValue)
		filterQuery.SetField(filterField)
		finalQuery.AddMust(filterQuery)
	}

	return r.indexer.SearchIndex(indexName, finalQuery, size)
}

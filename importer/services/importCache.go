package services

import (
	"strings"

	"github.com/google/uuid"
)

// ImportCache memoizes building and property resolution decisions for the
// duration of one import run, so repeated rows for the same management
// company skip the existence queries. It is owned by the driver and injected
// into the resolver; tests can pre-seed it.
type ImportCache struct {
	processedBuildings  map[string]uuid.UUID
	processedProperties map[string]uuid.UUID
}

func NewImportCache() *ImportCache {
	return &ImportCache{
		processedBuildings:  make(map[string]uuid.UUID),
		processedProperties: make(map[string]uuid.UUID),
	}
}

func cacheKey(parts ...string) string {
	return strings.ToLower(strings.Join(parts, "|"))
}

func (c *ImportCache) BuildingID(key string) (uuid.UUID, bool) {
	id, ok := c.processedBuildings[key]
	return id, ok
}

func (c *ImportCache) RememberBuilding(key string, id uuid.UUID) {
	c.processedBuildings[key] = id
}

func (c *ImportCache) PropertyID(key string) (uuid.UUID, bool) {
	id, ok := c.processedProperties[key]
	return id, ok
}

func (c *ImportCache) RememberProperty(key string, id uuid.UUID) {
	c.processedProperties[key] = id
}

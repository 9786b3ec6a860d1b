package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// BulkUploadErrorType represents the type of error logged for a rejected
// import row.
type BulkUploadErrorType string

const (
	DuplicateErrorType   BulkUploadErrorType = "Duplicate"
	MissingDataErrorType BulkUploadErrorType = "Missing Data"
	PersistenceErrorType BulkUploadErrorType = "Persistence Failure"
	ParseErrorType       BulkUploadErrorType = "Parse Error"
)

// AddedViaType indicates whether a record came in through a single form or a
// bulk upload.
type AddedViaType string

const (
	SingleAddedViaType AddedViaType = "Single"
	BulkAddedViaType   AddedViaType = "Bulk"
)

// BulkUploadErrorClients records a client-import row that could not be
// processed, along with the raw source row for later inspection.
type BulkUploadErrorClients struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;" json:"id"`
	CompanyID uuid.UUID `gorm:"type:uuid;index" json:"company_id"`

	ClientName    string `json:"client_name"`
	Properties    string `json:"properties"`
	OfficeAddress string `json:"office_address"`
	Reason        string `json:"reason"`

	RowNumber int            `json:"row_number"`
	RawRow    datatypes.JSON `json:"raw_row"`

	ErrorType BulkUploadErrorType `json:"error_type"`
	AddedVia  AddedViaType        `json:"added_via"`

	CreatedBy string    `json:"created_by"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

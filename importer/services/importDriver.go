package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"housing-assist-backend/config"
	"housing-assist-backend/db/models"
	"housing-assist-backend/importer/repositories"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ImportOptions make the policy choices of a run explicit instead of being
// implied by which code path was called.
type ImportOptions struct {
	// FailFast aborts the run on the first per-row persistence failure.
	// When false, failing rows are logged, counted as skipped, and the run
	// continues.
	FailFast bool
	// AllowDuplicateUnits enables the legacy county resolver behavior that
	// can create duplicate properties under a reused building.
	AllowDuplicateUnits bool
	// Merge picks the update semantics for existing clients.
	Merge MergeStrategy
	// ByCountyKey uses (name, county) instead of (name, company) as the
	// client natural key.
	ByCountyKey bool
	CreatedBy   string
}

// DefaultTabImportOptions mirror the historical county-file behavior:
// best-effort per-row isolation, full overwrite on update, county natural
// key. Duplicate-unit creation stays off unless explicitly requested.
func DefaultTabImportOptions(createdBy string) ImportOptions {
	return ImportOptions{
		FailFast:    false,
		Merge:       MergeOverwrite,
		ByCountyKey: true,
		CreatedBy:   createdBy,
	}
}

// DefaultCSVImportOptions mirror the header-CSV bulk path: all-or-nothing on
// row failure, coalescing blank fields on update, company natural key.
func DefaultCSVImportOptions(createdBy string) ImportOptions {
	return ImportOptions{
		FailFast:  true,
		Merge:     MergeCoalesceEmpty,
		CreatedBy: createdBy,
	}
}

// ImportSummary is the caller-visible outcome of a tab-delimited run.
type ImportSummary struct {
	Processed int `json:"processed"`
	Created   int `json:"created"`
	Updated   int `json:"updated"`
	Skipped   int `json:"skipped"`

	// Rows that failed to persist, for error reporting. Already logged to the
	// database by the run itself.
	ErrorRows []models.BulkUploadErrorClients `json:"-"`
}

// BulkImportResult is the caller-visible outcome of a header-CSV or Excel
// bulk run.
type BulkImportResult struct {
	Success           bool   `json:"success"`
	ClientsCreated    int    `json:"clients_created"`
	ClientsUpdated    int    `json:"clients_updated"`
	PropertiesCreated int    `json:"properties_created"`
	BuildingsCreated  int    `json:"buildings_created"`
	Error             string `json:"error,omitempty"`

	// Rows that failed to persist, for error reporting. Already logged to the
	// database by the run itself.
	ErrorRows []models.BulkUploadErrorClients `json:"-"`
}

// ImportDriver threads source records through the resolver and upserter, one
// record at a time, sequentially, in source order. No transaction wraps a
// run; a failure leaves prior rows committed.
type ImportDriver struct {
	repo   repositories.ImportRepository
	logger *zap.Logger
}

func NewImportDriver(repo repositories.ImportRepository, logger *zap.Logger) *ImportDriver {
	if logger == nil {
		logger = config.Logger
	}
	return &ImportDriver{
		repo:   repo,
		logger: logger,
	}
}

func (d *ImportDriver) newUpserter(opts ImportOptions, cache *ImportCache) *ClientUpserter {
	resolver := NewEntityResolver(d.repo, cache, opts.CreatedBy).
		WithDuplicateUnits(opts.AllowDuplicateUnits)
	return NewClientUpserter(d.repo, resolver, opts.Merge, opts.CreatedBy).
		WithCountyKey(opts.ByCountyKey)
}

// ImportFile runs the tab-delimited import over a file on disk.
func (d *ImportDriver) ImportFile(path string, companyID uuid.UUID, opts ImportOptions) (*ImportSummary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read import file %s: %w", path, err)
	}
	return d.ImportTabData(string(data), companyID, opts)
}

// ImportTabData runs the tab-delimited import over raw file content: one
// client per line, six positional columns, optional header line detected by
// its literal tokens. Blank, short and header lines count as skipped.
func (d *ImportDriver) ImportTabData(data string, companyID uuid.UUID, opts ImportOptions) (*ImportSummary, error) {
	summary := &ImportSummary{}
	cache := NewImportCache()
	upserter := d.newUpserter(opts, cache)

	var errorRows []models.BulkUploadErrorClients

	// A trailing newline is a line terminator, not an empty final line, so
	// it must not count as a skipped row.
	for i, line := range strings.Split(strings.TrimRight(data, "\r\n"), "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			summary.Skipped++
			continue
		}
		if isTabHeaderLine(line) {
			summary.Skipped++
			continue
		}

		fields := strings.Split(line, "\t")
		if len(fields) < 2 || strings.TrimSpace(fields[0]) == "" || strings.TrimSpace(fields[1]) == "" {
			summary.Skipped++
			continue
		}

		record := tabRecord(fields)
		result, err := upserter.Upsert(record, companyID)
		if err != nil {
			if errors.Is(err, ErrMissingName) {
				summary.Skipped++
				continue
			}
			if opts.FailFast {
				return summary, fmt.Errorf("row %d: %w", i+1, err)
			}
			d.logger.Error("Failed to import client row",
				zap.Int("row", i+1),
				zap.String("client_name", record.ClientName),
				zap.Error(err),
			)
			errorRows = append(errorRows, d.errorRow(record, companyID, i+1, err, opts.CreatedBy))
			summary.Skipped++
			continue
		}

		summary.Processed++
		if result.Created {
			summary.Created++
		} else {
			summary.Updated++
		}
	}

	if err := d.repo.LogBulkUploadClientErrors(errorRows); err != nil {
		d.logger.Warn("Failed to log invalid import rows", zap.Error(err))
	}
	summary.ErrorRows = errorRows

	return summary, nil
}

// ProcessCSVRecords runs parsed header-CSV (or Excel) records through the
// memoized generic path, accumulating entity-creation counts.
func (d *ImportDriver) ProcessCSVRecords(records []ImportRecord, companyID uuid.UUID, opts ImportOptions) (*BulkImportResult, error) {
	result := &BulkImportResult{}
	cache := NewImportCache()
	upserter := d.newUpserter(opts, cache)

	var errorRows []models.BulkUploadErrorClients

	for i, record := range records {
		upserted, err := upserter.Upsert(record, companyID)
		if err != nil {
			if errors.Is(err, ErrMissingName) {
				continue
			}
			if opts.FailFast {
				result.Error = err.Error()
				return result, fmt.Errorf("record %d: %w", i+1, err)
			}
			d.logger.Error("Failed to process bulk record",
				zap.Int("record", i+1),
				zap.String("client_name", record.ClientName),
				zap.Error(err),
			)
			errorRows = append(errorRows, d.errorRow(record, companyID, i+1, err, opts.CreatedBy))
			continue
		}

		if upserted.Created {
			result.ClientsCreated++
		} else {
			result.ClientsUpdated++
		}
		if upserted.BuildingCreated {
			result.BuildingsCreated++
		}
		if upserted.PropertyCreated {
			result.PropertiesCreated++
		}
	}

	if err := d.repo.LogBulkUploadClientErrors(errorRows); err != nil {
		d.logger.Warn("Failed to log invalid bulk records", zap.Error(err))
	}
	result.ErrorRows = errorRows

	result.Success = true
	return result, nil
}

func (d *ImportDriver) errorRow(record ImportRecord, companyID uuid.UUID, rowNumber int, rowErr error, createdBy string) models.BulkUploadErrorClients {
	raw, _ := json.Marshal(record)
	return models.BulkUploadErrorClients{
		ID:            uuid.New(),
		CompanyID:     companyID,
		ClientName:    record.ClientName,
		Properties:    record.ManagementName,
		OfficeAddress: record.OfficeAddress,
		Reason:        rowErr.Error(),
		RowNumber:     rowNumber,
		RawRow:        raw,
		ErrorType:     models.PersistenceErrorType,
		AddedVia:      models.BulkAddedViaType,
		CreatedBy:     createdBy,
	}
}

// isTabHeaderLine detects the optional header line of the county export by
// its literal column tokens.
func isTabHeaderLine(line string) bool {
	return strings.Contains(line, "Client") &&
		strings.Contains(line, "Properties") &&
		strings.Contains(line, "Rental Office")
}

// tabRecord maps the six positional columns of a county export line. Missing
// trailing fields stay empty.
func tabRecord(fields []string) ImportRecord {
	field := func(i int) string {
		if i < len(fields) {
			return strings.TrimSpace(fields[i])
		}
		return ""
	}
	return ImportRecord{
		ClientName:     field(0),
		ManagementName: field(1),
		OfficeAddress:  field(2),
		RentAmount:     field(3),
		CountyAmount:   field(4),
		Notes:          field(5),
		County:         defaultCounty,
	}
}

package controllers

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"housing-assist-backend/config"
	"housing-assist-backend/db/models"
	"housing-assist-backend/importer/services"
	"housing-assist-backend/internal/tasks"
	"housing-assist-backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type ImportController struct {
	Driver      *services.ImportDriver
	DB          *gorm.DB
	AsynqClient *asynq.Client
}

var errorReportHeaders = []string{
	"ClientName", "Properties", "OfficeAddress", "Reason", "RowNumber", "ErrorType", "AddedVia", "CreatedBy",
}

// BulkUploadClients ingests a client import file. The file format is picked
// by extension: .txt and .tsv run the tab-delimited path, .csv the header-CSV
// path, .xlsx the Excel path.
func (ic *ImportController) BulkUploadClients(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Failed to get file"})
	}
	tempFilePath := fmt.Sprintf("./tmp/%s", file.Filename)
	if err := utils.EnsureDirectoryExists(tempFilePath); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to prepare upload directory"})
	}
	if err := c.SaveFile(file, tempFilePath); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to save file"})
	}
	defer os.Remove(tempFilePath)

	// Extract the 'created_by' field from FormData
	userEmail := c.FormValue("created_by")
	if userEmail == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Missing 'created_by' field in FormData"})
	}

	companyID, err := uuid.Parse(c.FormValue("company_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Missing or invalid 'company_id' field in FormData"})
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	switch ext {
	case ".txt", ".tsv":
		return ic.runTabImport(c, tempFilePath, companyID, userEmail)
	case ".csv":
		return ic.runBulkImport(c, tempFilePath, companyID, userEmail, parseCSVFile)
	case ".xlsx":
		return ic.runBulkImport(c, tempFilePath, companyID, userEmail, services.ParseClientsExcel)
	default:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": fmt.Sprintf("Unsupported file type '%s'. Use .txt, .tsv, .csv or .xlsx", ext),
		})
	}
}

func (ic *ImportController) runTabImport(c *fiber.Ctx, path string, companyID uuid.UUID, userEmail string) error {
	opts := services.DefaultTabImportOptions(userEmail)
	opts.AllowDuplicateUnits = c.FormValue("allow_duplicate_units") == "true"
	if c.FormValue("fail_fast") == "true" {
		opts.FailFast = true
	}

	summary, err := ic.Driver.ImportFile(path, companyID, opts)
	if err != nil {
		config.Logger.Error("Tab-delimited import failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Import aborted",
			"error":   err.Error(),
			"data":    summary,
		})
	}

	downloadLink := ic.deliverErrorReport(c, summary.ErrorRows, userEmail)
	ic.invalidateImportCaches()

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message":       "Import completed",
		"data":          summary,
		"download_link": downloadLink,
	})
}

func parseCSVFile(path string) ([]services.ImportRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open import file %s: %w", path, err)
	}
	defer f.Close()
	return services.ParseClientsCSV(f)
}

func (ic *ImportController) runBulkImport(c *fiber.Ctx, path string, companyID uuid.UUID, userEmail string, parse func(string) ([]services.ImportRecord, error)) error {
	records, err := parse(path)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Failed to parse import file",
			"error":   err.Error(),
		})
	}

	opts := services.DefaultCSVImportOptions(userEmail)
	opts.AllowDuplicateUnits = c.FormValue("allow_duplicate_units") == "true"
	if c.FormValue("fail_fast") == "false" {
		opts.FailFast = false
	}

	result, err := ic.Driver.ProcessCSVRecords(records, companyID, opts)
	if err != nil {
		config.Logger.Error("Bulk import failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Import aborted",
			"error":   err.Error(),
			"data":    result,
		})
	}

	downloadLink := ic.deliverErrorReport(c, result.ErrorRows, userEmail)
	ic.invalidateImportCaches()

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message":       "Import completed",
		"data":          result,
		"download_link": downloadLink,
	})
}

// deliverErrorReport writes rejected rows to an Excel workbook and queues an
// email with the download link. Report failures never fail the upload.
func (ic *ImportController) deliverErrorReport(c *fiber.Ctx, errorRows []models.BulkUploadErrorClients, userEmail string) string {
	if len(errorRows) == 0 {
		return ""
	}

	filePath, err := utils.GenerateExcel(errorRows, "client_import_errors", errorReportHeaders)
	if err != nil {
		config.Logger.Warn("Failed to generate error report workbook", zap.Error(err))
		return ""
	}
	downloadLink := utils.GetDownloadURL(c, filePath)

	if ic.AsynqClient != nil {
		task, err := tasks.NewImportReportEmailTask(errorReportEmailPayload(userEmail, filePath, downloadLink))
		if err != nil {
			config.Logger.Warn("Failed to build import report email task", zap.Error(err))
			return downloadLink
		}
		if _, err := ic.AsynqClient.Enqueue(task); err != nil {
			config.Logger.Warn("Failed to enqueue import report email", zap.Error(err))
		}
	}

	return downloadLink
}

// errorReportEmailPayload builds the report email. The attachment must be
// the local workbook path since the mailer reads it from disk; the download
// URL only belongs in the message body.
func errorReportEmailPayload(recipient, filePath, downloadLink string) tasks.ImportReportEmailPayload {
	message := "Please find the attached report of rows that could not be imported."
	if downloadLink != "" {
		message += " It is also available at " + downloadLink
	}
	return tasks.ImportReportEmailPayload{
		Recipient:      recipient,
		Subject:        "Client Import Errors - " + time.Now().Format("2006-01-02 15:04:05"),
		Message:        message,
		AttachmentPath: filePath,
	}
}

func (ic *ImportController) invalidateImportCaches() {
	utils.InvalidateCacheAsync("clients")
	utils.InvalidateCacheAsync("buildings")
	utils.InvalidateCacheAsync("properties")
}

package controllers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorReportEmailPayloadAttachesLocalFile(t *testing.T) {
	payload := errorReportEmailPayload(
		"uploader@example.com",
		"./public/files/client_import_errors_20260829.xlsx",
		"http://localhost:8080/public/files/client_import_errors_20260829.xlsx",
	)

	assert.Equal(t, "uploader@example.com", payload.Recipient)
	assert.Equal(t, "./public/files/client_import_errors_20260829.xlsx", payload.AttachmentPath)
	assert.Contains(t, payload.Message, "http://localhost:8080/public/files/client_import_errors_20260829.xlsx")
	assert.Contains(t, payload.Subject, "Client Import Errors")
}

func TestErrorReportEmailPayloadWithoutDownloadLink(t *testing.T) {
	payload := errorReportEmailPayload("uploader@example.com", "./tmp/report.xlsx", "")

	assert.Equal(t, "./tmp/report.xlsx", payload.AttachmentPath)
	assert.NotContains(t, payload.Message, "available at")
}

package utils

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// StringToUUIDPtr parses a UUID string into a pointer, returning nil for
// empty or malformed input.
func StringToUUIDPtr(s string) *uuid.UUID {
	if s == "" {
		return nil
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return nil
	}
	return &id
}

// FormatReceiptNumber formats a sequence number into a pool-fund receipt number
func FormatReceiptNumber(sequence int) string {
	year := time.Now().Year()
	return fmt.Sprintf("PF-%d-%05d", year, sequence)
}

package utils

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"
)

// Retry configuration
const maxRetries = 3
const retryDelay = 2 * time.Minute

// CleanupExpiredFiles removes a generated report file once it is older than the TTL
func CleanupExpiredFiles(filePath string, ttl time.Duration) error {
	info, err := os.Stat(filePath)
	if err != nil {
		return fmt.Errorf("error checking file: %v", err)
	}

	if time.Since(info.ModTime()) > ttl {
		err := os.Remove(filePath)
		if err != nil {
			return fmt.Errorf("error deleting expired file: %v", err)
		}
		log.Printf("Expired report file %s deleted.", filePath)
	}
	return nil
}

// CleanupAllExpired removes expired error-report files and stale list caches
func CleanupAllExpired(fileTTL time.Duration, redisClient *redis.Client) error {
	files, err := os.ReadDir(reportDir)
	if err != nil {
		return fmt.Errorf("error reading files directory: %v", err)
	}

	for _, file := range files {
		if file.IsDir() {
			continue
		}
		filePath := fmt.Sprintf("%s/%s", reportDir, file.Name())
		if err := CleanupExpiredFiles(filePath, fileTTL); err != nil {
			log.Println("Error cleaning up file:", err)
		}
	}

	for _, resource := range []string{"clients", "buildings", "properties", "poolfund", "reimbursements"} {
		if err := InvalidateCache(resource); err != nil {
			return fmt.Errorf("error cleaning up %s cache: %v", resource, err)
		}
	}

	return nil
}

// RunScheduledCleanup runs cleanup tasks daily at 1 AM with retries and logs error messages on failure
func RunScheduledCleanup(redisClient *redis.Client) {
	c := cron.New()

	c.AddFunc("0 1 * * *", func() {
		log.Println("running scheduled cleanup task...")

		var retries int
		var cleanupSuccess bool

		for retries < maxRetries {
			log.Printf("attempt %d to clean up...", retries+1)
			err := CleanupAllExpired(24*time.Hour, redisClient)
			if err == nil {
				log.Println("cleanup successful!")
				cleanupSuccess = true
				break
			}
			log.Printf("cleanup failed: %v", err)
			retries++
			time.Sleep(retryDelay)
		}

		if !cleanupSuccess {
			log.Printf("cleanup task failed after %d retries. please check the system.", retries)
		}
	})

	c.Start()

	// Keep the goroutine alive so cron jobs keep executing
	select {}
}

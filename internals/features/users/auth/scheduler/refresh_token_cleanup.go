// file: internals/features/users/auth/scheduler/refresh_token_cleanup.go
package scheduler

import (
	"log"
	"time"

	"gorm.io/gorm"

	"churchhub_backend/internals/features/users/auth/service"
)

const cleanupInterval = 6 * time.Hour

// StartRefreshTokenCleanupScheduler purges expired refresh tokens on a
// fixed interval for the lifetime of the process.
func StartRefreshTokenCleanupScheduler(db *gorm.DB) {
	go func() {
		ticker := time.NewTicker(cleanupInterval)
		defer ticker.Stop()

		// one pass at boot so a long-stopped instance catches up
		runCleanup(db)
		for range ticker.C {
			runCleanup(db)
		}
	}()
	log.Printf("🧹 Refresh-token cleanup scheduled every %s", cleanupInterval)
}

func runCleanup(db *gorm.DB) {
	n, err := service.PurgeExpiredRefreshTokens(db)
	if err != nil {
		log.Printf("[ERROR] refresh-token cleanup: %v", err)
		return
	}
	if n > 0 {
		log.Printf("🧹 Removed %d expired refresh token(s)", n)
	}
}

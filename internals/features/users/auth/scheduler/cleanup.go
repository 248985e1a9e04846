package scheduler

import (
	"context"
	"log"
	"time"

	"gorm.io/gorm"

	"hostel_admin_backend/internals/configs"
	authRepo "hostel_admin_backend/internals/features/users/auth/repository"
)

const cleanupBatch = 100

// StartBlacklistCleanupScheduler purges expired blacklist rows once a day
// until ctx is cancelled. Rows are kept TOKEN_BLACKLIST_TTL_DAYS past expiry.
func StartBlacklistCleanupScheduler(ctx context.Context, db *gorm.DB) {
	ttlDays := configs.GetEnvInt("TOKEN_BLACKLIST_TTL_DAYS", 7)

	go func() {
		ticker := time.NewTicker(24 * time.Hour)
		defer ticker.Stop()
		for {
			RunBlacklistCleanup(db, time.Now(), ttlDays)
			select {
			case <-ctx.Done():
				log.Println("[CLEANUP] scheduler stopped")
				return
			case <-ticker.C:
			}
		}
	}()
}

// RunBlacklistCleanup deletes in batches until a batch comes back short.
func RunBlacklistCleanup(db *gorm.DB, now time.Time, ttlDays int) int64 {
	cutoff := now.Add(-time.Duration(ttlDays) * 24 * time.Hour)
	var total int64
	for {
		n, err := authRepo.CleanupExpiredBlacklist(db, cutoff, cleanupBatch)
		if err != nil {
			log.Printf("[CLEANUP ERROR] token_blacklist: %v", err)
			return total
		}
		total += n
		if n < cleanupBatch {
			break
		}
	}
	if total > 0 {
		log.Printf("[CLEANUP] %d expired tokens removed", total)
	} else {
		log.Println("[CLEANUP] nothing to remove")
	}
	return total
}

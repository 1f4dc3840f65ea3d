package jobs

import (
	"context"
	"time"

	"betak-backend/internal/logger"
)

// orphanGracePeriod is how long an unreferenced upload may linger before
// the cleanup job removes it. It covers the window between uploading files
// and submitting the record that references them.
const orphanGracePeriod = 24 * time.Hour

// CleanOrphanedUploads deletes stored files that no rental, property or
// user record references anymore.
func (jr *JobRunner) CleanOrphanedUploads() {
	jr.runWithRecovery("CleanOrphanedUploads", func() {
		ctx := context.Background()

		referenced, err := jr.store.ReferencedFiles(ctx)
		if err != nil {
			logger.Error("Failed to load referenced files", "error", err)
			return
		}

		files, err := jr.files.List(ctx)
		if err != nil {
			logger.Error("Failed to list stored files", "error", err)
			return
		}

		cutoff := time.Now().Add(-orphanGracePeriod)
		removed := 0
		for _, f := range files {
			if _, ok := referenced[f.Key]; ok {
				continue
			}
			if f.ModTime.After(cutoff) {
				continue
			}
			if err := jr.files.Delete(ctx, f.Key); err != nil {
				logger.Error("Failed to delete orphaned file", "key", f.Key, "error", err)
				continue
			}
			removed++
		}

		logger.Info("Cleaned orphaned uploads", "scanned", len(files), "removed", removed)
	})
}

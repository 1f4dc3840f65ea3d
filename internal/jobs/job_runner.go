package jobs

import (
	"database/sql"

	"betak-backend/internal/config"
	"betak-backend/internal/logger"
	"betak-backend/internal/repository/postgres"
	"betak-backend/internal/service"
	"betak-backend/internal/storage"
)

// JobRunner coordinates the scheduled jobs. Jobs only read rental records
// and act on the side channels (files, email); they never create or mutate
// a rental.
type JobRunner struct {
	db       *sql.DB
	store    *postgres.Store
	services *Services
	files    storage.Storage
	config   *config.Config
}

// Services holds the service dependencies needed by jobs
type Services struct {
	Email service.EmailService
}

func NewJobRunner(db *sql.DB, store *postgres.Store, services *Services, files storage.Storage, cfg *config.Config) *JobRunner {
	return &JobRunner{
		db:       db,
		store:    store,
		services: services,
		files:    files,
		config:   cfg,
	}
}

// Config exposes the configuration to the scheduler.
func (jr *JobRunner) Config() *config.Config {
	return jr.config
}

// runWithRecovery wraps job execution with panic recovery
func (jr *JobRunner) runWithRecovery(jobName string, jobFunc func()) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Job panicked", "job", jobName, "panic", r)
		}
	}()

	logger.Info("Starting job", "job", jobName)
	jobFunc()
	logger.Info("Job completed", "job", jobName)
}

// RunAllNightlyJobs runs all nightly jobs (for manual execution)
func (jr *JobRunner) RunAllNightlyJobs() {
	jr.CleanOrphanedUploads()
	jr.SendCheckoutReminders()
}

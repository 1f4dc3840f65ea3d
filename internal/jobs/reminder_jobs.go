package jobs

import (
	"context"
	"time"

	"betak-backend/internal/logger"
)

// SendCheckoutReminders emails tenants whose approved rental ends tomorrow,
// prompting them to upload checkout evidence. The job only reads rental
// records; completing stays a tenant action.
func (jr *JobRunner) SendCheckoutReminders() {
	jr.runWithRecovery("SendCheckoutReminders", func() {
		ctx := context.Background()

		query := `
			SELECT u.email, u.name, p.name, r.end_date
			FROM rentals r
			JOIN users u ON u.id = r.user_id
			JOIN properties p ON p.id = r.property_id
			WHERE r.status = 'approved'
			  AND r.end_date::date = ($1::date + INTERVAL '1 day')
		`

		rows, err := jr.db.QueryContext(ctx, query, time.Now().Format("2006-01-02"))
		if err != nil {
			logger.Error("Failed to query rentals ending tomorrow", "error", err)
			return
		}
		defer rows.Close()

		sent := 0
		for rows.Next() {
			var email, name, propertyName string
			var endDate time.Time
			if err := rows.Scan(&email, &name, &propertyName, &endDate); err != nil {
				logger.Error("Failed to scan reminder row", "error", err)
				continue
			}
			if err := jr.services.Email.SendCheckoutReminder(ctx, email, name, propertyName, endDate); err != nil {
				logger.Error("Failed to send checkout reminder", "email", email, "error", err)
				continue
			}
			sent++
		}
		if err := rows.Err(); err != nil {
			logger.Error("Error iterating reminder rows", "error", err)
			return
		}

		logger.Info("Sent checkout reminders", "count", sent)
	})
}

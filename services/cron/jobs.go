package cron

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/globaledge/api/model"
	"go.mongodb.org/mongo-driver/bson"
)

// AggregateLeadFunnel snapshots lead counts per funnel stage into the job log
// so the dashboard history survives lead deletions.
func (m *CronManager) AggregateLeadFunnel() {
	const jobName = "aggregate_lead_funnel"

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	leads := m.db.Collection(model.Lead{}.CollectionName())

	parts := make([]string, 0, len(model.LeadStatuses()))
	for _, status := range model.LeadStatuses() {
		count, err := leads.CountDocuments(ctx, bson.M{"status": status})
		if err != nil {
			m.logJobError(jobName, fmt.Errorf("failed to count %s leads: %w", status, err))
			return
		}
		parts = append(parts, fmt.Sprintf("%s=%d", status, count))
	}

	m.logJobComplete(jobName, strings.Join(parts, " "))
}

// SubmitNewURLs pushes pages created in the last 24 hours to IndexNow.
func (m *CronManager) SubmitNewURLs() {
	const jobName = "submit_new_urls"

	if m.indexNow == nil {
		m.logJobComplete(jobName, "IndexNow not configured, skipped")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	urls, err := m.sitemap.NewURLsSince(ctx, time.Now().Add(-24*time.Hour))
	if err != nil {
		m.logJobError(jobName, fmt.Errorf("failed to collect new URLs: %w", err))
		return
	}

	if len(urls) == 0 {
		m.logJobComplete(jobName, "No new URLs to submit")
		return
	}

	result, err := m.indexNow.Submit(ctx, urls)
	if err != nil {
		m.logJobError(jobName, fmt.Errorf("failed to submit %d URLs: %w", len(urls), err))
		return
	}

	m.logJobComplete(jobName, fmt.Sprintf("Submitted %d URLs, status %d", result.Submitted, result.Status))
}

// CleanupJobLogs removes cron job logs older than 30 days.
func (m *CronManager) CleanupJobLogs() {
	const jobName = "cleanup_job_logs"

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cutoff := time.Now().AddDate(0, 0, -30)
	res, err := m.logs().DeleteMany(ctx, bson.M{"started_at": bson.M{"$lt": cutoff}})
	if err != nil {
		m.logJobError(jobName, fmt.Errorf("failed to delete old logs: %w", err))
		return
	}

	m.logJobComplete(jobName, fmt.Sprintf("Deleted %d old job logs", res.DeletedCount))
}

package cron

import (
	"context"
	"log"
	"time"

	"github.com/globaledge/api/model"
	"github.com/globaledge/api/services/indexnow"
	"github.com/globaledge/api/services/sitemap"
	"github.com/robfig/cron/v3"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CronManager manages all scheduled cron jobs
type CronManager struct {
	cron     *cron.Cron
	db       *mongo.Database
	sitemap  *sitemap.Builder
	indexNow *indexnow.Client // nil when not configured
}

// NewCronManager creates a new cron manager
func NewCronManager(db *mongo.Database, sitemapBuilder *sitemap.Builder, indexNowClient *indexnow.Client) *CronManager {
	// Create cron with seconds precision
	c := cron.New(cron.WithSeconds())

	return &CronManager{
		cron:     c,
		db:       db,
		sitemap:  sitemapBuilder,
		indexNow: indexNowClient,
	}
}

// Start starts all cron jobs
func (m *CronManager) Start() error {
	log.Println("Starting cron jobs...")

	if err := m.registerJobs(); err != nil {
		return err
	}

	m.cron.Start()

	log.Println("Cron jobs started successfully")
	return nil
}

// Stop stops all cron jobs
func (m *CronManager) Stop() {
	log.Println("Stopping cron jobs...")
	ctx := m.cron.Stop()
	<-ctx.Done()
	log.Println("Cron jobs stopped")
}

// registerJobs registers all cron jobs with their schedules
func (m *CronManager) registerJobs() error {
	// 1. Every hour: Snapshot the lead funnel counts
	_, err := m.cron.AddFunc("0 0 * * * *", func() {
		m.logJobStart("aggregate_lead_funnel")
		m.AggregateLeadFunnel()
	})
	if err != nil {
		return err
	}

	// 2. Daily at 3 AM: Submit yesterday's new pages to IndexNow
	_, err = m.cron.AddFunc("0 0 3 * * *", func() {
		m.logJobStart("submit_new_urls")
		m.SubmitNewURLs()
	})
	if err != nil {
		return err
	}

	// 3. Daily at 4 AM: Trim old cron job logs
	_, err = m.cron.AddFunc("0 0 4 * * *", func() {
		m.logJobStart("cleanup_job_logs")
		m.CleanupJobLogs()
	})
	if err != nil {
		return err
	}

	log.Println("All cron jobs registered successfully")
	return nil
}

func (m *CronManager) logs() *mongo.Collection {
	return m.db.Collection(model.CronJobLog{}.CollectionName())
}

// logJobStart logs the start of a cron job
func (m *CronManager) logJobStart(jobName string) {
	log.Printf("[CRON] Starting job: %s at %s", jobName, time.Now().Format(time.RFC3339))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	now := time.Now().UTC()
	_, _ = m.logs().InsertOne(ctx, model.CronJobLog{
		JobName:   jobName,
		Status:    "running",
		StartedAt: now,
		CreatedAt: now,
	})
}

func (m *CronManager) finishJob(jobName string, update bson.M) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Returns the pre-update document so the duration can be derived
	// from its start time.
	var entry model.CronJobLog
	opts := options.FindOneAndUpdate().SetSort(bson.D{{Key: "started_at", Value: -1}})
	err := m.logs().FindOneAndUpdate(ctx,
		bson.M{"job_name": jobName, "status": "running"},
		bson.M{"$set": update},
		opts,
	).Decode(&entry)
	if err != nil {
		return
	}

	if completedAt, ok := update["completed_at"].(time.Time); ok {
		_, _ = m.logs().UpdateOne(ctx,
			bson.M{"_id": entry.ID},
			bson.M{"$set": bson.M{"duration_ms": int(completedAt.Sub(entry.StartedAt).Milliseconds())}},
		)
	}
}

// logJobComplete logs successful completion of a cron job
func (m *CronManager) logJobComplete(jobName string, message string) {
	log.Printf("[CRON] Completed job: %s - %s", jobName, message)

	now := time.Now().UTC()
	m.finishJob(jobName, bson.M{
		"status":       "completed",
		"completed_at": now,
		"message":      message,
	})
}

// logJobError logs a cron job error
func (m *CronManager) logJobError(jobName string, err error) {
	log.Printf("[CRON] Error in job: %s - %v", jobName, err)

	now := time.Now().UTC()
	m.finishJob(jobName, bson.M{
		"status":       "failed",
		"completed_at": now,
		"error_msg":    err.Error(),
	})
}

package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CronJobLog represents execution logs for background cron jobs
type CronJobLog struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	JobName     string             `bson:"job_name" json:"job_name"`
	Status      string             `bson:"status" json:"status"` // running, completed, failed
	StartedAt   time.Time          `bson:"started_at" json:"started_at"`
	CompletedAt *time.Time         `bson:"completed_at,omitempty" json:"completed_at"`
	Duration    int                `bson:"duration_ms" json:"duration_ms"` // Duration in milliseconds
	Message     string             `bson:"message,omitempty" json:"message"`
	ErrorMsg    string             `bson:"error_msg,omitempty" json:"error_msg"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
}

// CollectionName specifies the collection name for CronJobLog
func (CronJobLog) CollectionName() string {
	return "cron_job_logs"
}

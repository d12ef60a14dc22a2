package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/globaledge/api/database"
	"github.com/globaledge/api/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Prints recent background job runs so a failed sitemap submission or
// funnel aggregation shows up without digging through server logs.
func main() {
	jobName := flag.String("job", "", "filter by job name")
	limit := flag.Int("limit", 20, "number of runs to show")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	store, err := database.StartMongo()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer store.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	filter := bson.M{}
	if *jobName != "" {
		filter["job_name"] = *jobName
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "started_at", Value: -1}}).
		SetLimit(int64(*limit))

	cursor, err := store.DB().Collection(model.CronJobLog{}.CollectionName()).Find(ctx, filter, opts)
	if err != nil {
		log.Fatalf("Failed to fetch job logs: %v", err)
	}

	var logs []model.CronJobLog
	if err := cursor.All(ctx, &logs); err != nil {
		log.Fatalf("Failed to decode job logs: %v", err)
	}

	if len(logs) == 0 {
		fmt.Println("No job runs recorded.")
		return
	}

	fmt.Printf("%-28s %-10s %-22s %-10s %s\n", "JOB", "STATUS", "STARTED", "DURATION", "MESSAGE")
	for _, l := range logs {
		msg := l.Message
		if l.Status == "failed" {
			msg = l.ErrorMsg
		}
		fmt.Printf("%-28s %-10s %-22s %-10s %s\n",
			l.JobName,
			l.Status,
			l.StartedAt.Local().Format("2006-01-02 15:04:05"),
			fmt.Sprintf("%dms", l.Duration),
			msg,
		)
	}
}

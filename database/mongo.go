package database

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/globaledge/api/config"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Storage defines the interface that the database implementation must satisfy
type Storage interface {
	// Lifecycle methods
	Init() error
	Close() error
	HealthCheck() error

	// Database access
	DB() *mongo.Database
}

// MongoStore holds the process-wide MongoDB handle. The connection is
// established once and reused; Connect is a no-op when already connected.
type MongoStore struct {
	mu     sync.Mutex
	client *mongo.Client
	db     *mongo.Database
	uri    string
	dbName string
}

// StartMongo initializes the MongoDB connection from environment config.
func StartMongo() (*MongoStore, error) {
	getEnv, err := config.Get()
	if err != nil {
		return nil, err
	}

	store := &MongoStore{
		uri:    getEnv.MONGO_URI,
		dbName: getEnv.MONGO_DB,
	}

	if err := store.Connect(); err != nil {
		log.Println("Unable to connect to MongoDB:", err)
		return nil, err
	}

	log.Println("Successfully connected to MongoDB.")

	return store, nil
}

// Connect establishes the client connection. Idempotent: returns nil when a
// client already exists.
func (s *MongoStore) Connect() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.client != nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(s.uri))
	if err != nil {
		return err
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return err
	}

	s.client = client
	s.db = client.Database(s.dbName)
	return nil
}

// DB returns the database handle for collection access.
func (s *MongoStore) DB() *mongo.Database {
	return s.db
}

// Init ensures the unique indexes the data model depends on.
func (s *MongoStore) Init() error {
	log.Println("Initializing MongoDB indexes...")
	return EnsureIndexes(s.db)
}

// Close disconnects the client.
func (s *MongoStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.client == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.client.Disconnect(ctx)
	s.client = nil
	s.db = nil
	return err
}

// HealthCheck pings the primary.
func (s *MongoStore) HealthCheck() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.client.Ping(ctx, readpref.Primary())
}

// IsDup reports whether err is a MongoDB duplicate-key error (code 11000).
func IsDup(err error) bool {
	return err != nil && mongo.IsDuplicateKeyError(err)
}

package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	// Load env file into environments.
	_ "github.com/joho/godotenv/autoload"

	"github.com/dhasan111-hiringdock/FIrstconnect/internal/auth"
	"github.com/dhasan111-hiringdock/FIrstconnect/internal/database"
	"github.com/dhasan111-hiringdock/FIrstconnect/internal/model"
	"github.com/dhasan111-hiringdock/FIrstconnect/internal/store"
	"github.com/dhasan111-hiringdock/FIrstconnect/internal/upload"
)

// Server holds the portal's long-lived collaborators: the store backend, the
// upload store and the admin gate.
type Server struct {
	Store   store.Store
	Uploads *upload.Store
	Gate    auth.Gate
}

// NewServer wires the store, uploads and routes into a configured
// http.Server.
func NewServer() *http.Server {
	port, _ := strconv.Atoi(os.Getenv("PORT"))
	if port == 0 {
		port = 3000
	}

	s := &Server{
		Store:   buildStore(),
		Uploads: buildUploads(),
		Gate:    auth.NewCookieGate(),
	}

	return &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      s.RegisterRoutes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
}

// buildStore selects the backend: Postgres when DB_ENABLED is set, otherwise
// the in-memory store seeded with the starter listings.
func buildStore() store.Store {
	dbEnabled, _ := strconv.ParseBool(os.Getenv("DB_ENABLED"))
	if dbEnabled {
		db, err := database.GetMainDB()
		if err != nil {
			log.Fatalf("Database failed to initialize: %s", err)
		}
		return store.NewGorm(db)
	}

	mem := store.NewMemory()
	if err := mem.SeedJobs(context.Background(), model.StarterJobs); err != nil {
		log.Fatalf("Failed to seed starter jobs: %s", err)
	}
	return mem
}

// buildUploads probes the configured root once and degrades to the temp dir
// rather than refusing to start.
func buildUploads() *upload.Store {
	root := os.Getenv("UPLOAD_ROOT")
	if root == "" {
		root = "."
	}

	uploads, err := upload.New(upload.ResolveRoot(root))
	if err != nil {
		log.Printf("Upload directory unavailable under %q, using temp dir: %s", root, err)
		uploads, err = upload.New(os.TempDir())
		if err != nil {
			log.Fatalf("Failed to prepare upload directory: %s", err)
		}
	}
	return uploads
}

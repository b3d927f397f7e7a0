package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"diario/wellness-app/internal/api"
	"diario/wellness-app/internal/auth"
	"diario/wellness-app/internal/config"
	"diario/wellness-app/internal/data"
	"diario/wellness-app/internal/remote"
	"diario/wellness-app/internal/service"
	"diario/wellness-app/internal/storage"
	"diario/wellness-app/internal/store"
)

func main() {
	log.Println("Starting Wellness App Server...")

	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("FATAL: Could not load config: %v", err)
	}
	log.Println("Configuration loaded.")

	// --- Local store ---
	// The store is the durable source of truth. Opening it is fatal when it
	// fails; everything else degrades.
	localStore, err := store.Open(cfg.Database.Path, data.Collections())
	if err != nil {
		log.Fatalf("FATAL: Could not open local store at %s: %v", cfg.Database.Path, err)
	}
	defer func() {
		log.Println("Closing local store...")
		if err := localStore.Close(); err != nil {
			log.Printf("ERROR: Failed to close local store: %v", err)
		}
	}()
	log.Println("Local store opened.")

	dataService := data.NewService(localStore)

	// --- One-time legacy migration ---
	if err := dataService.Migrate(context.Background()); err != nil {
		// Not fatal: the completion flag stays unset and the next launch
		// retries. The app runs with whatever was migrated.
		log.Printf("ERROR: Legacy migration incomplete: %v", err)
	}

	// --- Remote sync (optional) ---
	var remoteService *remote.Service
	if cfg.Mongo.Enabled {
		dbClient, err := remote.ConnectDB(cfg.Mongo.URI)
		if err != nil {
			log.Printf("ERROR: Could not connect to MongoDB, running local-only: %v", err)
		} else {
			defer func() {
				log.Println("Disconnecting MongoDB...")
				if err := remote.DisconnectDB(dbClient); err != nil {
					log.Printf("ERROR: Failed to disconnect MongoDB: %v", err)
				}
			}()
			remoteService = remote.NewService(dbClient.Database(cfg.Mongo.Name))
			log.Println("Remote sync backend connected.")
		}
	}

	// --- Snapshot backups (optional) ---
	var snapshots storage.SnapshotStorage
	if cfg.S3.Enabled {
		snapshots, err = storage.NewS3Storage(cfg.S3)
		if err != nil {
			log.Printf("ERROR: Could not initialize snapshot storage, backups disabled: %v", err)
			snapshots = nil
		}
	}

	// --- Services ---
	log.Println("Initializing services...")
	// The AI analyzer is an external collaborator; deployments wire one in
	// here. Without it the analysis endpoints report unavailability.
	wellnessService := service.NewWellnessService(dataService, remoteService, snapshots, nil)

	// --- HTTP shell ---
	router := gin.Default() // Includes Logger and Recovery middleware

	log.Println("Setting up API routes...")
	allowList := auth.NewAllowList(cfg.Auth.AllowedEmails)
	api.SetupRoutes(router, cfg.JWT.Secret, allowList, wellnessService)

	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	log.Printf("Server starting on %s", cfg.Server.Address)

	// --- Graceful Shutdown ---
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("FATAL: ListenAndServe Error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Fatalf("FATAL: Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting.")
}

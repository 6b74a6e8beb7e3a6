package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"batepapo/backend/internal/chat"
	"batepapo/backend/internal/config"
	"batepapo/backend/internal/database"
	"batepapo/backend/internal/database/memstore"
	"batepapo/backend/internal/handler"
	"batepapo/backend/internal/sanitize"
)

const driverMemory = "memory"

// openStore returns the configured document store and a function releasing it.
func openStore(cfg *config.Config) (chat.Store, func(), error) {
	if cfg.StoreDriver == driverMemory {
		log.Println("Using in-memory store; data is lost on restart.")
		return memstore.New(), func() {}, nil
	}
	db, err := database.Connect(cfg.StoreDriver, cfg.DatabaseURL)
	if err != nil {
		return nil, nil, err
	}
	return db, func() {
		if err := db.Close(); err != nil {
			log.Printf("Failed to close database: %v", err)
		}
	}, nil
}

// @title           Bate-papo API
// @version         1.0
// @description     Group chat with presence tracking, public and private messages.
// @host            localhost:5000
// @BasePath        /
func main() {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	store, closeStore, err := openStore(cfg)
	if err != nil {
		log.Fatalf("Failed to open store: %v", err)
	}
	defer closeStore()

	clock := chat.Clock(time.Now)
	messages := chat.NewLog(store, store, clock)
	registry := chat.NewRegistry(store, messages, clock)
	reaper := chat.NewReaper(registry, cfg.ReaperInterval, cfg.InactivityThreshold, clock)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	reaperDone := make(chan struct{})
	go func() {
		defer close(reaperDone)
		reaper.Run(ctx)
	}()

	router := handler.NewRouter(handler.New(registry, messages, sanitize.New()), cfg.AllowedOrigins())
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		fmt.Printf("Server is running on :%s\n", cfg.Port)
		fmt.Printf("Swagger UI is available at http://localhost:%s/swagger/index.html\n", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("Server error: %v", err)
			stop()
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown failed: %v", err)
	}
	<-reaperDone
}

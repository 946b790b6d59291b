package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/novarover/gps-logger/internal/nats"
	"github.com/novarover/gps-logger/internal/storage"
	"github.com/novarover/gps-logger/internal/types"
)

func main() {
	if err := runLogger(); err != nil {
		log.Printf("Logger failed: %v", err)
		os.Exit(1)
	}
}

// runLogger contains the main application logic and can be tested
func runLogger() error {
	outputDir, natsURL := parseEnvironment()

	if err := os.MkdirAll(outputDir, 0o750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	client, err := nats.New(natsURL)
	if err != nil {
		return fmt.Errorf("failed to create NATS client: %w", err)
	}

	store := storage.New(outputDir)
	if err := store.Start(); err != nil {
		client.Close()
		return fmt.Errorf("failed to start storage: %w", err)
	}

	if err := client.SubscribeFixes(func(fix *types.Fix) {
		if err := store.WriteFix(fix); err != nil {
			log.Printf("Failed to write fix: %v", err)
		}
	}); err != nil {
		client.Close()
		return fmt.Errorf("failed to subscribe to fixes: %w", err)
	}

	log.Printf("Logging fixes to %s", outputDir)

	// Wait for shutdown signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	log.Println("Shutting down...")
	client.Close()
	if err := store.Stop(); err != nil {
		log.Printf("Error stopping storage: %v", err)
	}
	time.Sleep(time.Second) // Give time for goroutines to clean up

	return nil
}

// parseEnvironment extracts environment variables with defaults
func parseEnvironment() (string, string) {
	outputDir := os.Getenv("OUTPUT_DIR")
	if outputDir == "" {
		outputDir = "./logs" // Default output directory
	}

	natsURL := os.Getenv("NATS_URL")
	if natsURL == "" {
		natsURL = "nats://nats:4222" // Default to Docker service name
	}

	return outputDir, natsURL
}

package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/novarover/gps-logger/internal/config"
	"github.com/novarover/gps-logger/internal/db"
	"github.com/novarover/gps-logger/internal/decoder"
	"github.com/novarover/gps-logger/internal/nats"
	"github.com/novarover/gps-logger/internal/serialport"
	"github.com/novarover/gps-logger/internal/stats"
)

func main() {
	if err := run(); err != nil {
		log.Printf("Decoder failed: %v", err)
		os.Exit(1)
	}
}

// run contains the main application logic and can be tested
func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	client, err := nats.New(cfg.NATSURL)
	if err != nil {
		return fmt.Errorf("failed to create NATS client: %w", err)
	}
	defer client.Close()

	port, err := serialport.Open(cfg.Device, cfg.BaudRate)
	if err != nil {
		return fmt.Errorf("failed to open GPS device: %w", err)
	}
	defer func() {
		if err := port.Close(); err != nil {
			log.Printf("Error closing serial port: %v", err)
		}
	}()

	st := stats.New()
	dec := decoder.New(port, client, st, cfg.Device)
	log.Printf("Decoder session %s reading %s at %d baud", dec.SessionID(), cfg.Device, cfg.BaudRate)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if cfg.DatabaseURL != "" {
		dbClient, err := db.New(cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("failed to create database client: %w", err)
		}
		defer dbClient.Close()
		go persistStats(ctx, st, dbClient, dec.SessionID())
	}

	go logStats(ctx, st, dec.SessionID())

	// The receiver emits sentences at a fixed cadence; each tick drains
	// whatever bytes have arrived since the last one.
	ticker := time.NewTicker(cfg.PollInterval)
	defer ticker.Stop()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	for {
		select {
		case <-sigChan:
			log.Println("Shutting down...")
			return nil
		case <-ticker.C:
			if err := dec.Cycle(); err != nil {
				log.Printf("Decode cycle error: %v", err)
				// The next tick retries the reopened (or still dead) port.
				if err := port.Reconnect(); err != nil {
					log.Printf("Reconnect to %s failed: %v", cfg.Device, err)
				}
			}
		}
	}
}

// logStats periodically logs a counters summary
func logStats(ctx context.Context, st *stats.Stats, sessionID string) {
	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s := st.Snapshot(sessionID)
			log.Printf("Stats: framed=%d published=%d no_fix=%d malformed=%d suppressed=%d",
				s.FramedSentences, s.PublishedFixes, s.NoFixSentences,
				s.MalformedSentences, s.SuppressedCycles)
		}
	}
}

// persistStats periodically stores a counters snapshot in the database
func persistStats(ctx context.Context, st *stats.Stats, dbClient *db.Client, sessionID string) {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := dbClient.StoreDecoderStats(st.Snapshot(sessionID)); err != nil {
				log.Printf("Failed to persist stats: %v", err)
			}
		}
	}
}

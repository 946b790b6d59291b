package storage

import (
	"compress/gzip"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/novarover/gps-logger/internal/types"
)

// Storage handles writing fixes to daily-rotated log files
type Storage struct {
	outputDir string
	file      *os.File
	mu        sync.Mutex
	stopChan  chan struct{}
	wg        sync.WaitGroup
}

// New creates a new Storage instance
func New(outputDir string) *Storage {
	return &Storage{
		outputDir: outputDir,
		stopChan:  make(chan struct{}),
	}
}

// Start initializes the storage system and starts the rotation timer
func (s *Storage) Start() error {
	if err := s.rotateFile(); err != nil {
		return err
	}

	s.wg.Add(1)
	go s.rotationTimer()

	return nil
}

// Stop closes the current file and stops the rotation timer
func (s *Storage) Stop() error {
	close(s.stopChan)
	s.wg.Wait()

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.file != nil {
		return s.file.Close()
	}
	return nil
}

// WriteFix appends one fix as a JSON line to the current log file
func (s *Storage) WriteFix(fix *types.Fix) error {
	data, err := json.Marshal(fix)
	if err != nil {
		return fmt.Errorf("failed to marshal fix: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.file == nil {
		if err := s.rotateFile(); err != nil {
			return err
		}
	}

	_, err = s.file.Write(append(data, '\n'))
	return err
}

// rotationTimer handles daily rotation at midnight UTC
func (s *Storage) rotationTimer() {
	defer s.wg.Done()

	for {
		now := time.Now().UTC()
		nextMidnight := time.Date(now.Year(), now.Month(), now.Day()+1, 0, 0, 0, 0, time.UTC)
		waitTime := nextMidnight.Sub(now)

		select {
		case <-time.After(waitTime):
			if err := s.rotateAndCompress(); err != nil {
				fmt.Printf("Error during rotation: %v\n", err)
			}
		case <-s.stopChan:
			return
		}
	}
}

// rotateAndCompress rotates the current file and compresses the previous day's file
func (s *Storage) rotateAndCompress() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.file != nil {
		s.file.Close()
		s.file = nil
	}

	yesterday := time.Now().UTC().AddDate(0, 0, -1)
	yesterdayFile := filepath.Join(s.outputDir, fmt.Sprintf("fixes_%s.log", yesterday.Format("2006-01-02")))

	if _, err := os.Stat(yesterdayFile); err == nil {
		if err := compressFile(yesterdayFile); err != nil {
			return fmt.Errorf("failed to compress file: %w", err)
		}
	}

	return s.rotateFile()
}

// compressFile gzips a file in place and removes the original
func compressFile(path string) error {
	source, err := os.Open(path)
	if err != nil {
		return err
	}
	defer source.Close()

	target, err := os.Create(path + ".gz")
	if err != nil {
		return err
	}
	defer target.Close()

	gzipWriter := gzip.NewWriter(target)
	if _, err := io.Copy(gzipWriter, source); err != nil {
		gzipWriter.Close()
		return err
	}
	if err := gzipWriter.Close(); err != nil {
		return err
	}

	return os.Remove(path)
}

// rotateFile opens the log file for today's date
func (s *Storage) rotateFile() error {
	timestamp := time.Now().UTC().Format("2006-01-02")
	filename := filepath.Join(s.outputDir, fmt.Sprintf("fixes_%s.log", timestamp))

	file, err := os.OpenFile(filename, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("failed to create log file: %w", err)
	}

	s.file = file
	return nil
}

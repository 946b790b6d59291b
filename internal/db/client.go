package db

import (
	"database/sql"

	_ "github.com/lib/pq"

	"github.com/novarover/gps-logger/internal/types"
)

type Client struct {
	db *sql.DB
}

// New creates a new database client
func New(connStr string) (*Client, error) {
	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, err
	}
	return &Client{db: db}, nil
}

// Close closes the database connection
func (c *Client) Close() error {
	return c.db.Close()
}

// StoreFix stores a published fix
func (c *Client) StoreFix(fix *types.Fix) error {
	query := `
		INSERT INTO fixes (time, session_id, latitude, longitude, source)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := c.db.Exec(query,
		fix.Timestamp, fix.SessionID, fix.Latitude, fix.Longitude, fix.Source,
	)
	return err
}

// GetLatestFix retrieves the most recently stored fix, or nil if none exists
func (c *Client) GetLatestFix() (*types.FixRecord, error) {
	query := `
		SELECT id, time, session_id, latitude, longitude, source
		FROM fixes
		ORDER BY time DESC
		LIMIT 1
	`
	var r types.FixRecord
	err := c.db.QueryRow(query).Scan(
		&r.ID, &r.Timestamp, &r.SessionID, &r.Latitude, &r.Longitude, &r.Source,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// GetSessionFixes retrieves all fixes for one decoder session in time order
func (c *Client) GetSessionFixes(sessionID string) ([]*types.FixRecord, error) {
	query := `
		SELECT id, time, session_id, latitude, longitude, source
		FROM fixes
		WHERE session_id = $1
		ORDER BY time
	`
	rows, err := c.db.Query(query, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*types.FixRecord
	for rows.Next() {
		var r types.FixRecord
		if err := rows.Scan(
			&r.ID, &r.Timestamp, &r.SessionID, &r.Latitude, &r.Longitude, &r.Source,
		); err != nil {
			return nil, err
		}
		records = append(records, &r)
	}
	return records, rows.Err()
}

// StoreDecoderStats stores a decoder counters snapshot
func (c *Client) StoreDecoderStats(stats *types.DecoderStats) error {
	query := `
		INSERT INTO decoder_stats (
			time, session_id, framed_sentences, extracted_fixes,
			no_fix_sentences, malformed_sentences, suppressed_cycles,
			published_fixes, last_fix_time, processing_time_ms
		) VALUES (NOW(), $1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	var lastFix interface{}
	if !stats.LastFixTime.IsZero() {
		lastFix = stats.LastFixTime
	}
	_, err := c.db.Exec(query,
		stats.SessionID,
		stats.FramedSentences,
		stats.ExtractedFixes,
		stats.NoFixSentences,
		stats.MalformedSentences,
		stats.SuppressedCycles,
		stats.PublishedFixes,
		lastFix,
		stats.ProcessingTime.Milliseconds(),
	)
	return err
}

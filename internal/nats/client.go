package nats

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/novarover/gps-logger/internal/types"
)

const (
	// SubjectGPSFix carries decoded fixes in JSON form
	SubjectGPSFix = "gps.fix"

	streamName = "GPS_FIX"
)

// Client represents a NATS client
type Client struct {
	conn *nats.Conn
	js   nats.JetStreamContext
}

// New creates a new NATS client and ensures the fix stream exists
func New(url string) (*Client, error) {
	nc, err := nats.Connect(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	js, err := nc.JetStream()
	if err != nil {
		nc.Close()
		return nil, fmt.Errorf("failed to get JetStream context: %w", err)
	}

	_, err = js.AddStream(&nats.StreamConfig{
		Name:     streamName,
		Subjects: []string{SubjectGPSFix},
		Storage:  nats.FileStorage,
		MaxAge:   24 * time.Hour,
	})
	if err != nil && !strings.Contains(err.Error(), "stream name already in use") {
		nc.Close()
		return nil, fmt.Errorf("failed to create stream: %w", err)
	}

	return &Client{
		conn: nc,
		js:   js,
	}, nil
}

// PublishFix publishes a decoded fix
func (c *Client) PublishFix(fix *types.Fix) error {
	data, err := json.Marshal(fix)
	if err != nil {
		return fmt.Errorf("failed to marshal fix: %w", err)
	}

	_, err = c.js.Publish(SubjectGPSFix, data)
	if err != nil {
		return fmt.Errorf("failed to publish fix: %w", err)
	}

	return nil
}

// SubscribeFixes subscribes to decoded fixes
func (c *Client) SubscribeFixes(handler func(*types.Fix)) error {
	_, err := c.js.Subscribe(SubjectGPSFix, func(msg *nats.Msg) {
		var fix types.Fix
		if err := json.Unmarshal(msg.Data, &fix); err != nil {
			fmt.Printf("Error unmarshaling fix: %v\n", err)
			return
		}
		handler(&fix)
	})
	if err != nil {
		return fmt.Errorf("failed to subscribe: %w", err)
	}

	return nil
}

// Close closes the NATS connection
func (c *Client) Close() {
	if c.conn != nil {
		c.conn.Close()
	}
}

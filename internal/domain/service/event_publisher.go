package service

import (
	"context"
)

// ScanEvent describes one completed or failed scan, published for external
// consumers (dashboards, pipelines) after the scan is fully persisted.
type ScanEvent struct {
	RequestID         string `json:"request_id,omitempty"` // For distributed tracing
	ScanID            string `json:"scan_id"`
	BusinessesFound   int    `json:"businesses_found"`
	NewBusinesses     int    `json:"new_businesses"`
	UpdatedBusinesses int    `json:"updated_businesses"`
	Success           bool   `json:"success"`
	ErrorMessage      string `json:"error_message,omitempty"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishScanEvent publishes a scan result event for async processing
	PublishScanEvent(ctx context.Context, event *ScanEvent) error

	// Close releases any resources held by the publisher
	Close() error
}

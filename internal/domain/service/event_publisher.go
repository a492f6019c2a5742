package service

import (
	"context"
	"fmt"

	"soko/internal/errors"
)

// TagJobEvent asks the enrichment worker to label a text.
type TagJobEvent struct {
	RequestID string `json:"request_id,omitempty"` // For distributed tracing
	JobID     string `json:"job_id"`
	Text      string `json:"text"`
	ProductID string `json:"product_id,omitempty"`
}

// TagJobPublisher hands tag jobs to whatever runs them.
type TagJobPublisher interface {
	// PublishTagJob enqueues the job; it does not wait for the result.
	PublishTagJob(ctx context.Context, event *TagJobEvent) error

	// Close releases any resources held by the publisher
	Close() error
}

// TagJobRunner executes one tag job to completion.
type TagJobRunner interface {
	// RunTagJob returns a RetryableError when redelivery may succeed; any
	// other error means the job can never succeed and should be dropped.
	RunTagJob(ctx context.Context, event *TagJobEvent) error
}

// RetryableError wraps an error to indicate the message should be redelivered.
type RetryableError struct {
	err error
}

func (e *RetryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *RetryableError) Unwrap() error {
	return e.err
}

// NewRetryableError wraps an error as retryable
func NewRetryableError(err error) error {
	return &RetryableError{err: err}
}

// IsRetryableError checks if an error is retryable
func IsRetryableError(err error) bool {
	var re *RetryableError

	return errors.As(err, &re)
}

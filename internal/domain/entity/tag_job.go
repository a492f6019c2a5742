package entity

import "github.com/google/uuid"

// TagJobStatus is the externally visible state of a tagging job.
type TagJobStatus string

const (
	TagJobProcessing TagJobStatus = "processing"
	TagJobCompleted  TagJobStatus = "completed"
)

// TagJob is a background request to label a piece of text.
// ProductID is set when the result must be written back to a product.
type TagJob struct {
	ID        string
	Text      string
	ProductID *uuid.UUID
	Status    TagJobStatus
	Tags      []string
}

package entity

import (
	"time"

	"github.com/google/uuid"
)

// RequestStatus is the lifecycle state of a service request.
type RequestStatus string

const (
	RequestPending   RequestStatus = "PENDING"
	RequestAccepted  RequestStatus = "ACCEPTED"
	RequestCompleted RequestStatus = "COMPLETED"
	RequestRejected  RequestStatus = "REJECTED"
)

var requestTransitions = map[RequestStatus][]RequestStatus{
	RequestPending:  {RequestAccepted, RequestRejected},
	RequestAccepted: {RequestCompleted},
}

// IsValid checks if the RequestStatus is a known value.
func (s RequestStatus) IsValid() bool {
	switch s {
	case RequestPending, RequestAccepted, RequestCompleted, RequestRejected:
		return true
	default:
		return false
	}
}

// CanTransitionTo reports whether the provider may move a request from s to next.
func (s RequestStatus) CanTransitionTo(next RequestStatus) bool {
	for _, allowed := range requestTransitions[s] {
		if allowed == next {
			return true
		}
	}

	return false
}

// ServiceRequest is a customer's booking request for a service.
type ServiceRequest struct {
	ID            uuid.UUID
	ServiceID     uuid.UUID
	ProviderID    uuid.UUID
	CustomerID    uuid.UUID
	Message       string
	Status        RequestStatus
	ScheduledDate *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

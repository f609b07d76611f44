package enums

import "fmt"

// RequestStatus tracks a food request through its linear lifecycle.
type RequestStatus string

const (
	RequestStatusPending   RequestStatus = "pending"
	RequestStatusApproved  RequestStatus = "approved"
	RequestStatusCompleted RequestStatus = "completed"
)

var validRequestStatuses = []RequestStatus{
	RequestStatusPending,
	RequestStatusApproved,
	RequestStatusCompleted,
}

var requestTransitions = map[RequestStatus]RequestStatus{
	RequestStatusPending:  RequestStatusApproved,
	RequestStatusApproved: RequestStatusCompleted,
}

// IsValid checks whether the given status matches the canonical enum.
func (s RequestStatus) IsValid() bool {
	for _, candidate := range validRequestStatuses {
		if candidate == s {
			return true
		}
	}
	return false
}

// IsActive reports whether the request still counts toward active totals.
func (s RequestStatus) IsActive() bool {
	return s == RequestStatusPending || s == RequestStatusApproved
}

// CanTransitionTo reports whether next is a legal forward edge from s.
func (s RequestStatus) CanTransitionTo(next RequestStatus) bool {
	allowed, ok := requestTransitions[s]
	return ok && allowed == next
}

// ParseRequestStatus converts raw strings into RequestStatus.
func ParseRequestStatus(value string) (RequestStatus, error) {
	for _, candidate := range validRequestStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid request status %q", value)
}

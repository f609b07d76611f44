package enums

import "fmt"

// DonationStatus tracks a donation through its linear lifecycle.
type DonationStatus string

const (
	DonationStatusAvailable DonationStatus = "available"
	DonationStatusClaimed   DonationStatus = "claimed"
	DonationStatusCompleted DonationStatus = "completed"
)

var validDonationStatuses = []DonationStatus{
	DonationStatusAvailable,
	DonationStatusClaimed,
	DonationStatusCompleted,
}

// donationTransitions is the full set of allowed forward edges. There are no
// backward edges and no skips.
var donationTransitions = map[DonationStatus]DonationStatus{
	DonationStatusAvailable: DonationStatusClaimed,
	DonationStatusClaimed:   DonationStatusCompleted,
}

// IsValid checks whether the given status matches the canonical enum.
func (s DonationStatus) IsValid() bool {
	for _, candidate := range validDonationStatuses {
		if candidate == s {
			return true
		}
	}
	return false
}

// CanTransitionTo reports whether next is a legal forward edge from s.
func (s DonationStatus) CanTransitionTo(next DonationStatus) bool {
	allowed, ok := donationTransitions[s]
	return ok && allowed == next
}

// ParseDonationStatus converts raw strings into DonationStatus.
func ParseDonationStatus(value string) (DonationStatus, error) {
	for _, candidate := range validDonationStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid donation status %q", value)
}

package enums

import "fmt"

// CollectionKind names the per-user record collections the store manages.
type CollectionKind string

const (
	CollectionDonations     CollectionKind = "donations"
	CollectionRequests      CollectionKind = "requests"
	CollectionNotifications CollectionKind = "notifications"
	CollectionMessages      CollectionKind = "messages"
)

var validCollectionKinds = []CollectionKind{
	CollectionDonations,
	CollectionRequests,
	CollectionNotifications,
	CollectionMessages,
}

// IsValid checks whether the given kind matches the canonical enum.
func (k CollectionKind) IsValid() bool {
	for _, candidate := range validCollectionKinds {
		if candidate == k {
			return true
		}
	}
	return false
}

// ParseCollectionKind converts raw strings into CollectionKind.
func ParseCollectionKind(value string) (CollectionKind, error) {
	for _, candidate := range validCollectionKinds {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid collection kind %q", value)
}

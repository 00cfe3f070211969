package service

import "time"

// Clock provides the current time. Rental expiry and token rotation are
// time-sensitive, so use cases take a Clock instead of calling time.Now
// directly to keep temporal behavior testable.
type Clock interface {
	// Now returns the current instant.
	Now() time.Time
}

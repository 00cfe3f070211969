// Package clock provides the production implementation of the domain Clock.
package clock

import (
	"time"

	"marquee/internal/domain/service"
)

// systemClock reads the wall clock.
type systemClock struct{}

// NewSystemClock returns a Clock backed by time.Now.
func NewSystemClock() service.Clock {
	return systemClock{}
}

// Now returns the current instant.
func (systemClock) Now() time.Time {
	return time.Now()
}

package utils

import (
	"github.com/google/uuid"
)

var newUUIDv7 = uuid.NewV7

// NewRequestID returns a time-ordered id for request correlation.
func NewRequestID() string {
	id, err := newUUIDv7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

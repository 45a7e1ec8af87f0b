package utils

import (
	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return uuid.New().String()
}

// ValidRequestID reports whether an inbound X-Request-ID can be reused.
func ValidRequestID(id string) bool {
	return uuid.Validate(id) == nil
}

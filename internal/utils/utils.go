package utils

import "github.com/google/uuid"

// GenerateUUID returns a random UUID string for task identifiers
func GenerateUUID() string {
	return uuid.NewString()
}

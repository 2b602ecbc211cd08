package services

import "github.com/google/uuid"

// newID returns a time-ordered identifier for a new record.
func newID() string {
	return uuid.Must(uuid.NewV7()).String()
}

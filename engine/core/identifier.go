package core

import "github.com/google/uuid"

// NewResourceID returns a unique identifier for a loaded resource
// instance. IDs are only used for log correlation; equality of cached
// resources is decided by their path key, never by ID.
func NewResourceID() string {
	return uuid.New().String()
}

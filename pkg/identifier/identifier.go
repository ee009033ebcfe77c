package identifier

import "github.com/google/uuid"

// Generator returns a new opaque identifier on every call.
type Generator func() string

// NewUUID returns a random (version 4) UUID string.
func NewUUID() string {
	return uuid.NewString()
}

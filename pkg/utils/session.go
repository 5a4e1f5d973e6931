package utils

import (
	"github.com/google/uuid"
)

// NewSessionID generates an opaque session identifier for the chat widget.
func NewSessionID() string {
	return uuid.NewString()
}

// ValidateSessionID checks that a client-supplied session ID is a UUID.
func ValidateSessionID(sessionID string) bool {
	_, err := uuid.Parse(sessionID)
	return err == nil
}

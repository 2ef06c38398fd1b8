package utils

import "github.com/google/uuid"

// IsValidID reports whether the string is a well-formed UUID. Team, player
// and evaluation ids are all UUIDs; rejecting garbage at the handler keeps
// malformed ids out of query logs.
func IsValidID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

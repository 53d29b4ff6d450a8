package database

import "github.com/google/uuid"

// newSeedPassword returns a random one-time password for the seeded
// admin account.
func newSeedPassword() string {
	return uuid.New().String()
}

// Package identifier produces primary keys for items.
package identifier

import (
	"math/rand/v2"

	"github.com/google/uuid"
)

const (
	fallbackPrefix = "tmp-"
	fallbackLength = 24
	alphanumeric   = "abcdefghijklmnopqrstuvwxyz0123456789"
)

// New returns a statistically unique identifier suitable as an item primary
// key. It prefers a cryptographically random UUID; if the entropy source is
// unavailable it falls back to a marker-prefixed pseudo-random string with
// no guarantee beyond collision improbability.
func New() string {
	id, err := uuid.NewRandom()
	if err != nil {
		return fallback()
	}
	return id.String()
}

func fallback() string {
	b := make([]byte, fallbackLength)
	for i := range b {
		b[i] = alphanumeric[rand.IntN(len(alphanumeric))]
	}
	return fallbackPrefix + string(b)
}

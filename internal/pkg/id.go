package pkg

import (
	"crypto/rand"
	"encoding/hex"
)

const gameIDBytes = 8

// GenerateGameID - returns a random hex identifier for a game session.
func GenerateGameID() string {
	buf := make([]byte, gameIDBytes)
	_, _ = rand.Read(buf) // never returns an error

	return hex.EncodeToString(buf)
}

package pkg

import (
	"crypto/rand"
	"encoding/base64"
	"math/big"
)

// GenerateGameID - generates a short numeric game identifier.
func GenerateGameID() string {
	n, err := rand.Int(rand.Reader, big.NewInt(99999999))
	if err != nil {
		return GenerateSessionID()
	}
	return n.String()
}

// GenerateSessionID - generates a new unique session id for a socket connection.
func GenerateSessionID() string {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "error-generating-session-id"
	}

	return base64.RawURLEncoding.EncodeToString(b)
}

package cryptox

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// SessionTokenBytes is the entropy of a session token before hex encoding.
const SessionTokenBytes = 16

// GenerateSessionToken creates a cryptographically random session token and
// returns it as a 32-character hex string (128 bits of entropy). Collision
// probability is treated as negligible; no uniqueness check is made against
// live sessions.
func GenerateSessionToken() (string, error) {
	buf := make([]byte, SessionTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate session token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

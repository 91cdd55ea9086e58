package utils

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"
)

// GenerateUniqueHash returns a hex-encoded SHA-256 hash derived from the current time
// and 128 bits of random data. Used for default component and signal identifiers.
func GenerateUniqueHash() string {
	currentTime := time.Now().UnixNano()
	randomBytes := make([]byte, 16) // 128 bits of random data
	_, err := rand.Read(randomBytes)
	if err != nil {
		panic("random number generator failed")
	}

	hashInput := append([]byte(fmt.Sprintf("%d", currentTime)), randomBytes...)

	hash := sha256.Sum256(hashInput)

	return hex.EncodeToString(hash[:])
}

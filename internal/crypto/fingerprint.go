package crypto

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"lilrsa/internal/domain"
)

// fingerprintBytes is how much of the SHA-256 digest is kept.
const fingerprintBytes = 10

// Fingerprint returns a short fingerprint of an encoded public key record.
//
// It hashes with SHA-256, keeps the first 10 bytes and prints them as hex in
// colon-separated groups of four characters, e.g. "1a2b:3c4d:5e6f:7081:92a3".
func Fingerprint(publicRecord []byte) domain.Fingerprint {
	sum := sha256.Sum256(publicRecord)
	h := hex.EncodeToString(sum[:fingerprintBytes])

	groups := make([]string, 0, len(h)/4)
	for i := 0; i < len(h); i += 4 {
		groups = append(groups, h[i:i+4])
	}
	return domain.Fingerprint(strings.Join(groups, ":"))
}

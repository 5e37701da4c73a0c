package model

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// SourceFingerprint builds a dedup identity from a source-native vacancy ID.
// Preferred whenever the provider exposes a stable ID.
func SourceFingerprint(source, nativeID string) string {
	return source + ":" + nativeID
}

// ContentFingerprint builds a dedup identity by hashing title and company.
// Used for sources without stable native IDs. Two distinct vacancies with the
// same title and company collide; that is an accepted low-probability risk.
func ContentFingerprint(title, company string) string {
	key := strings.ToLower(strings.TrimSpace(title)) + "_" + strings.ToLower(strings.TrimSpace(company))
	sum := sha256.Sum256([]byte(key))
	return hex.EncodeToString(sum[:])
}

package cache

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
)

// cache key for one user's decision about a listing. Listing URLs carry
// characters that make poor redis key segments, so the URL is hashed.
func DecisionKey(userID, listingURL string) string {
	sum := sha1.Sum([]byte(listingURL))
	return fmt.Sprintf("decision:%s:%s", userID, hex.EncodeToString(sum[:]))
}

// cache key for a specific user.
func UserKey(id string) string {
	return fmt.Sprintf("user:%s", id)
}

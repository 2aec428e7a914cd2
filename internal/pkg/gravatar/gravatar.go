// Package gravatar derives the deterministic avatar URL for an email
// address following the gravatar convention.
package gravatar

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"strings"
)

const (
	size     = "200"
	rating   = "pg"
	fallback = "mm"
)

// URL returns the avatar for email. The same email always yields the same
// URL: the address is trimmed and lowercased before hashing.
func URL(email string) string {
	normalized := strings.ToLower(strings.TrimSpace(email))
	sum := md5.Sum([]byte(normalized))
	return fmt.Sprintf(
		"https://gravatar.com/avatar/%s?s=%s&r=%s&d=%s",
		hex.EncodeToString(sum[:]), size, rating, fallback,
	)
}

// Package auth holds the shared-token check used by both transports.
package auth

import (
	"crypto/subtle"
	"strings"
)

const bearerPrefix = "bearer "

// TokenMatches compares a presented credential with the configured token in constant time.
// The credential may be the raw token or "Bearer <token>".
func TokenMatches(presented, validToken string) bool {
	presented = strings.TrimSpace(presented)
	if len(presented) > len(bearerPrefix) && strings.EqualFold(presented[:len(bearerPrefix)], bearerPrefix) {
		presented = strings.TrimSpace(presented[len(bearerPrefix):])
	}
	if presented == "" || validToken == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(presented), []byte(validToken)) == 1
}

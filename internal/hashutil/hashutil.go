// Package hashutil computes the digests used to pivot on file and sample
// indicators.
package hashutil

import (
	"crypto/md5"
	"crypto/sha256"
	"encoding/hex"
)

// SHA256Hex returns the lowercase hex SHA-256 digest of the UTF-8 bytes of msg.
func SHA256Hex(msg string) string {
	sum := sha256.Sum256([]byte(msg))
	return hex.EncodeToString(sum[:])
}

// MD5Hex returns the lowercase hex MD5 digest of the UTF-8 bytes of msg.
// MD5 is kept for legacy IOC feeds, not for anything integrity-sensitive.
func MD5Hex(msg string) string {
	sum := md5.Sum([]byte(msg))
	return hex.EncodeToString(sum[:])
}

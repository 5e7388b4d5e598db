// Package codec holds the text transforms analysts reach for when peeling
// layered payloads: base64 and rot13.
package codec

import (
	"encoding/base64"

	"ioc-triage/internal/errs"
)

// Base64Encode encodes msg with the standard alphabet and padding.
func Base64Encode(msg string) string {
	return base64.StdEncoding.EncodeToString([]byte(msg))
}

// Base64Decode decodes a standard-alphabet, padded base64 string. Invalid
// input (non-alphabet characters, bad padding) yields a DecodeError.
func Base64Decode(encoded string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", errs.NewDecodeError("base64", err)
	}
	return string(raw), nil
}

// ROT13 shifts each ASCII letter 13 positions within its case range.
// Everything else passes through unchanged, so applying it twice returns
// the original input.
func ROT13(msg string) string {
	out := []byte(msg)
	for i, c := range out {
		switch {
		case c >= 'a' && c <= 'z':
			out[i] = 'a' + (c-'a'+13)%26
		case c >= 'A' && c <= 'Z':
			out[i] = 'A' + (c-'A'+13)%26
		}
	}
	return string(out)
}

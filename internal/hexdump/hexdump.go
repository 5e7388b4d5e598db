// Package hexdump renders file contents as fixed-width hex/ASCII rows.
package hexdump

import (
	"encoding/hex"
	"errors"
	"io/fs"
	"os"

	"ioc-triage/internal/errs"
)

// File reads the file at path fully into memory and returns its canonical
// hex dump: 16 bytes per row with an offset column and an ASCII gutter.
// A missing path yields a NotFoundError; any other read failure an IOError.
func File(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", errs.NewNotFoundError(path, err)
		}
		return "", errs.NewIOError("read", path, err)
	}
	return hex.Dump(raw), nil
}

// Bytes renders an in-memory buffer the same way File does. Useful when the
// payload never touched disk (for example a decoded base64 blob).
func Bytes(raw []byte) string {
	return hex.Dump(raw)
}

// Package source acquires building-code document text for the parsing core.
// The core itself never touches the filesystem; callers load text here and
// hand it to extract.Parser.
package source

import (
	"errors"
	"fmt"
	"os"
)

// ErrNotFound reports that the document file does not exist. Callers can
// distinguish it from read failures with errors.Is.
var ErrNotFound = errors.New("document not found")

// Load reads a document file and returns its text. A missing file yields an
// error wrapping ErrNotFound; any other failure is reported as a read error.
func Load(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return "", fmt.Errorf("reading document %s: %w", path, err)
	}
	return string(data), nil
}

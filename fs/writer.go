package fs

import (
	"os"

	"github.com/cespare/xxhash/v2"
)

// WriteFile writes content to path, skipping the write when the file
// already holds identical content so that repeated identical runs leave
// modification times untouched.
func WriteFile(path string, content []byte) error {
	if existing, err := os.ReadFile(path); err == nil {
		if xxhash.Sum64(existing) == xxhash.Sum64(content) {
			return nil
		}
	}
	return os.WriteFile(path, content, 0644)
}

//go:build !windows

package output

import (
	"fmt"

	"github.com/google/renameio/v2"
)

// WriteFile writes data to path atomically. The bytes go to a temporary file
// in the same directory that replaces path only after a successful sync, so a
// failed write never leaves a truncated workbook behind.
func WriteFile(path string, data []byte) error {
	if err := renameio.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

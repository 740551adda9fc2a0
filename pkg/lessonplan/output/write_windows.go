package output

import (
	"bytes"
	"fmt"

	"github.com/natefinch/atomic"
)

// WriteFile writes data to path atomically through a temporary file that
// replaces path with MoveFileEx once fully written.
func WriteFile(path string, data []byte) error {
	if err := atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// Package jobs holds the scheduled tasks: each one performs a single
// HTTP call or DB aggregate, swallows any failure, and appends a
// timestamped line to its fixed-path log file.
package jobs

import (
	"fmt"
	"os"
)

func appendLine(path, line string) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file %s: %w", path, err)
	}
	defer f.Close()

	if _, err := f.WriteString(line + "\n"); err != nil {
		return fmt.Errorf("failed to write log file %s: %w", path, err)
	}
	return nil
}

package parser

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// ErrNotRegularFile is returned when a path exists but is not a regular file.
var ErrNotRegularFile = errors.New("not a regular file")

// CheckFile verifies that path names an existing regular file.
func CheckFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%s does not exist: %w", path, fs.ErrNotExist)
		}
		return fmt.Errorf("checking %s: %w", path, err)
	}

	if !info.Mode().IsRegular() {
		return fmt.Errorf("%s is not a file: %w", path, ErrNotRegularFile)
	}

	return nil
}

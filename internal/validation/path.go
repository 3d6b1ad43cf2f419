// Package validation checks file system paths before any rendering work is
// done, so a bad destination fails fast and leaves nothing behind.
package validation

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

var (
	// ErrEmptyPath is returned for an empty path argument.
	ErrEmptyPath = errors.New("path cannot be empty")
	// ErrDirectoryNotFound is returned when the parent directory of an output
	// path does not exist.
	ErrDirectoryNotFound = errors.New("output directory does not exist")
	// ErrNotDirectory is returned when the parent of an output path exists but
	// is not a directory.
	ErrNotDirectory = errors.New("output path parent is not a directory")
)

// ValidateOutputPath checks that outputPath names a file whose parent
// directory already exists. The directory is never created.
func ValidateOutputPath(outputPath string) error {
	if outputPath == "" {
		return fmt.Errorf("output %w", ErrEmptyPath)
	}

	dir := filepath.Dir(filepath.Clean(outputPath))

	dirInfo, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrDirectoryNotFound, dir)
		}
		return fmt.Errorf("failed to access output directory: %w", err)
	}

	if !dirInfo.IsDir() {
		return fmt.Errorf("%w: %s", ErrNotDirectory, dir)
	}

	return nil
}

// ValidateInputPath validates an input path (config file or directory)
// Returns error if path doesn't exist or is not accessible
func ValidateInputPath(inputPath string, mustBeDir bool) error {
	if inputPath == "" {
		return fmt.Errorf("input %w", ErrEmptyPath)
	}

	cleanPath := filepath.Clean(inputPath)

	info, err := os.Stat(cleanPath)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("input path does not exist: %s", cleanPath)
		}
		return fmt.Errorf("failed to access input path: %w", err)
	}

	if mustBeDir && !info.IsDir() {
		return fmt.Errorf("input path must be a directory: %s", cleanPath)
	}

	if !mustBeDir && info.IsDir() {
		return fmt.Errorf("input path must be a file: %s", cleanPath)
	}

	return nil
}

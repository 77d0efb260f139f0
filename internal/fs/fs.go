// Package fs provides the filesystem seam used by the fixture generators.
//
// The main types are:
//   - [FS]: interface for the filesystem operations the generators need
//   - [Real]: production implementation using [os] and atomic writes
//   - [Faulty]: testing implementation that fails selected operations
//
// Example usage:
//
//	fsys := fs.NewReal()
//	if err := fsys.WriteFileAtomic("out.tsv", data, 0o644); err != nil {
//	    return err
//	}
package fs

import (
	"os"
)

// FS defines the filesystem operations used to write fixture files and
// read configuration.
//
// All methods mirror their [os] package equivalents but can be intercepted
// for testing with fault injection.
type FS interface {
	// ReadFile reads an entire file into memory. See [os.ReadFile].
	ReadFile(path string) ([]byte, error)

	// WriteFileAtomic writes data to a file atomically.
	// Uses a temp file + rename so path never holds a partial write.
	// perm applies when the file is created; an existing file keeps its mode.
	WriteFileAtomic(path string, data []byte, perm os.FileMode) error

	// MkdirAll creates a directory and all parents. See [os.MkdirAll].
	// No error if the directory already exists.
	MkdirAll(path string, perm os.FileMode) error

	// Exists reports whether a file or directory exists.
	// Returns (false, nil) if not found, (false, err) on other errors.
	Exists(path string) (bool, error)
}

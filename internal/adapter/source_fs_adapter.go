// Package adapter contains infrastructure adapters for the minigrep CLI.
package adapter

import (
	"io"
	"os"

	m "minigrep.dev/pkg/minigrep/internal/model"
)

// SourceFSAdapter abstracts the filesystem access the domain layer needs to
// load a source file. It hides direct `os` access so the search pipeline can
// be tested without touching the disk.
type SourceFSAdapter interface {
	// Open opens the file at path for reading. The caller closes it.
	Open(path m.Path) (io.ReadCloser, error)
}

// LocalSourceFSAdapter implements SourceFSAdapter on top of the local
// filesystem.
type LocalSourceFSAdapter struct{}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter instance ready to
// be wired into the runner.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

// Open opens the file at path with os.Open.
func (a *LocalSourceFSAdapter) Open(path m.Path) (io.ReadCloser, error) {
	// #nosec G304 - reading the user-supplied path is the point of the tool
	return os.Open(string(path))
}

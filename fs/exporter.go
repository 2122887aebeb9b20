package fs

import (
	"context"
	"os"
	"path/filepath"

	"github.com/fwojciec/pagemark"
)

// Ensure Exporter implements pagemark.Exporter at compile time.
var _ pagemark.Exporter = (*Exporter)(nil)

// Exporter implements pagemark.Exporter with atomic update semantics.
// Pages are staged in a temporary directory next to the target, and the
// whole directory is swapped into place on Commit.
type Exporter struct {
	dir string
}

// NewExporter creates a new Exporter targeting dir.
// Files are staged in dir.tmp and moved to dir on Commit.
func NewExporter(dir string) *Exporter {
	return &Exporter{dir: dir}
}

func (e *Exporter) tempDir() string {
	return e.dir + ".tmp"
}

// Save stages a page in the temporary directory.
func (e *Exporter) Save(ctx context.Context, page *pagemark.SavedPage) error {
	if err := page.Validate(); err != nil {
		return err
	}

	relPath, err := URLToPath(page.URL)
	if err != nil {
		return err
	}

	fullPath := filepath.Join(e.tempDir(), filepath.FromSlash(relPath))

	// Create parent directories
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return err
	}

	return os.WriteFile(fullPath, []byte(FormatPage(page)), 0644)
}

// Commit replaces the target directory with the staged export.
func (e *Exporter) Commit() error {
	// Remove existing target directory if present
	if err := os.RemoveAll(e.dir); err != nil {
		return err
	}

	// Atomically rename temp to final
	return os.Rename(e.tempDir(), e.dir)
}

// Abort discards the staged export.
func (e *Exporter) Abort() error {
	return os.RemoveAll(e.tempDir())
}

package fs

import (
	"os"
	"path/filepath"
)

// StagedExport exports into a temporary sibling directory that replaces
// the target directory on Commit, so a failed export leaves the previous
// one untouched.
type StagedExport struct {
	*Exporter
	baseDir string
	name    string
}

// NewStagedExport creates a StagedExport targeting dir. Files are written
// to dir.tmp and moved to dir on Commit.
func NewStagedExport(dir string) *StagedExport {
	dir = filepath.Clean(dir)
	s := &StagedExport{
		baseDir: filepath.Dir(dir),
		name:    filepath.Base(dir),
	}
	s.Exporter = NewExporter(s.tempDir())
	return s
}

func (s *StagedExport) tempDir() string {
	return filepath.Join(s.baseDir, s.name+".tmp")
}

func (s *StagedExport) finalDir() string {
	return filepath.Join(s.baseDir, s.name)
}

// Commit replaces the target directory with the staged files.
func (s *StagedExport) Commit() error {
	if err := os.MkdirAll(s.tempDir(), 0755); err != nil {
		return err
	}
	if err := os.RemoveAll(s.finalDir()); err != nil {
		return err
	}
	return os.Rename(s.tempDir(), s.finalDir())
}

// Abort discards the staged files.
func (s *StagedExport) Abort() error {
	return os.RemoveAll(s.tempDir())
}

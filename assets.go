package monoweb

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/alnah/go-monoweb/internal/fileutil"
)

// File permission constants.
const (
	dirPermissions  = 0o755 // rwxr-xr-x: output is served content
	filePermissions = 0o644 // rw-r--r--
)

// ResetOutputDir removes and recreates dir so no stale files survive a
// rebuild. The removal is intentional and destructive; the guard refuses
// suspicious targets (filesystem root, home directory, anything
// containing the working directory) so a misconfigured output path
// cannot wipe sources.
func ResetOutputDir(dir string) error {
	if err := fileutil.GuardDeletableDir(dir); err != nil {
		return fmt.Errorf("%w: %v", ErrUnsafeOutputDir, err)
	}

	if err := os.RemoveAll(dir); err != nil {
		return fmt.Errorf("%w: %v", ErrOutputWrite, err)
	}
	if err := os.MkdirAll(dir, dirPermissions); err != nil {
		return fmt.Errorf("%w: %v", ErrOutputWrite, err)
	}
	return nil
}

// CopyStaticAssets recursively copies the static tree rooted at srcDir
// into dstDir, preserving relative paths and file bytes exactly. No
// transformation is applied. A missing srcDir surfaces as fs.ErrNotExist
// so the caller can degrade gracefully.
func CopyStaticAssets(srcDir, dstDir string) error {
	if _, err := os.Stat(srcDir); err != nil {
		return fmt.Errorf("static directory: %w", err)
	}

	err := filepath.WalkDir(srcDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(srcDir, path)
		if err != nil {
			return err
		}
		return fileutil.CopyFile(path, filepath.Join(dstDir, rel), filePermissions)
	})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStaticCopy, err)
	}
	return nil
}

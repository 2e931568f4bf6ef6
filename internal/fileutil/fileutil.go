// Package fileutil provides file and path utility functions.
package fileutil

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Sentinel errors for file utility operations.
var (
	ErrEmptyDir  = errors.New("directory path cannot be empty")
	ErrUnsafeDir = errors.New("directory is not a safe deletion target")
)

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// DirExists returns true if the path exists and is a directory.
func DirExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// IsFilePath returns true if the string looks like a file path rather
// than a name. A string containing path separators (/, \) is treated as
// a path.
//
// Examples:
//   - "monospace" -> false (name)
//   - "./custom.html" -> true (relative path)
//   - "/absolute/skeleton.html" -> true (absolute)
//   - "my-template" -> false (hyphenated name)
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// GuardDeletableDir checks that dir is a sane target for destructive
// removal. It refuses the empty string, the filesystem root, the user's
// home directory, the current working directory, and any ancestor of the
// working directory. The check is a misconfiguration guard, not a
// security boundary.
func GuardDeletableDir(dir string) error {
	if strings.TrimSpace(dir) == "" {
		return ErrEmptyDir
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("resolving directory: %w", err)
	}

	if abs == string(os.PathSeparator) || abs == filepath.VolumeName(abs)+string(os.PathSeparator) {
		return fmt.Errorf("%w: filesystem root %q", ErrUnsafeDir, abs)
	}

	if home, err := os.UserHomeDir(); err == nil && abs == filepath.Clean(home) {
		return fmt.Errorf("%w: home directory %q", ErrUnsafeDir, abs)
	}

	if cwd, err := os.Getwd(); err == nil {
		if within(abs, cwd) {
			return fmt.Errorf("%w: %q contains the working directory", ErrUnsafeDir, abs)
		}
	}

	return nil
}

// within reports whether path is dir itself or a descendant of dir.
func within(dir, path string) bool {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(os.PathSeparator)))
}

// CopyFile copies src to dst byte-for-byte, creating parent directories
// as needed. Existing destination files are truncated.
func CopyFile(src, dst string, perm os.FileMode) error {
	in, err := os.Open(src) // #nosec G304 -- paths come from a directory walk
	if err != nil {
		return fmt.Errorf("opening %s: %w", src, err)
	}
	defer func() { _ = in.Close() }()

	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return fmt.Errorf("creating directory for %s: %w", dst, err)
	}

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm) // #nosec G304
	if err != nil {
		return fmt.Errorf("creating %s: %w", dst, err)
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return fmt.Errorf("copying %s: %w", src, err)
	}

	if err := out.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", dst, err)
	}
	return nil
}

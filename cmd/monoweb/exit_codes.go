package main

import (
	"errors"
	"os"

	monoweb "github.com/alnah/go-monoweb"
	"github.com/alnah/go-monoweb/internal/config"
)

// Exit codes for the monoweb CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful build
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or document input
	ExitIO      = 3 // File not found, permission denied, unwritable output
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, monoweb.ErrOutputWrite) ||
		errors.Is(err, monoweb.ErrStaticCopy) ||
		errors.Is(err, monoweb.ErrUnsafeOutputDir) {
		return ExitIO
	}

	// Usage/config/document errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrInvalidSubdir) ||
		errors.Is(err, config.ErrInvalidPort) ||
		errors.Is(err, monoweb.ErrFrontMatterParse) ||
		errors.Is(err, monoweb.ErrFrontMatterUnterminated) ||
		errors.Is(err, monoweb.ErrTemplateParse) ||
		errors.Is(err, monoweb.ErrTemplateRender) ||
		errors.Is(err, ErrUnknownCommand) {
		return ExitUsage
	}

	return ExitGeneral
}

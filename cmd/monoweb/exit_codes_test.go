package main

import (
	"fmt"
	"os"
	"testing"

	monoweb "github.com/alnah/go-monoweb"
	"github.com/alnah/go-monoweb/internal/config"
)

func TestExitCodeFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil error", nil, ExitSuccess},
		{"file not found", os.ErrNotExist, ExitIO},
		{"permission denied", os.ErrPermission, ExitIO},
		{"output write failure", monoweb.ErrOutputWrite, ExitIO},
		{"static copy failure", monoweb.ErrStaticCopy, ExitIO},
		{"unsafe output dir", monoweb.ErrUnsafeOutputDir, ExitIO},
		{"config not found", config.ErrConfigNotFound, ExitUsage},
		{"config parse failure", config.ErrConfigParse, ExitUsage},
		{"invalid subdir", config.ErrInvalidSubdir, ExitUsage},
		{"invalid port", config.ErrInvalidPort, ExitUsage},
		{"front matter parse failure", monoweb.ErrFrontMatterParse, ExitUsage},
		{"unterminated front matter", monoweb.ErrFrontMatterUnterminated, ExitUsage},
		{"template parse failure", monoweb.ErrTemplateParse, ExitUsage},
		{"template render failure", monoweb.ErrTemplateRender, ExitUsage},
		{"unknown command", ErrUnknownCommand, ExitUsage},
		{"unclassified error", fmt.Errorf("something else"), ExitGeneral},
		{"wrapped sentinel", fmt.Errorf("loading config: %w", config.ErrConfigNotFound), ExitUsage},
		{"deeply wrapped io error", fmt.Errorf("build: %w", fmt.Errorf("%w: disk full", monoweb.ErrOutputWrite)), ExitIO},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := exitCodeFor(tt.err); got != tt.want {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

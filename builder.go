package monoweb

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Compile-time interface implementation checks.
// These ensure implementations satisfy their interfaces at compile time,
// catching signature mismatches before runtime.
var (
	_ HTMLConverter  = (*GoldmarkConverter)(nil)
	_ HTMLNormalizer = (*TreeNormalizer)(nil)
)

// OutputFileName is the page written at the output root.
const OutputFileName = "index.html"

// Builder orchestrates the site build: front matter, conversion,
// normalization, TOC, template rendering, and the asset pipeline.
// Create with NewBuilder and run with Build. A Builder is stateless
// between builds; re-running on identical input produces byte-identical
// output.
type Builder struct {
	paths      Paths
	logf       func(format string, args ...any)
	converter  HTMLConverter
	normalizer HTMLNormalizer
	page       *PageTemplate
}

// NewBuilder creates a Builder for the given layout. Empty Paths fields
// fall back to DefaultPaths values. Returns an error if the page
// skeleton cannot be loaded or parsed.
func NewBuilder(paths Paths, opts ...Option) (*Builder, error) {
	b := &Builder{
		paths:      paths.withDefaults(),
		logf:       func(string, ...any) {},
		converter:  NewGoldmarkConverter(),
		normalizer: NewTreeNormalizer(),
	}

	for _, opt := range opts {
		opt(b)
	}

	if b.page == nil {
		page, err := LoadPageTemplate(b.paths.TemplateFile)
		if err != nil {
			return nil, err
		}
		b.page = page
	}

	return b, nil
}

// Paths returns the effective layout the builder operates on.
func (b *Builder) Paths() Paths {
	return b.paths
}

// Build runs one full site build: reset the output directory, copy
// static assets, and generate index.html from the input document.
//
// Missing optional inputs degrade gracefully: a missing static directory
// skips the asset copy with a warning, and a missing input file skips
// page generation with a warning (soft no-op, nil error). All other
// failures abort the build.
func (b *Builder) Build(ctx context.Context) error {
	if err := ResetOutputDir(b.paths.OutputDir); err != nil {
		return err
	}

	assetDir := filepath.Join(b.paths.OutputDir, b.paths.AssetSubdir)
	if err := CopyStaticAssets(b.paths.StaticDir, assetDir); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			b.logf("static directory %s not found, building without assets", b.paths.StaticDir)
		} else {
			return err
		}
	}

	src, err := os.ReadFile(b.paths.InputFile) // #nosec G304 -- input path is user-provided
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			b.logf("input file %s not found, skipping page generation", b.paths.InputFile)
			return nil
		}
		return fmt.Errorf("reading input file: %w", err)
	}

	page, err := b.GeneratePage(ctx, string(src))
	if err != nil {
		return err
	}

	outPath := filepath.Join(b.paths.OutputDir, OutputFileName)
	if err := os.WriteFile(outPath, []byte(page), filePermissions); err != nil {
		return fmt.Errorf("%w: %v", ErrOutputWrite, err)
	}

	b.logf("generated %s from %s", outPath, b.paths.InputFile)
	return nil
}

// GeneratePage runs the document pipeline on source text and returns the
// final page string. No filesystem access beyond the preloaded skeleton.
func (b *Builder) GeneratePage(ctx context.Context, src string) (string, error) {
	meta, body, err := SplitFrontMatter(src)
	if err != nil {
		return "", err
	}

	fragment, err := b.converter.ToHTML(ctx, body)
	if err != nil {
		return "", err
	}

	fragment, err = b.normalizer.Normalize(ctx, fragment)
	if err != nil {
		return "", err
	}

	// The outline is read from the normalized fragment, so TOC anchors
	// always agree with the markup the page ships.
	outline := ExtractHeadings(fragment)
	tocHTML := FormatTOC(outline)

	return b.page.Render(meta, tocHTML, fragment)
}

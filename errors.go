package monoweb

import "errors"

// Sentinel errors for library operations.
var (
	// Front matter parsing errors.
	ErrFrontMatterUnterminated = errors.New("front matter block is unterminated")
	ErrFrontMatterParse        = errors.New("front matter parsing failed")

	// Conversion and normalization errors.
	ErrHTMLConversion    = errors.New("HTML conversion failed")
	ErrHTMLNormalization = errors.New("HTML normalization failed")

	// Template errors.
	ErrTemplateParse  = errors.New("template parsing failed")
	ErrTemplateRender = errors.New("template rendering failed")

	// Output and asset errors.
	ErrUnsafeOutputDir = errors.New("refusing to reset output directory")
	ErrOutputWrite     = errors.New("failed to write output file")
	ErrStaticCopy      = errors.New("failed to copy static assets")
)

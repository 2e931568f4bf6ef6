package monoweb

// Fallback values for template slots with no front-matter counterpart.
const (
	DefaultTitle    = "The Monospace Web"
	DefaultTOCTitle = "Contents"
)

// Recognized front-matter keys. Other keys are preserved in the metadata
// mapping but unused by the renderer.
const (
	MetaTitle     = "title"
	MetaSubtitle  = "subtitle"
	MetaAuthor    = "author"
	MetaAuthorURL = "author-url"
	MetaTOCTitle  = "toc-title"
)

// Default directory layout, matching the reference site.
const (
	DefaultInputFile   = "index.md"
	DefaultOutputDir   = "docs"
	DefaultStaticDir   = "static"
	DefaultAssetSubdir = "src"
)

// Metadata is the front-matter key/value mapping of a document.
type Metadata map[string]string

// Get returns the value for key, or fallback if the key is absent.
// An explicitly empty value is returned as-is, not replaced.
func (m Metadata) Get(key, fallback string) string {
	if v, ok := m[key]; ok {
		return v
	}
	return fallback
}

// Document is a parsed input file: front-matter metadata plus body text.
// Immutable after parsing.
type Document struct {
	Meta Metadata
	Body string
}

// Heading is one entry of the heading outline: a heading's level, anchor
// ID, and text content in document order. The anchor ID is both the
// deep-link target on the heading and the TOC correlation key.
type Heading struct {
	Level int
	ID    string
	Text  string
}

// Paths groups the filesystem layout for a build.
type Paths struct {
	InputFile    string // Markdown source document
	TemplateFile string // page skeleton; empty = embedded default
	StaticDir    string // static assets tree; may be absent
	OutputDir    string // destroyed and recreated on every build
	AssetSubdir  string // subdirectory of OutputDir receiving static files
}

// DefaultPaths returns the conventional layout of the reference site.
func DefaultPaths() Paths {
	return Paths{
		InputFile:   DefaultInputFile,
		OutputDir:   DefaultOutputDir,
		StaticDir:   DefaultStaticDir,
		AssetSubdir: DefaultAssetSubdir,
	}
}

// withDefaults fills empty fields from DefaultPaths. TemplateFile stays
// empty (embedded skeleton).
func (p Paths) withDefaults() Paths {
	d := DefaultPaths()
	if p.InputFile == "" {
		p.InputFile = d.InputFile
	}
	if p.OutputDir == "" {
		p.OutputDir = d.OutputDir
	}
	if p.StaticDir == "" {
		p.StaticDir = d.StaticDir
	}
	if p.AssetSubdir == "" {
		p.AssetSubdir = d.AssetSubdir
	}
	return p
}

// Option configures a Builder.
type Option func(*Builder)

// WithLogger sets the builder's log callback. The builder logs degraded
// conditions (missing input file, missing static directory) and build
// progress; the default discards everything.
func WithLogger(logf func(format string, args ...any)) Option {
	if logf == nil {
		panic("monoweb: WithLogger callback must be non-nil")
	}
	return func(b *Builder) {
		b.logf = logf
	}
}

// WithPageTemplate overrides the page skeleton, bypassing TemplateFile
// resolution. Useful for tests and embedding callers.
func WithPageTemplate(page *PageTemplate) Option {
	return func(b *Builder) {
		b.page = page
	}
}

// WithConverter replaces the Markdown converter.
func WithConverter(c HTMLConverter) Option {
	return func(b *Builder) {
		b.converter = c
	}
}

// WithNormalizer replaces the HTML normalizer.
func WithNormalizer(n HTMLNormalizer) Option {
	return func(b *Builder) {
		b.normalizer = n
	}
}

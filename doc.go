// Package monoweb generates a single-document, monospace-styled website
// from a Markdown file with front matter.
//
// # Quick Start
//
// Create a builder for a directory layout and run a build:
//
//	b, err := monoweb.NewBuilder(monoweb.DefaultPaths())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := b.Build(context.Background()); err != nil {
//	    log.Fatal(err)
//	}
//
// The build writes index.html at the output root and copies the static
// assets tree verbatim into a subdirectory of the output directory.
//
// # Build Pipeline
//
// A build runs these stages:
//
//  1. Front matter parsing (YAML key/value block, optional)
//  2. Markdown to HTML conversion via Goldmark (GFM, auto heading IDs,
//     syntax highlighting)
//  3. HTML normalization on a parsed tree (list classing, figure
//     synthesis, highlighter wrapper-class removal)
//  4. Table of contents generation from the heading outline
//  5. Page template rendering and output write
//
// The normalization stage reconciles Goldmark's output with the markup
// conventions the monospace stylesheet expects. Each rule is an idempotent
// tree transformation, so re-running a build on identical input produces
// byte-identical output.
//
// # Configuration
//
// Paths are explicit; use DefaultPaths for the conventional layout or fill
// in a Paths struct directly:
//
//	b, err := monoweb.NewBuilder(monoweb.Paths{
//	    InputFile: "notes/index.md",
//	    OutputDir: "public",
//	    StaticDir: "static",
//	}, monoweb.WithLogger(log.Printf))
//
// A missing input file or static directory degrades gracefully with a
// logged warning; malformed front matter or an unwritable output path
// aborts the build with a sentinel error suitable for errors.Is checks.
package monoweb

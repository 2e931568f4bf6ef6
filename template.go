package monoweb

import (
	"fmt"
	"html/template"
	"os"
	"strings"

	"github.com/alnah/go-monoweb/internal/assets"
)

// Template slot names the page skeleton may reference.
const (
	SlotTitle     = "title"
	SlotSubtitle  = "subtitle"
	SlotAuthor    = "author"
	SlotAuthorURL = "author_url"
	SlotTOCTitle  = "toc_title"
	SlotTOC       = "toc"
	SlotContent   = "content"
)

// PageTemplate renders the fixed page skeleton. The skeleton defines the
// document chrome (<head>, navigation, footer) and references the slots
// above; a skeleton referencing an unknown slot fails at render time with
// ErrTemplateRender, which is a configuration error, not a data error.
type PageTemplate struct {
	tmpl *template.Template
}

// NewPageTemplate parses skeleton content into a PageTemplate.
func NewPageTemplate(skeleton string) (*PageTemplate, error) {
	tmpl, err := template.New("page").Option("missingkey=error").Parse(skeleton)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTemplateParse, err)
	}
	return &PageTemplate{tmpl: tmpl}, nil
}

// LoadPageTemplate loads the skeleton from path, or the embedded default
// skeleton when path is empty.
func LoadPageTemplate(path string) (*PageTemplate, error) {
	if path == "" {
		skeleton, err := assets.LoadTemplate(assets.DefaultTemplateName)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrTemplateParse, err)
		}
		return NewPageTemplate(skeleton)
	}

	data, err := os.ReadFile(path) // #nosec G304 -- template path is user-provided
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTemplateParse, err)
	}
	return NewPageTemplate(string(data))
}

// Render substitutes metadata, the formatted TOC markup, and the
// processed body fragment into the skeleton. Missing metadata keys fall
// back to documented defaults: title and toc_title to fixed strings,
// subtitle, author, and author_url to the empty string.
func (p *PageTemplate) Render(meta Metadata, tocHTML, contentHTML string) (string, error) {
	data := map[string]any{
		SlotTitle:     meta.Get(MetaTitle, DefaultTitle),
		SlotSubtitle:  meta.Get(MetaSubtitle, ""),
		SlotAuthor:    meta.Get(MetaAuthor, ""),
		SlotAuthorURL: meta.Get(MetaAuthorURL, ""),
		SlotTOCTitle:  meta.Get(MetaTOCTitle, DefaultTOCTitle),
		// TOC and content are pipeline-produced markup, not user HTML.
		SlotTOC:     template.HTML(tocHTML),     // #nosec G203
		SlotContent: template.HTML(contentHTML), // #nosec G203
	}

	var buf strings.Builder
	if err := p.tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("%w: %v", ErrTemplateRender, err)
	}
	return buf.String(), nil
}

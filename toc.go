package monoweb

import (
	"html"
	"regexp"
	"strconv"
	"strings"
)

// emptyTOC is rendered when the document has no headings. The TOC list
// is always present, never omitted.
const emptyTOC = `<ul class="incremental"></ul>`

// headingPattern matches h1-h6 tags with an id attribute.
// Captures: 1=level, 2=id, 3=inner HTML (may contain inline tags)
var headingPattern = regexp.MustCompile(`(?is)<h([1-6])[^>]*\bid="([^"]*)"[^>]*>(.*?)</h[1-6]>`)

// htmlTagPattern matches HTML tags for stripping from heading text.
var htmlTagPattern = regexp.MustCompile(`<[^>]*>`)

// stripHTMLTags removes HTML tags from a string, decodes HTML entities,
// and trims whitespace. Decoding entities is essential to avoid
// double-encoding when the text is re-escaped for TOC output.
func stripHTMLTags(s string) string {
	s = htmlTagPattern.ReplaceAllString(s, "")
	s = html.UnescapeString(s)
	return strings.TrimSpace(s)
}

// ExtractHeadings returns the heading outline of an HTML fragment in
// document order. Headings without IDs are skipped. The outline is read
// from the normalized fragment, so outline IDs and shipped markup cannot
// drift apart.
func ExtractHeadings(fragment string) []Heading {
	matches := headingPattern.FindAllStringSubmatch(fragment, -1)
	if len(matches) == 0 {
		return nil
	}

	headings := make([]Heading, 0, len(matches))
	for _, m := range matches {
		level, _ := strconv.Atoi(m[1])
		headings = append(headings, Heading{
			Level: level,
			ID:    m[2],
			Text:  stripHTMLTags(m[3]),
		})
	}
	return headings
}

// outlineDepth maps raw heading levels to nesting depths. The first
// heading anchors depth 1 regardless of its level, and level jumps are
// clamped so an H1 followed by an H3 nests one step, not two.
type outlineDepth struct {
	minLevel  int
	lastDepth int
}

func (o *outlineDepth) next(level int) int {
	if o.minLevel == 0 {
		o.minLevel = level
	}

	d := level - o.minLevel + 1
	if d < 1 {
		d = 1
	}
	if o.lastDepth > 0 && d > o.lastDepth+1 {
		d = o.lastDepth + 1
	}

	o.lastDepth = d
	return d
}

// FormatTOC renders the heading outline as a nested unordered list.
//
// The outer list carries class="incremental"; nested lists stay plain,
// matching the reference markup. Every entry links to its heading's
// anchor (href="#<anchor>") and is itself addressable via id
// "toc-<anchor>", so heading and TOC entry can be targeted
// independently. An empty outline yields an empty classed list.
func FormatTOC(headings []Heading) string {
	if len(headings) == 0 {
		return emptyTOC
	}

	var buf strings.Builder
	buf.WriteString(`<ul class="incremental">`)

	depth := &outlineDepth{}
	cur := 1
	open := false // an <li> is open at the current depth

	for _, h := range headings {
		d := depth.next(h.Level)

		if d > cur {
			// Nest a new list inside the open item.
			for ; cur < d; cur++ {
				buf.WriteString("<ul>")
			}
		} else {
			if open {
				buf.WriteString("</li>")
			}
			for ; cur > d; cur-- {
				buf.WriteString("</ul></li>")
			}
		}

		anchor := html.EscapeString(h.ID)
		buf.WriteString(`<li><a href="#`)
		buf.WriteString(anchor)
		buf.WriteString(`" id="toc-`)
		buf.WriteString(anchor)
		buf.WriteString(`">`)
		buf.WriteString(html.EscapeString(h.Text))
		buf.WriteString(`</a>`)
		open = true
	}

	buf.WriteString("</li>")
	for ; cur > 1; cur-- {
		buf.WriteString("</ul></li>")
	}
	buf.WriteString("</ul>")

	return buf.String()
}

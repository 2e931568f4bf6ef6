package monoweb

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// incrementalClass is the list class the monospace stylesheet expects on
// every list the converter produces.
const incrementalClass = "incremental"

// highlightWrapperClasses are container classes added by syntax
// highlighters. The monospace stylesheet supplies its own code-block
// styling, so these are stripped during normalization.
var highlightWrapperClasses = map[string]bool{
	"chroma":     true,
	"highlight":  true,
	"codehilite": true,
}

// HTMLNormalizer abstracts fragment normalization.
type HTMLNormalizer interface {
	Normalize(ctx context.Context, fragment string) (string, error)
}

// TreeNormalizer rewrites an HTML fragment to the markup conventions of
// the monospace stylesheet. The fragment is parsed once, each rule runs
// as an idempotent tree transformation, and the tree is serialized once.
// Working on the parsed tree keeps the rules independent of attribute
// order, tag spelling, and each other; content inside <pre>/<code> is
// plain text in the tree and is never rewritten.
type TreeNormalizer struct{}

// NewTreeNormalizer creates a TreeNormalizer.
func NewTreeNormalizer() *TreeNormalizer {
	return &TreeNormalizer{}
}

// Normalize applies all normalization rules to an HTML fragment:
//
//  1. Lists without a class gain class="incremental"; <ol> additionally
//     gains type="1" unless it already declares a type.
//  2. A paragraph whose sole content is one image becomes a <figure>
//     with a <figcaption aria-hidden="true"> carrying the alt text.
//  3. Highlighter wrapper classes are stripped from code-block containers.
//
// The heading outline is untouched: no rule rewrites heading tags or
// their anchor IDs.
func (n *TreeNormalizer) Normalize(ctx context.Context, fragment string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	root, err := parseFragment(fragment)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrHTMLNormalization, err)
	}

	classLists(root)
	synthesizeFigures(root)
	stripHighlightClasses(root)

	return renderFragment(root)
}

// parseFragment parses an HTML fragment in body context and reattaches
// the resulting nodes under a synthetic body element, so every node has
// a parent during transformation.
func parseFragment(fragment string) (*html.Node, error) {
	ctx := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(strings.NewReader(fragment), ctx)
	if err != nil {
		return nil, err
	}

	root := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	for _, node := range nodes {
		root.AppendChild(node)
	}
	return root, nil
}

// renderFragment serializes the children of the synthetic root back into
// an HTML fragment string.
func renderFragment(root *html.Node) (string, error) {
	var buf strings.Builder
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&buf, c); err != nil {
			return "", fmt.Errorf("%w: %v", ErrHTMLNormalization, err)
		}
	}
	return buf.String(), nil
}

// classLists gives every <ul>/<ol> without a class attribute
// class="incremental". An <ol> that gains the class also gains type="1"
// unless it already declares a type. Lists that already carry a class
// (e.g. a hand-written tree list) are left untouched; nested lists are
// classed independently.
func classLists(root *html.Node) {
	walkElements(root, func(e *html.Node) {
		switch e.DataAtom {
		case atom.Ul:
			if !hasAttr(e, "class") {
				appendAttr(e, "class", incrementalClass)
			}
		case atom.Ol:
			if hasAttr(e, "class") {
				return
			}
			appendAttr(e, "class", incrementalClass)
			if !hasAttr(e, "type") {
				appendAttr(e, "type", "1")
			}
		}
	})
}

// synthesizeFigures rewrites each paragraph whose sole content is a
// single image into a figure with an aria-hidden caption carrying the
// image's alt text verbatim (empty alt allowed). Paragraphs containing
// an image plus other inline content are left alone.
func synthesizeFigures(root *html.Node) {
	var paragraphs []*html.Node
	walkElements(root, func(e *html.Node) {
		if e.DataAtom == atom.P && soleImageChild(e) != nil {
			paragraphs = append(paragraphs, e)
		}
	})

	for _, p := range paragraphs {
		img := soleImageChild(p)

		figure := &html.Node{Type: html.ElementNode, Data: "figure", DataAtom: atom.Figure}
		caption := &html.Node{
			Type:     html.ElementNode,
			Data:     "figcaption",
			DataAtom: atom.Figcaption,
			Attr:     []html.Attribute{{Key: "aria-hidden", Val: "true"}},
		}
		if alt := getAttr(img, "alt"); alt != "" {
			caption.AppendChild(&html.Node{Type: html.TextNode, Data: alt})
		}

		p.RemoveChild(img)
		figure.AppendChild(img)
		figure.AppendChild(caption)

		parent := p.Parent
		parent.InsertBefore(figure, p)
		parent.RemoveChild(p)
	}
}

// soleImageChild returns the paragraph's image when the image is the
// paragraph's entire content (whitespace-only text nodes aside), nil
// otherwise.
func soleImageChild(p *html.Node) *html.Node {
	var img *html.Node
	for c := p.FirstChild; c != nil; c = c.NextSibling {
		switch {
		case c.Type == html.TextNode && strings.TrimSpace(c.Data) == "":
			// insignificant whitespace
		case c.Type == html.ElementNode && c.DataAtom == atom.Img:
			if img != nil {
				return nil // more than one image
			}
			img = c
		default:
			return nil // other content alongside the image
		}
	}
	return img
}

// stripHighlightClasses removes highlighter wrapper classes from
// code-block containers (<pre> and <div>). A class attribute left empty
// by the removal is dropped entirely.
func stripHighlightClasses(root *html.Node) {
	walkElements(root, func(e *html.Node) {
		if e.DataAtom != atom.Pre && e.DataAtom != atom.Div {
			return
		}
		class := getAttr(e, "class")
		if class == "" {
			return
		}

		var kept []string
		for _, token := range strings.Fields(class) {
			if !highlightWrapperClasses[token] {
				kept = append(kept, token)
			}
		}

		if len(kept) == len(strings.Fields(class)) {
			return
		}
		if len(kept) == 0 {
			removeAttr(e, "class")
			return
		}
		setAttr(e, "class", strings.Join(kept, " "))
	})
}

// walkElements calls fn for every element node in depth-first document
// order. fn must not restructure the tree; collect first, mutate after.
func walkElements(n *html.Node, fn func(*html.Node)) {
	if n.Type == html.ElementNode {
		fn(n)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walkElements(c, fn)
	}
}

func hasAttr(n *html.Node, key string) bool {
	for _, a := range n.Attr {
		if a.Key == key {
			return true
		}
	}
	return false
}

func getAttr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func setAttr(n *html.Node, key, val string) {
	for i, a := range n.Attr {
		if a.Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	appendAttr(n, key, val)
}

func appendAttr(n *html.Node, key, val string) {
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}

func removeAttr(n *html.Node, key string) {
	kept := n.Attr[:0]
	for _, a := range n.Attr {
		if a.Key != key {
			kept = append(kept, a)
		}
	}
	n.Attr = kept
}

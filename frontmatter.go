package monoweb

import (
	"fmt"
	"strings"

	"github.com/alnah/go-monoweb/internal/yamlutil"
)

// frontMatterDelimiter opens and closes the front-matter block.
const frontMatterDelimiter = "---"

// SplitFrontMatter separates the leading front-matter block from the body.
//
// Missing front matter is not an error: the metadata defaults to an empty
// mapping and the entire input is the body. An opened but unterminated
// block returns ErrFrontMatterUnterminated; malformed YAML inside the
// block returns ErrFrontMatterParse. Scalar values are coerced to strings
// so unknown keys survive in the metadata mapping.
func SplitFrontMatter(src string) (Metadata, string, error) {
	normalized := strings.ReplaceAll(src, "\r\n", "\n")

	if normalized != frontMatterDelimiter &&
		!strings.HasPrefix(normalized, frontMatterDelimiter+"\n") {
		return Metadata{}, src, nil
	}

	block, body, err := splitDelimitedBlock(normalized)
	if err != nil {
		return nil, "", err
	}

	meta, err := parseMetadataBlock(block)
	if err != nil {
		return nil, "", err
	}

	return meta, strings.TrimLeft(body, "\n"), nil
}

// splitDelimitedBlock cuts the opened front-matter block at its closing
// delimiter line. The opening delimiter has already been verified.
func splitDelimitedBlock(src string) (block, body string, err error) {
	if src == frontMatterDelimiter {
		return "", "", ErrFrontMatterUnterminated
	}

	rest := strings.TrimPrefix(src, frontMatterDelimiter+"\n")

	// Empty block: the closing delimiter immediately follows the opener.
	if rest == frontMatterDelimiter {
		return "", "", nil
	}
	if strings.HasPrefix(rest, frontMatterDelimiter+"\n") {
		return "", strings.TrimPrefix(rest, frontMatterDelimiter+"\n"), nil
	}

	if idx := strings.Index(rest, "\n"+frontMatterDelimiter+"\n"); idx >= 0 {
		return rest[:idx], rest[idx+len("\n"+frontMatterDelimiter+"\n"):], nil
	}
	if strings.HasSuffix(rest, "\n"+frontMatterDelimiter) {
		return strings.TrimSuffix(rest, "\n"+frontMatterDelimiter), "", nil
	}

	return "", "", ErrFrontMatterUnterminated
}

// parseMetadataBlock decodes the YAML block into a string mapping.
func parseMetadataBlock(block string) (Metadata, error) {
	if strings.TrimSpace(block) == "" {
		return Metadata{}, nil
	}

	var raw map[string]any
	if err := yamlutil.Unmarshal([]byte(block), &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFrontMatterParse, err)
	}

	meta := make(Metadata, len(raw))
	for key, value := range raw {
		meta[key] = stringifyValue(value)
	}
	return meta, nil
}

// stringifyValue renders a YAML scalar as a string. Nil maps to the
// empty string so "key:" lines behave like empty values.
func stringifyValue(v any) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

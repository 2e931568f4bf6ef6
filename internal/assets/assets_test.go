package assets

import (
	"errors"
	"strings"
	"testing"
)

func TestLoadTemplate(t *testing.T) {
	skeleton, err := LoadTemplate(DefaultTemplateName)
	if err != nil {
		t.Fatalf("LoadTemplate(%q) error = %v", DefaultTemplateName, err)
	}

	for _, want := range []string{
		"{{.title}}",
		"{{.toc_title}}",
		"{{.toc}}",
		"{{.content}}",
		"<!DOCTYPE html>",
	} {
		if !strings.Contains(skeleton, want) {
			t.Errorf("default skeleton missing %q", want)
		}
	}
}

func TestLoadTemplateNotFound(t *testing.T) {
	if _, err := LoadTemplate("nope"); !errors.Is(err, ErrTemplateNotFound) {
		t.Errorf("LoadTemplate(nope) error = %v, want %v", err, ErrTemplateNotFound)
	}
}

func TestLoadTemplateInvalidName(t *testing.T) {
	for _, name := range []string{"", "../escape", "a/b", `a\b`} {
		if _, err := LoadTemplate(name); !errors.Is(err, ErrInvalidAssetName) {
			t.Errorf("LoadTemplate(%q) error = %v, want %v", name, err, ErrInvalidAssetName)
		}
	}
}

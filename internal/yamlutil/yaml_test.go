package yamlutil

import (
	"bytes"
	"errors"
	"testing"
)

func TestUnmarshal(t *testing.T) {
	var out map[string]any
	if err := Unmarshal([]byte("title: Demo\nport: 8080\n"), &out); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if out["title"] != "Demo" {
		t.Errorf("title = %v, want Demo", out["title"])
	}
}

func TestUnmarshalValidation(t *testing.T) {
	var out map[string]any

	if err := Unmarshal(nil, &out); !errors.Is(err, ErrNilData) {
		t.Errorf("Unmarshal(nil) error = %v, want %v", err, ErrNilData)
	}
	if err := Unmarshal([]byte{}, &out); !errors.Is(err, ErrNilData) {
		t.Errorf("Unmarshal(empty) error = %v, want %v", err, ErrNilData)
	}
	if err := Unmarshal([]byte("a: 1"), nil); !errors.Is(err, ErrNilDestination) {
		t.Errorf("Unmarshal(.., nil) error = %v, want %v", err, ErrNilDestination)
	}

	big := bytes.Repeat([]byte("a"), MaxInputSize+1)
	if err := Unmarshal(big, &out); !errors.Is(err, ErrInputTooLarge) {
		t.Errorf("Unmarshal(oversized) error = %v, want %v", err, ErrInputTooLarge)
	}
}

func TestUnmarshalInvalidSyntax(t *testing.T) {
	var out map[string]any
	if err := Unmarshal([]byte("title: [unclosed"), &out); err == nil {
		t.Error("Unmarshal() with invalid yaml should fail")
	}
}

func TestUnmarshalStrict(t *testing.T) {
	type cfg struct {
		Title string `yaml:"title"`
	}

	var known cfg
	if err := UnmarshalStrict([]byte("title: Demo\n"), &known); err != nil {
		t.Fatalf("UnmarshalStrict() error = %v", err)
	}
	if known.Title != "Demo" {
		t.Errorf("Title = %q, want Demo", known.Title)
	}

	var unknown cfg
	if err := UnmarshalStrict([]byte("title: Demo\nbogus: field\n"), &unknown); err == nil {
		t.Error("UnmarshalStrict() should reject unknown fields")
	}
}

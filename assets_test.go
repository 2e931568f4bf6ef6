package monoweb

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

func TestResetOutputDir(t *testing.T) {
	t.Run("creates missing directory", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "docs")
		if err := ResetOutputDir(dir); err != nil {
			t.Fatalf("ResetOutputDir() error = %v", err)
		}
		info, err := os.Stat(dir)
		if err != nil || !info.IsDir() {
			t.Errorf("output directory not created: %v", err)
		}
	})

	t.Run("removes existing contents", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "docs")
		writeTestFile(t, filepath.Join(dir, "nested", "stale.html"), "old\n")

		if err := ResetOutputDir(dir); err != nil {
			t.Fatalf("ResetOutputDir() error = %v", err)
		}
		entries, err := os.ReadDir(dir)
		if err != nil {
			t.Fatal(err)
		}
		if len(entries) != 0 {
			t.Errorf("output directory not emptied, %d entries remain", len(entries))
		}
	})

	t.Run("refuses empty path", func(t *testing.T) {
		if err := ResetOutputDir(""); !errors.Is(err, ErrUnsafeOutputDir) {
			t.Errorf("ResetOutputDir(\"\") error = %v, want %v", err, ErrUnsafeOutputDir)
		}
	})

	t.Run("refuses filesystem root", func(t *testing.T) {
		if err := ResetOutputDir("/"); !errors.Is(err, ErrUnsafeOutputDir) {
			t.Errorf("ResetOutputDir(\"/\") error = %v, want %v", err, ErrUnsafeOutputDir)
		}
	})

	t.Run("refuses ancestor of working directory", func(t *testing.T) {
		cwd, err := os.Getwd()
		if err != nil {
			t.Fatal(err)
		}
		if err := ResetOutputDir(filepath.Dir(cwd)); !errors.Is(err, ErrUnsafeOutputDir) {
			t.Errorf("ResetOutputDir(parent of cwd) error = %v, want %v", err, ErrUnsafeOutputDir)
		}
	})
}

func TestCopyStaticAssets(t *testing.T) {
	t.Run("copies tree byte for byte", func(t *testing.T) {
		root := t.TempDir()
		src := filepath.Join(root, "static")
		dst := filepath.Join(root, "docs", "src")

		files := map[string]string{
			"index.css":       "body { margin: 0 }\n",
			"index.js":        "console.log('hi');\n",
			"img/castle.jpg":  "\xff\xd8\xff\xe0fake-jpeg-bytes",
			"fonts/mono.woff": "fake-font-bytes",
		}
		for rel, content := range files {
			writeTestFile(t, filepath.Join(src, rel), content)
		}

		if err := CopyStaticAssets(src, dst); err != nil {
			t.Fatalf("CopyStaticAssets() error = %v", err)
		}

		for rel, content := range files {
			got, err := os.ReadFile(filepath.Join(dst, rel))
			if err != nil {
				t.Errorf("missing copied file %s: %v", rel, err)
				continue
			}
			if !bytes.Equal(got, []byte(content)) {
				t.Errorf("copied %s differs from source", rel)
			}
		}
	})

	t.Run("empty source directory copies nothing", func(t *testing.T) {
		root := t.TempDir()
		src := filepath.Join(root, "static")
		dst := filepath.Join(root, "out")
		if err := os.MkdirAll(src, 0o755); err != nil {
			t.Fatal(err)
		}

		if err := CopyStaticAssets(src, dst); err != nil {
			t.Fatalf("CopyStaticAssets() error = %v", err)
		}
	})

	t.Run("missing source surfaces fs.ErrNotExist", func(t *testing.T) {
		root := t.TempDir()
		err := CopyStaticAssets(filepath.Join(root, "nope"), filepath.Join(root, "out"))
		if !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("CopyStaticAssets() error = %v, want fs.ErrNotExist", err)
		}
	})
}

package monoweb

import "testing"

func TestPathsWithDefaults(t *testing.T) {
	t.Run("empty fields filled", func(t *testing.T) {
		got := Paths{}.withDefaults()
		want := Paths{
			InputFile:   "index.md",
			OutputDir:   "docs",
			StaticDir:   "static",
			AssetSubdir: "src",
		}
		if got != want {
			t.Errorf("withDefaults() = %+v, want %+v", got, want)
		}
	})

	t.Run("explicit fields kept", func(t *testing.T) {
		in := Paths{
			InputFile:    "content/page.md",
			TemplateFile: "skel.html",
			OutputDir:    "public",
		}
		got := in.withDefaults()
		if got.InputFile != in.InputFile || got.TemplateFile != in.TemplateFile || got.OutputDir != in.OutputDir {
			t.Errorf("withDefaults() overwrote explicit fields: %+v", got)
		}
		if got.StaticDir != "static" || got.AssetSubdir != "src" {
			t.Errorf("withDefaults() did not fill remaining fields: %+v", got)
		}
	})

	t.Run("template file stays empty", func(t *testing.T) {
		if got := (Paths{}).withDefaults(); got.TemplateFile != "" {
			t.Errorf("TemplateFile = %q, want empty", got.TemplateFile)
		}
	})
}

func TestWithLoggerNilPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("WithLogger(nil) should panic")
		}
	}()
	WithLogger(nil)
}

package main

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	monoweb "github.com/alnah/go-monoweb"
)

// debounceDuration is how long the watcher waits after the last event
// before rebuilding, coalescing editor save bursts into one rebuild.
const debounceDuration = 500 * time.Millisecond

// runServe builds the site, watches the inputs for changes, and serves
// the output directory with websocket-driven live reload.
func runServe(ctx context.Context, flags *cliFlags) error {
	cfg, err := loadSiteConfig(flags)
	if err != nil {
		return err
	}

	b, err := newBuilder(cfg, flags)
	if err != nil {
		return err
	}

	if err := b.Build(ctx); err != nil {
		return fmt.Errorf("initial build failed: %w", err)
	}

	hub := newHub()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("could not create file watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	paths := b.Paths()
	if err := watchInputs(watcher, paths); err != nil {
		return err
	}

	go watchForChanges(ctx, watcher, hub, b)

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		serveWs(hub, w, r)
	})

	fileServer := http.FileServer(http.Dir(paths.OutputDir))
	mux.Handle("/", liveReloadWrapper(fileServer))

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	fmt.Fprintf(os.Stderr, "serving %s on http://localhost%s\n", paths.OutputDir, addr)
	return http.ListenAndServe(addr, mux)
}

// watchInputs registers the directories that affect a build: the input
// file's directory (editors replace files on save, so the parent is
// watched, not the file), the static tree, and the template file's
// directory when configured.
func watchInputs(watcher *fsnotify.Watcher, paths monoweb.Paths) error {
	watched := make(map[string]bool)

	addWatch := func(dir string) {
		dir = filepath.Clean(dir)
		if watched[dir] {
			return
		}
		if err := watcher.Add(dir); err != nil {
			fmt.Fprintf(os.Stderr, "cannot watch %s: %v\n", dir, err)
			return
		}
		watched[dir] = true
	}

	addWatch(filepath.Dir(paths.InputFile))
	if paths.TemplateFile != "" {
		addWatch(filepath.Dir(paths.TemplateFile))
	}

	if info, err := os.Stat(paths.StaticDir); err == nil && info.IsDir() {
		err := filepath.Walk(paths.StaticDir, func(walkPath string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if info.IsDir() {
				addWatch(walkPath)
			}
			return nil
		})
		if err != nil {
			return fmt.Errorf("failed to watch static directory: %w", err)
		}
	}

	return nil
}

// watchForChanges rebuilds after a burst of filesystem events settles
// and notifies live-reload clients on success. Every relevant event
// resets the debounce timer, so the rebuild always sees the last save
// of a burst.
func watchForChanges(ctx context.Context, watcher *fsnotify.Watcher, hub *hub, b *monoweb.Builder) {
	debounce := time.NewTimer(debounceDuration)
	if !debounce.Stop() {
		<-debounce.C
	}
	defer debounce.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
				!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
				continue
			}

			fmt.Fprintf(os.Stderr, "change detected in %s\n", event.Name)
			if !debounce.Stop() {
				select {
				case <-debounce.C:
				default:
				}
			}
			debounce.Reset(debounceDuration)

		case <-debounce.C:
			if err := b.Build(ctx); err != nil {
				fmt.Fprintf(os.Stderr, "rebuild failed: %v\n", err)
			} else {
				hub.broadcastMessage([]byte("reload"))
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			fmt.Fprintf(os.Stderr, "watcher error: %v\n", err)
		}
	}
}

// liveReloadWrapper injects the reload script into served HTML pages.
func liveReloadWrapper(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")

		isHTML := r.URL.Path == "/" || filepath.Ext(r.URL.Path) == ".html"
		if !isHTML {
			next.ServeHTTP(w, r)
			return
		}

		iw := newInterceptingWriter(w)
		next.ServeHTTP(iw, r)

		for key, values := range iw.Header() {
			for _, value := range values {
				w.Header().Add(key, value)
			}
		}

		body := iw.body.Bytes()
		if iw.statusCode != http.StatusOK {
			w.WriteHeader(iw.statusCode)
			_, _ = w.Write(body)
			return
		}

		injected := bytes.Replace(body, []byte("</body>"), []byte(liveReloadScript+"</body>"), 1)
		w.Header().Set("Content-Length", fmt.Sprint(len(injected)))
		w.WriteHeader(iw.statusCode)
		_, _ = w.Write(injected)
	})
}

// interceptingWriter buffers a response so the reload script can be
// spliced in before it is sent.
type interceptingWriter struct {
	http.ResponseWriter
	body       *bytes.Buffer
	statusCode int
	header     http.Header
}

func newInterceptingWriter(w http.ResponseWriter) *interceptingWriter {
	return &interceptingWriter{
		ResponseWriter: w,
		body:           new(bytes.Buffer),
		header:         make(http.Header),
		statusCode:     http.StatusOK,
	}
}

func (iw *interceptingWriter) Header() http.Header {
	return iw.header
}

func (iw *interceptingWriter) Write(b []byte) (int, error) {
	return iw.body.Write(b)
}

func (iw *interceptingWriter) WriteHeader(statusCode int) {
	iw.statusCode = statusCode
}

const liveReloadScript = `
<script>
  (function() {
    let socket = new WebSocket("ws://" + window.location.host + "/ws");
    socket.onmessage = function(event) {
      if (event.data === "reload") {
        window.location.reload();
      }
    };
  })();
</script>
`

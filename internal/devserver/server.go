// Package devserver serves the built site during development. It rebuilds on
// file changes and tells connected browsers to reload over a WebSocket.
package devserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/coder/websocket"
	"github.com/fsnotify/fsnotify"
	"github.com/google/uuid"
	"github.com/klauspost/compress/gzhttp"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jhrdina/pocketmesh-site/pkg/logging"
)

// ReloadPath is where browsers connect to receive reload messages.
const ReloadPath = "/_dev/reload"

// DevServer serves OutDir with live reload.
type DevServer struct {
	addr       string
	outDir     string
	watchPaths []string
	debounce   time.Duration
	rebuild    func(ctx context.Context) error
	log        logging.Logger
	metrics    *metrics
	registry   *prometheus.Registry

	clients    map[string]chan struct{}
	buildError error
	mu         sync.RWMutex
}

// Config configures the development server.
type Config struct {
	Addr string
	// OutDir is the directory served
	OutDir string
	// Watch lists files and directories whose changes trigger Rebuild
	Watch []string
	// Debounce coalesces bursts of file events
	Debounce time.Duration
	// Rebuild regenerates OutDir
	Rebuild func(ctx context.Context) error
	Logger  logging.Logger
}

// DefaultConfig returns default configuration.
func DefaultConfig() *Config {
	return &Config{
		Addr:     ":8000",
		OutDir:   "build",
		Watch:    []string{"siteconfig.yaml", "static"},
		Debounce: 200 * time.Millisecond,
	}
}

// New creates a new development server.
func New(config *Config) *DevServer {
	if config == nil {
		config = DefaultConfig()
	}
	log := config.Logger
	if log == nil {
		log = logging.NopLogger{}
	}
	rebuild := config.Rebuild
	if rebuild == nil {
		rebuild = func(context.Context) error { return nil }
	}

	reg := prometheus.NewRegistry()
	return &DevServer{
		addr:       config.Addr,
		outDir:     config.OutDir,
		watchPaths: config.Watch,
		debounce:   config.Debounce,
		rebuild:    rebuild,
		log:        log,
		metrics:    newMetrics(reg),
		registry:   reg,
		clients:    make(map[string]chan struct{}),
	}
}

// Handler returns the HTTP handler: reload socket, build error endpoint,
// metrics and the gzip-compressed site with history-API fallback.
func (ds *DevServer) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc(ReloadPath, ds.handleReload)
	mux.HandleFunc("/_dev/error", ds.handleError)
	mux.Handle("/metrics", promhttp.HandlerFor(ds.registry, promhttp.HandlerOpts{}))
	mux.Handle("/", gzhttp.GzipHandler(http.HandlerFunc(ds.handleSite)))
	return logging.RequestLogger(ds.log)(mux)
}

// Start builds once, starts watching and serves until ctx is cancelled or
// the listener fails.
func (ds *DevServer) Start(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	ds.Rebuild(ctx)

	watchErr := make(chan error, 1)
	go func() { watchErr <- ds.watch(ctx) }()

	server := &http.Server{
		Addr:              ds.addr,
		Handler:           ds.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Shutdown(shutdownCtx)
	}()

	ds.log.Info("development server started", logging.String("addr", ds.addr), logging.String("dir", ds.outDir))

	err := server.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		err = nil
	} else {
		err = fmt.Errorf("listen on %s: %w", ds.addr, err)
	}
	cancel()
	if werr := <-watchErr; werr != nil && err == nil {
		err = werr
	}
	return err
}

// Rebuild runs the rebuild function, records its outcome and notifies
// connected browsers.
func (ds *DevServer) Rebuild(ctx context.Context) {
	start := time.Now()
	err := ds.rebuild(ctx)
	ds.metrics.observeBuild(time.Since(start), err)

	ds.mu.Lock()
	ds.buildError = err
	ds.mu.Unlock()

	if err != nil {
		ds.log.Error("rebuild failed", logging.Err(err))
	} else {
		ds.log.Info("rebuilt", logging.Duration("duration", time.Since(start)))
	}
	ds.notifyClients()
}

// watch rebuilds after file events, coalescing events that arrive within
// the debounce window. It returns when ctx is done.
func (ds *DevServer) watch(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	for _, p := range ds.watchPaths {
		if err := addRecursive(watcher, p); err != nil {
			ds.log.Warn("not watching path", logging.String("path", p), logging.Err(err))
		}
	}

	var (
		timer  *time.Timer
		timerC <-chan time.Time
	)
	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if ev.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			if ev.Has(fsnotify.Create) {
				if info, err := os.Stat(ev.Name); err == nil && info.IsDir() {
					addRecursive(watcher, ev.Name)
				}
			}
			ds.log.Debug("file changed", logging.String("path", ev.Name), logging.String("op", ev.Op.String()))
			if timer == nil {
				timer = time.NewTimer(ds.debounce)
			} else {
				timer.Reset(ds.debounce)
			}
			timerC = timer.C
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			ds.log.Warn("watcher error", logging.Err(err))
		case <-timerC:
			timerC = nil
			ds.Rebuild(ctx)
		}
	}
}

func addRecursive(w *fsnotify.Watcher, root string) error {
	info, err := os.Stat(root)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return w.Add(root)
	}
	return filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return w.Add(p)
		}
		return nil
	})
}

// ClientCount reports how many browsers are connected for reloads.
func (ds *DevServer) ClientCount() int {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	return len(ds.clients)
}

func (ds *DevServer) notifyClients() {
	ds.mu.RLock()
	defer ds.mu.RUnlock()

	for _, ch := range ds.clients {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

func (ds *DevServer) handleReload(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, nil)
	if err != nil {
		logging.L(r.Context()).Warn("reload socket rejected", logging.Err(err))
		return
	}
	defer conn.CloseNow()

	clientID := uuid.NewString()
	log := logging.L(r.Context()).With(logging.String("client_id", clientID))
	ch := make(chan struct{}, 1)

	ds.mu.Lock()
	ds.clients[clientID] = ch
	ds.metrics.clients.Set(float64(len(ds.clients)))
	ds.mu.Unlock()
	log.Debug("reload client connected")

	defer func() {
		ds.mu.Lock()
		delete(ds.clients, clientID)
		ds.metrics.clients.Set(float64(len(ds.clients)))
		ds.mu.Unlock()
	}()

	// The browser never sends anything; CloseRead handles its close frame.
	ctx := conn.CloseRead(r.Context())

	if err := conn.Write(ctx, websocket.MessageText, []byte("connected")); err != nil {
		log.Warn("reload client unreachable", logging.Err(err))
		return
	}

	for {
		select {
		case <-ctx.Done():
			conn.Close(websocket.StatusNormalClosure, "")
			log.Debug("reload client disconnected")
			return
		case <-ch:
			if err := conn.Write(ctx, websocket.MessageText, []byte("reload")); err != nil {
				log.Warn("reload message not delivered", logging.Err(err))
				return
			}
		}
	}
}

func (ds *DevServer) handleError(w http.ResponseWriter, r *http.Request) {
	ds.mu.RLock()
	err := ds.buildError
	ds.mu.RUnlock()

	if err == nil {
		w.WriteHeader(http.StatusOK)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusInternalServerError)
	if err := json.NewEncoder(w).Encode(map[string]string{"error": err.Error()}); err != nil {
		logging.L(r.Context()).Warn("failed to write build error", logging.Err(err))
	}
}

func (ds *DevServer) handleSite(w http.ResponseWriter, r *http.Request) {
	ds.mu.RLock()
	err := ds.buildError
	ds.mu.RUnlock()

	if err != nil {
		ds.renderErrorOverlay(w, r, err)
		return
	}

	file, ok := ds.resolve(r.URL.Path)
	if !ok {
		http.NotFound(w, r)
		return
	}
	logging.L(r.Context()).Debug("serving file", logging.String("file", file))

	if strings.HasSuffix(file, ".html") {
		ds.serveHTML(w, r, file)
		return
	}
	http.ServeFile(w, r, file)
}

// resolve maps a URL path to a file below outDir. Directory paths map to
// their index.html, extensionless paths try "<path>.html" and then fall back
// to the index.html of the nearest ancestor directory, so client-side routes
// under a language prefix keep that language across a reload.
func (ds *DevServer) resolve(urlPath string) (string, bool) {
	clean := path.Clean("/" + urlPath)
	candidate := filepath.Join(ds.outDir, filepath.FromSlash(clean))

	if info, err := os.Stat(candidate); err == nil {
		if !info.IsDir() {
			return candidate, true
		}
		index := filepath.Join(candidate, "index.html")
		if isFile(index) {
			return index, true
		}
	}

	if path.Ext(clean) != "" {
		return "", false
	}
	if isFile(candidate + ".html") {
		return candidate + ".html", true
	}
	for dir := path.Dir(clean); ; dir = path.Dir(dir) {
		index := filepath.Join(ds.outDir, filepath.FromSlash(dir), "index.html")
		if isFile(index) {
			return index, true
		}
		if dir == "/" {
			return "", false
		}
	}
}

func isFile(p string) bool {
	info, err := os.Stat(p)
	return err == nil && !info.IsDir()
}

// serveHTML injects the reload script before </body>.
func (ds *DevServer) serveHTML(w http.ResponseWriter, r *http.Request, file string) {
	data, err := os.ReadFile(file)
	if err != nil {
		logging.L(r.Context()).Error("failed to read page", logging.String("file", file), logging.Err(err))
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	page := string(data)
	if i := strings.LastIndex(page, "</body>"); i >= 0 {
		page = page[:i] + reloadScript + page[i:]
	} else {
		page += reloadScript
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")
	if r.Method == http.MethodHead {
		return
	}
	w.Write([]byte(page))
}

func (ds *DevServer) renderErrorOverlay(w http.ResponseWriter, r *http.Request, err error) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusInternalServerError)

	if terr := errorOverlay.Execute(w, map[string]any{
		"Error":  err.Error(),
		"Script": template.HTML(reloadScript),
	}); terr != nil {
		logging.L(r.Context()).Warn("failed to render error overlay", logging.Err(terr))
	}
}

const reloadScript = `<script>
(function () {
  var ws = new WebSocket((location.protocol === 'https:' ? 'wss://' : 'ws://') + location.host + '` + ReloadPath + `');
  ws.onmessage = function (event) {
    if (event.data === 'reload') {
      window.location.reload();
    }
  };
})();
</script>
`

var errorOverlay = template.Must(template.New("error").Parse(`<!DOCTYPE html>
<html>
<head>
    <title>Build Error</title>
    <style>
        body {
            font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif;
            background: #1a1a2e;
            color: #eee;
            padding: 2rem;
            margin: 0;
        }
        .error-container {
            background: #16213e;
            border-left: 4px solid #e74c3c;
            padding: 1rem;
            border-radius: 4px;
        }
        h1 { color: #e74c3c; margin-top: 0; }
        pre {
            background: #0f0f23;
            padding: 1rem;
            overflow-x: auto;
            border-radius: 4px;
        }
    </style>
</head>
<body>
    <div class="error-container">
        <h1>Build Error</h1>
        <pre>{{.Error}}</pre>
    </div>
    {{.Script}}
</body>
</html>`))

package server

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"log"
	"net/http"
	"net/url"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/df07/go-raymarcher/pkg/config"
	"github.com/df07/go-raymarcher/pkg/loaders"
	"github.com/df07/go-raymarcher/pkg/scene"
)

//go:embed static
var staticFiles embed.FS

// Server handles web requests for the raymarcher
type Server struct {
	config  *config.Config
	console *Console

	sceneFilesMu sync.Mutex // ListSceneFiles touches the filesystem
}

// NewServer creates a new web server
func NewServer(cfg *config.Config) *Server {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return &Server{
		config:  cfg,
		console: NewConsole(consoleHistory),
	}
}

// Handler returns the routes served by the viewer
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	static, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic(err) // the embedded tree always has a static directory
	}
	mux.Handle("/", http.FileServer(http.FS(static)))
	mux.HandleFunc("/api/render", s.handleRender)
	mux.HandleFunc("/api/inspect", s.handleInspect)
	mux.HandleFunc("/api/scenes", s.handleScenes)
	mux.HandleFunc("/api/console", s.handleConsole)
	mux.HandleFunc("/api/console/stream", s.handleConsoleStream)
	mux.HandleFunc("/api/health", s.handleHealth)
	return mux
}

// Start starts the web server
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.config.Web.Port)
	log.Printf("Starting web server on http://localhost%s", addr)
	return http.ListenAndServe(addr, s.Handler())
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleScenes lists built-in scenes followed by the scene files
func (s *Server) handleScenes(w http.ResponseWriter, r *http.Request) {
	scenes := scene.ListBuiltinScenes()

	s.sceneFilesMu.Lock()
	files, err := scene.ListSceneFiles(s.config.ScenesDir)
	s.sceneFilesMu.Unlock()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, append(scenes, files...))
}

// createScene resolves a built-in scene or a "file:<name>" scene from the
// scenes directory. File scenes are read on every request so edits show up
// on the next render.
func (s *Server) createScene(sceneName string) (*scene.Scene, error) {
	name, isFile := strings.CutPrefix(sceneName, "file:")
	if !isFile {
		return scene.Builtin(sceneName)
	}

	// Only names listed in the scenes directory are accepted
	s.sceneFilesMu.Lock()
	files, err := scene.ListSceneFiles(s.config.ScenesDir)
	s.sceneFilesMu.Unlock()
	if err != nil {
		return nil, err
	}
	for _, info := range files {
		if info.ID == sceneName {
			return loaders.LoadSceneFile(info.FilePath)
		}
	}
	return nil, fmt.Errorf("%q not found in %s: %w", name, filepath.Clean(s.config.ScenesDir), scene.ErrUnknownScene)
}

// parseIntParam parses an integer parameter from URL query with validation
func parseIntParam(values url.Values, key string, defaultValue, min, max int) (int, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %d and %d, got: %d", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/df07/go-scene-description/pkg/document"
	"github.com/df07/go-scene-description/pkg/engine"
	"github.com/df07/go-scene-description/pkg/loaders"
	"github.com/df07/go-scene-description/pkg/log"
	"github.com/df07/go-scene-description/pkg/scene"
)

var logger = log.New("server")

// Server serves resolved scene documents for preview and submission
type Server struct {
	port      int
	scenesDir string
	engine    engine.Engine
	seed      int64
}

// NewServer creates a new web server. scenesDir is scanned for project
// documents and submissions are handed to eng.
func NewServer(port int, scenesDir string, eng engine.Engine) *Server {
	return &Server{port: port, scenesDir: scenesDir, engine: eng, seed: 42}
}

// Handler returns the routes served by the server
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/api/scenes", s.handleScenes)
	mux.HandleFunc("/api/document", s.handleDocument)
	mux.HandleFunc("/api/stats", s.handleStats)
	mux.HandleFunc("/api/inspect", s.handleInspect)
	mux.HandleFunc("/api/submit", s.handleSubmit)
	mux.HandleFunc("/api/watch", s.handleWatch)
	return mux
}

// Start starts the web server and blocks until ctx is done or serving fails
func (s *Server) Start(ctx context.Context) error {
	srv := &http.Server{Addr: fmt.Sprintf(":%d", s.port), Handler: s.Handler()}

	errc := make(chan error, 1)
	go func() {
		logger.Infof("Starting web server on http://localhost%s", srv.Addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		return srv.Shutdown(context.Background())
	}
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleScenes lists built-in and document scenes grouped for display
func (s *Server) handleScenes(w http.ResponseWriter, r *http.Request) {
	groups, err := scene.ListAllScenes(s.scenesDir)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, groups)
}

// handleDocument returns the resolved document of a scene
func (s *Server) handleDocument(w http.ResponseWriter, r *http.Request) {
	resolved, ok := s.resolveRequested(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.WriteHeader(http.StatusOK)
	if err := document.EncodeResolved(w, resolved); err != nil {
		logger.Warningf("failed to write document: %v", err)
	}
}

// StatsResponse is the JSON form of document statistics
type StatsResponse struct {
	document.Stats
	Table string `json:"table"`
}

// handleStats returns leaf, light and kind counts for a scene
func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	resolved, ok := s.resolveRequested(w, r)
	if !ok {
		return
	}
	stats := document.Collect(resolved)
	writeJSON(w, http.StatusOK, StatsResponse{Stats: stats, Table: stats.Table()})
}

// SubmitResponse reports the engine token of a submission
type SubmitResponse struct {
	Scene string `json:"scene"`
	Token string `json:"token"`
}

// handleSubmit hands a scene's project to the configured engine
func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, fmt.Errorf("submit requires POST"))
		return
	}
	if s.engine == nil {
		writeError(w, http.StatusServiceUnavailable, fmt.Errorf("no engine configured"))
		return
	}
	id := sceneParam(r.URL.Query())
	project, err := s.openProject(id)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	token, err := project.Submit(r.Context(), s.engine)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err)
		return
	}
	logger.Infof("submitted %s as %s", id, token)
	writeJSON(w, http.StatusOK, SubmitResponse{Scene: id, Token: token})
}

// resolveRequested opens and resolves the scene named in the request,
// writing an error response on failure
func (s *Server) resolveRequested(w http.ResponseWriter, r *http.Request) (*scene.ResolvedProject, bool) {
	project, err := s.openProject(sceneParam(r.URL.Query()))
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return nil, false
	}
	resolved, err := project.Resolve()
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err)
		return nil, false
	}
	return resolved, true
}

func (s *Server) openProject(id string) (*scene.Project, error) {
	return loaders.OpenProject(id, s.scenesDir, s.seed)
}

func sceneParam(values url.Values) string {
	if id := values.Get("scene"); id != "" {
		return id
	}
	return "cornell-box" // Default scene
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

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Warningf("failed to write response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

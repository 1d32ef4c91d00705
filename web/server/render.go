package server

import (
	"bytes"
	"errors"
	"fmt"
	"image/png"
	"net/http"
	"strconv"
	"time"

	"github.com/df07/go-raymarcher/pkg/renderer"
	"github.com/df07/go-raymarcher/pkg/scene"
)

// RenderRequest represents a render request from the client
type RenderRequest struct {
	Scene  string // Built-in name or "file:<name>"
	Width  int    // Image width, 0 derives it from the height and scene aspect
	Height int    // Image height, 0 derives it from the width and scene aspect
}

// handleRender renders one frame and returns it as PNG. Render statistics
// are reported in X-Render-* headers.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseRenderRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request: %v", err))
		return
	}

	sceneObj, err := s.loadScene(req)
	if err != nil {
		writeError(w, sceneErrorStatus(err), err.Error())
		return
	}

	renderID := fmt.Sprintf("render-%d", time.Now().UnixNano())
	logger := s.console.Logger(renderID)
	raytracer := renderer.NewRaytracer(sceneObj, s.config.RendererConfig(), logger)
	buffer, stats := raytracer.RenderWithStats()

	img, err := renderer.ToImage(buffer, sceneObj.Width, sceneObj.Height)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("failed to encode image: %v", err))
		return
	}

	h := w.Header()
	h.Set("Content-Type", "image/png")
	h.Set("Cache-Control", "no-cache")
	h.Set("Access-Control-Allow-Origin", "*")
	h.Set("X-Render-Id", renderID)
	h.Set("X-Render-Time-Ms", strconv.FormatInt(stats.Elapsed.Milliseconds(), 10))
	h.Set("X-Render-Hits", strconv.Itoa(stats.Hits))
	h.Set("X-Render-Steps", strconv.FormatFloat(stats.AverageSteps, 'f', 2, 64))
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

// parseRenderRequest parses request parameters
func (s *Server) parseRenderRequest(r *http.Request) (*RenderRequest, error) {
	query := r.URL.Query()
	req := &RenderRequest{Scene: query.Get("scene")}
	if req.Scene == "" {
		req.Scene = s.config.Scene
	}

	maxResolution := s.config.Web.MaxResolution
	var err error
	if req.Width, err = parseIntParam(query, "width", 0, 1, maxResolution); err != nil {
		return nil, err
	}
	if req.Height, err = parseIntParam(query, "height", 0, 1, maxResolution); err != nil {
		return nil, err
	}
	return req, nil
}

// loadScene creates the requested scene at the requested size
func (s *Server) loadScene(req *RenderRequest) (*scene.Scene, error) {
	start := time.Now()
	sceneObj, err := s.createScene(req.Scene)
	if err != nil {
		return nil, err
	}
	if sceneObj, err = sceneObj.ResizeToFit(req.Width, req.Height); err != nil {
		return nil, err
	}
	s.console.Logger("scene").Printf("Loaded scene %s (%d models) in %v\n", req.Scene, sceneObj.ModelCount(), time.Since(start))
	return sceneObj, nil
}

func sceneErrorStatus(err error) int {
	if errors.Is(err, scene.ErrUnknownScene) {
		return http.StatusNotFound
	}
	return http.StatusUnprocessableEntity
}

package server

import (
	"encoding/json"
	"image/png"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/df07/go-raymarcher/pkg/config"
	"github.com/df07/go-raymarcher/pkg/scene"
)

// newTestServer serves a scenes directory holding one small scene file
func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	dir := t.TempDir()
	content := "# Scene: Tiny Ball\n# Description: One sphere\nwidth: 8\nheight: 8\nmodels:\n  - primitive: {type: sphere, radius: 0.5}\n"
	if err := os.WriteFile(filepath.Join(dir, "tiny-ball.yaml"), []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write scene: %v", err)
	}

	cfg := config.DefaultConfig()
	cfg.ScenesDir = dir
	cfg.Web.MaxResolution = 256

	ts := httptest.NewServer(NewServer(cfg).Handler())
	t.Cleanup(ts.Close)
	return ts
}

func TestHandleHealth(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/api/health")
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	defer resp.Body.Close()

	var body map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.StatusCode != http.StatusOK || body["status"] != "ok" {
		t.Errorf("Expected 200 ok, got %d %v", resp.StatusCode, body)
	}
}

func TestHandleScenes(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/api/scenes")
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	defer resp.Body.Close()

	var scenes []scene.SceneInfo
	if err := json.NewDecoder(resp.Body).Decode(&scenes); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	ids := make(map[string]scene.SceneInfo)
	for _, info := range scenes {
		ids[info.ID] = info
	}
	for _, name := range scene.BuiltinNames() {
		if _, ok := ids[name]; !ok {
			t.Errorf("Expected built-in scene %q in listing", name)
		}
	}
	file, ok := ids["file:tiny-ball"]
	if !ok {
		t.Fatalf("Expected file scene in listing, got %v", scenes)
	}
	if file.Name != "Tiny Ball" || file.Description != "One sphere" {
		t.Errorf("Unexpected file metadata %+v", file)
	}
}

func TestHandleRender(t *testing.T) {
	ts := newTestServer(t)

	tests := []struct {
		name          string
		query         string
		width, height int
	}{
		{"built-in resized", "?scene=sphere&width=20&height=10", 20, 10},
		{"width only keeps aspect", "?scene=sphere&width=10", 10, 10},
		{"built-in native size", "?scene=sphere", 64, 64},
		{"scene file", "?scene=file:tiny-ball", 8, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := http.Get(ts.URL + "/api/render" + tt.query)
			if err != nil {
				t.Fatalf("Request failed: %v", err)
			}
			defer resp.Body.Close()

			if resp.StatusCode != http.StatusOK {
				t.Fatalf("Expected 200, got %d", resp.StatusCode)
			}
			if ct := resp.Header.Get("Content-Type"); ct != "image/png" {
				t.Errorf("Expected image/png, got %q", ct)
			}
			if resp.Header.Get("X-Render-Id") == "" {
				t.Error("Expected render ID header")
			}

			img, err := png.Decode(resp.Body)
			if err != nil {
				t.Fatalf("Failed to decode PNG: %v", err)
			}
			if b := img.Bounds(); b.Dx() != tt.width || b.Dy() != tt.height {
				t.Errorf("Expected %dx%d, got %dx%d", tt.width, tt.height, b.Dx(), b.Dy())
			}
		})
	}
}

func TestHandleRender_Errors(t *testing.T) {
	ts := newTestServer(t)

	tests := []struct {
		name   string
		query  string
		status int
	}{
		{"unknown scene", "?scene=cornell", http.StatusNotFound},
		{"unknown file", "?scene=file:missing", http.StatusNotFound},
		{"width too large", "?scene=sphere&width=5000&height=10", http.StatusBadRequest},
		{"bad number", "?scene=sphere&width=abc&height=10", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := http.Get(ts.URL + "/api/render" + tt.query)
			if err != nil {
				t.Fatalf("Request failed: %v", err)
			}
			defer resp.Body.Close()

			if resp.StatusCode != tt.status {
				t.Errorf("Expected %d, got %d", tt.status, resp.StatusCode)
			}
			var body map[string]string
			if err := json.NewDecoder(resp.Body).Decode(&body); err != nil || body["error"] == "" {
				t.Errorf("Expected JSON error body, got %v (%v)", body, err)
			}
		})
	}
}

func TestHandleInspect(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/api/inspect?scene=sphere&x=32&y=32")
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	defer resp.Body.Close()

	var hit InspectResponse
	if err := json.NewDecoder(resp.Body).Decode(&hit); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if !hit.Hit || hit.ModelIndex != 0 {
		t.Fatalf("Expected center pixel to hit model 0, got %+v", hit)
	}
	if hit.GeometryType != "sphere" || hit.MaterialType != "lambertian" {
		t.Errorf("Expected lambertian sphere, got %s %s", hit.MaterialType, hit.GeometryType)
	}
	if hit.Normal[2] > -0.99 {
		t.Errorf("Expected normal facing the camera, got %v", hit.Normal)
	}
	if hit.Color != [3]uint8{51, 51, 51} {
		t.Errorf("Expected ambient grey, got %v", hit.Color)
	}

	miss, err := http.Get(ts.URL + "/api/inspect?scene=sphere&x=0&y=0")
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	defer miss.Body.Close()

	var background InspectResponse
	if err := json.NewDecoder(miss.Body).Decode(&background); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if background.Hit || background.ModelIndex != -1 || background.Color != [3]uint8{255, 0, 0} {
		t.Errorf("Expected background miss, got %+v", background)
	}
}

func TestHandleInspect_OutOfBounds(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/api/inspect?scene=sphere&x=64&y=0")
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("Expected 400, got %d", resp.StatusCode)
	}
}

func TestHandleConsole_RecordsRenders(t *testing.T) {
	ts := newTestServer(t)

	render, err := http.Get(ts.URL + "/api/render?scene=sphere&width=4&height=4")
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	render.Body.Close()

	resp, err := http.Get(ts.URL + "/api/console")
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	defer resp.Body.Close()

	var messages []ConsoleMessage
	if err := json.NewDecoder(resp.Body).Decode(&messages); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	renderID := render.Header.Get("X-Render-Id")
	found := false
	for _, msg := range messages {
		if msg.RenderID == renderID {
			found = true
		}
	}
	if !found {
		t.Errorf("Expected console messages for %s, got %v", renderID, messages)
	}
}

func TestHandleIndex(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/")
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("Failed to read body: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected 200, got %d", resp.StatusCode)
	}
	if !strings.Contains(string(body), "/api/console/stream") {
		t.Error("Expected the viewer page to subscribe to the console stream")
	}
}

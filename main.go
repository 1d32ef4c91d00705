package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/df07/go-raymarcher/pkg/config"
	"github.com/df07/go-raymarcher/pkg/core"
	"github.com/df07/go-raymarcher/pkg/loaders"
	"github.com/df07/go-raymarcher/pkg/renderer"
	"github.com/df07/go-raymarcher/pkg/scene"
)

func main() {
	// Parse command line flags
	sceneType := flag.String("scene", "", "Built-in scene name or path to a YAML scene file")
	width := flag.Int("width", 0, "Image width (0 = from height and scene aspect, or scene default)")
	height := flag.Int("height", 0, "Image height (0 = from width and scene aspect, or scene default)")
	workers := flag.Int("workers", 0, "Number of parallel workers (0 = CPU count)")
	configPath := flag.String("config", "config.yaml", "Path to configuration file")
	outPath := flag.String("out", "", "Output PNG path")
	list := flag.Bool("list", false, "List available scenes")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		showHelp()
		return
	}

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Flags override the config file
	if *sceneType != "" {
		cfg.Scene = *sceneType
	}
	if *width > 0 {
		cfg.Render.Width = *width
	}
	if *height > 0 {
		cfg.Render.Height = *height
	}
	if *workers > 0 {
		cfg.Render.Workers = *workers
	}
	if err := cfg.Validate(); err != nil {
		fmt.Printf("Invalid options: %v\n", err)
		os.Exit(1)
	}

	if *list {
		listScenes(cfg.ScenesDir)
		return
	}

	fmt.Println("Starting SDF Raymarcher...")
	filename, err := run(cfg, *outPath, core.NewDefaultLogger())
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Render saved as %s\n", filename)
}

func showHelp() {
	fmt.Println("SDF Raymarcher")
	fmt.Println("Usage: raymarcher [options]")
	fmt.Println()
	fmt.Println("Options:")
	flag.PrintDefaults()
	fmt.Println()
	fmt.Println("Available scenes:")
	for _, info := range scene.ListBuiltinScenes() {
		fmt.Printf("  %-10s - %s\n", info.ID, info.Description)
	}
	fmt.Println("  <file>.yaml - YAML scene description")
	fmt.Println()
	fmt.Println("Output will be saved to output/<scene>/render_<timestamp>.png")
}

func listScenes(scenesDir string) {
	for _, info := range scene.ListBuiltinScenes() {
		fmt.Printf("%-24s %s\n", info.ID, info.Description)
	}
	files, err := scene.ListSceneFiles(scenesDir)
	if err != nil {
		fmt.Printf("Error listing %s: %v\n", scenesDir, err)
		return
	}
	for _, info := range files {
		fmt.Printf("%-24s %s\n", info.FilePath, info.Description)
	}
}

// run renders the configured scene and writes it as PNG, returning the file name
func run(cfg *config.Config, outPath string, logger core.Logger) (string, error) {
	s, err := createScene(cfg.Scene)
	if err != nil {
		return "", err
	}
	if s, err = s.ResizeToFit(cfg.Render.Width, cfg.Render.Height); err != nil {
		return "", err
	}

	raytracer := renderer.NewRaytracer(s, cfg.RendererConfig(), logger)
	buffer, _ := raytracer.RenderWithStats()

	img, err := renderer.ToImage(buffer, s.Width, s.Height)
	if err != nil {
		return "", err
	}

	if outPath == "" {
		outPath = defaultOutputPath(cfg.Output.Dir, cfg.Scene, time.Now())
	}
	if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
		return "", fmt.Errorf("error creating output directory: %w", err)
	}
	if err := savePNG(outPath, img); err != nil {
		return "", err
	}
	return outPath, nil
}

// createScene resolves a built-in scene name or a YAML scene file path
func createScene(sceneType string) (*scene.Scene, error) {
	if isSceneFile(sceneType) {
		return loaders.LoadSceneFile(sceneType)
	}
	return scene.Builtin(sceneType)
}

func isSceneFile(sceneType string) bool {
	ext := strings.ToLower(filepath.Ext(sceneType))
	return ext == ".yaml" || ext == ".yml"
}

// sceneOutputName turns "scenes/spiral-tower.yaml" into "spiral-tower"
func sceneOutputName(sceneType string) string {
	base := filepath.Base(sceneType)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func defaultOutputPath(dir, sceneType string, now time.Time) string {
	timestamp := now.Format("20060102_150405")
	return filepath.Join(dir, sceneOutputName(sceneType), fmt.Sprintf("render_%s.png", timestamp))
}

func savePNG(filename string, img image.Image) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("error creating file: %w", err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return fmt.Errorf("error saving PNG: %w", err)
	}
	return nil
}

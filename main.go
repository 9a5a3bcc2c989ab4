package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/df07/go-dual-renderer/pkg/imageio"
	"github.com/df07/go-dual-renderer/pkg/renderer"
	"github.com/df07/go-dual-renderer/pkg/scene"
)

type options struct {
	scenePath string
	outputDir string
	writePNG  bool
}

func main() {
	scenePath := flag.String("scene", "", "Optional YAML scene file (defaults to the built-in four-sphere scene)")
	outputDir := flag.String("out", ".", "Directory the images are written to")
	writePNG := flag.Bool("png", false, "Also write a PNG next to each PPM")
	verbose := flag.Bool("v", false, "Log per-scanline progress")
	flag.Parse()

	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	opts := options{scenePath: *scenePath, outputDir: *outputDir, writePNG: *writePNG}
	if err := run(opts, log.Logger); err != nil {
		log.Fatal().Err(err).Msg("render failed")
	}
}

// loadScene returns the scene file at path, or the reference scene when path is empty
func loadScene(path string, logger zerolog.Logger) (*scene.Scene, error) {
	if path == "" {
		return scene.NewReferenceScene(), nil
	}
	return scene.Load(path, logger)
}

// run rasterizes and then ray traces the scene, writing one image per pass
func run(opts options, logger zerolog.Logger) error {
	s, err := loadScene(opts.scenePath, logger)
	if err != nil {
		return err
	}
	logger.Info().Str("scene", s.String()).Msg("scene ready")

	if err := os.MkdirAll(opts.outputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	passes := []struct {
		renderer *renderer.Renderer
		output   string
	}{
		{s.NewRasterizer(), s.Config.RasterOutput},
		{s.NewRaytracer(), s.Config.RaytraceOutput},
	}

	for _, pass := range passes {
		pass.renderer.SetLogger(logger)
		img, _ := pass.renderer.Render()

		filename := filepath.Join(opts.outputDir, pass.output)
		if err := imageio.WriteFile(filename, img); err != nil {
			return err
		}
		logger.Info().Str("file", filename).Msg("image saved")

		if opts.writePNG {
			pngName := strings.TrimSuffix(filename, filepath.Ext(filename)) + ".png"
			if err := imageio.WriteFile(pngName, img); err != nil {
				return err
			}
			logger.Info().Str("file", pngName).Msg("image saved")
		}
	}

	return nil
}

package imageio

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Encode writes img in the format named by ext (".ppm" or ".png")
func Encode(w io.Writer, img image.Image, ext string) error {
	switch strings.ToLower(ext) {
	case ".ppm":
		return EncodePPM(w, img)
	case ".png":
		if err := png.Encode(w, img); err != nil {
			return fmt.Errorf("failed to encode PNG: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unsupported image format %q", ext)
	}
}

// WriteFile saves img to filename, choosing the format from its extension
func WriteFile(filename string, img image.Image) (err error) {
	ext := filepath.Ext(filename)
	switch strings.ToLower(ext) {
	case ".ppm", ".png":
	default:
		return fmt.Errorf("unsupported image format %q", ext)
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create image file: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close image file: %w", cerr)
		}
	}()

	return Encode(file, img, ext)
}

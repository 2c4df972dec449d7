package showcase

import (
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
)

// LoadedImage describes a decoded picture.
type LoadedImage struct {
	Format string
	Width  int
	Height int
}

// ImageLoader loads the picture at path.
type ImageLoader func(ctx context.Context, path string) (LoadedImage, error)

// DecodeImageFile reads the image header of a GIF, JPEG or PNG file.
func DecodeImageFile(ctx context.Context, path string) (LoadedImage, error) {
	if err := ctx.Err(); err != nil {
		return LoadedImage{}, err
	}

	f, err := os.Open(path)
	if err != nil {
		return LoadedImage{}, fmt.Errorf("%w: %w", ErrImageLoad, err)
	}
	defer f.Close()

	cfg, format, err := image.DecodeConfig(f)
	if err != nil {
		return LoadedImage{}, fmt.Errorf("%w: %s: %w", ErrImageLoad, path, err)
	}

	return LoadedImage{Format: format, Width: cfg.Width, Height: cfg.Height}, nil
}

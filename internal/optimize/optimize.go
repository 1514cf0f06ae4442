package optimize

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp" // Register WebP format decoder
)

// defaultWebPQuality is used when no quality is requested for WebP
// output. The WebP encoder has no package-level default the way the
// JPEG encoder does.
const defaultWebPQuality = 90

// Options controls how an image is optimized. Zero values mean
// "not requested": no resize on that axis, encoder-default quality.
type Options struct {
	// Width is the maximum output width in pixels.
	Width int

	// Height is the maximum output height in pixels.
	Height int

	// Quality is the encoding quality (1-100) for JPEG and WebP output.
	// It has no effect on formats without a quality knob, such as PNG.
	Quality int
}

// Run reads the image at inputPath, optionally scales it down to fit
// inside the Options bounding box, and writes it to outputPath in the
// format implied by the output extension.
//
// Resizing preserves aspect ratio and never enlarges past the source
// dimensions. A missing bound defaults to the source dimension on that
// axis, so a lone width of 100 on a 400x200 source yields 100x50.
func Run(inputPath, outputPath string, opts Options) error {
	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", outputPath, err)
	}

	src, err := imaging.Open(inputPath)
	if err != nil {
		return fmt.Errorf("failed to open image %s: %w", inputPath, err)
	}

	img := resizeToFit(src, opts.Width, opts.Height)

	if strings.EqualFold(filepath.Ext(outputPath), ".webp") {
		return saveWebP(img, outputPath, opts.Quality)
	}

	var encOpts []imaging.EncodeOption
	if opts.Quality > 0 {
		encOpts = append(encOpts, imaging.JPEGQuality(opts.Quality))
	}
	if err := imaging.Save(img, outputPath, encOpts...); err != nil {
		return fmt.Errorf("failed to save image %s: %w", outputPath, err)
	}

	return nil
}

// resizeToFit scales img down so it fits inside the width x height
// bounding box, keeping aspect ratio. Images already inside the box are
// returned unscaled, so the output never exceeds the source dimensions.
func resizeToFit(img image.Image, width, height int) image.Image {
	if width == 0 && height == 0 {
		return img
	}

	bounds := img.Bounds()
	if width == 0 {
		width = bounds.Dx()
	}
	if height == 0 {
		height = bounds.Dy()
	}

	return imaging.Fit(img, width, height, imaging.Lanczos)
}

// saveWebP encodes img as WebP. disintegration/imaging has no WebP
// encoder, so this path goes through chai2010/webp directly.
func saveWebP(img image.Image, outputPath string, quality int) error {
	if quality == 0 {
		quality = defaultWebPQuality
	}

	f, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", outputPath, err)
	}

	if err := webp.Encode(f, img, &webp.Options{Quality: float32(quality)}); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode webp: %w", err)
	}

	return f.Close()
}

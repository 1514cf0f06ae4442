package optimize

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

// createTestImage writes a patterned PNG and returns its path. A flat
// fill compresses too well to exercise quality settings, so the pixels
// carry a gradient.
func createTestImage(t *testing.T, path string, width, height int) string {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{
				R: uint8(x * 255 / width),
				G: uint8(y * 255 / height),
				B: uint8((x + y) % 256),
				A: 255,
			})
		}
	}

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create test image: %v", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		t.Fatalf("failed to encode image: %v", err)
	}

	return path
}

func decodeFile(t *testing.T, path string) image.Image {
	t.Helper()

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("failed to open %s: %v", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		t.Fatalf("failed to decode %s: %v", path, err)
	}
	return img
}

func TestRun_ResizeToFit(t *testing.T) {
	tests := []struct {
		name  string
		srcW  int
		srcH  int
		opts  Options
		wantW int
		wantH int
	}{
		{"width only", 400, 200, Options{Width: 100}, 100, 50},
		{"height only", 400, 200, Options{Height: 50}, 100, 50},
		{"both bounds, width binds", 400, 200, Options{Width: 100, Height: 100}, 100, 50},
		{"both bounds, height binds", 200, 400, Options{Width: 100, Height: 100}, 50, 100},
		{"no enlargement", 400, 200, Options{Width: 800, Height: 800}, 400, 200},
		{"no resize requested", 400, 200, Options{}, 400, 200},
		{"exact fit", 400, 200, Options{Width: 400, Height: 200}, 400, 200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			inPath := createTestImage(t, filepath.Join(dir, "in.png"), tt.srcW, tt.srcH)
			outPath := filepath.Join(dir, "out.png")

			if err := Run(inPath, outPath, tt.opts); err != nil {
				t.Fatalf("Run failed: %v", err)
			}

			out := decodeFile(t, outPath)
			if out.Bounds().Dx() != tt.wantW || out.Bounds().Dy() != tt.wantH {
				t.Errorf("Output dimensions: got %dx%d, want %dx%d",
					out.Bounds().Dx(), out.Bounds().Dy(), tt.wantW, tt.wantH)
			}
		})
	}
}

func TestRun_CreatesParentDirectories(t *testing.T) {
	dir := t.TempDir()
	inPath := createTestImage(t, filepath.Join(dir, "in.png"), 50, 50)
	outPath := filepath.Join(dir, "a", "b", "out.png")

	if err := Run(inPath, outPath, Options{}); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if _, err := os.Stat(outPath); err != nil {
		t.Fatalf("Output file missing: %v", err)
	}
}

func TestRun_JPEGQuality(t *testing.T) {
	dir := t.TempDir()
	inPath := createTestImage(t, filepath.Join(dir, "in.png"), 200, 200)

	lowPath := filepath.Join(dir, "low.jpg")
	highPath := filepath.Join(dir, "high.jpg")

	if err := Run(inPath, lowPath, Options{Quality: 10}); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if err := Run(inPath, highPath, Options{Quality: 95}); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	lowInfo, err := os.Stat(lowPath)
	if err != nil {
		t.Fatal(err)
	}
	highInfo, err := os.Stat(highPath)
	if err != nil {
		t.Fatal(err)
	}

	if lowInfo.Size() >= highInfo.Size() {
		t.Errorf("Quality 10 output (%d bytes) should be smaller than quality 95 output (%d bytes)",
			lowInfo.Size(), highInfo.Size())
	}
}

func TestRun_FormatFromExtension(t *testing.T) {
	dir := t.TempDir()
	inPath := createTestImage(t, filepath.Join(dir, "in.png"), 60, 40)

	for _, ext := range []string{".png", ".jpg", ".gif", ".bmp"} {
		t.Run(ext, func(t *testing.T) {
			outPath := filepath.Join(dir, "out"+ext)
			if err := Run(inPath, outPath, Options{}); err != nil {
				t.Fatalf("Run failed for %s: %v", ext, err)
			}

			out := decodeFile(t, outPath)
			if out.Bounds().Dx() != 60 || out.Bounds().Dy() != 40 {
				t.Errorf("Output dimensions: got %dx%d, want 60x40",
					out.Bounds().Dx(), out.Bounds().Dy())
			}
		})
	}
}

func TestRun_WebPOutput(t *testing.T) {
	dir := t.TempDir()
	inPath := createTestImage(t, filepath.Join(dir, "in.png"), 80, 60)
	outPath := filepath.Join(dir, "out.webp")

	if err := Run(inPath, outPath, Options{Width: 40, Quality: 75}); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	// The registered x/image decoder reads the output back.
	out := decodeFile(t, outPath)
	if out.Bounds().Dx() != 40 || out.Bounds().Dy() != 30 {
		t.Errorf("Output dimensions: got %dx%d, want 40x30",
			out.Bounds().Dx(), out.Bounds().Dy())
	}
}

func TestRun_MissingInput(t *testing.T) {
	err := Run("/nonexistent/in.png", filepath.Join(t.TempDir(), "out.png"), Options{})
	if err == nil {
		t.Fatal("Expected error for nonexistent input")
	}
}

func TestRun_CorruptInput(t *testing.T) {
	dir := t.TempDir()
	inPath := filepath.Join(dir, "corrupt.png")
	if err := os.WriteFile(inPath, []byte("not an image"), 0o644); err != nil {
		t.Fatal(err)
	}

	err := Run(inPath, filepath.Join(dir, "out.png"), Options{})
	if err == nil {
		t.Fatal("Expected error for corrupt input")
	}
}

func TestRun_UnsupportedOutputFormat(t *testing.T) {
	dir := t.TempDir()
	inPath := createTestImage(t, filepath.Join(dir, "in.png"), 20, 20)

	err := Run(inPath, filepath.Join(dir, "out.xyz"), Options{})
	if err == nil {
		t.Fatal("Expected error for unsupported output extension")
	}
}

func TestRun_Deterministic(t *testing.T) {
	dir := t.TempDir()
	inPath := createTestImage(t, filepath.Join(dir, "in.png"), 100, 100)

	out1 := filepath.Join(dir, "out1.jpg")
	out2 := filepath.Join(dir, "out2.jpg")
	opts := Options{Width: 50, Quality: 80}

	if err := Run(inPath, out1, opts); err != nil {
		t.Fatal(err)
	}
	if err := Run(inPath, out2, opts); err != nil {
		t.Fatal(err)
	}

	b1, err := os.ReadFile(out1)
	if err != nil {
		t.Fatal(err)
	}
	b2, err := os.ReadFile(out2)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(b1, b2) {
		t.Error("Identical runs should produce identical bytes")
	}
}

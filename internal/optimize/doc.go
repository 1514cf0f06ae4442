// Package optimize resizes and re-encodes images on disk.
//
// All pixel work is delegated to github.com/disintegration/imaging:
// decoding, Lanczos resampling, and per-format encoding with the
// output format chosen by file extension. WebP output is the one
// exception and is encoded through github.com/chai2010/webp, since
// disintegration/imaging cannot write WebP. WebP input is handled by
// registering the golang.org/x/image/webp decoder.
//
// # Resize semantics
//
// Resizing is fit-within-box: the image is scaled down, preserving
// aspect ratio, until both dimensions are inside the requested bounds.
// The image is never scaled up past its source dimensions, even when
// the requested bounds are larger.
//
// # Quality
//
// The quality option applies to JPEG and WebP encoding only. Writing
// PNG or GIF output with a quality set is not an error; the value is
// simply ignored by those encoders.
package optimize

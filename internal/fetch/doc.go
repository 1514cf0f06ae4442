// Package fetch downloads remote images to the local filesystem.
//
// The Fetcher wraps a standard HTTP client with a fixed browser-like
// User-Agent and a 30-second total timeout. Responses are treated as
// opaque binary and written whole to the target path; parent
// directories are created as needed and existing files are overwritten.
//
// Failures (network errors, timeouts, non-2xx statuses, filesystem
// errors) are returned as ordinary errors. The package never retries.
package fetch

package downloader

import "context"

// Downloader fetches a remote audio source to a local path.
type Downloader interface {
	// Download writes the body of url to destPath and returns the number of
	// bytes written.
	Download(ctx context.Context, url, destPath string) (int64, error)
}

package downloader

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"podbrief/internal/logger"
)

var ErrDownloadFailed = errors.New("download failed")

type implDownloader struct {
	client *http.Client
	logger logger.Logger
}

// New creates a new Downloader instance
func New(log logger.Logger) Downloader {
	return &implDownloader{
		client: &http.Client{Timeout: 30 * time.Minute},
		logger: log,
	}
}

// Download streams the source URL to destPath.
func (d *implDownloader) Download(ctx context.Context, url, destPath string) (int64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, fmt.Errorf("%w: build request: %v", ErrDownloadFailed, err)
	}

	resp, err := d.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrDownloadFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("%w: unexpected status %s", ErrDownloadFailed, resp.Status)
	}

	out, err := os.Create(destPath)
	if err != nil {
		return 0, fmt.Errorf("%w: create file: %v", ErrDownloadFailed, err)
	}

	written, err := io.Copy(out, resp.Body)
	if err != nil {
		out.Close()
		os.Remove(destPath)
		return 0, fmt.Errorf("%w: copy body: %v", ErrDownloadFailed, err)
	}
	if err := out.Close(); err != nil {
		return 0, fmt.Errorf("%w: close file: %v", ErrDownloadFailed, err)
	}

	d.logger.Info(ctx, "Downloaded %s (%d bytes)", url, written)
	return written, nil
}

package watcher

import "context"

// Watcher monitors the drop folder for new audio files.
type Watcher interface {
	Start(ctx context.Context) error
	Stop() error
}

// EventHandler is a function that handles a newly dropped audio file
type EventHandler func(ctx context.Context, filePath string) error

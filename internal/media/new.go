package media

import (
	"podbrief/internal/logger"
	"podbrief/pkg/executor"
)

type implToolchain struct {
	executor executor.Executor
	logger   logger.Logger
}

// New creates a Toolchain backed by ffprobe and ffmpeg.
func New(exec executor.Executor, log logger.Logger) Toolchain {
	return &implToolchain{
		executor: exec,
		logger:   log,
	}
}

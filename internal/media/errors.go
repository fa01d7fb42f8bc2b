package media

import "errors"

var (
	ErrProbeFailed = errors.New("duration probe failed")
	ErrClipFailed  = errors.New("audio clip extraction failed")
)

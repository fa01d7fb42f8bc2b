package transcriber

import "errors"

var ErrTranscriptionFailed = errors.New("transcription failed")

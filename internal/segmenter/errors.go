package segmenter

import "errors"

var ErrSegmentationFailed = errors.New("audio segmentation failed")

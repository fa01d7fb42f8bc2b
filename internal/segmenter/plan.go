package segmenter

import "math"

// sizeSafetyFactor shrinks the computed chunk duration so that encoding
// variance cannot push a chunk over the backend's byte limit.
const sizeSafetyFactor = 0.9

// plannedChunk is a chunk boundary before extraction.
type plannedChunk struct {
	Index         int
	StartSeconds  float64
	LengthSeconds float64
}

// chunkDuration computes the per-chunk duration for a file of fileSize bytes
// and totalDuration seconds against a byte limit, clamped to
// [minChunk, maxChunk] seconds.
func chunkDuration(totalDuration float64, fileSize, sizeLimit int64, minChunk, maxChunk float64) float64 {
	d := float64(sizeLimit) / float64(fileSize) * totalDuration * sizeSafetyFactor
	if d < minChunk {
		return minChunk
	}
	if d > maxChunk {
		return maxChunk
	}
	return d
}

// planChunks lays out chunk boundaries over [0, totalDuration]. Every chunk
// after the first starts `overlap` seconds before its nominal boundary so a
// word spoken at a cut is never lost from both sides; the duplicated seam
// text is accepted rather than de-duplicated.
func planChunks(totalDuration, chunkDur, overlap float64) []plannedChunk {
	count := int(math.Ceil(totalDuration / chunkDur))
	if count < 1 {
		count = 1
	}

	chunks := make([]plannedChunk, 0, count)
	for i := 0; i < count; i++ {
		start := float64(i) * chunkDur
		length := chunkDur
		if i > 0 {
			start -= overlap
			length += overlap
		}
		if start < 0 {
			start = 0
		}
		chunks = append(chunks, plannedChunk{
			Index:         i,
			StartSeconds:  start,
			LengthSeconds: length,
		})
	}

	return chunks
}

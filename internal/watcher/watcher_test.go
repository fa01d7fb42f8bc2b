package watcher

import "testing"

func TestIsAudioFile(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"/drop/episode.mp3", true},
		{"/drop/episode.MP3", true},
		{"/drop/voice.m4a", true},
		{"/drop/raw.wav", true},
		{"/drop/notes.txt", false},
		{"/drop/video.mp4", false},
		{"/drop/noext", false},
	}

	for _, tt := range tests {
		if got := isAudioFile(tt.path); got != tt.want {
			t.Errorf("isAudioFile(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

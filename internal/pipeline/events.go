package pipeline

// Stage tags the pipeline state machine position an event was emitted from.
type Stage string

const (
	StageDownloading      Stage = "downloading"
	StageDownloaded       Stage = "downloaded"
	StageTranscribing     Stage = "transcribing"
	StageTranscribed      Stage = "transcribed"
	StageSummarizing      Stage = "summarizing"
	StageSummarized       Stage = "summarized"
	StageGeneratingSpeech Stage = "generating_speech"
	StageComplete         Stage = "complete"
	StageError            Stage = "error"
)

// Event is one progress notification. Events are transient: emitted in stage
// order, pushed to the caller's sink and never stored.
type Event struct {
	Stage           Stage   `json:"stage"`
	Message         string  `json:"message"`
	Progress        int     `json:"progress"`
	CacheKey        string  `json:"cache_key,omitempty"`
	WasCached       bool    `json:"was_cached,omitempty"`
	TranscriptWords int     `json:"transcript_words,omitempty"`
	SummaryWords    int     `json:"summary_words,omitempty"`
	SummaryText     string  `json:"summary_text,omitempty"`
	AudioPath       string  `json:"audio_path,omitempty"`
	ElapsedSeconds  float64 `json:"elapsed_seconds,omitempty"`
	Done            bool    `json:"done,omitempty"`
	Error           bool    `json:"error,omitempty"`
	ErrorMessage    string  `json:"error_message,omitempty"`
}

// Sink consumes progress events. A nil Sink is valid and discards them.
// Implementations must not block the pipeline; the server side uses a
// buffered channel with drop-on-full semantics.
type Sink func(Event)

func (p *implPipeline) emit(sink Sink, ev Event) {
	if sink != nil {
		sink(ev)
	}
}

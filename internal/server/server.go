// Package server exposes the pipeline over HTTP with websocket progress push.
package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"

	"podbrief/internal/logger"
	"podbrief/internal/pipeline"
	"podbrief/internal/store"
)

// eventBuffer bounds the progress queue per connection. A slow client drops
// events rather than stalling the pipeline.
const eventBuffer = 64

type Server struct {
	pipeline pipeline.Pipeline
	logger   logger.Logger
}

// New creates a new Server instance
func New(p pipeline.Pipeline, log logger.Logger) *Server {
	return &Server{pipeline: p, logger: log}
}

// Handler returns the route mux.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /process", s.handleProcess)
	mux.HandleFunc("GET /ws/process", s.handleProcessWS)
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	return mux
}

type processRequest struct {
	Source string `json:"source"`
}

type processResponse struct {
	CacheKey         string  `json:"cache_key"`
	SummaryAudioPath string  `json:"summary_audio_path"`
	SummaryText      string  `json:"summary_text,omitempty"`
	TranscriptWords  int     `json:"transcript_words"`
	SummaryWords     int     `json:"summary_words"`
	WasCached        bool    `json:"was_cached"`
	ElapsedSeconds   float64 `json:"elapsed_seconds"`
}

// handleProcess runs the pipeline synchronously and returns the result.
func (s *Server) handleProcess(w http.ResponseWriter, r *http.Request) {
	var req processRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	result, err := s.pipeline.Run(r.Context(), req.Source, nil)
	if err != nil {
		http.Error(w, err.Error(), statusFor(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(processResponse{
		CacheKey:         result.CacheKey,
		SummaryAudioPath: result.SummaryAudioPath,
		SummaryText:      result.SummaryText,
		TranscriptWords:  result.TranscriptWords,
		SummaryWords:     result.SummaryWords,
		WasCached:        result.WasCached,
		ElapsedSeconds:   result.Elapsed.Seconds(),
	})
}

// handleProcessWS runs the pipeline and streams one JSON event per frame.
// Client disconnect cancels the run.
func (s *Server) handleProcessWS(w http.ResponseWriter, r *http.Request) {
	source := r.URL.Query().Get("source")
	if source == "" {
		http.Error(w, "missing source parameter", http.StatusBadRequest)
		return
	}

	conn, err := websocket.Accept(w, r, nil)
	if err != nil {
		s.logger.Warn(r.Context(), "WebSocket accept failed: %v", err)
		return
	}
	defer conn.Close(websocket.StatusInternalError, "pipeline aborted")

	// CloseRead cancels the connection context when the client goes away.
	connCtx := conn.CloseRead(r.Context())

	events := make(chan pipeline.Event, eventBuffer)
	sink := func(ev pipeline.Event) {
		select {
		case events <- ev:
		default:
			// Queue full: drop rather than block the pipeline
		}
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		for ev := range events {
			if err := wsjson.Write(connCtx, conn, ev); err != nil {
				// Client gone: keep draining so the sink never observes
				// a stuck queue, then exit when the run closes it.
				for range events {
				}
				return
			}
		}
	}()

	_, runErr := s.pipeline.Run(connCtx, source, sink)
	close(events)
	<-done

	if runErr != nil {
		s.logger.Error(r.Context(), "Pipeline run over websocket failed: %v", runErr)
		conn.Close(websocket.StatusNormalClosure, "failed")
		return
	}
	conn.Close(websocket.StatusNormalClosure, "done")
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, pipeline.ErrInvalidArgument):
		return http.StatusBadRequest
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, pipeline.ErrRunInFlight):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

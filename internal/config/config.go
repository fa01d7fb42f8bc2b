package config

import "fmt"

type Config struct {
	Paths     PathsConfig     `yaml:"paths"`
	Pipeline  PipelineConfig  `yaml:"pipeline"`
	Providers ProvidersConfig `yaml:"providers"`
	Server    ServerConfig    `yaml:"server"`
	Logging   LoggingConfig   `yaml:"logging"`
}

type PathsConfig struct {
	Episodes  string `yaml:"episodes"`  // cached episode audio
	Summaries string `yaml:"summaries"` // summary audio + text artifacts
	Scratch   string `yaml:"scratch"`   // per-run temp dirs
	Input     string `yaml:"input"`     // drop folder for local ingestion
	Database  string `yaml:"database"`
}

type PipelineConfig struct {
	SizeThresholdBytes int64   `yaml:"size_threshold_bytes"`
	MaxConcurrent      int     `yaml:"max_concurrent"`
	MinChunkSeconds    float64 `yaml:"min_chunk_seconds"`
	MaxChunkSeconds    float64 `yaml:"max_chunk_seconds"`
	OverlapSeconds     float64 `yaml:"overlap_seconds"`
	SummaryTargetWords int     `yaml:"summary_target_words"`
	SummaryMaxWords    int     `yaml:"summary_max_words"`
}

type ProvidersConfig struct {
	OpenAI OpenAIConfig `yaml:"openai"`
	Gemini GeminiConfig `yaml:"gemini"`
}

type OpenAIConfig struct {
	APIKey             string `yaml:"api_key"`
	BaseURL            string `yaml:"base_url"`
	TranscriptionModel string `yaml:"transcription_model"`
	SpeechModel        string `yaml:"speech_model"`
	SpeechVoice        string `yaml:"speech_voice"`
}

type GeminiConfig struct {
	APIKeys []string `yaml:"api_keys"`
	Model   string   `yaml:"model"`
}

type ServerConfig struct {
	Addr string `yaml:"addr"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

func (c *Config) Validate() error {
	if c.Providers.OpenAI.APIKey == "" {
		return fmt.Errorf("providers.openai.api_key is required")
	}
	if len(c.Providers.Gemini.APIKeys) == 0 {
		return fmt.Errorf("providers.gemini.api_keys is required")
	}
	if c.Paths.Episodes == "" {
		return fmt.Errorf("paths.episodes is required")
	}
	if c.Paths.Summaries == "" {
		return fmt.Errorf("paths.summaries is required")
	}

	if c.Paths.Scratch == "" {
		c.Paths.Scratch = "data/scratch"
	}
	if c.Paths.Input == "" {
		c.Paths.Input = "data/input"
	}
	if c.Paths.Database == "" {
		c.Paths.Database = "data/podbrief.db"
	}
	if c.Pipeline.SizeThresholdBytes == 0 {
		c.Pipeline.SizeThresholdBytes = 5 * 1024 * 1024
	}
	if c.Pipeline.MaxConcurrent == 0 {
		c.Pipeline.MaxConcurrent = 10
	}
	if c.Pipeline.MinChunkSeconds == 0 {
		c.Pipeline.MinChunkSeconds = 60
	}
	if c.Pipeline.MaxChunkSeconds == 0 {
		c.Pipeline.MaxChunkSeconds = 600
	}
	if c.Pipeline.OverlapSeconds == 0 {
		c.Pipeline.OverlapSeconds = 1
	}
	if c.Pipeline.SummaryTargetWords == 0 {
		c.Pipeline.SummaryTargetWords = 750
	}
	if c.Pipeline.SummaryMaxWords == 0 {
		c.Pipeline.SummaryMaxWords = 800
	}
	if c.Providers.OpenAI.TranscriptionModel == "" {
		c.Providers.OpenAI.TranscriptionModel = "whisper-1"
	}
	if c.Providers.OpenAI.SpeechModel == "" {
		c.Providers.OpenAI.SpeechModel = "tts-1"
	}
	if c.Providers.OpenAI.SpeechVoice == "" {
		c.Providers.OpenAI.SpeechVoice = "alloy"
	}
	if c.Providers.Gemini.Model == "" {
		c.Providers.Gemini.Model = "gemini-2.5-flash"
	}
	if c.Server.Addr == "" {
		c.Server.Addr = ":8080"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}

	return nil
}

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server      ServerConfig      `yaml:"server"`
	Redis       RedisConfig       `yaml:"redis"`
	LLM         LLMConfig         `yaml:"llm"`
	Summarizer  SummarizerConfig  `yaml:"summarizer"`
	Downloader  DownloaderConfig  `yaml:"downloader"`
	Transcriber TranscriberConfig `yaml:"transcriber"`
	Logging     LoggingConfig     `yaml:"logging"`
}

type ServerConfig struct {
	Addr             string `yaml:"addr"`
	DeploymentSecret string `yaml:"deployment_secret"`
	DeploymentScript string `yaml:"deployment_script"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type LLMConfig struct {
	Provider  string   `yaml:"provider"`
	APIKeys   []string `yaml:"api_keys"`
	Model     string   `yaml:"model"`
	MaxTokens int      `yaml:"max_tokens"`
}

type SummarizerConfig struct {
	MaxChunkSize  int `yaml:"max_chunk_size"`
	MaxConcurrent int `yaml:"max_concurrent"`
}

type DownloaderConfig struct {
	TranscriptDir string `yaml:"transcript_dir"`
	AudioDir      string `yaml:"audio_dir"`
	YtDlpPath     string `yaml:"ytdlp_path"`
}

type TranscriberConfig struct {
	Backend        string `yaml:"backend"`
	WhisperModel   string `yaml:"whisper_model"`
	WhisperBinary  string `yaml:"whisper_binary"`
	WhisperThreads int    `yaml:"whisper_threads"`
	AssemblyAIKey  string `yaml:"assemblyai_api_key"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Load reads the YAML configuration file and validates it
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if len(c.LLM.APIKeys) == 0 {
		return fmt.Errorf("llm.api_keys is required")
	}
	if c.Redis.Addr == "" {
		return fmt.Errorf("redis.addr is required")
	}

	switch c.LLM.Provider {
	case "":
		c.LLM.Provider = "groq"
	case "groq", "gemini":
	default:
		return fmt.Errorf("llm.provider must be groq or gemini, got %q", c.LLM.Provider)
	}

	switch c.Transcriber.Backend {
	case "":
		c.Transcriber.Backend = "whisper"
	case "whisper":
		if c.Transcriber.WhisperModel == "" {
			return fmt.Errorf("transcriber.whisper_model is required")
		}
		if c.Transcriber.WhisperBinary == "" {
			return fmt.Errorf("transcriber.whisper_binary is required")
		}
	case "assemblyai":
		if c.Transcriber.AssemblyAIKey == "" {
			return fmt.Errorf("transcriber.assemblyai_api_key is required")
		}
	default:
		return fmt.Errorf("transcriber.backend must be whisper or assemblyai, got %q", c.Transcriber.Backend)
	}

	if c.Server.Addr == "" {
		c.Server.Addr = ":8000"
	}
	if c.LLM.Model == "" {
		switch c.LLM.Provider {
		case "gemini":
			c.LLM.Model = "gemini-2.5-flash"
		default:
			c.LLM.Model = "llama3-8b-8192"
		}
	}
	if c.LLM.MaxTokens == 0 {
		c.LLM.MaxTokens = 8000
	}
	if c.Summarizer.MaxChunkSize == 0 {
		c.Summarizer.MaxChunkSize = 1000
	}
	if c.Summarizer.MaxConcurrent == 0 {
		c.Summarizer.MaxConcurrent = 8
	}
	if c.Downloader.TranscriptDir == "" {
		c.Downloader.TranscriptDir = "data/transcripts"
	}
	if c.Downloader.AudioDir == "" {
		c.Downloader.AudioDir = "data/audio"
	}
	if c.Downloader.YtDlpPath == "" {
		c.Downloader.YtDlpPath = "yt-dlp"
	}
	if c.Transcriber.WhisperThreads == 0 {
		c.Transcriber.WhisperThreads = 8
	}

	return nil
}

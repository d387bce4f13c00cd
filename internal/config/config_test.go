package config

import (
	"os"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name: "valid config",
			config: Config{
				Redis: RedisConfig{Addr: "localhost:6379"},
				LLM:   LLMConfig{APIKeys: []string{"gsk_test"}},
				Transcriber: TranscriberConfig{
					Backend:       "whisper",
					WhisperModel:  "models/ggml-base.bin",
					WhisperBinary: "./whisper",
				},
			},
			wantErr: false,
		},
		{
			name: "missing api keys",
			config: Config{
				Redis: RedisConfig{Addr: "localhost:6379"},
				Transcriber: TranscriberConfig{
					Backend:       "whisper",
					WhisperModel:  "models/ggml-base.bin",
					WhisperBinary: "./whisper",
				},
			},
			wantErr: true,
		},
		{
			name: "missing redis addr",
			config: Config{
				LLM: LLMConfig{APIKeys: []string{"gsk_test"}},
				Transcriber: TranscriberConfig{
					Backend:       "whisper",
					WhisperModel:  "models/ggml-base.bin",
					WhisperBinary: "./whisper",
				},
			},
			wantErr: true,
		},
		{
			name: "unknown llm provider",
			config: Config{
				Redis: RedisConfig{Addr: "localhost:6379"},
				LLM:   LLMConfig{APIKeys: []string{"gsk_test"}, Provider: "openai"},
			},
			wantErr: true,
		},
		{
			name: "assemblyai backend without key",
			config: Config{
				Redis:       RedisConfig{Addr: "localhost:6379"},
				LLM:         LLMConfig{APIKeys: []string{"gsk_test"}},
				Transcriber: TranscriberConfig{Backend: "assemblyai"},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateDefaults(t *testing.T) {
	cfg := Config{
		Redis: RedisConfig{Addr: "localhost:6379"},
		LLM:   LLMConfig{APIKeys: []string{"gsk_test"}},
		Transcriber: TranscriberConfig{
			Backend:       "whisper",
			WhisperModel:  "models/ggml-base.bin",
			WhisperBinary: "./whisper",
		},
	}

	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	if cfg.LLM.Provider != "groq" {
		t.Errorf("Provider = %v, want groq", cfg.LLM.Provider)
	}
	if cfg.LLM.Model != "llama3-8b-8192" {
		t.Errorf("Model = %v, want llama3-8b-8192", cfg.LLM.Model)
	}
	if cfg.LLM.MaxTokens != 8000 {
		t.Errorf("MaxTokens = %v, want 8000", cfg.LLM.MaxTokens)
	}
	if cfg.Summarizer.MaxChunkSize != 1000 {
		t.Errorf("MaxChunkSize = %v, want 1000", cfg.Summarizer.MaxChunkSize)
	}
	if cfg.Summarizer.MaxConcurrent != 8 {
		t.Errorf("MaxConcurrent = %v, want 8", cfg.Summarizer.MaxConcurrent)
	}
	if cfg.Server.Addr != ":8000" {
		t.Errorf("Addr = %v, want :8000", cfg.Server.Addr)
	}
}

func TestLoad(t *testing.T) {
	tmpfile, err := os.CreateTemp("", "config-*.yaml")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(tmpfile.Name())

	content := `
server:
  addr: ":9000"

redis:
  addr: "localhost:6379"

llm:
  provider: "groq"
  api_keys:
    - "gsk_test"
  model: "llama3-8b-8192"

summarizer:
  max_chunk_size: 1500

transcriber:
  backend: "whisper"
  whisper_model: "models/ggml-base.bin"
  whisper_binary: "./whisper"

logging:
  level: "info"
`

	if _, err := tmpfile.Write([]byte(content)); err != nil {
		t.Fatal(err)
	}
	if err := tmpfile.Close(); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(tmpfile.Name())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Addr != ":9000" {
		t.Errorf("Addr = %v, want :9000", cfg.Server.Addr)
	}
	if cfg.Summarizer.MaxChunkSize != 1500 {
		t.Errorf("MaxChunkSize = %v, want 1500", cfg.Summarizer.MaxChunkSize)
	}
}

func TestLoadInvalidFile(t *testing.T) {
	_, err := Load("nonexistent.yaml")
	if err == nil {
		t.Error("Load() should return error for nonexistent file")
	}
}

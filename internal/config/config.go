package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/xxxsen/common/logger"
)

type Config struct {
	Database   DatabaseConfig   `json:"database"`
	LogConfig  logger.LogConfig `json:"log_config"`
	AI         AIConfig         `json:"ai"`
	Speech     SpeechConfig     `json:"speech"`
	RAG        RAGConfig        `json:"rag"`
	Tour       TourConfig       `json:"tour"`
	PhotoStore PhotoStoreConfig `json:"photo_store"`
	DebugPort  int              `json:"debug_port"`
}

type DatabaseConfig struct {
	DSN      string `json:"dsn"`
	Host     string `json:"host"`
	Port     int    `json:"port"`
	User     string `json:"user"`
	Password string `json:"password"`
	DBName   string `json:"db_name"`
	SSLMode  string `json:"ssl_mode"`
}

type AIConfig struct {
	Provider         string             `json:"provider"`
	Data             interface{}        `json:"data"`
	GenerateModel    string             `json:"generate_model"`
	EmbedModel       string             `json:"embed_model"`
	Fallbacks        []AIFallbackConfig `json:"fallbacks"`
	TimeoutSeconds   int                `json:"timeout_seconds"`
	EmbedCacheSize   int                `json:"embed_cache_size"`
	EmbedCacheTTLMin int                `json:"embed_cache_ttl_minutes"`
}

// AIFallbackConfig is a secondary backend tried when the primary fails.
type AIFallbackConfig struct {
	Provider      string      `json:"provider"`
	Data          interface{} `json:"data"`
	GenerateModel string      `json:"generate_model"`
	EmbedModel    string      `json:"embed_model"`
}

type SpeechConfig struct {
	STT          STTConfig `json:"stt"`
	TTS          TTSConfig `json:"tts"`
	MicDevice    string    `json:"mic_device"`
	OutputDevice string    `json:"output_device"`
	CameraDevice string    `json:"camera_device"`
}

type STTConfig struct {
	APIKey        string  `json:"api_key"`
	BaseURL       string  `json:"base_url"`
	Model         string  `json:"model"`
	MinAvgLogprob float64 `json:"min_avg_logprob"`
	MaxRetries    int     `json:"max_retries"`
}

type TTSConfig struct {
	APIKey        string            `json:"api_key"`
	BaseURL       string            `json:"base_url"`
	ModelID       string            `json:"model_id"`
	Voices        map[string]string `json:"voices"`
	MaxChunkChars int               `json:"max_chunk_chars"`
}

type RAGConfig struct {
	Enabled       *bool  `json:"enabled"`
	IndexPath     string `json:"index_path"`
	TopK          int    `json:"top_k"`
	FreshnessCron string `json:"freshness_cron"`
}

func (c RAGConfig) IsEnabled() bool {
	return c.Enabled == nil || *c.Enabled
}

type TourConfig struct {
	Language            string `json:"language"`
	PlaceID             string `json:"place_id"`
	ListenSeconds       int    `json:"listen_seconds"`
	InlineListenSeconds int    `json:"inline_listen_seconds"`
	WakeListenSeconds   int    `json:"wake_listen_seconds"`
	MaxQATurns          int    `json:"max_qa_turns"`
	WakeCooldownSeconds int    `json:"wake_cooldown_seconds"`
}

type PhotoStoreConfig struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

func Load(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	var cfg Config
	if err := json.NewDecoder(file).Decode(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if cfg.Database.DSN == "" && cfg.Database.Host == "" {
		return nil, fmt.Errorf("database.dsn or database.host is required")
	}
	if cfg.AI.Provider == "" {
		return nil, fmt.Errorf("ai.provider is required")
	}
	if cfg.LogConfig.Level == "" {
		cfg.LogConfig.Level = "info"
	}
	if cfg.AI.GenerateModel == "" {
		cfg.AI.GenerateModel = "gpt-4.1-mini"
	}
	if cfg.AI.EmbedModel == "" {
		cfg.AI.EmbedModel = "text-embedding-3-small"
	}
	if cfg.AI.TimeoutSeconds == 0 {
		cfg.AI.TimeoutSeconds = 60
	}
	if cfg.AI.EmbedCacheSize == 0 {
		cfg.AI.EmbedCacheSize = 4096
	}
	if cfg.AI.EmbedCacheTTLMin == 0 {
		cfg.AI.EmbedCacheTTLMin = 120
	}
	if cfg.Speech.STT.MinAvgLogprob == 0 {
		cfg.Speech.STT.MinAvgLogprob = -1.2
	}
	if cfg.Speech.STT.Model == "" {
		cfg.Speech.STT.Model = "whisper-1"
	}
	if cfg.Speech.STT.MaxRetries == 0 {
		cfg.Speech.STT.MaxRetries = 1
	}
	if cfg.Speech.TTS.MaxChunkChars == 0 {
		cfg.Speech.TTS.MaxChunkChars = 2000
	}
	if cfg.Speech.TTS.ModelID == "" {
		cfg.Speech.TTS.ModelID = "eleven_multilingual_v2"
	}
	if cfg.RAG.IndexPath == "" {
		cfg.RAG.IndexPath = "knowledge_index_en.bin"
	}
	if cfg.RAG.TopK == 0 {
		cfg.RAG.TopK = 5
	}
	if cfg.RAG.FreshnessCron == "" {
		cfg.RAG.FreshnessCron = "0 * * * *"
	}
	if cfg.DebugPort == 0 {
		cfg.DebugPort = 8085
	}
	if cfg.Tour.Language == "" {
		cfg.Tour.Language = "ko"
	}
	if cfg.Tour.PlaceID == "" {
		cfg.Tour.PlaceID = "gyeongbokgung"
	}
	if cfg.Tour.ListenSeconds == 0 {
		cfg.Tour.ListenSeconds = 10
	}
	if cfg.Tour.InlineListenSeconds == 0 {
		cfg.Tour.InlineListenSeconds = 6
	}
	if cfg.Tour.WakeListenSeconds == 0 {
		cfg.Tour.WakeListenSeconds = 2
	}
	if cfg.Tour.MaxQATurns == 0 {
		cfg.Tour.MaxQATurns = 3
	}
	if cfg.Tour.WakeCooldownSeconds == 0 {
		cfg.Tour.WakeCooldownSeconds = 15
	}
	if cfg.PhotoStore.Type == "" {
		cfg.PhotoStore.Type = "local"
	}
	if cfg.PhotoStore.Type == "local" && cfg.PhotoStore.Data == nil {
		cfg.PhotoStore.Data = map[string]interface{}{"dir": "photos"}
	}
	return &cfg, nil
}

package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	Server     ServerConfig
	OpenAI     OpenAIConfig
	ElevenLabs ElevenLabsConfig
	HeyGen     HeyGenConfig
	Email      EmailConfig
	Letter     LetterConfig
	Outputs    OutputConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port string
	Host string
}

// OpenAIConfig holds OpenAI API configuration for message generation
// and the TTS fallback voice
type OpenAIConfig struct {
	APIKey      string
	Model       string
	Temperature float32
	MaxTokens   int
	TTSModel    string
	TTSVoice    string
	TTSSpeed    float64
}

// ElevenLabsConfig holds the primary speech provider configuration.
// Both APIKey and VoiceID must be set for ElevenLabs to be used.
type ElevenLabsConfig struct {
	APIKey       string
	VoiceID      string
	ModelID      string
	OutputFormat string
	BaseURL      string
}

// Configured reports whether ElevenLabs can be used as a speech provider
func (c ElevenLabsConfig) Configured() bool {
	return c.APIKey != "" && c.VoiceID != ""
}

// HeyGenConfig holds the avatar video provider configuration
type HeyGenConfig struct {
	APIKey    string
	AvatarID  string // optional: video avatar ID; empty means talking-photo mode
	BaseURL   string
	UploadURL string

	PollInterval time.Duration
	PollTimeout  time.Duration

	VideoWidth  int
	VideoHeight int
}

// EmailConfig holds SendGrid email configuration
type EmailConfig struct {
	APIKey    string
	FromEmail string
	FromName  string
}

// LetterConfig holds letter rendering configuration
type LetterConfig struct {
	BackgroundImagePath string // optional parchment background for the HTML letter
	AvatarImagePath     string // portrait used for HeyGen talking-photo mode
}

// OutputConfig toggles which generators are wired at startup
type OutputConfig struct {
	Audio  bool
	Video  bool
	Letter bool
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load()

	config := &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "8086"),
			Host: getEnv("HOST", "0.0.0.0"),
		},
		OpenAI: OpenAIConfig{
			APIKey:      getEnv("OPENAI_API_KEY", ""),
			Model:       getEnv("OPENAI_MODEL", "gpt-4o"),
			Temperature: float32(getEnvFloat("OPENAI_TEMPERATURE", 0.9)),
			MaxTokens:   getEnvInt("OPENAI_MAX_TOKENS", 400),
			TTSModel:    getEnv("OPENAI_TTS_MODEL", "tts-1-hd"),
			TTSVoice:    getEnv("OPENAI_TTS_VOICE", "onyx"),
			TTSSpeed:    getEnvFloat("OPENAI_TTS_SPEED", 0.85),
		},
		ElevenLabs: ElevenLabsConfig{
			APIKey:       getEnv("ELEVENLABS_API_KEY", ""),
			VoiceID:      getEnv("ELEVENLABS_VOICE_ID", ""),
			ModelID:      getEnv("ELEVENLABS_MODEL_ID", "eleven_multilingual_v2"),
			OutputFormat: getEnv("ELEVENLABS_OUTPUT_FORMAT", "mp3_44100_128"),
			BaseURL:      getEnv("ELEVENLABS_BASE_URL", "https://api.elevenlabs.io"),
		},
		HeyGen: HeyGenConfig{
			APIKey:       getEnv("HEYGEN_API_KEY", ""),
			AvatarID:     getEnv("HEYGEN_AVATAR_ID", ""),
			BaseURL:      getEnv("HEYGEN_BASE_URL", "https://api.heygen.com"),
			UploadURL:    getEnv("HEYGEN_UPLOAD_URL", "https://upload.heygen.com"),
			PollInterval: getEnvDuration("HEYGEN_POLL_INTERVAL", 3*time.Second),
			PollTimeout:  getEnvDuration("HEYGEN_POLL_TIMEOUT", 5*time.Minute),
			VideoWidth:   getEnvInt("HEYGEN_VIDEO_WIDTH", 1280),
			VideoHeight:  getEnvInt("HEYGEN_VIDEO_HEIGHT", 720),
		},
		Email: EmailConfig{
			APIKey:    getEnv("SENDGRID_API_KEY", ""),
			FromEmail: getEnv("SENDGRID_FROM_EMAIL", ""),
			FromName:  getEnv("SENDGRID_FROM_NAME", "Sinterklaas"),
		},
		Letter: LetterConfig{
			BackgroundImagePath: getEnv("LETTER_BACKGROUND_IMAGE", ""),
			AvatarImagePath:     getEnv("SINT_IMAGE_PATH", "sint.png"),
		},
		Outputs: OutputConfig{
			Audio:  getEnvBool("ENABLE_AUDIO", true),
			Video:  getEnvBool("ENABLE_VIDEO", false),
			Letter: getEnvBool("ENABLE_LETTER", true),
		},
	}

	if err := ValidateConfig(config); err != nil {
		return nil, err
	}

	return config, nil
}

// ValidateConfig validates that required configuration values are present.
// Every enabled capability must be fully configured up front; a missing
// credential fails startup instead of producing a client that fails at call time.
func ValidateConfig(config *Config) error {
	if config.OpenAI.APIKey == "" {
		return fmt.Errorf("OPENAI_API_KEY is required for message generation")
	}
	if config.ElevenLabs.APIKey != "" && config.ElevenLabs.VoiceID == "" {
		return fmt.Errorf("ELEVENLABS_VOICE_ID is required when ELEVENLABS_API_KEY is set")
	}
	if config.Outputs.Video {
		if config.HeyGen.APIKey == "" {
			return fmt.Errorf("HEYGEN_API_KEY is required when ENABLE_VIDEO is true")
		}
		if config.HeyGen.PollInterval <= 0 {
			return fmt.Errorf("HEYGEN_POLL_INTERVAL must be positive")
		}
		if config.HeyGen.PollTimeout <= 0 {
			return fmt.Errorf("HEYGEN_POLL_TIMEOUT must be positive")
		}
	}
	if config.Email.APIKey != "" && config.Email.FromEmail == "" {
		return fmt.Errorf("SENDGRID_FROM_EMAIL is required when SENDGRID_API_KEY is set")
	}
	return nil
}

// Helper functions for environment variable access
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

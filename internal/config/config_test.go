package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validTestConfig() *Config {
	return &Config{
		OpenAI: OpenAIConfig{APIKey: "sk-test"},
		HeyGen: HeyGenConfig{
			APIKey:       "hg-test",
			PollInterval: 3 * time.Second,
			PollTimeout:  5 * time.Minute,
		},
	}
}

func TestValidateConfigValid(t *testing.T) {
	assert.NoError(t, ValidateConfig(validTestConfig()))
}

func TestValidateConfigMissingOpenAIKey(t *testing.T) {
	cfg := validTestConfig()
	cfg.OpenAI.APIKey = ""

	err := ValidateConfig(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "OPENAI_API_KEY")
}

func TestValidateConfigElevenLabsKeyWithoutVoice(t *testing.T) {
	cfg := validTestConfig()
	cfg.ElevenLabs.APIKey = "el-test"

	err := ValidateConfig(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ELEVENLABS_VOICE_ID")
}

func TestValidateConfigVideoRequiresHeyGenKey(t *testing.T) {
	cfg := validTestConfig()
	cfg.Outputs.Video = true
	cfg.HeyGen.APIKey = ""

	err := ValidateConfig(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HEYGEN_API_KEY")
}

func TestValidateConfigVideoRequiresPositivePolling(t *testing.T) {
	cfg := validTestConfig()
	cfg.Outputs.Video = true

	cfg.HeyGen.PollInterval = 0
	err := ValidateConfig(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HEYGEN_POLL_INTERVAL")

	cfg.HeyGen.PollInterval = time.Second
	cfg.HeyGen.PollTimeout = 0
	err = ValidateConfig(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HEYGEN_POLL_TIMEOUT")
}

func TestValidateConfigSendGridKeyWithoutFrom(t *testing.T) {
	cfg := validTestConfig()
	cfg.Email.APIKey = "sg-test"

	err := ValidateConfig(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SENDGRID_FROM_EMAIL")
}

func TestValidateConfigVideoDisabledSkipsHeyGenChecks(t *testing.T) {
	cfg := validTestConfig()
	cfg.Outputs.Video = false
	cfg.HeyGen = HeyGenConfig{}

	assert.NoError(t, ValidateConfig(cfg))
}

func TestElevenLabsConfigured(t *testing.T) {
	assert.False(t, ElevenLabsConfig{}.Configured())
	assert.False(t, ElevenLabsConfig{APIKey: "k"}.Configured())
	assert.False(t, ElevenLabsConfig{VoiceID: "v"}.Configured())
	assert.True(t, ElevenLabsConfig{APIKey: "k", VoiceID: "v"}.Configured())
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8086", cfg.Server.Port)
	assert.Equal(t, "gpt-4o", cfg.OpenAI.Model)
	assert.InDelta(t, 0.9, float64(cfg.OpenAI.Temperature), 0.001)
	assert.Equal(t, 400, cfg.OpenAI.MaxTokens)
	assert.Equal(t, "tts-1-hd", cfg.OpenAI.TTSModel)
	assert.Equal(t, "onyx", cfg.OpenAI.TTSVoice)
	assert.InDelta(t, 0.85, cfg.OpenAI.TTSSpeed, 0.001)
	assert.Equal(t, "eleven_multilingual_v2", cfg.ElevenLabs.ModelID)
	assert.Equal(t, "mp3_44100_128", cfg.ElevenLabs.OutputFormat)
	assert.Equal(t, 3*time.Second, cfg.HeyGen.PollInterval)
	assert.Equal(t, 5*time.Minute, cfg.HeyGen.PollTimeout)
	assert.Equal(t, 1280, cfg.HeyGen.VideoWidth)
	assert.Equal(t, 720, cfg.HeyGen.VideoHeight)
	assert.True(t, cfg.Outputs.Audio)
	assert.False(t, cfg.Outputs.Video)
	assert.True(t, cfg.Outputs.Letter)
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("HEYGEN_POLL_INTERVAL", "10s")
	t.Setenv("OPENAI_MAX_TOKENS", "250")
	t.Setenv("ENABLE_AUDIO", "false")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 10*time.Second, cfg.HeyGen.PollInterval)
	assert.Equal(t, 250, cfg.OpenAI.MaxTokens)
	assert.False(t, cfg.Outputs.Audio)
}

package services

import (
	"context"
	"fmt"
	"io"

	"github.com/sashabaranov/go-openai"

	"sint-message-service/internal/config"
)

// OpenAISpeech synthesizes speech with the OpenAI TTS API. It is the
// fallback voice when ElevenLabs is unavailable.
type OpenAISpeech struct {
	client *openai.Client
	cfg    config.OpenAIConfig
}

// NewOpenAISpeech creates the OpenAI TTS synthesizer
func NewOpenAISpeech(client *openai.Client, cfg config.OpenAIConfig) *OpenAISpeech {
	return &OpenAISpeech{client: client, cfg: cfg}
}

// Name identifies this provider in logs and fallback errors
func (s *OpenAISpeech) Name() string { return "openai" }

// Synthesize converts text to MP3 audio with the configured voice
func (s *OpenAISpeech) Synthesize(ctx context.Context, text string) ([]byte, error) {
	resp, err := s.client.CreateSpeech(ctx, openai.CreateSpeechRequest{
		Model: openai.SpeechModel(s.cfg.TTSModel),
		Input: text,
		Voice: openai.SpeechVoice(s.cfg.TTSVoice),
		Speed: s.cfg.TTSSpeed,
	})
	if err != nil {
		return nil, fmt.Errorf("openai speech request failed: %w", err)
	}
	defer resp.Close()

	audio, err := io.ReadAll(resp)
	if err != nil {
		return nil, fmt.Errorf("failed to read openai speech response: %w", err)
	}
	return audio, nil
}

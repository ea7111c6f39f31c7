package services

import "context"

// Synthesizer converts text to spoken audio. ElevenLabs and the OpenAI TTS
// fallback both implement it so SpeechService can swap providers without
// knowing which one it is talking to.
type Synthesizer interface {
	// Name identifies the provider in logs and errors
	Name() string
	// Synthesize returns MP3 audio for the given text
	Synthesize(ctx context.Context, text string) ([]byte, error)
}

package services

import (
	"context"
	"log"
)

// SpeechService picks a speech provider: the primary when preferred and
// configured, otherwise the secondary. On a primary failure exactly one
// fallback hop to the secondary is attempted; the secondary's own failure
// is surfaced as-is. Either provider may be nil (unconfigured).
type SpeechService struct {
	primary   Synthesizer
	secondary Synthesizer
}

// NewSpeechService creates the two-tier speech selector
func NewSpeechService(primary, secondary Synthesizer) *SpeechService {
	return &SpeechService{primary: primary, secondary: secondary}
}

// Speak synthesizes the text with the preferred provider chain
func (s *SpeechService) Speak(ctx context.Context, text string, preferPrimary bool) ([]byte, error) {
	if preferPrimary && s.primary != nil {
		audio, err := s.primary.Synthesize(ctx, text)
		if err == nil {
			return audio, nil
		}
		if s.secondary == nil {
			return nil, &NoFallbackError{Provider: s.primary.Name(), Err: err}
		}
		log.Printf("WARNING: %s synthesis failed, falling back to %s: %v", s.primary.Name(), s.secondary.Name(), err)
		return s.secondary.Synthesize(ctx, text)
	}

	if s.secondary != nil {
		return s.secondary.Synthesize(ctx, text)
	}

	return nil, ErrNoProvider
}

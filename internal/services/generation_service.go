package services

import (
	"context"
	"fmt"
	"log"

	"sint-message-service/internal/letter"
	"sint-message-service/internal/models"
)

// MessageDrafter drafts the in-character message from a child profile
type MessageDrafter interface {
	Generate(ctx context.Context, child models.ChildProfile) (string, error)
}

// Speaker synthesizes narration audio for a message
type Speaker interface {
	Speak(ctx context.Context, text string, preferPrimary bool) ([]byte, error)
}

// Videographer renders a talking-avatar video from narration audio
type Videographer interface {
	Generate(ctx context.Context, audio []byte) (string, error)
}

// LetterRenderer renders a formatted letter as HTML
type LetterRenderer interface {
	RenderHTML(l letter.FormattedLetter) (string, error)
}

// PDFRenderer renders a formatted letter as a PDF document
type PDFRenderer interface {
	GenerateLetterPDF(formatted *letter.FormattedLetter) ([]byte, error)
}

// GenerationService orchestrates the full pipeline for one request:
// message draft, narration audio, avatar video and the parchment letter.
// Videographer may be nil when video output is disabled.
type GenerationService struct {
	messages MessageDrafter
	speech   Speaker
	video    Videographer
	letters  LetterRenderer
	pdf      PDFRenderer
}

// NewGenerationService creates the pipeline orchestrator
func NewGenerationService(messages MessageDrafter, speech Speaker, video Videographer, letters LetterRenderer, pdf PDFRenderer) *GenerationService {
	return &GenerationService{
		messages: messages,
		speech:   speech,
		video:    video,
		letters:  letters,
		pdf:      pdf,
	}
}

// Generate runs the pipeline for a letter request and returns all produced
// artifacts. In manual mode the caller-supplied message is used verbatim;
// otherwise the message is drafted from the child profile.
func (s *GenerationService) Generate(ctx context.Context, request models.GenerateLetterRequest) (*models.GenerationResult, error) {
	message := request.Message
	if message == "" {
		if request.Child == nil {
			return nil, fmt.Errorf("either message or child must be provided")
		}
		drafted, err := s.messages.Generate(ctx, *request.Child)
		if err != nil {
			return nil, fmt.Errorf("message generation failed: %w", err)
		}
		message = drafted
	}

	result := &models.GenerationResult{Message: message}

	// Video needs the narration audio even when audio output itself is off
	if request.Outputs.Audio || request.Outputs.Video {
		audio, err := s.speech.Speak(ctx, message, true)
		if err != nil {
			class := ClassifyProviderError(err)
			return nil, fmt.Errorf("speech synthesis failed (%s): %w", RemediationMessage(class), err)
		}
		if request.Outputs.Audio {
			result.Audio = audio
			result.HasAudio = true
		}

		if request.Outputs.Video {
			if s.video == nil {
				return nil, fmt.Errorf("video output requested but video generation is not configured")
			}
			videoURL, err := s.video.Generate(ctx, audio)
			if err != nil {
				return nil, fmt.Errorf("video generation failed: %w", err)
			}
			result.VideoURL = videoURL
		}
	}

	if request.Outputs.Letter {
		formatted := letter.Format(message)
		result.Letter = &formatted

		html, err := s.letters.RenderHTML(formatted)
		if err != nil {
			return nil, fmt.Errorf("letter rendering failed: %w", err)
		}
		result.LetterHTML = html

		pdfData, err := s.pdf.GenerateLetterPDF(&formatted)
		if err != nil {
			// The letter HTML is still useful without the PDF
			log.Printf("WARNING: PDF generation failed: %v", err)
		} else {
			result.PDF = pdfData
			result.HasPDF = true
		}
	}

	return result, nil
}

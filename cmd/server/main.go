package main

import (
	"log"
	"time"

	"github.com/sashabaranov/go-openai"

	"sint-message-service/internal/api"
	"sint-message-service/internal/config"
	"sint-message-service/internal/elevenlabs"
	"sint-message-service/internal/heygen"
	"sint-message-service/internal/letter"
	"sint-message-service/internal/services"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize OpenAI client (message drafting + TTS fallback)
	openaiClient := openai.NewClient(cfg.OpenAI.APIKey)
	messageService := services.NewMessageService(openaiClient, cfg.OpenAI)

	// Initialize speech providers: ElevenLabs primary, OpenAI fallback
	var primary services.Synthesizer
	if cfg.ElevenLabs.Configured() {
		primary = elevenlabs.NewClient(cfg.ElevenLabs)
		log.Printf("ElevenLabs configured as primary speech provider (voice %s)", cfg.ElevenLabs.VoiceID)
	} else {
		log.Printf("ElevenLabs not configured, using OpenAI TTS only")
	}
	speechService := services.NewSpeechService(primary, services.NewOpenAISpeech(openaiClient, cfg.OpenAI))

	// Initialize video pipeline (optional)
	var videoService *services.VideoService
	var heygenClient *heygen.Client
	if cfg.HeyGen.APIKey != "" {
		heygenClient = heygen.NewClient(cfg.HeyGen)
	}
	if cfg.Outputs.Video {
		poller := heygen.NewPoller(heygenClient, cfg.HeyGen.PollInterval)
		videoService = services.NewVideoService(heygenClient, poller, cfg.HeyGen, cfg.Letter.AvatarImagePath)
		log.Printf("Video generation enabled (poll interval %s, timeout %s)", cfg.HeyGen.PollInterval, cfg.HeyGen.PollTimeout)
	} else {
		log.Printf("Video generation disabled")
	}

	// Initialize letter renderers
	letterRenderer := letter.NewRenderer(cfg.Letter.BackgroundImagePath)
	pdfService := services.NewPDFService()

	// Initialize email service (optional)
	var emailService *services.EmailService
	if cfg.Email.APIKey != "" {
		emailService = services.NewEmailService(cfg.Email)
		log.Printf("Email sending enabled (from %s)", cfg.Email.FromEmail)
	} else {
		log.Printf("SendGrid API key not configured, email sending disabled")
	}

	// Orchestrator and task store
	generationService := services.NewGenerationService(messageService, speechService, videoOrNil(videoService), letterRenderer, pdfService)
	taskService := services.NewTaskService(24 * time.Hour)
	if err := taskService.StartJanitor(); err != nil {
		log.Fatalf("Failed to start task janitor: %v", err)
	}
	defer taskService.Stop()

	// Initialize handlers
	handlers := api.NewHandlers(
		generationService,
		messageService,
		speechService,
		taskService,
		emailOrNil(emailService),
		avatarsOrNil(heygenClient),
	)

	// Setup routes
	router := api.SetupRoutes(handlers)

	// Start server
	addr := cfg.Server.Host + ":" + cfg.Server.Port
	log.Printf("Server starting on %s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// Typed-nil guards: a nil *services.VideoService stored in an interface
// would not compare equal to nil inside the consumers.

func videoOrNil(s *services.VideoService) services.Videographer {
	if s == nil {
		return nil
	}
	return s
}

func emailOrNil(s *services.EmailService) api.EmailSender {
	if s == nil {
		return nil
	}
	return s
}

func avatarsOrNil(c *heygen.Client) api.AvatarLister {
	if c == nil {
		return nil
	}
	return c
}

package services

import (
	"context"
	"fmt"
	"log"
	"os"

	"sint-message-service/internal/config"
	"sint-message-service/internal/heygen"
)

// VideoService runs the talking-avatar pipeline: upload the narration audio
// (and the portrait when no studio avatar is configured), start the video
// job, then poll it to completion.
type VideoService struct {
	client *heygen.Client
	poller *heygen.Poller
	cfg    config.HeyGenConfig

	avatarImagePath string
}

// NewVideoService creates a video service
func NewVideoService(client *heygen.Client, poller *heygen.Poller, cfg config.HeyGenConfig, avatarImagePath string) *VideoService {
	return &VideoService{
		client:          client,
		poller:          poller,
		cfg:             cfg,
		avatarImagePath: avatarImagePath,
	}
}

// Generate renders a talking-avatar video for the given audio and returns
// the download URL. The whole pipeline, polling included, is bounded by the
// configured poll timeout.
func (s *VideoService) Generate(ctx context.Context, audio []byte) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.PollTimeout)
	defer cancel()

	audioAssetID, err := s.client.UploadAsset(ctx, audio, "audio/mpeg", "audio")
	if err != nil {
		return "", fmt.Errorf("failed to upload narration audio: %w", err)
	}

	character, err := s.characterConfig(ctx)
	if err != nil {
		return "", err
	}

	videoID, err := s.client.StartVideo(ctx, character, audioAssetID, heygen.VideoOptions{
		Width:  s.cfg.VideoWidth,
		Height: s.cfg.VideoHeight,
	})
	if err != nil {
		return "", fmt.Errorf("failed to start video job: %w", err)
	}

	log.Printf("Video job %s started, polling every %s", videoID, s.cfg.PollInterval)
	return s.poller.Await(ctx, videoID)
}

// characterConfig picks the configured studio avatar, or uploads the
// portrait image for talking-photo mode when none is set
func (s *VideoService) characterConfig(ctx context.Context) (heygen.CharacterConfig, error) {
	if s.cfg.AvatarID != "" {
		return heygen.AvatarCharacter(s.cfg.AvatarID), nil
	}

	image, err := os.ReadFile(s.avatarImagePath)
	if err != nil {
		return heygen.CharacterConfig{}, fmt.Errorf("failed to read avatar image %s: %w", s.avatarImagePath, err)
	}

	imageAssetID, err := s.client.UploadAsset(ctx, image, "image/png", "portrait")
	if err != nil {
		return heygen.CharacterConfig{}, fmt.Errorf("failed to upload avatar image: %w", err)
	}

	return heygen.TalkingPhotoCharacter(imageAssetID), nil
}

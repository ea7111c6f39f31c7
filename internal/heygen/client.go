package heygen

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"net/url"
	"time"

	"sint-message-service/internal/config"
)

// Video job statuses as reported by the provider. Anything else is treated
// as pending and logged (see Poller).
const (
	StatusPending    = "pending"
	StatusProcessing = "processing"
	StatusCompleted  = "completed"
	StatusFailed     = "failed"
)

// Client talks to the HeyGen asset and video APIs
type Client struct {
	apiKey     string
	baseURL    string
	uploadURL  string
	httpClient *http.Client
}

// NewClient creates a HeyGen client from config
func NewClient(cfg config.HeyGenConfig) *Client {
	return &Client{
		apiKey:     cfg.APIKey,
		baseURL:    cfg.BaseURL,
		uploadURL:  cfg.UploadURL,
		httpClient: &http.Client{Timeout: 120 * time.Second},
	}
}

// uploadEncoding describes one way of packaging the asset payload. The
// provider's accepted convention has shifted between API revisions, so the
// candidates are declared as data and tried in order.
type uploadEncoding struct {
	name      string
	fieldName string // multipart field name; empty means raw binary body
}

var uploadEncodings = []uploadEncoding{
	{name: "raw-binary"},
	{name: "multipart/content", fieldName: "content"},
	{name: "multipart/file", fieldName: "file"},
	{name: "multipart/asset", fieldName: "asset"},
	{name: "multipart/data", fieldName: "data"},
}

type assetEnvelope struct {
	Data struct {
		ID string `json:"id"`
	} `json:"data"`
}

// UploadAsset uploads a binary payload to the asset store and returns the
// provider-issued asset ID. Candidate encodings are tried in order; a
// rejection or a success envelope without an ID moves on to the next one.
func (c *Client) UploadAsset(ctx context.Context, payload []byte, contentType, label string) (string, error) {
	if len(payload) == 0 {
		return "", fmt.Errorf("%s: %w", label, ErrEmptyPayload)
	}

	var lastStatus int
	var lastBody string

	for i, enc := range uploadEncodings {
		body, header, err := enc.encode(payload, contentType, label)
		if err != nil {
			return "", fmt.Errorf("failed to encode %s upload: %w", label, err)
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.uploadURL+"/v1/asset", body)
		if err != nil {
			return "", fmt.Errorf("failed to create upload request: %w", err)
		}
		req.Header.Set("X-Api-Key", c.apiKey)
		req.Header.Set("Content-Type", header)

		resp, err := c.httpClient.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return "", ctx.Err()
			}
			log.Printf("WARNING: %s upload attempt %d/%d (%s) failed: %v", label, i+1, len(uploadEncodings), enc.name, err)
			lastBody = err.Error()
			continue
		}

		respBody, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		lastStatus = resp.StatusCode
		lastBody = string(respBody)

		if resp.StatusCode == http.StatusOK {
			var envelope assetEnvelope
			if err := json.Unmarshal(respBody, &envelope); err == nil && envelope.Data.ID != "" {
				return envelope.Data.ID, nil
			}
			log.Printf("WARNING: %s upload attempt %d/%d (%s) returned a success envelope without an asset ID", label, i+1, len(uploadEncodings), enc.name)
			continue
		}

		log.Printf("WARNING: %s upload attempt %d/%d (%s) rejected with status %d", label, i+1, len(uploadEncodings), enc.name, resp.StatusCode)
	}

	return "", &UploadError{
		Label:      label,
		Attempts:   len(uploadEncodings),
		LastStatus: lastStatus,
		LastBody:   lastBody,
	}
}

// encode packages the payload per the encoding and returns the request body
// plus its Content-Type header value
func (e uploadEncoding) encode(payload []byte, contentType, label string) (io.Reader, string, error) {
	if e.fieldName == "" {
		return bytes.NewReader(payload), contentType, nil
	}

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile(e.fieldName, label+extensionFor(contentType))
	if err != nil {
		return nil, "", err
	}
	if _, err := part.Write(payload); err != nil {
		return nil, "", err
	}
	if err := writer.Close(); err != nil {
		return nil, "", err
	}
	return &buf, writer.FormDataContentType(), nil
}

func extensionFor(contentType string) string {
	switch contentType {
	case "audio/mpeg":
		return ".mp3"
	case "image/png":
		return ".png"
	case "image/jpeg":
		return ".jpg"
	default:
		return ".bin"
	}
}

// CharacterConfig selects what appears on screen: a studio avatar or an
// uploaded talking photo
type CharacterConfig struct {
	Type           string `json:"type"`
	AvatarID       string `json:"avatar_id,omitempty"`
	TalkingPhotoID string `json:"talking_photo_id,omitempty"`
}

// AvatarCharacter uses a pre-registered video avatar
func AvatarCharacter(avatarID string) CharacterConfig {
	return CharacterConfig{Type: "avatar", AvatarID: avatarID}
}

// TalkingPhotoCharacter animates an uploaded portrait asset
func TalkingPhotoCharacter(assetID string) CharacterConfig {
	return CharacterConfig{Type: "talking_photo", TalkingPhotoID: assetID}
}

// VideoOptions are passed through to the generate call verbatim
type VideoOptions struct {
	Width  int
	Height int
	Test   bool
}

type videoGenerateRequest struct {
	VideoInputs []videoInput `json:"video_inputs"`
	Test        bool         `json:"test"`
	Dimension   dimension    `json:"dimension"`
}

type videoInput struct {
	Character CharacterConfig `json:"character"`
	Voice     voiceConfig     `json:"voice"`
}

type voiceConfig struct {
	Type         string `json:"type"`
	AudioAssetID string `json:"audio_asset_id"`
}

type dimension struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

type videoGenerateEnvelope struct {
	Data struct {
		VideoID string `json:"video_id"`
	} `json:"data"`
}

// StartVideo submits a video generation job binding the character to the
// uploaded audio asset and returns the job's video ID
func (c *Client) StartVideo(ctx context.Context, character CharacterConfig, audioAssetID string, opts VideoOptions) (string, error) {
	if opts.Width == 0 {
		opts.Width = 1280
	}
	if opts.Height == 0 {
		opts.Height = 720
	}

	reqBody := videoGenerateRequest{
		VideoInputs: []videoInput{
			{
				Character: character,
				Voice:     voiceConfig{Type: "audio", AudioAssetID: audioAssetID},
			},
		},
		Test:      opts.Test,
		Dimension: dimension{Width: opts.Width, Height: opts.Height},
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal generate request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v2/video/generate", bytes.NewReader(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create generate request: %w", err)
	}
	req.Header.Set("X-Api-Key", c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("generate request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return "", &JobStartError{StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	var envelope videoGenerateEnvelope
	if err := json.Unmarshal(respBody, &envelope); err != nil || envelope.Data.VideoID == "" {
		return "", &JobStartError{StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	return envelope.Data.VideoID, nil
}

// VideoStatus is one observation of a video job
type VideoStatus struct {
	Status   string `json:"status"`
	VideoURL string `json:"video_url"`
	Error    string `json:"error"`
}

type videoStatusEnvelope struct {
	Data VideoStatus `json:"data"`
}

// GetVideoStatus queries the current state of a video job
func (c *Client) GetVideoStatus(ctx context.Context, videoID string) (VideoStatus, error) {
	statusURL := c.baseURL + "/v1/video_status.get?video_id=" + url.QueryEscape(videoID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, statusURL, nil)
	if err != nil {
		return VideoStatus{}, fmt.Errorf("failed to create status request: %w", err)
	}
	req.Header.Set("X-Api-Key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return VideoStatus{}, fmt.Errorf("status request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return VideoStatus{}, fmt.Errorf("status request returned %d: %s", resp.StatusCode, string(respBody))
	}

	var envelope videoStatusEnvelope
	if err := json.Unmarshal(respBody, &envelope); err != nil {
		return VideoStatus{}, fmt.Errorf("failed to parse status response: %w", err)
	}

	return envelope.Data, nil
}

// ListAvatars returns the provider's avatar catalog as raw JSON, for
// operator configuration of HEYGEN_AVATAR_ID
func (c *Client) ListAvatars(ctx context.Context) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/v2/avatars", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create avatars request: %w", err)
	}
	req.Header.Set("X-Api-Key", c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("avatars request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read avatars response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("avatars request returned %d: %s", resp.StatusCode, string(respBody))
	}

	return json.RawMessage(respBody), nil
}

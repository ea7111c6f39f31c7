package heygen

import (
	"errors"
	"fmt"
)

// ErrEmptyPayload is returned when an upload is attempted with no data.
// That is a caller bug, not a provider failure.
var ErrEmptyPayload = errors.New("empty asset payload")

// UploadError is returned when every candidate upload encoding was rejected.
// LastBody carries the provider's final response verbatim.
type UploadError struct {
	Label      string
	Attempts   int
	LastStatus int
	LastBody   string
}

func (e *UploadError) Error() string {
	return fmt.Sprintf("%s upload rejected after %d attempts (last status %d): %s",
		e.Label, e.Attempts, e.LastStatus, e.LastBody)
}

// JobStartError is returned when the video generate call fails or the
// success envelope is missing a video ID. There are no retries at this
// layer; the caller decides whether to rerun the pipeline.
type JobStartError struct {
	StatusCode int
	Body       string
}

func (e *JobStartError) Error() string {
	return fmt.Sprintf("video generation start failed (status %d): %s", e.StatusCode, e.Body)
}

// ProviderFailure is returned when a video job reaches the failed state.
// Message is the provider's error text verbatim.
type ProviderFailure struct {
	VideoID string
	Message string
}

func (e *ProviderFailure) Error() string {
	return fmt.Sprintf("video %s failed: %s", e.VideoID, e.Message)
}

package services

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"sint-message-service/internal/elevenlabs"
)

func TestClassifyProviderErrorByStatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want FailureClass
	}{
		{"unauthorized", &elevenlabs.APIError{StatusCode: 401, Body: "invalid key"}, FailureAuth},
		{"forbidden", &elevenlabs.APIError{StatusCode: 403, Body: "nope"}, FailureAuth},
		{"voice missing", &elevenlabs.APIError{StatusCode: 404, Body: "voice not found"}, FailureMissingResource},
		{"rate limited", &elevenlabs.APIError{StatusCode: 429, Body: "too many requests"}, FailureRateLimit},
		{"quota exhausted", &elevenlabs.APIError{StatusCode: 429, Body: "quota_exceeded"}, FailureQuota},
		{"wrapped api error", fmt.Errorf("speak: %w", &elevenlabs.APIError{StatusCode: 401, Body: ""}), FailureAuth},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyProviderError(tt.err))
		})
	}
}

func TestClassifyProviderErrorByMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want FailureClass
	}{
		{"auth text", errors.New("request failed: 401 Unauthorized"), FailureAuth},
		{"quota text", errors.New("you exceeded your current quota"), FailureQuota},
		{"rate limit text", errors.New("429 rate limit reached"), FailureRateLimit},
		{"missing text", errors.New("model not found"), FailureMissingResource},
		{"anything else", errors.New("connection reset by peer"), FailureGeneric},
		{"nil", nil, FailureGeneric},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyProviderError(tt.err))
		})
	}
}

func TestRemediationMessages(t *testing.T) {
	classes := []FailureClass{FailureAuth, FailureMissingResource, FailureRateLimit, FailureQuota, FailureGeneric}
	seen := map[string]bool{}
	for _, class := range classes {
		msg := RemediationMessage(class)
		assert.NotEmpty(t, msg)
		assert.False(t, seen[msg], "remediation for %s duplicates another class", class)
		seen[msg] = true
	}
}

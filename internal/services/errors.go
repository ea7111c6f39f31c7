package services

import (
	"errors"
	"fmt"
	"strings"

	"sint-message-service/internal/elevenlabs"
)

// ErrNoProvider is returned when no speech provider at all is configured
var ErrNoProvider = errors.New("no speech provider configured")

// NoFallbackError wraps a primary provider failure that could not be
// retried because no secondary provider is configured
type NoFallbackError struct {
	Provider string
	Err      error
}

func (e *NoFallbackError) Error() string {
	return fmt.Sprintf("%s failed and no fallback provider is configured: %v", e.Provider, e.Err)
}

func (e *NoFallbackError) Unwrap() error { return e.Err }

// FailureClass groups provider failures by the remediation an operator
// needs to take
type FailureClass string

const (
	FailureAuth            FailureClass = "authentication"
	FailureMissingResource FailureClass = "missing_resource"
	FailureRateLimit       FailureClass = "rate_limit"
	FailureQuota           FailureClass = "quota"
	FailureGeneric         FailureClass = "generic"
)

// ClassifyProviderError maps a provider error onto a remediation class
func ClassifyProviderError(err error) FailureClass {
	if err == nil {
		return FailureGeneric
	}

	var apiErr *elevenlabs.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.StatusCode {
		case 401, 403:
			return FailureAuth
		case 404:
			return FailureMissingResource
		case 429:
			if strings.Contains(strings.ToLower(apiErr.Body), "quota") {
				return FailureQuota
			}
			return FailureRateLimit
		}
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "401") || strings.Contains(msg, "unauthorized") || strings.Contains(msg, "invalid api key"):
		return FailureAuth
	case strings.Contains(msg, "quota"):
		return FailureQuota
	case strings.Contains(msg, "429") || strings.Contains(msg, "rate limit"):
		return FailureRateLimit
	case strings.Contains(msg, "404") || strings.Contains(msg, "not found"):
		return FailureMissingResource
	default:
		return FailureGeneric
	}
}

// RemediationMessage returns the operator-facing guidance for a failure class
func RemediationMessage(class FailureClass) string {
	switch class {
	case FailureAuth:
		return "authentication failed: check the provider API key in the environment"
	case FailureMissingResource:
		return "resource not found: check the configured voice or avatar ID"
	case FailureRateLimit:
		return "provider rate limit reached: retry in a few minutes"
	case FailureQuota:
		return "provider quota exhausted: the account has insufficient credits"
	default:
		return "generation failed: see the error detail"
	}
}

// Package insight answers free-text questions through an AI completion
// service. Every failure mode comes back as a human-readable answer
// string, so callers never need an error path.
package insight

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/cryptobuddy/advisor/internal/clients/deepseek"
)

// NotConfiguredAnswer is returned when no API credential is configured.
// No network call is attempted in that case.
const NotConfiguredAnswer = "API key not configured"

// ChatClient is the completion call the service depends on.
type ChatClient interface {
	ChatCompletion(ctx context.Context, question string) (string, error)
}

// Service turns questions into AI answers
type Service struct {
	client ChatClient
	log    zerolog.Logger
}

// NewService creates an insight service. Pass a nil client when no
// credential is configured.
func NewService(client ChatClient, log zerolog.Logger) *Service {
	return &Service{
		client: client,
		log:    log.With().Str("service", "insight").Logger(),
	}
}

// Configured reports whether a completion client is wired in.
func (s *Service) Configured() bool {
	return s.client != nil
}

// Ask returns the AI's answer to the question. On any failure the
// returned string describes what went wrong.
func (s *Service) Ask(ctx context.Context, question string) string {
	if s.client == nil {
		return NotConfiguredAnswer
	}

	answer, err := s.client.ChatCompletion(ctx, question)
	if err != nil {
		s.log.Warn().Err(err).Msg("AI insight request failed")

		var formatErr *deepseek.FormatError
		if errors.As(err, &formatErr) {
			return "Unexpected API response format: " + formatErr.Body
		}
		return "API request failed: " + err.Error()
	}

	return answer
}

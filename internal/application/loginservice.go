// Package application contains use-case orchestration services.
package application

import (
	"context"
	"log/slog"

	"github.com/ericfisherdev/canvascal/internal/domain/model"
	"github.com/ericfisherdev/canvascal/internal/domain/port/driven"
	"github.com/ericfisherdev/canvascal/internal/domain/port/driving"
)

// LoginService collects a Canvas API key from the user and submits it to the
// external login service.
type LoginService struct {
	api    driven.LoginAPI
	logger *slog.Logger
}

// NewLoginService creates a LoginService.
func NewLoginService(api driven.LoginAPI, logger *slog.Logger) *LoginService {
	return &LoginService{api: api, logger: logger}
}

// CollectAPIKey asks the user for an API key. The second return value is
// false when the prompt was cancelled or answered with an empty string.
func (s *LoginService) CollectAPIKey(ctx context.Context, p driving.Prompter) (model.APIKey, bool) {
	answer, ok := p.Prompt(ctx, model.PromptAPIKey)
	return model.CollectAPIKey(answer, ok)
}

// Submit sends key to the login endpoint exactly once and classifies the
// result. Transport failures are logged; their detail stays out of the
// user-facing message.
func (s *LoginService) Submit(ctx context.Context, key model.APIKey) model.LoginResult {
	status, err := s.api.SubmitAPIKey(ctx, key)
	if err != nil {
		s.logger.Error("error during login", "error", err)
		return model.LoginResult{Outcome: model.LoginTransportError, Err: err}
	}

	if !model.IsSuccessStatus(status) {
		s.logger.Warn("login rejected", "status", status)
		return model.LoginResult{Outcome: model.LoginRejected, StatusCode: status}
	}

	s.logger.Info("login successful", "status", status)
	return model.LoginResult{Outcome: model.LoginSucceeded, StatusCode: status}
}

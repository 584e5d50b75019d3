// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"walletportal/internal/domain/entity"
)

// AuthFlowUsecase drives the two-step email login of one client session.
// Every method returns the state snapshot after the action, also on error.
type AuthFlowUsecase interface {
	SubmitEmail(ctx context.Context, email string) (entity.AuthFlowState, error)
	SubmitCode(ctx context.Context, code string) (entity.AuthFlowState, error)
	Back() entity.AuthFlowState
	State() entity.AuthFlowState

	// Reset returns the form to its initial state and abandons any call in flight.
	Reset()
}

// AuthSuccessFunc receives the completed session once the token has been stored.
type AuthSuccessFunc func(ctx context.Context, session entity.AuthSession)

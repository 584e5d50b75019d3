// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	deliverycontext "walletportal/internal/delivery/context"
	"walletportal/internal/domain/entity"
	domainerrors "walletportal/internal/domain/errors"
	"walletportal/internal/domain/repository"
	"walletportal/internal/domain/service"
	"walletportal/internal/usecase"

	"github.com/pkg/errors"
)

// authFlow implements the AuthFlowUsecase interface.
type authFlow struct {
	provider  service.WalletProvider
	tokens    repository.TokenRepository
	tokenKey  string
	onSuccess usecase.AuthSuccessFunc
	logger    *slog.Logger

	mu    sync.Mutex
	state entity.AuthFlowState
	// generation changes on Reset so a late provider answer for an abandoned form is dropped.
	generation uint64
}

// NewAuthFlow is the constructor for authFlow. The token is stored under tokenKey before onSuccess runs.
func NewAuthFlow(
	provider service.WalletProvider,
	tokens repository.TokenRepository,
	tokenKey string,
	onSuccess usecase.AuthSuccessFunc,
	logger *slog.Logger,
) usecase.AuthFlowUsecase {
	return &authFlow{
		provider:  provider,
		tokens:    tokens,
		tokenKey:  tokenKey,
		onSuccess: onSuccess,
		logger:    logger,
		state:     entity.AuthFlowState{Step: entity.AuthStepInitiate},
	}
}

func (f *authFlow) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, f.logger)
}

// SubmitEmail requests a one-time code for email.
func (f *authFlow) SubmitEmail(ctx context.Context, email string) (entity.AuthFlowState, error) {
	email = strings.TrimSpace(email)

	f.mu.Lock()
	if err := f.checkStep(entity.AuthStepInitiate); err != nil {
		defer f.mu.Unlock()

		return f.state, err
	}
	if !entity.IsValidEmail(email) {
		defer f.mu.Unlock()
		f.state.Error = domainerrors.ErrInvalidEmail.Message()

		return f.state, domainerrors.ErrInvalidEmail
	}
	gen := f.begin()
	f.mu.Unlock()

	_, err := f.provider.InitiateAuth(ctx, email)

	f.mu.Lock()
	defer f.mu.Unlock()

	if gen != f.generation {
		return f.state, nil
	}
	f.state.Busy = false

	if err != nil {
		f.state.Error = domainerrors.UserMessage(err)
		f.log(ctx).Info("Code request failed", slog.String("reason", err.Error()))

		return f.state, errors.WithStack(err)
	}

	f.state.Step = entity.AuthStepVerify
	f.state.Email = email
	f.log(ctx).Debug("Verification code sent")

	return f.state, nil
}

// SubmitCode completes the login with the one-time code.
func (f *authFlow) SubmitCode(ctx context.Context, code string) (entity.AuthFlowState, error) {
	code = strings.TrimSpace(code)

	f.mu.Lock()
	if err := f.checkStep(entity.AuthStepVerify); err != nil {
		defer f.mu.Unlock()

		return f.state, err
	}
	if code == "" {
		defer f.mu.Unlock()
		f.state.Error = domainerrors.ErrEmptyCode.Message()

		return f.state, domainerrors.ErrEmptyCode
	}
	gen := f.begin()
	email := f.state.Email
	f.mu.Unlock()

	session, err := f.provider.CompleteAuth(ctx, email, code)

	f.mu.Lock()
	if gen != f.generation {
		// The form was reset mid-call. Its token is never stored.
		defer f.mu.Unlock()

		return f.state, nil
	}
	f.state.Busy = false

	if err == nil {
		// Saved under mu so a Reset, and the logout that follows it, cannot interleave.
		err = f.tokens.Save(ctx, f.tokenKey, session.Token)
	}
	if err != nil {
		defer f.mu.Unlock()
		f.state.Error = domainerrors.UserMessage(err)
		f.log(ctx).Info("Code verification failed", slog.String("reason", err.Error()))

		return f.state, errors.WithStack(err)
	}

	f.state = entity.AuthFlowState{Step: entity.AuthStepInitiate}
	snapshot := f.state
	f.mu.Unlock()

	f.log(ctx).Info("Signed in", slog.Bool("isNewUser", session.IsNewUser), slog.String("type", session.Type))

	if f.onSuccess != nil {
		f.onSuccess(ctx, *session)
	}

	return snapshot, nil
}

// Back returns to the email step. It is ignored while a request is in flight.
func (f *authFlow) Back() entity.AuthFlowState {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state.Busy {
		return f.state
	}
	f.state = entity.AuthFlowState{Step: entity.AuthStepInitiate}

	return f.state
}

func (f *authFlow) State() entity.AuthFlowState {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.state
}

func (f *authFlow) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.generation++
	f.state = entity.AuthFlowState{Step: entity.AuthStepInitiate}
}

// checkStep must be called with mu held.
func (f *authFlow) checkStep(step entity.AuthStep) error {
	if f.state.Busy {
		return domainerrors.ErrActionInFlight
	}
	if f.state.Step != step {
		return domainerrors.ErrInvalidAuthStep
	}

	return nil
}

// begin marks a call in flight and must be called with mu held.
func (f *authFlow) begin() uint64 {
	f.state.Error = ""
	f.state.Busy = true

	return f.generation
}

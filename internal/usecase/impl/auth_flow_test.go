package impl

import (
	"context"
	"net/http"
	"sync/atomic"
	"testing"

	"walletportal/internal/domain/entity"
	domainerrors "walletportal/internal/domain/errors"
	"walletportal/internal/infra/persistence/memory"
	mockRepo "walletportal/internal/mocks/repository"
	mockService "walletportal/internal/mocks/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAuthFlow_SubmitEmail_Success(t *testing.T) {
	provider := mockService.NewMockWalletProvider(t)
	tokens := mockRepo.NewMockTokenRepository(t)
	flow := NewAuthFlow(provider, tokens, testTokenKey, nil, newDiscardLogger())
	ctx := context.Background()

	provider.EXPECT().InitiateAuth(ctx, "a@b.com").
		Return(&entity.InitiateAuthResult{Method: entity.AuthMethodEmail, Success: true}, nil)

	state, err := flow.SubmitEmail(ctx, "  a@b.com ")

	require.NoError(t, err)
	assert.Equal(t, entity.AuthFlowState{Step: entity.AuthStepVerify, Email: "a@b.com"}, state)
}

func TestAuthFlow_SubmitEmail_InvalidEmailNeverCallsProvider(t *testing.T) {
	provider := mockService.NewMockWalletProvider(t)
	flow := NewAuthFlow(provider, mockRepo.NewMockTokenRepository(t), testTokenKey, nil, newDiscardLogger())

	state, err := flow.SubmitEmail(context.Background(), "not-an-email")

	assert.ErrorIs(t, err, domainerrors.ErrInvalidEmail)
	assert.Equal(t, entity.AuthStepInitiate, state.Step)
	assert.Equal(t, "Please enter a valid email address", state.Error)
	provider.AssertNotCalled(t, "InitiateAuth", mock.Anything, mock.Anything)
}

func TestAuthFlow_SubmitEmail_ProviderFailure(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		message string
	}{
		{
			name:    "provider message",
			err:     domainerrors.NewProviderError("initiate_auth", http.StatusBadRequest, "", "Email rejected"),
			message: "Email rejected",
		},
		{
			name:    "unknown error",
			err:     assert.AnError,
			message: "An error occurred",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := mockService.NewMockWalletProvider(t)
			flow := NewAuthFlow(provider, mockRepo.NewMockTokenRepository(t), testTokenKey, nil, newDiscardLogger())
			ctx := context.Background()

			provider.EXPECT().InitiateAuth(ctx, "a@b.com").Return(nil, tt.err)

			state, err := flow.SubmitEmail(ctx, "a@b.com")

			assert.Error(t, err)
			assert.Equal(t, entity.AuthStepInitiate, state.Step)
			assert.Equal(t, tt.message, state.Error)
			assert.False(t, state.Busy)
		})
	}
}

func TestAuthFlow_SubmitCode_Success(t *testing.T) {
	provider := mockService.NewMockWalletProvider(t)
	tokens := mockRepo.NewMockTokenRepository(t)
	ctx := context.Background()

	var calls atomic.Int32
	var got entity.AuthSession
	flow := NewAuthFlow(provider, tokens, testTokenKey, func(_ context.Context, s entity.AuthSession) {
		calls.Add(1)
		got = s
	}, newDiscardLogger())

	session := &entity.AuthSession{Token: "tok_abc", WalletAddress: "0xAA..11", IsNewUser: true, Type: "email"}
	provider.EXPECT().InitiateAuth(ctx, "a@b.com").Return(&entity.InitiateAuthResult{Success: true}, nil)
	provider.EXPECT().CompleteAuth(ctx, "a@b.com", "123456").Return(session, nil)
	tokens.EXPECT().Save(ctx, testTokenKey, "tok_abc").Return(nil)

	_, err := flow.SubmitEmail(ctx, "a@b.com")
	require.NoError(t, err)

	state, err := flow.SubmitCode(ctx, "123456")

	require.NoError(t, err)
	assert.Equal(t, entity.AuthFlowState{Step: entity.AuthStepInitiate}, state, "form resets after success")
	assert.Equal(t, int32(1), calls.Load())
	assert.Equal(t, *session, got)
}

func TestAuthFlow_SubmitCode_EmptyCode(t *testing.T) {
	provider := mockService.NewMockWalletProvider(t)
	flow := NewAuthFlow(provider, mockRepo.NewMockTokenRepository(t), testTokenKey, nil, newDiscardLogger())
	ctx := context.Background()

	provider.EXPECT().InitiateAuth(ctx, "a@b.com").Return(&entity.InitiateAuthResult{Success: true}, nil)
	_, err := flow.SubmitEmail(ctx, "a@b.com")
	require.NoError(t, err)

	state, err := flow.SubmitCode(ctx, "   ")

	assert.ErrorIs(t, err, domainerrors.ErrEmptyCode)
	assert.Equal(t, entity.AuthStepVerify, state.Step)
	assert.Equal(t, "Please enter the verification code", state.Error)
}

func TestAuthFlow_SubmitCode_FailureStaysInVerify(t *testing.T) {
	provider := mockService.NewMockWalletProvider(t)
	called := false
	flow := NewAuthFlow(provider, mockRepo.NewMockTokenRepository(t), testTokenKey,
		func(context.Context, entity.AuthSession) { called = true }, newDiscardLogger())
	ctx := context.Background()

	provider.EXPECT().InitiateAuth(ctx, "a@b.com").Return(&entity.InitiateAuthResult{Success: true}, nil)
	provider.EXPECT().CompleteAuth(ctx, "a@b.com", "000000").
		Return(nil, domainerrors.NewProviderError("complete_auth", http.StatusUnauthorized, "", "Invalid code"))

	_, err := flow.SubmitEmail(ctx, "a@b.com")
	require.NoError(t, err)

	state, err := flow.SubmitCode(ctx, "000000")

	assert.Error(t, err)
	assert.Equal(t, entity.AuthStepVerify, state.Step)
	assert.Equal(t, "a@b.com", state.Email)
	assert.Equal(t, "Invalid code", state.Error)
	assert.False(t, called)
}

func TestAuthFlow_SubmitCode_TokenSaveFailureSkipsCallback(t *testing.T) {
	provider := mockService.NewMockWalletProvider(t)
	tokens := mockRepo.NewMockTokenRepository(t)
	called := false
	flow := NewAuthFlow(provider, tokens, testTokenKey,
		func(context.Context, entity.AuthSession) { called = true }, newDiscardLogger())
	ctx := context.Background()

	provider.EXPECT().InitiateAuth(ctx, "a@b.com").Return(&entity.InitiateAuthResult{Success: true}, nil)
	provider.EXPECT().CompleteAuth(ctx, "a@b.com", "123456").Return(&entity.AuthSession{Token: "tok_abc"}, nil)
	tokens.EXPECT().Save(ctx, testTokenKey, "tok_abc").
		Return(domainerrors.NewDatabaseExecuteError(assert.AnError, "failed to save token"))

	_, err := flow.SubmitEmail(ctx, "a@b.com")
	require.NoError(t, err)

	state, err := flow.SubmitCode(ctx, "123456")

	assert.Error(t, err)
	assert.False(t, called)
	assert.Equal(t, entity.AuthStepVerify, state.Step)
	assert.Equal(t, "Token storage is unavailable", state.Error)
}

func TestAuthFlow_WrongStep(t *testing.T) {
	flow := NewAuthFlow(mockService.NewMockWalletProvider(t), mockRepo.NewMockTokenRepository(t), testTokenKey, nil, newDiscardLogger())

	_, err := flow.SubmitCode(context.Background(), "123456")

	assert.ErrorIs(t, err, domainerrors.ErrInvalidAuthStep)
}

func TestAuthFlow_BusyGating(t *testing.T) {
	provider := mockService.NewMockWalletProvider(t)
	flow := NewAuthFlow(provider, mockRepo.NewMockTokenRepository(t), testTokenKey, nil, newDiscardLogger())
	ctx := context.Background()

	entered := make(chan struct{})
	release := make(chan struct{})
	provider.EXPECT().InitiateAuth(ctx, "a@b.com").
		RunAndReturn(func(context.Context, string) (*entity.InitiateAuthResult, error) {
			close(entered)
			<-release

			return &entity.InitiateAuthResult{Success: true}, nil
		}).Once()

	done := make(chan entity.AuthFlowState)
	go func() {
		state, _ := flow.SubmitEmail(ctx, "a@b.com")
		done <- state
	}()
	<-entered

	assert.True(t, flow.State().Busy)

	_, err := flow.SubmitEmail(ctx, "a@b.com")
	assert.ErrorIs(t, err, domainerrors.ErrActionInFlight)

	backState := flow.Back()
	assert.True(t, backState.Busy, "back is ignored while busy")

	close(release)
	final := <-done
	assert.Equal(t, entity.AuthStepVerify, final.Step)
	assert.False(t, final.Busy)
}

func TestAuthFlow_Back(t *testing.T) {
	provider := mockService.NewMockWalletProvider(t)
	flow := NewAuthFlow(provider, mockRepo.NewMockTokenRepository(t), testTokenKey, nil, newDiscardLogger())
	ctx := context.Background()

	provider.EXPECT().InitiateAuth(ctx, "a@b.com").Return(&entity.InitiateAuthResult{Success: true}, nil)
	_, err := flow.SubmitEmail(ctx, "a@b.com")
	require.NoError(t, err)
	_, _ = flow.SubmitCode(ctx, "")

	state := flow.Back()

	assert.Equal(t, entity.AuthFlowState{Step: entity.AuthStepInitiate}, state)
}

func TestAuthFlow_ResetDuringCompleteDropsToken(t *testing.T) {
	provider := mockService.NewMockWalletProvider(t)
	tokens := memory.NewTokenRepository()
	called := false
	flow := NewAuthFlow(provider, tokens, testTokenKey,
		func(context.Context, entity.AuthSession) { called = true }, newDiscardLogger())
	ctx := context.Background()

	provider.EXPECT().InitiateAuth(ctx, "a@b.com").Return(&entity.InitiateAuthResult{Success: true}, nil)
	provider.EXPECT().CompleteAuth(ctx, "a@b.com", "123456").
		RunAndReturn(func(context.Context, string, string) (*entity.AuthSession, error) {
			flow.Reset()

			return &entity.AuthSession{Token: "tok_abc"}, nil
		})

	_, err := flow.SubmitEmail(ctx, "a@b.com")
	require.NoError(t, err)

	state, err := flow.SubmitCode(ctx, "123456")

	require.NoError(t, err)
	assert.False(t, called)
	assert.Equal(t, entity.AuthStepInitiate, state.Step)
	_, err = tokens.Find(ctx, testTokenKey)
	assert.Error(t, err, "an abandoned sign-in leaves no token behind")
}

func TestAuthFlow_LateCompleteKeepsNewerToken(t *testing.T) {
	provider := mockService.NewMockWalletProvider(t)
	tokens := memory.NewTokenRepository()
	flow := NewAuthFlow(provider, tokens, testTokenKey, nil, newDiscardLogger())
	ctx := context.Background()

	entered := make(chan struct{})
	release := make(chan struct{})
	provider.EXPECT().InitiateAuth(ctx, "a@b.com").Return(&entity.InitiateAuthResult{Success: true}, nil)
	provider.EXPECT().CompleteAuth(ctx, "a@b.com", "123456").
		RunAndReturn(func(context.Context, string, string) (*entity.AuthSession, error) {
			close(entered)
			<-release

			return &entity.AuthSession{Token: "tok_stale"}, nil
		}).Once()

	_, err := flow.SubmitEmail(ctx, "a@b.com")
	require.NoError(t, err)

	done := make(chan error)
	go func() {
		_, err := flow.SubmitCode(ctx, "123456")
		done <- err
	}()
	<-entered

	flow.Reset()
	require.NoError(t, tokens.Save(ctx, testTokenKey, "tok_newer"))

	close(release)
	require.NoError(t, <-done)

	token, err := tokens.Find(ctx, testTokenKey)
	require.NoError(t, err)
	assert.Equal(t, "tok_newer", token)
	assert.Equal(t, entity.AuthStepInitiate, flow.State().Step)
}

package main

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"testing"

	"walletportal/config"
	"walletportal/internal/domain/entity"
	domainerrors "walletportal/internal/domain/errors"
	mockService "walletportal/internal/mocks/service"
	"walletportal/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const signedInAddress = "0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa11"

func newTestApp(t *testing.T, provider *mockService.MockWalletProvider) (*app, *strings.Builder, *strings.Builder) {
	t.Helper()

	var out, errOut strings.Builder
	p, err := newPrinter(&out, &errOut, "text")
	require.NoError(t, err)

	cfg := &config.Config{}
	cfg.Directory.PageSize = 2
	cfg.TokenStore.Key = config.DefaultTokenStorageKey

	return &app{
		cfg:      cfg,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		provider: provider,
		out:      p,
	}, &out, &errOut
}

func expectSignIn(provider *mockService.MockWalletProvider) {
	provider.EXPECT().InitiateAuth(mock.Anything, "a@b.com").
		Return(&entity.InitiateAuthResult{Method: entity.AuthMethodEmail, Success: true}, nil)
	provider.EXPECT().CompleteAuth(mock.Anything, "a@b.com", "123456").
		Return(&entity.AuthSession{Token: "tok_abc", WalletAddress: signedInAddress, Type: "email"}, nil)
	provider.EXPECT().GetWalletInfo(mock.Anything, "tok_abc").
		Return(&entity.WalletInfo{Address: signedInAddress, CreatedAt: "2024-05-01T10:00:00Z"}, nil)
}

func TestRunLogin_SignInAndBrowse(t *testing.T) {
	provider := mockService.NewMockWalletProvider(t)
	expectSignIn(provider)
	provider.EXPECT().GetAllUsers(mock.Anything, 2, 1).
		Return(&entity.UsersPage{
			Pagination: entity.Pagination{Page: 1, Limit: 2, HasMore: true},
			Wallets:    []entity.WalletInfo{{Address: "0x01"}, {Address: "0x02"}},
		}, nil).Once()
	provider.EXPECT().GetAllUsers(mock.Anything, 2, 2).
		Return(&entity.UsersPage{
			Pagination: entity.Pagination{Page: 2, Limit: 2, HasMore: false},
			Wallets:    []entity.WalletInfo{{Address: "0x03"}},
		}, nil).Once()

	a, out, errOut := newTestApp(t, provider)
	input := strings.Join([]string{"not-an-email", "a@b.com", "123456", "users", "more", "more", "quit"}, "\n")

	require.NoError(t, a.runLogin(context.Background(), strings.NewReader(input)))

	assert.Contains(t, errOut.String(), "Please enter a valid email address")
	assert.Contains(t, errOut.String(), "Signed in")
	assert.Contains(t, errOut.String(), "No more users")
	assert.Contains(t, out.String(), util.FormatAddress(signedInAddress))
	assert.Contains(t, out.String(), "2024-05-01")
	assert.Contains(t, out.String(), "page 2, 2 per page, last page")
	provider.AssertNumberOfCalls(t, "InitiateAuth", 1)
}

func TestRunLogin_BackToEmail(t *testing.T) {
	provider := mockService.NewMockWalletProvider(t)
	provider.EXPECT().InitiateAuth(mock.Anything, "old@b.com").
		Return(&entity.InitiateAuthResult{Success: true}, nil)
	expectSignIn(provider)

	a, _, _ := newTestApp(t, provider)
	input := strings.Join([]string{"old@b.com", "back", "a@b.com", "123456", "exit"}, "\n")

	require.NoError(t, a.runLogin(context.Background(), strings.NewReader(input)))
}

func TestRunLogin_WrongCodeThenLogout(t *testing.T) {
	provider := mockService.NewMockWalletProvider(t)
	provider.EXPECT().CompleteAuth(mock.Anything, "a@b.com", "000000").
		Return(nil, domainerrors.NewProviderError("completeAuth", http.StatusBadRequest, "", "Invalid code")).Once()
	expectSignIn(provider)

	a, _, errOut := newTestApp(t, provider)
	input := strings.Join([]string{"a@b.com", "000000", "123456", "logout"}, "\n")

	require.NoError(t, a.runLogin(context.Background(), strings.NewReader(input)))

	assert.Contains(t, errOut.String(), "Invalid code")
	assert.Contains(t, errOut.String(), "Signed out")
}

func TestRunLogin_SearchValidation(t *testing.T) {
	provider := mockService.NewMockWalletProvider(t)
	expectSignIn(provider)

	a, _, errOut := newTestApp(t, provider)
	input := strings.Join([]string{"a@b.com", "123456", "find nickname bob", "find", "bogus", "quit"}, "\n")

	require.NoError(t, a.runLogin(context.Background(), strings.NewReader(input)))

	assert.Contains(t, errOut.String(), "Search by address, email, phone, externalWalletAddress or id")
	assert.Contains(t, errOut.String(), "Usage: find <field> <value>")
	assert.Contains(t, errOut.String(), "Unknown command bogus")
	provider.AssertNotCalled(t, "GetSingleUser", mock.Anything, mock.Anything)
}

func TestRunLogin_EndOfInput(t *testing.T) {
	provider := mockService.NewMockWalletProvider(t)
	a, _, _ := newTestApp(t, provider)

	require.NoError(t, a.runLogin(context.Background(), strings.NewReader("")))
}

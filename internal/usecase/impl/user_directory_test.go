package impl

import (
	"context"
	"testing"

	"walletportal/internal/domain/entity"
	domainerrors "walletportal/internal/domain/errors"
	mockService "walletportal/internal/mocks/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUserDirectory_InitialState(t *testing.T) {
	dir := NewUserDirectory(mockService.NewMockWalletProvider(t), 0, newDiscardLogger())

	state := dir.State()

	assert.Equal(t, entity.DirectoryModeList, state.Mode)
	assert.Empty(t, state.Wallets)
	assert.Equal(t, entity.Pagination{Page: 1, Limit: entity.DefaultPageSize}, state.Pagination)
	assert.Equal(t, entity.QueryByEmail, state.SearchField)
}

func TestUserDirectory_ActivateThenLoadMoreAppends(t *testing.T) {
	provider := mockService.NewMockWalletProvider(t)
	dir := NewUserDirectory(provider, 20, newDiscardLogger())
	ctx := context.Background()

	first := testWallets(0, 20)
	second := testWallets(20, 5)
	provider.EXPECT().GetAllUsers(ctx, 20, 1).Return(&entity.UsersPage{
		Pagination: entity.Pagination{Page: 1, Limit: 20, HasMore: true},
		Wallets:    first,
	}, nil).Once()
	provider.EXPECT().GetAllUsers(ctx, 20, 2).Return(&entity.UsersPage{
		Pagination: entity.Pagination{Page: 2, Limit: 20, HasMore: false},
		Wallets:    second,
	}, nil).Once()

	state, err := dir.Activate(ctx)
	require.NoError(t, err)
	assert.Len(t, state.Wallets, 20)

	state, err = dir.LoadMore(ctx)
	require.NoError(t, err)

	assert.Equal(t, append(append([]entity.WalletInfo{}, first...), second...), state.Wallets)
	assert.Equal(t, entity.Pagination{Page: 2, Limit: 20, HasMore: false}, state.Pagination)

	// No further pages: nothing is fetched.
	state, err = dir.LoadMore(ctx)
	require.NoError(t, err)
	assert.Len(t, state.Wallets, 25)
}

func TestUserDirectory_LoadMoreWithoutMorePages(t *testing.T) {
	provider := mockService.NewMockWalletProvider(t)
	dir := NewUserDirectory(provider, 20, newDiscardLogger())

	state, err := dir.LoadMore(context.Background())

	require.NoError(t, err)
	assert.Empty(t, state.Wallets)
	provider.AssertNotCalled(t, "GetAllUsers", mock.Anything, mock.Anything, mock.Anything)
}

func TestUserDirectory_RefreshFailureKeepsWallets(t *testing.T) {
	provider := mockService.NewMockWalletProvider(t)
	dir := NewUserDirectory(provider, 20, newDiscardLogger())
	ctx := context.Background()

	held := testWallets(0, 3)
	provider.EXPECT().GetAllUsers(ctx, 20, 1).Return(&entity.UsersPage{
		Pagination: entity.Pagination{Page: 1, Limit: 20},
		Wallets:    held,
	}, nil).Once()
	provider.EXPECT().GetAllUsers(ctx, 20, 1).Return(nil, assert.AnError).Once()

	_, err := dir.Refresh(ctx)
	require.NoError(t, err)

	state, err := dir.Refresh(ctx)

	assert.Error(t, err)
	assert.Equal(t, held, state.Wallets)
	assert.Equal(t, domainerrors.DefaultUserMessage, state.Error)
	assert.False(t, state.Busy)
}

func TestUserDirectory_Search(t *testing.T) {
	provider := mockService.NewMockWalletProvider(t)
	dir := NewUserDirectory(provider, 20, newDiscardLogger())
	ctx := context.Background()

	wallet := testWallet("0xAA..11")
	provider.EXPECT().GetSingleUser(ctx, entity.UserQuery{Email: "a@b.com"}).Return(&wallet, nil)

	state, err := dir.Search(ctx, entity.QueryByEmail, " a@b.com ")

	require.NoError(t, err)
	assert.Equal(t, entity.DirectoryModeSearch, state.Mode)
	assert.Equal(t, "a@b.com", state.SearchValue)
	require.NotNil(t, state.Result)
	assert.Equal(t, "0xAA..11", state.Result.Address)
}

func TestUserDirectory_SearchValidation(t *testing.T) {
	tests := []struct {
		name  string
		field entity.UserQueryField
		value string
		want  error
	}{
		{name: "empty value", field: entity.QueryByEmail, value: "   ", want: domainerrors.ErrEmptySearchQuery},
		{name: "unknown field", field: entity.UserQueryField("nickname"), value: "bob", want: domainerrors.ErrUnknownSearchField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := mockService.NewMockWalletProvider(t)
			dir := NewUserDirectory(provider, 20, newDiscardLogger())

			state, err := dir.Search(context.Background(), tt.field, tt.value)

			assert.ErrorIs(t, err, tt.want)
			assert.NotEmpty(t, state.Error)
			assert.False(t, state.Busy)
			provider.AssertNotCalled(t, "GetSingleUser", mock.Anything, mock.Anything)
		})
	}
}

func TestUserDirectory_SearchForwardsUncheckedFormats(t *testing.T) {
	tests := []struct {
		name  string
		field entity.UserQueryField
		value string
		query entity.UserQuery
	}{
		{name: "email without tld", field: entity.QueryByEmail, value: "user@localhost", query: entity.UserQuery{Email: "user@localhost"}},
		{name: "short phone", field: entity.QueryByPhone, value: "555-1234", query: entity.UserQuery{Phone: "555-1234"}},
		{
			name:  "upper case prefix",
			field: entity.QueryByAddress,
			value: "0XAbCd000000000000000000000000000000000001",
			query: entity.UserQuery{Address: "0XAbCd000000000000000000000000000000000001"},
		},
		{
			name:  "non evm external wallet",
			field: entity.QueryByExternalWalletAddress,
			value: "So1anaAddr3ssXyZ9kLmN",
			query: entity.UserQuery{ExternalWalletAddress: "So1anaAddr3ssXyZ9kLmN"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := mockService.NewMockWalletProvider(t)
			dir := NewUserDirectory(provider, 20, newDiscardLogger())
			ctx := context.Background()

			wallet := testWallet("0xAA..11")
			provider.EXPECT().GetSingleUser(ctx, tt.query).Return(&wallet, nil).Once()

			state, err := dir.Search(ctx, tt.field, tt.value)

			require.NoError(t, err)
			assert.Empty(t, state.Error)
			require.NotNil(t, state.Result)
			assert.Equal(t, "0xAA..11", state.Result.Address)
		})
	}
}

func TestUserDirectory_SearchFailureClearsResult(t *testing.T) {
	provider := mockService.NewMockWalletProvider(t)
	dir := NewUserDirectory(provider, 20, newDiscardLogger())
	ctx := context.Background()

	wallet := testWallet("0xAA..11")
	provider.EXPECT().GetSingleUser(ctx, entity.UserQuery{ID: "u1"}).Return(&wallet, nil).Once()
	provider.EXPECT().GetSingleUser(ctx, entity.UserQuery{ID: "u2"}).
		Return(nil, domainerrors.NewProviderError("get_single_user", 404, "", "User not found")).Once()

	_, err := dir.Search(ctx, entity.QueryByID, "u1")
	require.NoError(t, err)

	state, err := dir.Search(ctx, entity.QueryByID, "u2")

	assert.Error(t, err)
	assert.Nil(t, state.Result)
	assert.Equal(t, "User not found", state.Error)
}

func TestUserDirectory_SelectMode(t *testing.T) {
	dir := NewUserDirectory(mockService.NewMockWalletProvider(t), 20, newDiscardLogger())

	state, err := dir.SelectMode(entity.DirectoryModeSearch)
	require.NoError(t, err)
	assert.Equal(t, entity.DirectoryModeSearch, state.Mode)

	state, err = dir.SelectMode(entity.DirectoryMode("grid"))
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	assert.Equal(t, entity.DirectoryModeSearch, state.Mode)
}

func TestUserDirectory_StateIsACopy(t *testing.T) {
	provider := mockService.NewMockWalletProvider(t)
	dir := NewUserDirectory(provider, 20, newDiscardLogger())
	ctx := context.Background()

	provider.EXPECT().GetAllUsers(ctx, 20, 1).Return(&entity.UsersPage{
		Pagination: entity.Pagination{Page: 1, Limit: 20},
		Wallets:    testWallets(0, 2),
	}, nil)

	state, err := dir.Refresh(ctx)
	require.NoError(t, err)

	state.Wallets[0].Address = "mutated"

	assert.NotEqual(t, "mutated", dir.State().Wallets[0].Address)
}

func TestUserDirectory_Reset(t *testing.T) {
	provider := mockService.NewMockWalletProvider(t)
	dir := NewUserDirectory(provider, 20, newDiscardLogger())
	ctx := context.Background()

	provider.EXPECT().GetAllUsers(ctx, 20, 1).Return(&entity.UsersPage{
		Pagination: entity.Pagination{Page: 1, Limit: 20, HasMore: true},
		Wallets:    testWallets(0, 20),
	}, nil)

	_, err := dir.Activate(ctx)
	require.NoError(t, err)

	dir.Reset()

	state := dir.State()
	assert.Empty(t, state.Wallets)
	assert.Equal(t, entity.Pagination{Page: 1, Limit: 20}, state.Pagination)
}

package redis

import (
	"context"
	"testing"
	"time"

	domainerrors "walletportal/internal/domain/errors"
	"walletportal/internal/domain/repository"
	"walletportal/internal/errors"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPrefix = "walletportal:tokens:"

func setupRepo(t *testing.T, ttl time.Duration) (*miniredis.Miniredis, repository.TokenRepository) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return mr, NewTokenRepository(client, testPrefix, ttl)
}

func TestTokenRepository_SaveFindDelete(t *testing.T) {
	ctx := context.Background()
	mr, repo := setupRepo(t, 0)

	_, err := repo.Find(ctx, "s1:thirdweb_token")
	require.ErrorIs(t, err, repository.ErrTokenNotFound)

	require.NoError(t, repo.Save(ctx, "s1:thirdweb_token", "tok_abc"))

	stored, err := mr.Get(testPrefix + "s1:thirdweb_token")
	require.NoError(t, err)
	assert.Equal(t, "tok_abc", stored)

	token, err := repo.Find(ctx, "s1:thirdweb_token")
	require.NoError(t, err)
	assert.Equal(t, "tok_abc", token)

	require.NoError(t, repo.Delete(ctx, "s1:thirdweb_token"))
	require.NoError(t, repo.Delete(ctx, "s1:thirdweb_token"))
	assert.False(t, mr.Exists(testPrefix+"s1:thirdweb_token"))
}

func TestTokenRepository_TTL(t *testing.T) {
	ctx := context.Background()
	mr, repo := setupRepo(t, time.Minute)

	require.NoError(t, repo.Save(ctx, "s1:thirdweb_token", "tok_abc"))
	assert.Equal(t, time.Minute, mr.TTL(testPrefix+"s1:thirdweb_token"))

	mr.FastForward(2 * time.Minute)

	_, err := repo.Find(ctx, "s1:thirdweb_token")
	assert.ErrorIs(t, err, repository.ErrTokenNotFound)
}

func TestTokenRepository_DeleteAllKeepsForeignKeys(t *testing.T) {
	ctx := context.Background()
	mr, repo := setupRepo(t, 0)

	for _, key := range []string{"a:thirdweb_token", "b:thirdweb_token", "c:thirdweb_token"} {
		require.NoError(t, repo.Save(ctx, key, "tok"))
	}
	require.NoError(t, mr.Set("other:key", "keep"))

	n, err := repo.DeleteAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.True(t, mr.Exists("other:key"))

	n, err = repo.DeleteAll(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestTokenRepository_ConnectionFailure(t *testing.T) {
	ctx := context.Background()
	mr, repo := setupRepo(t, 0)
	mr.Close()

	err := repo.Save(ctx, "s1:thirdweb_token", "tok")

	var dbErr *domainerrors.DatabaseExecuteError
	require.True(t, errors.As(err, &dbErr))
	assert.Equal(t, "Token storage is unavailable", dbErr.Message())
}

package postgres

import (
	"context"
	"time"

	domainerrors "walletportal/internal/domain/errors"
	"walletportal/internal/domain/repository"
	"walletportal/internal/errors"
	"walletportal/internal/infra/persistence/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// tokenRepository implements repository.TokenRepository on the session_tokens table.
type tokenRepository struct {
	db  *gorm.DB
	ttl time.Duration
	now func() time.Time
}

// NewTokenRepository creates a token store. A positive ttl expires rows that are not rewritten in time.
func NewTokenRepository(db *gorm.DB, ttl time.Duration) repository.TokenRepository {
	return &tokenRepository{
		db:  db,
		ttl: ttl,
		now: time.Now,
	}
}

// Save upserts the token under key.
func (repo *tokenRepository) Save(ctx context.Context, key, token string) error {
	row := toTokenModel(key, token, repo.now(), repo.ttl)

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "storage_key"}},
			DoUpdates: clause.AssignmentColumns([]string{"token", "expires_at", "updated_at"}),
		}).
		Create(row).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to save token")
	}

	return nil
}

// Find returns a live token for key.
func (repo *tokenRepository) Find(ctx context.Context, key string) (string, error) {
	var row model.SessionTokenModel

	err := repo.db.WithContext(ctx).
		Where("storage_key = ?", key).
		Where("expires_at IS NULL OR expires_at > ?", repo.now()).
		Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", repository.ErrTokenNotFound
		}

		return "", domainerrors.NewDatabaseExecuteError(err, "failed to find token")
	}

	return row.Token, nil
}

// Delete removes the row for key, if any.
func (repo *tokenRepository) Delete(ctx context.Context, key string) error {
	err := repo.db.WithContext(ctx).
		Where("storage_key = ?", key).
		Delete(&model.SessionTokenModel{}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete token")
	}

	return nil
}

// DeleteAll truncates the store.
func (repo *tokenRepository) DeleteAll(ctx context.Context) (int, error) {
	result := repo.db.WithContext(ctx).
		Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(&model.SessionTokenModel{})
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to purge tokens")
	}

	return int(result.RowsAffected), nil
}

// --- Mapper Functions ---

// toTokenModel builds the row written for key at now.
func toTokenModel(key, token string, now time.Time, ttl time.Duration) *model.SessionTokenModel {
	row := &model.SessionTokenModel{
		Key:       key,
		Token:     token,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if ttl > 0 {
		expiresAt := now.Add(ttl)
		row.ExpiresAt = &expiresAt
	}

	return row
}

package thirdweb

import (
	"fmt"

	"walletportal/internal/domain/entity"
)

// Wire shapes. Pointer fields let schema validation tell a missing field from a zero value.

type initiateAuthRequest struct {
	Method entity.AuthMethod `json:"method"`
	Email  string            `json:"email"`
}

type initiateAuthResponse struct {
	Method  string `json:"method"`
	Success bool   `json:"success"`
}

type completeAuthRequest struct {
	Method entity.AuthMethod `json:"method"`
	Email  string            `json:"email"`
	Code   string            `json:"code"`
}

type completeAuthResponse struct {
	IsNewUser     *bool   `json:"isNewUser" validate:"required"`
	Token         *string `json:"token" validate:"required,min=1"`
	Type          *string `json:"type" validate:"required"`
	WalletAddress *string `json:"walletAddress" validate:"required"`
}

type profilePayload struct {
	ID            *string `json:"id" validate:"required"`
	Type          *string `json:"type" validate:"required"`
	Email         *string `json:"email"`
	EmailVerified *bool   `json:"emailVerified"`
	Name          *string `json:"name"`
	GivenName     *string `json:"givenName"`
	FamilyName    *string `json:"familyName"`
	Locale        *string `json:"locale"`
	Picture       *string `json:"picture"`
	HD            *string `json:"hd"`
}

type walletInfoPayload struct {
	Address            *string          `json:"address" validate:"required"`
	SmartWalletAddress *string          `json:"smartWalletAddress"`
	CreatedAt          *string          `json:"createdAt" validate:"required"`
	Profiles           []profilePayload `json:"profiles" validate:"required,dive"`
}

type walletInfoResponse struct {
	Result *walletInfoPayload `json:"result" validate:"required"`
}

type paginationPayload struct {
	HasMore *bool `json:"hasMore" validate:"required"`
	Limit   *int  `json:"limit" validate:"required,min=1"`
	Page    *int  `json:"page" validate:"required,min=1"`
}

type usersResult struct {
	Pagination *paginationPayload  `json:"pagination" validate:"required"`
	Wallets    []walletInfoPayload `json:"wallets" validate:"required,dive"`
}

type usersResponse struct {
	Result *usersResult `json:"result" validate:"required"`
}

type usersPageQuery struct {
	Limit int `url:"limit"`
	Page  int `url:"page"`
}

// errorBody is the provider's non-2xx body. code is documented as a string but is decoded loosely.
type errorBody struct {
	Message string `json:"message"`
	Code    any    `json:"code"`
	Status  any    `json:"status"`
}

func (b *errorBody) code() string {
	if b.Code == nil {
		return ""
	}

	return fmt.Sprint(b.Code)
}

func (r *completeAuthResponse) toEntity() *entity.AuthSession {
	return &entity.AuthSession{
		Token:         *r.Token,
		WalletAddress: *r.WalletAddress,
		IsNewUser:     *r.IsNewUser,
		Type:          *r.Type,
	}
}

func (p *walletInfoPayload) toEntity() entity.WalletInfo {
	profiles := make([]entity.Profile, 0, len(p.Profiles))
	for _, pp := range p.Profiles {
		profiles = append(profiles, entity.Profile{
			ID:            *pp.ID,
			Type:          *pp.Type,
			Email:         pp.Email,
			EmailVerified: pp.EmailVerified,
			Name:          pp.Name,
			GivenName:     pp.GivenName,
			FamilyName:    pp.FamilyName,
			Locale:        pp.Locale,
			Picture:       pp.Picture,
			HD:            pp.HD,
		})
	}

	return entity.WalletInfo{
		Address:            *p.Address,
		SmartWalletAddress: p.SmartWalletAddress,
		CreatedAt:          *p.CreatedAt,
		Profiles:           profiles,
	}
}

func (r *usersResult) toEntity() *entity.UsersPage {
	wallets := make([]entity.WalletInfo, 0, len(r.Wallets))
	for i := range r.Wallets {
		wallets = append(wallets, r.Wallets[i].toEntity())
	}

	return &entity.UsersPage{
		Pagination: entity.Pagination{
			Page:    *r.Pagination.Page,
			Limit:   *r.Pagination.Limit,
			HasMore: *r.Pagination.HasMore,
		},
		Wallets: wallets,
	}
}

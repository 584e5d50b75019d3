package entity

import (
	"slices"
	"strings"
)

const (
	// DefaultPageSize is the number of wallets requested per directory page.
	DefaultPageSize = 20
	// FirstPage is the first directory page number.
	FirstPage = 1
)

// Pagination is the cursor snapshot of a directory listing. It is replaced, never mutated.
type Pagination struct {
	Page    int
	Limit   int
	HasMore bool
}

// NextPage returns the page number to request for more results.
func (p Pagination) NextPage() int {
	return p.Page + 1
}

// UsersPage is one page of the wallet directory.
type UsersPage struct {
	Pagination Pagination
	Wallets    []WalletInfo
}

// UserQueryField names the identifier a directory search is keyed by.
type UserQueryField string

const (
	QueryByAddress               UserQueryField = "address"
	QueryByEmail                 UserQueryField = "email"
	QueryByPhone                 UserQueryField = "phone"
	QueryByExternalWalletAddress UserQueryField = "externalWalletAddress"
	QueryByID                    UserQueryField = "id"
)

// UserQueryFields lists the searchable identifiers in display order.
var UserQueryFields = []UserQueryField{
	QueryByEmail,
	QueryByAddress,
	QueryByPhone,
	QueryByExternalWalletAddress,
	QueryByID,
}

// IsValid checks if the field is a known identifier.
func (f UserQueryField) IsValid() bool {
	return slices.Contains(UserQueryFields, f)
}

// UserQuery selects a single wallet by one identifier. Exactly one field is expected to be set;
// the provider decides precedence if several are sent.
type UserQuery struct {
	Address               string `url:"address,omitempty"`
	Email                 string `url:"email,omitempty"`
	Phone                 string `url:"phone,omitempty"`
	ExternalWalletAddress string `url:"externalWalletAddress,omitempty"`
	ID                    string `url:"id,omitempty"`
}

// NewUserQuery builds a query with only the given field set.
func NewUserQuery(field UserQueryField, value string) UserQuery {
	var q UserQuery
	switch field {
	case QueryByAddress:
		q.Address = value
	case QueryByEmail:
		q.Email = value
	case QueryByPhone:
		q.Phone = value
	case QueryByExternalWalletAddress:
		q.ExternalWalletAddress = value
	case QueryByID:
		q.ID = value
	}

	return q
}

// IsEmpty reports whether every field is blank.
func (q UserQuery) IsEmpty() bool {
	for _, v := range []string{q.Address, q.Email, q.Phone, q.ExternalWalletAddress, q.ID} {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}

	return true
}

// DirectoryMode is the active tab of the user directory.
type DirectoryMode string

const (
	DirectoryModeList   DirectoryMode = "list"
	DirectoryModeSearch DirectoryMode = "search"
)

// IsValid checks if the mode is a known value.
func (m DirectoryMode) IsValid() bool {
	return m == DirectoryModeList || m == DirectoryModeSearch
}

// DirectoryState is a snapshot of the user directory.
type DirectoryState struct {
	Mode        DirectoryMode
	Wallets     []WalletInfo
	Pagination  Pagination
	SearchField UserQueryField
	SearchValue string
	Result      *WalletInfo
	Busy        bool
	Error       string
}

// WalletViewState is a snapshot of the wallet viewer.
type WalletViewState struct {
	Wallet    *WalletInfo
	Loading   bool
	Error     string
	CanLogout bool // Logout is the only recovery offered after a failure.
}

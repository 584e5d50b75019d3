// Package presenter turns domain state into the views shown by the browser and terminal front ends.
package presenter

import (
	"walletportal/internal/domain/entity"
	"walletportal/internal/util"
)

// ProfileView is one linked identity as shown to the browser.
type ProfileView struct {
	ID            string  `json:"id"`
	Type          string  `json:"type"`
	Email         *string `json:"email,omitempty"`
	EmailVerified *bool   `json:"emailVerified,omitempty"`
	Name          *string `json:"name,omitempty"`
	GivenName     *string `json:"givenName,omitempty"`
	FamilyName    *string `json:"familyName,omitempty"`
	Locale        *string `json:"locale,omitempty"`
	Picture       *string `json:"picture,omitempty"`
	HD            *string `json:"hd,omitempty"`
}

// WalletView carries the raw wallet fields next to their display forms.
type WalletView struct {
	Address                   string        `json:"address"`
	DisplayAddress            string        `json:"displayAddress"`
	SmartWalletAddress        *string       `json:"smartWalletAddress,omitempty"`
	DisplaySmartWalletAddress string        `json:"displaySmartWalletAddress,omitempty"`
	CreatedAt                 string        `json:"createdAt"`
	DisplayCreatedAt          string        `json:"displayCreatedAt"`
	Profiles                  []ProfileView `json:"profiles"`
}

type SessionView struct {
	Authenticated        bool   `json:"authenticated"`
	View                 string `json:"view"`
	WalletAddress        string `json:"walletAddress,omitempty"`
	DisplayWalletAddress string `json:"displayWalletAddress,omitempty"`
	IsNewUser            bool   `json:"isNewUser"`
	Type                 string `json:"type,omitempty"`
}

type AuthStateView struct {
	Step  string `json:"step"`
	Email string `json:"email,omitempty"`
	Busy  bool   `json:"busy"`
	Error string `json:"error,omitempty"`
}

type WalletStateView struct {
	Wallet    *WalletView `json:"wallet"`
	Loading   bool        `json:"loading"`
	Error     string      `json:"error,omitempty"`
	CanLogout bool        `json:"canLogout"`
}

type PaginationView struct {
	Page    int  `json:"page"`
	Limit   int  `json:"limit"`
	HasMore bool `json:"hasMore"`
}

type DirectoryView struct {
	Mode        string         `json:"mode"`
	Wallets     []WalletView   `json:"wallets"`
	Pagination  PaginationView `json:"pagination"`
	SearchField string         `json:"searchField"`
	SearchValue string         `json:"searchValue,omitempty"`
	Result      *WalletView    `json:"result"`
	Busy        bool           `json:"busy"`
	Error       string         `json:"error,omitempty"`
}

// Wallet pairs raw wallet fields with their display forms. A nil wallet gives nil.
func Wallet(w *entity.WalletInfo) *WalletView {
	if w == nil {
		return nil
	}

	view := &WalletView{
		Address:            w.Address,
		DisplayAddress:     util.FormatAddress(w.Address),
		SmartWalletAddress: w.SmartWalletAddress,
		CreatedAt:          w.CreatedAt,
		DisplayCreatedAt:   util.FormatDate(w.CreatedAt),
		Profiles:           make([]ProfileView, 0, len(w.Profiles)),
	}
	if w.HasSmartWallet() {
		view.DisplaySmartWalletAddress = util.FormatAddress(*w.SmartWalletAddress)
	}
	for _, p := range w.Profiles {
		view.Profiles = append(view.Profiles, ProfileView{
			ID:            p.ID,
			Type:          p.Type,
			Email:         p.Email,
			EmailVerified: p.EmailVerified,
			Name:          p.Name,
			GivenName:     p.GivenName,
			FamilyName:    p.FamilyName,
			Locale:        p.Locale,
			Picture:       p.Picture,
			HD:            p.HD,
		})
	}

	return view
}

func Session(s entity.SessionStatus) SessionView {
	view := SessionView{
		Authenticated: s.Authenticated,
		View:          string(s.View),
		WalletAddress: s.WalletAddress,
		IsNewUser:     s.IsNewUser,
		Type:          s.Type,
	}
	if s.WalletAddress != "" {
		view.DisplayWalletAddress = util.FormatAddress(s.WalletAddress)
	}

	return view
}

func AuthState(s entity.AuthFlowState) AuthStateView {
	return AuthStateView{
		Step:  string(s.Step),
		Email: s.Email,
		Busy:  s.Busy,
		Error: s.Error,
	}
}

func WalletState(s entity.WalletViewState) WalletStateView {
	return WalletStateView{
		Wallet:    Wallet(s.Wallet),
		Loading:   s.Loading,
		Error:     s.Error,
		CanLogout: s.CanLogout,
	}
}

// Directory renders the held wallets in order.
func Directory(s entity.DirectoryState) DirectoryView {
	wallets := make([]WalletView, 0, len(s.Wallets))
	for i := range s.Wallets {
		wallets = append(wallets, *Wallet(&s.Wallets[i]))
	}

	return DirectoryView{
		Mode:    string(s.Mode),
		Wallets: wallets,
		Pagination: PaginationView{
			Page:    s.Pagination.Page,
			Limit:   s.Pagination.Limit,
			HasMore: s.Pagination.HasMore,
		},
		SearchField: string(s.SearchField),
		SearchValue: s.SearchValue,
		Result:      Wallet(s.Result),
		Busy:        s.Busy,
		Error:       s.Error,
	}
}

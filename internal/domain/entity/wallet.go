package entity

// Profile is one external identity linked to a wallet.
type Profile struct {
	ID            string  // Provider identifier of the linked identity.
	Type          string  // Identity kind, e.g. "email" or "google".
	Email         *string // Optional email of the identity.
	EmailVerified *bool   // Optional flag set by identity providers that verify email.
	Name          *string
	GivenName     *string
	FamilyName    *string
	Locale        *string
	Picture       *string
	HD            *string // Hosted domain, reported for workspace accounts.
}

// WalletInfo is one wallet account as reported by the provider.
// Profiles keep the order the provider returned them in.
type WalletInfo struct {
	Address            string    // Directly controlled wallet address.
	SmartWalletAddress *string   // Contract-based wallet address, when the provider created one.
	CreatedAt          string    // Creation timestamp exactly as the provider sent it.
	Profiles           []Profile // Linked identities, in provider order.
}

// HasSmartWallet reports whether the provider reported a smart wallet address.
func (w *WalletInfo) HasSmartWallet() bool {
	return w.SmartWalletAddress != nil && *w.SmartWalletAddress != ""
}

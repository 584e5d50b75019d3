// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

// AuthMethod is the provider's authentication method.
type AuthMethod string

// AuthMethodEmail is the email one-time-code method, the only one this system drives.
const AuthMethodEmail AuthMethod = "email"

// AuthSession is the result of a completed two-step authentication.
// Only Token is persisted; the rest lives in memory for the current session.
type AuthSession struct {
	Token         string // Bearer token proving the authenticated session.
	WalletAddress string // Address of the wallet the provider created or found for the user.
	IsNewUser     bool   // True when the provider created the account during this login.
	Type          string // Provider-reported authentication type, e.g. "email".
}

// InitiateAuthResult is the provider's answer to a code request.
type InitiateAuthResult struct {
	Method  AuthMethod
	Success bool
}

// AuthStep is the current step of the two-step login form.
type AuthStep string

const (
	// AuthStepInitiate collects the email address.
	AuthStepInitiate AuthStep = "initiate"
	// AuthStepVerify collects the one-time code.
	AuthStepVerify AuthStep = "verify"
)

// AuthFlowState is a snapshot of the login form.
type AuthFlowState struct {
	Step  AuthStep
	Email string
	Busy  bool
	Error string
}

// View is the screen a client session is showing.
type View string

const (
	ViewAuth   View = "auth"
	ViewWallet View = "wallet"
	ViewUsers  View = "users"
)

// IsValid checks if the View is a known value.
func (v View) IsValid() bool {
	switch v {
	case ViewAuth, ViewWallet, ViewUsers:
		return true
	default:
		return false
	}
}

// SessionStatus describes a client session without exposing its token.
type SessionStatus struct {
	Authenticated bool
	View          View
	WalletAddress string
	IsNewUser     bool
	Type          string
}

// TokenKey namespaces the fixed token storage key by client session.
func TokenKey(sessionID, name string) string {
	return sessionID + ":" + name
}

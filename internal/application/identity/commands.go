package identity

import userdomain "github.com/artifyhq/artify-server/internal/domain/user"

// RegisterCommand carries the data for creating a password account.
type RegisterCommand struct {
	Name     string
	Email    string
	Password string
	PhotoURL string
}

// LoginCommand carries the credentials for a password login.
type LoginCommand struct {
	Email    string
	Password string
}

// SocialLoginCommand carries the provider name for a mock social login.
type SocialLoginCommand struct {
	Provider string
}

// Result is the outcome of a successful identity operation: the account and
// a fresh bearer credential.
type Result struct {
	User  *userdomain.User
	Token string
}

package domain

import "time"

// UserAccount is a registered account as persisted in the user list.
// PasswordDigest is a toy fingerprint, not a password hash; see service.Digest.
type UserAccount struct {
	ID             int64     `json:"id"`
	Email          string    `json:"email"`
	Name           string    `json:"name"`
	PasswordDigest string    `json:"password"`
	CreatedAt      time.Time `json:"createdAt"`
}

// SessionUser is the digest-free view of an account bound to the session.
type SessionUser struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// SessionView strips the account down to its session-visible fields.
func (u UserAccount) SessionView() SessionUser {
	return SessionUser{ID: u.ID, Email: u.Email, Name: u.Name}
}

// AuthResult is the outcome of a register, login or logout attempt.
// Message is user-facing. User is set only on successful register and login.
type AuthResult struct {
	OK      bool
	Message string
	User    *SessionUser
}

package service

import (
	"log/slog"
	"strconv"
	"time"

	"github.com/zafahi/tralashop/internal/core/domain"
	"github.com/zafahi/tralashop/internal/core/port"
	"github.com/zafahi/tralashop/pkg/webfmt"
)

const minPasswordLen = 6

// Auth keeps the registered account list and the zero-or-one current session.
// The session is persisted under its own key, independent of the user list,
// so a restart restores whoever was logged in.
type Auth struct {
	store      port.KeyValueStore
	usersKey   string
	sessionKey string
	current    *domain.SessionUser
	now        func() time.Time
}

func NewAuth(store port.KeyValueStore, usersKey, sessionKey string) *Auth {
	a := &Auth{
		store:      store,
		usersKey:   usersKey,
		sessionKey: sessionKey,
		now:        time.Now,
	}

	var saved domain.SessionUser
	if a.store.Get(a.sessionKey, &saved) && saved.Email != "" {
		a.current = &saved
	}
	return a
}

// Register validates the fields, rejects duplicate emails, appends the new
// account to the persisted user list and establishes the session.
func (a *Auth) Register(email, password, name string) domain.AuthResult {
	const op = "Auth.Register"

	if email == "" || password == "" || name == "" {
		return domain.AuthResult{Message: "All fields are required"}
	}
	if !webfmt.IsValidEmail(email) {
		return domain.AuthResult{Message: "Invalid email address"}
	}
	if len(password) < minPasswordLen {
		return domain.AuthResult{Message: "Password must be at least 6 characters"}
	}

	users := a.loadUsers()
	for _, u := range users {
		if u.Email == email {
			return domain.AuthResult{Message: "Email already registered"}
		}
	}

	now := a.now()
	account := domain.UserAccount{
		ID:             now.UnixMilli(),
		Email:          email,
		Name:           name,
		PasswordDigest: Digest(password),
		CreatedAt:      now,
	}

	users = append(users, account)
	if !a.store.Set(a.usersKey, users) {
		slog.Warn("user list not persisted", "op", op, "key", a.usersKey)
	}

	a.establishSession(account)
	return domain.AuthResult{OK: true, Message: "Registration successful!", User: a.current}
}

// Login compares the submitted password's digest against the stored one.
// The same message covers unknown email and wrong password.
func (a *Auth) Login(email, password string) domain.AuthResult {
	if email == "" || password == "" {
		return domain.AuthResult{Message: "Email and password are required"}
	}

	for _, u := range a.loadUsers() {
		if u.Email != email {
			continue
		}
		if u.PasswordDigest != Digest(password) {
			break
		}
		a.establishSession(u)
		return domain.AuthResult{OK: true, Message: "Login successful!", User: a.current}
	}
	return domain.AuthResult{Message: "Invalid email or password"}
}

// Logout clears the session and its persisted record.
func (a *Auth) Logout() domain.AuthResult {
	a.current = nil
	a.store.Remove(a.sessionKey)
	return domain.AuthResult{OK: true, Message: "Logged out successfully"}
}

func (a *Auth) IsLoggedIn() bool {
	return a.current != nil
}

func (a *Auth) CurrentUser() (domain.SessionUser, bool) {
	if a.current == nil {
		return domain.SessionUser{}, false
	}
	return *a.current, true
}

func (a *Auth) establishSession(u domain.UserAccount) {
	const op = "Auth.establishSession"

	view := u.SessionView()
	a.current = &view
	if !a.store.Set(a.sessionKey, view) {
		slog.Warn("session not persisted", "op", op, "key", a.sessionKey)
	}
}

func (a *Auth) loadUsers() []domain.UserAccount {
	var users []domain.UserAccount
	a.store.Get(a.usersKey, &users)
	return users
}

// Digest is the demo password fingerprint: the classic 32-bit rolling hash
// h = h*31 + c over the code points, rendered in decimal. It is NOT a
// cryptographic hash and exists only so the demo can compare credentials;
// a real deployment must replace it with a vetted password hashing scheme.
func Digest(password string) string {
	var h int32
	for _, c := range password {
		h = (h << 5) - h + int32(c)
	}
	return strconv.FormatInt(int64(h), 10)
}

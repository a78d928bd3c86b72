package view

import (
	"fmt"

	"github.com/zafahi/tralashop/internal/core/domain"
	"github.com/zafahi/tralashop/internal/core/port"
	"github.com/zafahi/tralashop/internal/core/service"
)

// LoginForm renders the login/register modal and drives the auth service.
type LoginForm struct {
	surface      port.RenderSurface
	auth         *service.Auth
	notifier     *service.Notifier
	registerMode bool

	// LoggedIn fires after a successful login or registration.
	LoggedIn func(user domain.SessionUser)
}

func NewLoginForm(surface port.RenderSurface, auth *service.Auth, notifier *service.Notifier) *LoginForm {
	f := &LoginForm{surface: surface, auth: auth, notifier: notifier}
	f.Render()
	return f
}

func (f *LoginForm) Open() {
	f.surface.AddClass(LoginModalID, classActive)
}

func (f *LoginForm) Close() {
	f.surface.RemoveClass(LoginModalID, classActive)
}

// SwitchMode toggles between login and registration and re-renders.
func (f *LoginForm) SwitchMode(register bool) {
	f.registerMode = register
	f.Render()
}

// Submit validates nothing itself: the auth service owns all checks and the
// form only surfaces the result. The name argument is ignored in login mode.
func (f *LoginForm) Submit(email, password, name string) domain.AuthResult {
	var res domain.AuthResult
	if f.registerMode {
		res = f.auth.Register(email, password, name)
	} else {
		res = f.auth.Login(email, password)
	}

	if !res.OK {
		f.notifier.Error(res.Message)
		return res
	}

	f.notifier.Success(res.Message)
	f.Close()
	if f.LoggedIn != nil && res.User != nil {
		f.LoggedIn(*res.User)
	}
	return res
}

func (f *LoginForm) Render() {
	title, submit := "Login", "Login"
	subtitle := "Welcome back! Please login to your account."
	nameField := ""
	if f.registerMode {
		title, submit = "Register", "Create Account"
		subtitle = "Create your account to start shopping."
		nameField = `<div class="form-group"><label for="login-name">Full Name</label>` +
			`<input type="text" id="login-name" placeholder="Enter your name" required></div>`
	}

	markup := fmt.Sprintf(
		`<div class="login-content">`+
			`<div class="login-header"><h2>%s</h2><p>%s</p></div>`+
			`<div class="login-tabs">`+
			`<button class="login-tab%s" data-mode="login">Login</button>`+
			`<button class="login-tab%s" data-mode="register">Register</button>`+
			`</div>`+
			`<form class="login-form">%s`+
			`<div class="form-group"><label for="login-email">Email</label>`+
			`<input type="email" id="login-email" placeholder="Enter your email" required></div>`+
			`<div class="form-group"><label for="login-password">Password</label>`+
			`<input type="password" id="login-password" placeholder="Enter your password" required>`+
			`<small class="form-hint">Minimum 6 characters</small></div>`+
			`<button type="submit" class="btn btn-primary btn-block">%s</button>`+
			`</form>`+
			`<div class="login-footer"><p class="demo-notice">Demo mode - No real authentication</p></div>`+
			`</div>`,
		title, subtitle,
		activeIf(!f.registerMode), activeIf(f.registerMode),
		nameField, submit,
	)
	f.surface.SetContent(LoginModalID, markup)
}

func activeIf(cond bool) string {
	if cond {
		return " active"
	}
	return ""
}

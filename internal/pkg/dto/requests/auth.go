package requests

import "medtrack-portal/internal/pkg/constvars"

type Login struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (r *Login) ValidationMessages() map[string]string {
	return map[string]string{
		"Email.required":    "Email is required",
		"Email.email":       "Please enter a valid email address",
		"Password.required": "Password is required",
	}
}

type GoogleLogin struct {
	Credential string `json:"credential" validate:"required"`
}

func (r *GoogleLogin) ValidationMessages() map[string]string {
	return map[string]string{
		"Credential.required": constvars.ErrClientGoogleLoginFailed,
	}
}

// Signup fields are declared in the order their rules are checked.
type Signup struct {
	ConfirmPassword string `json:"-" validate:"eqfield=Password"`
	Name            string `json:"name" validate:"required"`
	Password        string `json:"password" validate:"min=8"`
	Email           string `json:"email" validate:"required,email"`
}

func (r *Signup) ValidationMessages() map[string]string {
	return map[string]string{
		"ConfirmPassword.eqfield": constvars.ErrClientPasswordsDoNotMatch,
		"Name.required":           constvars.ErrClientNameRequired,
		"Password.min":            constvars.ErrClientPasswordTooShort,
		"Email.required":          "Email is required",
		"Email.email":             "Please enter a valid email address",
	}
}

type ForgotPassword struct {
	Email string `json:"email" validate:"required,email"`
}

func (r *ForgotPassword) ValidationMessages() map[string]string {
	return map[string]string{
		"Email.required": "Email is required",
		"Email.email":    "Please enter a valid email address",
	}
}

type ResetPassword struct {
	Token           string `json:"token" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"min=8"`
	ConfirmPassword string `json:"-" validate:"eqfield=NewPassword"`
}

func (r *ResetPassword) ValidationMessages() map[string]string {
	return map[string]string{
		"Token.required":          constvars.ErrClientInvalidResetLink,
		"NewPassword.min":         constvars.ErrClientResetPasswordTooShort,
		"ConfirmPassword.eqfield": constvars.ErrClientResetPasswordsDoNotMatch,
	}
}

package service

import (
	"crypto/subtle"
)

// Authentication verifies the shared caller secret. It can be disabled via
// config for a private deployment; the admin check can not.
type Authentication struct {
	secret   string
	disabled bool
}

func NewAuthentication(secret string, disabled bool) Authentication {
	return Authentication{
		secret:   secret,
		disabled: disabled,
	}
}

func (s Authentication) Enabled() bool {
	return !s.disabled && s.secret != ""
}

func (s Authentication) VerifyCaller(token string) bool {
	return verify(token, s.secret)
}

type AdminAuthentication struct {
	secret string
}

func NewAdminAuthentication(secret string) AdminAuthentication {
	return AdminAuthentication{
		secret: secret,
	}
}

func (s AdminAuthentication) VerifyAdmin(token string) bool {
	return verify(token, s.secret)
}

func verify(token string, secret string) bool {
	if secret == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(token), []byte(secret)) == 1
}

// Package identity resolves the operator account the console manages, either
// from plain configuration or from the claims of an ID token issued by the
// sign-in provider.
//
// The token signature is not verified here: the Setter API authenticates every
// request with the API key, and the token is only a convenient carrier of the
// account id, e-mail and display name.
package identity

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/koafy/setter-console/internal/config"
	"github.com/koafy/setter-console/models"
)

var (
	ErrNoIdentity   = errors.New("no account id or id token configured")
	ErrInvalidToken = errors.New("invalid id token")
	ErrTokenExpired = errors.New("id token is expired")
	ErrNoSubject    = errors.New("id token carries no subject")
)

// Claims are the ID token claims the console reads.
type Claims struct {
	// UserID is set by Firebase-style providers next to sub.
	UserID string `json:"user_id,omitempty"`
	Email  string `json:"email,omitempty"`
	Name   string `json:"name,omitempty"`
	jwt.RegisteredClaims
}

// Resolve returns the account described by cfg. When cfg.IDToken is set its
// claims win over the plain fields; empty claims fall back to them.
func Resolve(cfg config.Account) (models.Account, error) {
	return resolve(cfg, time.Now())
}

func resolve(cfg config.Account, now time.Time) (models.Account, error) {
	account := models.Account{
		ID:    strings.TrimSpace(cfg.ID),
		Email: strings.TrimSpace(cfg.Email),
		Name:  strings.TrimSpace(cfg.Name),
	}

	if strings.TrimSpace(cfg.IDToken) == "" {
		if account.IsZero() {
			return models.Account{}, ErrNoIdentity
		}
		return account, nil
	}

	claims, err := ParseIDToken(cfg.IDToken, now)
	if err != nil {
		return models.Account{}, err
	}

	account.ID = firstNonEmpty(claims.UserID, claims.Subject, account.ID)
	account.Email = firstNonEmpty(claims.Email, account.Email)
	account.Name = firstNonEmpty(claims.Name, account.Name)

	return account, nil
}

// ParseIDToken decodes tokenString without verifying its signature and checks
// that it is not expired at now and names a subject.
func ParseIDToken(tokenString string, now time.Time) (Claims, error) {
	var claims Claims

	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(strings.TrimSpace(tokenString), &claims); err != nil {
		return Claims{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	if claims.ExpiresAt != nil && !claims.ExpiresAt.After(now) {
		return Claims{}, ErrTokenExpired
	}

	if claims.UserID == "" && claims.Subject == "" {
		return Claims{}, ErrNoSubject
	}

	return claims, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

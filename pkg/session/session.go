// Package session carries the admin session in the adminId cookie.
//
// The cookie value is either the admin identifier itself or, when a secret is
// configured, an HS256 token whose subject is that identifier.
package session

import (
	"errors"
	"net/http"
	"time"

	"blogpress/pkg/jwt"
)

const (
	CookieName = "adminId"
	Lifetime   = 7 * 24 * time.Hour
)

var ErrInvalidToken = errors.New("invalid session token")

// Codec turns an admin identifier into a cookie value and back.
type Codec interface {
	Encode(adminID string) (string, error)
	Decode(token string) (string, error)
}

// NewCodec returns a signing codec when secret is non-empty, otherwise the
// cookie carries the bare identifier.
func NewCodec(secret string) Codec {
	if secret == "" {
		return PlainCodec{}
	}
	return &SignedCodec{jwt: jwt.NewServiceWithLifetime(secret, Lifetime)}
}

type PlainCodec struct{}

func (PlainCodec) Encode(adminID string) (string, error) {
	return adminID, nil
}

func (PlainCodec) Decode(token string) (string, error) {
	if token == "" {
		return "", ErrInvalidToken
	}
	return token, nil
}

type SignedCodec struct {
	jwt *jwt.Service
}

func (c *SignedCodec) Encode(adminID string) (string, error) {
	return c.jwt.GenerateToken(adminID)
}

func (c *SignedCodec) Decode(token string) (string, error) {
	claims, err := c.jwt.ValidateToken(token)
	if err != nil || claims.AdminID == "" {
		return "", ErrInvalidToken
	}
	return claims.AdminID, nil
}

// SetCookie stores token as the session cookie.
func SetCookie(w http.ResponseWriter, token string, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(Lifetime / time.Second),
		Expires:  time.Now().Add(Lifetime),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearCookie expires the session cookie. Safe to call without a session.
func ClearCookie(w http.ResponseWriter, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// TokenFrom returns the session cookie value, or "" when absent.
func TokenFrom(r *http.Request) string {
	c, err := r.Cookie(CookieName)
	if err != nil {
		return ""
	}
	return c.Value
}

func HasSession(r *http.Request) bool {
	return TokenFrom(r) != ""
}

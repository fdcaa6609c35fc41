package session

import (
	"crypto/sha256"
	"net/http"
	"time"

	"github.com/gorilla/securecookie"
)

const CookieName = "admin_session"

// Codec signs and encrypts the session token cookie. The token itself is
// random, but signing stops a tampered cookie from ever reaching the store.
type Codec struct {
	sc     *securecookie.SecureCookie
	ttl    time.Duration
	secure bool
}

// NewCodec derives separate signing and encryption keys from one secret.
func NewCodec(secret string, ttl time.Duration, secure bool) *Codec {
	h := sha256.Sum256([]byte("auth:" + secret))
	e := sha256.Sum256([]byte("enc:" + secret))
	return &Codec{
		sc:     securecookie.New(h[:], e[:]),
		ttl:    ttl,
		secure: secure,
	}
}

func (c *Codec) SetToken(w http.ResponseWriter, token string) error {
	encoded, err := c.sc.Encode(CookieName, token)
	if err != nil {
		return err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    encoded,
		Path:     "/",
		MaxAge:   int(c.ttl.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   c.secure,
	})
	return nil
}

// Token extracts and verifies the session token from the request cookie.
func (c *Codec) Token(r *http.Request) (string, bool) {
	ck, err := r.Cookie(CookieName)
	if err != nil {
		return "", false
	}
	var token string
	if err := c.sc.Decode(CookieName, ck.Value, &token); err != nil {
		return "", false
	}
	return token, true
}

func (c *Codec) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   c.secure,
	})
}

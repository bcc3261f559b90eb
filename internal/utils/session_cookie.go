package utils

import (
	"net/http"
	"sync"
	"time"
)

const SessionCookieName = "headhouse.session-token"

func NewSessionCookie(token string, expiresAt time.Time, secure bool) *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
}

func ExpiredSessionCookie(secure bool) *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
}

var (
	dummyHash     string
	dummyHashOnce sync.Once
)

// DummyPasswordCheck spends the same bcrypt work as CheckPassword for logins
// whose email is unknown.
func DummyPasswordCheck(password string) {
	dummyHashOnce.Do(func() {
		dummyHash, _ = HashPassword("headhouse-dummy-password")
	})
	CheckPassword(password, dummyHash)
}

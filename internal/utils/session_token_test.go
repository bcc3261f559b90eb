package utils

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func newTestTokenUtil(t *testing.T, secret string, now time.Time) *SessionTokenUtil {
	t.Helper()
	u, err := NewSessionTokenUtil(secret)
	if err != nil {
		t.Fatalf("new token util: %v", err)
	}
	u.now = func() time.Time { return now }
	return u
}

func TestSessionTokenRoundTrip(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	u := newTestTokenUtil(t, "super-secret", now)

	claims := &SessionClaims{
		SessionId: "abc",
		Subject:   "65f1c0ffee0000000000beef",
		Email:     "ana@example.com",
		IssuedAt:  now.Unix(),
		ExpiresAt: now.Add(time.Hour).Unix(),
	}

	token, err := u.EncodeToken(claims)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if strings.Count(token, ".") != 4 {
		t.Fatalf("expected compact JWE with 5 parts, got %q", token)
	}

	decoded, err := u.DecodeToken(token)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if *decoded != *claims {
		t.Fatalf("claims mismatch: got %+v want %+v", decoded, claims)
	}
}

func TestSessionTokenRejections(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	u := newTestTokenUtil(t, "super-secret", now)

	valid := &SessionClaims{SessionId: "abc", Subject: "user", IssuedAt: now.Unix(), ExpiresAt: now.Add(time.Hour).Unix()}
	token, err := u.EncodeToken(valid)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	expiredToken, _ := u.EncodeToken(&SessionClaims{SessionId: "abc", Subject: "user", IssuedAt: now.Add(-2 * time.Hour).Unix(), ExpiresAt: now.Add(-time.Hour).Unix()})
	futureToken, _ := u.EncodeToken(&SessionClaims{SessionId: "abc", Subject: "user", IssuedAt: now.Add(time.Hour).Unix()})
	anonymousToken, _ := u.EncodeToken(&SessionClaims{IssuedAt: now.Unix()})

	other := newTestTokenUtil(t, "another-secret", now)

	tests := []struct {
		name    string
		util    *SessionTokenUtil
		token   string
		wantErr error
	}{
		{"garbage", u, "not-a-token", ErrInvalidSessionToken},
		{"tampered", u, token[:len(token)-4] + "AAAA", ErrInvalidSessionToken},
		{"foreign key", other, token, ErrInvalidSessionToken},
		{"expired", u, expiredToken, ErrExpiredSessionToken},
		{"issued in future", u, futureToken, ErrInvalidSessionToken},
		{"missing subject", u, anonymousToken, ErrInvalidSessionToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.util.DecodeToken(tt.token)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestNewSessionTokenUtilRequiresSecret(t *testing.T) {
	if _, err := NewSessionTokenUtil(""); err == nil {
		t.Fatal("expected error for empty secret")
	}
}

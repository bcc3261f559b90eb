package utils

import (
	"crypto/sha256"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/square/go-jose/v3"
	"golang.org/x/crypto/hkdf"
)

var (
	ErrInvalidSessionToken = errors.New("invalid session token")
	ErrExpiredSessionToken = errors.New("session token expired")
)

const sessionKeyInfo = "Headhouse Generated Session Encryption Key"

type SessionClaims struct {
	SessionId string `json:"sid"`
	Subject   string `json:"sub"`
	Email     string `json:"email"`
	IssuedAt  int64  `json:"iat"`
	ExpiresAt int64  `json:"exp"`
}

// SessionTokenUtil seals session claims into a compact JWE (dir + A256GCM).
type SessionTokenUtil struct {
	key []byte
	now func() time.Time
}

func NewSessionTokenUtil(secret string) (*SessionTokenUtil, error) {
	if secret == "" {
		return nil, errors.New("session secret is empty")
	}

	key, err := getDerivedEncryptionKey([]byte(secret), "")
	if err != nil {
		return nil, err
	}

	return &SessionTokenUtil{key: key, now: time.Now}, nil
}

func (u *SessionTokenUtil) EncodeToken(claims *SessionClaims) (string, error) {
	encrypter, err := jose.NewEncrypter(jose.A256GCM, jose.Recipient{Algorithm: jose.DIRECT, Key: u.key}, nil)
	if err != nil {
		return "", err
	}

	payload, err := json.Marshal(claims)
	if err != nil {
		return "", err
	}

	object, err := encrypter.Encrypt(payload)
	if err != nil {
		return "", err
	}

	return object.CompactSerialize()
}

func (u *SessionTokenUtil) DecodeToken(token string) (*SessionClaims, error) {
	jweObject, err := jose.ParseEncrypted(token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSessionToken, err)
	}

	decrypted, err := jweObject.Decrypt(u.key)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSessionToken, err)
	}

	var claims SessionClaims
	if err := json.Unmarshal(decrypted, &claims); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSessionToken, err)
	}

	if err := u.validateClaims(&claims); err != nil {
		return nil, err
	}

	return &claims, nil
}

func getDerivedEncryptionKey(keyMaterial []byte, salt string) ([]byte, error) {
	info := []byte(sessionKeyInfo)
	if salt != "" {
		info = []byte(fmt.Sprintf("%s (%s)", sessionKeyInfo, salt))
	}
	h := hkdf.New(sha256.New, keyMaterial, []byte(salt), info)
	key := make([]byte, 32)
	if _, err := io.ReadFull(h, key); err != nil {
		return nil, err
	}
	return key, nil
}

func (u *SessionTokenUtil) validateClaims(claims *SessionClaims) error {
	now := u.now().Unix()

	if claims.SessionId == "" || claims.Subject == "" {
		return fmt.Errorf("%w: missing sid or sub", ErrInvalidSessionToken)
	}

	if claims.ExpiresAt != 0 && now > claims.ExpiresAt {
		return ErrExpiredSessionToken
	}

	if claims.IssuedAt != 0 && now < claims.IssuedAt {
		return fmt.Errorf("%w: issued in the future", ErrInvalidSessionToken)
	}

	return nil
}

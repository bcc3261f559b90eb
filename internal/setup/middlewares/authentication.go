package middlewares

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/anuntech/budget-manager/internal/domain/usecase"
	"github.com/anuntech/budget-manager/internal/presentation/helpers"
	"github.com/anuntech/budget-manager/internal/utils"
)

type SessionTokenDecoder interface {
	DecodeToken(token string) (*utils.SessionClaims, error)
}

// VerifySession lets the request through only when the cookie decrypts,
// has not expired and still points at a live session for the same user.
// The UserId and SessionId headers are always overwritten from the session.
func VerifySession(next http.Handler, tokens SessionTokenDecoder, findSession usecase.FindSessionRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r.Header.Del(helpers.UserIdHeader)
		r.Header.Del(helpers.SessionIdHeader)

		cookie, err := r.Cookie(utils.SessionCookieName)
		if err != nil || cookie.Value == "" {
			writeError(w, "missing session token", http.StatusUnauthorized)
			return
		}

		claims, err := tokens.DecodeToken(cookie.Value)
		if err != nil {
			if !errors.Is(err, utils.ErrExpiredSessionToken) {
				slog.Warn("Rejected session token", "error", err)
			}
			writeError(w, "invalid or expired session", http.StatusUnauthorized)
			return
		}

		session, err := findSession.Find(claims.SessionId)
		if err != nil {
			slog.Error("Error finding session", "sessionId", claims.SessionId, "error", err)
			writeError(w, "an error occurred when verifying session", http.StatusInternalServerError)
			return
		}

		if session == nil || session.IsExpired(time.Now()) || session.UserId.Hex() != claims.Subject {
			writeError(w, "invalid or expired session", http.StatusUnauthorized)
			return
		}

		r.Header.Set(helpers.UserIdHeader, claims.Subject)
		r.Header.Set(helpers.SessionIdHeader, session.Id)

		next.ServeHTTP(w, r)
	})
}

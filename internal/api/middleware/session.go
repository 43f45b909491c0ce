package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/aaravmahajanofficial/bakery-storefront/internal/config"
	"github.com/aaravmahajanofficial/bakery-storefront/internal/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type sessionContextKey struct{}

var SessionContextKey = sessionContextKey{}

const sessionIssuer = "bakery-storefront"

type SessionMiddleware struct {
	key        []byte
	cookieName string
	ttl        time.Duration
	secure     bool
	now        func() time.Time
}

func NewSessionMiddleware(cfg *config.Session) *SessionMiddleware {
	return &SessionMiddleware{
		key:        []byte(cfg.SigningKey),
		cookieName: cfg.CookieName,
		ttl:        cfg.TTL,
		secure:     cfg.Secure,
		now:        time.Now,
	}
}

// WithClock replaces the clock used to issue and check cookies.
func (m *SessionMiddleware) WithClock(now func() time.Time) *SessionMiddleware {
	m.now = now

	return m
}

// Sign issues a session token for sessionID.
func (m *SessionMiddleware) Sign(sessionID string) (string, error) {
	now := m.now()

	claims := &models.SessionClaims{
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    sessionIssuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.key)
}

func (m *SessionMiddleware) parse(token string) (*models.SessionClaims, error) {
	claims := &models.SessionClaims{}

	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}

		return m.key, nil
	}, jwt.WithIssuer(sessionIssuer), jwt.WithTimeFunc(m.now), jwt.WithExpirationRequired())
	if err != nil {
		return nil, err
	}

	if !parsed.Valid || claims.SessionID == "" {
		return nil, errors.New("invalid session token")
	}

	return claims, nil
}

func (m *SessionMiddleware) setCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     m.cookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(m.ttl.Seconds()),
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// Session makes sure every request carries a signed session cookie. A
// missing, tampered or expired cookie starts a new session; a cookie past
// half its lifetime is renewed for the same session.
func (m *SessionMiddleware) Session(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := LoggerFromContext(r.Context())

		var sessionID string
		renew := true

		if cookie, err := r.Cookie(m.cookieName); err == nil {
			claims, err := m.parse(cookie.Value)
			if err != nil {
				logger.Warn("Rejected session cookie", slog.String("error", err.Error()))
			} else {
				sessionID = claims.SessionID
				renew = claims.ExpiresAt.Time.Sub(m.now()) < m.ttl/2
			}
		}

		if sessionID == "" {
			sessionID = uuid.NewString()
			logger.Info("Started session", slog.String("session_id", sessionID))
		}

		if renew {
			token, err := m.Sign(sessionID)
			if err != nil {
				logger.Error("Failed to sign session", slog.Any("error", err))
			} else {
				m.setCookie(w, token)
			}
		}

		ctx := context.WithValue(r.Context(), SessionContextKey, sessionID)
		ctx = context.WithValue(ctx, LoggerKey, logger.With(slog.String("session_id", sessionID)))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func SessionFromContext(ctx context.Context) (string, bool) {
	sessionID, ok := ctx.Value(SessionContextKey).(string)

	return sessionID, ok && sessionID != ""
}

package http_identity_middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	CookieName = "uid"
	CookieTTL  = 30 * 24 * time.Hour

	userIDKey = "user_id"
)

type Middleware struct {
	secure bool
	logger *slog.Logger
}

type Option func(*Middleware)

func WithLogger(logger *slog.Logger) Option {
	return func(m *Middleware) {
		m.logger = logger
	}
}

// WithSecureCookie marks issued cookies as https-only.
func WithSecureCookie(secure bool) Option {
	return func(m *Middleware) {
		m.secure = secure
	}
}

func New(opts ...Option) *Middleware {
	m := &Middleware{
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Identify resolves the caller from the uid cookie, issuing a fresh one
// when it is absent or malformed. The cookie is refreshed on every request.
func (m *Middleware) Identify() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		userID, err := ctx.Cookie(CookieName)
		if err != nil || uuid.Validate(userID) != nil {
			userID = uuid.NewString()
			m.logger.Info("issued user identity", slog.String("user_id", userID))
		}

		http.SetCookie(ctx.Writer, &http.Cookie{
			Name:     CookieName,
			Value:    userID,
			Path:     "/",
			MaxAge:   int(CookieTTL / time.Second),
			HttpOnly: true,
			Secure:   m.secure,
			SameSite: http.SameSiteLaxMode,
		})

		ctx.Set(userIDKey, userID)
		ctx.Next()
	}
}

// UserID returns the identity stored by Identify, or "".
func UserID(ctx *gin.Context) string {
	return ctx.GetString(userIDKey)
}

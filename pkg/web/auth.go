package web

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/clubreads/clubreads/pkg/backend"
	"github.com/clubreads/clubreads/pkg/config"
	"github.com/clubreads/clubreads/pkg/db/models"
	"github.com/golang-jwt/jwt/v5"
)

// ProfileCtxKey is the context key for the authenticated profile.
var ProfileCtxKey = &struct{ string }{"profile"}

// profileFromContext returns the profile the auth middleware resolved.
func profileFromContext(ctx context.Context) (models.Profile, bool) {
	p, ok := ctx.Value(ProfileCtxKey).(models.Profile)
	return p, ok
}

// sessionClaims is what the auth provider puts in its session tokens.
type sessionClaims struct {
	Email     string `json:"email"`
	FullName  string `json:"name"`
	AvatarURL string `json:"picture"`
	jwt.RegisteredClaims
}

// NewAuthMiddleware verifies the bearer token on every request and
// resolves the profile behind it, creating the profile on first sight.
// Unauthenticated requests get a 401 pointing at the login URL.
func NewAuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		cfg := config.FromContext(ctx)
		logger := log.FromContext(ctx)

		token := bearerToken(r)
		if token == "" {
			renderUnauthorized(w, r, "missing bearer token")
			return
		}

		var claims sessionClaims
		opts := []jwt.ParserOption{
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
		}
		if cfg.Auth.Issuer != "" {
			opts = append(opts, jwt.WithIssuer(cfg.Auth.Issuer))
		}
		_, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (interface{}, error) {
			return []byte(cfg.Auth.JWTSecret), nil
		}, opts...)
		if err != nil {
			logger.Debug("invalid session token", "err", err)
			renderUnauthorized(w, r, "invalid session token")
			return
		}
		if claims.Subject == "" || claims.Email == "" {
			renderUnauthorized(w, r, "incomplete session token")
			return
		}

		be := backend.FromContext(ctx)
		profile, err := be.AuthorizeProfile(ctx, claims.Subject, claims.Email, claims.FullName, claims.AvatarURL)
		if err != nil {
			renderError(w, r, err)
			return
		}

		r = r.WithContext(context.WithValue(ctx, ProfileCtxKey, profile))
		next.ServeHTTP(w, r)
	})
}

func bearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if len(auth) > len(prefix) && strings.EqualFold(auth[:len(prefix)], prefix) {
		return auth[len(prefix):]
	}
	return ""
}

func renderUnauthorized(w http.ResponseWriter, r *http.Request, msg string) {
	cfg := config.FromContext(r.Context())
	login := cfg.Auth.LoginURL
	if login != "" {
		login += "?next=" + url.QueryEscape(r.URL.RequestURI())
	}
	renderJSON(w, http.StatusUnauthorized, errorResponse{Error: msg, LoginURL: login})
}

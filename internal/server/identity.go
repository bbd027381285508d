package server

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/CGAmico/Invictus-Fitness/internal/models"
	"tailscale.com/client/tailscale/apitype"
)

type contextKey int

const userInfoKey contextKey = iota

// UserInfo is the identity the transport vouched for.
type UserInfo struct {
	Login       string `json:"login"`
	DisplayName string `json:"display_name"`
}

var devUser = UserInfo{Login: "local", DisplayName: "Local Dev User"}

// userInfoFromContext returns the identity set by DevIdentity or
// TailscaleIdentity, or the local dev user when none was set.
func userInfoFromContext(r *http.Request) UserInfo {
	if info, ok := r.Context().Value(userInfoKey).(UserInfo); ok {
		return info
	}
	return devUser
}

// WhoIsClient is satisfied by the tsnet local client.
type WhoIsClient interface {
	WhoIs(ctx context.Context, remoteAddr string) (*apitype.WhoIsResponse, error)
}

// DevIdentity treats every request as coming from login. Used when
// Tailscale is disabled.
func DevIdentity(login string) func(http.Handler) http.Handler {
	info := devUser
	if login != "" {
		info.Login = login
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), userInfoKey, info)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// TailscaleIdentity resolves the tailnet user behind the connection.
func TailscaleIdentity(lc WhoIsClient, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			who, err := lc.WhoIs(r.Context(), r.RemoteAddr)
			if err != nil || who.UserProfile == nil {
				log.Warn("tailscale whois failed", "remote", r.RemoteAddr, "error", err)
				writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "unknown tailnet identity"})
				return
			}
			info := UserInfo{
				Login:       who.UserProfile.LoginName,
				DisplayName: who.UserProfile.DisplayName,
			}
			ctx := context.WithValue(r.Context(), userInfoKey, info)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ResolveActor maps the request identity to a profile, creating it on
// first sight, and stores the resulting actor in the context.
func ResolveActor(accounts AccountService, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			info := userInfoFromContext(r)
			profile, err := accounts.Resolve(r.Context(), info.Login, info.DisplayName)
			if err != nil {
				log.Error("resolving profile", "login", info.Login, "error", err)
				writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "could not resolve profile"})
				return
			}
			ctx := models.WithActor(r.Context(), profile.Actor())
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// actorFrom returns the actor of an authenticated request. It writes a 401
// and reports false when the identity middleware did not run.
func actorFrom(w http.ResponseWriter, r *http.Request) (models.Actor, bool) {
	actor, ok := models.ActorFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "not authenticated"})
	}
	return actor, ok
}

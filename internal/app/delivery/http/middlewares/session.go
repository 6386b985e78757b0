package middlewares

import (
	"medtrack-portal/internal/app/models"
	"medtrack-portal/internal/app/services/core/gate"
	"medtrack-portal/internal/pkg/constvars"
	"medtrack-portal/internal/pkg/utils"
	"net/http"

	"go.uber.org/zap"
)

// LoadSession resolves the session cookie and puts the session and its API
// token in the request context. A missing or stale cookie leaves the
// request anonymous.
func (m *Middlewares) LoadSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sessionConfig := m.InternalConfig.Session
		cookie, err := r.Cookie(sessionConfig.CookieName)
		if err != nil || cookie.Value == "" {
			next.ServeHTTP(w, r)
			return
		}

		session, err := m.SessionService.Resolve(r.Context(), cookie.Value)
		if err != nil {
			m.Log.Info("Middlewares.LoadSession dropping stale session cookie",
				zap.String(constvars.LoggingRequestIDKey, utils.GetRequestIDFromContext(r.Context())),
				zap.Error(err),
			)
			utils.ClearSessionCookie(w, sessionConfig.CookieName, m.InternalConfig.App.SecureCookies)
			next.ServeHTTP(w, r)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.ContextWithSession(r.Context(), session)))
	})
}

// RequireRoles guards a page group. With no roles it only demands a logged
// in user that has picked a role.
func (m *Middlewares) RequireRoles(roles ...models.Role) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user := utils.GetSessionFromContext(r.Context()).CurrentUser()
			decision := gate.Decide(user, roles...)
			if decision.Outcome != gate.Render {
				m.Log.Info("Middlewares.RequireRoles redirecting",
					zap.String(constvars.LoggingRequestIDKey, utils.GetRequestIDFromContext(r.Context())),
					zap.String(constvars.LoggingEndpointKey, r.URL.Path),
					zap.String("outcome", decision.Outcome.String()),
				)
				http.Redirect(w, r, decision.Location, constvars.StatusSeeOther)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireSession admits any logged in user, with or without a role. Role
// selection and setup sit behind it.
func (m *Middlewares) RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if utils.GetSessionFromContext(r.Context()).CurrentUser() == nil {
			http.Redirect(w, r, constvars.RoutePathLogin, constvars.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RedirectAuthenticated sends logged in users away from the login and
// signup pages.
func (m *Middlewares) RedirectAuthenticated(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if user := utils.GetSessionFromContext(r.Context()).CurrentUser(); user != nil {
			http.Redirect(w, r, gate.PostAuthPath(user), constvars.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}

package router

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/finadvise/auth-service/internal/domain"
)

type HealthHandler interface {
	Healthz(w http.ResponseWriter, r *http.Request)
	Readyz(w http.ResponseWriter, r *http.Request)
}

type AuthHandler interface {
	Login(w http.ResponseWriter, r *http.Request)
}

type ProtectedHandler interface {
	Me(w http.ResponseWriter, r *http.Request)
	AdvisorClients(w http.ResponseWriter, r *http.Request)
	AdminUsers(w http.ResponseWriter, r *http.Request)
}

type Deps struct {
	Health    HealthHandler
	Auth      AuthHandler
	Protected ProtectedHandler

	RequestIDMW func(http.Handler) http.Handler
	AuthMW      func(http.Handler) http.Handler
	// RequireRoles builds the role gate for one route's declared set.
	RequireRoles func(required domain.RoleSet) func(http.Handler) http.Handler

	// RLLogin is optional login rate limiting; nil disables it.
	RLLogin func(http.Handler) http.Handler
}

// guardedRoute declares a protected endpoint together with the role set it
// requires. An empty set admits any authenticated identity. The declaration
// is data; one generic guard chain evaluates it.
type guardedRoute struct {
	method  string
	pattern string
	roles   domain.RoleSet
	handler http.HandlerFunc
}

func New(deps Deps) (http.Handler, error) {
	if deps.Health == nil {
		return nil, fmt.Errorf("nil Health handler")
	}
	if deps.Auth == nil {
		return nil, fmt.Errorf("nil Auth handler")
	}
	if deps.Protected == nil {
		return nil, fmt.Errorf("nil Protected handler")
	}
	if deps.AuthMW == nil {
		return nil, fmt.Errorf("nil Auth middleware")
	}
	if deps.RequireRoles == nil {
		return nil, fmt.Errorf("nil RequireRoles factory")
	}

	guarded := []guardedRoute{
		{http.MethodGet, "/api/me", nil, deps.Protected.Me},
		{http.MethodGet, "/api/advisor/clients", domain.NewRoleSet(domain.RoleAdvisor), deps.Protected.AdvisorClients},
		{http.MethodGet, "/api/admin/users", domain.NewRoleSet(domain.RoleAdmin), deps.Protected.AdminUsers},
	}

	r := chi.NewRouter()
	if deps.RequestIDMW != nil {
		r.Use(deps.RequestIDMW)
	}

	r.Get("/healthz", deps.Health.Healthz)
	r.Get("/readyz", deps.Health.Readyz)

	if deps.RLLogin != nil {
		r.With(deps.RLLogin).Post("/auth/login", deps.Auth.Login)
	} else {
		r.Post("/auth/login", deps.Auth.Login)
	}

	for _, gr := range guarded {
		r.With(deps.AuthMW, deps.RequireRoles(gr.roles)).Method(gr.method, gr.pattern, gr.handler)
	}

	return r, nil
}

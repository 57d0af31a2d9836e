package handlers

import (
	"net/http"

	"github.com/finadvise/auth-service/internal/application/auth"
	"github.com/finadvise/auth-service/internal/domain"
	"github.com/finadvise/auth-service/internal/transport/http/dto"
	"github.com/finadvise/auth-service/internal/transport/http/middleware"
	"github.com/finadvise/auth-service/internal/transport/http/response"
)

// ProtectedHandler serves the endpoints behind the guard chain.
type ProtectedHandler struct {
	svc *auth.Service
}

func NewProtectedHandler(svc *auth.Service) *ProtectedHandler {
	return &ProtectedHandler{svc: svc}
}

// Me handles GET /api/me for any authenticated role.
func (h *ProtectedHandler) Me(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		response.WriteError(w, r, domain.ErrTokenInvalid())
		return
	}

	u, err := h.svc.GetUserByID(r.Context(), claims.UserID)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	response.OK(w, dto.MeData{User: dto.NewUserView(u)})
}

// AdvisorClients handles GET /api/advisor/clients (advisor only).
func (h *ProtectedHandler) AdvisorClients(w http.ResponseWriter, r *http.Request) {
	clients, err := h.svc.ListClients(r.Context())
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	response.OK(w, dto.ClientsData{Clients: dto.NewUserViews(clients)})
}

// AdminUsers handles GET /api/admin/users (admin only).
func (h *ProtectedHandler) AdminUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.svc.ListUsers(r.Context())
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	response.OK(w, dto.UsersData{Users: dto.NewUserViews(users)})
}

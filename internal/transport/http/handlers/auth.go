package handlers

import (
	"net/http"

	"github.com/finadvise/auth-service/internal/application/auth"
	"github.com/finadvise/auth-service/internal/audit"
	"github.com/finadvise/auth-service/internal/domain"
	"github.com/finadvise/auth-service/internal/transport/http/dto"
	"github.com/finadvise/auth-service/internal/transport/http/response"
)

type AuthHandler struct {
	svc *auth.Service
	aud *audit.Logger
}

func NewAuthHandler(svc *auth.Service, aud *audit.Logger) *AuthHandler {
	return &AuthHandler{svc: svc, aud: aud}
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		// An unreadable body carries no credentials; same 400 as missing fields.
		response.WriteError(w, r, domain.ErrCredentialsRequired())
		return
	}

	if err := req.Validate(); err != nil {
		response.WriteError(w, r, err)
		return
	}

	res, err := h.svc.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		if h.aud != nil && domain.Is(err, "invalid_credentials") {
			h.aud.LoginFailed(r.Context(), req.Username, "invalid_credentials")
		}
		response.WriteError(w, r, err)
		return
	}

	if h.aud != nil {
		h.aud.LoginSuccess(r.Context(), res.User.Username, string(res.User.Role))
	}

	response.OK(w, dto.NewLoginResponse(res.User, res.Token))
}

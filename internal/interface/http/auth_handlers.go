package http

import (
	"net/http"

	domuser "example.com/product-catalog/internal/domain/user"
	authuc "example.com/product-catalog/internal/usecase/auth"
)

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

func (a *API) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := a.decodeAndValidate(r, &req); err != nil {
		respondBadRequest(w, err)
		return
	}

	session, err := a.authSvc.Login(r.Context(), authuc.Credentials{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		a.handleDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"token":     session.Token,
		"user":      mapUser(session.Operator),
		"can_write": session.CanWrite,
	})
}

func mapUser(u *domuser.User) map[string]any {
	return map[string]any{
		"id":        u.ID,
		"name":      u.Name,
		"email":     u.Email,
		"role_code": u.RoleCode,
	}
}

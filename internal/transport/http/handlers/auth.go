package handlers

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/deptboard/board-service/internal/application/auth"
	"github.com/deptboard/board-service/internal/transport/http/dto"
	"github.com/deptboard/board-service/internal/transport/http/response"
)

type AuthHandler struct {
	svc      *auth.Service
	validate *validator.Validate
}

func NewAuthHandler(svc *auth.Service, validate *validator.Validate) *AuthHandler {
	return &AuthHandler{svc: svc, validate: validate}
}

// Signup handles POST /api/auth/signup.
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req dto.SignupRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		response.WriteError(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		response.WriteError(w, r, domainValidationError(err))
		return
	}

	res, err := h.svc.Signup(r.Context(), auth.SignupInput{
		Name:         req.Name,
		Email:        req.Email,
		MatricNumber: req.MatricNumber,
		Level:        req.Level,
		Password:     req.Password,
		StudentType:  req.StudentType,
		Phone:        req.Phone,
	})
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	response.WriteJSON(w, http.StatusCreated, dto.AuthResponse{
		Success: true,
		Message: "Account created successfully",
		User:    dto.NewUserView(res.User),
		Token:   res.Token,
	})
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		response.WriteError(w, r, err)
		return
	}

	res, err := h.svc.Login(r.Context(), auth.LoginInput{
		Identifier:   req.Identifier,
		Email:        req.Email,
		MatricNumber: req.MatricNumber,
		Password:     req.Password,
	})
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	response.WriteJSON(w, http.StatusOK, dto.AuthResponse{
		Success: true,
		Message: "Login successful",
		User:    dto.NewUserView(res.User),
		Token:   res.Token,
	})
}

// Verify handles POST /api/auth/verify. The token comes from the body, or
// from the Authorization header as a fallback.
func (h *AuthHandler) Verify(w http.ResponseWriter, r *http.Request) {
	var req dto.VerifyRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		response.WriteError(w, r, err)
		return
	}
	if req.Token == "" {
		if h := r.Header.Get("Authorization"); len(h) > 7 && h[:7] == "Bearer " {
			req.Token = h[7:]
		}
	}

	user, err := h.svc.Verify(r.Context(), req.Token)
	if err != nil {
		response.WriteJSON(w, response.StatusOf(err), dto.VerifyResponse{
			Valid: false,
			Error: "Invalid or expired token",
		})
		return
	}

	view := dto.NewUserView(user)
	response.WriteJSON(w, http.StatusOK, dto.VerifyResponse{Valid: true, User: &view})
}

package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"panchayat.backend/internal/domain/access"
	"panchayat.backend/internal/domain/entities"
	domainerrors "panchayat.backend/internal/domain/errors"
	"panchayat.backend/internal/interfaces/http/middleware"
	"panchayat.backend/internal/interfaces/http/response"
	"panchayat.backend/internal/usecases"
)

type authService interface {
	Register(ctx context.Context, reg *entities.Registration) (*entities.Identity, error)
	Login(ctx context.Context, input *entities.LoginInput) (*entities.AuthResponse, error)
	Me(ctx context.Context, actor access.Actor) (*entities.Identity, error)
	Logout(ctx context.Context, session *usecases.Session) error
}

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	authUsecase authService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authUsecase authService) *AuthHandler {
	return &AuthHandler{authUsecase: authUsecase}
}

// Register handles user registration. The body is a tagged variant keyed by
// User_type, so it is decoded by the entities package rather than bound.
// POST /api/v1/user/register
func (h *AuthHandler) Register(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		response.Error(c, domainerrors.BadRequest("could not read request body"))
		return
	}
	reg, err := entities.DecodeRegistration(body)
	if err != nil {
		response.Error(c, err)
		return
	}

	identity, err := h.authUsecase.Register(c.Request.Context(), reg)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"message": "Registration successful. An administrator must verify the account before login.",
		"user":    identity,
	})
}

// Login handles user login
// POST /api/v1/user/login
func (h *AuthHandler) Login(c *gin.Context) {
	var input entities.LoginInput
	if !bindJSON(c, &input) {
		return
	}

	authResponse, err := h.authUsecase.Login(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, authResponse)
}

// Me returns the caller's identity
// GET /api/v1/user/me
func (h *AuthHandler) Me(c *gin.Context) {
	identity, err := h.authUsecase.Me(c.Request.Context(), middleware.GetActor(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, identity)
}

// Logout revokes the presented token
// POST /api/v1/user/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	session, ok := middleware.GetSession(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}
	if err := h.authUsecase.Logout(c.Request.Context(), session); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Logged out successfully")
}

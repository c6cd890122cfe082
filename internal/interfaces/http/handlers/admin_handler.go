package handlers

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/volatiletech/null/v8"
	"panchayat.backend/internal/domain/access"
	"panchayat.backend/internal/domain/entities"
	domainerrors "panchayat.backend/internal/domain/errors"
	"panchayat.backend/internal/interfaces/http/middleware"
	"panchayat.backend/internal/interfaces/http/response"
	"panchayat.backend/internal/usecases"
)

type adminService interface {
	ListUsers(ctx context.Context, actor access.Actor, filter entities.UserFilter, page, limit int) (*usecases.UserPage, error)
	VerifyUser(ctx context.Context, actor access.Actor, username string) (*entities.User, error)
	DeleteUser(ctx context.Context, actor access.Actor, username string) error
	ListActivity(ctx context.Context, actor access.Actor, username string, page, limit int) (*usecases.ActivityPage, error)
}

// AdminHandler handles account administration
type AdminHandler struct {
	adminUsecase adminService
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(adminUsecase adminService) *AdminHandler {
	return &AdminHandler{adminUsecase: adminUsecase}
}

// ListUsers lists accounts, optionally filtered by ?verified= and ?role=
// GET /api/v1/admin/users
func (h *AdminHandler) ListUsers(c *gin.Context) {
	var filter entities.UserFilter
	if v := c.Query("verified"); v != "" {
		verified, err := strconv.ParseBool(v)
		if err != nil {
			response.Error(c, domainerrors.BadRequest("verified must be true or false"))
			return
		}
		filter.Verified = null.BoolFrom(verified)
	}
	if v := c.Query("role"); v != "" {
		filter.Role = entities.UserRole(strings.ToUpper(v))
	}
	page, limit, err := parsePage(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	users, err := h.adminUsecase.ListUsers(c.Request.Context(), middleware.GetActor(c), filter, page, limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"users": users.Items, "meta": users.Meta})
}

// VerifyUser marks an account as verified
// PUT /api/v1/admin/verify/:username
func (h *AdminHandler) VerifyUser(c *gin.Context) {
	user, err := h.adminUsecase.VerifyUser(c.Request.Context(), middleware.GetActor(c), c.Param("username"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"message": "User verified successfully",
		"user":    user,
	})
}

// DeleteUser removes an account and everything its profile owns
// DELETE /api/v1/admin/delete/:username
func (h *AdminHandler) DeleteUser(c *gin.Context) {
	if err := h.adminUsecase.DeleteUser(c.Request.Context(), middleware.GetActor(c), c.Param("username")); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, http.StatusOK, "User deleted successfully")
}

// ListActivity returns the audit trail for a username
// GET /api/v1/admin/activity/:username
func (h *AdminHandler) ListActivity(c *gin.Context) {
	page, limit, err := parsePage(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	entries, err := h.adminUsecase.ListActivity(c.Request.Context(), middleware.GetActor(c), c.Param("username"), page, limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"activity": entries.Items, "meta": entries.Meta})
}

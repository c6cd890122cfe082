package handlers

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"panchayat.backend/internal/domain/access"
	domainerrors "panchayat.backend/internal/domain/errors"
	"panchayat.backend/internal/interfaces/http/middleware"
	"panchayat.backend/internal/interfaces/http/response"
)

// ownLister lists the records belonging to the acting citizen.
type ownLister[T any] interface {
	ListMine(ctx context.Context, actor access.Actor) ([]*T, error)
}

// citizenLister lists the records of a citizen named by username.
type citizenLister[T any] interface {
	ListForCitizen(ctx context.Context, actor access.Actor, username string) ([]*T, error)
}

func parseID(c *gin.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, domainerrors.BadRequest(fmt.Sprintf("invalid %s", name))
	}
	return uint(id), nil
}

func parseYear(c *gin.Context) (int, error) {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil || year <= 0 {
		return 0, domainerrors.BadRequest("invalid year")
	}
	return year, nil
}

// parsePage reads page and limit query values. Missing values are left at
// zero for the usecase to default.
func parsePage(c *gin.Context) (page, limit int, err error) {
	if v := c.Query("page"); v != "" {
		if page, err = strconv.Atoi(v); err != nil {
			return 0, 0, domainerrors.BadRequest("page must be a number")
		}
	}
	if v := c.Query("limit"); v != "" {
		if limit, err = strconv.Atoi(v); err != nil {
			return 0, 0, domainerrors.BadRequest("limit must be a number")
		}
	}
	return page, limit, nil
}

func bindJSON(c *gin.Context, dst interface{}) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return false
	}
	return true
}

// listOwn serves GET endpoints returning the caller's own records under key.
func listOwn[T any](c *gin.Context, svc ownLister[T], key string) {
	items, err := svc.ListMine(c.Request.Context(), middleware.GetActor(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{key: items})
}

// listForCitizen serves GET endpoints returning the records of the citizen in
// the :username path segment under key.
func listForCitizen[T any](c *gin.Context, svc citizenLister[T], key string) {
	items, err := svc.ListForCitizen(c.Request.Context(), middleware.GetActor(c), c.Param("username"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{key: items})
}

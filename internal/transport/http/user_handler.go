package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/artistdesk/artistdesk-api/internal/repository/ports"
	"github.com/artistdesk/artistdesk-api/internal/service"
	"github.com/artistdesk/artistdesk-api/internal/util"
)

type UserHandler struct {
	users *service.UserService
}

// UserUpdateRequest carries partial account updates; absent fields keep
// their stored values.
type UserUpdateRequest struct {
	Username     *string `json:"username,omitempty"`
	TypeOfEntity *string `json:"type_of_entity,omitempty"`
	Name         *string `json:"name,omitempty"`
	Surname      *string `json:"surname,omitempty"`
	EmailAddress *string `json:"email_address,omitempty"`
	PhoneNumber  *string `json:"phone_number,omitempty"`
	VatID        *string `json:"vat_id,omitempty"`
	BankAccount  *string `json:"bank_account,omitempty"`
}

func RegisterUsers(e *echo.Echo, auth *service.AuthService, users *service.UserService) {
	handler := &UserHandler{users: users}

	g := e.Group("/user", RequireAuth(auth), RequireActive())
	g.GET("/me", handler.me)
	g.GET("/:id", handler.get)
	g.PATCH("", handler.update)
	g.PATCH("/deactivation", handler.deactivate)
	g.GET("/:id/profiles", handler.listProfiles)
	g.GET("/:id/contracts", handler.listContracts)
}

// me handles GET /user/me
func (h *UserHandler) me(c echo.Context) error {
	user, ok := CurrentUser(c)
	if !ok || user == nil {
		return unauthorized(c, service.ErrUnauthorized.Error())
	}
	return c.JSON(http.StatusOK, user)
}

// get handles GET /user/{id}
func (h *UserHandler) get(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid user id"))
	}

	user, err := h.users.Get(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			return c.JSON(http.StatusNotFound, util.Error(err.Error()))
		}
		return c.JSON(http.StatusInternalServerError, util.Error("unable to load user"))
	}
	return c.JSON(http.StatusOK, user)
}

// update handles PATCH /user; the caller can only modify its own account.
func (h *UserHandler) update(c echo.Context) error {
	user, ok := CurrentUser(c)
	if !ok || user == nil {
		return unauthorized(c, service.ErrUnauthorized.Error())
	}

	var req UserUpdateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
	}

	updated, err := h.users.Update(c.Request().Context(), user.ID, ports.UserUpdate{
		Username:     req.Username,
		TypeOfEntity: req.TypeOfEntity,
		Name:         req.Name,
		Surname:      req.Surname,
		EmailAddress: req.EmailAddress,
		PhoneNumber:  req.PhoneNumber,
		VatID:        req.VatID,
		BankAccount:  req.BankAccount,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			return c.JSON(http.StatusNotFound, util.Error(err.Error()))
		case errors.Is(err, service.ErrDuplicateUser):
			return c.JSON(http.StatusConflict, util.Error(err.Error()))
		default:
			return c.JSON(http.StatusInternalServerError, util.Error("unable to update user"))
		}
	}
	return c.JSON(http.StatusOK, updated)
}

// deactivate handles PATCH /user/deactivation; the account stays on disk
// with is_active cleared.
func (h *UserHandler) deactivate(c echo.Context) error {
	user, ok := CurrentUser(c)
	if !ok || user == nil {
		return unauthorized(c, service.ErrUnauthorized.Error())
	}

	deactivated, err := h.users.Deactivate(c.Request().Context(), user.ID, nil)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			return c.JSON(http.StatusNotFound, util.Error(err.Error()))
		}
		return c.JSON(http.StatusInternalServerError, util.Error("unable to deactivate user"))
	}
	return c.JSON(http.StatusOK, deactivated)
}

// listProfiles handles GET /user/{id}/profiles
func (h *UserHandler) listProfiles(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid user id"))
	}

	profiles, err := h.users.ListProfiles(c.Request().Context(), id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, util.Error("unable to list profiles"))
	}
	return c.JSON(http.StatusOK, profiles)
}

// listContracts handles GET /user/{id}/contracts; only the account itself
// may enumerate its contracts.
func (h *UserHandler) listContracts(c echo.Context) error {
	user, ok := CurrentUser(c)
	if !ok || user == nil {
		return unauthorized(c, service.ErrUnauthorized.Error())
	}

	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid user id"))
	}
	if id != user.ID {
		return c.JSON(http.StatusForbidden, util.Error(service.ErrOwnershipMismatch.Error()))
	}

	contracts, err := h.users.ListContracts(c.Request().Context(), id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, util.Error("unable to list contracts"))
	}
	return c.JSON(http.StatusOK, contracts)
}

func parseID(c echo.Context, param string) (int64, error) {
	return strconv.ParseInt(c.Param(param), 10, 64)
}

package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/artistdesk/artistdesk-api/internal/repository/ports"
	"github.com/artistdesk/artistdesk-api/internal/service"
	"github.com/artistdesk/artistdesk-api/internal/util"
)

type AccommodationHandler struct {
	accommodations *service.AccommodationService
}

type AccommodationCreateRequest struct {
	Name            string    `json:"name"`
	ContactPerson   *string   `json:"contact_person,omitempty"`
	Address         string    `json:"address"`
	TelephoneNumber string    `json:"telephone_number"`
	Email           *string   `json:"email,omitempty"`
	Website         *string   `json:"website,omitempty"`
	URL             *string   `json:"url,omitempty"`
	CheckIn         time.Time `json:"check_in"`
	CheckOut        time.Time `json:"check_out"`
}

type AccommodationUpdateRequest struct {
	Name            *string    `json:"name,omitempty"`
	ContactPerson   *string    `json:"contact_person,omitempty"`
	Address         *string    `json:"address,omitempty"`
	TelephoneNumber *string    `json:"telephone_number,omitempty"`
	Email           *string    `json:"email,omitempty"`
	Website         *string    `json:"website,omitempty"`
	URL             *string    `json:"url,omitempty"`
	CheckIn         *time.Time `json:"check_in,omitempty"`
	CheckOut        *time.Time `json:"check_out,omitempty"`
}

type AccommodationCreateResponse struct {
	AccommodationID int64 `json:"accommodation_id"`
}

func RegisterAccommodations(e *echo.Echo, auth *service.AuthService, accommodations *service.AccommodationService) {
	handler := &AccommodationHandler{accommodations: accommodations}

	g := e.Group("/accommodation", RequireAuth(auth), RequireActive())
	g.POST("", handler.create)
	g.GET("/:id", handler.get)
	g.PATCH("/:id", handler.update)
	g.DELETE("/:id", handler.delete)
}

// create handles POST /accommodation
func (h *AccommodationHandler) create(c echo.Context) error {
	user, ok := CurrentUser(c)
	if !ok || user == nil {
		return unauthorized(c, service.ErrUnauthorized.Error())
	}

	var req AccommodationCreateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
	}
	if req.Name == "" || req.Address == "" {
		return c.JSON(http.StatusBadRequest, util.Error("name and address required"))
	}

	id, err := h.accommodations.Create(c.Request().Context(), user.ID, ports.AccommodationCreate{
		Name:            req.Name,
		ContactPerson:   req.ContactPerson,
		Address:         req.Address,
		TelephoneNumber: req.TelephoneNumber,
		Email:           req.Email,
		Website:         req.Website,
		URL:             req.URL,
		CheckIn:         req.CheckIn,
		CheckOut:        req.CheckOut,
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, util.Error("unable to create accommodation"))
	}
	return c.JSON(http.StatusCreated, AccommodationCreateResponse{AccommodationID: id})
}

// get handles GET /accommodation/{id}; owner only.
func (h *AccommodationHandler) get(c echo.Context) error {
	user, ok := CurrentUser(c)
	if !ok || user == nil {
		return unauthorized(c, service.ErrUnauthorized.Error())
	}

	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid accommodation id"))
	}

	accommodation, err := h.accommodations.Get(c.Request().Context(), id, user.ID)
	if err != nil {
		return accommodationError(c, err, "unable to load accommodation")
	}
	return c.JSON(http.StatusOK, accommodation)
}

// update handles PATCH /accommodation/{id}
func (h *AccommodationHandler) update(c echo.Context) error {
	user, ok := CurrentUser(c)
	if !ok || user == nil {
		return unauthorized(c, service.ErrUnauthorized.Error())
	}

	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid accommodation id"))
	}

	var req AccommodationUpdateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
	}

	updated, err := h.accommodations.Update(c.Request().Context(), id, user.ID, ports.AccommodationUpdate{
		Name:            req.Name,
		ContactPerson:   req.ContactPerson,
		Address:         req.Address,
		TelephoneNumber: req.TelephoneNumber,
		Email:           req.Email,
		Website:         req.Website,
		URL:             req.URL,
		CheckIn:         req.CheckIn,
		CheckOut:        req.CheckOut,
	})
	if err != nil {
		return accommodationError(c, err, "unable to update accommodation")
	}
	return c.JSON(http.StatusOK, updated)
}

// delete handles DELETE /accommodation/{id}
func (h *AccommodationHandler) delete(c echo.Context) error {
	user, ok := CurrentUser(c)
	if !ok || user == nil {
		return unauthorized(c, service.ErrUnauthorized.Error())
	}

	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid accommodation id"))
	}

	if err := h.accommodations.Delete(c.Request().Context(), id, user.ID); err != nil {
		return accommodationError(c, err, "unable to delete accommodation")
	}
	return c.JSON(http.StatusOK, util.Message("accommodation deleted"))
}

func accommodationError(c echo.Context, err error, fallback string) error {
	switch {
	case errors.Is(err, service.ErrAccommodationNotFound):
		return c.JSON(http.StatusNotFound, util.Error(err.Error()))
	case errors.Is(err, service.ErrOwnershipMismatch):
		return c.JSON(http.StatusForbidden, util.Error(err.Error()))
	default:
		return c.JSON(http.StatusInternalServerError, util.Error(fallback))
	}
}

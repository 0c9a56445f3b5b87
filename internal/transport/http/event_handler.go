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

type EventHandler struct {
	events *service.EventService
}

type EventCreateRequest struct {
	Name                string    `json:"name"`
	ContractID          int64     `json:"contract_id"`
	ProfileOfferorID    int64     `json:"profile_offeror_id"`
	ProfileOffereeID    int64     `json:"profile_offeree_id"`
	ContactPerson       *string   `json:"contact_person,omitempty"`
	ContactPhone        *string   `json:"contact_phone,omitempty"`
	Date                time.Time `json:"date"`
	DurationMinutes     int64     `json:"duration_minutes"`
	Start               string    `json:"start"`
	End                 *string   `json:"end,omitempty"`
	Arrive              time.Time `json:"arrive"`
	StageSet            string    `json:"stage_set"`
	StageCheck          string    `json:"stage_check"`
	CateringOpen        *string   `json:"catering_open,omitempty"`
	CateringClose       *string   `json:"catering_close,omitempty"`
	MealTime            *string   `json:"meal_time,omitempty"`
	MealLocationName    *string   `json:"meal_location_name,omitempty"`
	MealLocationAddress *string   `json:"meal_location_address,omitempty"`
	AccommodationID     *int64    `json:"accommodation_id,omitempty"`
}

type EventUpdateRequest struct {
	Name                *string    `json:"name,omitempty"`
	ContactPerson       *string    `json:"contact_person,omitempty"`
	ContactPhone        *string    `json:"contact_phone,omitempty"`
	Date                *time.Time `json:"date,omitempty"`
	DurationMinutes     *int64     `json:"duration_minutes,omitempty"`
	Start               *string    `json:"start,omitempty"`
	End                 *string    `json:"end,omitempty"`
	Arrive              *time.Time `json:"arrive,omitempty"`
	StageSet            *string    `json:"stage_set,omitempty"`
	StageCheck          *string    `json:"stage_check,omitempty"`
	CateringOpen        *string    `json:"catering_open,omitempty"`
	CateringClose       *string    `json:"catering_close,omitempty"`
	MealTime            *string    `json:"meal_time,omitempty"`
	MealLocationName    *string    `json:"meal_location_name,omitempty"`
	MealLocationAddress *string    `json:"meal_location_address,omitempty"`
	AccommodationID     *int64     `json:"accommodation_id,omitempty"`
}

type EventCreateResponse struct {
	EventID int64 `json:"event_id"`
}

func RegisterEvents(e *echo.Echo, auth *service.AuthService, events *service.EventService) {
	handler := &EventHandler{events: events}

	g := e.Group("/event", RequireAuth(auth), RequireActive())
	g.POST("", handler.create)
	g.GET("/:id", handler.get)
	g.PATCH("/:id", handler.update)
	g.DELETE("/:id", handler.delete)
}

// create handles POST /event; the caller must be the offeror of the
// referenced contract.
func (h *EventHandler) create(c echo.Context) error {
	user, ok := CurrentUser(c)
	if !ok || user == nil {
		return unauthorized(c, service.ErrUnauthorized.Error())
	}

	var req EventCreateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
	}
	if req.Name == "" || req.ContractID == 0 {
		return c.JSON(http.StatusBadRequest, util.Error("name and contract_id required"))
	}

	id, err := h.events.Create(c.Request().Context(), user.ID, ports.EventCreate{
		Name:                req.Name,
		ContractID:          req.ContractID,
		ProfileOfferorID:    req.ProfileOfferorID,
		ProfileOffereeID:    req.ProfileOffereeID,
		ContactPerson:       req.ContactPerson,
		ContactPhone:        req.ContactPhone,
		Date:                req.Date,
		DurationMinutes:     req.DurationMinutes,
		Start:               req.Start,
		End:                 req.End,
		Arrive:              req.Arrive,
		StageSet:            req.StageSet,
		StageCheck:          req.StageCheck,
		CateringOpen:        req.CateringOpen,
		CateringClose:       req.CateringClose,
		MealTime:            req.MealTime,
		MealLocationName:    req.MealLocationName,
		MealLocationAddress: req.MealLocationAddress,
		AccommodationID:     req.AccommodationID,
	})
	if err != nil {
		return eventError(c, err, "unable to create event")
	}
	return c.JSON(http.StatusCreated, EventCreateResponse{EventID: id})
}

// get handles GET /event/{id}
func (h *EventHandler) get(c echo.Context) error {
	user, ok := CurrentUser(c)
	if !ok || user == nil {
		return unauthorized(c, service.ErrUnauthorized.Error())
	}

	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid event id"))
	}

	event, err := h.events.Get(c.Request().Context(), id, user.ID)
	if err != nil {
		return eventError(c, err, "unable to load event")
	}
	return c.JSON(http.StatusOK, event)
}

// update handles PATCH /event/{id}
func (h *EventHandler) update(c echo.Context) error {
	user, ok := CurrentUser(c)
	if !ok || user == nil {
		return unauthorized(c, service.ErrUnauthorized.Error())
	}

	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid event id"))
	}

	var req EventUpdateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
	}

	updated, err := h.events.Update(c.Request().Context(), id, user.ID, ports.EventUpdate{
		Name:                req.Name,
		ContactPerson:       req.ContactPerson,
		ContactPhone:        req.ContactPhone,
		Date:                req.Date,
		DurationMinutes:     req.DurationMinutes,
		Start:               req.Start,
		End:                 req.End,
		Arrive:              req.Arrive,
		StageSet:            req.StageSet,
		StageCheck:          req.StageCheck,
		CateringOpen:        req.CateringOpen,
		CateringClose:       req.CateringClose,
		MealTime:            req.MealTime,
		MealLocationName:    req.MealLocationName,
		MealLocationAddress: req.MealLocationAddress,
		AccommodationID:     req.AccommodationID,
	})
	if err != nil {
		return eventError(c, err, "unable to update event")
	}
	return c.JSON(http.StatusOK, updated)
}

// delete handles DELETE /event/{id}
func (h *EventHandler) delete(c echo.Context) error {
	user, ok := CurrentUser(c)
	if !ok || user == nil {
		return unauthorized(c, service.ErrUnauthorized.Error())
	}

	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid event id"))
	}

	if err := h.events.Delete(c.Request().Context(), id, user.ID); err != nil {
		return eventError(c, err, "unable to delete event")
	}
	return c.JSON(http.StatusOK, util.Message("event deleted"))
}

func eventError(c echo.Context, err error, fallback string) error {
	switch {
	case errors.Is(err, service.ErrEventNotFound), errors.Is(err, service.ErrContractNotFound):
		return c.JSON(http.StatusNotFound, util.Error(err.Error()))
	case errors.Is(err, service.ErrOwnershipMismatch):
		return c.JSON(http.StatusForbidden, util.Error(err.Error()))
	default:
		return c.JSON(http.StatusInternalServerError, util.Error(fallback))
	}
}

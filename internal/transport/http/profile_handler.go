package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/artistdesk/artistdesk-api/internal/domain"
	"github.com/artistdesk/artistdesk-api/internal/repository/ports"
	"github.com/artistdesk/artistdesk-api/internal/service"
	"github.com/artistdesk/artistdesk-api/internal/util"
)

type ProfileHandler struct {
	profiles *service.ProfileService
}

type ProfileCreateRequest struct {
	Name            string            `json:"name"`
	PerformanceType string            `json:"performance_type"`
	Description     *string           `json:"description,omitempty"`
	Bio             *string           `json:"bio,omitempty"`
	Website         *string           `json:"website,omitempty"`
	SocialMedia     []string          `json:"social_media,omitempty"`
	StagePlan       *string           `json:"stage_plan,omitempty"`
	TechRider       *string           `json:"tech_rider,omitempty"`
	Photos          []string          `json:"photos,omitempty"`
	Videos          []string          `json:"videos,omitempty"`
	Audios          []string          `json:"audios,omitempty"`
	OnlinePress     domain.PressLinks `json:"online_press,omitempty"`
}

type ProfileUpdateRequest struct {
	Name            *string           `json:"name,omitempty"`
	PerformanceType *string           `json:"performance_type,omitempty"`
	Description     *string           `json:"description,omitempty"`
	Bio             *string           `json:"bio,omitempty"`
	Website         *string           `json:"website,omitempty"`
	SocialMedia     []string          `json:"social_media,omitempty"`
	StagePlan       *string           `json:"stage_plan,omitempty"`
	TechRider       *string           `json:"tech_rider,omitempty"`
	Photos          []string          `json:"photos,omitempty"`
	Videos          []string          `json:"videos,omitempty"`
	Audios          []string          `json:"audios,omitempty"`
	OnlinePress     domain.PressLinks `json:"online_press,omitempty"`
}

type ProfileCreateResponse struct {
	ProfileID int64 `json:"profile_id"`
}

func RegisterProfiles(e *echo.Echo, auth *service.AuthService, profiles *service.ProfileService) {
	handler := &ProfileHandler{profiles: profiles}

	g := e.Group("/profile", RequireAuth(auth), RequireActive())
	g.POST("", handler.create)
	g.GET("/:id", handler.get)
	g.PATCH("/:id", handler.update)
	g.DELETE("/:id", handler.delete)
}

// create handles POST /profile
func (h *ProfileHandler) create(c echo.Context) error {
	user, ok := CurrentUser(c)
	if !ok || user == nil {
		return unauthorized(c, service.ErrUnauthorized.Error())
	}

	var req ProfileCreateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
	}
	if req.Name == "" || req.PerformanceType == "" {
		return c.JSON(http.StatusBadRequest, util.Error("name and performance_type required"))
	}

	id, err := h.profiles.Create(c.Request().Context(), user.ID, ports.ProfileCreate{
		Name:            req.Name,
		PerformanceType: req.PerformanceType,
		Description:     req.Description,
		Bio:             req.Bio,
		Website:         req.Website,
		SocialMedia:     req.SocialMedia,
		StagePlan:       req.StagePlan,
		TechRider:       req.TechRider,
		Photos:          req.Photos,
		Videos:          req.Videos,
		Audios:          req.Audios,
		OnlinePress:     req.OnlinePress,
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, util.Error("unable to create profile"))
	}
	return c.JSON(http.StatusCreated, ProfileCreateResponse{ProfileID: id})
}

// get handles GET /profile/{id}
func (h *ProfileHandler) get(c echo.Context) error {
	user, ok := CurrentUser(c)
	if !ok || user == nil {
		return unauthorized(c, service.ErrUnauthorized.Error())
	}

	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid profile id"))
	}

	profile, err := h.profiles.Get(c.Request().Context(), id, user.ID)
	if err != nil {
		return profileError(c, err, "unable to load profile")
	}
	return c.JSON(http.StatusOK, profile)
}

// update handles PATCH /profile/{id}
func (h *ProfileHandler) update(c echo.Context) error {
	user, ok := CurrentUser(c)
	if !ok || user == nil {
		return unauthorized(c, service.ErrUnauthorized.Error())
	}

	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid profile id"))
	}

	var req ProfileUpdateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
	}

	updated, err := h.profiles.Update(c.Request().Context(), id, user.ID, ports.ProfileUpdate{
		Name:            req.Name,
		PerformanceType: req.PerformanceType,
		Description:     req.Description,
		Bio:             req.Bio,
		Website:         req.Website,
		SocialMedia:     req.SocialMedia,
		StagePlan:       req.StagePlan,
		TechRider:       req.TechRider,
		Photos:          req.Photos,
		Videos:          req.Videos,
		Audios:          req.Audios,
		OnlinePress:     req.OnlinePress,
	})
	if err != nil {
		return profileError(c, err, "unable to update profile")
	}
	return c.JSON(http.StatusOK, updated)
}

// delete handles DELETE /profile/{id}
func (h *ProfileHandler) delete(c echo.Context) error {
	user, ok := CurrentUser(c)
	if !ok || user == nil {
		return unauthorized(c, service.ErrUnauthorized.Error())
	}

	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid profile id"))
	}

	if err := h.profiles.Delete(c.Request().Context(), id, user.ID); err != nil {
		return profileError(c, err, "unable to delete profile")
	}
	return c.JSON(http.StatusOK, util.Message("profile deleted"))
}

func profileError(c echo.Context, err error, fallback string) error {
	switch {
	case errors.Is(err, service.ErrProfileNotFound):
		return c.JSON(http.StatusNotFound, util.Error(err.Error()))
	case errors.Is(err, service.ErrOwnershipMismatch):
		return c.JSON(http.StatusForbidden, util.Error(err.Error()))
	default:
		return c.JSON(http.StatusInternalServerError, util.Error(fallback))
	}
}

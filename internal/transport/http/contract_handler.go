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

type ContractHandler struct {
	contracts *service.ContractService
}

type ContractCreateRequest struct {
	Name                  string     `json:"name"`
	OffereeID             int64      `json:"offeree_id"`
	CurrencyCode          string     `json:"currency_code"`
	UponSigning           int        `json:"upon_signing"`
	UponCompletion        int        `json:"upon_completion"`
	PaymentMethod         string     `json:"payment_method"`
	PerformanceFee        float64    `json:"performance_fee"`
	TravelExpenses        float64    `json:"travel_expenses"`
	AccommodationExpenses float64    `json:"accommodation_expenses"`
	OtherExpenses         float64    `json:"other_expenses"`
	TotalFee              float64    `json:"total_fee"`
	SignedAt              *time.Time `json:"signed_at,omitempty"`
}

type ContractUpdateRequest struct {
	Name                  *string    `json:"name,omitempty"`
	CurrencyCode          *string    `json:"currency_code,omitempty"`
	UponSigning           *int       `json:"upon_signing,omitempty"`
	UponCompletion        *int       `json:"upon_completion,omitempty"`
	PaymentMethod         *string    `json:"payment_method,omitempty"`
	PerformanceFee        *float64   `json:"performance_fee,omitempty"`
	TravelExpenses        *float64   `json:"travel_expenses,omitempty"`
	AccommodationExpenses *float64   `json:"accommodation_expenses,omitempty"`
	OtherExpenses         *float64   `json:"other_expenses,omitempty"`
	TotalFee              *float64   `json:"total_fee,omitempty"`
	SignedAt              *time.Time `json:"signed_at,omitempty"`
}

type ContractCreateResponse struct {
	ContractID int64 `json:"contract_id"`
}

func RegisterContracts(e *echo.Echo, auth *service.AuthService, contracts *service.ContractService) {
	handler := &ContractHandler{contracts: contracts}

	g := e.Group("/contract", RequireAuth(auth), RequireActive())
	g.POST("", handler.create)
	g.GET("/:id", handler.get)
	g.PATCH("/:id", handler.update)
	g.PATCH("/:id/disable", handler.disable)
	g.GET("/:id/events", handler.listEvents)
}

// create handles POST /contract with the caller as offeror.
func (h *ContractHandler) create(c echo.Context) error {
	user, ok := CurrentUser(c)
	if !ok || user == nil {
		return unauthorized(c, service.ErrUnauthorized.Error())
	}

	var req ContractCreateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
	}
	if req.Name == "" || req.OffereeID == 0 {
		return c.JSON(http.StatusBadRequest, util.Error("name and offeree_id required"))
	}

	id, err := h.contracts.Create(c.Request().Context(), user.ID, ports.ContractCreate{
		Name:                  req.Name,
		OffereeID:             req.OffereeID,
		CurrencyCode:          req.CurrencyCode,
		UponSigning:           req.UponSigning,
		UponCompletion:        req.UponCompletion,
		PaymentMethod:         req.PaymentMethod,
		PerformanceFee:        req.PerformanceFee,
		TravelExpenses:        req.TravelExpenses,
		AccommodationExpenses: req.AccommodationExpenses,
		OtherExpenses:         req.OtherExpenses,
		TotalFee:              req.TotalFee,
		SignedAt:              req.SignedAt,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSelfContract):
			return c.JSON(http.StatusForbidden, util.Error(err.Error()))
		case errors.Is(err, service.ErrOffereeNotFound):
			return c.JSON(http.StatusNotFound, util.Error(err.Error()))
		default:
			return c.JSON(http.StatusInternalServerError, util.Error("unable to create contract"))
		}
	}
	return c.JSON(http.StatusCreated, ContractCreateResponse{ContractID: id})
}

// get handles GET /contract/{id}; either party may read.
func (h *ContractHandler) get(c echo.Context) error {
	user, ok := CurrentUser(c)
	if !ok || user == nil {
		return unauthorized(c, service.ErrUnauthorized.Error())
	}

	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid contract id"))
	}

	contract, err := h.contracts.Get(c.Request().Context(), id, user.ID)
	if err != nil {
		return contractError(c, err, "unable to load contract")
	}
	return c.JSON(http.StatusOK, contract)
}

// update handles PATCH /contract/{id}; offeror only.
func (h *ContractHandler) update(c echo.Context) error {
	user, ok := CurrentUser(c)
	if !ok || user == nil {
		return unauthorized(c, service.ErrUnauthorized.Error())
	}

	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid contract id"))
	}

	var req ContractUpdateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
	}

	updated, err := h.contracts.Update(c.Request().Context(), id, user.ID, ports.ContractUpdate{
		Name:                  req.Name,
		CurrencyCode:          req.CurrencyCode,
		UponSigning:           req.UponSigning,
		UponCompletion:        req.UponCompletion,
		PaymentMethod:         req.PaymentMethod,
		PerformanceFee:        req.PerformanceFee,
		TravelExpenses:        req.TravelExpenses,
		AccommodationExpenses: req.AccommodationExpenses,
		OtherExpenses:         req.OtherExpenses,
		TotalFee:              req.TotalFee,
		SignedAt:              req.SignedAt,
	})
	if err != nil {
		return contractError(c, err, "unable to update contract")
	}
	return c.JSON(http.StatusOK, updated)
}

// disable handles PATCH /contract/{id}/disable; offeror only. The row is
// kept, only flagged.
func (h *ContractHandler) disable(c echo.Context) error {
	user, ok := CurrentUser(c)
	if !ok || user == nil {
		return unauthorized(c, service.ErrUnauthorized.Error())
	}

	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid contract id"))
	}

	disabled, err := h.contracts.Disable(c.Request().Context(), id, user.ID, nil)
	if err != nil {
		return contractError(c, err, "unable to disable contract")
	}
	return c.JSON(http.StatusOK, disabled)
}

// listEvents handles GET /contract/{id}/events; read access follows the
// two-party rule.
func (h *ContractHandler) listEvents(c echo.Context) error {
	user, ok := CurrentUser(c)
	if !ok || user == nil {
		return unauthorized(c, service.ErrUnauthorized.Error())
	}

	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid contract id"))
	}

	events, err := h.contracts.ListEvents(c.Request().Context(), id, user.ID)
	if err != nil {
		return contractError(c, err, "unable to list events")
	}
	return c.JSON(http.StatusOK, events)
}

func contractError(c echo.Context, err error, fallback string) error {
	switch {
	case errors.Is(err, service.ErrContractNotFound):
		return c.JSON(http.StatusNotFound, util.Error(err.Error()))
	case errors.Is(err, service.ErrOwnershipMismatch):
		return c.JSON(http.StatusForbidden, util.Error(err.Error()))
	default:
		return c.JSON(http.StatusInternalServerError, util.Error(fallback))
	}
}

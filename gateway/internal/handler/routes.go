package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/practicum/shareit/gateway/internal/model"
)

func (h *Handler) CreateUser(c echo.Context) error {
	var req model.CreateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	return h.proxy(c, req)
}

func (h *Handler) UpdateUser(c echo.Context) error {
	var req model.UpdateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	return h.proxy(c, req)
}

func (h *Handler) CreateItem(c echo.Context) error {
	if _, err := userIDFromHeader(c); err != nil {
		return err
	}
	var req model.CreateItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	return h.proxy(c, req)
}

func (h *Handler) UpdateItem(c echo.Context) error {
	if _, err := userIDFromHeader(c); err != nil {
		return err
	}
	var req model.UpdateItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return h.proxy(c, req)
}

func (h *Handler) CreateComment(c echo.Context) error {
	if _, err := userIDFromHeader(c); err != nil {
		return err
	}
	var req model.CreateCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	return h.proxy(c, req)
}

func (h *Handler) CreateBooking(c echo.Context) error {
	if _, err := userIDFromHeader(c); err != nil {
		return err
	}
	var req model.CreateBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	return h.proxy(c, req)
}

func (h *Handler) ApproveBooking(c echo.Context) error {
	if _, err := userIDFromHeader(c); err != nil {
		return err
	}
	if approvedParam := c.QueryParam("approved"); approvedParam != "" {
		if _, err := strconv.ParseBool(approvedParam); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "approved is invalid")
		}
	}
	return h.proxy(c, nil)
}

func (h *Handler) ListBookings(c echo.Context) error {
	if state := c.QueryParam("state"); state != "" && !model.IsKnownState(state) {
		return echo.NewHTTPError(http.StatusBadRequest, "Unknown state: "+state)
	}
	if err := validatePageParams(c); err != nil {
		return err
	}
	return h.proxy(c, nil)
}

func (h *Handler) CreateRequest(c echo.Context) error {
	if _, err := userIDFromHeader(c); err != nil {
		return err
	}
	var req model.CreateItemRequestRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	return h.proxy(c, req)
}

package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/practicum/shareit/server/internal/model"
)

func (h *Handler) CreateBooking(c echo.Context) error {
	userID, err := userIDFromHeader(c)
	if err != nil {
		return err
	}
	var req model.CreateBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	booking, err := h.bookingSvc.CreateBooking(c.Request().Context(), userID, req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, booking)
}

func (h *Handler) ApproveBooking(c echo.Context) error {
	userID, err := userIDFromHeader(c)
	if err != nil {
		return err
	}
	bookingID, err := pathID(c, "bookingId")
	if err != nil {
		return err
	}

	// absent approved leaves the status untouched
	var approved *bool
	if approvedParam := c.QueryParam("approved"); approvedParam != "" {
		value, err := strconv.ParseBool(approvedParam)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "approved is invalid")
		}
		approved = &value
	}

	booking, err := h.bookingSvc.ApproveBooking(c.Request().Context(), userID, bookingID, approved)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, booking)
}

func (h *Handler) GetBooking(c echo.Context) error {
	userID, err := userIDFromHeader(c)
	if err != nil {
		return err
	}
	bookingID, err := pathID(c, "bookingId")
	if err != nil {
		return err
	}
	booking, err := h.bookingSvc.GetBooking(c.Request().Context(), userID, bookingID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, booking)
}

func (h *Handler) ListBookings(c echo.Context) error {
	return h.listBookings(c, h.bookingSvc.ListBookings)
}

func (h *Handler) ListBookingsByOwner(c echo.Context) error {
	return h.listBookings(c, h.bookingSvc.ListBookingsByOwner)
}

func (h *Handler) listBookings(
	c echo.Context,
	list func(ctx context.Context, userID int64, state string, from, size int) ([]model.BookingInfo, error),
) error {
	userID, err := userIDFromHeader(c)
	if err != nil {
		return err
	}
	state := c.QueryParam("state")
	if state == "" {
		state = string(model.StateAll)
	}
	from, size, err := pageParams(c)
	if err != nil {
		return err
	}
	bookings, err := list(c.Request().Context(), userID, state, from, size)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, bookings)
}

package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/practicum/shareit/server/internal/model"
)

func (h *Handler) CreateRequest(c echo.Context) error {
	userID, err := userIDFromHeader(c)
	if err != nil {
		return err
	}
	var req model.CreateItemRequestRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	request, err := h.requestSvc.CreateRequest(c.Request().Context(), userID, req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, request)
}

func (h *Handler) ListOwnRequests(c echo.Context) error {
	userID, err := userIDFromHeader(c)
	if err != nil {
		return err
	}
	requests, err := h.requestSvc.ListOwnRequests(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, requests)
}

func (h *Handler) ListOtherRequests(c echo.Context) error {
	userID, err := userIDFromHeader(c)
	if err != nil {
		return err
	}
	from, size, err := pageParams(c)
	if err != nil {
		return err
	}
	requests, err := h.requestSvc.ListOtherRequests(c.Request().Context(), userID, from, size)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, requests)
}

func (h *Handler) GetRequest(c echo.Context) error {
	userID, err := userIDFromHeader(c)
	if err != nil {
		return err
	}
	requestID, err := pathID(c, "requestId")
	if err != nil {
		return err
	}
	request, err := h.requestSvc.GetRequest(c.Request().Context(), userID, requestID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, request)
}

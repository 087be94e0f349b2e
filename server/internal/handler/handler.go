package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	md "github.com/practicum/shareit/pkg/middleware"
	"github.com/practicum/shareit/pkg/validate"
	"github.com/practicum/shareit/server/internal/errs"
)

// HeaderUserID carries the caller identity. The value is trusted as-is.
const HeaderUserID = "X-Sharer-User-Id"

const (
	defaultFrom = 0
	defaultSize = 10
)

type Handler struct {
	userSvc    UserService
	itemSvc    ItemService
	bookingSvc BookingService
	requestSvc RequestService
	log        *zap.Logger
}

func New(userSvc UserService, itemSvc ItemService, bookingSvc BookingService, requestSvc RequestService, log *zap.Logger) *Handler {
	return &Handler{
		userSvc:    userSvc,
		itemSvc:    itemSvc,
		bookingSvc: bookingSvc,
		requestSvc: requestSvc,
		log:        log,
	}
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
		AllowCredentials: true,
	}))
	e.HTTPErrorHandler = h.httpErrorHandler
	e.Validator = validate.NewCustomValidator()

	base := e.Group("", md.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)

	api := e.Group("",
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig(h.log)),
		middleware.RequestID(),
		md.NewRateLimiter(apiRPS),
	)

	api.POST("/users", h.CreateUser)
	api.PATCH("/users/:userId", h.UpdateUser)
	api.GET("/users/:userId", h.GetUser)
	api.GET("/users", h.ListUsers)
	api.DELETE("/users/:userId", h.DeleteUser)

	api.POST("/items", h.CreateItem)
	api.PATCH("/items/:itemId", h.UpdateItem)
	api.GET("/items/:itemId", h.GetItem)
	api.GET("/items", h.ListItems)
	api.GET("/items/search", h.SearchItems)
	api.POST("/items/:itemId/comment", h.CreateComment)

	api.POST("/bookings", h.CreateBooking)
	api.PATCH("/bookings/:bookingId", h.ApproveBooking)
	api.GET("/bookings/:bookingId", h.GetBooking)
	api.GET("/bookings", h.ListBookings)
	api.GET("/bookings/owner", h.ListBookingsByOwner)

	api.POST("/requests", h.CreateRequest)
	api.GET("/requests", h.ListOwnRequests)
	api.GET("/requests/all", h.ListOtherRequests)
	api.GET("/requests/:requestId", h.GetRequest)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

// httpErrorHandler maps business errors onto status codes and renders
// every failure as {"error": message}.
func (h *Handler) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	msg := err.Error()

	var (
		httpErr  *echo.HTTPError
		stateErr errs.StateError
	)
	switch {
	case errors.As(err, &httpErr):
		code = httpErr.Code
		msg = fmt.Sprintf("%v", httpErr.Message)
	case errors.Is(err, errs.ErrUserNotFound),
		errors.Is(err, errs.ErrItemNotFound),
		errors.Is(err, errs.ErrBookingNotFound),
		errors.Is(err, errs.ErrRequestNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrDuplicateEmail):
		code = http.StatusConflict
	case errors.Is(err, errs.ErrNotAvailable),
		errors.Is(err, errs.ErrInvalidDateTime),
		errors.Is(err, errs.ErrInvalidStatus),
		errors.Is(err, errs.ErrInvalidComment),
		errors.Is(err, errs.ErrPagination),
		errors.As(err, &stateErr):
		code = http.StatusBadRequest
	}

	if err := c.JSON(code, errs.Response{Error: msg}); err != nil {
		h.log.Error("write error response", zap.Error(err))
	}
}

func userIDFromHeader(c echo.Context) (int64, error) {
	value := c.Request().Header.Get(HeaderUserID)
	if value == "" {
		return 0, echo.NewHTTPError(http.StatusBadRequest, HeaderUserID+" header is required")
	}
	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, HeaderUserID+" header is invalid")
	}
	return id, nil
}

func pathID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, name+" is invalid")
	}
	return id, nil
}

func pageParams(c echo.Context) (from, size int, err error) {
	from, size = defaultFrom, defaultSize
	if fromParam := c.QueryParam("from"); fromParam != "" {
		if from, err = strconv.Atoi(fromParam); err != nil {
			return 0, 0, echo.NewHTTPError(http.StatusBadRequest, "from is invalid")
		}
	}
	if sizeParam := c.QueryParam("size"); sizeParam != "" {
		if size, err = strconv.Atoi(sizeParam); err != nil {
			return 0, 0, echo.NewHTTPError(http.StatusBadRequest, "size is invalid")
		}
	}
	return from, size, nil
}

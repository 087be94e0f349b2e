package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/practicum/shareit/gateway/config"
	"github.com/practicum/shareit/gateway/internal/errs"
	"github.com/practicum/shareit/gateway/internal/service/shareit"
	cb "github.com/practicum/shareit/pkg/circuit_breaker"
	md "github.com/practicum/shareit/pkg/middleware"
	"github.com/practicum/shareit/pkg/validate"
)

// HeaderUserID carries the caller identity. The value is trusted as-is.
const HeaderUserID = "X-Sharer-User-Id"

type Handler struct {
	shareitSvc ShareItService
	log        *zap.Logger
}

func New(log *zap.Logger, cfg config.Config) *Handler {
	return &Handler{
		shareitSvc: shareit.NewService(log, cfg),
		log:        log,
	}
}

// NewWithService is used by tests to plug a mocked backend.
func NewWithService(svc ShareItService, log *zap.Logger) *Handler {
	return &Handler{
		shareitSvc: svc,
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
	api.GET("/users/:userId", h.proxyHandler)
	api.GET("/users", h.proxyHandler)
	api.DELETE("/users/:userId", h.proxyHandler)

	api.POST("/items", h.CreateItem)
	api.PATCH("/items/:itemId", h.UpdateItem)
	api.GET("/items/:itemId", h.requireUser(h.proxyHandler))
	api.GET("/items", h.requireUser(h.pagedHandler))
	api.GET("/items/search", h.requireUser(h.pagedHandler))
	api.POST("/items/:itemId/comment", h.CreateComment)

	api.POST("/bookings", h.CreateBooking)
	api.PATCH("/bookings/:bookingId", h.ApproveBooking)
	api.GET("/bookings/:bookingId", h.requireUser(h.proxyHandler))
	api.GET("/bookings", h.requireUser(h.ListBookings))
	api.GET("/bookings/owner", h.requireUser(h.ListBookings))

	api.POST("/requests", h.CreateRequest)
	api.GET("/requests", h.requireUser(h.proxyHandler))
	api.GET("/requests/all", h.requireUser(h.pagedHandler))
	api.GET("/requests/:requestId", h.requireUser(h.proxyHandler))

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

func (h *Handler) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	msg := err.Error()

	var httpErr *echo.HTTPError
	switch {
	case errors.As(err, &httpErr):
		code = httpErr.Code
		msg = fmt.Sprintf("%v", httpErr.Message)
	case errors.Is(err, cb.ErrOpenCB):
		code = http.StatusServiceUnavailable
		msg = errs.ErrUnavailable.Error()
	}

	if err := c.JSON(code, errs.Response{Error: msg}); err != nil {
		h.log.Error("write error response", zap.Error(err))
	}
}

func (h *Handler) requireUser(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if _, err := userIDFromHeader(c); err != nil {
			return err
		}
		return next(c)
	}
}

// proxyHandler forwards a bodyless request verbatim.
func (h *Handler) proxyHandler(c echo.Context) error {
	return h.proxy(c, nil)
}

// pagedHandler checks the page window before forwarding.
func (h *Handler) pagedHandler(c echo.Context) error {
	if err := validatePageParams(c); err != nil {
		return err
	}
	return h.proxy(c, nil)
}

func (h *Handler) proxy(c echo.Context, body any) error {
	var (
		data []byte
		err  error
	)
	if body != nil {
		if data, err = json.Marshal(body); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
	}

	var (
		respBody []byte
		code     int
	)
	if err := h.shareitSvc.CB().Call(func() error {
		b, statusCode, err := h.shareitSvc.Forward(c, data)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadGateway, err.Error())
		}
		respBody = b
		code = statusCode
		return nil
	}); err != nil {
		return err
	}

	if len(respBody) == 0 {
		return c.NoContent(code)
	}
	return c.JSONBlob(code, respBody)
}

func userIDFromHeader(c echo.Context) (int64, error) {
	value := c.Request().Header.Get(HeaderUserID)
	if value == "" {
		return 0, echo.NewHTTPError(http.StatusBadRequest, errs.ErrUserHeader.Error())
	}
	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, HeaderUserID+" header is invalid")
	}
	return id, nil
}

func validatePageParams(c echo.Context) error {
	if fromParam := c.QueryParam("from"); fromParam != "" {
		from, err := strconv.Atoi(fromParam)
		if err != nil || from < 0 {
			return echo.NewHTTPError(http.StatusBadRequest, errs.ErrPagination.Error())
		}
	}
	if sizeParam := c.QueryParam("size"); sizeParam != "" {
		size, err := strconv.Atoi(sizeParam)
		if err != nil || size <= 0 {
			return echo.NewHTTPError(http.StatusBadRequest, errs.ErrPagination.Error())
		}
	}
	return nil
}

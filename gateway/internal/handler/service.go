package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/practicum/shareit/gateway/internal/service/shareit"
	cb "github.com/practicum/shareit/pkg/circuit_breaker"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go -package=mocks

var _ ShareItService = (*shareit.Service)(nil)

type ShareItService interface {
	CB() cb.CircuitBreaker
	Forward(c echo.Context, body []byte) ([]byte, int, error)
}

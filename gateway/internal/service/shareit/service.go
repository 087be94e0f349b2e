package shareit

import (
	"bytes"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/practicum/shareit/gateway/config"
	cb "github.com/practicum/shareit/pkg/circuit_breaker"
)

type Service struct {
	log     *zap.Logger
	client  *http.Client
	cfg     config.ShareItHTTPServer
	breaker cb.CircuitBreaker
}

func NewService(log *zap.Logger, cfg config.Config) *Service {
	const (
		recordLength     = 20
		timeout          = 5 * time.Second
		percentile       = 0.5
		recoveryRequests = 3
	)
	return &Service{
		log:     log.Named("shareit"),
		client:  &http.Client{Timeout: time.Minute},
		cfg:     cfg.ShareItHTTPServer,
		breaker: cb.New(recordLength, timeout, percentile, recoveryRequests),
	}
}

func (s *Service) CB() cb.CircuitBreaker {
	return s.breaker
}

// Forward replays the inbound request against the backend, substituting the
// body when the handler already consumed it for validation.
func (s *Service) Forward(c echo.Context, body []byte) ([]byte, int, error) {
	ur := c.Request().URL
	ur.Scheme = "http"
	ur.Host = net.JoinHostPort(s.cfg.Host, s.cfg.Port)

	var rd io.Reader = http.NoBody
	if len(body) > 0 {
		rd = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(c.Request().Context(), c.Request().Method, ur.String(), rd)
	if err != nil {
		return nil, http.StatusBadRequest, err
	}
	req.Header = c.Request().Header.Clone()
	if len(body) > 0 {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, http.StatusBadGateway, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, http.StatusBadGateway, err
	}
	return data, resp.StatusCode, nil
}

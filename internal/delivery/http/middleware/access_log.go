package middleware

import (
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

const (
	RequestIDHeader = "X-Request-ID"
	RequestIDKey    = "request_id"

	maxRequestIDLen = 128
)

type AccessLogMiddleware struct {
	logger *log.Logger
}

func NewAccessLogMiddleware(logger *log.Logger) *AccessLogMiddleware {
	if logger == nil {
		logger = log.Default()
	}
	return &AccessLogMiddleware{logger: logger}
}

// Middleware assigns a request id, exposes it in Locals and the response
// header, and writes one line per request once the response is final.
func (m *AccessLogMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		start := time.Now()

		rid := requestID(c.Get(RequestIDHeader))
		c.Set(RequestIDHeader, rid)
		c.Locals(RequestIDKey, rid)

		err := c.Next()

		status := c.Response().StatusCode()
		kind := "access"
		if status >= 500 {
			kind = "error"
		}

		m.logger.Printf(
			"HTTP %s | rid=%s method=%s path=%s route=%s status=%d latency=%s in=%d out=%d ip=%s",
			kind, rid, c.Method(), c.Path(), c.Route().Path, status, time.Since(start),
			len(c.Body()), len(c.Response().Body()), c.IP(),
		)
		return err
	}
}

// requestID accepts a caller-supplied id when it is short and printable and
// generates one otherwise.
func requestID(incoming string) string {
	id := strings.TrimSpace(incoming)
	if id == "" || len(id) > maxRequestIDLen || strings.ContainsAny(id, " \t\r\n") {
		return uuid.NewString()
	}
	return id
}

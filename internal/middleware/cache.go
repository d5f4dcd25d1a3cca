package middleware

import (
	"bytes"
	"context"
	"crypto/sha1"
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/answerbox/answerbox/internal/config"
)

// captureWriter captures the response body and status while forwarding to
// the client, so a successful answer can be stored after the handler ran.
type captureWriter struct {
	http.ResponseWriter
	status int
	buf    bytes.Buffer
}

func (cw *captureWriter) WriteHeader(code int) {
	cw.status = code
	cw.ResponseWriter.WriteHeader(code)
}

func (cw *captureWriter) Write(b []byte) (int, error) {
	cw.buf.Write(b)
	return cw.ResponseWriter.Write(b)
}

// cacheKey builds a stable Redis key for a question.  The question is the
// only input that shapes an answer, so the key is simply its hash under the
// configured prefix.
func cacheKey(prefix, question string) string {
	sum := sha1.Sum([]byte(question))
	return fmt.Sprintf("%s:%x", prefix, sum)
}

// NewAnswerCache returns middleware that caches successful /ask/ responses
// in Redis, keyed on the lowercased question.  Only 200 responses to a
// non-empty question are stored; error-shaped bodies and hard failures pass
// through uncached.  When caching is disabled or no Redis client is
// available the middleware is a transparent no-op.
func NewAnswerCache(cfg config.CacheConfig, rdb *redis.Client) echo.MiddlewareFunc {
	if !cfg.Enabled || rdb == nil {
		return func(next echo.HandlerFunc) echo.HandlerFunc {
			return func(c echo.Context) error { return next(c) }
		}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			question := strings.ToLower(c.QueryParam("q"))
			if question == "" {
				// The missing-question payload is cheap to build; never cache it.
				return next(c)
			}

			ctx := c.Request().Context()
			key := cacheKey(cfg.Prefix, question)

			if body, err := rdb.Get(ctx, key).Bytes(); err == nil && len(body) > 0 {
				c.Response().Header().Set("X-Cache", "HIT")
				return c.JSONBlob(http.StatusOK, body)
			}

			cw := &captureWriter{ResponseWriter: c.Response().Writer, status: http.StatusOK}
			c.Response().Writer = cw
			c.Response().Header().Set("X-Cache", "MISS")

			if err := next(c); err != nil {
				return err
			}

			if cw.status == http.StatusOK && cw.buf.Len() > 0 {
				_ = rdb.SetEx(context.Background(), key, cw.buf.Bytes(), cfg.TTL).Err()
			}
			return nil
		}
	}
}

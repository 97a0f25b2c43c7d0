// Package middleware provides HTTP middleware for the ledger API.
package middleware

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/benx421/bank-ledger/internal/models"
)

const (
	idempotencyKeyHeader = "Idempotency-Key"
	replayedHeader       = "X-Idempotent-Replayed"
)

// idempotentPaths lists the POST routes whose successful responses are
// replayed for a repeated Idempotency-Key. Patterns follow path.Match.
var idempotentPaths = []string{
	"/api/v1/customers",
	"/api/v1/customers/*/deposits",
	"/api/v1/customers/*/withdrawals",
	"/api/v1/customers/*/interest",
	"/api/v1/transfers",
	"/api/v1/interest-accruals",
}

// IdempotencyRepository defines the interface for idempotency storage
type IdempotencyRepository interface {
	Get(ctx context.Context, key, requestPath string) (*models.IdempotencyKey, error)
	Store(ctx context.Context, idemKey *models.IdempotencyKey) error
}

type responseCapture struct {
	http.ResponseWriter
	body       bytes.Buffer
	statusCode int
}

func newResponseCapture(w http.ResponseWriter) *responseCapture {
	return &responseCapture{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
	}
}

func (rc *responseCapture) WriteHeader(code int) {
	rc.statusCode = code
	rc.ResponseWriter.WriteHeader(code)
}

func (rc *responseCapture) Write(b []byte) (int, error) {
	rc.body.Write(b)
	return rc.ResponseWriter.Write(b)
}

// Idempotency replays the stored response when a mutating request repeats an
// Idempotency-Key on the same path. Only 2xx responses are stored, so a
// rejected posting can be retried with the same key.
func Idempotency(repo IdempotencyRepository, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !requiresIdempotency(r) {
				next.ServeHTTP(w, r)
				return
			}

			idempotencyKey := strings.TrimSpace(r.Header.Get(idempotencyKeyHeader))
			if idempotencyKey == "" {
				next.ServeHTTP(w, r)
				return
			}

			requestPath := normalizeRequestPath(r.URL.Path)
			ctx := r.Context()

			cached, err := repo.Get(ctx, idempotencyKey, requestPath)
			if err != nil {
				logger.ErrorContext(ctx, "failed to check idempotency cache", "error", err)
				next.ServeHTTP(w, r)
				return
			}

			if cached != nil {
				logger.DebugContext(ctx, "replaying idempotent response",
					"key", idempotencyKey,
					"path", requestPath,
					"status", cached.ResponseStatus,
				)
				w.Header().Set("Content-Type", "application/json")
				w.Header().Set(replayedHeader, "true")
				w.WriteHeader(cached.ResponseStatus)
				_, _ = w.Write([]byte(cached.ResponseBody)) //nolint:errcheck // best effort replay
				return
			}

			capture := newResponseCapture(w)
			next.ServeHTTP(capture, r)

			if !shouldCacheResponse(capture.statusCode) {
				return
			}

			entry := &models.IdempotencyKey{
				Key:            idempotencyKey,
				RequestPath:    requestPath,
				ResponseStatus: capture.statusCode,
				ResponseBody:   capture.body.String(),
				CreatedAt:      time.Now(),
			}
			if err := repo.Store(ctx, entry); err != nil {
				logger.ErrorContext(ctx, "failed to store idempotency key",
					"error", err,
					"key", idempotencyKey,
				)
			}
		})
	}
}

func requiresIdempotency(r *http.Request) bool {
	if r.Method != http.MethodPost {
		return false
	}

	requestPath := normalizeRequestPath(r.URL.Path)
	for _, pattern := range idempotentPaths {
		if ok, _ := path.Match(pattern, requestPath); ok {
			return true
		}
	}
	return false
}

func normalizeRequestPath(urlPath string) string {
	return strings.TrimSuffix(urlPath, "/")
}

func shouldCacheResponse(statusCode int) bool {
	return statusCode >= 200 && statusCode < 300
}

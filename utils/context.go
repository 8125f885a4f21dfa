package utils

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/casetrail/casetrail-backend/models"
)

type ContextKey int

const (
	ContextKeyLogger ContextKey = iota
)

func StoreLoggerInContext(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ContextKeyLogger, logger)
}

func StoreLoggerInContextMiddleware(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctxWithLogger := StoreLoggerInContext(c.Request.Context(), logger)
		c.Request = c.Request.WithContext(ctxWithLogger)
	}
}

func LoggerFromContext(ctx context.Context) *slog.Logger {
	logger, found := ctx.Value(ContextKeyLogger).(*slog.Logger)
	if !found {
		return slog.Default()
	}
	return logger
}

// OrganizationIdFromRequest reads the calling organization's id from the
// X-Organization-Id header. Identity is established upstream; the backend
// only requires the header to be a well-formed uuid.
func OrganizationIdFromRequest(request *http.Request) (organizationId string, err error) {
	organizationId = request.Header.Get("X-Organization-Id")
	if organizationId == "" {
		return "", fmt.Errorf("missing X-Organization-Id header: %w", models.UnAuthorizedError)
	}
	if err := ValidateUuid(organizationId); err != nil {
		return "", err
	}
	return organizationId, nil
}

func UserIdFromRequest(request *http.Request) (userId string, err error) {
	userId = request.Header.Get("X-User-Id")
	if userId == "" {
		return "", fmt.Errorf("missing X-User-Id header: %w", models.UnAuthorizedError)
	}
	if err := ValidateUuid(userId); err != nil {
		return "", err
	}
	return userId, nil
}

func ValidateUuid(uuidParam string) error {
	if _, err := uuid.Parse(uuidParam); err != nil {
		return fmt.Errorf("'%s' is not a valid UUID: %w", uuidParam, models.BadParameterError)
	}
	return nil
}

package api

import (
	"errors"
	"log/slog"
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/incidentfox/incidentfox/pkg/auth"
	"github.com/incidentfox/incidentfox/pkg/nodestore"
	"github.com/incidentfox/incidentfox/pkg/provisioning"
	"github.com/incidentfox/incidentfox/pkg/token"
)

// mapServiceError maps service-layer errors to HTTP error responses.
func mapServiceError(err error) error {
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}

	var immutable *nodestore.ImmutableFieldError
	if errors.As(err, &immutable) {
		return echo.NewHTTPError(http.StatusBadRequest, immutable.Error())
	}
	var routing *nodestore.RoutingConflictError
	if errors.As(err, &routing) {
		return echo.NewHTTPError(http.StatusConflict, map[string]interface{}{
			"error":  routing.Code,
			"source": routing.Source,
			"key":    routing.Key,
		})
	}
	if errors.Is(err, nodestore.ErrNotFound) || errors.Is(err, nodestore.ErrParentNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "resource not found")
	}
	if errors.Is(err, nodestore.ErrAlreadyExists) {
		return echo.NewHTTPError(http.StatusConflict, "resource already exists")
	}
	if errors.Is(err, nodestore.ErrHasChildren) {
		return echo.NewHTTPError(http.StatusConflict, "node has child nodes")
	}
	if errors.Is(err, nodestore.ErrConcurrentModification) {
		return echo.NewHTTPError(http.StatusConflict, "config was modified concurrently, retry with the current version")
	}
	if errors.Is(err, token.ErrInvalidToken) || errors.Is(err, token.ErrTokenRevoked) {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}
	if auth.IsAuthError(err) {
		return mapAuthError(err)
	}

	var conflict *provisioning.ConflictError
	if errors.As(err, &conflict) {
		he := echo.NewHTTPError(http.StatusConflict, map[string]interface{}{
			"error":               conflict.Code,
			"key":                 conflict.Key,
			"provisioning_run_id": conflict.RunID,
		})
		return he
	}

	// Unexpected error
	slog.Error("Unexpected service error", "error", err)
	return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
}

// mapAuthError maps authentication failures to 401/403.
func mapAuthError(err error) *echo.HTTPError {
	kind := auth.KindOf(err)
	switch kind {
	case auth.ErrKindInsufficientPerm, auth.ErrKindScopeMissing:
		return echo.NewHTTPError(http.StatusForbidden, kind)
	default:
		return echo.NewHTTPError(http.StatusUnauthorized, kind)
	}
}

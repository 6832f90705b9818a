package api

import (
	"errors"
	"net/http"
	"testing"

	echo "github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/incidentfox/incidentfox/pkg/auth"
	"github.com/incidentfox/incidentfox/pkg/dispatch"
	"github.com/incidentfox/incidentfox/pkg/nodestore"
	"github.com/incidentfox/incidentfox/pkg/provisioning"
)

func httpErrorFrom(t *testing.T, err error) *echo.HTTPError {
	t.Helper()
	var he *echo.HTTPError
	require.True(t, errors.As(err, &he), "expected echo.HTTPError, got %T", err)
	return he
}

func TestMapServiceError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"not found", nodestore.ErrNotFound, http.StatusNotFound},
		{"parent not found", nodestore.ErrParentNotFound, http.StatusNotFound},
		{"already exists", nodestore.ErrAlreadyExists, http.StatusConflict},
		{"has children", nodestore.ErrHasChildren, http.StatusConflict},
		{"concurrent modification", nodestore.ErrConcurrentModification, http.StatusConflict},
		{"immutable field", &nodestore.ImmutableFieldError{Field: "team_name"}, http.StatusBadRequest},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			he := httpErrorFrom(t, mapServiceError(tt.err))
			assert.Equal(t, tt.wantCode, he.Code)
		})
	}
}

func TestMapServiceErrorRoutingConflict(t *testing.T) {
	err := &nodestore.RoutingConflictError{
		Source: "slack",
		Key:    "C123",
		Code:   "slack_channel_already_mapped",
	}
	he := httpErrorFrom(t, mapServiceError(err))
	assert.Equal(t, http.StatusConflict, he.Code)
	body := he.Message.(map[string]interface{})
	assert.Equal(t, "slack_channel_already_mapped", body["error"])
	assert.Equal(t, "C123", body["key"])
}

func TestMapServiceErrorProvisioningConflict(t *testing.T) {
	err := &provisioning.ConflictError{
		RunID: "run-7",
		Code:  "slack_channel_already_mapped",
		Key:   "C9",
	}
	he := httpErrorFrom(t, mapServiceError(err))
	assert.Equal(t, http.StatusConflict, he.Code)
	body := he.Message.(map[string]interface{})
	assert.Equal(t, "run-7", body["provisioning_run_id"])
}

func TestMapAuthError(t *testing.T) {
	assert.Equal(t, http.StatusUnauthorized,
		mapAuthError(auth.NewError(auth.ErrKindInvalidToken, "nope")).Code)
	assert.Equal(t, http.StatusUnauthorized,
		mapAuthError(auth.NewError(auth.ErrKindExpired, "old")).Code)
	assert.Equal(t, http.StatusForbidden,
		mapAuthError(auth.NewError(auth.ErrKindScopeMissing, "no scope")).Code)
	assert.Equal(t, http.StatusForbidden,
		mapAuthError(auth.NewError(auth.ErrKindInsufficientPerm, "no perm")).Code)
}

func TestMapDispatchError(t *testing.T) {
	assert.Equal(t, http.StatusBadGateway,
		httpErrorFrom(t, mapDispatchError(dispatch.ErrSandboxUnavailable)).Code)
	assert.Equal(t, http.StatusGatewayTimeout,
		httpErrorFrom(t, mapDispatchError(dispatch.ErrSandboxTimeout)).Code)
	assert.Equal(t, http.StatusUnprocessableEntity,
		httpErrorFrom(t, mapDispatchError(dispatch.ErrMaxTurnsExceeded)).Code)
}

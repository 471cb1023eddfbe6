package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRemoteQueryKeepsUnderlyingMessage(t *testing.T) {
	cause := errors.New("connection refused")
	err := RemoteQuery("reporte_rendimientos", cause)

	require.True(t, IsCode(err, CodeRemoteQuery))
	require.ErrorIs(t, err, cause)
	require.Contains(t, err.Error(), "connection refused")
	require.Contains(t, err.Error(), "reporte_rendimientos")
}

func TestIsCodeThroughWrapping(t *testing.T) {
	err := fmt.Errorf("dashboard: %w", Wrap(CodeInvalidInput, "dateFrom is required", nil))
	require.True(t, IsCode(err, CodeInvalidInput))
	require.False(t, IsCode(err, CodeRemoteQuery))
	require.False(t, IsCode(errors.New("plain"), CodeInvalidInput))
}

package fiberlog

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoggedBody(t *testing.T) {
	require.Equal(t, `{"email":"a@b.uk","password":"***"}`,
		loggedBody("application/json", []byte(`{"email":"a@b.uk","password": "hunter22"}`)))
	require.Equal(t, 3, loggedBody("image/jpeg", []byte{1, 2, 3}))
	require.Equal(t, "", loggedBody("application/json", nil))
}

func TestSkipped(t *testing.T) {
	require.True(t, skipped([]string{"/api/v1/health"}, "/api/v1/health"))
	require.False(t, skipped([]string{"/api/v1/health"}, "/api/v1/cases/list"))
	require.False(t, skipped(nil, "/api/v1/health"))
}

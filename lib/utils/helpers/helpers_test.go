package helpers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCleanList(t *testing.T) {
	require.Equal(t, []string{"a", "b"}, CleanList([]string{" a", "", "b ", "a", "  "}))
	require.Empty(t, CleanList(nil))
}

func TestIsContextDone(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	require.False(t, IsContextDone(ctx))
	cancel()
	require.True(t, IsContextDone(ctx))
	require.True(t, IsContextDone(nil))
}

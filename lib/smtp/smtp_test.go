package smtp

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCompose(t *testing.T) {
	buf, err := Compose(Message{
		From:    "enforcement@agency.example",
		To:      []string{"lado@council.example", "ofsted@ofsted.example"},
		Subject: "Suspension notice",
		Body:    "Reference: suspension/p1/2024",
	})
	require.NoError(t, err)
	text := buf.String()
	require.Contains(t, text, "From: enforcement@agency.example")
	require.Contains(t, text, "lado@council.example")
	require.Contains(t, text, "Subject: Suspension notice")
	require.Contains(t, text, "text/plain")
}

func TestSendNotConfigured(t *testing.T) {
	require.NoError(t, Connect("", "", "", "", "", true))
	err := Instance.Send(Message{To: []string{"a@b.example"}})
	require.ErrorIs(t, err, ErrNotConfigured)
}

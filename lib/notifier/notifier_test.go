package notifier

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"childminder-backend/lib/smtp"
	"childminder-backend/models"
	"github.com/stretchr/testify/require"
)

func TestFunctionsClient(t *testing.T) {
	t.Run(`posts payload to the named function`, func(t *testing.T) {
		var gotPath, gotAuth string
		var got EnforcementNotification
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			gotAuth = r.Header.Get("Authorization")
			body, _ := io.ReadAll(r.Body)
			_ = json.Unmarshal(body, &got)
			w.WriteHeader(http.StatusOK)
		}))
		defer srv.Close()

		client := NewFunctionsClient(srv.URL+"/", "secret", time.Second)
		err := client.Invoke(context.Background(), models.FnSendEnforcementNotification, EnforcementNotification{
			CaseID:     "c1",
			AgencyCode: models.AgencyHMRC,
		})
		require.NoError(t, err)
		require.Equal(t, "/send-enforcement-notification", gotPath)
		require.Equal(t, "Bearer secret", gotAuth)
		require.Equal(t, "c1", got.CaseID)
		require.Equal(t, models.AgencyHMRC, got.AgencyCode)
	})

	t.Run(`non 2xx carries the function message`, func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			_, _ = w.Write([]byte(`{"error":"mailbox unavailable"}`))
		}))
		defer srv.Close()

		err := NewFunctionsClient(srv.URL, "", time.Second).
			Invoke(context.Background(), models.FnSendEmployeeEmail, EmployeeEmail{To: "a@b.example"})
		require.EqualError(t, err, "mailbox unavailable")
	})

	t.Run(`unknown function`, func(t *testing.T) {
		err := NewFunctionsClient("http://localhost", "", time.Second).
			Invoke(context.Background(), "drop-tables", nil)
		require.Error(t, err)
	})
}

type fakeSender struct {
	sent []smtp.Message
	err  error
}

func (f *fakeSender) Send(msg smtp.Message) error {
	f.sent = append(f.sent, msg)
	return f.err
}

func (f *fakeSender) From() string { return "agency@example.org" }

func TestSmtpTransport(t *testing.T) {
	t.Run(`renders the notification as text`, func(t *testing.T) {
		sender := &fakeSender{}
		err := NewSmtpTransport(sender).Invoke(context.Background(), models.FnSendEnforcementNotification, EnforcementNotification{
			ReferenceNumber: "suspension/p1/2024",
			AgencyName:      "Ofsted",
			RecipientEmail:  "enforcement@ofsted.example",
			ProviderName:    "Jane Smith",
			ActionType:      models.CaseTypeSuspension,
			Status:          models.CaseStatusInEffect,
			EffectiveDate:   "1 March 2024",
			Concerns:        "Safeguarding concern",
		})
		require.NoError(t, err)
		require.Len(t, sender.sent, 1)
		msg := sender.sent[0]
		require.Equal(t, []string{"enforcement@ofsted.example"}, msg.To)
		require.Contains(t, msg.Subject, "suspension/p1/2024")
		require.Contains(t, msg.Body, "Jane Smith")
		require.Contains(t, msg.Body, "1 March 2024")
	})

	t.Run(`empty recipient is rejected before sending`, func(t *testing.T) {
		sender := &fakeSender{}
		err := NewSmtpTransport(sender).Invoke(context.Background(), models.FnSendEmployeeEmail, EmployeeEmail{})
		require.Error(t, err)
		require.Empty(t, sender.sent)
	})

	t.Run(`payload without email form`, func(t *testing.T) {
		err := NewSmtpTransport(&fakeSender{}).Invoke(context.Background(), models.FnSendEmployeeEmail, map[string]string{})
		require.Error(t, err)
	})
}

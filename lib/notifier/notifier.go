// Package notifier invokes the named email functions used by the back office.
package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"childminder-backend/lib/smtp"
	"childminder-backend/models"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	Invoke(ctx context.Context, name string, payload interface{}) error
}

var Instance Provider

const (
	TransportSmtp      = "smtp"
	TransportFunctions = "functions"
)

var knownFunctions = map[string]bool{
	models.FnSendEnforcementNotification: true,
	models.FnSendKnownToOfstedEmail:      true,
	models.FnSendDbsRequestEmail:         true,
	models.FnSendEmployeeEmail:           true,
}

func NewFunctionsClient(baseURL, key string, timeout time.Duration) Provider {
	return &functionsImpl{
		baseURL: strings.TrimRight(baseURL, "/"),
		key:     key,
		client:  &http.Client{Timeout: timeout},
	}
}

type functionsImpl struct {
	baseURL string
	key     string
	client  *http.Client
}

type functionError struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func (i functionsImpl) Invoke(ctx context.Context, name string, payload interface{}) error {
	if !knownFunctions[name] {
		return errors.Errorf("unknown function: %s", name)
	}
	uri := fmt.Sprintf("%s/%s", i.baseURL, name)
	logger := log.
		WithField("function", name).
		WithField("external_request", uri)
	body, err := json.Marshal(payload)
	if err != nil {
		return errors.Wrap(err, "marshal function payload")
	}
	r, err := http.NewRequestWithContext(ctx, http.MethodPost, uri, bytes.NewBuffer(body))
	if err != nil {
		return errors.Wrap(err, "build function request")
	}
	r.Header.Add("Content-Type", "application/json")
	if i.key != "" {
		r.Header.Add("Authorization", fmt.Sprintf("Bearer %v", i.key))
	}
	response, err := i.client.Do(r)
	if err != nil {
		logger.WithError(err).Error("function call failed")
		return errors.Wrapf(err, "call %s", name)
	}
	defer response.Body.Close()
	if response.StatusCode >= 200 && response.StatusCode < 300 {
		return nil
	}
	responseBody, _ := io.ReadAll(response.Body)
	logger.
		WithField("status_code", response.StatusCode).
		WithField("response_body", string(responseBody)).
		Error("function returned an error")
	errResp := functionError{}
	if json.Unmarshal(responseBody, &errResp) == nil {
		if errResp.Error != "" {
			return errors.New(errResp.Error)
		}
		if errResp.Message != "" {
			return errors.New(errResp.Message)
		}
	}
	if msg := strings.TrimSpace(string(responseBody)); msg != "" {
		return errors.Errorf("%s: %s", name, msg)
	}
	return errors.Errorf("%s: status %d", name, response.StatusCode)
}

// NewSmtpTransport renders the function payload as an email and sends it directly.
func NewSmtpTransport(sender smtp.Provider) Provider {
	return &smtpImpl{sender: sender}
}

type smtpImpl struct {
	sender smtp.Provider
}

func (i smtpImpl) Invoke(ctx context.Context, name string, payload interface{}) error {
	if !knownFunctions[name] {
		return errors.Errorf("unknown function: %s", name)
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	p, ok := payload.(emailPayload)
	if !ok {
		return errors.Errorf("payload %T can not be sent as email", payload)
	}
	email := p.Email()
	for _, to := range email.To {
		if strings.TrimSpace(to) == "" {
			return errors.New("recipient email is empty")
		}
	}
	return i.sender.Send(smtp.Message{
		To:      email.To,
		Subject: email.Subject,
		Body:    email.Body,
	})
}

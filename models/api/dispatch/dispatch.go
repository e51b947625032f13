package dispatchapimodels

import (
	"net/mail"
	"strings"
	"time"

	"childminder-backend/models"
	"github.com/pkg/errors"
)

type RecipientView struct {
	ID         string                 `json:"id"`
	AgencyCode models.AgencyCode      `json:"agency_code"`
	Name       string                 `json:"name"`
	Detail     string                 `json:"detail"`
	Email      string                 `json:"email"`
	Custom     bool                   `json:"custom"`
	Status     models.RecipientStatus `json:"status"`
	Error      string                 `json:"error,omitempty"`
	SentAt     *time.Time             `json:"sent_at,omitempty"`
}

type SessionView struct {
	ID         string          `json:"id"`
	CaseID     string          `json:"case_id"`
	Reference  string          `json:"reference_number"`
	Recipients []RecipientView `json:"recipients"`
	SentCount  int             `json:"sent_count"`
	AllSent    bool            `json:"all_sent"`
}

type EmailUpdate struct {
	Email string `json:"email"`
}

func (r EmailUpdate) Validate() error {
	return validateEmail(r.Email)
}

type CustomRecipient struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Detail string `json:"detail"`
}

func (r CustomRecipient) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return models.NewValidationError("name", "recipient name is required")
	}
	return validateEmail(r.Email)
}

type CloseRequest struct {
	DeferralReason string `json:"deferral_reason"`
}

type CloseResult struct {
	AllSent  bool `json:"all_sent"`
	Deferred bool `json:"deferred"` // closed with recipients still not notified
	// ReasonMissing flags a deferral closed without a reason, the close still goes through.
	ReasonMissing bool   `json:"reason_missing"`
	Event         string `json:"event"`
}

func validateEmail(email string) error {
	if _, err := mail.ParseAddress(strings.TrimSpace(email)); err != nil {
		return models.NewValidationError("email", "email has an invalid format")
	}
	return nil
}

var ErrAlreadySent = errors.Wrap(models.ErrConflict, "notification already sent to this recipient")

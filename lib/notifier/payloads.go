package notifier

import (
	"fmt"
	"strings"

	"childminder-backend/models"
)

// Email is what the smtp transport sends for one function call.
type Email struct {
	To      []string
	Subject string
	Body    string
}

type emailPayload interface {
	Email() Email
}

type EnforcementNotification struct {
	CaseID          string            `json:"case_id"`
	ReferenceNumber string            `json:"reference_number"`
	AgencyCode      models.AgencyCode `json:"agency_code"`
	AgencyName      string            `json:"agency_name"`
	RecipientEmail  string            `json:"recipient_email"`
	ProviderID      string            `json:"provider_id"`
	ProviderName    string            `json:"provider_name"`
	ProviderAddress string            `json:"provider_address"`
	ActionType      models.CaseType   `json:"action_type"`
	Status          models.CaseStatus `json:"status"`
	EffectiveDate   string            `json:"effective_date"`
	Deadline        string            `json:"deadline,omitempty"`
	Concerns        string            `json:"concerns"`
}

func (p EnforcementNotification) Email() Email {
	var b strings.Builder
	fmt.Fprintf(&b, "Dear %s,\n\n", p.AgencyName)
	fmt.Fprintf(&b, "The agency has taken %s action against a registered childminder.\n\n", strings.ToLower(p.ActionType.ToHuman()))
	fmt.Fprintf(&b, "Reference: %s\n", p.ReferenceNumber)
	fmt.Fprintf(&b, "Provider: %s\n", p.ProviderName)
	if p.ProviderAddress != "" {
		fmt.Fprintf(&b, "Address: %s\n", p.ProviderAddress)
	}
	fmt.Fprintf(&b, "Action: %s (%s)\n", p.ActionType.ToHuman(), p.Status.ToHuman())
	fmt.Fprintf(&b, "Effective from: %s\n", p.EffectiveDate)
	if p.Deadline != "" {
		fmt.Fprintf(&b, "Next deadline: %s\n", p.Deadline)
	}
	fmt.Fprintf(&b, "\nConcerns:\n%s\n", p.Concerns)
	return Email{
		To:      []string{p.RecipientEmail},
		Subject: fmt.Sprintf("Enforcement notification: %s %s", p.ActionType.ToHuman(), p.ReferenceNumber),
		Body:    b.String(),
	}
}

type EmployeeEmail struct {
	EmployeeID string `json:"employee_id"`
	To         string `json:"to"`
	Name       string `json:"name"`
	Subject    string `json:"subject"`
	Body       string `json:"body"`
}

func (p EmployeeEmail) Email() Email {
	return Email{
		To:      []string{p.To},
		Subject: p.Subject,
		Body:    fmt.Sprintf("Dear %s,\n\n%s\n", p.Name, p.Body),
	}
}

type KnownToOfstedEmail struct {
	EmployeeID     string `json:"employee_id"`
	RecipientEmail string `json:"recipient_email"`
	ProviderName   string `json:"provider_name"`
	ProviderEmail  string `json:"provider_email"`
	OfstedURN      string `json:"ofsted_urn"`
	RequestedBy    string `json:"requested_by"`
}

func (p KnownToOfstedEmail) Email() Email {
	var b strings.Builder
	b.WriteString("Please confirm whether the following person is known to Ofsted.\n\n")
	fmt.Fprintf(&b, "Name: %s\n", p.ProviderName)
	if p.OfstedURN != "" {
		fmt.Fprintf(&b, "URN: %s\n", p.OfstedURN)
	}
	if p.ProviderEmail != "" {
		fmt.Fprintf(&b, "Email: %s\n", p.ProviderEmail)
	}
	fmt.Fprintf(&b, "\nRequested by: %s\n", p.RequestedBy)
	return Email{
		To:      []string{p.RecipientEmail},
		Subject: "Known to Ofsted check: " + p.ProviderName,
		Body:    b.String(),
	}
}

type DbsRequestEmail struct {
	EmployeeID  string `json:"employee_id"`
	To          string `json:"to"`
	Name        string `json:"name"`
	RequestedBy string `json:"requested_by"`
}

func (p DbsRequestEmail) Email() Email {
	return Email{
		To:      []string{p.To},
		Subject: "Enhanced DBS check required",
		Body: fmt.Sprintf("Dear %s,\n\nAs part of your registration with the agency you need to complete an enhanced "+
			"DBS check with barred lists. Please reply to this email to arrange it.\n\n%s\n", p.Name, p.RequestedBy),
	}
}

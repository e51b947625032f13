package draftapimodels

import (
	"strings"

	"github.com/pkg/errors"
)

type StartRequest struct {
	Kind       string `json:"kind"`        // suspension_warning, cancellation, review, decision
	EmployeeID string `json:"employee_id"` // new case workflows
	CaseID     string `json:"case_id"`     // review and decision
}

func (r StartRequest) Validate() error {
	if strings.TrimSpace(r.Kind) == "" {
		return errors.New("workflow kind is required")
	}
	return nil
}

// TargetID is the provider or case the workflow acts on.
func (r StartRequest) TargetID() string {
	if r.CaseID != "" {
		return r.CaseID
	}
	return r.EmployeeID
}

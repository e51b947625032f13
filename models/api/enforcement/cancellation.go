package enforcementapimodels

import (
	"childminder-backend/models"
)

type CancellationGrounds struct {
	Grounds          []models.CancellationGround `json:"grounds"`
	EvidenceSummary  string                      `json:"evidence_summary"`
	EvidenceAttached bool                        `json:"evidence_attached"`
}

func (g CancellationGrounds) Validate() error {
	verr := &models.ValidationError{}
	if len(g.Grounds) == 0 {
		verr.Add("grounds", "select at least one ground for cancellation")
	}
	seen := map[models.CancellationGround]bool{}
	for _, ground := range g.Grounds {
		if err := ground.Validate(); err != nil {
			verr.Add("grounds", err.Error())
			continue
		}
		if seen[ground] {
			verr.Add("grounds", "ground selected twice: "+string(ground))
		}
		seen[ground] = true
	}
	if blank(g.EvidenceSummary) {
		verr.Add("evidence_summary", "summarise the evidence relied on")
	}
	if !g.EvidenceAttached {
		verr.Add("evidence_attached", "confirm the evidence is held on file")
	}
	return verr.OrNil()
}

func (g CancellationGrounds) HasMandatoryGround() bool {
	for _, ground := range g.Grounds {
		if ground.IsMandatory() {
			return true
		}
	}
	return false
}

type CancellationTimeline struct {
	RepresentationDays int    `json:"representation_days"`
	RightsExplained    bool   `json:"rights_explained"`  // right to make representations and to appeal
	ServiceConfirmed   bool   `json:"service_confirmed"` // notice will be served on the provider
	SupervisorID       string `json:"supervisor_id"`
}

func (t CancellationTimeline) Validate() error {
	verr := &models.ValidationError{}
	if t.RepresentationDays <= 0 {
		verr.Add("representation_days", "representations period must be a positive number of days")
	}
	if !t.RightsExplained {
		verr.Add("rights_explained", "confirmation is required")
	}
	if !t.ServiceConfirmed {
		verr.Add("service_confirmed", "confirmation is required")
	}
	if blank(t.SupervisorID) {
		verr.Add("supervisor_id", "a supervisor must approve the notice")
	}
	return verr.OrNil()
}

type CancellationInput struct {
	EmployeeID string               `json:"employee_id"`
	Grounds    CancellationGrounds  `json:"grounds"`
	Timeline   CancellationTimeline `json:"timeline"`
}

func NewCancellationInput(employeeID string) CancellationInput {
	return CancellationInput{
		EmployeeID: employeeID,
		Timeline:   CancellationTimeline{RepresentationDays: DefaultRepresentationDays},
	}
}

func (c CancellationInput) Validate() error {
	if blank(c.EmployeeID) {
		return models.NewValidationError("employee_id", "select a provider")
	}
	if err := c.Grounds.Validate(); err != nil {
		return err
	}
	return c.Timeline.Validate()
}

package enforcementapimodels

import (
	"childminder-backend/models"
)

type ReviewDetails struct {
	InvestigationStatus string `json:"investigation_status"`
	ExtensionWeeks      int    `json:"extension_weeks"`
	LiftConditions      string `json:"lift_conditions,omitempty"`
	SupervisorID        string `json:"supervisor_id"`
}

type ReviewInput struct {
	CaseID  string               `json:"case_id"`
	Outcome models.ReviewOutcome `json:"outcome"`
	Details ReviewDetails        `json:"details"`

	// ExpectedVersion pins the case version the operator started from, 0 skips the check.
	ExpectedVersion int `json:"expected_version,omitempty"`
}

func NewReviewInput(caseID string) ReviewInput {
	return ReviewInput{
		CaseID:  caseID,
		Details: ReviewDetails{ExtensionWeeks: DefaultExtensionWeeks},
	}
}

func (r ReviewInput) ValidateOutcome() error {
	if err := r.Outcome.Validate(); err != nil {
		return models.NewValidationError("outcome", err.Error())
	}
	return nil
}

func (r ReviewInput) ValidateDetails() error {
	verr := &models.ValidationError{}
	if r.Outcome == models.ReviewExtend {
		if blank(r.Details.InvestigationStatus) {
			verr.Add("investigation_status", "describe where the investigation stands")
		}
		if r.Details.ExtensionWeeks <= 0 {
			verr.Add("extension_weeks", "extension must be a positive number of weeks")
		}
	}
	if blank(r.Details.SupervisorID) {
		verr.Add("supervisor_id", "a supervisor must approve the review")
	}
	return verr.OrNil()
}

func (r ReviewInput) Validate() error {
	if blank(r.CaseID) {
		return models.NewValidationError("case_id", "select a case")
	}
	if err := r.ValidateOutcome(); err != nil {
		return err
	}
	return r.ValidateDetails()
}

// Stage drops the fields of the outcome not taken.
func (r ReviewInput) Stage() ReviewInput {
	stage := r
	if r.Outcome == models.ReviewLift {
		stage.Details.ExtensionWeeks = 0
		stage.Details.InvestigationStatus = ""
	} else {
		stage.Details.LiftConditions = ""
	}
	return stage
}

package enforcementapimodels

import (
	"childminder-backend/models"
)

type Representations struct {
	Received bool                          `json:"received"`
	Summary  string                        `json:"summary,omitempty"`
	Outcome  models.RepresentationsOutcome `json:"outcome,omitempty"`
}

func (r Representations) Validate() error {
	if !r.Received {
		return nil
	}
	verr := &models.ValidationError{}
	if blank(r.Summary) {
		verr.Add("summary", "summarise the representations received")
	}
	if err := r.Outcome.Validate(); err != nil {
		verr.Add("outcome", err.Error())
	}
	return verr.OrNil()
}

type DecisionApproval struct {
	SupervisorID    string `json:"supervisor_id"`
	ReviewConfirmed bool   `json:"review_confirmed"`
}

func (a DecisionApproval) Validate() error {
	verr := &models.ValidationError{}
	if blank(a.SupervisorID) {
		verr.Add("supervisor_id", "a supervisor must approve the decision")
	}
	if !a.ReviewConfirmed {
		verr.Add("review_confirmed", "confirm the case has been reviewed")
	}
	return verr.OrNil()
}

type DecisionInput struct {
	CaseID          string           `json:"case_id"`
	Representations Representations  `json:"representations"`
	Approval        DecisionApproval `json:"approval"`

	// ExpectedVersion pins the case version the operator started from, 0 skips the check.
	ExpectedVersion int `json:"expected_version,omitempty"`
}

// EffectiveDecision is computed, never chosen: only upheld representations withdraw the notice.
func (d DecisionInput) EffectiveDecision() models.Decision {
	if !d.Representations.Received {
		return models.DecisionCancel
	}
	return models.EffectiveDecision(d.Representations.Outcome)
}

func (d DecisionInput) Validate() error {
	if blank(d.CaseID) {
		return models.NewValidationError("case_id", "select a case")
	}
	if err := d.Representations.Validate(); err != nil {
		return err
	}
	return d.Approval.Validate()
}

type DecisionStage struct {
	DecisionInput
	Decision models.Decision `json:"decision"`
}

func (d DecisionInput) Stage() DecisionStage {
	stage := DecisionStage{DecisionInput: d, Decision: d.EffectiveDecision()}
	if !d.Representations.Received {
		stage.Representations = Representations{}
	}
	return stage
}

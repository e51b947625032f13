package draftshandler

import (
	"childminder-backend/lib/enforcement/wizard"
	"childminder-backend/models"
)

const (
	StepRiskAssessment     = "risk_assessment"
	StepLegalConfirmations = "legal_confirmations"
	StepWarningDetails     = "warning_details"
	StepGrounds            = "grounds"
	StepTimeline           = "timeline"
	StepOutcome            = "outcome"
	StepDetails            = "details"
	StepRepresentations    = "representations"
	StepApproval           = "approval"
	StepNoticePreview      = "notice_preview"
)

// preview is checked by commit re-running every earlier step
var previewStep = wizard.Step{Name: StepNoticePreview}

func (d *Draft) steps() wizard.StepsFunc {
	switch d.Kind {
	case KindSuspensionWarning:
		return func() []wizard.Step {
			in := d.SuspensionWarning
			second := wizard.Step{Name: StepLegalConfirmations, Check: in.Suspension.Validate}
			if in.RiskAssessment.Path() == models.ActionPathWarning {
				second = wizard.Step{Name: StepWarningDetails, Check: in.Warning.Validate}
			}
			return []wizard.Step{
				{Name: StepRiskAssessment, Check: in.RiskAssessment.Validate},
				second,
				previewStep,
			}
		}
	case KindCancellation:
		return func() []wizard.Step {
			in := d.Cancellation
			return []wizard.Step{
				{Name: StepGrounds, Check: in.Grounds.Validate},
				{Name: StepTimeline, Check: in.Timeline.Validate},
				previewStep,
			}
		}
	case KindReview:
		return func() []wizard.Step {
			in := d.Review
			return []wizard.Step{
				{Name: StepOutcome, Check: in.ValidateOutcome},
				{Name: StepDetails, Check: in.ValidateDetails},
				previewStep,
			}
		}
	case KindDecision:
		return func() []wizard.Step {
			in := d.Decision
			return []wizard.Step{
				{Name: StepRepresentations, Check: in.Representations.Validate},
				{Name: StepApproval, Check: in.Approval.Validate},
				previewStep,
			}
		}
	}
	return func() []wizard.Step { return []wizard.Step{previewStep} }
}

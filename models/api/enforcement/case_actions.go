package enforcementapimodels

import (
	"time"

	"childminder-backend/models"
)

type WarningCloseInput struct {
	ComplianceSummary string `json:"compliance_summary"`
}

func (w WarningCloseInput) Validate() error {
	if blank(w.ComplianceSummary) {
		return models.NewValidationError("compliance_summary", "describe how compliance was confirmed")
	}
	return nil
}

// RepresentationsInput logs the provider's written representations against a notice of intention.
type RepresentationsInput struct {
	Summary string `json:"summary"`
}

func (r RepresentationsInput) Validate() error {
	if blank(r.Summary) {
		return models.NewValidationError("summary", "summarise the representations received")
	}
	return nil
}

type TimelineNote struct {
	Event string                   `json:"event"`
	Type  models.TimelineEventType `json:"type"`
	Date  *time.Time               `json:"date,omitempty"` // today when empty
}

func (n TimelineNote) Validate() error {
	verr := &models.ValidationError{}
	if blank(n.Event) {
		verr.Add("event", "note text is required")
	}
	switch n.Type {
	case "", models.TimelineCompleted, models.TimelinePending, models.TimelineUrgent:
	default:
		verr.Add("type", "unknown timeline event type")
	}
	return verr.OrNil()
}

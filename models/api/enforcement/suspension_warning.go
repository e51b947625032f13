package enforcementapimodels

import (
	"strings"

	"childminder-backend/lib/utils/helpers"
	"childminder-backend/models"
)

const (
	DefaultComplianceDays     = 14
	DefaultRepresentationDays = 14
	DefaultExtensionWeeks     = 6
)

type RiskAssessment struct {
	Concern        string            `json:"concern"`
	RiskDetail     string            `json:"risk_detail"`
	RiskCategories []string          `json:"risk_categories"`
	Action         models.ActionPath `json:"action"`

	// Reasonableness is the older yes/no form of the path choice: no means suspension.
	Reasonableness string `json:"reasonableness,omitempty"`
}

// Path resolves the chosen branch, action wins over the legacy flag.
func (r RiskAssessment) Path() models.ActionPath {
	if r.Action != "" {
		return r.Action
	}
	switch strings.ToLower(strings.TrimSpace(r.Reasonableness)) {
	case "no":
		return models.ActionPathSuspension
	case "yes":
		return models.ActionPathWarning
	}
	return ""
}

func (r RiskAssessment) Validate() error {
	verr := &models.ValidationError{}
	if blank(r.Concern) {
		verr.Add("concern", "describe the concern")
	}
	if blank(r.RiskDetail) {
		verr.Add("risk_detail", "describe the risk")
	}
	if len(helpers.CleanList(r.RiskCategories)) == 0 {
		verr.Add("risk_categories", "select at least one risk category")
	}
	if err := r.Path().Validate(); err != nil {
		verr.Add("action", err.Error())
	}
	return verr.OrNil()
}

type SuspensionDetails struct {
	ReasonableBelief       bool   `json:"reasonable_belief"`       // children may be exposed to a risk of harm
	ImmediateEffect        bool   `json:"immediate_effect"`        // the suspension takes effect on issue
	RightOfAppeal          bool   `json:"right_of_appeal"`         // the provider is told of the appeal route
	ReviewCommitment       bool   `json:"review_commitment"`       // reviewed within 6 weeks
	NotificationCommitment bool   `json:"notification_commitment"` // Ofsted and partners will be notified
	SupervisorID           string `json:"supervisor_id,omitempty"`
}

func (s SuspensionDetails) Validate() error {
	verr := &models.ValidationError{}
	confirm := func(field string, ok bool) {
		if !ok {
			verr.Add(field, "confirmation is required")
		}
	}
	confirm("reasonable_belief", s.ReasonableBelief)
	confirm("immediate_effect", s.ImmediateEffect)
	confirm("right_of_appeal", s.RightOfAppeal)
	confirm("review_commitment", s.ReviewCommitment)
	confirm("notification_commitment", s.NotificationCommitment)
	return verr.OrNil()
}

type WarningDetails struct {
	NoticeType       models.WarningNoticeType `json:"notice_type"`
	BreachDetails    string                   `json:"breach_details"`
	RequiredActions  string                   `json:"required_actions"`
	ComplianceDays   int                      `json:"compliance_days"`
	MonitoringMethod string                   `json:"monitoring_method"`
	SupervisorID     string                   `json:"supervisor_id"`
}

func (w WarningDetails) Validate() error {
	verr := &models.ValidationError{}
	if err := w.NoticeType.Validate(); err != nil {
		verr.Add("notice_type", err.Error())
	}
	if blank(w.BreachDetails) {
		verr.Add("breach_details", "describe the breach")
	}
	if blank(w.RequiredActions) {
		verr.Add("required_actions", "list the actions the provider must take")
	}
	if w.ComplianceDays <= 0 {
		verr.Add("compliance_days", "compliance period must be a positive number of days")
	}
	if blank(w.MonitoringMethod) {
		verr.Add("monitoring_method", "describe how compliance will be monitored")
	}
	if blank(w.SupervisorID) {
		verr.Add("supervisor_id", "a supervisor must approve the notice")
	}
	return verr.OrNil()
}

type SuspensionWarningInput struct {
	EmployeeID     string            `json:"employee_id"`
	RiskAssessment RiskAssessment    `json:"risk_assessment"`
	Suspension     SuspensionDetails `json:"suspension"`
	Warning        WarningDetails    `json:"warning"`
}

func NewSuspensionWarningInput(employeeID string) SuspensionWarningInput {
	return SuspensionWarningInput{
		EmployeeID: employeeID,
		Warning:    WarningDetails{ComplianceDays: DefaultComplianceDays},
	}
}

func (s SuspensionWarningInput) Validate() error {
	if blank(s.EmployeeID) {
		return models.NewValidationError("employee_id", "select a provider")
	}
	if err := s.RiskAssessment.Validate(); err != nil {
		return err
	}
	return s.ValidateDetails()
}

// ValidateDetails checks the second step of whichever branch was chosen.
func (s SuspensionWarningInput) ValidateDetails() error {
	if s.RiskAssessment.Path() == models.ActionPathWarning {
		return s.Warning.Validate()
	}
	return s.Suspension.Validate()
}

func (s SuspensionWarningInput) SupervisorID() string {
	if s.RiskAssessment.Path() == models.ActionPathWarning {
		return s.Warning.SupervisorID
	}
	return s.Suspension.SupervisorID
}

// SuspensionStage and WarningStage are the stored snapshots, one per branch.
type SuspensionStage struct {
	RiskAssessment RiskAssessment    `json:"risk_assessment"`
	Suspension     SuspensionDetails `json:"suspension"`
}

type WarningStage struct {
	RiskAssessment RiskAssessment `json:"risk_assessment"`
	Warning        WarningDetails `json:"warning"`
}

// Stage returns the tagged snapshot of the branch taken, the other branch is dropped.
func (s SuspensionWarningInput) Stage() (models.WorkflowKind, interface{}) {
	ra := s.RiskAssessment
	ra.Action = ra.Path()
	ra.Reasonableness = ""
	ra.RiskCategories = helpers.CleanList(ra.RiskCategories)
	if ra.Action == models.ActionPathWarning {
		return models.WorkflowWarning, WarningStage{RiskAssessment: ra, Warning: s.Warning}
	}
	return models.WorkflowSuspension, SuspensionStage{RiskAssessment: ra, Suspension: s.Suspension}
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

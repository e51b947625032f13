package models

import "github.com/pkg/errors"

type CaseType string

const (
	CaseTypeSuspension   CaseType = "suspension"
	CaseTypeWarning      CaseType = "warning"
	CaseTypeCancellation CaseType = "cancellation"
)

var caseTypeHumanName = map[CaseType]string{
	CaseTypeSuspension:   "Suspension",
	CaseTypeWarning:      "Warning",
	CaseTypeCancellation: "Cancellation",
}

func (t CaseType) ToHuman() string {
	if human, exist := caseTypeHumanName[t]; exist {
		return human
	}
	return string(t)
}

func (t CaseType) Validate() error {
	if _, ok := caseTypeHumanName[t]; !ok {
		return errors.Errorf("unknown case type: %v", t)
	}
	return nil
}

// RiskLevel is fixed per case type at creation.
func (t CaseType) RiskLevel() RiskLevel {
	switch t {
	case CaseTypeSuspension:
		return RiskLevelCritical
	case CaseTypeWarning, CaseTypeCancellation:
		return RiskLevelHigh
	}
	return RiskLevelMedium
}

// InitialStatus is the status a freshly committed case starts in.
// Cancellation never takes immediate effect.
func (t CaseType) InitialStatus() CaseStatus {
	if t == CaseTypeCancellation {
		return CaseStatusPending
	}
	return CaseStatusInEffect
}

// statuses only move forward; self transition is an extension of the same stage
var caseTransitions = map[CaseType]map[CaseStatus][]CaseStatus{
	CaseTypeSuspension: {
		CaseStatusInEffect: {CaseStatusInEffect, CaseStatusLifted},
	},
	CaseTypeWarning: {
		CaseStatusInEffect: {CaseStatusClosed},
	},
	CaseTypeCancellation: {
		CaseStatusPending:                 {CaseStatusRepresentationsReceived, CaseStatusDecisionPending, CaseStatusCancelled, CaseStatusClosed},
		CaseStatusRepresentationsReceived: {CaseStatusDecisionPending, CaseStatusCancelled, CaseStatusClosed},
		CaseStatusDecisionPending:         {CaseStatusCancelled, CaseStatusClosed},
	},
}

func (t CaseType) IsAllowChange(from, to CaseStatus) bool {
	for _, next := range caseTransitions[t][from] {
		if next == to {
			return true
		}
	}
	return false
}

type CaseStatus string

const (
	CaseStatusPending                 CaseStatus = "pending"
	CaseStatusInEffect                CaseStatus = "in_effect"
	CaseStatusRepresentationsReceived CaseStatus = "representations_received"
	CaseStatusDecisionPending         CaseStatus = "decision_pending"
	CaseStatusLifted                  CaseStatus = "lifted"
	CaseStatusCancelled               CaseStatus = "cancelled"
	CaseStatusClosed                  CaseStatus = "closed"
)

var caseStatusHumanName = map[CaseStatus]string{
	CaseStatusPending:                 "Pending",
	CaseStatusInEffect:                "In effect",
	CaseStatusRepresentationsReceived: "Representations received",
	CaseStatusDecisionPending:         "Decision pending",
	CaseStatusLifted:                  "Lifted",
	CaseStatusCancelled:               "Cancelled",
	CaseStatusClosed:                  "Closed",
}

func (s CaseStatus) ToHuman() string {
	if human, exist := caseStatusHumanName[s]; exist {
		return human
	}
	return string(s)
}

func (s CaseStatus) Validate() error {
	if _, ok := caseStatusHumanName[s]; !ok {
		return errors.Errorf("unknown case status: %v", s)
	}
	return nil
}

func (s CaseStatus) IsTerminal() bool {
	return s == CaseStatusLifted || s == CaseStatusCancelled || s == CaseStatusClosed
}

type RiskLevel string

const (
	RiskLevelLow      RiskLevel = "low"
	RiskLevelMedium   RiskLevel = "medium"
	RiskLevelHigh     RiskLevel = "high"
	RiskLevelCritical RiskLevel = "critical"
)

type TimelineEventType string

const (
	TimelineCompleted TimelineEventType = "completed"
	TimelinePending   TimelineEventType = "pending"
	TimelineUrgent    TimelineEventType = "urgent"
)

// ActionPath is the branch chosen at the risk assessment step.
type ActionPath string

const (
	ActionPathSuspension ActionPath = "suspension"
	ActionPathWarning    ActionPath = "warning"
)

func (p ActionPath) Validate() error {
	if p != ActionPathSuspension && p != ActionPathWarning {
		return errors.New("choose suspension or warning")
	}
	return nil
}

func (p ActionPath) CaseType() CaseType {
	if p == ActionPathWarning {
		return CaseTypeWarning
	}
	return CaseTypeSuspension
}

type WarningNoticeType string

const (
	WarningFormal                    WarningNoticeType = "formal_warning"
	WarningWelfareRequirementsNotice WarningNoticeType = "welfare_requirements_notice"
	WarningActionPlan                WarningNoticeType = "action_plan"
)

var warningNoticeHumanName = map[WarningNoticeType]string{
	WarningFormal:                    "Formal Warning",
	WarningWelfareRequirementsNotice: "Welfare Requirements Notice",
	WarningActionPlan:                "Action Plan Notice",
}

func (w WarningNoticeType) ToHuman() string {
	if human, exist := warningNoticeHumanName[w]; exist {
		return human
	}
	return string(w)
}

func (w WarningNoticeType) Validate() error {
	if _, ok := warningNoticeHumanName[w]; !ok {
		return errors.New("select a notice type")
	}
	return nil
}

type CancellationGround string

const (
	GroundMandatoryDisqualification CancellationGround = "mandatory_dq"
	GroundRequirementsNotMet        CancellationGround = "prescribed_requirements_not_met"
	GroundConditionBreach           CancellationGround = "condition_breach"
	GroundRegulationBreach          CancellationGround = "regulation_breach"
	GroundFeeUnpaid                 CancellationGround = "fee_unpaid"
)

var cancellationGroundHumanName = map[CancellationGround]string{
	GroundMandatoryDisqualification: "The provider is disqualified from registration",
	GroundRequirementsNotMet:        "The provider has ceased to meet the prescribed requirements for registration",
	GroundConditionBreach:           "The provider has failed to comply with a condition of registration",
	GroundRegulationBreach:          "The provider has failed to comply with a requirement of the regulations",
	GroundFeeUnpaid:                 "The provider has failed to pay a prescribed fee",
}

func (g CancellationGround) ToHuman() string {
	if human, exist := cancellationGroundHumanName[g]; exist {
		return human
	}
	return string(g)
}

func (g CancellationGround) Validate() error {
	if _, ok := cancellationGroundHumanName[g]; !ok {
		return errors.Errorf("unknown cancellation ground: %v", g)
	}
	return nil
}

// IsMandatory grounds leave no discretion to the agency.
func (g CancellationGround) IsMandatory() bool {
	return g == GroundMandatoryDisqualification
}

type ReviewOutcome string

const (
	ReviewExtend ReviewOutcome = "extend"
	ReviewLift   ReviewOutcome = "lift"
)

func (o ReviewOutcome) Validate() error {
	if o != ReviewExtend && o != ReviewLift {
		return errors.New("choose to extend or lift the suspension")
	}
	return nil
}

type RepresentationsOutcome string

const (
	RepsRejected RepresentationsOutcome = "rejected"
	RepsVaried   RepresentationsOutcome = "varied"
	RepsUpheld   RepresentationsOutcome = "upheld"
)

func (o RepresentationsOutcome) Validate() error {
	switch o {
	case RepsRejected, RepsVaried, RepsUpheld:
		return nil
	}
	return errors.New("select the outcome of the representations")
}

type Decision string

const (
	DecisionCancel   Decision = "cancel"
	DecisionWithdraw Decision = "withdraw"
)

// EffectiveDecision: upheld representations are the only way back from a notice of intention.
func EffectiveDecision(outcome RepresentationsOutcome) Decision {
	if outcome == RepsUpheld {
		return DecisionWithdraw
	}
	return DecisionCancel
}

func (d Decision) FinalStatus() CaseStatus {
	if d == DecisionWithdraw {
		return CaseStatusClosed
	}
	return CaseStatusCancelled
}

// WorkflowKind tags the captured input of one workflow stage.
type WorkflowKind string

const (
	WorkflowSuspension      WorkflowKind = "suspension"
	WorkflowWarning         WorkflowKind = "warning"
	WorkflowCancellation    WorkflowKind = "cancellation"
	WorkflowReview          WorkflowKind = "review"
	WorkflowDecision        WorkflowKind = "decision"
	WorkflowWarningClose    WorkflowKind = "warning_close"
	WorkflowRepresentations WorkflowKind = "representations"
)

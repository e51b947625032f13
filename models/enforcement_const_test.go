package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCaseTransitions(t *testing.T) {
	for _, tc := range []struct {
		name    string
		caseTyp CaseType
		from    CaseStatus
		to      CaseStatus
		allowed bool
	}{
		{`suspension extend`, CaseTypeSuspension, CaseStatusInEffect, CaseStatusInEffect, true},
		{`suspension lift`, CaseTypeSuspension, CaseStatusInEffect, CaseStatusLifted, true},
		{`suspension can not be cancelled`, CaseTypeSuspension, CaseStatusInEffect, CaseStatusCancelled, false},
		{`lifted is terminal`, CaseTypeSuspension, CaseStatusLifted, CaseStatusInEffect, false},
		{`warning close`, CaseTypeWarning, CaseStatusInEffect, CaseStatusClosed, true},
		{`warning can not be lifted`, CaseTypeWarning, CaseStatusInEffect, CaseStatusLifted, false},
		{`cancellation expires to decision`, CaseTypeCancellation, CaseStatusPending, CaseStatusDecisionPending, true},
		{`cancellation decided`, CaseTypeCancellation, CaseStatusDecisionPending, CaseStatusCancelled, true},
		{`cancellation withdrawn`, CaseTypeCancellation, CaseStatusRepresentationsReceived, CaseStatusClosed, true},
		{`no way back to pending`, CaseTypeCancellation, CaseStatusDecisionPending, CaseStatusPending, false},
		{`cancelled is terminal`, CaseTypeCancellation, CaseStatusCancelled, CaseStatusClosed, false},
	} {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.allowed, tc.caseTyp.IsAllowChange(tc.from, tc.to))
		})
	}
}

func TestCaseTypeDefaults(t *testing.T) {
	require.Equal(t, RiskLevelCritical, CaseTypeSuspension.RiskLevel())
	require.Equal(t, RiskLevelHigh, CaseTypeWarning.RiskLevel())
	require.Equal(t, RiskLevelHigh, CaseTypeCancellation.RiskLevel())

	require.Equal(t, CaseStatusInEffect, CaseTypeSuspension.InitialStatus())
	require.Equal(t, CaseStatusInEffect, CaseTypeWarning.InitialStatus())
	require.Equal(t, CaseStatusPending, CaseTypeCancellation.InitialStatus())

	require.Error(t, CaseType("closure").Validate())
	require.Error(t, CaseStatus("open").Validate())
}

func TestTerminalStatuses(t *testing.T) {
	for _, s := range []CaseStatus{CaseStatusLifted, CaseStatusCancelled, CaseStatusClosed} {
		require.True(t, s.IsTerminal(), s)
	}
	for _, s := range []CaseStatus{CaseStatusPending, CaseStatusInEffect, CaseStatusRepresentationsReceived, CaseStatusDecisionPending} {
		require.False(t, s.IsTerminal(), s)
	}
}

func TestEffectiveDecision(t *testing.T) {
	require.Equal(t, DecisionWithdraw, EffectiveDecision(RepsUpheld))
	require.Equal(t, DecisionCancel, EffectiveDecision(RepsRejected))
	require.Equal(t, DecisionCancel, EffectiveDecision(RepsVaried))
	require.Equal(t, DecisionCancel, EffectiveDecision(""))

	require.Equal(t, CaseStatusClosed, DecisionWithdraw.FinalStatus())
	require.Equal(t, CaseStatusCancelled, DecisionCancel.FinalStatus())
}

func TestActionPath(t *testing.T) {
	require.Equal(t, CaseTypeWarning, ActionPathWarning.CaseType())
	require.Equal(t, CaseTypeSuspension, ActionPathSuspension.CaseType())
	require.Error(t, ActionPath("").Validate())
}

package enforcementhandler

import (
	"context"
	"testing"
	"time"

	"childminder-backend/models"
	dbmodels "childminder-backend/models/db"
	"github.com/stretchr/testify/require"
)

func addCase(m *memory, id string, caseType models.CaseType, status models.CaseStatus, due time.Time) {
	m.cases[id] = dbmodels.EnforcementCase{
		BaseModel:       dbmodels.BaseModel{ID: id},
		EmployeeID:      providerID,
		Type:            caseType,
		Status:          status,
		ReferenceNumber: string(caseType) + "/" + providerID + "/2024",
		Deadline:        &due,
		Version:         1,
	}
}

func eventsOf(m *memory, caseID string) []dbmodels.EnforcementTimeline {
	list := []dbmodels.EnforcementTimeline{}
	for _, rec := range m.timeline {
		if rec.CaseID == caseID {
			list = append(list, rec)
		}
	}
	return list
}

func TestExpireRepresentations(t *testing.T) {
	h, m, _ := newTestHandler(t)
	today := h.Today()
	addCase(m, "late", models.CaseTypeCancellation, models.CaseStatusPending, today.AddDate(0, 0, -1))
	addCase(m, "received", models.CaseTypeCancellation, models.CaseStatusRepresentationsReceived, today.AddDate(0, 0, -3))
	addCase(m, "due-today", models.CaseTypeCancellation, models.CaseStatusPending, today)
	addCase(m, "suspension", models.CaseTypeSuspension, models.CaseStatusInEffect, today.AddDate(0, 0, -1))

	moved, err := h.ExpireRepresentations(context.Background())
	require.NoError(t, err)
	require.Equal(t, 2, moved)
	require.Equal(t, models.CaseStatusDecisionPending, m.cases["late"].Status)
	require.Equal(t, models.CaseStatusDecisionPending, m.cases["received"].Status)
	require.Equal(t, models.CaseStatusPending, m.cases["due-today"].Status)
	require.Equal(t, models.CaseStatusInEffect, m.cases["suspension"].Status)
	require.Nil(t, m.cases["late"].DateClosed)

	events := eventsOf(m, "late")
	require.Len(t, events, 1)
	require.Equal(t, models.TimelinePending, events[0].Type)
	require.Equal(t, models.SystemUser, events[0].CreatedBy)

	t.Run(`second run is a no-op`, func(t *testing.T) {
		moved, err := h.ExpireRepresentations(context.Background())
		require.NoError(t, err)
		require.Equal(t, 0, moved)
		require.Len(t, eventsOf(m, "late"), 1)
	})
}

func TestAlertReviewsDue(t *testing.T) {
	h, m, _ := newTestHandler(t)
	today := h.Today()
	addCase(m, "soon", models.CaseTypeSuspension, models.CaseStatusInEffect, today.AddDate(0, 0, 4))
	addCase(m, "later", models.CaseTypeSuspension, models.CaseStatusInEffect, today.AddDate(0, 0, 30))
	addCase(m, "lifted", models.CaseTypeSuspension, models.CaseStatusLifted, today.AddDate(0, 0, 2))

	alerted, err := h.AlertReviewsDue(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, alerted, 1)
	require.Equal(t, "soon", alerted[0].ID)
	events := eventsOf(m, "soon")
	require.Len(t, events, 1)
	require.Equal(t, models.TimelineUrgent, events[0].Type)
	require.Equal(t, "Suspension review due by 12 March 2024", events[0].Event)
	requireDate(t, "2024-03-12", m.cases["soon"].DeadlineAlertedFor)

	t.Run(`one alert per deadline`, func(t *testing.T) {
		alerted, err := h.AlertReviewsDue(context.Background(), 7)
		require.NoError(t, err)
		require.Empty(t, alerted)
		require.Len(t, eventsOf(m, "soon"), 1)
	})
	t.Run(`a new deadline is alerted again`, func(t *testing.T) {
		rec := m.cases["soon"]
		extended := today.AddDate(0, 0, 6)
		rec.Deadline = &extended
		m.cases["soon"] = rec
		alerted, err := h.AlertReviewsDue(context.Background(), 7)
		require.NoError(t, err)
		require.Len(t, alerted, 1)
		require.Len(t, eventsOf(m, "soon"), 2)
	})
}

package draftshandler

import (
	"encoding/json"
	"sync"
	"testing"
	"time"

	enforcementhandler "childminder-backend/lib/enforcement"
	"childminder-backend/models"
	enforcementapimodels "childminder-backend/models/api/enforcement"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

type fakeEnforcement struct {
	enforcementhandler.Provider
	cases     map[string]enforcementapimodels.CaseView
	issueErr  error
	issued    []enforcementapimodels.SuspensionWarningInput
	reviewed  []enforcementapimodels.ReviewInput
	previewed int
}

func (f *fakeEnforcement) GetCase(id string) (enforcementapimodels.CaseView, error) {
	view, ok := f.cases[id]
	if !ok {
		return enforcementapimodels.CaseView{}, models.NotFound("case")
	}
	return view, nil
}

func (f *fakeEnforcement) PreviewSuspensionOrWarning(in enforcementapimodels.SuspensionWarningInput) (enforcementapimodels.NoticePreview, error) {
	f.previewed++
	return enforcementapimodels.NoticePreview{Title: "Notice of suspension"}, nil
}

func (f *fakeEnforcement) IssueSuspensionOrWarning(in enforcementapimodels.SuspensionWarningInput, actor enforcementhandler.Actor) (enforcementapimodels.CaseView, error) {
	if f.issueErr != nil {
		return enforcementapimodels.CaseView{}, f.issueErr
	}
	f.issued = append(f.issued, in)
	return enforcementapimodels.CaseView{ID: "case-new"}, nil
}

func (f *fakeEnforcement) ReviewSuspension(in enforcementapimodels.ReviewInput, actor enforcementhandler.Actor) (enforcementapimodels.CaseView, error) {
	f.reviewed = append(f.reviewed, in)
	return enforcementapimodels.CaseView{ID: in.CaseID}, nil
}

func raw(s string) json.RawMessage {
	return json.RawMessage(s)
}

const owner = "u1"

func TestSuspensionWarningDraft(t *testing.T) {
	f := &fakeEnforcement{}
	h := newImpl(f, 10, time.Hour)

	view, err := h.Start(owner, KindSuspensionWarning, "p1")
	require.NoError(t, err)
	require.Equal(t, StepRiskAssessment, view.Step)
	require.False(t, view.CanContinue)
	require.NotEmpty(t, view.Errors)
	id := view.ID

	_, err = h.Next(owner, id)
	require.ErrorIs(t, err, models.ErrValidation)

	_, err = h.Update(owner, id, raw(`{"risk_assessment":{"concern":"Unsafe garden"}}`))
	require.NoError(t, err)
	view, err = h.Update(owner, id, raw(`{"employee_id":"other","risk_assessment":{"risk_detail":"Pond not fenced","risk_categories":["Premises"],"reasonableness":"no"}}`))
	require.NoError(t, err)
	require.True(t, view.CanContinue)
	in := view.Input.(*enforcementapimodels.SuspensionWarningInput)
	require.Equal(t, "Unsafe garden", in.RiskAssessment.Concern)
	require.Equal(t, "p1", in.EmployeeID)
	require.Equal(t, enforcementapimodels.DefaultComplianceDays, in.Warning.ComplianceDays)

	view, err = h.Next(owner, id)
	require.NoError(t, err)
	require.Equal(t, StepLegalConfirmations, view.Step)
	require.Equal(t, []string{StepRiskAssessment, StepLegalConfirmations, StepNoticePreview}, view.Steps)

	t.Run(`path choice swaps the details step`, func(t *testing.T) {
		view, err := h.Update(owner, id, raw(`{"risk_assessment":{"action":"warning"}}`))
		require.NoError(t, err)
		require.Equal(t, StepWarningDetails, view.Step)
		view, err = h.Update(owner, id, raw(`{"risk_assessment":{"action":"suspension"}}`))
		require.NoError(t, err)
		require.Equal(t, StepLegalConfirmations, view.Step)
	})

	_, err = h.Commit(owner, id, enforcementhandler.Actor{Name: "Olivia"})
	require.ErrorIs(t, err, models.ErrValidation)

	_, err = h.Update(owner, id, raw(`{"suspension":{"reasonable_belief":true,"immediate_effect":true,"right_of_appeal":true,"review_commitment":true,"notification_commitment":true}}`))
	require.NoError(t, err)
	view, err = h.Next(owner, id)
	require.NoError(t, err)
	require.Equal(t, StepNoticePreview, view.Step)

	preview, err := h.Preview(owner, id)
	require.NoError(t, err)
	require.Equal(t, "Notice of suspension", preview.Title)

	t.Run(`failed commit stays on preview`, func(t *testing.T) {
		f.issueErr = errors.New("connection reset")
		_, err := h.Commit(owner, id, enforcementhandler.Actor{Name: "Olivia"})
		require.Error(t, err)
		view, err := h.Get(owner, id)
		require.NoError(t, err)
		require.False(t, view.Committed)
		require.Equal(t, StepNoticePreview, view.Step)
		f.issueErr = nil
	})

	view, err = h.Commit(owner, id, enforcementhandler.Actor{Name: "Olivia"})
	require.NoError(t, err)
	require.True(t, view.Committed)
	require.Equal(t, "case-new", view.CaseID)
	require.Len(t, f.issued, 1)

	_, err = h.Commit(owner, id, enforcementhandler.Actor{Name: "Olivia"})
	require.ErrorIs(t, err, models.ErrConflict)
	_, err = h.Update(owner, id, raw(`{}`))
	require.ErrorIs(t, err, models.ErrConflict)
	require.Len(t, f.issued, 1)
}

func TestDraftAccess(t *testing.T) {
	t.Run(`drafts are private to their owner`, func(t *testing.T) {
		h := newImpl(&fakeEnforcement{}, 10, time.Hour)
		view, err := h.Start(owner, KindCancellation, "p1")
		require.NoError(t, err)
		_, err = h.Get("u2", view.ID)
		require.ErrorIs(t, err, models.ErrNotFound)
		require.NoError(t, h.Discard(owner, view.ID))
		_, err = h.Get(owner, view.ID)
		require.ErrorIs(t, err, models.ErrNotFound)
	})

	t.Run(`drafts expire`, func(t *testing.T) {
		h := newImpl(&fakeEnforcement{}, 10, 50*time.Millisecond)
		view, err := h.Start(owner, KindCancellation, "p1")
		require.NoError(t, err)
		time.Sleep(150 * time.Millisecond)
		_, err = h.Get(owner, view.ID)
		require.ErrorIs(t, err, models.ErrNotFound)
	})

	t.Run(`bad json`, func(t *testing.T) {
		h := newImpl(&fakeEnforcement{}, 10, time.Hour)
		view, err := h.Start(owner, KindCancellation, "p1")
		require.NoError(t, err)
		_, err = h.Update(owner, view.ID, raw(`{"grounds":`))
		require.ErrorIs(t, err, models.ErrValidation)
	})

	t.Run(`rejected update leaves the draft unchanged`, func(t *testing.T) {
		h := newImpl(&fakeEnforcement{}, 10, time.Hour)
		view, err := h.Start(owner, KindSuspensionWarning, "p1")
		require.NoError(t, err)
		_, err = h.Update(owner, view.ID, raw(`{"risk_assessment":{"concern":"Unsafe garden","risk_categories":["Premises"]}}`))
		require.NoError(t, err)

		_, err = h.Update(owner, view.ID, raw(`{"risk_assessment":{"concern":"clobbered","risk_categories":5}}`))
		require.ErrorIs(t, err, models.ErrValidation)

		view, err = h.Get(owner, view.ID)
		require.NoError(t, err)
		in := view.Input.(*enforcementapimodels.SuspensionWarningInput)
		require.Equal(t, "Unsafe garden", in.RiskAssessment.Concern)
		require.Equal(t, []string{"Premises"}, in.RiskAssessment.RiskCategories)
	})

	t.Run(`view input is detached from the draft`, func(t *testing.T) {
		h := newImpl(&fakeEnforcement{}, 10, time.Hour)
		view, err := h.Start(owner, KindSuspensionWarning, "p1")
		require.NoError(t, err)
		first, err := h.Update(owner, view.ID, raw(`{"risk_assessment":{"concern":"Unsafe garden","risk_categories":["Premises"]}}`))
		require.NoError(t, err)
		_, err = h.Update(owner, view.ID, raw(`{"risk_assessment":{"concern":"Ratio breach","risk_categories":["Staffing"]}}`))
		require.NoError(t, err)

		in := first.Input.(*enforcementapimodels.SuspensionWarningInput)
		require.Equal(t, "Unsafe garden", in.RiskAssessment.Concern)
		require.Equal(t, []string{"Premises"}, in.RiskAssessment.RiskCategories)
	})

	t.Run(`concurrent reads and updates`, func(t *testing.T) {
		h := newImpl(&fakeEnforcement{}, 10, time.Hour)
		view, err := h.Start(owner, KindSuspensionWarning, "p1")
		require.NoError(t, err)
		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			for n := 0; n < 200; n++ {
				_, _ = h.Update(owner, view.ID, raw(`{"risk_assessment":{"concern":"Unsafe garden","risk_categories":["Premises","Staffing"]}}`))
			}
		}()
		go func() {
			defer wg.Done()
			for n := 0; n < 200; n++ {
				if v, err := h.Get(owner, view.ID); err == nil {
					_, _ = json.Marshal(v)
				}
			}
		}()
		wg.Wait()
	})

	t.Run(`unknown kind`, func(t *testing.T) {
		h := newImpl(&fakeEnforcement{}, 10, time.Hour)
		_, err := h.Start(owner, Kind("appeal"), "p1")
		require.ErrorIs(t, err, models.ErrValidation)
	})
}

func TestReviewDraft(t *testing.T) {
	f := &fakeEnforcement{cases: map[string]enforcementapimodels.CaseView{
		"s1": {ID: "s1", Type: models.CaseTypeSuspension, Status: models.CaseStatusInEffect, Version: 3},
		"s2": {ID: "s2", Type: models.CaseTypeSuspension, Status: models.CaseStatusLifted, Version: 5},
	}}
	h := newImpl(f, 10, time.Hour)

	_, err := h.Start(owner, KindReview, "s2")
	require.ErrorIs(t, err, models.ErrConflict)
	_, err = h.Start(owner, KindReview, "missing")
	require.ErrorIs(t, err, models.ErrNotFound)

	view, err := h.Start(owner, KindReview, "s1")
	require.NoError(t, err)
	require.Equal(t, StepOutcome, view.Step)
	id := view.ID

	_, err = h.Update(owner, id, raw(`{"case_id":"s2","expected_version":1,"outcome":"lift","details":{"supervisor_id":"sup"}}`))
	require.NoError(t, err)
	for i := 0; i < 2; i++ {
		_, err = h.Next(owner, id)
		require.NoError(t, err)
	}
	view, err = h.Commit(owner, id, enforcementhandler.Actor{Name: "Olivia"})
	require.NoError(t, err)
	require.True(t, view.Committed)
	require.Len(t, f.reviewed, 1)
	require.Equal(t, "s1", f.reviewed[0].CaseID)
	require.Equal(t, 3, f.reviewed[0].ExpectedVersion)
	require.Equal(t, models.ReviewLift, f.reviewed[0].Outcome)

	_, err = h.Back(owner, id)
	require.ErrorIs(t, err, models.ErrConflict)
}

package enforcementhandler

import (
	"childminder-backend/lib/deadline"
	"childminder-backend/lib/enforcement/notice"
	"childminder-backend/models"
	enforcementapimodels "childminder-backend/models/api/enforcement"
	"github.com/pkg/errors"
)

func (i impl) PreviewReview(in enforcementapimodels.ReviewInput) (enforcementapimodels.NoticePreview, error) {
	p, err := i.planReview(in)
	if err != nil {
		return enforcementapimodels.NoticePreview{}, err
	}
	return p.preview()
}

func (i impl) ReviewSuspension(in enforcementapimodels.ReviewInput, actor Actor) (enforcementapimodels.CaseView, error) {
	p, err := i.planReview(in)
	if err != nil {
		return enforcementapimodels.CaseView{}, err
	}
	return i.apply(p, actor)
}

func (i impl) PreviewDecision(in enforcementapimodels.DecisionInput) (enforcementapimodels.NoticePreview, error) {
	p, err := i.planDecision(in)
	if err != nil {
		return enforcementapimodels.NoticePreview{}, err
	}
	return p.preview()
}

func (i impl) RecordDecision(in enforcementapimodels.DecisionInput, actor Actor) (enforcementapimodels.CaseView, error) {
	p, err := i.planDecision(in)
	if err != nil {
		return enforcementapimodels.CaseView{}, err
	}
	return i.apply(p, actor)
}

func (i impl) CloseWarning(caseID string, in enforcementapimodels.WarningCloseInput, actor Actor) (enforcementapimodels.CaseView, error) {
	if err := in.Validate(); err != nil {
		return enforcementapimodels.CaseView{}, err
	}
	rec, err := i.getCase(caseID)
	if err != nil {
		return enforcementapimodels.CaseView{}, err
	}
	if rec.Type != models.CaseTypeWarning {
		return enforcementapimodels.CaseView{}, errors.Wrap(models.ErrValidation, "only a warning can be closed on compliance")
	}
	if err = i.checkTransition(rec, models.CaseStatusClosed, 0); err != nil {
		return enforcementapimodels.CaseView{}, err
	}
	today := i.Today()
	p := &plan{current: rec, kind: models.WorkflowWarningClose, stage: in}
	i.change(p, models.CaseStatusClosed, nil, today)
	p.events = []timelineEvent{
		{Event: "Warning closed: compliance confirmed", Date: today, Type: models.TimelineCompleted},
	}
	if _, err = i.commit(p, actor); err != nil {
		return enforcementapimodels.CaseView{}, err
	}
	return i.GetCase(rec.ID)
}

// RecordRepresentations marks a notice of intention as answered before its deadline.
func (i impl) RecordRepresentations(caseID string, in enforcementapimodels.RepresentationsInput, actor Actor) (enforcementapimodels.CaseView, error) {
	if err := in.Validate(); err != nil {
		return enforcementapimodels.CaseView{}, err
	}
	rec, err := i.getCase(caseID)
	if err != nil {
		return enforcementapimodels.CaseView{}, err
	}
	if rec.Type != models.CaseTypeCancellation {
		return enforcementapimodels.CaseView{}, errors.Wrap(models.ErrValidation, "representations answer a notice of intention to cancel only")
	}
	if err = i.checkTransition(rec, models.CaseStatusRepresentationsReceived, 0); err != nil {
		return enforcementapimodels.CaseView{}, err
	}
	today := i.Today()
	p := &plan{current: rec, kind: models.WorkflowRepresentations, stage: in}
	i.change(p, models.CaseStatusRepresentationsReceived, nil, today)
	p.events = []timelineEvent{
		{Event: "Representations received", Date: today, Type: models.TimelineCompleted},
	}
	if _, err = i.commit(p, actor); err != nil {
		return enforcementapimodels.CaseView{}, err
	}
	return i.GetCase(rec.ID)
}

func (i impl) apply(p *plan, actor Actor) (enforcementapimodels.CaseView, error) {
	if _, err := p.preview(); err != nil {
		return enforcementapimodels.CaseView{}, err
	}
	caseID, err := i.commit(p, actor)
	if err != nil {
		return enforcementapimodels.CaseView{}, err
	}
	return i.GetCase(caseID)
}

func (i impl) planReview(in enforcementapimodels.ReviewInput) (*plan, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	rec, err := i.getCase(in.CaseID)
	if err != nil {
		return nil, err
	}
	if rec.Type != models.CaseTypeSuspension {
		return nil, errors.Wrap(models.ErrValidation, "only a suspension can be reviewed")
	}
	to := models.CaseStatusInEffect
	if in.Outcome == models.ReviewLift {
		to = models.CaseStatusLifted
	}
	if err = i.checkTransition(rec, to, in.ExpectedVersion); err != nil {
		return nil, err
	}
	supervisor, err := i.resolveSupervisor(in.Details.SupervisorID, true)
	if err != nil {
		return nil, err
	}
	today := i.Today()
	p := &plan{current: rec, employee: rec.Employee, dates: newKeyDates(), kind: models.WorkflowReview, stage: in.Stage()}
	i.change(p, to, supervisor, today)
	p.data = i.noticeData(rec.Employee, rec.ReferenceNumber, today, supervisor)

	if in.Outcome == models.ReviewExtend {
		review := deadline.AddDays(today, in.Details.ExtensionWeeks*7)
		p.upd["deadline"] = review
		p.upd["deadline_alerted_for"] = nil
		p.dates.add("review", "Next review deadline", review)
		p.noticeName = notice.ReviewExtend
		p.data.InvestigationStatus = in.Details.InvestigationStatus
		p.events = []timelineEvent{
			{Event: "Suspension Extended", Date: today, Type: models.TimelineCompleted},
		}
		return p, nil
	}
	p.dates.add("lifted", "Suspension lifted", today)
	p.noticeName = notice.ReviewLift
	p.data.LiftConditions = in.Details.LiftConditions
	p.events = []timelineEvent{
		{Event: "Suspension Lifted", Date: today, Type: models.TimelineCompleted},
	}
	return p, nil
}

func (i impl) planDecision(in enforcementapimodels.DecisionInput) (*plan, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	rec, err := i.getCase(in.CaseID)
	if err != nil {
		return nil, err
	}
	if rec.Type != models.CaseTypeCancellation {
		return nil, errors.Wrap(models.ErrValidation, "a decision is recorded on a notice of intention to cancel only")
	}
	decision := in.EffectiveDecision()
	to := decision.FinalStatus()
	if err = i.checkTransition(rec, to, in.ExpectedVersion); err != nil {
		return nil, err
	}
	supervisor, err := i.resolveSupervisor(in.Approval.SupervisorID, true)
	if err != nil {
		return nil, err
	}
	today := i.Today()
	p := &plan{current: rec, employee: rec.Employee, dates: newKeyDates(), kind: models.WorkflowDecision, stage: in.Stage()}
	i.change(p, to, supervisor, today)
	p.data = i.noticeData(rec.Employee, rec.ReferenceNumber, today, supervisor)
	if in.Representations.Received {
		p.data.Representations = in.Representations.Summary
	}

	if decision == models.DecisionWithdraw {
		p.noticeName = notice.DecisionWithdraw
		p.events = []timelineEvent{
			{Event: "Representations upheld: notice of intention withdrawn", Date: today, Type: models.TimelineCompleted},
		}
		return p, nil
	}
	effect := deadline.AddDays(today, i.settings.DecisionEffectDays)
	p.dates.add("effect", "Cancellation takes effect", effect)
	p.noticeName = notice.DecisionCancel
	p.events = []timelineEvent{
		{Event: "Decision to cancel registration issued", Date: today, Type: models.TimelineCompleted},
	}
	return p, nil
}

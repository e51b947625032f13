package enforcementhandler

import (
	"fmt"

	"childminder-backend/lib/deadline"
	"childminder-backend/lib/enforcement/notice"
	"childminder-backend/models"
	enforcementapimodels "childminder-backend/models/api/enforcement"
	dbmodels "childminder-backend/models/db"
)

func (i impl) PreviewSuspensionOrWarning(in enforcementapimodels.SuspensionWarningInput) (enforcementapimodels.NoticePreview, error) {
	p, err := i.planSuspensionOrWarning(in)
	if err != nil {
		return enforcementapimodels.NoticePreview{}, err
	}
	return p.preview()
}

func (i impl) IssueSuspensionOrWarning(in enforcementapimodels.SuspensionWarningInput, actor Actor) (enforcementapimodels.CaseView, error) {
	p, err := i.planSuspensionOrWarning(in)
	if err != nil {
		return enforcementapimodels.CaseView{}, err
	}
	return i.issue(p, actor)
}

func (i impl) PreviewCancellation(in enforcementapimodels.CancellationInput) (enforcementapimodels.NoticePreview, error) {
	p, err := i.planCancellation(in)
	if err != nil {
		return enforcementapimodels.NoticePreview{}, err
	}
	return p.preview()
}

func (i impl) IssueCancellationNotice(in enforcementapimodels.CancellationInput, actor Actor) (enforcementapimodels.CaseView, error) {
	p, err := i.planCancellation(in)
	if err != nil {
		return enforcementapimodels.CaseView{}, err
	}
	return i.issue(p, actor)
}

func (i impl) issue(p *plan, actor Actor) (enforcementapimodels.CaseView, error) {
	preview, err := p.preview()
	if err != nil {
		return enforcementapimodels.CaseView{}, err
	}
	caseID, err := i.commit(p, actor)
	if err != nil {
		return enforcementapimodels.CaseView{}, err
	}
	i.sendProviderCopy(p, preview)
	return i.GetCase(caseID)
}

func (i impl) planSuspensionOrWarning(in enforcementapimodels.SuspensionWarningInput) (*plan, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	path := in.RiskAssessment.Path()
	employee, err := i.getEmployee(in.EmployeeID)
	if err != nil {
		return nil, err
	}
	supervisor, err := i.resolveSupervisor(in.SupervisorID(), path == models.ActionPathWarning)
	if err != nil {
		return nil, err
	}
	today := i.Today()
	caseType := path.CaseType()
	p := &plan{employee: employee, dates: newKeyDates()}
	p.kind, p.stage = in.Stage()

	p.rec = dbmodels.EnforcementCase{
		EmployeeID:      employee.ID,
		Type:            caseType,
		Status:          caseType.InitialStatus(),
		RiskLevel:       caseType.RiskLevel(),
		ReferenceNumber: deadline.GenerateReferenceNumber(string(caseType), employee.ID, i.now()),
		Concern:         in.RiskAssessment.Concern,
		RiskDetail:      in.RiskAssessment.RiskDetail,
		DateCreated:     today,
	}
	switch stage := p.stage.(type) {
	case enforcementapimodels.SuspensionStage:
		p.rec.RiskCategories = stage.RiskAssessment.RiskCategories
	case enforcementapimodels.WarningStage:
		p.rec.RiskCategories = stage.RiskAssessment.RiskCategories
	}
	setSupervisor(&p.rec, supervisor)

	p.data = i.noticeData(employee, p.rec.ReferenceNumber, today, supervisor)
	p.data.Concern = in.RiskAssessment.Concern
	p.data.RiskDetail = in.RiskAssessment.RiskDetail
	p.data.RiskCategories = p.rec.RiskCategories
	p.events = []timelineEvent{
		{Event: "Risk assessment completed", Date: today, Type: models.TimelineCompleted},
	}

	if caseType == models.CaseTypeSuspension {
		review := deadline.AddDays(today, i.settings.SuspensionReviewDays)
		p.rec.Deadline = &review
		p.dates.add("review", "Suspension review deadline", review)
		p.noticeName = notice.Suspension
		p.events = append(p.events,
			timelineEvent{Event: "Suspension notice issued with immediate effect", Date: today, Type: models.TimelineCompleted},
			timelineEvent{Event: "Suspension review due", Date: review, Type: models.TimelinePending},
		)
		return p, nil
	}

	compliance := deadline.AddDays(today, in.Warning.ComplianceDays)
	response := deadline.AddWorkingDays(today, i.settings.WarningResponseDays)
	p.rec.Deadline = &compliance
	p.dates.add("compliance", "Compliance deadline", compliance)
	p.dates.add("response", "Representations deadline", response)
	p.noticeName = notice.Warning
	p.data.NoticeType = in.Warning.NoticeType.ToHuman()
	p.data.BreachDetails = in.Warning.BreachDetails
	p.data.RequiredActions = in.Warning.RequiredActions
	p.data.MonitoringMethod = in.Warning.MonitoringMethod
	p.events = append(p.events,
		timelineEvent{Event: fmt.Sprintf("%s issued", in.Warning.NoticeType.ToHuman()), Date: today, Type: models.TimelineCompleted},
		timelineEvent{Event: "Compliance deadline", Date: compliance, Type: models.TimelinePending},
	)
	return p, nil
}

func (i impl) planCancellation(in enforcementapimodels.CancellationInput) (*plan, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	employee, err := i.getEmployee(in.EmployeeID)
	if err != nil {
		return nil, err
	}
	supervisor, err := i.resolveSupervisor(in.Timeline.SupervisorID, true)
	if err != nil {
		return nil, err
	}
	today := i.Today()
	caseType := models.CaseTypeCancellation
	repsDeadline := deadline.AddDays(today, in.Timeline.RepresentationDays)
	earliestDecision := deadline.AddDays(repsDeadline, 1)
	earliestEffect := deadline.AddDays(earliestDecision, i.settings.DecisionEffectDays)

	p := &plan{employee: employee, dates: newKeyDates(), kind: models.WorkflowCancellation, stage: in}
	p.dates.add("representations", "Representations deadline", repsDeadline)
	p.dates.add("decision", "Earliest decision date", earliestDecision)
	p.dates.add("effect", "Earliest date cancellation can take effect", earliestEffect)

	grounds := make([]string, 0, len(in.Grounds.Grounds))
	for _, g := range in.Grounds.Grounds {
		grounds = append(grounds, g.ToHuman())
	}
	p.rec = dbmodels.EnforcementCase{
		EmployeeID:      employee.ID,
		Type:            caseType,
		Status:          caseType.InitialStatus(),
		RiskLevel:       caseType.RiskLevel(),
		ReferenceNumber: deadline.GenerateReferenceNumber(string(caseType), employee.ID, i.now()),
		Concern:         in.Grounds.EvidenceSummary,
		RiskCategories:  grounds,
		Deadline:        &repsDeadline,
		DateCreated:     today,
	}
	if in.Grounds.HasMandatoryGround() {
		p.rec.RiskDetail = "Mandatory ground for cancellation"
	}
	setSupervisor(&p.rec, supervisor)

	p.noticeName = notice.Cancellation
	p.data = i.noticeData(employee, p.rec.ReferenceNumber, today, supervisor)
	p.data.Grounds = grounds
	p.data.EvidenceSummary = in.Grounds.EvidenceSummary
	p.events = []timelineEvent{
		{Event: "Notice of intention to cancel registration issued", Date: today, Type: models.TimelineCompleted},
		{Event: "Representations deadline", Date: repsDeadline, Type: models.TimelinePending},
	}
	return p, nil
}

package enforcementhandler

import (
	"time"

	"childminder-backend/db"
	adminpaneluserstore "childminder-backend/lib/admin-panel/store"
	"childminder-backend/lib/deadline"
	employeestore "childminder-backend/lib/employee/store"
	casestore "childminder-backend/lib/enforcement/case-store"
	notificationstore "childminder-backend/lib/enforcement/notification-store"
	stagestore "childminder-backend/lib/enforcement/stage-store"
	timelinestore "childminder-backend/lib/enforcement/timeline-store"
	"childminder-backend/lib/notifier"
	"childminder-backend/models"
	enforcementapimodels "childminder-backend/models/api/enforcement"
	dbmodels "childminder-backend/models/db"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	PreviewSuspensionOrWarning(in enforcementapimodels.SuspensionWarningInput) (enforcementapimodels.NoticePreview, error)
	IssueSuspensionOrWarning(in enforcementapimodels.SuspensionWarningInput, actor Actor) (enforcementapimodels.CaseView, error)
	PreviewCancellation(in enforcementapimodels.CancellationInput) (enforcementapimodels.NoticePreview, error)
	IssueCancellationNotice(in enforcementapimodels.CancellationInput, actor Actor) (enforcementapimodels.CaseView, error)
	PreviewReview(in enforcementapimodels.ReviewInput) (enforcementapimodels.NoticePreview, error)
	ReviewSuspension(in enforcementapimodels.ReviewInput, actor Actor) (enforcementapimodels.CaseView, error)
	PreviewDecision(in enforcementapimodels.DecisionInput) (enforcementapimodels.NoticePreview, error)
	RecordDecision(in enforcementapimodels.DecisionInput, actor Actor) (enforcementapimodels.CaseView, error)
	CloseWarning(caseID string, in enforcementapimodels.WarningCloseInput, actor Actor) (enforcementapimodels.CaseView, error)
	RecordRepresentations(caseID string, in enforcementapimodels.RepresentationsInput, actor Actor) (enforcementapimodels.CaseView, error)
	AddTimelineNote(caseID string, note enforcementapimodels.TimelineNote, actor Actor) (enforcementapimodels.TimelineView, error)

	GetCase(id string) (enforcementapimodels.CaseView, error)
	ListCases(filter enforcementapimodels.CaseFilter) ([]enforcementapimodels.CaseView, int64, error)
	Timeline(caseID string) ([]enforcementapimodels.TimelineView, error)
	Notifications(caseID string) ([]enforcementapimodels.NotificationView, error)
	Stages(caseID string) ([]enforcementapimodels.StageView, error)
	Today() time.Time
}

var Instance Provider

// Actor is the operator a change is recorded against.
type Actor struct {
	UserID string
	Name   string
}

func (a Actor) name() string {
	if a.Name == "" {
		return models.SystemUser
	}
	return a.Name
}

// Settings are the statutory periods, in days.
type Settings struct {
	SuspensionReviewDays int
	WarningResponseDays  int // working days
	DecisionEffectDays   int
	SendProviderCopy     bool
}

func DefaultSettings() Settings {
	return Settings{
		SuspensionReviewDays: 42,
		WarningResponseDays:  5,
		DecisionEffectDays:   28,
		SendProviderCopy:     true,
	}
}

func NewHandler(settings Settings, loc *time.Location) {
	Instance = impl{
		cases:         casestore.NewInstance(db.DB),
		timeline:      timelinestore.NewInstance(db.DB),
		stages:        stagestore.NewInstance(db.DB),
		notifications: notificationstore.NewInstance(db.DB),
		employees:     employeestore.NewInstance(db.DB),
		users:         adminpaneluserstore.NewInstance(db.DB),
		uow:           NewGormUnitOfWork(db.DB),
		notifier:      notifier.Instance,
		settings:      settings,
		now:           time.Now,
		loc:           loc,
	}
}

type impl struct {
	cases         casestore.Provider
	timeline      timelinestore.Provider
	stages        stagestore.Provider
	notifications notificationstore.Provider
	employees     employeestore.Provider
	users         adminpaneluserstore.Provider
	uow           UnitOfWork
	notifier      notifier.Provider
	settings      Settings
	now           func() time.Time
	loc           *time.Location
}

func (i impl) Today() time.Time {
	return deadline.Today(i.now(), i.loc)
}

func (i impl) GetCase(id string) (enforcementapimodels.CaseView, error) {
	rec, err := i.getCase(id)
	if err != nil {
		return enforcementapimodels.CaseView{}, err
	}
	return enforcementapimodels.CaseConvert(*rec), nil
}

func (i impl) ListCases(filter enforcementapimodels.CaseFilter) ([]enforcementapimodels.CaseView, int64, error) {
	logger := log.WithField("filter", filter)
	rowCount, err := i.cases.ListCount(filter)
	if err != nil {
		logger.WithError(err).Error("case count failed")
		return nil, 0, err
	}
	list, err := i.cases.List(filter)
	if err != nil {
		logger.WithError(err).Error("case list failed")
		return nil, 0, err
	}
	result := make([]enforcementapimodels.CaseView, 0, len(list))
	for _, rec := range list {
		result = append(result, enforcementapimodels.CaseConvert(rec))
	}
	return result, rowCount, nil
}

func (i impl) Timeline(caseID string) ([]enforcementapimodels.TimelineView, error) {
	if _, err := i.getCase(caseID); err != nil {
		return nil, err
	}
	list, err := i.timeline.List(caseID)
	if err != nil {
		log.WithField("case_id", caseID).WithError(err).Error("timeline list failed")
		return nil, err
	}
	result := make([]enforcementapimodels.TimelineView, 0, len(list))
	for _, rec := range list {
		result = append(result, enforcementapimodels.TimelineConvert(rec))
	}
	return result, nil
}

func (i impl) Notifications(caseID string) ([]enforcementapimodels.NotificationView, error) {
	if _, err := i.getCase(caseID); err != nil {
		return nil, err
	}
	list, err := i.notifications.List(caseID)
	if err != nil {
		log.WithField("case_id", caseID).WithError(err).Error("notification list failed")
		return nil, err
	}
	result := make([]enforcementapimodels.NotificationView, 0, len(list))
	for _, rec := range list {
		result = append(result, enforcementapimodels.NotificationConvert(rec))
	}
	return result, nil
}

func (i impl) Stages(caseID string) ([]enforcementapimodels.StageView, error) {
	if _, err := i.getCase(caseID); err != nil {
		return nil, err
	}
	list, err := i.stages.List(caseID)
	if err != nil {
		log.WithField("case_id", caseID).WithError(err).Error("stage list failed")
		return nil, err
	}
	result := make([]enforcementapimodels.StageView, 0, len(list))
	for _, rec := range list {
		result = append(result, enforcementapimodels.StageConvert(rec))
	}
	return result, nil
}

func (i impl) AddTimelineNote(caseID string, note enforcementapimodels.TimelineNote, actor Actor) (enforcementapimodels.TimelineView, error) {
	if err := note.Validate(); err != nil {
		return enforcementapimodels.TimelineView{}, err
	}
	if _, err := i.getCase(caseID); err != nil {
		return enforcementapimodels.TimelineView{}, err
	}
	rec := dbmodels.EnforcementTimeline{
		BaseCaseModel: dbmodels.BaseCaseModel{CaseID: caseID},
		Event:         note.Event,
		Date:          i.Today(),
		Type:          note.Type,
		CreatedBy:     actor.name(),
	}
	if note.Date != nil {
		rec.Date = deadline.Today(*note.Date, i.loc)
	}
	if rec.Type == "" {
		rec.Type = models.TimelineCompleted
	}
	id, err := i.timeline.Create(rec)
	if err != nil {
		log.WithField("case_id", caseID).WithError(err).Error("timeline note create failed")
		return enforcementapimodels.TimelineView{}, err
	}
	rec.ID = id
	return enforcementapimodels.TimelineConvert(rec), nil
}

func (i impl) getCase(id string) (*dbmodels.EnforcementCase, error) {
	rec, err := i.cases.GetByID(id)
	if err != nil {
		log.WithField("case_id", id).WithError(err).Error("case get failed")
		return nil, err
	}
	if rec == nil {
		return nil, models.NotFound("case")
	}
	return rec, nil
}

func (i impl) getEmployee(id string) (*dbmodels.Employee, error) {
	rec, err := i.employees.GetByID(id)
	if err != nil {
		log.WithField("employee_id", id).WithError(err).Error("provider get failed")
		return nil, err
	}
	if rec == nil {
		return nil, models.NewValidationError("employee_id", "provider not found")
	}
	return rec, nil
}

// resolveSupervisor returns nil for an omitted optional supervisor.
func (i impl) resolveSupervisor(id string, required bool) (*dbmodels.AdminUser, error) {
	if id == "" {
		if required {
			return nil, models.NewValidationError("supervisor_id", "a supervisor must approve this action")
		}
		return nil, nil
	}
	rec, err := i.users.GetByID(id)
	if err != nil {
		return nil, errors.Wrap(err, "supervisor get")
	}
	if rec == nil || !rec.IsActive {
		return nil, models.NewValidationError("supervisor_id", "supervisor not found")
	}
	if !rec.Role.CanApprove() {
		return nil, models.NewValidationError("supervisor_id", "selected user can not approve enforcement action")
	}
	return rec, nil
}

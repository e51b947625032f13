package enforcementhandler

import (
	"context"
	"time"

	"childminder-backend/lib/deadline"
	"childminder-backend/lib/enforcement/notice"
	"childminder-backend/lib/notifier"
	"childminder-backend/lib/utils/lock"
	"childminder-backend/models"
	enforcementapimodels "childminder-backend/models/api/enforcement"
	dbmodels "childminder-backend/models/db"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type timelineEvent struct {
	Event string
	Date  time.Time
	Type  models.TimelineEventType
}

type keyDates struct {
	list   []enforcementapimodels.KeyDate
	byName map[string]string
}

func newKeyDates() *keyDates {
	return &keyDates{byName: map[string]string{}}
}

func (k *keyDates) add(name, label string, d time.Time) {
	k.list = append(k.list, enforcementapimodels.NewKeyDate(label, d))
	k.byName[name] = deadline.FormatDate(d)
}

// plan is the computed outcome of one workflow: preview and commit both come from it.
// current is nil when the workflow opens a new case.
type plan struct {
	current  *dbmodels.EnforcementCase
	employee *dbmodels.Employee
	rec      dbmodels.EnforcementCase
	to       models.CaseStatus
	upd      map[string]interface{}
	events   []timelineEvent
	kind     models.WorkflowKind
	stage    interface{}

	noticeName string
	data       notice.Data
	dates      *keyDates
}

func (p *plan) preview() (enforcementapimodels.NoticePreview, error) {
	p.data.Dates = p.dates.byName
	text, err := notice.Render(p.noticeName, p.data)
	if err != nil {
		return enforcementapimodels.NoticePreview{}, err
	}
	keyDates := p.dates.list
	if keyDates == nil {
		keyDates = []enforcementapimodels.KeyDate{}
	}
	return enforcementapimodels.NoticePreview{
		Title:    notice.Title(p.noticeName),
		Text:     text,
		KeyDates: keyDates,
	}, nil
}

func (i impl) noticeData(employee *dbmodels.Employee, reference string, today time.Time, supervisor *dbmodels.AdminUser) notice.Data {
	data := notice.Data{
		Reference: reference,
		IssuedOn:  deadline.FormatDate(today),
	}
	if employee != nil {
		data.Provider = employee.GetFullName()
		data.Address = employee.GetAddress()
	}
	if supervisor != nil {
		data.Supervisor = supervisor.GetFullName()
	}
	return data
}

func setSupervisor(rec *dbmodels.EnforcementCase, supervisor *dbmodels.AdminUser) {
	if supervisor == nil {
		return
	}
	id := supervisor.ID
	rec.SupervisorID = &id
	rec.SupervisorName = supervisor.GetFullName()
}

func (i impl) checkTransition(rec *dbmodels.EnforcementCase, to models.CaseStatus, expectedVersion int) error {
	if expectedVersion != 0 && expectedVersion != rec.Version {
		return errors.Wrap(models.ErrConflict, "case was changed after this workflow was started")
	}
	if !rec.Type.IsAllowChange(rec.Status, to) {
		return errors.Wrapf(models.ErrConflict, "%s case in status %q can not move to %q",
			rec.Type, rec.Status, to)
	}
	return nil
}

// change prepares the update of the current case, closing it when to is terminal.
func (i impl) change(p *plan, to models.CaseStatus, supervisor *dbmodels.AdminUser, today time.Time) {
	p.to = to
	p.upd = map[string]interface{}{
		"status": to,
	}
	if to.IsTerminal() && p.current.DateClosed == nil {
		p.upd["date_closed"] = today
	}
	if supervisor != nil {
		p.upd["supervisor_id"] = supervisor.ID
		p.upd["supervisor_name"] = supervisor.GetFullName()
	}
}

const commitLockWait = 5 * time.Second

// commit records one workflow at a time per provider.
func (i impl) commit(p *plan, actor Actor) (caseID string, err error) {
	employeeID := p.rec.EmployeeID
	if p.current != nil {
		employeeID = p.current.EmployeeID
	}
	ok, err := lock.WithDelay(context.Background(), "enforcement:"+employeeID, commitLockWait, func() error {
		caseID, err = i.write(p, actor)
		return err
	})
	if err != nil {
		return "", err
	}
	if !ok {
		return "", errors.Wrap(models.ErrConflict, "another action is being recorded for this provider")
	}
	return caseID, nil
}

// write stores the case, its stage snapshot and timeline events in one transaction.
func (i impl) write(p *plan, actor Actor) (caseID string, err error) {
	logger := log.
		WithField("workflow", p.kind).
		WithField("user", actor.name())
	err = i.uow.Do(func(s Stores) error {
		if p.current == nil {
			p.rec.CreatedBy = actor.name()
			caseID, err = s.Cases.Create(p.rec)
			if err != nil {
				return errors.Wrap(err, "case create")
			}
		} else {
			caseID = p.current.ID
			err = s.Cases.UpdateWithVersion(caseID, p.current.Version, p.upd)
			if err != nil {
				return err
			}
		}
		stage, err := enforcementapimodels.NewStage(caseID, actor.name(), p.kind, p.stage)
		if err != nil {
			return err
		}
		if _, err = s.Stages.Create(stage); err != nil {
			return errors.Wrap(err, "stage create")
		}
		for _, event := range p.events {
			_, err = s.Timeline.Create(dbmodels.EnforcementTimeline{
				BaseCaseModel: dbmodels.BaseCaseModel{CaseID: caseID},
				Event:         event.Event,
				Date:          event.Date,
				Type:          event.Type,
				CreatedBy:     actor.name(),
			})
			if err != nil {
				return errors.Wrap(err, "timeline create")
			}
		}
		return nil
	})
	if err != nil {
		logger.
			WithField("case_id", caseID).
			WithError(err).
			Error("workflow commit failed")
		return "", err
	}
	logger.
		WithField("case_id", caseID).
		Info("workflow committed")
	return caseID, nil
}

// sendProviderCopy mails the issued notice to the provider, failures are only logged.
func (i impl) sendProviderCopy(p *plan, preview enforcementapimodels.NoticePreview) {
	if !i.settings.SendProviderCopy || i.notifier == nil || p.employee == nil || p.employee.Email == "" {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	err := i.notifier.Invoke(ctx, models.FnSendEmployeeEmail, notifier.EmployeeEmail{
		EmployeeID: p.employee.ID,
		To:         p.employee.Email,
		Name:       p.employee.GetFullName(),
		Subject:    preview.Title,
		Body:       preview.Text,
	})
	if err != nil {
		log.
			WithField("employee_id", p.employee.ID).
			WithError(err).
			Warn("provider copy of the notice not sent")
	}
}

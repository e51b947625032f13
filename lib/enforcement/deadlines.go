package enforcementhandler

import (
	"context"

	"childminder-backend/lib/deadline"
	"childminder-backend/lib/utils/helpers"
	"childminder-backend/models"
	enforcementapimodels "childminder-backend/models/api/enforcement"
	dbmodels "childminder-backend/models/db"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// DeadlineJob is the periodic part of the handler, run by the deadline worker.
type DeadlineJob interface {
	// ExpireRepresentations moves cancellation cases whose representations period
	// has passed to decision_pending.
	ExpireRepresentations(ctx context.Context) (int, error)
	// AlertReviewsDue adds one urgent event per review deadline falling within alertDays.
	AlertReviewsDue(ctx context.Context, alertDays int) ([]enforcementapimodels.CaseView, error)
}

const (
	eventRepresentationsClosed = "Representations period ended: decision required"
	eventReviewDue             = "Suspension review due"
)

func (i impl) ExpireRepresentations(ctx context.Context) (int, error) {
	today := i.Today()
	list, err := i.cases.ListRepresentationsExpired(today)
	if err != nil {
		return 0, errors.Wrap(err, "expired representations list")
	}
	moved := 0
	for _, rec := range list {
		if helpers.IsContextDone(ctx) {
			break
		}
		logger := log.WithField("case_id", rec.ID).WithField("reference", rec.ReferenceNumber)
		if !rec.Type.IsAllowChange(rec.Status, models.CaseStatusDecisionPending) {
			continue
		}
		err = i.systemChange(rec, map[string]interface{}{"status": models.CaseStatusDecisionPending},
			timelineEvent{Event: eventRepresentationsClosed, Date: today, Type: models.TimelinePending})
		if err != nil {
			logger.WithError(err).Warn("representations expiry not applied")
			continue
		}
		logger.Info("representations period ended, case awaits decision")
		moved++
	}
	return moved, nil
}

func (i impl) AlertReviewsDue(ctx context.Context, alertDays int) ([]enforcementapimodels.CaseView, error) {
	today := i.Today()
	list, err := i.cases.ListReviewsDue(deadline.AddDays(today, alertDays))
	if err != nil {
		return nil, errors.Wrap(err, "reviews due list")
	}
	alerted := []enforcementapimodels.CaseView{}
	for _, rec := range list {
		if helpers.IsContextDone(ctx) {
			break
		}
		if rec.Deadline == nil {
			continue
		}
		logger := log.WithField("case_id", rec.ID).WithField("reference", rec.ReferenceNumber)
		err = i.systemChange(rec, map[string]interface{}{"deadline_alerted_for": *rec.Deadline},
			timelineEvent{
				Event: eventReviewDue + " by " + deadline.FormatDate(*rec.Deadline),
				Date:  today,
				Type:  models.TimelineUrgent,
			})
		if err != nil {
			logger.WithError(err).Warn("review alert not recorded")
			continue
		}
		rec.DeadlineAlertedFor = rec.Deadline
		rec.Version++
		alerted = append(alerted, enforcementapimodels.CaseConvert(rec))
	}
	return alerted, nil
}

// systemChange applies a worker update and its event atomically, against the version read.
func (i impl) systemChange(rec dbmodels.EnforcementCase, upd map[string]interface{}, event timelineEvent) error {
	return i.uow.Do(func(s Stores) error {
		if err := s.Cases.UpdateWithVersion(rec.ID, rec.Version, upd); err != nil {
			return err
		}
		_, err := s.Timeline.Create(dbmodels.EnforcementTimeline{
			BaseCaseModel: dbmodels.BaseCaseModel{CaseID: rec.ID},
			Event:         event.Event,
			Date:          event.Date,
			Type:          event.Type,
			CreatedBy:     models.SystemUser,
		})
		return err
	})
}

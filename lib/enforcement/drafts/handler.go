package draftshandler

import (
	"encoding/json"
	"time"

	enforcementhandler "childminder-backend/lib/enforcement"
	"childminder-backend/lib/enforcement/wizard"
	initchecker "childminder-backend/lib/utils/init-checker"
	"childminder-backend/models"
	enforcementapimodels "childminder-backend/models/api/enforcement"
	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	Start(ownerID string, kind Kind, targetID string) (DraftView, error)
	Get(ownerID, id string) (DraftView, error)
	Update(ownerID, id string, data json.RawMessage) (DraftView, error)
	Next(ownerID, id string) (DraftView, error)
	Back(ownerID, id string) (DraftView, error)
	Preview(ownerID, id string) (enforcementapimodels.NoticePreview, error)
	Commit(ownerID, id string, actor enforcementhandler.Actor) (DraftView, error)
	Discard(ownerID, id string) error
}

var Instance Provider

func NewHandler(size int, ttl time.Duration) {
	initchecker.CheckInit(
		"enforcement", enforcementhandler.Instance,
	)
	Instance = newImpl(enforcementhandler.Instance, size, ttl)
}

func newImpl(enforcement enforcementhandler.Provider, size int, ttl time.Duration) *impl {
	return &impl{
		enforcement: enforcement,
		drafts:      expirable.NewLRU[string, *Draft](size, nil, ttl),
		now:         time.Now,
	}
}

type impl struct {
	enforcement enforcementhandler.Provider
	drafts      *expirable.LRU[string, *Draft]
	now         func() time.Time
}

func (i *impl) Start(ownerID string, kind Kind, targetID string) (DraftView, error) {
	if err := kind.Validate(); err != nil {
		return DraftView{}, err
	}
	if targetID == "" {
		if kind.OnCase() {
			return DraftView{}, models.NewValidationError("case_id", "select a case")
		}
		return DraftView{}, models.NewValidationError("employee_id", "select a provider")
	}
	d := &Draft{
		ID:        uuid.NewString(),
		Kind:      kind,
		OwnerID:   ownerID,
		UpdatedAt: i.now(),
	}
	switch kind {
	case KindSuspensionWarning:
		in := enforcementapimodels.NewSuspensionWarningInput(targetID)
		d.SuspensionWarning = &in
	case KindCancellation:
		in := enforcementapimodels.NewCancellationInput(targetID)
		d.Cancellation = &in
	case KindReview, KindDecision:
		rec, err := i.enforcement.GetCase(targetID)
		if err != nil {
			return DraftView{}, err
		}
		if kind == KindReview {
			if rec.Type != models.CaseTypeSuspension || rec.Status != models.CaseStatusInEffect {
				return DraftView{}, errors.Wrap(models.ErrConflict, "only a suspension in effect can be reviewed")
			}
			in := enforcementapimodels.NewReviewInput(rec.ID)
			in.ExpectedVersion = rec.Version
			d.Review = &in
		} else {
			if rec.Type != models.CaseTypeCancellation || rec.Status.IsTerminal() {
				return DraftView{}, errors.Wrap(models.ErrConflict, "a decision needs an open notice of intention to cancel")
			}
			d.Decision = &enforcementapimodels.DecisionInput{CaseID: rec.ID, ExpectedVersion: rec.Version}
		}
	}
	i.drafts.Add(d.ID, d)
	log.
		WithField("draft_id", d.ID).
		WithField("kind", kind).
		WithField("user_id", ownerID).
		Info("workflow draft started")
	return d.view(), nil
}

func (i *impl) Get(ownerID, id string) (DraftView, error) {
	d, err := i.get(ownerID, id)
	if err != nil {
		return DraftView{}, err
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.view(), nil
}

// Update merges data into the draft input: fields absent from data keep their value.
func (i *impl) Update(ownerID, id string, data json.RawMessage) (DraftView, error) {
	d, err := i.get(ownerID, id)
	if err != nil {
		return DraftView{}, err
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.Committed {
		return DraftView{}, wizardError(wizard.ErrCommitted)
	}
	targetID, version := d.target()
	if err = d.merge(data); err != nil {
		return DraftView{}, err
	}
	d.pin(targetID, version)
	d.UpdatedAt = i.now()
	i.drafts.Add(d.ID, d)
	return d.view(), nil
}

func (i *impl) Next(ownerID, id string) (DraftView, error) {
	return i.move(ownerID, id, (*wizard.Machine).Next)
}

func (i *impl) Back(ownerID, id string) (DraftView, error) {
	return i.move(ownerID, id, (*wizard.Machine).Back)
}

func (i *impl) move(ownerID, id string, step func(*wizard.Machine) error) (DraftView, error) {
	d, err := i.get(ownerID, id)
	if err != nil {
		return DraftView{}, err
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	m := d.machine()
	if err = step(m); err != nil {
		return DraftView{}, wizardError(err)
	}
	d.Position = m.Position()
	d.UpdatedAt = i.now()
	i.drafts.Add(d.ID, d)
	return d.view(), nil
}

func (i *impl) Preview(ownerID, id string) (enforcementapimodels.NoticePreview, error) {
	d, err := i.get(ownerID, id)
	if err != nil {
		return enforcementapimodels.NoticePreview{}, err
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if err = d.machine().Ready(); err != nil {
		return enforcementapimodels.NoticePreview{}, wizardError(err)
	}
	switch d.Kind {
	case KindSuspensionWarning:
		return i.enforcement.PreviewSuspensionOrWarning(*d.SuspensionWarning)
	case KindCancellation:
		return i.enforcement.PreviewCancellation(*d.Cancellation)
	case KindReview:
		return i.enforcement.PreviewReview(*d.Review)
	case KindDecision:
		return i.enforcement.PreviewDecision(*d.Decision)
	}
	return enforcementapimodels.NoticePreview{}, errors.Errorf("unknown workflow: %s", d.Kind)
}

// Commit runs the workflow commit from the preview step. A failed commit leaves the
// draft on that step so it can be tried again.
func (i *impl) Commit(ownerID, id string, actor enforcementhandler.Actor) (DraftView, error) {
	d, err := i.get(ownerID, id)
	if err != nil {
		return DraftView{}, err
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	logger := log.
		WithField("draft_id", d.ID).
		WithField("kind", d.Kind)
	m := d.machine()
	err = m.Commit(func() error {
		var view enforcementapimodels.CaseView
		var err error
		switch d.Kind {
		case KindSuspensionWarning:
			view, err = i.enforcement.IssueSuspensionOrWarning(*d.SuspensionWarning, actor)
		case KindCancellation:
			view, err = i.enforcement.IssueCancellationNotice(*d.Cancellation, actor)
		case KindReview:
			view, err = i.enforcement.ReviewSuspension(*d.Review, actor)
		case KindDecision:
			view, err = i.enforcement.RecordDecision(*d.Decision, actor)
		default:
			err = errors.Errorf("unknown workflow: %s", d.Kind)
		}
		if err != nil {
			return err
		}
		d.CaseID = view.ID
		return nil
	})
	d.Position = m.Position()
	d.Committed = m.Committed()
	d.UpdatedAt = i.now()
	i.drafts.Add(d.ID, d)
	if err != nil {
		logger.WithError(err).Warn("workflow draft commit failed")
		return DraftView{}, wizardError(err)
	}
	logger.
		WithField("case_id", d.CaseID).
		Info("workflow draft committed")
	return d.view(), nil
}

func (i *impl) Discard(ownerID, id string) error {
	if _, err := i.get(ownerID, id); err != nil {
		return err
	}
	i.drafts.Remove(id)
	return nil
}

func (i *impl) get(ownerID, id string) (*Draft, error) {
	d, ok := i.drafts.Get(id)
	if !ok || d.OwnerID != ownerID {
		return nil, models.NotFound("draft")
	}
	return d, nil
}

func (d *Draft) machine() *wizard.Machine {
	return wizard.Restore(d.steps(), d.Position, d.Committed)
}

func (d *Draft) view() DraftView {
	m := d.machine()
	v := DraftView{
		ID:        d.ID,
		Kind:      d.Kind,
		Step:      m.Current().Name,
		Steps:     m.StepNames(),
		Position:  m.Position(),
		Committed: d.Committed,
		CaseID:    d.CaseID,
		UpdatedAt: d.UpdatedAt,
	}
	// the view is encoded after the lock is released
	if in, err := d.copyInput(); err == nil {
		v.Input = in
	} else {
		log.WithError(err).WithField("draft_id", d.ID).Warn("draft input not copied")
	}
	err := m.CanContinue()
	v.CanContinue = err == nil
	var verr *models.ValidationError
	if errors.As(err, &verr) {
		v.Errors = verr.Errors
	}
	return v
}

func wizardError(err error) error {
	switch {
	case errors.Is(err, wizard.ErrCommitted):
		return errors.Wrap(models.ErrConflict, err.Error())
	case errors.Is(err, wizard.ErrFirstStep), errors.Is(err, wizard.ErrLastStep), errors.Is(err, wizard.ErrNotLast):
		return errors.Wrap(models.ErrValidation, err.Error())
	}
	return err
}

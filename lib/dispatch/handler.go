package dispatchhandler

import (
	"context"
	"fmt"
	"strings"
	"time"

	"childminder-backend/db"
	"childminder-backend/lib/deadline"
	employeestore "childminder-backend/lib/employee/store"
	enforcementhandler "childminder-backend/lib/enforcement"
	notificationstore "childminder-backend/lib/enforcement/notification-store"
	"childminder-backend/lib/notifier"
	initchecker "childminder-backend/lib/utils/init-checker"
	connectionhub "childminder-backend/lib/ws/hub/connection-hub"
	"childminder-backend/models"
	dispatchapimodels "childminder-backend/models/api/dispatch"
	enforcementapimodels "childminder-backend/models/api/enforcement"
	dbmodels "childminder-backend/models/db"
	wsmodels "childminder-backend/models/ws"
	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	Open(ownerID, caseID string) (dispatchapimodels.SessionView, error)
	Get(ownerID, id string) (dispatchapimodels.SessionView, error)
	UpdateEmail(ownerID, id, recipientID string, data dispatchapimodels.EmailUpdate) (dispatchapimodels.SessionView, error)
	AddCustom(ownerID, id string, data dispatchapimodels.CustomRecipient) (dispatchapimodels.SessionView, error)
	Send(ctx context.Context, ownerID, id, recipientID string, actor enforcementhandler.Actor) (dispatchapimodels.SessionView, error)
	SendAll(ctx context.Context, ownerID, id string, actor enforcementhandler.Actor) (dispatchapimodels.SessionView, error)
	Close(ownerID, id string, data dispatchapimodels.CloseRequest, actor enforcementhandler.Actor) (dispatchapimodels.CloseResult, error)
}

var Instance Provider

// Pusher delivers live progress to the operator's socket.
type Pusher interface {
	SendMessage(msg wsmodels.ServerMessage)
}

type Settings struct {
	SendDelay     time.Duration
	SessionTTL    time.Duration
	CacheSize     int
	DefaultEmails map[models.AgencyCode]string
}

const (
	eventAllNotified = "External agencies notified"
	eventDeferred    = "Agency notifications deferred"
)

func NewHandler(settings Settings) {
	initchecker.CheckInit(
		"enforcement", enforcementhandler.Instance,
		"notifier", notifier.Instance,
		"connection hub", connectionhub.Instance,
	)
	Instance = newImpl(
		enforcementhandler.Instance,
		employeestore.NewInstance(db.DB),
		notificationstore.NewInstance(db.DB),
		notifier.Instance,
		connectionhub.Instance,
		settings,
	)
}

func newImpl(enforcement enforcementhandler.Provider, employees employeestore.Provider,
	notifications notificationstore.Provider, sender notifier.Provider, pusher Pusher, settings Settings) *impl {
	if settings.CacheSize <= 0 {
		settings.CacheSize = 1000
	}
	return &impl{
		enforcement:   enforcement,
		employees:     employees,
		notifications: notifications,
		notifier:      sender,
		pusher:        pusher,
		settings:      settings,
		sessions:      expirable.NewLRU[string, *Session](settings.CacheSize, nil, settings.SessionTTL),
		now:           time.Now,
	}
}

type impl struct {
	enforcement   enforcementhandler.Provider
	employees     employeestore.Provider
	notifications notificationstore.Provider
	notifier      notifier.Provider
	pusher        Pusher
	settings      Settings
	sessions      *expirable.LRU[string, *Session]
	now           func() time.Time
}

func (i *impl) Open(ownerID, caseID string) (dispatchapimodels.SessionView, error) {
	logger := log.WithField("case_id", caseID)
	rec, err := i.enforcement.GetCase(caseID)
	if err != nil {
		return dispatchapimodels.SessionView{}, err
	}
	employee, err := i.employees.GetByID(rec.EmployeeID)
	if err != nil {
		logger.WithError(err).Error("provider lookup failed")
		return dispatchapimodels.SessionView{}, err
	}
	if employee == nil {
		return dispatchapimodels.SessionView{}, models.NotFound("provider")
	}
	// agencies already notified about this case stay sent
	alreadySent := map[models.AgencyCode]dbmodels.EnforcementNotification{}
	sent, err := i.notifications.List(caseID)
	if err != nil {
		logger.WithError(err).Error("notification list failed")
		return dispatchapimodels.SessionView{}, err
	}
	for _, n := range sent {
		if n.Status == models.NotificationSent && n.AgencyCode != models.AgencyCustom {
			alreadySent[n.AgencyCode] = n
		}
	}

	s := &Session{
		ID:      uuid.NewString(),
		OwnerID: ownerID,
		Case:    rec,
		Provider: providerInfo{
			Name:    employee.GetFullName(),
			Address: employee.GetAddress(),
		},
	}
	for _, code := range models.FixedAgencies {
		r := &Recipient{
			ID:         string(code),
			AgencyCode: code,
			Name:       code.ToHuman(),
			Detail:     code.Detail(),
			Email:      i.settings.DefaultEmails[code],
			Status:     models.RecipientPending,
		}
		if n, ok := alreadySent[code]; ok {
			r.Status = models.RecipientSent
			r.Email = n.RecipientEmail
			r.SentAt = n.SentAt
		}
		s.Recipients = append(s.Recipients, r)
	}
	i.sessions.Add(s.ID, s)
	return s.view(), nil
}

func (i *impl) Get(ownerID, id string) (dispatchapimodels.SessionView, error) {
	s, err := i.get(ownerID, id)
	if err != nil {
		return dispatchapimodels.SessionView{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view(), nil
}

func (i *impl) UpdateEmail(ownerID, id, recipientID string, data dispatchapimodels.EmailUpdate) (dispatchapimodels.SessionView, error) {
	if err := data.Validate(); err != nil {
		return dispatchapimodels.SessionView{}, err
	}
	s, err := i.get(ownerID, id)
	if err != nil {
		return dispatchapimodels.SessionView{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	r, err := s.recipient(recipientID)
	if err != nil {
		return dispatchapimodels.SessionView{}, err
	}
	if r.Status == models.RecipientSent {
		return dispatchapimodels.SessionView{}, dispatchapimodels.ErrAlreadySent
	}
	r.Email = strings.TrimSpace(data.Email)
	r.Status = models.RecipientPending
	r.Error = ""
	return s.view(), nil
}

func (i *impl) AddCustom(ownerID, id string, data dispatchapimodels.CustomRecipient) (dispatchapimodels.SessionView, error) {
	if err := data.Validate(); err != nil {
		return dispatchapimodels.SessionView{}, err
	}
	s, err := i.get(ownerID, id)
	if err != nil {
		return dispatchapimodels.SessionView{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Recipients = append(s.Recipients, &Recipient{
		ID:         uuid.NewString(),
		AgencyCode: models.AgencyCustom,
		Name:       strings.TrimSpace(data.Name),
		Detail:     strings.TrimSpace(data.Detail),
		Email:      strings.TrimSpace(data.Email),
		Custom:     true,
		Status:     models.RecipientPending,
	})
	return s.view(), nil
}

func (i *impl) Send(ctx context.Context, ownerID, id, recipientID string, actor enforcementhandler.Actor) (dispatchapimodels.SessionView, error) {
	s, err := i.get(ownerID, id)
	if err != nil {
		return dispatchapimodels.SessionView{}, err
	}
	s.sendMu.Lock()
	defer s.sendMu.Unlock()
	if err = i.send(ctx, s, recipientID, actor); err != nil {
		return dispatchapimodels.SessionView{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view(), nil
}

// SendAll works through every recipient not yet sent, one at a time.
// A failed recipient does not stop the run.
func (i *impl) SendAll(ctx context.Context, ownerID, id string, actor enforcementhandler.Actor) (dispatchapimodels.SessionView, error) {
	s, err := i.get(ownerID, id)
	if err != nil {
		return dispatchapimodels.SessionView{}, err
	}
	s.sendMu.Lock()
	defer s.sendMu.Unlock()

	s.mu.Lock()
	pending := make([]string, 0, len(s.Recipients))
	for _, r := range s.Recipients {
		if r.Status != models.RecipientSent {
			pending = append(pending, r.ID)
		}
	}
	s.mu.Unlock()

	for n, recipientID := range pending {
		if n > 0 && i.settings.SendDelay > 0 {
			select {
			case <-ctx.Done():
			case <-time.After(i.settings.SendDelay):
			}
		}
		if ctx.Err() != nil {
			break
		}
		if err = i.send(ctx, s, recipientID, actor); err != nil {
			log.WithField("session_id", s.ID).WithField("recipient_id", recipientID).WithError(err).Warn("recipient skipped")
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	v := s.view()
	i.push(s, wsmodels.CodeDispatchDone, fmt.Sprintf("%d of %d notifications sent", v.SentCount, len(v.Recipients)), v)
	if err = ctx.Err(); err != nil {
		return v, errors.Wrap(err, "bulk send interrupted")
	}
	return v, nil
}

func (i *impl) Close(ownerID, id string, data dispatchapimodels.CloseRequest, actor enforcementhandler.Actor) (dispatchapimodels.CloseResult, error) {
	s, err := i.get(ownerID, id)
	if err != nil {
		return dispatchapimodels.CloseResult{}, err
	}
	s.sendMu.Lock()
	defer s.sendMu.Unlock()
	s.mu.Lock()
	defer s.mu.Unlock()

	result := dispatchapimodels.CloseResult{AllSent: s.allSent()}
	note := enforcementapimodels.TimelineNote{
		Event: eventAllNotified,
		Type:  models.TimelineCompleted,
	}
	if !result.AllSent {
		result.Deferred = true
		reason := strings.TrimSpace(data.DeferralReason)
		if reason == "" {
			result.ReasonMissing = true
			reason = "no reason given"
		}
		note = enforcementapimodels.TimelineNote{
			Event: fmt.Sprintf("%s: %s", eventDeferred, reason),
			Type:  models.TimelinePending,
		}
	}
	if _, err = i.enforcement.AddTimelineNote(s.Case.ID, note, actor); err != nil {
		log.WithField("case_id", s.Case.ID).WithError(err).Error("dispatch close event failed")
		return dispatchapimodels.CloseResult{}, err
	}
	result.Event = note.Event
	s.Closed = true
	i.sessions.Remove(s.ID)
	return result, nil
}

// send delivers one recipient. Notifier failures are kept on the recipient,
// the returned error covers only requests that could not be attempted.
func (i *impl) send(ctx context.Context, s *Session, recipientID string, actor enforcementhandler.Actor) error {
	s.mu.Lock()
	if s.Closed {
		s.mu.Unlock()
		return errors.Wrap(models.ErrConflict, "dispatch session closed")
	}
	r, err := s.recipient(recipientID)
	if err != nil {
		s.mu.Unlock()
		return err
	}
	if r.Status == models.RecipientSent {
		s.mu.Unlock()
		return dispatchapimodels.ErrAlreadySent
	}
	if strings.TrimSpace(r.Email) == "" {
		// stays pending until an address is set
		r.Error = fmt.Sprintf("no email address for %s", r.Name)
		snapshot := *r
		s.mu.Unlock()
		i.push(s, wsmodels.CodeDispatchProgress, fmt.Sprintf("%s: %s", snapshot.Name, snapshot.Error), snapshot.view())
		return models.NewValidationError("email", snapshot.Error)
	}
	payload := i.payload(s, r)
	snapshot := *r
	s.mu.Unlock()

	i.push(s, wsmodels.CodeDispatchProgress, fmt.Sprintf("sending to %s", snapshot.Name), snapshot.view())
	sendErr := i.notifier.Invoke(ctx, models.FnSendEnforcementNotification, payload)

	s.mu.Lock()
	if sendErr != nil {
		r.Status = models.RecipientError
		r.Error = sendErr.Error()
	} else {
		sentAt := i.now()
		r.Status = models.RecipientSent
		r.Error = ""
		r.SentAt = &sentAt
	}
	snapshot = *r
	s.mu.Unlock()

	logger := log.
		WithField("case_id", s.Case.ID).
		WithField("agency", snapshot.AgencyCode).
		WithField("email", snapshot.Email)
	if sendErr != nil {
		logger.WithError(sendErr).Warn("enforcement notification failed")
		i.push(s, wsmodels.CodeDispatchProgress, fmt.Sprintf("%s: %s", snapshot.Name, snapshot.Error), snapshot.view())
		return nil
	}
	_, err = i.notifications.Create(dbmodels.EnforcementNotification{
		BaseCaseModel:  dbmodels.BaseCaseModel{CaseID: s.Case.ID},
		AgencyCode:     snapshot.AgencyCode,
		AgencyName:     snapshot.Name,
		Detail:         snapshot.Detail,
		RecipientEmail: snapshot.Email,
		Status:         models.NotificationSent,
		SentAt:         snapshot.SentAt,
		SentBy:         actorName(actor),
	})
	if err != nil {
		// the email has gone, the session keeps the sent state
		logger.WithError(err).Error("notification record failed")
	}
	i.push(s, wsmodels.CodeDispatchProgress, fmt.Sprintf("%s: sent", snapshot.Name), snapshot.view())
	return nil
}

// Caller holds s.mu.
func (i *impl) payload(s *Session, r *Recipient) notifier.EnforcementNotification {
	c := s.Case
	effective := c.DateCreated
	if c.DateClosed != nil {
		effective = *c.DateClosed
	}
	p := notifier.EnforcementNotification{
		CaseID:          c.ID,
		ReferenceNumber: c.ReferenceNumber,
		AgencyCode:      r.AgencyCode,
		AgencyName:      r.Name,
		RecipientEmail:  strings.TrimSpace(r.Email),
		ProviderID:      c.EmployeeID,
		ProviderName:    s.Provider.Name,
		ProviderAddress: s.Provider.Address,
		ActionType:      c.Type,
		Status:          c.Status,
		EffectiveDate:   deadline.FormatDate(effective),
		Concerns:        c.Concern,
	}
	if c.Deadline != nil {
		p.Deadline = deadline.FormatDate(*c.Deadline)
	}
	if len(c.RiskCategories) > 0 {
		p.Concerns = fmt.Sprintf("%s\nCategories: %s", c.Concern, strings.Join(c.RiskCategories, ", "))
	}
	return p
}

func (i *impl) push(s *Session, code, msg string, data interface{}) {
	if i.pusher == nil {
		return
	}
	i.pusher.SendMessage(wsmodels.ServerMessage{
		ToUserID: s.OwnerID,
		Time:     i.now().Format(time.RFC3339),
		Code:     code,
		Msg:      msg,
		Data:     data,
	})
}

func (i *impl) get(ownerID, id string) (*Session, error) {
	s, ok := i.sessions.Get(id)
	if !ok || s.OwnerID != ownerID {
		return nil, models.NotFound("dispatch session")
	}
	return s, nil
}

func actorName(a enforcementhandler.Actor) string {
	if a.Name == "" {
		return models.SystemUser
	}
	return a.Name
}

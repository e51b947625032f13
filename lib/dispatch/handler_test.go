package dispatchhandler

import (
	"context"
	"sync"
	"testing"
	"time"

	employeestore "childminder-backend/lib/employee/store"
	enforcementhandler "childminder-backend/lib/enforcement"
	notificationstore "childminder-backend/lib/enforcement/notification-store"
	"childminder-backend/lib/notifier"
	"childminder-backend/models"
	dispatchapimodels "childminder-backend/models/api/dispatch"
	enforcementapimodels "childminder-backend/models/api/enforcement"
	dbmodels "childminder-backend/models/db"
	wsmodels "childminder-backend/models/ws"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

type fakeEnforcement struct {
	enforcementhandler.Provider
	cases map[string]enforcementapimodels.CaseView
	notes []enforcementapimodels.TimelineNote
}

func (f *fakeEnforcement) GetCase(id string) (enforcementapimodels.CaseView, error) {
	view, ok := f.cases[id]
	if !ok {
		return enforcementapimodels.CaseView{}, models.NotFound("case")
	}
	return view, nil
}

func (f *fakeEnforcement) AddTimelineNote(caseID string, note enforcementapimodels.TimelineNote, actor enforcementhandler.Actor) (enforcementapimodels.TimelineView, error) {
	f.notes = append(f.notes, note)
	return enforcementapimodels.TimelineView{Event: note.Event, Type: note.Type}, nil
}

type fakeEmployees struct {
	employeestore.Provider
}

func (fakeEmployees) GetByID(id string) (*dbmodels.Employee, error) {
	if id != "p1" {
		return nil, nil
	}
	rec := dbmodels.Employee{FirstName: "Jane", LastName: "Smith", Town: "Leeds", Postcode: "LS1 1AA"}
	rec.ID = id
	return &rec, nil
}

type fakeNotifications struct {
	notificationstore.Provider
	mu   sync.Mutex
	rows []dbmodels.EnforcementNotification
}

func (f *fakeNotifications) Create(rec dbmodels.EnforcementNotification) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rows = append(f.rows, rec)
	return "n1", nil
}

func (f *fakeNotifications) List(caseID string) ([]dbmodels.EnforcementNotification, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]dbmodels.EnforcementNotification(nil), f.rows...), nil
}

type fakeNotifier struct {
	mu     sync.Mutex
	failTo map[string]bool
	sent   []string
}

func (f *fakeNotifier) Invoke(ctx context.Context, name string, payload interface{}) error {
	p, ok := payload.(notifier.EnforcementNotification)
	if !ok || name != models.FnSendEnforcementNotification {
		return errors.Errorf("unexpected call %s", name)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failTo[p.RecipientEmail] {
		return errors.New("mailbox unavailable")
	}
	f.sent = append(f.sent, p.RecipientEmail)
	return nil
}

type fakePusher struct {
	mu   sync.Mutex
	msgs []wsmodels.ServerMessage
}

func (f *fakePusher) SendMessage(msg wsmodels.ServerMessage) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.msgs = append(f.msgs, msg)
}

var defaultEmails = map[models.AgencyCode]string{
	models.AgencyLocalAuthority: "lado@council.gov.uk",
	models.AgencyHMRC:           "childcare@hmrc.gov.uk",
	models.AgencyDWP:            "uc@dwp.gov.uk",
	models.AgencyOfsted:         "enquiries@ofsted.gov.uk",
}

const owner = "u1"

type fixture struct {
	h             *impl
	enforcement   *fakeEnforcement
	notifications *fakeNotifications
	notifier      *fakeNotifier
	pusher        *fakePusher
}

func newFixture() fixture {
	deadline := time.Date(2024, 4, 19, 0, 0, 0, 0, time.UTC)
	f := fixture{
		enforcement: &fakeEnforcement{cases: map[string]enforcementapimodels.CaseView{
			"c1": {
				ID:              "c1",
				EmployeeID:      "p1",
				Type:            models.CaseTypeSuspension,
				Status:          models.CaseStatusInEffect,
				ReferenceNumber: "SUS-P1-20240308",
				Concern:         "Unsafe premises",
				RiskCategories:  []string{"premises"},
				DateCreated:     time.Date(2024, 3, 8, 0, 0, 0, 0, time.UTC),
				Deadline:        &deadline,
			},
		}},
		notifications: &fakeNotifications{},
		notifier:      &fakeNotifier{failTo: map[string]bool{}},
		pusher:        &fakePusher{},
	}
	f.h = newImpl(f.enforcement, fakeEmployees{}, f.notifications, f.notifier, f.pusher, Settings{
		SessionTTL:    time.Hour,
		DefaultEmails: defaultEmails,
	})
	f.h.now = func() time.Time { return time.Date(2024, 3, 8, 11, 0, 0, 0, time.UTC) }
	return f
}

var actor = enforcementhandler.Actor{UserID: owner, Name: "Officer One"}

func TestOpen(t *testing.T) {
	t.Run(`fixed agencies with default emails`, func(t *testing.T) {
		f := newFixture()
		view, err := f.h.Open(owner, "c1")
		require.NoError(t, err)
		require.Len(t, view.Recipients, 4)
		for n, code := range models.FixedAgencies {
			require.Equal(t, code, view.Recipients[n].AgencyCode)
			require.Equal(t, defaultEmails[code], view.Recipients[n].Email)
			require.Equal(t, models.RecipientPending, view.Recipients[n].Status)
		}
		require.False(t, view.AllSent)
		require.Equal(t, "SUS-P1-20240308", view.Reference)
	})
	t.Run(`unknown case`, func(t *testing.T) {
		f := newFixture()
		_, err := f.h.Open(owner, "nope")
		require.ErrorIs(t, err, models.ErrNotFound)
	})
	t.Run(`agency notified earlier stays sent`, func(t *testing.T) {
		f := newFixture()
		f.notifications.rows = []dbmodels.EnforcementNotification{{
			BaseCaseModel:  dbmodels.BaseCaseModel{CaseID: "c1"},
			AgencyCode:     models.AgencyHMRC,
			RecipientEmail: "other@hmrc.gov.uk",
			Status:         models.NotificationSent,
		}}
		view, err := f.h.Open(owner, "c1")
		require.NoError(t, err)
		require.Equal(t, models.RecipientSent, view.Recipients[1].Status)
		require.Equal(t, "other@hmrc.gov.uk", view.Recipients[1].Email)
		require.Equal(t, 1, view.SentCount)
	})
	t.Run(`session belongs to its owner`, func(t *testing.T) {
		f := newFixture()
		view, err := f.h.Open(owner, "c1")
		require.NoError(t, err)
		_, err = f.h.Get("someone-else", view.ID)
		require.ErrorIs(t, err, models.ErrNotFound)
	})
}

func TestSend(t *testing.T) {
	t.Run(`success records a notification`, func(t *testing.T) {
		f := newFixture()
		view, err := f.h.Open(owner, "c1")
		require.NoError(t, err)
		view, err = f.h.Send(context.Background(), owner, view.ID, string(models.AgencyHMRC), actor)
		require.NoError(t, err)
		require.Equal(t, models.RecipientSent, view.Recipients[1].Status)
		require.NotNil(t, view.Recipients[1].SentAt)
		require.Len(t, f.notifications.rows, 1)
		row := f.notifications.rows[0]
		require.Equal(t, "c1", row.CaseID)
		require.Equal(t, models.NotificationSent, row.Status)
		require.Equal(t, "childcare@hmrc.gov.uk", row.RecipientEmail)
		require.Equal(t, "Officer One", row.SentBy)
		require.NotEmpty(t, f.pusher.msgs)
		require.Equal(t, owner, f.pusher.msgs[0].ToUserID)
	})
	t.Run(`already sent recipient is rejected`, func(t *testing.T) {
		f := newFixture()
		view, err := f.h.Open(owner, "c1")
		require.NoError(t, err)
		_, err = f.h.Send(context.Background(), owner, view.ID, string(models.AgencyDWP), actor)
		require.NoError(t, err)
		_, err = f.h.Send(context.Background(), owner, view.ID, string(models.AgencyDWP), actor)
		require.ErrorIs(t, err, models.ErrConflict)
		require.Len(t, f.notifier.sent, 1)
	})
	t.Run(`failure is kept on the recipient and can be retried`, func(t *testing.T) {
		f := newFixture()
		f.notifier.failTo["uc@dwp.gov.uk"] = true
		view, err := f.h.Open(owner, "c1")
		require.NoError(t, err)
		view, err = f.h.Send(context.Background(), owner, view.ID, string(models.AgencyDWP), actor)
		require.NoError(t, err)
		require.Equal(t, models.RecipientError, view.Recipients[2].Status)
		require.Equal(t, "mailbox unavailable", view.Recipients[2].Error)
		require.Empty(t, f.notifications.rows)

		f.notifier.failTo["uc@dwp.gov.uk"] = false
		view, err = f.h.Send(context.Background(), owner, view.ID, string(models.AgencyDWP), actor)
		require.NoError(t, err)
		require.Equal(t, models.RecipientSent, view.Recipients[2].Status)
		require.Empty(t, view.Recipients[2].Error)
	})
	t.Run(`missing email`, func(t *testing.T) {
		f := newFixture()
		f.h.settings.DefaultEmails = nil
		view, err := f.h.Open(owner, "c1")
		require.NoError(t, err)
		_, err = f.h.Send(context.Background(), owner, view.ID, string(models.AgencyOfsted), actor)
		require.ErrorIs(t, err, models.ErrValidation)
		view, err = f.h.Get(owner, view.ID)
		require.NoError(t, err)
		require.Equal(t, models.RecipientPending, view.Recipients[3].Status)
		require.Contains(t, view.Recipients[3].Error, "no email address")

		view, err = f.h.UpdateEmail(owner, view.ID, string(models.AgencyOfsted), dispatchapimodels.EmailUpdate{Email: "enquiries@ofsted.gov.uk"})
		require.NoError(t, err)
		require.Empty(t, view.Recipients[3].Error)
	})
}

func TestUpdateEmail(t *testing.T) {
	f := newFixture()
	view, err := f.h.Open(owner, "c1")
	require.NoError(t, err)

	t.Run(`invalid address`, func(t *testing.T) {
		_, err := f.h.UpdateEmail(owner, view.ID, string(models.AgencyHMRC), dispatchapimodels.EmailUpdate{Email: "not-an-email"})
		require.ErrorIs(t, err, models.ErrValidation)
	})
	t.Run(`pending recipient`, func(t *testing.T) {
		v, err := f.h.UpdateEmail(owner, view.ID, string(models.AgencyHMRC), dispatchapimodels.EmailUpdate{Email: " team@hmrc.gov.uk "})
		require.NoError(t, err)
		require.Equal(t, "team@hmrc.gov.uk", v.Recipients[1].Email)
	})
	t.Run(`sent recipient is locked`, func(t *testing.T) {
		_, err := f.h.Send(context.Background(), owner, view.ID, string(models.AgencyHMRC), actor)
		require.NoError(t, err)
		_, err = f.h.UpdateEmail(owner, view.ID, string(models.AgencyHMRC), dispatchapimodels.EmailUpdate{Email: "x@hmrc.gov.uk"})
		require.ErrorIs(t, err, models.ErrConflict)
	})
	t.Run(`unknown recipient`, func(t *testing.T) {
		_, err := f.h.UpdateEmail(owner, view.ID, "nobody", dispatchapimodels.EmailUpdate{Email: "x@y.uk"})
		require.ErrorIs(t, err, models.ErrNotFound)
	})
}

func TestSendAll(t *testing.T) {
	t.Run(`continues after a failure`, func(t *testing.T) {
		f := newFixture()
		f.notifier.failTo["childcare@hmrc.gov.uk"] = true
		view, err := f.h.Open(owner, "c1")
		require.NoError(t, err)
		view, err = f.h.SendAll(context.Background(), owner, view.ID, actor)
		require.NoError(t, err)
		require.Equal(t, 3, view.SentCount)
		require.False(t, view.AllSent)
		require.Equal(t, models.RecipientError, view.Recipients[1].Status)
		require.Equal(t, []string{"lado@council.gov.uk", "uc@dwp.gov.uk", "enquiries@ofsted.gov.uk"}, f.notifier.sent)
		last := f.pusher.msgs[len(f.pusher.msgs)-1]
		require.Equal(t, wsmodels.CodeDispatchDone, last.Code)
	})
	t.Run(`recipient without email shows why it was skipped`, func(t *testing.T) {
		f := newFixture()
		f.h.settings.DefaultEmails = map[models.AgencyCode]string{
			models.AgencyLocalAuthority: "lado@council.gov.uk",
			models.AgencyHMRC:           "childcare@hmrc.gov.uk",
			models.AgencyDWP:            "uc@dwp.gov.uk",
		}
		view, err := f.h.Open(owner, "c1")
		require.NoError(t, err)
		view, err = f.h.SendAll(context.Background(), owner, view.ID, actor)
		require.NoError(t, err)
		require.Equal(t, 3, view.SentCount)
		require.Equal(t, models.RecipientPending, view.Recipients[3].Status)
		require.Equal(t, "no email address for "+view.Recipients[3].Name, view.Recipients[3].Error)
	})
	t.Run(`skips recipients already sent`, func(t *testing.T) {
		f := newFixture()
		view, err := f.h.Open(owner, "c1")
		require.NoError(t, err)
		_, err = f.h.Send(context.Background(), owner, view.ID, string(models.AgencyOfsted), actor)
		require.NoError(t, err)
		view, err = f.h.SendAll(context.Background(), owner, view.ID, actor)
		require.NoError(t, err)
		require.True(t, view.AllSent)
		require.Len(t, f.notifier.sent, 4)
	})
	t.Run(`cancelled context stops the run`, func(t *testing.T) {
		f := newFixture()
		view, err := f.h.Open(owner, "c1")
		require.NoError(t, err)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		view, err = f.h.SendAll(ctx, owner, view.ID, actor)
		require.ErrorIs(t, err, context.Canceled)
		require.Equal(t, 0, view.SentCount)
	})
	t.Run(`custom recipient resets all sent`, func(t *testing.T) {
		f := newFixture()
		view, err := f.h.Open(owner, "c1")
		require.NoError(t, err)
		view, err = f.h.SendAll(context.Background(), owner, view.ID, actor)
		require.NoError(t, err)
		require.True(t, view.AllSent)

		view, err = f.h.AddCustom(owner, view.ID, dispatchapimodels.CustomRecipient{Name: "Police liaison", Email: "liaison@police.uk"})
		require.NoError(t, err)
		require.False(t, view.AllSent)
		require.Len(t, view.Recipients, 5)
		require.True(t, view.Recipients[4].Custom)
		require.Equal(t, models.AgencyCustom, view.Recipients[4].AgencyCode)
	})
}

func TestClose(t *testing.T) {
	t.Run(`all sent`, func(t *testing.T) {
		f := newFixture()
		view, err := f.h.Open(owner, "c1")
		require.NoError(t, err)
		_, err = f.h.SendAll(context.Background(), owner, view.ID, actor)
		require.NoError(t, err)
		res, err := f.h.Close(owner, view.ID, dispatchapimodels.CloseRequest{}, actor)
		require.NoError(t, err)
		require.True(t, res.AllSent)
		require.False(t, res.Deferred)
		require.Len(t, f.enforcement.notes, 1)
		require.Equal(t, "External agencies notified", f.enforcement.notes[0].Event)
		require.Equal(t, models.TimelineCompleted, f.enforcement.notes[0].Type)

		_, err = f.h.Get(owner, view.ID)
		require.ErrorIs(t, err, models.ErrNotFound)
	})
	t.Run(`deferred with reason`, func(t *testing.T) {
		f := newFixture()
		view, err := f.h.Open(owner, "c1")
		require.NoError(t, err)
		res, err := f.h.Close(owner, view.ID, dispatchapimodels.CloseRequest{DeferralReason: "DWP address pending"}, actor)
		require.NoError(t, err)
		require.True(t, res.Deferred)
		require.False(t, res.ReasonMissing)
		require.Equal(t, "Agency notifications deferred: DWP address pending", f.enforcement.notes[0].Event)
		require.Equal(t, models.TimelinePending, f.enforcement.notes[0].Type)
	})
	t.Run(`deferred without reason is flagged`, func(t *testing.T) {
		f := newFixture()
		view, err := f.h.Open(owner, "c1")
		require.NoError(t, err)
		res, err := f.h.Close(owner, view.ID, dispatchapimodels.CloseRequest{DeferralReason: "  "}, actor)
		require.NoError(t, err)
		require.True(t, res.Deferred)
		require.True(t, res.ReasonMissing)
	})
}

package employeehandler

import (
	"context"
	"testing"

	employeestore "childminder-backend/lib/employee/store"
	"childminder-backend/lib/notifier"
	"childminder-backend/models"
	employeeapimodels "childminder-backend/models/api/employee"
	dbmodels "childminder-backend/models/db"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	employeestore.Provider
	rows map[string]dbmodels.Employee
}

func (f *fakeStore) Create(rec dbmodels.Employee) (string, error) {
	rec.ID = "p1"
	f.rows[rec.ID] = rec
	return rec.ID, nil
}

func (f *fakeStore) GetByID(id string) (*dbmodels.Employee, error) {
	rec, ok := f.rows[id]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (f *fakeStore) Update(id string, updMap map[string]interface{}) error {
	rec, ok := f.rows[id]
	if !ok {
		return models.NotFound("provider")
	}
	rec.FirstName = updMap["first_name"].(string)
	rec.Email = updMap["email"].(string)
	f.rows[id] = rec
	return nil
}

type call struct {
	name    string
	payload interface{}
}

type fakeNotifier struct {
	calls []call
}

func (f *fakeNotifier) Invoke(ctx context.Context, name string, payload interface{}) error {
	f.calls = append(f.calls, call{name, payload})
	return nil
}

func newTestImpl() (impl, *fakeStore, *fakeNotifier) {
	store := &fakeStore{rows: map[string]dbmodels.Employee{}}
	n := &fakeNotifier{}
	return impl{store: store, notifier: n, ofstedEmail: "checks@ofsted.gov.uk"}, store, n
}

func TestCreateAndUpdate(t *testing.T) {
	h, _, _ := newTestImpl()
	view, err := h.Create(employeeapimodels.EmployeeData{FirstName: " Jane ", LastName: "Smith", Postcode: "ls1 1aa"})
	require.NoError(t, err)
	require.Equal(t, "Jane Smith", view.FullName)
	require.Equal(t, "LS1 1AA", view.Postcode)

	t.Run(`missing names`, func(t *testing.T) {
		_, err := h.Create(employeeapimodels.EmployeeData{})
		var verr *models.ValidationError
		require.ErrorAs(t, err, &verr)
		require.Len(t, verr.Errors, 2)
	})
	t.Run(`update`, func(t *testing.T) {
		view, err := h.Update("p1", employeeapimodels.EmployeeData{FirstName: "Janet", LastName: "Smith", Email: "janet@example.org"})
		require.NoError(t, err)
		require.Equal(t, "Janet", view.FirstName)
	})
	t.Run(`update unknown`, func(t *testing.T) {
		_, err := h.Update("p9", employeeapimodels.EmployeeData{FirstName: "A", LastName: "B"})
		require.ErrorIs(t, err, models.ErrNotFound)
	})
}

func TestEmails(t *testing.T) {
	h, store, n := newTestImpl()
	store.rows["p1"] = dbmodels.Employee{BaseModel: dbmodels.BaseModel{ID: "p1"}, FirstName: "Jane", LastName: "Smith", OfstedURN: "EY123456"}

	t.Run(`known to ofsted goes to the configured address`, func(t *testing.T) {
		require.NoError(t, h.SendKnownToOfstedEmail(context.Background(), "p1", "Olivia Grant"))
		require.Len(t, n.calls, 1)
		require.Equal(t, models.FnSendKnownToOfstedEmail, n.calls[0].name)
		p := n.calls[0].payload.(notifier.KnownToOfstedEmail)
		require.Equal(t, "checks@ofsted.gov.uk", p.RecipientEmail)
		require.Equal(t, "EY123456", p.OfstedURN)
	})
	t.Run(`dbs request needs a provider email`, func(t *testing.T) {
		err := h.SendDbsRequest(context.Background(), "p1", "Olivia Grant")
		require.ErrorIs(t, err, models.ErrValidation)

		rec := store.rows["p1"]
		rec.Email = "jane@example.org"
		store.rows["p1"] = rec
		require.NoError(t, h.SendDbsRequest(context.Background(), "p1", "Olivia Grant"))
		require.Equal(t, models.FnSendDbsRequestEmail, n.calls[len(n.calls)-1].name)
	})
	t.Run(`unknown provider`, func(t *testing.T) {
		err := h.SendEmail(context.Background(), "p9", employeeapimodels.EmployeeEmailRequest{Subject: "s", Body: "b"})
		require.ErrorIs(t, err, models.ErrNotFound)
	})
}

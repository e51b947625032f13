package enforcementhandler

import (
	"context"
	"strings"
	"sync"
	"time"

	"childminder-backend/models"
	employeeapimodels "childminder-backend/models/api/employee"
	enforcementapimodels "childminder-backend/models/api/enforcement"
	dbmodels "childminder-backend/models/db"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// memory backs every fake store, the unit of work snapshots it to roll back.
type memory struct {
	mu            sync.Mutex
	cases         map[string]dbmodels.EnforcementCase
	timeline      []dbmodels.EnforcementTimeline
	stages        []dbmodels.EnforcementStage
	notifications []dbmodels.EnforcementNotification
	employees     map[string]dbmodels.Employee
	users         map[string]dbmodels.AdminUser
	failStage     error
}

func newMemory() *memory {
	return &memory{
		cases:     map[string]dbmodels.EnforcementCase{},
		employees: map[string]dbmodels.Employee{},
		users:     map[string]dbmodels.AdminUser{},
	}
}

type fakeCases struct{ m *memory }

func (f fakeCases) Create(rec dbmodels.EnforcementCase) (string, error) {
	rec.ID = uuid.NewString()
	rec.Version = 1
	f.m.cases[rec.ID] = rec
	return rec.ID, nil
}

func (f fakeCases) GetByID(id string) (*dbmodels.EnforcementCase, error) {
	rec, ok := f.m.cases[id]
	if !ok {
		return nil, nil
	}
	if e, ok := f.m.employees[rec.EmployeeID]; ok {
		rec.Employee = &e
	}
	return &rec, nil
}

func (f fakeCases) UpdateWithVersion(id string, version int, updMap map[string]interface{}) error {
	rec, ok := f.m.cases[id]
	if !ok {
		return models.NotFound("case")
	}
	if rec.Version != version {
		return errors.Wrap(models.ErrConflict, "version")
	}
	for k, v := range updMap {
		switch k {
		case "status":
			rec.Status = v.(models.CaseStatus)
		case "date_closed":
			d := v.(time.Time)
			rec.DateClosed = &d
		case "deadline":
			d := v.(time.Time)
			rec.Deadline = &d
		case "deadline_alerted_for":
			if d, ok := v.(time.Time); ok {
				rec.DeadlineAlertedFor = &d
			} else {
				rec.DeadlineAlertedFor = nil
			}
		case "supervisor_id":
			s := v.(string)
			rec.SupervisorID = &s
		case "supervisor_name":
			rec.SupervisorName = v.(string)
		default:
			return errors.Errorf("unexpected column %s", k)
		}
	}
	rec.Version++
	f.m.cases[id] = rec
	return nil
}

func (f fakeCases) List(filter enforcementapimodels.CaseFilter) ([]dbmodels.EnforcementCase, error) {
	list := []dbmodels.EnforcementCase{}
	for _, rec := range f.m.cases {
		if filter.EmployeeID != "" && rec.EmployeeID != filter.EmployeeID {
			continue
		}
		if filter.OnlyOpen && rec.DateClosed != nil {
			continue
		}
		list = append(list, rec)
	}
	return list, nil
}

func (f fakeCases) ListCount(filter enforcementapimodels.CaseFilter) (int64, error) {
	list, _ := f.List(filter)
	return int64(len(list)), nil
}

func (f fakeCases) ListRepresentationsExpired(today time.Time) ([]dbmodels.EnforcementCase, error) {
	list := []dbmodels.EnforcementCase{}
	for _, rec := range f.m.cases {
		if rec.Type == models.CaseTypeCancellation &&
			(rec.Status == models.CaseStatusPending || rec.Status == models.CaseStatusRepresentationsReceived) &&
			rec.Deadline != nil && rec.Deadline.Before(today) {
			list = append(list, rec)
		}
	}
	return list, nil
}

func (f fakeCases) ListReviewsDue(until time.Time) ([]dbmodels.EnforcementCase, error) {
	list := []dbmodels.EnforcementCase{}
	for _, rec := range f.m.cases {
		if rec.Type == models.CaseTypeSuspension && rec.Status == models.CaseStatusInEffect &&
			rec.Deadline != nil && !rec.Deadline.After(until) &&
			(rec.DeadlineAlertedFor == nil || !rec.DeadlineAlertedFor.Equal(*rec.Deadline)) {
			list = append(list, rec)
		}
	}
	return list, nil
}

type fakeTimeline struct{ m *memory }

func (f fakeTimeline) Create(rec dbmodels.EnforcementTimeline) (string, error) {
	rec.ID = uuid.NewString()
	f.m.timeline = append(f.m.timeline, rec)
	return rec.ID, nil
}

func (f fakeTimeline) List(caseID string) ([]dbmodels.EnforcementTimeline, error) {
	list := []dbmodels.EnforcementTimeline{}
	for _, rec := range f.m.timeline {
		if rec.CaseID == caseID {
			list = append(list, rec)
		}
	}
	return list, nil
}

type fakeStages struct{ m *memory }

func (f fakeStages) Create(rec dbmodels.EnforcementStage) (string, error) {
	if f.m.failStage != nil {
		return "", f.m.failStage
	}
	rec.ID = uuid.NewString()
	f.m.stages = append(f.m.stages, rec)
	return rec.ID, nil
}

func (f fakeStages) List(caseID string) ([]dbmodels.EnforcementStage, error) {
	list := []dbmodels.EnforcementStage{}
	for _, rec := range f.m.stages {
		if rec.CaseID == caseID {
			list = append(list, rec)
		}
	}
	return list, nil
}

type fakeNotifications struct{ m *memory }

func (f fakeNotifications) Create(rec dbmodels.EnforcementNotification) (string, error) {
	rec.ID = uuid.NewString()
	f.m.notifications = append(f.m.notifications, rec)
	return rec.ID, nil
}

func (f fakeNotifications) List(caseID string) ([]dbmodels.EnforcementNotification, error) {
	list := []dbmodels.EnforcementNotification{}
	for _, rec := range f.m.notifications {
		if rec.CaseID == caseID {
			list = append(list, rec)
		}
	}
	return list, nil
}

type fakeEmployees struct{ m *memory }

func (f fakeEmployees) Create(rec dbmodels.Employee) (string, error) {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	f.m.employees[rec.ID] = rec
	return rec.ID, nil
}

func (f fakeEmployees) GetByID(id string) (*dbmodels.Employee, error) {
	rec, ok := f.m.employees[id]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (f fakeEmployees) Update(id string, updMap map[string]interface{}) error {
	return nil
}

func (f fakeEmployees) List(filter employeeapimodels.EmployeeFilter) ([]dbmodels.Employee, error) {
	return nil, nil
}

func (f fakeEmployees) ListCount(filter employeeapimodels.EmployeeFilter) (int64, error) {
	return 0, nil
}

type fakeUsers struct{ m *memory }

func (f fakeUsers) Create(rec dbmodels.AdminUser) (string, error) {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	f.m.users[rec.ID] = rec
	return rec.ID, nil
}

func (f fakeUsers) GetByID(id string) (*dbmodels.AdminUser, error) {
	rec, ok := f.m.users[id]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (f fakeUsers) FindByEmail(email string) (*dbmodels.AdminUser, error) {
	for _, rec := range f.m.users {
		if strings.EqualFold(rec.Email, email) {
			return &rec, nil
		}
	}
	return nil, nil
}

func (f fakeUsers) Update(id string, updMap map[string]interface{}) error {
	return nil
}

func (f fakeUsers) List() ([]dbmodels.AdminUser, error) {
	return nil, nil
}

func (f fakeUsers) ListByRoles(roles []models.UserRole) ([]dbmodels.AdminUser, error) {
	return nil, nil
}

type fakeUnitOfWork struct{ m *memory }

func (u fakeUnitOfWork) Do(fn func(s Stores) error) error {
	u.m.mu.Lock()
	defer u.m.mu.Unlock()
	cases := make(map[string]dbmodels.EnforcementCase, len(u.m.cases))
	for k, v := range u.m.cases {
		cases[k] = v
	}
	timeline := append([]dbmodels.EnforcementTimeline(nil), u.m.timeline...)
	stages := append([]dbmodels.EnforcementStage(nil), u.m.stages...)
	err := fn(Stores{
		Cases:    fakeCases{u.m},
		Timeline: fakeTimeline{u.m},
		Stages:   fakeStages{u.m},
	})
	if err != nil {
		u.m.cases, u.m.timeline, u.m.stages = cases, timeline, stages
	}
	return err
}

type invocation struct {
	name    string
	payload interface{}
}

type fakeNotifier struct {
	calls []invocation
	err   error
}

func (f *fakeNotifier) Invoke(ctx context.Context, name string, payload interface{}) error {
	f.calls = append(f.calls, invocation{name: name, payload: payload})
	return f.err
}

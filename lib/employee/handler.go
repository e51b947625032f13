package employeehandler

import (
	"context"
	"fmt"
	"strings"

	"childminder-backend/db"
	employeestore "childminder-backend/lib/employee/store"
	"childminder-backend/lib/notifier"
	"childminder-backend/models"
	employeeapimodels "childminder-backend/models/api/employee"
	dbmodels "childminder-backend/models/db"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	Create(data employeeapimodels.EmployeeData) (employeeapimodels.EmployeeView, error)
	Update(id string, data employeeapimodels.EmployeeData) (employeeapimodels.EmployeeView, error)
	Get(id string) (employeeapimodels.EmployeeView, error)
	List(filter employeeapimodels.EmployeeFilter) ([]employeeapimodels.EmployeeView, int64, error)
	SendKnownToOfstedEmail(ctx context.Context, id, requestedBy string) error
	SendDbsRequest(ctx context.Context, id, requestedBy string) error
	SendEmail(ctx context.Context, id string, data employeeapimodels.EmployeeEmailRequest) error
}

var Instance Provider

// NewHandler wires the provider register. ofstedEmail receives the known-to-Ofsted checks.
func NewHandler(ofstedEmail string) {
	Instance = impl{
		store:       employeestore.NewInstance(db.DB),
		notifier:    notifier.Instance,
		ofstedEmail: ofstedEmail,
	}
}

type impl struct {
	store       employeestore.Provider
	notifier    notifier.Provider
	ofstedEmail string
}

func (i impl) Create(data employeeapimodels.EmployeeData) (employeeapimodels.EmployeeView, error) {
	if err := data.Validate(); err != nil {
		return employeeapimodels.EmployeeView{}, err
	}
	upd := data.UpdMap()
	rec := dbmodels.Employee{
		FirstName:    upd["first_name"].(string),
		LastName:     upd["last_name"].(string),
		Email:        upd["email"].(string),
		PhoneNumber:  upd["phone_number"].(string),
		AddressLine1: upd["address_line1"].(string),
		AddressLine2: upd["address_line2"].(string),
		Town:         upd["town"].(string),
		Postcode:     upd["postcode"].(string),
		OfstedURN:    upd["ofsted_urn"].(string),
	}
	id, err := i.store.Create(rec)
	if err != nil {
		log.WithField("request", fmt.Sprintf("%+v", data)).WithError(err).Error("provider create failed")
		return employeeapimodels.EmployeeView{}, err
	}
	log.WithField("employee_id", id).Info("provider created")
	return i.Get(id)
}

func (i impl) Update(id string, data employeeapimodels.EmployeeData) (employeeapimodels.EmployeeView, error) {
	if err := data.Validate(); err != nil {
		return employeeapimodels.EmployeeView{}, err
	}
	logger := log.WithField("employee_id", id)
	if err := i.store.Update(id, data.UpdMap()); err != nil {
		if !errors.Is(err, models.ErrNotFound) {
			logger.WithError(err).Error("provider update failed")
		}
		return employeeapimodels.EmployeeView{}, err
	}
	logger.Info("provider updated")
	return i.Get(id)
}

func (i impl) Get(id string) (employeeapimodels.EmployeeView, error) {
	rec, err := i.get(id)
	if err != nil {
		return employeeapimodels.EmployeeView{}, err
	}
	return employeeapimodels.EmployeeConvert(*rec), nil
}

func (i impl) List(filter employeeapimodels.EmployeeFilter) ([]employeeapimodels.EmployeeView, int64, error) {
	rowCount, err := i.store.ListCount(filter)
	if err != nil {
		log.WithError(err).Error("provider count failed")
		return nil, 0, err
	}
	list, err := i.store.List(filter)
	if err != nil {
		log.WithError(err).Error("provider list failed")
		return nil, 0, err
	}
	result := make([]employeeapimodels.EmployeeView, 0, len(list))
	for _, rec := range list {
		result = append(result, employeeapimodels.EmployeeConvert(rec))
	}
	return result, rowCount, nil
}

func (i impl) SendKnownToOfstedEmail(ctx context.Context, id, requestedBy string) error {
	if i.ofstedEmail == "" {
		return errors.New("ofsted email address is not configured")
	}
	rec, err := i.get(id)
	if err != nil {
		return err
	}
	return i.invoke(ctx, rec, models.FnSendKnownToOfstedEmail, notifier.KnownToOfstedEmail{
		EmployeeID:     rec.ID,
		RecipientEmail: i.ofstedEmail,
		ProviderName:   rec.GetFullName(),
		ProviderEmail:  rec.Email,
		OfstedURN:      rec.OfstedURN,
		RequestedBy:    requestedBy,
	})
}

func (i impl) SendDbsRequest(ctx context.Context, id, requestedBy string) error {
	rec, err := i.getWithEmail(id)
	if err != nil {
		return err
	}
	return i.invoke(ctx, rec, models.FnSendDbsRequestEmail, notifier.DbsRequestEmail{
		EmployeeID:  rec.ID,
		To:          rec.Email,
		Name:        rec.GetFullName(),
		RequestedBy: requestedBy,
	})
}

func (i impl) SendEmail(ctx context.Context, id string, data employeeapimodels.EmployeeEmailRequest) error {
	if err := data.Validate(); err != nil {
		return err
	}
	rec, err := i.getWithEmail(id)
	if err != nil {
		return err
	}
	return i.invoke(ctx, rec, models.FnSendEmployeeEmail, notifier.EmployeeEmail{
		EmployeeID: rec.ID,
		To:         rec.Email,
		Name:       rec.GetFullName(),
		Subject:    strings.TrimSpace(data.Subject),
		Body:       strings.TrimSpace(data.Body),
	})
}

func (i impl) invoke(ctx context.Context, rec *dbmodels.Employee, name string, payload interface{}) error {
	logger := log.WithField("employee_id", rec.ID).WithField("function", name)
	if err := i.notifier.Invoke(ctx, name, payload); err != nil {
		logger.WithError(err).Error("provider email not sent")
		return err
	}
	logger.Info("provider email sent")
	return nil
}

func (i impl) get(id string) (*dbmodels.Employee, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		log.WithField("employee_id", id).WithError(err).Error("provider lookup failed")
		return nil, err
	}
	if rec == nil {
		return nil, models.NotFound("provider")
	}
	return rec, nil
}

func (i impl) getWithEmail(id string) (*dbmodels.Employee, error) {
	rec, err := i.get(id)
	if err != nil {
		return nil, err
	}
	if rec.Email == "" {
		return nil, models.NewValidationError("email", "the provider has no email address")
	}
	return rec, nil
}

package employeeapimodels

import (
	"net/mail"
	"strings"
	"time"

	"childminder-backend/models"
	apimodels "childminder-backend/models/api"
	dbmodels "childminder-backend/models/db"
	"github.com/pkg/errors"
)

type EmployeeData struct {
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Email        string `json:"email"`
	PhoneNumber  string `json:"phone_number"`
	AddressLine1 string `json:"address_line1"`
	AddressLine2 string `json:"address_line2"`
	Town         string `json:"town"`
	Postcode     string `json:"postcode"`
	OfstedURN    string `json:"ofsted_urn"`
}

func (e EmployeeData) Validate() error {
	verr := &models.ValidationError{}
	if strings.TrimSpace(e.FirstName) == "" {
		verr.Add("first_name", "first name is required")
	}
	if strings.TrimSpace(e.LastName) == "" {
		verr.Add("last_name", "last name is required")
	}
	if e.Email != "" {
		if _, err := mail.ParseAddress(e.Email); err != nil {
			verr.Add("email", "email has an invalid format")
		}
	}
	return verr.OrNil()
}

// UpdMap lists the columns of an edited provider record.
func (e EmployeeData) UpdMap() map[string]interface{} {
	return map[string]interface{}{
		"first_name":    strings.TrimSpace(e.FirstName),
		"last_name":     strings.TrimSpace(e.LastName),
		"email":         strings.TrimSpace(e.Email),
		"phone_number":  strings.TrimSpace(e.PhoneNumber),
		"address_line1": strings.TrimSpace(e.AddressLine1),
		"address_line2": strings.TrimSpace(e.AddressLine2),
		"town":          strings.TrimSpace(e.Town),
		"postcode":      strings.ToUpper(strings.TrimSpace(e.Postcode)),
		"ofsted_urn":    strings.TrimSpace(e.OfstedURN),
	}
}

type EmployeeEmailRequest struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

func (r EmployeeEmailRequest) Validate() error {
	if strings.TrimSpace(r.Subject) == "" {
		return errors.New("subject is required")
	}
	if strings.TrimSpace(r.Body) == "" {
		return errors.New("body is required")
	}
	return nil
}

type EmployeeView struct {
	EmployeeData
	ID        string    `json:"id"`
	FullName  string    `json:"full_name"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"created_at"`
}

func EmployeeConvert(rec dbmodels.Employee) EmployeeView {
	return EmployeeView{
		EmployeeData: EmployeeData{
			FirstName:    rec.FirstName,
			LastName:     rec.LastName,
			Email:        rec.Email,
			PhoneNumber:  rec.PhoneNumber,
			AddressLine1: rec.AddressLine1,
			AddressLine2: rec.AddressLine2,
			Town:         rec.Town,
			Postcode:     rec.Postcode,
			OfstedURN:    rec.OfstedURN,
		},
		ID:        rec.ID,
		FullName:  rec.GetFullName(),
		Address:   rec.GetAddress(),
		CreatedAt: rec.CreatedAt,
	}
}

type EmployeeFilter struct {
	Search string `json:"search"` // name, email, postcode or URN
	apimodels.Pagination
}

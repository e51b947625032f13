package adminpanelapimodels

import (
	"net/mail"
	"time"

	"childminder-backend/models"
	dbmodels "childminder-backend/models/db"
	"github.com/pkg/errors"
)

type UserView struct {
	User
	ID        string     `json:"id"`
	FullName  string     `json:"full_name"`
	IsActive  bool       `json:"is_active"`
	LastLogin *time.Time `json:"last_login,omitempty"`
}

type User struct {
	Email     string          `json:"email"`
	FirstName string          `json:"first_name"`
	LastName  string          `json:"last_name"`
	Password  string          `json:"password,omitempty"`
	Role      models.UserRole `json:"role"`
}

func (u User) Validate() error {
	if _, err := mail.ParseAddress(u.Email); err != nil {
		return errors.New("email has an invalid format")
	}
	if u.FirstName == "" || u.LastName == "" {
		return errors.New("first and last name are required")
	}
	if !u.Role.IsValid() {
		return errors.Errorf("unknown role: %v", u.Role)
	}
	if len(u.Password) < 8 {
		return errors.New("password must be at least 8 characters")
	}
	return nil
}

func UserConvert(rec dbmodels.AdminUser) UserView {
	return UserView{
		User: User{
			Email:     rec.Email,
			FirstName: rec.FirstName,
			LastName:  rec.LastName,
			Role:      rec.Role,
		},
		ID:        rec.ID,
		FullName:  rec.GetFullName(),
		IsActive:  rec.IsActive,
		LastLogin: rec.LastLogin,
	}
}

// SupervisorView is an account that can be named as the approving authority.
type SupervisorView struct {
	ID       string          `json:"id"`
	FullName string          `json:"full_name"`
	Role     models.UserRole `json:"role"`
}

func SupervisorConvert(rec dbmodels.AdminUser) SupervisorView {
	return SupervisorView{
		ID:       rec.ID,
		FullName: rec.GetFullName(),
		Role:     rec.Role,
	}
}

type UserUpdate struct {
	FirstName *string          `json:"first_name"`
	LastName  *string          `json:"last_name"`
	Password  *string          `json:"password"`
	Role      *models.UserRole `json:"role"`
	IsActive  *bool            `json:"is_active"`
}

func (u UserUpdate) Validate() error {
	if u.Role != nil && !u.Role.IsValid() {
		return errors.Errorf("unknown role: %v", *u.Role)
	}
	if u.Password != nil && len(*u.Password) < 8 {
		return errors.New("password must be at least 8 characters")
	}
	if (u.FirstName != nil && *u.FirstName == "") || (u.LastName != nil && *u.LastName == "") {
		return errors.New("first and last name can not be empty")
	}
	return nil
}

package dbmodels

import (
	"fmt"
	"strings"
)

// Employee is a registered childminder (the provider enforcement is taken against).
type Employee struct {
	BaseModel
	FirstName    string `gorm:"type:varchar(150)"`
	LastName     string `gorm:"type:varchar(150)"`
	Email        string `gorm:"type:varchar(255)"`
	PhoneNumber  string `gorm:"type:varchar(30)"`
	AddressLine1 string `gorm:"type:varchar(255)"`
	AddressLine2 string `gorm:"type:varchar(255)"`
	Town         string `gorm:"type:varchar(150)"`
	Postcode     string `gorm:"type:varchar(15)"`
	OfstedURN    string `gorm:"type:varchar(20);index"`
}

func (r Employee) GetFullName() string {
	return strings.TrimSpace(fmt.Sprintf("%s %s", r.FirstName, r.LastName))
}

func (r Employee) GetAddress() string {
	parts := make([]string, 0, 4)
	for _, p := range []string{r.AddressLine1, r.AddressLine2, r.Town, r.Postcode} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}

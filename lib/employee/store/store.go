package employeestore

import (
	"strings"

	"childminder-backend/models"
	employeeapimodels "childminder-backend/models/api/employee"
	dbmodels "childminder-backend/models/db"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.Employee) (id string, err error)
	GetByID(id string) (*dbmodels.Employee, error)
	Update(id string, updMap map[string]interface{}) error
	List(filter employeeapimodels.EmployeeFilter) ([]dbmodels.Employee, error)
	ListCount(filter employeeapimodels.EmployeeFilter) (int64, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Employee) (id string, err error) {
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.Employee, error) {
	rec := dbmodels.Employee{}
	err := i.db.
		Where("id = ?", id).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) Update(id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	tx := i.db.
		Model(&dbmodels.Employee{}).
		Where("id = ?", id).
		Updates(updMap)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return models.NotFound("provider")
	}
	return nil
}

func (i impl) List(filter employeeapimodels.EmployeeFilter) ([]dbmodels.Employee, error) {
	list := []dbmodels.Employee{}
	page, limit := filter.GetPage()
	err := i.filter(filter).
		Order("last_name, first_name").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListCount(filter employeeapimodels.EmployeeFilter) (int64, error) {
	var rowCount int64
	err := i.filter(filter).
		Count(&rowCount).
		Error
	if err != nil {
		return 0, err
	}
	return rowCount, nil
}

func (i impl) filter(filter employeeapimodels.EmployeeFilter) *gorm.DB {
	tx := i.db.Model(&dbmodels.Employee{})
	if search := strings.TrimSpace(filter.Search); search != "" {
		like := "%" + strings.ToLower(search) + "%"
		tx = tx.Where("lower(first_name || ' ' || last_name) like ? or lower(email) like ? or lower(postcode) like ? or ofsted_urn = ?",
			like, like, like, search)
	}
	return tx
}

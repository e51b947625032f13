package adminpaneluserstore

import (
	"strings"

	"childminder-backend/models"
	dbmodels "childminder-backend/models/db"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.AdminUser) (userID string, err error)
	GetByID(userID string) (*dbmodels.AdminUser, error)
	FindByEmail(email string) (*dbmodels.AdminUser, error)
	Update(userID string, updMap map[string]interface{}) error
	List() ([]dbmodels.AdminUser, error)
	ListByRoles(roles []models.UserRole) ([]dbmodels.AdminUser, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.AdminUser) (userID string, err error) {
	if rec.Email == "" {
		return "", errors.New("email is empty")
	}
	rec.Email = strings.ToLower(rec.Email)
	r, err := i.FindByEmail(rec.Email)
	if err != nil {
		return "", err
	}
	if r != nil {
		return "", errors.Wrap(models.ErrConflict, "user already exists")
	}
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(userID string) (*dbmodels.AdminUser, error) {
	rec := dbmodels.AdminUser{}
	err := i.db.
		Where("id = ?", userID).
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

func (i impl) FindByEmail(email string) (*dbmodels.AdminUser, error) {
	rec := dbmodels.AdminUser{}
	err := i.db.
		Where("email = ?", strings.ToLower(email)).
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

func (i impl) Update(userID string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	tx := i.db.
		Model(&dbmodels.AdminUser{}).
		Where("id = ?", userID).
		Updates(updMap)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return models.NotFound("user")
	}
	return nil
}

func (i impl) List() ([]dbmodels.AdminUser, error) {
	list := []dbmodels.AdminUser{}
	err := i.db.
		Order("last_name, first_name").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListByRoles(roles []models.UserRole) ([]dbmodels.AdminUser, error) {
	list := []dbmodels.AdminUser{}
	err := i.db.
		Where("role in (?)", roles).
		Where("is_active = ?", true).
		Order("last_name, first_name").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

package casestore

import (
	"strings"
	"time"

	"childminder-backend/models"
	enforcementapimodels "childminder-backend/models/api/enforcement"
	dbmodels "childminder-backend/models/db"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Provider interface {
	Create(rec dbmodels.EnforcementCase) (id string, err error)
	GetByID(id string) (*dbmodels.EnforcementCase, error)
	// UpdateWithVersion applies updMap only when the stored version still equals version.
	UpdateWithVersion(id string, version int, updMap map[string]interface{}) error
	List(filter enforcementapimodels.CaseFilter) ([]dbmodels.EnforcementCase, error)
	ListCount(filter enforcementapimodels.CaseFilter) (int64, error)
	ListRepresentationsExpired(today time.Time) ([]dbmodels.EnforcementCase, error)
	ListReviewsDue(until time.Time) ([]dbmodels.EnforcementCase, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.EnforcementCase) (id string, err error) {
	rec.Version = 1
	err = i.db.Omit(clause.Associations).
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.EnforcementCase, error) {
	rec := dbmodels.EnforcementCase{}
	err := i.db.
		Where("id = ?", id).
		Preload(clause.Associations).
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

func (i impl) UpdateWithVersion(id string, version int, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	upd := make(map[string]interface{}, len(updMap)+1)
	for k, v := range updMap {
		upd[k] = v
	}
	upd["version"] = gorm.Expr("version + 1")
	tx := i.db.
		Model(&dbmodels.EnforcementCase{}).
		Where("id = ?", id).
		Where("version = ?", version).
		Updates(upd)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		var count int64
		err := i.db.Model(&dbmodels.EnforcementCase{}).Where("id = ?", id).Count(&count).Error
		if err != nil {
			return err
		}
		if count == 0 {
			return models.NotFound("case")
		}
		return errors.Wrap(models.ErrConflict, "case was changed by another operator")
	}
	return nil
}

func (i impl) List(filter enforcementapimodels.CaseFilter) ([]dbmodels.EnforcementCase, error) {
	list := []dbmodels.EnforcementCase{}
	page, limit := filter.GetPage()
	err := i.filter(filter).
		Preload(clause.Associations).
		Order("date_created desc, created_at desc").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListCount(filter enforcementapimodels.CaseFilter) (int64, error) {
	var rowCount int64
	err := i.filter(filter).
		Count(&rowCount).
		Error
	if err != nil {
		return 0, err
	}
	return rowCount, nil
}

func (i impl) ListRepresentationsExpired(today time.Time) ([]dbmodels.EnforcementCase, error) {
	list := []dbmodels.EnforcementCase{}
	err := i.db.
		Where("type = ?", models.CaseTypeCancellation).
		Where("status in (?)", []models.CaseStatus{models.CaseStatusPending, models.CaseStatusRepresentationsReceived}).
		Where("deadline < ?", today).
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListReviewsDue(until time.Time) ([]dbmodels.EnforcementCase, error) {
	list := []dbmodels.EnforcementCase{}
	err := i.db.
		Where("type = ?", models.CaseTypeSuspension).
		Where("status = ?", models.CaseStatusInEffect).
		Where("deadline <= ?", until).
		Where("deadline_alerted_for is null or deadline_alerted_for <> deadline").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) filter(filter enforcementapimodels.CaseFilter) *gorm.DB {
	tx := i.db.Model(&dbmodels.EnforcementCase{})
	if filter.EmployeeID != "" {
		tx = tx.Where("employee_id = ?", filter.EmployeeID)
	}
	if len(filter.Types) != 0 {
		tx = tx.Where("type in (?)", filter.Types)
	}
	if len(filter.Statuses) != 0 {
		tx = tx.Where("status in (?)", filter.Statuses)
	}
	if filter.OnlyOpen {
		tx = tx.Where("date_closed is null")
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		like := "%" + strings.ToLower(search) + "%"
		tx = tx.Where("lower(reference_number) like ? or lower(concern) like ?", like, like)
	}
	return tx
}

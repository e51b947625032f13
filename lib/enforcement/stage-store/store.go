package stagestore

import (
	dbmodels "childminder-backend/models/db"
	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.EnforcementStage) (id string, err error)
	List(caseID string) ([]dbmodels.EnforcementStage, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.EnforcementStage) (id string, err error) {
	err = i.db.
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) List(caseID string) ([]dbmodels.EnforcementStage, error) {
	list := []dbmodels.EnforcementStage{}
	err := i.db.
		Where("case_id = ?", caseID).
		Order("created_at").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

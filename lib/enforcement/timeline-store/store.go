package timelinestore

import (
	dbmodels "childminder-backend/models/db"
	"gorm.io/gorm"
)

// Provider has no update or delete: the timeline is an audit trail.
type Provider interface {
	Create(rec dbmodels.EnforcementTimeline) (id string, err error)
	List(caseID string) ([]dbmodels.EnforcementTimeline, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.EnforcementTimeline) (id string, err error) {
	err = i.db.
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) List(caseID string) ([]dbmodels.EnforcementTimeline, error) {
	list := []dbmodels.EnforcementTimeline{}
	err := i.db.
		Where("case_id = ?", caseID).
		Order("date, created_at").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

package evidencestore

import (
	dbmodels "childminder-backend/models/db"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.EvidenceFile) (id string, err error)
	GetByID(caseID, id string) (*dbmodels.EvidenceFile, error)
	List(caseID string) ([]dbmodels.EvidenceFile, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.EvidenceFile) (id string, err error) {
	err = i.db.
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(caseID, id string) (*dbmodels.EvidenceFile, error) {
	rec := dbmodels.EvidenceFile{}
	err := i.db.
		Where("id = ?", id).
		Where("case_id = ?", caseID).
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

func (i impl) List(caseID string) ([]dbmodels.EvidenceFile, error) {
	list := []dbmodels.EvidenceFile{}
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

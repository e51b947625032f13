package enforcementhandler

import (
	casestore "childminder-backend/lib/enforcement/case-store"
	stagestore "childminder-backend/lib/enforcement/stage-store"
	timelinestore "childminder-backend/lib/enforcement/timeline-store"
	"gorm.io/gorm"
)

// Stores are bound to one transaction.
type Stores struct {
	Cases    casestore.Provider
	Timeline timelinestore.Provider
	Stages   stagestore.Provider
}

// UnitOfWork runs fn in a single transaction, nothing fn wrote survives an error.
type UnitOfWork interface {
	Do(fn func(s Stores) error) error
}

func NewGormUnitOfWork(db *gorm.DB) UnitOfWork {
	return gormUnitOfWork{db: db}
}

type gormUnitOfWork struct {
	db *gorm.DB
}

func (u gormUnitOfWork) Do(fn func(s Stores) error) error {
	return u.db.Transaction(func(tx *gorm.DB) error {
		return fn(Stores{
			Cases:    casestore.NewInstance(tx),
			Timeline: timelinestore.NewInstance(tx),
			Stages:   stagestore.NewInstance(tx),
		})
	})
}

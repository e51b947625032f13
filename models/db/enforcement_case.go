package dbmodels

import (
	"time"

	"childminder-backend/models"
)

type EnforcementCase struct {
	BaseModel
	EmployeeID      string            `gorm:"type:varchar(36);index"`
	Employee        *Employee         `gorm:"foreignKey:EmployeeID"`
	Type            models.CaseType   `gorm:"type:varchar(50);index"`
	Status          models.CaseStatus `gorm:"type:varchar(50);index"`
	RiskLevel       models.RiskLevel  `gorm:"type:varchar(20)"`
	ReferenceNumber string            `gorm:"type:varchar(120);index"`
	Concern         string
	RiskDetail      string
	RiskCategories  StringList `gorm:"type:jsonb"`
	Deadline        *time.Time `gorm:"type:date"`
	DateCreated     time.Time  `gorm:"type:date"`
	DateClosed      *time.Time `gorm:"type:date"`
	SupervisorID    *string    `gorm:"type:varchar(36)"`
	Supervisor      *AdminUser `gorm:"foreignKey:SupervisorID"`
	SupervisorName  string     `gorm:"type:varchar(255)"`
	CreatedBy       string     `gorm:"type:varchar(255)"`

	// Version is bumped on every update, updates are conditional on it.
	Version            int
	DeadlineAlertedFor *time.Time `gorm:"type:date"`
}

func (EnforcementCase) TableName() string {
	return "enforcement_cases"
}

type EnforcementTimeline struct {
	BaseCaseModel
	Event     string
	Date      time.Time                `gorm:"type:date;index"`
	Type      models.TimelineEventType `gorm:"type:varchar(20)"`
	CreatedBy string                   `gorm:"type:varchar(255)"`
}

func (EnforcementTimeline) TableName() string {
	return "enforcement_timeline"
}

type EnforcementNotification struct {
	BaseCaseModel
	AgencyCode     models.AgencyCode         `gorm:"type:varchar(50)"`
	AgencyName     string                    `gorm:"type:varchar(255)"`
	Detail         string
	RecipientEmail string                    `gorm:"type:varchar(255)"`
	Status         models.NotificationStatus `gorm:"type:varchar(20)"`
	SentAt         *time.Time
	SentBy         string `gorm:"type:varchar(255)"`
}

func (EnforcementNotification) TableName() string {
	return "enforcement_notifications"
}

type EvidenceFile struct {
	BaseCaseModel
	FileName    string `gorm:"type:varchar(255)"`
	ContentType string `gorm:"type:varchar(150)"`
	Size        int64
	ObjectKey   string `gorm:"type:varchar(255)"`
	UploadedBy  string `gorm:"type:varchar(255)"`
}

func (EvidenceFile) TableName() string {
	return "enforcement_evidence"
}

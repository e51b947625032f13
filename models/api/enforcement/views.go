package enforcementapimodels

import (
	"encoding/json"
	"time"

	"childminder-backend/lib/deadline"
	"childminder-backend/models"
	apimodels "childminder-backend/models/api"
	dbmodels "childminder-backend/models/db"
	"github.com/pkg/errors"
)

type CaseView struct {
	ID              string            `json:"id"`
	EmployeeID      string            `json:"employee_id"`
	EmployeeName    string            `json:"employee_name"`
	Type            models.CaseType   `json:"type"`
	TypeName        string            `json:"type_name"`
	Status          models.CaseStatus `json:"status"`
	StatusName      string            `json:"status_name"`
	RiskLevel       models.RiskLevel  `json:"risk_level"`
	ReferenceNumber string            `json:"reference_number"`
	Concern         string            `json:"concern"`
	RiskDetail      string            `json:"risk_detail"`
	RiskCategories  []string          `json:"risk_categories"`
	Deadline        *time.Time        `json:"deadline,omitempty"`
	DateCreated     time.Time         `json:"date_created"`
	DateClosed      *time.Time        `json:"date_closed,omitempty"`
	SupervisorID    *string           `json:"supervisor_id,omitempty"`
	SupervisorName  string            `json:"supervisor_name"`
	CreatedBy       string            `json:"created_by"`
	Version         int               `json:"version"`
}

func CaseConvert(rec dbmodels.EnforcementCase) CaseView {
	view := CaseView{
		ID:              rec.ID,
		EmployeeID:      rec.EmployeeID,
		Type:            rec.Type,
		TypeName:        rec.Type.ToHuman(),
		Status:          rec.Status,
		StatusName:      rec.Status.ToHuman(),
		RiskLevel:       rec.RiskLevel,
		ReferenceNumber: rec.ReferenceNumber,
		Concern:         rec.Concern,
		RiskDetail:      rec.RiskDetail,
		RiskCategories:  rec.RiskCategories,
		Deadline:        rec.Deadline,
		DateCreated:     rec.DateCreated,
		DateClosed:      rec.DateClosed,
		SupervisorID:    rec.SupervisorID,
		SupervisorName:  rec.SupervisorName,
		CreatedBy:       rec.CreatedBy,
		Version:         rec.Version,
	}
	if rec.Employee != nil {
		view.EmployeeName = rec.Employee.GetFullName()
	}
	if rec.Supervisor != nil {
		view.SupervisorName = rec.Supervisor.GetFullName()
	}
	if view.RiskCategories == nil {
		view.RiskCategories = []string{}
	}
	return view
}

type TimelineView struct {
	ID        string                   `json:"id"`
	Event     string                   `json:"event"`
	Date      time.Time                `json:"date"`
	Type      models.TimelineEventType `json:"type"`
	CreatedBy string                   `json:"created_by"`
}

func TimelineConvert(rec dbmodels.EnforcementTimeline) TimelineView {
	return TimelineView{
		ID:        rec.ID,
		Event:     rec.Event,
		Date:      rec.Date,
		Type:      rec.Type,
		CreatedBy: rec.CreatedBy,
	}
}

type NotificationView struct {
	ID             string                    `json:"id"`
	AgencyCode     models.AgencyCode         `json:"agency_code"`
	AgencyName     string                    `json:"agency_name"`
	Detail         string                    `json:"detail"`
	RecipientEmail string                    `json:"recipient_email"`
	Status         models.NotificationStatus `json:"status"`
	SentAt         *time.Time                `json:"sent_at,omitempty"`
	SentBy         string                    `json:"sent_by"`
}

func NotificationConvert(rec dbmodels.EnforcementNotification) NotificationView {
	return NotificationView{
		ID:             rec.ID,
		AgencyCode:     rec.AgencyCode,
		AgencyName:     rec.AgencyName,
		Detail:         rec.Detail,
		RecipientEmail: rec.RecipientEmail,
		Status:         rec.Status,
		SentAt:         rec.SentAt,
		SentBy:         rec.SentBy,
	}
}

type StageView struct {
	ID        string              `json:"id"`
	Kind      models.WorkflowKind `json:"kind"`
	Payload   json.RawMessage     `json:"payload"`
	CreatedBy string              `json:"created_by"`
	CreatedAt time.Time           `json:"created_at"`
}

func StageConvert(rec dbmodels.EnforcementStage) StageView {
	return StageView{
		ID:        rec.ID,
		Kind:      rec.Kind,
		Payload:   json.RawMessage(rec.Payload),
		CreatedBy: rec.CreatedBy,
		CreatedAt: rec.CreatedAt,
	}
}

// NewStage marshals the snapshot of one workflow kind.
func NewStage(caseID, createdBy string, kind models.WorkflowKind, payload interface{}) (dbmodels.EnforcementStage, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return dbmodels.EnforcementStage{}, errors.Wrap(err, "stage snapshot marshal")
	}
	return dbmodels.EnforcementStage{
		BaseCaseModel: dbmodels.BaseCaseModel{CaseID: caseID},
		Kind:          kind,
		Payload:       dbmodels.StagePayload(body),
		CreatedBy:     createdBy,
	}, nil
}

type EvidenceView struct {
	ID          string    `json:"id"`
	FileName    string    `json:"file_name"`
	ContentType string    `json:"content_type"`
	Size        int64     `json:"size"`
	UploadedBy  string    `json:"uploaded_by"`
	CreatedAt   time.Time `json:"created_at"`
}

func EvidenceConvert(rec dbmodels.EvidenceFile) EvidenceView {
	return EvidenceView{
		ID:          rec.ID,
		FileName:    rec.FileName,
		ContentType: rec.ContentType,
		Size:        rec.Size,
		UploadedBy:  rec.UploadedBy,
		CreatedAt:   rec.CreatedAt,
	}
}

type CaseFilter struct {
	EmployeeID string              `json:"employee_id"`
	Types      []models.CaseType   `json:"types"`
	Statuses   []models.CaseStatus `json:"statuses"`
	OnlyOpen   bool                `json:"only_open"`
	Search     string              `json:"search"` // reference number or concern
	apimodels.Pagination
}

func (f CaseFilter) Validate() error {
	for _, t := range f.Types {
		if err := t.Validate(); err != nil {
			return err
		}
	}
	for _, s := range f.Statuses {
		if err := s.Validate(); err != nil {
			return err
		}
	}
	return nil
}

type KeyDate struct {
	Label     string    `json:"label"`
	Date      time.Time `json:"date"`
	Formatted string    `json:"formatted"`
}

func NewKeyDate(label string, d time.Time) KeyDate {
	return KeyDate{Label: label, Date: d, Formatted: deadline.FormatDate(d)}
}

type NoticePreview struct {
	Title    string    `json:"title"`
	Text     string    `json:"text"`
	KeyDates []KeyDate `json:"key_dates"`
}

package dbmodels

import (
	"database/sql/driver"
	"encoding/json"

	"childminder-backend/models"
)

// EnforcementStage is an immutable snapshot of the input captured by one workflow run.
type EnforcementStage struct {
	BaseCaseModel
	Kind      models.WorkflowKind `gorm:"type:varchar(50)"`
	Payload   StagePayload        `gorm:"type:jsonb"`
	CreatedBy string              `gorm:"type:varchar(255)"`
}

func (EnforcementStage) TableName() string {
	return "enforcement_stages"
}

type StagePayload json.RawMessage

func (j StagePayload) Value() (driver.Value, error) {
	if len(j) == 0 {
		return "{}", nil
	}
	return string(j), nil
}

func (j *StagePayload) Scan(value any) error {
	switch v := value.(type) {
	case []byte:
		*j = append((*j)[:0], v...)
	case string:
		*j = StagePayload(v)
	}
	return nil
}

func (j StagePayload) MarshalJSON() ([]byte, error) {
	if len(j) == 0 {
		return []byte("null"), nil
	}
	return j, nil
}

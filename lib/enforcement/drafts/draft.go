package draftshandler

import (
	"encoding/json"
	"sync"
	"time"

	"childminder-backend/models"
	enforcementapimodels "childminder-backend/models/api/enforcement"
	"github.com/pkg/errors"
)

type Kind string

const (
	KindSuspensionWarning Kind = "suspension_warning"
	KindCancellation      Kind = "cancellation"
	KindReview            Kind = "review"
	KindDecision          Kind = "decision"
)

func (k Kind) Validate() error {
	switch k {
	case KindSuspensionWarning, KindCancellation, KindReview, KindDecision:
		return nil
	}
	return errors.Wrapf(models.ErrValidation, "unknown workflow: %s", k)
}

// OnCase kinds act on an existing case, the others open a new one for a provider.
func (k Kind) OnCase() bool {
	return k == KindReview || k == KindDecision
}

// Draft is one operator's workflow in progress. Exactly one input is set, matching Kind.
type Draft struct {
	mu sync.Mutex

	ID        string
	Kind      Kind
	OwnerID   string
	Position  int
	Committed bool
	CaseID    string
	UpdatedAt time.Time

	SuspensionWarning *enforcementapimodels.SuspensionWarningInput
	Cancellation      *enforcementapimodels.CancellationInput
	Review            *enforcementapimodels.ReviewInput
	Decision          *enforcementapimodels.DecisionInput
}

func (d *Draft) input() interface{} {
	switch d.Kind {
	case KindSuspensionWarning:
		return d.SuspensionWarning
	case KindCancellation:
		return d.Cancellation
	case KindReview:
		return d.Review
	case KindDecision:
		return d.Decision
	}
	return nil
}

func (d *Draft) setInput(in interface{}) {
	switch v := in.(type) {
	case *enforcementapimodels.SuspensionWarningInput:
		d.SuspensionWarning = v
	case *enforcementapimodels.CancellationInput:
		d.Cancellation = v
	case *enforcementapimodels.ReviewInput:
		d.Review = v
	case *enforcementapimodels.DecisionInput:
		d.Decision = v
	}
}

func (d *Draft) emptyInput() interface{} {
	switch d.Kind {
	case KindSuspensionWarning:
		return &enforcementapimodels.SuspensionWarningInput{}
	case KindCancellation:
		return &enforcementapimodels.CancellationInput{}
	case KindReview:
		return &enforcementapimodels.ReviewInput{}
	case KindDecision:
		return &enforcementapimodels.DecisionInput{}
	}
	return nil
}

// copyInput returns a deep copy of the input that shares no slices with the draft.
func (d *Draft) copyInput() (interface{}, error) {
	data, err := json.Marshal(d.input())
	if err != nil {
		return nil, errors.Wrap(err, "draft input copy")
	}
	in := d.emptyInput()
	if err = json.Unmarshal(data, in); err != nil {
		return nil, errors.Wrap(err, "draft input copy")
	}
	return in, nil
}

// merge decodes data over a copy of the input and keeps it only when decoding succeeds.
func (d *Draft) merge(data json.RawMessage) error {
	in, err := d.copyInput()
	if err != nil {
		return err
	}
	if err = json.Unmarshal(data, in); err != nil {
		return errors.Wrap(models.ErrValidation, "invalid draft data: "+err.Error())
	}
	d.setInput(in)
	return nil
}

// pin restores the fields an update may not change.
func (d *Draft) pin(targetID string, version int) {
	switch d.Kind {
	case KindSuspensionWarning:
		d.SuspensionWarning.EmployeeID = targetID
	case KindCancellation:
		d.Cancellation.EmployeeID = targetID
	case KindReview:
		d.Review.CaseID = targetID
		d.Review.ExpectedVersion = version
	case KindDecision:
		d.Decision.CaseID = targetID
		d.Decision.ExpectedVersion = version
	}
}

func (d *Draft) target() (string, int) {
	switch d.Kind {
	case KindSuspensionWarning:
		return d.SuspensionWarning.EmployeeID, 0
	case KindCancellation:
		return d.Cancellation.EmployeeID, 0
	case KindReview:
		return d.Review.CaseID, d.Review.ExpectedVersion
	case KindDecision:
		return d.Decision.CaseID, d.Decision.ExpectedVersion
	}
	return "", 0
}

type DraftView struct {
	ID          string              `json:"id"`
	Kind        Kind                `json:"kind"`
	Step        string              `json:"step"`
	Steps       []string            `json:"steps"`
	Position    int                 `json:"position"`
	CanContinue bool                `json:"can_continue"`
	Errors      []models.FieldError `json:"errors,omitempty"` // why the current step can not be left
	Committed   bool                `json:"committed"`
	CaseID      string              `json:"case_id,omitempty"`
	Input       interface{}         `json:"input"`
	UpdatedAt   time.Time           `json:"updated_at"`
}

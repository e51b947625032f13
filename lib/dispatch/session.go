package dispatchhandler

import (
	"sync"
	"time"

	"childminder-backend/models"
	dispatchapimodels "childminder-backend/models/api/dispatch"
	enforcementapimodels "childminder-backend/models/api/enforcement"
)

// Session is one operator's pass over the recipients of a committed case.
type Session struct {
	mu sync.Mutex
	// sendMu keeps a single send in flight per session.
	sendMu sync.Mutex

	ID         string
	OwnerID    string
	Case       enforcementapimodels.CaseView
	Provider   providerInfo
	Recipients []*Recipient
	Closed     bool
}

type providerInfo struct {
	Name    string
	Address string
}

type Recipient struct {
	ID         string
	AgencyCode models.AgencyCode
	Name       string
	Detail     string
	Email      string
	Custom     bool
	Status     models.RecipientStatus
	Error      string
	SentAt     *time.Time
}

func (r *Recipient) view() dispatchapimodels.RecipientView {
	return dispatchapimodels.RecipientView{
		ID:         r.ID,
		AgencyCode: r.AgencyCode,
		Name:       r.Name,
		Detail:     r.Detail,
		Email:      r.Email,
		Custom:     r.Custom,
		Status:     r.Status,
		Error:      r.Error,
		SentAt:     r.SentAt,
	}
}

func (s *Session) recipient(id string) (*Recipient, error) {
	for _, r := range s.Recipients {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, models.NotFound("recipient")
}

// allSent is false for an empty list. Caller holds mu.
func (s *Session) allSent() bool {
	if len(s.Recipients) == 0 {
		return false
	}
	for _, r := range s.Recipients {
		if r.Status != models.RecipientSent {
			return false
		}
	}
	return true
}

// Caller holds mu.
func (s *Session) view() dispatchapimodels.SessionView {
	v := dispatchapimodels.SessionView{
		ID:         s.ID,
		CaseID:     s.Case.ID,
		Reference:  s.Case.ReferenceNumber,
		Recipients: make([]dispatchapimodels.RecipientView, 0, len(s.Recipients)),
		AllSent:    s.allSent(),
	}
	for _, r := range s.Recipients {
		if r.Status == models.RecipientSent {
			v.SentCount++
		}
		v.Recipients = append(v.Recipients, r.view())
	}
	return v
}

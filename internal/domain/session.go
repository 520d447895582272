package domain

import "time"

type SessionState string

const (
	SessionActive   SessionState = "ACTIVE"
	SessionComplete SessionState = "COMPLETE"
)

// StopReason records which stopping condition ended an assessment.
type StopReason string

const (
	StopMaxItems      StopReason = "max_items_reached"
	StopPrecision     StopReason = "precision_criteria_met"
	StopPoolExhausted StopReason = "item_pool_exhausted"
)

// Session is the aggregate root for one assessment run. It owns the
// administered-item set, the response history and the per-dimension
// estimates; the measurement engine itself holds no state between calls.
type Session struct {
	ID           string                      `json:"id"`
	UserID       string                      `json:"user_id"`
	State        SessionState                `json:"state"`
	StopReason   StopReason                  `json:"stop_reason,omitempty"`
	Administered []string                    `json:"administered"`
	Responses    []Response                  `json:"responses"`
	Estimates    map[Dimension]TraitEstimate `json:"estimates"`
	StartedAt    time.Time                   `json:"started_at"`
	CompletedAt  time.Time                   `json:"completed_at,omitempty"`
}

// HasAdministered reports whether the item was already given in this session.
// An item, once administered, must never be selected again.
func (s *Session) HasAdministered(itemID string) bool {
	for _, id := range s.Administered {
		if id == itemID {
			return true
		}
	}
	return false
}

// AdministeredSet returns the administered item ids as a lookup set.
func (s *Session) AdministeredSet() map[string]bool {
	set := make(map[string]bool, len(s.Administered))
	for _, id := range s.Administered {
		set[id] = true
	}
	return set
}

// Complete freezes the session with the given reason. Completion is terminal:
// a session never returns to ACTIVE and a second call is a no-op.
func (s *Session) Complete(reason StopReason, at time.Time) {
	if s.State == SessionComplete {
		return
	}
	s.State = SessionComplete
	s.StopReason = reason
	s.CompletedAt = at
}

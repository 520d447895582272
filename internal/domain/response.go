package domain

import (
	"errors"
	"time"
)

// ErrInvalidCategory marks a response category outside the item's 1..k scale.
// It is rejected at submission, never silently coerced.
var ErrInvalidCategory = errors.New("response category out of range")

// Response is one answered item. Responses are append-only events owned by
// their session and never mutated after creation.
type Response struct {
	ItemID    string    `json:"item_id"`
	Dimension Dimension `json:"dimension"`
	Category  int       `json:"category"`
	At        time.Time `json:"at"`
}

// Package itembank loads and validates the calibrated item catalog. A Bank is
// immutable after construction and safe to share across concurrent sessions.
package itembank

import (
	"errors"
	"fmt"

	"traitcat/internal/domain"
)

// likertCategories is the response scale the calibrated banks use. The model
// code handles any k >= 2; the bank pins k so mixed scales cannot sneak in.
const likertCategories = 5

var (
	ErrEmptyBank     = errors.New("item bank has no items")
	ErrDuplicateItem = errors.New("duplicate item id")
	ErrWrongScale    = errors.New("item does not use the 5-category scale")
)

// Bank is an immutable catalog of assessment items in stable load order.
type Bank struct {
	items []domain.Item
	byID  map[string]int
}

// New validates every item and builds the bank. Ill-formed items fail here,
// at load time, never during estimation.
func New(items []domain.Item) (*Bank, error) {
	if len(items) == 0 {
		return nil, ErrEmptyBank
	}
	b := &Bank{
		items: make([]domain.Item, 0, len(items)),
		byID:  make(map[string]int, len(items)),
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, err
		}
		if item.Categories() != likertCategories {
			return nil, fmt.Errorf("item %s: k=%d: %w", item.ItemID, item.Categories(), ErrWrongScale)
		}
		if _, exists := b.byID[item.ItemID]; exists {
			return nil, fmt.Errorf("item %s: %w", item.ItemID, ErrDuplicateItem)
		}
		b.byID[item.ItemID] = len(b.items)
		b.items = append(b.items, item)
	}
	return b, nil
}

// Items returns the items in stable bank order. The returned slice is a copy;
// the bank itself is never mutated after New.
func (b *Bank) Items() []domain.Item {
	out := make([]domain.Item, len(b.items))
	copy(out, b.items)
	return out
}

// Get looks an item up by id.
func (b *Bank) Get(itemID string) (domain.Item, bool) {
	idx, ok := b.byID[itemID]
	if !ok {
		return domain.Item{}, false
	}
	return b.items[idx], true
}

func (b *Bank) Len() int {
	return len(b.items)
}

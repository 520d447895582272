package domain

import (
	"errors"
	"testing"
	"time"
)

func TestItemValidate(t *testing.T) {
	valid := Item{
		ItemID:         "RISK_001",
		Dimension:      RiskTaking,
		Discrimination: 1.3,
		Thresholds:     []float64{-1.0, -0.2, 0.6, 1.4},
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid item rejected: %v", err)
	}

	cases := []struct {
		name    string
		mutate  func(*Item)
		wantErr error
	}{
		{"empty id", func(i *Item) { i.ItemID = "" }, ErrMissingItemID},
		{"bad dimension", func(i *Item) { i.Dimension = "stamina" }, ErrUnknownDimension},
		{"zero a", func(i *Item) { i.Discrimination = 0 }, ErrNonPositiveDiscrimination},
		{"no thresholds", func(i *Item) { i.Thresholds = nil }, ErrNoThresholds},
		{"equal thresholds", func(i *Item) { i.Thresholds = []float64{0.0, 0.0} }, ErrThresholdOrder},
	}
	for _, tc := range cases {
		item := valid
		tc.mutate(&item)
		if err := item.Validate(); !errors.Is(err, tc.wantErr) {
			t.Fatalf("%s: got %v, want %v", tc.name, err, tc.wantErr)
		}
	}
}

func TestItemCategories(t *testing.T) {
	item := Item{Thresholds: []float64{-1.0, 0.0, 0.5, 1.0}}
	if k := item.Categories(); k != 5 {
		t.Fatalf("k = %d, want 5", k)
	}
}

func TestSessionCompleteIsTerminal(t *testing.T) {
	sess := &Session{State: SessionActive}
	first := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	sess.Complete(StopPrecision, first)

	if sess.State != SessionComplete || sess.StopReason != StopPrecision {
		t.Fatalf("got %s/%s", sess.State, sess.StopReason)
	}

	// A later firing must not rewrite the outcome.
	sess.Complete(StopMaxItems, first.Add(time.Minute))
	if sess.StopReason != StopPrecision || !sess.CompletedAt.Equal(first) {
		t.Fatalf("completion rewritten: %s at %s", sess.StopReason, sess.CompletedAt)
	}
}

func TestSessionAdministeredSet(t *testing.T) {
	sess := &Session{Administered: []string{"A", "B"}}
	if !sess.HasAdministered("A") || sess.HasAdministered("C") {
		t.Fatal("administered lookup broken")
	}
	set := sess.AdministeredSet()
	if len(set) != 2 || !set["B"] {
		t.Fatalf("set %v", set)
	}
}

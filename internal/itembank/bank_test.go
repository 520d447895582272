package itembank

import (
	"errors"
	"path/filepath"
	"testing"

	"traitcat/internal/domain"
)

func validItem(id string) domain.Item {
	return domain.Item{
		ItemID:         id,
		Dimension:      domain.RiskTaking,
		Discrimination: 1.3,
		Thresholds:     []float64{-1.0, -0.2, 0.6, 1.4},
	}
}

func TestNewRejectsIllFormedItems(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*domain.Item)
		wantErr error
	}{
		{"missing id", func(i *domain.Item) { i.ItemID = "" }, domain.ErrMissingItemID},
		{"unknown dimension", func(i *domain.Item) { i.Dimension = "charisma" }, domain.ErrUnknownDimension},
		{"zero discrimination", func(i *domain.Item) { i.Discrimination = 0 }, domain.ErrNonPositiveDiscrimination},
		{"negative discrimination", func(i *domain.Item) { i.Discrimination = -1.2 }, domain.ErrNonPositiveDiscrimination},
		{"no thresholds", func(i *domain.Item) { i.Thresholds = nil }, domain.ErrNoThresholds},
		{"unordered thresholds", func(i *domain.Item) { i.Thresholds = []float64{-1.0, 0.6, 0.6, 1.4} }, domain.ErrThresholdOrder},
		{"decreasing thresholds", func(i *domain.Item) { i.Thresholds = []float64{1.4, 0.6, -0.2, -1.0} }, domain.ErrThresholdOrder},
		{"wrong scale", func(i *domain.Item) { i.Thresholds = []float64{-1.0, 0.0, 1.0} }, ErrWrongScale},
	}
	for _, tc := range cases {
		item := validItem("ITEM_1")
		tc.mutate(&item)
		if _, err := New([]domain.Item{item}); !errors.Is(err, tc.wantErr) {
			t.Fatalf("%s: got %v, want %v", tc.name, err, tc.wantErr)
		}
	}
}

func TestNewRejectsDuplicatesAndEmpty(t *testing.T) {
	if _, err := New(nil); !errors.Is(err, ErrEmptyBank) {
		t.Fatalf("empty bank: got %v", err)
	}
	if _, err := New([]domain.Item{validItem("ITEM_1"), validItem("ITEM_1")}); !errors.Is(err, ErrDuplicateItem) {
		t.Fatalf("duplicate id: got %v", err)
	}
}

func TestLoadBankFile(t *testing.T) {
	bank, err := Load(filepath.Join("testdata", "bank.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if bank.Len() != 7 {
		t.Fatalf("loaded %d items, want 7", bank.Len())
	}

	items := bank.Items()
	if items[0].ItemID != "INNOV_101" {
		t.Fatalf("first item %s, bank order not stable", items[0].ItemID)
	}

	item, ok := bank.Get("RISK_101")
	if !ok {
		t.Fatal("RISK_101 not found")
	}
	if item.Dimension != domain.RiskTaking || item.Discrimination != 1.3 {
		t.Fatalf("unexpected item: %+v", item)
	}
	if _, ok := bank.Get("NOPE"); ok {
		t.Fatal("found an item that is not in the bank")
	}
}

func TestItemsReturnsACopy(t *testing.T) {
	bank := Sample()
	items := bank.Items()
	original := items[0].ItemID
	items[0].ItemID = "MUTATED"
	if fresh := bank.Items(); fresh[0].ItemID != original {
		t.Fatalf("bank mutated through Items(): %s", fresh[0].ItemID)
	}
}

func TestSampleBankCoversAllDimensions(t *testing.T) {
	bank := Sample()
	seen := make(map[domain.Dimension]bool)
	for _, item := range bank.Items() {
		seen[item.Dimension] = true
	}
	for _, dim := range domain.Dimensions {
		if !seen[dim] {
			t.Fatalf("sample bank has no item for %s", dim)
		}
	}
}

func TestParseRejectsBadYAML(t *testing.T) {
	if _, err := Parse([]byte("items: [not a mapping")); err == nil {
		t.Fatal("expected a decode error")
	}
}

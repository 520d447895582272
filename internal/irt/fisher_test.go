package irt

import (
	"testing"

	"traitcat/internal/domain"
)

func TestInformationNonNegative(t *testing.T) {
	item := testItem()
	for theta := -4.0; theta <= 4.0; theta += 0.25 {
		if info := Information(theta, item); info < infoFloor {
			t.Fatalf("theta %.2f: information %g below floor", theta, info)
		}
	}
}

func TestInformationPeaksAtThreshold(t *testing.T) {
	item := domain.Item{
		ItemID:         "PEAK_001",
		Dimension:      domain.RiskTaking,
		Discrimination: 1.5,
		Thresholds:     []float64{0.0},
	}
	atThreshold := Information(0.0, item)
	for theta := -3.0; theta <= 3.0; theta += 0.25 {
		if info := Information(theta, item); info > atThreshold {
			t.Fatalf("information %g at theta %.2f exceeds %g at the threshold", info, theta, atThreshold)
		}
	}
	if far := Information(2.5, item); far >= atThreshold {
		t.Fatalf("information should decay away from the threshold: far=%g peak=%g", far, atThreshold)
	}
}

func TestInformationDecaysFarFromThresholds(t *testing.T) {
	item := testItem()
	near := Information(0.0, item)
	far := Information(3.0, item)
	if far >= near {
		t.Fatalf("information at theta 3.0 (%g) should be below theta 0.0 (%g)", far, near)
	}
}

package cat

import "traitcat/internal/domain"

// StopRule decides after each response whether administration continues.
// Conditions fire in priority order: the item ceiling, the item floor, the
// precision target, pool exhaustion. The floor is checked before precision so
// a lucky early response sequence cannot end a session prematurely.
type StopRule struct {
	MaxItems int
	MinItems int
	TargetSE float64

	// Important restricts the precision check to the listed dimensions.
	// Empty means every estimated dimension must reach the target.
	Important []domain.Dimension
}

// Decision is the stop-rule outcome for one evaluation.
type Decision struct {
	Stop   bool
	Reason domain.StopReason
}

// Evaluate applies the stop conditions to the current session snapshot.
// administered is the number of items given so far; remaining is the size of
// the not-yet-administered pool.
func (r StopRule) Evaluate(administered int, estimates map[domain.Dimension]domain.TraitEstimate, remaining int) Decision {
	if administered >= r.MaxItems {
		return Decision{Stop: true, Reason: domain.StopMaxItems}
	}
	if administered >= r.MinItems && r.precisionMet(estimates) {
		return Decision{Stop: true, Reason: domain.StopPrecision}
	}
	if remaining <= 0 {
		return Decision{Stop: true, Reason: domain.StopPoolExhausted}
	}
	return Decision{}
}

func (r StopRule) precisionMet(estimates map[domain.Dimension]domain.TraitEstimate) bool {
	if len(estimates) == 0 {
		return false
	}
	if len(r.Important) > 0 {
		for _, dim := range r.Important {
			est, ok := estimates[dim]
			if !ok || est.SE > r.TargetSE {
				return false
			}
		}
		return true
	}
	for _, est := range estimates {
		if est.SE > r.TargetSE {
			return false
		}
	}
	return true
}

// internal/schedule/rules.go
//
// The four validation rules. Each one is a pure scan over the current
// board state and is re-evaluated from scratch on every render; with 16
// slots there is nothing worth caching.

package schedule

// Teachers are balanced when they hold between loadMin and loadMax slots.
const (
	loadMin = 5
	loadMax = 6
)

// RuleResult is one line of the validation report.
type RuleResult struct {
	Description string
	Passed      bool
}

// Report aggregates the four rule results in display order. Imbalanced
// carries the load-balance rule's detail map (teacher name -> slot
// count) for teachers outside [loadMin, loadMax].
type Report struct {
	Results    []RuleResult
	Imbalanced map[string]int
}

// Check evaluates all four rules against the current board.
func (b *Board) Check() Report {
	imbalanced := b.ImbalancedTeachers()
	return Report{
		Results: []RuleResult{
			{
				Description: "All units in all classes have an assigned teacher",
				Passed:      b.AllAssigned(),
			},
			{
				Description: "Every class has a different teacher across Micro and Macro",
				Passed:      b.DistinctWithinClass(),
			},
			{
				Description: "Every teacher has 5 or 6 classes",
				Passed:      len(imbalanced) == 0,
			},
			{
				Description: "No teacher has a class in all four combinations (Y12 + Y13, Macro and Micro)",
				Passed:      b.NoTeacherInAllCombinations(),
			},
		},
		Imbalanced: imbalanced,
	}
}

// AllAssigned reports whether every slot holds a real teacher.
func (b *Board) AllAssigned() bool {
	for _, cls := range b.classes {
		if !b.Assigned(cls, UnitMicro) || !b.Assigned(cls, UnitMacro) {
			return false
		}
	}
	return true
}

// DistinctWithinClass reports whether every class has different teachers
// on its Micro and Macro units. The unassigned sentinel is compared like
// any other value, so a class with both units unassigned fails too.
func (b *Board) DistinctWithinClass() bool {
	for _, cls := range b.classes {
		if b.index(Slot{Class: cls, Unit: UnitMicro}) == b.index(Slot{Class: cls, Unit: UnitMacro}) {
			return false
		}
	}
	return true
}

// LoadCounts tallies assigned slots per ring entry, the unassigned
// sentinel included.
func (b *Board) LoadCounts() map[string]int {
	counts := make(map[string]int, len(b.ring))
	for _, t := range b.ring {
		counts[t.Name] = 0
	}
	for _, idx := range b.slots {
		counts[b.ring[idx].Name]++
	}
	return counts
}

// ImbalancedTeachers returns the ring entries whose slot count falls
// outside [loadMin, loadMax]. An empty map means the rule passes. Until
// the schedule is complete the unassigned sentinel will usually appear
// here; that is surfaced information, not noise.
func (b *Board) ImbalancedTeachers() map[string]int {
	invalid := make(map[string]int)
	for name, count := range b.LoadCounts() {
		if count < loadMin || count > loadMax {
			invalid[name] = count
		}
	}
	return invalid
}

// NoTeacherInAllCombinations reports whether no teacher covers all four
// (year group, unit) combinations, i.e. {Y12, Y13} x {Micro, Macro}.
// Empty slots are nobody's coverage, so the unassigned sentinel is left
// out; a fresh board passes.
func (b *Board) NoTeacherInAllCombinations() bool {
	type combo struct {
		year string
		unit Unit
	}
	covered := make(map[string]map[combo]struct{}, len(b.ring))
	for _, t := range b.ring[1:] {
		covered[t.Name] = make(map[combo]struct{}, 4)
	}
	for slot, idx := range b.slots {
		if idx == 0 {
			continue
		}
		name := b.ring[idx].Name
		covered[name][combo{year: YearGroup(slot.Class), unit: slot.Unit}] = struct{}{}
	}
	for _, combos := range covered {
		if len(combos) >= 4 {
			return false
		}
	}
	return true
}

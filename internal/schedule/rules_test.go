package schedule

import "testing"

// ringIndex resolves a teacher name to its position in the test ring.
func ringIndex(t *testing.T, b *Board, name string) int {
	t.Helper()
	for i, teacher := range b.Ring() {
		if teacher.Name == name {
			return i
		}
	}
	t.Fatalf("teacher %s not in ring", name)
	return -1
}

func assign(t *testing.T, b *Board, class string, unit Unit, name string) {
	t.Helper()
	b.Set(class, unit, ringIndex(t, b, name))
}

func TestAllAssignedFalseOnFreshBoard(t *testing.T) {
	b := newTestBoard()
	if b.AllAssigned() {
		t.Fatalf("fresh board must not pass the all-assigned rule")
	}
}

func TestAllAssignedTrueOnlyWhenEverySlotFilled(t *testing.T) {
	b := newTestBoard()
	for _, cls := range b.Classes() {
		assign(t, b, cls, UnitMicro, "CFE")
		assign(t, b, cls, UnitMacro, "AHA")
	}
	if !b.AllAssigned() {
		t.Fatalf("fully assigned board must pass the all-assigned rule")
	}
	assign(t, b, "Y12e", UnitMacro, "None")
	if b.AllAssigned() {
		t.Fatalf("one unassigned slot must fail the all-assigned rule")
	}
}

func TestDistinctWithinClassTreatsUnassignedAsEqual(t *testing.T) {
	b := newTestBoard()
	// Both units unassigned compare equal, so an untouched class fails.
	if b.DistinctWithinClass() {
		t.Fatalf("fresh board must fail distinct-within-class")
	}
	for _, cls := range b.Classes() {
		assign(t, b, cls, UnitMicro, "CFE")
		assign(t, b, cls, UnitMacro, "AHA")
	}
	if !b.DistinctWithinClass() {
		t.Fatalf("distinct teachers per class must pass")
	}
	assign(t, b, "Y13b", UnitMacro, "CFE")
	if b.DistinctWithinClass() {
		t.Fatalf("matching teachers within a class must fail")
	}
}

func TestLoadCountsSingleTeacherTakesAll(t *testing.T) {
	b := newTestBoard()
	for _, cls := range b.Classes() {
		assign(t, b, cls, UnitMicro, "TOB")
		assign(t, b, cls, UnitMacro, "TOB")
	}
	counts := b.LoadCounts()
	if counts["TOB"] != 16 {
		t.Fatalf("TOB count = %d, want 16", counts["TOB"])
	}
	invalid := b.ImbalancedTeachers()
	if got, ok := invalid["TOB"]; !ok || got != 16 {
		t.Fatalf("TOB must be flagged with count 16, got %v", invalid)
	}
	// CFE, AHA and None all sit at zero and are flagged too.
	for _, name := range []string{"CFE", "AHA", "None"} {
		if got, ok := invalid[name]; !ok || got != 0 {
			t.Fatalf("%s must be flagged with count 0, got %v", name, invalid)
		}
	}
}

func TestLoadCountsEvenSplitStillImbalanced(t *testing.T) {
	b := newTestBoard()
	for _, cls := range b.Classes() {
		assign(t, b, cls, UnitMicro, "CFE")
		assign(t, b, cls, UnitMacro, "AHA")
	}
	invalid := b.ImbalancedTeachers()
	for _, name := range []string{"CFE", "AHA"} {
		if got, ok := invalid[name]; !ok || got != 8 {
			t.Fatalf("%s must be flagged with count 8, got %v", name, invalid)
		}
	}
	if got, ok := invalid["None"]; !ok || got != 0 {
		t.Fatalf("None must be flagged with count 0, got %v", invalid)
	}
	if _, ok := invalid["TOB"]; !ok {
		t.Fatalf("TOB at 0 must be flagged, got %v", invalid)
	}
}

func TestLoadBalancePassesAtFiveOrSix(t *testing.T) {
	// 16 slots split 6/5/5 across the three teachers leaves None at 0,
	// so None is the only flagged entry.
	b := newTestBoard()
	names := []string{
		"CFE", "AHA", "CFE", "TOB", "CFE", "AHA", "CFE", "TOB",
		"CFE", "AHA", "CFE", "TOB", "AHA", "TOB", "AHA", "TOB",
	}
	i := 0
	for _, cls := range b.Classes() {
		for _, unit := range Units {
			assign(t, b, cls, unit, names[i])
			i++
		}
	}
	invalid := b.ImbalancedTeachers()
	if len(invalid) != 1 {
		t.Fatalf("expected only None flagged, got %v", invalid)
	}
	if got := invalid["None"]; got != 0 {
		t.Fatalf("None count = %d, want 0", got)
	}
}

func TestNoTeacherInAllCombinations(t *testing.T) {
	b := newTestBoard()
	if !b.NoTeacherInAllCombinations() {
		t.Fatalf("fresh board must pass the combinations rule")
	}
	// Give CFE all four (year, unit) combinations.
	assign(t, b, "Y13a", UnitMicro, "CFE")
	assign(t, b, "Y13b", UnitMacro, "CFE")
	assign(t, b, "Y12a", UnitMicro, "CFE")
	assign(t, b, "Y12b", UnitMacro, "CFE")
	if b.NoTeacherInAllCombinations() {
		t.Fatalf("teacher covering all four combinations must fail the rule")
	}
	// Removing any one combination restores the rule.
	assign(t, b, "Y12b", UnitMacro, "None")
	if !b.NoTeacherInAllCombinations() {
		t.Fatalf("three combinations must pass the rule")
	}
}

func TestUnassignedSlotsDoNotCountAsCoverage(t *testing.T) {
	// The sentinel spans all four (year, unit) combinations whenever the
	// schedule is incomplete; that must never fail the rule on its own.
	b := newTestBoard()
	if !b.NoTeacherInAllCombinations() {
		t.Fatalf("all-unassigned board must pass the combinations rule")
	}
	// One real teacher at three combinations, everything else empty:
	// None still covers all four, the rule still passes.
	assign(t, b, "Y13a", UnitMicro, "AHA")
	assign(t, b, "Y13b", UnitMacro, "AHA")
	assign(t, b, "Y12a", UnitMicro, "AHA")
	if !b.NoTeacherInAllCombinations() {
		t.Fatalf("unassigned coverage must not fail the combinations rule")
	}
	assign(t, b, "Y12b", UnitMacro, "AHA")
	if b.NoTeacherInAllCombinations() {
		t.Fatalf("AHA covering all four combinations must fail the rule")
	}
}

func TestCheckReportOrderAndBreakdown(t *testing.T) {
	b := newTestBoard()
	report := b.Check()
	if len(report.Results) != 4 {
		t.Fatalf("report has %d results, want 4", len(report.Results))
	}
	wantPassed := []bool{false, false, false, true}
	for i, result := range report.Results {
		if result.Passed != wantPassed[i] {
			t.Fatalf("rule %d passed = %v, want %v (%s)", i+1, result.Passed, wantPassed[i], result.Description)
		}
	}
	// On a fresh board None holds all 16 slots and everyone else zero.
	if got := report.Imbalanced["None"]; got != 16 {
		t.Fatalf("None breakdown = %d, want 16", got)
	}
	if len(report.Imbalanced) != 4 {
		t.Fatalf("expected every ring entry flagged on a fresh board, got %v", report.Imbalanced)
	}
}

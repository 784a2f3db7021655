package entities

import "testing"

func TestSlotCapacityMinIsElementwise(t *testing.T) {
	a := SlotCapacity{QB: 1, RB: 3, WR: 2, TE: 0, Flex: 2, K: 1, DST: 0}
	b := SlotCapacity{QB: 2, RB: 1, WR: 2, TE: 1, Flex: 0, K: 0, DST: 1}

	want := SlotCapacity{QB: 1, RB: 1, WR: 2, TE: 0, Flex: 0, K: 0, DST: 0}
	if got := a.Min(b); got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
	if a.Min(b) != b.Min(a) {
		t.Fatalf("min must be symmetric")
	}
}

func TestEffectiveCapacityNegotiatesBothSides(t *testing.T) {
	matchup := Matchup{
		CapacityA: SlotCapacity{QB: 1, RB: 2, WR: 3, TE: 1, Flex: 1, K: 1, DST: 1},
		CapacityB: SlotCapacity{QB: 1, RB: 1, WR: 2, TE: 2, Flex: 1, K: 0, DST: 1},
	}

	effective := matchup.EffectiveCapacity()
	want := SlotCapacity{QB: 1, RB: 1, WR: 2, TE: 1, Flex: 1, K: 0, DST: 1}
	if effective != want {
		t.Fatalf("expected %+v, got %+v", want, effective)
	}
	for _, position := range DistributionOrder() {
		if effective.ValueFor(position) > matchup.CapacityA.ValueFor(position) ||
			effective.ValueFor(position) > matchup.CapacityB.ValueFor(position) {
			t.Fatalf("effective %s capacity exceeds a side's request", position)
		}
	}
}

package domain

import (
	"reflect"
	"testing"
)

func TestNewCellHasEverything(t *testing.T) {
	c := NewCell()
	if c.IsFixed() {
		t.Fatal("new cell should be open")
	}
	if c.Possibilities() != 9 {
		t.Fatalf("possibilities = %d, want 9", c.Possibilities())
	}
	for v := uint8(1); v <= 9; v++ {
		if !c.Has(v) {
			t.Fatalf("new cell missing %d", v)
		}
	}
}

func TestFixedCell(t *testing.T) {
	c := FixedCell(4)
	if !c.IsFixed() || c.Value() != 4 {
		t.Fatalf("fixed cell = %+v", c)
	}
	if c.Possibilities() != 0 {
		t.Fatalf("fixed cell possibilities = %d, want 0", c.Possibilities())
	}
	if !c.Has(4) || c.Has(5) {
		t.Fatal("fixed cell membership wrong")
	}
	if c.Values() != nil {
		t.Fatalf("fixed cell values = %v, want none", c.Values())
	}
	if c.Remove(4) {
		t.Fatal("removal from a fixed cell must fail")
	}
}

func TestRemove(t *testing.T) {
	c := NewCell()
	if !c.Remove(3) {
		t.Fatal("remove from open cell must succeed")
	}
	if c.Has(3) || c.Possibilities() != 8 {
		t.Fatalf("after remove: has=%v n=%d", c.Has(3), c.Possibilities())
	}
	// removing an absent value is a successful no-op
	if !c.Remove(3) {
		t.Fatal("re-remove must still succeed")
	}
	if c.Possibilities() != 8 {
		t.Fatalf("no-op remove changed count to %d", c.Possibilities())
	}
}

func TestRemoveNeverAddsValues(t *testing.T) {
	c := PossibleCell(1, 5, 9)
	before := c.Values()
	c.Remove(5)
	for _, v := range c.Values() {
		found := false
		for _, b := range before {
			if b == v {
				found = true
			}
		}
		if !found {
			t.Fatalf("value %d appeared from nowhere", v)
		}
	}
}

func TestRemoveAll(t *testing.T) {
	cases := []struct {
		name    string
		cell    Cell
		other   Cell
		changed bool
		left    []uint8
	}{
		{"pair from full", NewCell(), PossibleCell(1, 2), true, []uint8{3, 4, 5, 6, 7, 8, 9}},
		{"disjoint", PossibleCell(1, 2), PossibleCell(8, 9), false, []uint8{1, 2}},
		{"fixed other acts as singleton", NewCell(), FixedCell(7), true, []uint8{1, 2, 3, 4, 5, 6, 8, 9}},
		{"fixed target untouched", FixedCell(3), PossibleCell(3, 4), false, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := tc.cell
			if got := c.RemoveAll(tc.other); got != tc.changed {
				t.Fatalf("changed = %v, want %v", got, tc.changed)
			}
			if got := c.Values(); !reflect.DeepEqual(got, tc.left) {
				t.Fatalf("values = %v, want %v", got, tc.left)
			}
		})
	}
}

func TestIntersect(t *testing.T) {
	a := PossibleCell(1, 2, 3)
	b := PossibleCell(2, 3, 4)
	got := a.Intersect(b).Values()
	if !reflect.DeepEqual(got, []uint8{2, 3}) {
		t.Fatalf("intersect = %v, want [2 3]", got)
	}
	// a fixed cell intersects as its singleton set
	got = FixedCell(3).Intersect(b).Values()
	if !reflect.DeepEqual(got, []uint8{3}) {
		t.Fatalf("fixed intersect = %v, want [3]", got)
	}
}

func TestValuesOrderedAndRestartable(t *testing.T) {
	c := PossibleCell(9, 1, 5)
	want := []uint8{1, 5, 9}
	if got := c.Values(); !reflect.DeepEqual(got, want) {
		t.Fatalf("values = %v, want %v", got, want)
	}
	// a second enumeration sees the same sequence
	if got := c.Values(); !reflect.DeepEqual(got, want) {
		t.Fatalf("re-enumeration = %v, want %v", got, want)
	}
}

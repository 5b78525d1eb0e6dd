// internal/schedule/board.go
//
// The Board is the in-memory assignment state for one dashboard session:
// every (class, unit) slot maps to an entry in the teacher ring. The key
// domain is fixed when the board is built and never changes afterwards.

package schedule

import (
	"fmt"
	"strings"
)

// Unit is one of the two course components every class studies.
type Unit int

const (
	UnitMicro Unit = iota
	UnitMacro
)

// Units lists both unit kinds in cycle-friendly order.
var Units = []Unit{UnitMicro, UnitMacro}

func (u Unit) String() string {
	switch u {
	case UnitMicro:
		return "Micro"
	case UnitMacro:
		return "Macro"
	}
	return fmt.Sprintf("Unit(%d)", int(u))
}

// Teacher is one entry of the assignment ring. Index 0 of the ring is
// the unassigned sentinel ("None"), which behaves like any other teacher
// for cycling and counting purposes.
type Teacher struct {
	Name  string
	Color string
}

// Slot identifies a single assignable cell on the board.
type Slot struct {
	Class string
	Unit  Unit
}

func (s Slot) String() string {
	return fmt.Sprintf("%s %s", s.Class, s.Unit)
}

// Board holds one session's assignments. It is not safe for concurrent
// use; the TUI event loop serializes all access.
type Board struct {
	classes []string
	ring    []Teacher
	slots   map[Slot]int
}

// NewBoard builds a board with every slot set to the ring's first entry.
func NewBoard(classes []string, ring []Teacher) *Board {
	b := &Board{
		classes: append([]string(nil), classes...),
		ring:    append([]Teacher(nil), ring...),
		slots:   make(map[Slot]int, len(classes)*len(Units)),
	}
	for _, cls := range b.classes {
		for _, unit := range Units {
			b.slots[Slot{Class: cls, Unit: unit}] = 0
		}
	}
	return b
}

// Classes returns the class identifiers in display order.
func (b *Board) Classes() []string {
	return b.classes
}

// Ring returns the teacher cycle order, unassigned sentinel first.
func (b *Board) Ring() []Teacher {
	return b.ring
}

// Unassigned returns the sentinel entry of the ring.
func (b *Board) Unassigned() Teacher {
	return b.ring[0]
}

// Teacher returns the teacher currently assigned to a slot.
func (b *Board) Teacher(class string, unit Unit) Teacher {
	return b.ring[b.index(Slot{Class: class, Unit: unit})]
}

// Assigned reports whether a slot holds a real teacher rather than the
// unassigned sentinel.
func (b *Board) Assigned(class string, unit Unit) bool {
	return b.index(Slot{Class: class, Unit: unit}) != 0
}

// Set assigns a ring entry to a slot.
func (b *Board) Set(class string, unit Unit, ringIndex int) {
	slot := Slot{Class: class, Unit: unit}
	b.index(slot) // fail fast on an unknown slot before writing
	if ringIndex < 0 || ringIndex >= len(b.ring) {
		panic(fmt.Sprintf("schedule: ring index %d out of range for %s", ringIndex, slot))
	}
	b.slots[slot] = ringIndex
}

// Cycle advances a slot to the next ring entry, wrapping around, and
// returns the newly assigned teacher. Cycling is a permutation whose
// period equals the ring length.
func (b *Board) Cycle(class string, unit Unit) Teacher {
	slot := Slot{Class: class, Unit: unit}
	next := (b.index(slot) + 1) % len(b.ring)
	b.slots[slot] = next
	return b.ring[next]
}

// index resolves a slot or panics. The slot domain is closed at
// construction, so a miss is a programming error, not user input.
func (b *Board) index(slot Slot) int {
	idx, ok := b.slots[slot]
	if !ok {
		panic(fmt.Sprintf("schedule: unknown slot %s", slot))
	}
	return idx
}

// YearGroup derives the year-group label from a class identifier by
// trimming the trailing section letters: Y13a -> Y13, Y12e -> Y12.
func YearGroup(class string) string {
	return strings.TrimRight(class, "abcdefghijklmnopqrstuvwxyz")
}

package attr

import "fmt"

// Key identifies a numeric attribute. Keys are opaque to the store; their
// meaning is a convention shared with the catalog (see package data).
type Key int32

// Kind defines how a modifier takes part in resolution.
type Kind int8

const (
	PreAdd   Kind = iota + 1 // flat addition before multiplication
	PostAdd                  // flat addition after multiplication
	Multiply                 // multiplicative factor, optionally stacking-penalized
	Force                    // absolute final value, suppresses everything else
	Override                 // replaces the base value used as starting point
)

func (k Kind) String() string {
	switch k {
	case PreAdd:
		return "preAdd"
	case PostAdd:
		return "postAdd"
	case Multiply:
		return "multiply"
	case Force:
		return "force"
	case Override:
		return "override"
	default:
		return fmt.Sprintf("Kind(%d)", int8(k))
	}
}

// Modifier is a single instruction altering one attribute.
// Group is only meaningful for Multiply: modifiers sharing a non-empty group
// on the same attribute receive diminishing returns.
type Modifier struct {
	Value float64
	Kind  Kind
	Group string
}

// Constructors for the common cases.

func NewPreAdd(v float64) Modifier  { return Modifier{Value: v, Kind: PreAdd} }
func NewPostAdd(v float64) Modifier { return Modifier{Value: v, Kind: PostAdd} }
func NewForce(v float64) Modifier   { return Modifier{Value: v, Kind: Force} }

func NewOverride(v float64) Modifier { return Modifier{Value: v, Kind: Override} }

// NewMultiply returns an ungrouped multiplier (full effect, no penalty).
func NewMultiply(v float64) Modifier { return Modifier{Value: v, Kind: Multiply} }

// NewStacked returns a multiplier that shares the diminishing-returns group.
func NewStacked(v float64, group string) Modifier {
	return Modifier{Value: v, Kind: Multiply, Group: group}
}

// Percent converts a percentage bonus (e.g. 10 or -5) into a multiplier (1.10, 0.95).
func Percent(pct float64) float64 {
	return 1 + pct/100
}

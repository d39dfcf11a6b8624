// Package style is the StyleModel: ~120 named CSS-like properties, each a
// cascade-state sum type, plus merge_from/resolve/compute_lengths per
// spec.md §4.1.
package style

// CascadeState is the sum-type tag every property value carries in an
// unresolved Style: Initial, Inherit, Unset, or a concrete Value.
// ENUM(initial, inherit, unset, value)
type CascadeState int

// Inheriting tells resolve how an Unset property behaves: Unset acts as
// Inherit when the property's initial inheritance is inheriting, else as
// Initial (spec.md §4.1's resolve contract).
type Inheriting bool

const (
	NotInherited Inheriting = false
	Inherited    Inheriting = true
)

// Prop is one property slot: a cascade state plus, when State == StateValue,
// the concrete value. T is the property's value domain (Color, Length,
// Display, a GradientList, …).
type Prop[T any] struct {
	State CascadeState
	Val   T
}

// ValueOf constructs a concrete Value(v) property.
func ValueOf[T any](v T) Prop[T] { return Prop[T]{State: StateValue, Val: v} }

// InitialProp constructs an Initial property.
func InitialProp[T any]() Prop[T] { return Prop[T]{State: StateInitial} }

// InheritProp constructs an Inherit property.
func InheritProp[T any]() Prop[T] { return Prop[T]{State: StateInherit} }

// UnsetProp constructs an Unset property.
func UnsetProp[T any]() Prop[T] { return Prop[T]{State: StateUnset} }

// IsSet reports whether the property carries anything other than Unset —
// i.e. whether merge_from should treat it as "written" at this layer.
func (p Prop[T]) IsSet() bool { return p.State != StateUnset }

// mergeProp implements merge_from for a single non-shorthand longhand:
// overlay `high` onto `low` at the same cascade layer. When `high` is Unset
// it contributes nothing and `low` passes through unchanged; otherwise
// `high` wins outright (spec.md §4.1: "When a longhand in `high` is
// `Value(v)`, it overrides both the shorthand and longhand from `low`" —
// the same replace-outright rule applies to Initial/Inherit/Unset writes
// at the higher layer, since writing `initial`/`inherit` explicitly is
// itself an overriding declaration, distinct from never having written the
// property at all).
func mergeProp[T any](low, high Prop[T]) Prop[T] {
	if high.State == StateUnset {
		return low
	}
	return high
}

// resolveProp implements the resolve contract for one property: Value(v)
// uses v; Inherit copies the parent's resolved value; Initial uses the
// supplied initial value; Unset behaves as Inherit if inheriting, else as
// Initial.
func resolveProp[T any](p Prop[T], parent T, initial T, inherits Inheriting) T {
	switch p.State {
	case StateValue:
		return p.Val
	case StateInherit:
		return parent
	case StateInitial:
		return initial
	case StateUnset:
		if inherits {
			return parent
		}
		return initial
	default:
		return initial
	}
}

package logic

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// Term is any value in the engine's universe: an Atom wrapping a host
// value, a Var naming a logic variable, or a Seq holding an ordered,
// fixed-arity collection of sub-terms.
//
// Term is a closed set (Atom, *Var, Seq) rather than an open interface
// with behavior, because the engine never needs to dispatch on Term the
// way it dispatches on, say, a constraint type: every operation that
// cares about term shape (Walk, Unify, the driver's snapshot builder)
// already type-switches on the three variants directly.
type Term interface {
	isTerm()
}

// Atom wraps an opaque host value: an integer, string, boolean, float,
// or any other value supporting structural equality (==) in Go. Atoms
// are immutable and represent themselves.
type Atom struct {
	Value any
}

func (Atom) isTerm() {}

// NewAtom wraps a host value as an Atom term.
func NewAtom(value any) Atom {
	return Atom{Value: value}
}

func (a Atom) String() string {
	return fmt.Sprintf("%v", a.Value)
}

// varCounter mints globally unique variable handles, exactly as the
// teacher's Fresh/varCounter pair does (primitives.go), adapted here to
// back a trail-based store rather than a copy-on-write Substitution.
var varCounter int64

// Var is a logic variable identified by a process-unique handle. The
// optional Name is descriptive only: two variables are the same
// variable iff their handles compare equal, never by name.
type Var struct {
	handle int64
	Name   string
}

func (*Var) isTerm() {}

// NewVar creates a fresh logic variable with an optional display name.
// The name is cosmetic (used for query reporting); identity is the
// handle, minted from a process-wide atomic counter so variable
// identity is unique even across concurrently-running, independent
// queries (each query still owns its own Store; see Store).
func NewVar(name string) *Var {
	h := atomic.AddInt64(&varCounter, 1)
	return &Var{handle: h, Name: name}
}

// Handle returns the variable's unique identity.
func (v *Var) Handle() int64 {
	return v.handle
}

func (v *Var) String() string {
	if v.Name != "" {
		return fmt.Sprintf("_%s%d", v.Name, v.handle)
	}
	return fmt.Sprintf("_%d", v.handle)
}

// sameVar reports whether a and b are the identical variable (by
// handle, never by name).
func sameVar(a, b *Var) bool {
	return a.handle == b.handle
}

// Seq is a finite, ordered, fixed-arity sequence of sub-terms. It
// suffices to encode both lists and tuples: two Seq terms unify only
// when they have the same length and unify element-wise.
//
// This is a flat representation rather than the teacher's cons-pair
// (Pair.Car/Cdr) lists: the spec defines Seq as the single compound
// variant with no separate "improper list" tail, so built-in predicates
// that need open-ended lengths (Append, Length) are implemented as
// direct stream builtins instead of cons-recursive relations.
type Seq []Term

func (Seq) isTerm() {}

// NewSeq builds a Seq term from the given sub-terms.
func NewSeq(terms ...Term) Seq {
	s := make(Seq, len(terms))
	copy(s, terms)
	return s
}

// List is a convenience constructor accepting any Go value for each
// element: Term values are used as-is, everything else is wrapped with
// NewAtom. Mirrors the teacher's highlevel_api.go helpers (A, L).
func List(values ...any) Seq {
	terms := make(Seq, len(values))
	for i, v := range values {
		if t, ok := v.(Term); ok {
			terms[i] = t
		} else {
			terms[i] = NewAtom(v)
		}
	}
	return terms
}

func (s Seq) String() string {
	parts := make([]string, len(s))
	for i, t := range s {
		parts[i] = termString(t)
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// termString renders any Term for debugging/error messages. It does not
// walk the term through a store; callers that want dereferenced output
// should Walk first.
func termString(t Term) string {
	switch v := t.(type) {
	case Atom:
		return v.String()
	case *Var:
		return v.String()
	case Seq:
		return v.String()
	default:
		return fmt.Sprintf("%v", t)
	}
}

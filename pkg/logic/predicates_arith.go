package logic

import "math"

// Numeric domain: Atom values of Go type int or float64. An arithmetic
// or comparison predicate given a bound Atom of any other type reports
// a fatal Type error (spec §7) rather than failing quietly — the open
// question in spec §9 ("behavior of arithmetic predicates when inputs
// are non-integer numbers") is resolved here by accepting float64
// alongside int and promoting to float64 whenever either operand is a
// float64, otherwise keeping the result an int.
func numericValue(v any) (value float64, isInt bool, ok bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true, true
	case float64:
		return n, false, true
	}
	return 0, false, false
}

func numberTerm(value float64, isInt bool) Atom {
	if isInt {
		return NewAtom(int(value))
	}
	return NewAtom(value)
}

func asInt(v any) (int, bool) {
	i, ok := v.(int)
	return i, ok
}

// classifyNumeric walks t and reports whether it is unbound, bound to a
// number (with its value), or bound to something else — the last case
// is a fatal Type error, matching spec §7's example ("comparison on a
// non-number") generalized to every arithmetic and comparison builtin.
func classifyNumeric(predicate string, store *Store, t Term) (value float64, isInt, bound bool, err error) {
	walked := store.Walk(t)
	if _, isVar := walked.(*Var); isVar {
		return 0, false, false, nil
	}
	atom, ok := walked.(Atom)
	if !ok {
		return 0, false, true, typeErrorf(predicate, "expected a number, got %s", termString(walked))
	}
	f, isInt, ok := numericValue(atom.Value)
	if !ok {
		return 0, false, true, typeErrorf(predicate, "expected a number, got %v", atom.Value)
	}
	return f, isInt, true, nil
}

// arithRelation describes a ternary numeric relation z = x ⊕ y together
// with its two inverses, so Plus/Minus/Times can share one evaluator.
type arithRelation struct {
	name     string
	forward  func(x, y float64) float64
	solveY   func(x, z float64) (float64, bool) // y, given x and z
	solveX   func(y, z float64) (float64, bool) // x, given y and z
}

// arithGoal implements the "at least two of three bound" contract of
// spec §4.7: whichever pair is bound determines the third, and if all
// three are bound the forward computation is simply verified against
// the already-bound z via unify's equality check. Fewer than two bound
// is a mode error (logical failure, not fatal).
func arithGoal(rel arithRelation, x, y, z Term) Goal {
	return func(store *Store) Stream {
		return newDetStream(store, func() (bool, error) {
			xf, xInt, xBound, err := classifyNumeric(rel.name, store, x)
			if err != nil {
				return false, err
			}
			yf, yInt, yBound, err := classifyNumeric(rel.name, store, y)
			if err != nil {
				return false, err
			}
			zf, zInt, zBound, err := classifyNumeric(rel.name, store, z)
			if err != nil {
				return false, err
			}

			switch {
			case xBound && yBound:
				result := rel.forward(xf, yf)
				return unify(z, numberTerm(result, xInt && yInt), store), nil
			case xBound && zBound:
				result, ok := rel.solveY(xf, zf)
				if !ok || (xInt && zInt && result != math.Trunc(result)) {
					return false, nil
				}
				return unify(y, numberTerm(result, xInt && zInt), store), nil
			case yBound && zBound:
				result, ok := rel.solveX(yf, zf)
				if !ok || (yInt && zInt && result != math.Trunc(result)) {
					return false, nil
				}
				return unify(x, numberTerm(result, yInt && zInt), store), nil
			default:
				return false, nil
			}
		})
	}
}

var plusRelation = arithRelation{
	name:    "plus",
	forward: func(x, y float64) float64 { return x + y },
	solveY:  func(x, z float64) (float64, bool) { return z - x, true },
	solveX:  func(y, z float64) (float64, bool) { return z - y, true },
}

var minusRelation = arithRelation{
	name:    "minus",
	forward: func(x, y float64) float64 { return x - y },
	solveY:  func(x, z float64) (float64, bool) { return x - z, true },
	solveX:  func(y, z float64) (float64, bool) { return z + y, true },
}

var timesRelation = arithRelation{
	name:    "times",
	forward: func(x, y float64) float64 { return x * y },
	solveY: func(x, z float64) (float64, bool) {
		if x == 0 {
			return 0, false
		}
		return z / x, true
	},
	solveX: func(y, z float64) (float64, bool) {
		if y == 0 {
			return 0, false
		}
		return z / y, true
	},
}

// Plus creates a goal relating x, y, and z such that z = x + y,
// multi-mode over whichever two of the three are bound.
func Plus(x, y, z Term) Goal { return arithGoal(plusRelation, x, y, z) }

// Minus creates a goal relating x, y, and z such that z = x - y,
// multi-mode over whichever two of the three are bound.
func Minus(x, y, z Term) Goal { return arithGoal(minusRelation, x, y, z) }

// Times creates a goal relating x, y, and z such that z = x * y,
// multi-mode over whichever two of the three are bound. When the
// multiplier needed to invert the relation would be zero (0*y=z for any
// z, or similarly for x), the mode cannot decide a unique solution and
// the goal fails rather than dividing by zero. With int operands, an
// inverse that is not a whole number (2*y=5) also fails.
func Times(x, y, z Term) Goal { return arithGoal(timesRelation, x, y, z) }

// compareGoal implements the Gt/Lt/Gte/Lte family: both operands must
// be bound numbers (otherwise a mode error, logical failure); a bound
// non-number is a fatal Type error, per spec §7's own example.
func compareGoal(name string, cmp func(x, y float64) bool, x, y Term) Goal {
	return func(store *Store) Stream {
		return newDetStream(store, func() (bool, error) {
			xf, _, xBound, err := classifyNumeric(name, store, x)
			if err != nil {
				return false, err
			}
			yf, _, yBound, err := classifyNumeric(name, store, y)
			if err != nil {
				return false, err
			}
			if !xBound || !yBound {
				return false, nil
			}
			return cmp(xf, yf), nil
		})
	}
}

// Gt creates a goal that succeeds when x > y.
func Gt(x, y Term) Goal { return compareGoal("gt", func(a, b float64) bool { return a > b }, x, y) }

// Lt creates a goal that succeeds when x < y.
func Lt(x, y Term) Goal { return compareGoal("lt", func(a, b float64) bool { return a < b }, x, y) }

// Gte creates a goal that succeeds when x >= y.
func Gte(x, y Term) Goal {
	return compareGoal("gte", func(a, b float64) bool { return a >= b }, x, y)
}

// Lte creates a goal that succeeds when x <= y.
func Lte(x, y Term) Goal {
	return compareGoal("lte", func(a, b float64) bool { return a <= b }, x, y)
}

// Between creates a goal relating an integer range [lo, hi] to x: lo
// and hi must already be bound integers (a type error if not, since
// the predicate's own contract assumes the range endpoints are given);
// if x is bound it is verified against the range, and if free the
// range is enumerated lazily, one integer per Pull, low to high — empty
// if lo > hi. Laziness matters here: RunOne(Between(1, 1000000, X))
// must return promptly without materializing the whole range (spec §8
// scenario 6).
func Between(lo, hi, x Term) Goal {
	return func(store *Store) Stream {
		loI, err := requireBoundInt("between", store, lo, "Lo")
		if err != nil {
			return errorStream(err)
		}
		hiI, err := requireBoundInt("between", store, hi, "Hi")
		if err != nil {
			return errorStream(err)
		}

		if _, isVar := store.Walk(x).(*Var); !isVar {
			return newDetStream(store, func() (bool, error) {
				xi, err := requireBoundInt("between", store, x, "X")
				if err != nil {
					return false, err
				}
				return xi >= loI && xi <= hiI, nil
			})
		}
		return &betweenStream{store: store, x: x, cur: loI, hi: hiI}
	}
}

func requireBoundInt(predicate string, store *Store, t Term, label string) (int, error) {
	atom, ok := store.Walk(t).(Atom)
	if !ok {
		return 0, typeErrorf(predicate, "%s must be a bound integer", label)
	}
	i, ok := asInt(atom.Value)
	if !ok {
		return 0, typeErrorf(predicate, "%s must be an integer, got %v", label, atom.Value)
	}
	return i, nil
}

type betweenStream struct {
	store   *Store
	x       Term
	cur, hi int
	mark    int
	yielded bool
}

func (b *betweenStream) Pull() (bool, error) {
	if b.yielded {
		b.store.Rollback(b.mark)
		b.yielded = false
	}
	for b.cur <= b.hi {
		v := b.cur
		b.cur++
		mk := b.store.Mark()
		if unify(b.x, NewAtom(v), b.store) {
			b.mark = mk
			b.yielded = true
			return true, nil
		}
		b.store.Rollback(mk)
	}
	return false, nil
}

func (b *betweenStream) Close() error {
	if b.yielded {
		b.store.Rollback(b.mark)
		b.yielded = false
	}
	return nil
}

// errStream reports a fatal error on its first Pull without making any
// bindings, for builtins whose contract is violated before any search
// could begin (e.g. Between given a non-integer bound).
type errStream struct {
	err  error
	done bool
}

func errorStream(err error) Stream { return &errStream{err: err} }

func (e *errStream) Pull() (bool, error) {
	if e.done {
		return false, nil
	}
	e.done = true
	return false, e.err
}

func (e *errStream) Close() error { return nil }

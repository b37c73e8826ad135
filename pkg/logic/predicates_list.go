package logic

// Member creates a goal relating an element to a sequence: it succeeds
// once per element of list (after walking list to a Seq), binding x to
// that element, left to right. If list does not walk to a Seq, Member
// fails immediately (a mode/shape failure, per spec §7 — logical, not
// fatal).
func Member(x, list Term) Goal {
	return func(store *Store) Stream {
		seq, ok := store.Walk(list).(Seq)
		if !ok {
			return emptyStream{}
		}
		return &memberStream{store: store, x: x, elems: seq}
	}
}

type memberStream struct {
	store   *Store
	x       Term
	elems   Seq
	idx     int
	mark    int
	yielded bool
}

func (m *memberStream) Pull() (bool, error) {
	if m.yielded {
		m.store.Rollback(m.mark)
		m.yielded = false
	}
	for m.idx < len(m.elems) {
		elem := m.elems[m.idx]
		m.idx++
		mk := m.store.Mark()
		if unify(m.x, elem, m.store) {
			m.mark = mk
			m.yielded = true
			return true, nil
		}
		m.store.Rollback(mk)
	}
	return false, nil
}

func (m *memberStream) Close() error {
	if m.yielded {
		m.store.Rollback(m.mark)
		m.yielded = false
	}
	return nil
}

// Append creates a goal relating three sequences such that zs is the
// concatenation of xs and ys, per spec §4.7:
//   - when zs walks to a Seq of known length k, every split (prefix,
//     suffix) of zs at position 0..k is tried in order, unifying xs with
//     the prefix and ys with the suffix — this covers verification
//     (all three bound), generation (xs/ys free), and partial modes
//     (one of xs/ys bound) uniformly, since unify simply rejects splits
//     that don't match whatever xs/ys already are.
//   - otherwise, when xs and ys both walk to Seqs, zs is built/verified
//     as their single concatenation (spec's "when Xs is bound: single
//     solution", extended to also require ys decided,
//     since Seq's fixed arity can't append onto an unknown-length tail).
//   - any other combination cannot decide a mode and fails (logical,
//     not fatal).
func Append(xs, ys, zs Term) Goal {
	return func(store *Store) Stream {
		if zsSeq, ok := store.Walk(zs).(Seq); ok {
			return &appendSplitStream{store: store, xs: xs, ys: ys, zsElems: zsSeq}
		}
		xsSeq, xsOk := store.Walk(xs).(Seq)
		ysSeq, ysOk := store.Walk(ys).(Seq)
		if xsOk && ysOk {
			combined := make(Seq, 0, len(xsSeq)+len(ysSeq))
			combined = append(combined, xsSeq...)
			combined = append(combined, ysSeq...)
			return newDetStream(store, func() (bool, error) {
				return unify(zs, combined, store), nil
			})
		}
		return emptyStream{}
	}
}

type appendSplitStream struct {
	store   *Store
	xs, ys  Term
	zsElems Seq
	idx     int // next split position to try, 0..len(zsElems)
	mark    int
	yielded bool
}

func (a *appendSplitStream) Pull() (bool, error) {
	if a.yielded {
		a.store.Rollback(a.mark)
		a.yielded = false
	}
	for a.idx <= len(a.zsElems) {
		i := a.idx
		a.idx++
		mk := a.store.Mark()
		if unify(a.xs, a.zsElems[:i], a.store) && unify(a.ys, a.zsElems[i:], a.store) {
			a.mark = mk
			a.yielded = true
			return true, nil
		}
		a.store.Rollback(mk)
	}
	return false, nil
}

func (a *appendSplitStream) Close() error {
	if a.yielded {
		a.store.Rollback(a.mark)
		a.yielded = false
	}
	return nil
}

// Length creates a goal relating a sequence to its length, per spec
// §4.7: verifies if list is bound, generates a fresh-variable sequence
// of the given length if n is bound and list is free, and fails (rather
// than raising) if both are free or n isn't a non-negative integer.
func Length(list, n Term) Goal {
	return func(store *Store) Stream {
		if seq, ok := store.Walk(list).(Seq); ok {
			return newDetStream(store, func() (bool, error) {
				return unify(n, NewAtom(len(seq)), store), nil
			})
		}
		atom, ok := store.Walk(n).(Atom)
		if !ok {
			return emptyStream{}
		}
		k, ok := asInt(atom.Value)
		if !ok || k < 0 {
			return emptyStream{}
		}
		fresh := make(Seq, k)
		for i := range fresh {
			fresh[i] = NewVar("")
		}
		return newDetStream(store, func() (bool, error) {
			return unify(list, fresh, store), nil
		})
	}
}

// Reverse creates a goal relating a sequence to its reverse. Grounded
// in the teacher's Reverso (list_ops.go), re-expressed directly over
// Seq rather than recursively over cons pairs, for the same reason
// Append is a direct builtin: Seq has no open tail to recurse into.
func Reverse(list, reversed Term) Goal {
	return func(store *Store) Stream {
		if seq, ok := store.Walk(list).(Seq); ok {
			rev := reverseSeq(seq)
			return newDetStream(store, func() (bool, error) {
				return unify(reversed, rev, store), nil
			})
		}
		if seq, ok := store.Walk(reversed).(Seq); ok {
			rev := reverseSeq(seq)
			return newDetStream(store, func() (bool, error) {
				return unify(list, rev, store), nil
			})
		}
		return emptyStream{}
	}
}

func reverseSeq(seq Seq) Seq {
	rev := make(Seq, len(seq))
	for i, t := range seq {
		rev[len(seq)-1-i] = t
	}
	return rev
}

// Nth creates a goal relating a zero-based index to the element of
// list at that index: verifies/extracts when n is bound, enumerates
// every (index, element) pair in order when n is free. Supplements the
// §4.7 table with the other natural indexed-access predicate alongside
// Member, in the same style (a list_ops.go-grounded relation).
func Nth(list, n, elem Term) Goal {
	return func(store *Store) Stream {
		seq, ok := store.Walk(list).(Seq)
		if !ok {
			return emptyStream{}
		}
		if atom, ok := store.Walk(n).(Atom); ok {
			i, ok := asInt(atom.Value)
			if !ok || i < 0 || i >= len(seq) {
				return emptyStream{}
			}
			return newDetStream(store, func() (bool, error) {
				return unify(elem, seq[i], store), nil
			})
		}
		return &nthStream{store: store, n: n, elem: elem, seq: seq}
	}
}

type nthStream struct {
	store   *Store
	n, elem Term
	seq     Seq
	idx     int
	mark    int
	yielded bool
}

func (s *nthStream) Pull() (bool, error) {
	if s.yielded {
		s.store.Rollback(s.mark)
		s.yielded = false
	}
	for s.idx < len(s.seq) {
		i := s.idx
		s.idx++
		mk := s.store.Mark()
		if unify(s.n, NewAtom(i), s.store) && unify(s.elem, s.seq[i], s.store) {
			s.mark = mk
			s.yielded = true
			return true, nil
		}
		s.store.Rollback(mk)
	}
	return false, nil
}

func (s *nthStream) Close() error {
	if s.yielded {
		s.store.Rollback(s.mark)
		s.yielded = false
	}
	return nil
}

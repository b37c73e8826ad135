package logic

// unify performs structural unification of a and b against store,
// walking both sides first and appending any bindings it makes to the
// store's trail. It returns false (without restoring already-made
// bindings) the moment any sub-unification fails; callers always sit
// behind a combinator or builtin that took a Mark before calling unify
// and Rollbacks on failure — unify itself never rolls back partial
// work, per spec §4.2 ("the caller is responsible for rollback via the
// surrounding stream combinator").
func unify(a, b Term, store *Store) bool {
	a = store.Walk(a)
	b = store.Walk(b)

	av, aIsVar := a.(*Var)
	bv, bIsVar := b.(*Var)

	switch {
	case aIsVar && bIsVar:
		if sameVar(av, bv) {
			return true
		}
		// Variable-to-variable aliasing never creates a cycle: it
		// always links to an unbound representative, so no occurs
		// check is needed here (spec §4.2's occurs policy).
		store.Bind(av, bv)
		return true

	case aIsVar:
		if occurs(av, b, store) {
			return false
		}
		store.Bind(av, b)
		return true

	case bIsVar:
		if occurs(bv, a, store) {
			return false
		}
		store.Bind(bv, a)
		return true
	}

	switch at := a.(type) {
	case Atom:
		bt, ok := b.(Atom)
		return ok && at.Value == bt.Value

	case Seq:
		bt, ok := b.(Seq)
		if !ok || len(at) != len(bt) {
			return false
		}
		for i := range at {
			if !unify(at[i], bt[i], store) {
				return false
			}
		}
		return true
	}

	return false
}

// occurs reports whether v appears anywhere inside t after walking,
// i.e. whether binding v to t would create a cyclic binding chain. Per
// spec §4.2, this check only runs when binding a variable to a compound
// (Seq) term — ordinary atoms can never contain a variable, and
// variable-to-variable binding is handled separately without a check.
func occurs(v *Var, t Term, store *Store) bool {
	t = store.Walk(t)
	switch tt := t.(type) {
	case *Var:
		return sameVar(v, tt)
	case Seq:
		for _, elem := range tt {
			if occurs(v, elem, store) {
				return true
			}
		}
	}
	return false
}

// Unify builds a Goal that constrains a and b to be equal. It is the
// goal-level counterpart to the internal unify function: a single
// logical step that succeeds at most once (unification has no choice
// points of its own), binding whatever variables are needed and
// appending them to the store's trail.
func Unify(a, b Term) Goal {
	return func(store *Store) Stream {
		return newDetStream(store, func() (bool, error) {
			return unify(a, b, store), nil
		})
	}
}

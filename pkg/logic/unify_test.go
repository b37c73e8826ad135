package logic

import "testing"

func TestUnifyAtoms(t *testing.T) {
	store := NewStore()
	if !unify(NewAtom(1), NewAtom(1), store) {
		t.Error("equal atoms should unify")
	}
	if unify(NewAtom(1), NewAtom(2), store) {
		t.Error("distinct atoms should not unify")
	}
}

func TestUnifyBindsFreeVariable(t *testing.T) {
	store := NewStore()
	x := NewVar("x")
	if !unify(x, NewAtom("hi"), store) {
		t.Fatal("unifying a free variable should succeed")
	}
	if w := store.Walk(x); w != (Atom{Value: "hi"}) {
		t.Errorf("x should be bound to \"hi\", got %#v", w)
	}
}

func TestUnifySymmetry(t *testing.T) {
	// Invariant 3 (spec §8): unify(a,b) and unify(b,a) admit the same
	// bindings for shared variables.
	x := NewVar("x")
	store1 := NewStore()
	ok1 := unify(x, NewSeq(NewAtom(1), NewAtom(2)), store1)

	y := NewVar("y")
	store2 := NewStore()
	ok2 := unify(NewSeq(NewAtom(1), NewAtom(2)), y, store2)

	if ok1 != ok2 {
		t.Fatalf("unify should be symmetric in success: %v vs %v", ok1, ok2)
	}
	if !store1.IsBound(x) || !store2.IsBound(y) {
		t.Fatal("both variables should be bound")
	}
}

func TestUnifySeq(t *testing.T) {
	store := NewStore()
	x := NewVar("x")
	a := NewSeq(NewAtom(1), x, NewAtom(3))
	b := NewSeq(NewAtom(1), NewAtom(2), NewAtom(3))

	if !unify(a, b, store) {
		t.Fatal("sequences should unify element-wise")
	}
	if w := store.Walk(x); w != (Atom{Value: 2}) {
		t.Errorf("expected x bound to 2, got %#v", w)
	}
}

func TestUnifySeqLengthMismatch(t *testing.T) {
	store := NewStore()
	a := NewSeq(NewAtom(1), NewAtom(2))
	b := NewSeq(NewAtom(1), NewAtom(2), NewAtom(3))
	if unify(a, b, store) {
		t.Error("sequences of different lengths should never unify")
	}
}

func TestUnifyPartialFailureLeavesNoPartialBindings(t *testing.T) {
	// unify itself does not roll back on partial failure (spec §4.2);
	// this test documents and exercises that contract via Unify, whose
	// Goal layer is the one responsible for rollback.
	store := NewStore()
	x := NewVar("x")
	a := NewSeq(x, NewAtom("mismatch"))
	b := NewSeq(NewAtom(1), NewAtom("nope"))

	mark := store.Mark()
	stream := Unify(a, b)(store)
	ok, err := stream.Pull()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Fatal("unification should fail")
	}
	if store.IsBound(x) {
		t.Error("the surrounding Goal should have rolled back the partial binding of x")
	}
	if store.Mark() != mark {
		t.Errorf("store should be restored to its pre-unify mark, got %d want %d", store.Mark(), mark)
	}
}

func TestOccursCheckRejectsCycles(t *testing.T) {
	store := NewStore()
	x := NewVar("x")
	cyclic := NewSeq(NewAtom("f"), x)

	if unify(x, cyclic, store) {
		t.Error("binding x to a compound term containing x should be rejected")
	}
	if store.IsBound(x) {
		t.Error("a rejected occurs-check binding should not be recorded")
	}
}

func TestOccursCheckAllowsVarToVarAliasing(t *testing.T) {
	store := NewStore()
	x := NewVar("x")
	y := NewVar("y")
	if !unify(x, y, store) {
		t.Error("variable-to-variable aliasing never creates a cycle and should succeed")
	}
}

func TestSameVariableUnifiesWithoutBinding(t *testing.T) {
	store := NewStore()
	x := NewVar("x")
	mark := store.Mark()
	if !unify(x, x, store) {
		t.Fatal("a variable should unify with itself")
	}
	if store.Mark() != mark {
		t.Error("unifying a variable with itself should not bind anything")
	}
}

package logic

// IsBound reports whether walking v under store terminates at a
// non-variable term.
func IsBound(store *Store, v *Var) bool {
	return store.IsBound(v)
}

// Deref returns the walked value of t under store, or t's unbound
// variable itself if it has no binding.
func Deref(store *Store, t Term) Term {
	return store.Deref(t)
}

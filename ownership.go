package htable

// Ownership controls whether the table stores caller-owned references
// verbatim or takes independent copies it must later release.
//
// Each operation defaults independently when nil: copies default to
// identity (the table stores exactly what the caller passed) and frees
// default to no-ops (the table never releases caller data). A partial
// policy is legal and fills only the missing operations.
//
// With a non-default policy the table copies key and value on insert and
// releases them on overwrite, removal and Close. On overwrite only the
// value is released and re-copied; the stored key keeps its identity for
// the lifetime of the entry.
//
// Copy operations may fail, e.g. when values are backed by a bounded pool
// or arena. A copy failure surfaces from Insert as ErrAllocationFailed and
// leaves the table unchanged.
type Ownership[K, V any] struct {
	// CopyKey produces the key the table will store for a new entry.
	CopyKey func(key K) (K, error)

	// CopyValue produces the value the table will store.
	CopyValue func(value V) (V, error)

	// FreeKey releases a stored key on removal or Close.
	FreeKey func(key K)

	// FreeValue releases a stored value on overwrite, removal or Close.
	FreeValue func(value V)
}

// withDefaults returns a copy of o with every nil operation replaced by
// the identity-copy / no-op-free default.
func (o Ownership[K, V]) withDefaults() Ownership[K, V] {
	if o.CopyKey == nil {
		o.CopyKey = func(key K) (K, error) { return key, nil }
	}
	if o.CopyValue == nil {
		o.CopyValue = func(value V) (V, error) { return value, nil }
	}
	if o.FreeKey == nil {
		o.FreeKey = func(K) {}
	}
	if o.FreeValue == nil {
		o.FreeValue = func(V) {}
	}
	return o
}

package htable

import (
	"fmt"
	"reflect"
	"time"
)

// HashFunc maps a key to an unsigned hash value. It must be deterministic:
// equal keys (by the table's EqualFunc) must produce equal hashes.
type HashFunc[K any] func(key K) uint64

// EqualFunc reports whether two keys are equal. It must be a true
// equivalence relation, otherwise the one-entry-per-key invariant breaks.
type EqualFunc[K any] func(a, b K) bool

// node is a single entry in a bucket chain.
type node[K, V any] struct {
	key   K
	value V
	next  *node[K, V]
}

// Table is a fixed-bucket-count hash table with separate chaining.
//
// The bucket count is set once at construction and never changes; the table
// performs no rehashing. Collisions extend the bucket's chain, so a
// pathological hash function degrades operations toward O(n) within a bucket.
//
// Table is not safe for concurrent use. Callers that share a table across
// goroutines must serialize all access, including reads.
type Table[K, V any] struct {
	slots []*node[K, V]
	count int

	hash      HashFunc[K]
	equal     EqualFunc[K]
	ownership Ownership[K, V]

	logger  *Logger
	metrics MetricsCollector
}

// New creates a table with the given number of buckets.
//
// buckets must be positive and hash and equal must be non-nil; otherwise
// an error wrapping ErrInvalidArgument is returned. Construction performs
// no hashing and touches no caller data.
func New[K, V any](buckets int, hash HashFunc[K], equal EqualFunc[K], optFns ...Option[K, V]) (*Table[K, V], error) {
	if buckets <= 0 {
		return nil, fmt.Errorf("%w: bucket count must be positive, got %d", ErrInvalidArgument, buckets)
	}
	if hash == nil {
		return nil, fmt.Errorf("%w: hash function is nil", ErrInvalidArgument)
	}
	if equal == nil {
		return nil, fmt.Errorf("%w: equal function is nil", ErrInvalidArgument)
	}

	o := applyOptions(optFns)

	return &Table[K, V]{
		slots:     make([]*node[K, V], buckets),
		hash:      hash,
		equal:     equal,
		ownership: o.ownership.withDefaults(),
		logger:    o.logger,
		metrics:   o.metrics,
	}, nil
}

// Insert stores value under key.
//
// If the key is already present the old value is released via the ownership
// policy and replaced with a copy of the new value; the stored key is left
// untouched. Otherwise a new entry holding copies of key and value is
// appended at the tail of the bucket's chain.
//
// Insert returns an error wrapping ErrInvalidArgument when the table is nil
// or closed, or when value is a nil pointer/map/slice/chan/func, and an
// error wrapping ErrAllocationFailed when the ownership policy fails to copy.
func (t *Table[K, V]) Insert(key K, value V) error {
	start := time.Now()

	if t == nil || t.slots == nil {
		return fmt.Errorf("%w: insert on nil or closed table", ErrInvalidArgument)
	}
	if isNilValue(value) {
		err := fmt.Errorf("%w: value is nil", ErrInvalidArgument)
		t.metrics.RecordInsert(time.Since(start), err)
		t.logger.LogInsert(-1, false, err)
		return err
	}

	idx := t.bucketFor(key)

	var prev *node[K, V]
	for n := t.slots[idx]; n != nil; n = n.next {
		if t.equal(n.key, key) {
			// Update in place. Copy before freeing the old value so a
			// failed copy leaves the entry intact.
			v, err := t.ownership.CopyValue(value)
			if err != nil {
				err = fmt.Errorf("%w: copy value: %w", ErrAllocationFailed, err)
				t.metrics.RecordUpdate(time.Since(start), err)
				t.logger.LogInsert(idx, true, err)
				return err
			}
			t.ownership.FreeValue(n.value)
			n.value = v

			t.metrics.RecordUpdate(time.Since(start), nil)
			t.logger.LogInsert(idx, true, nil)
			return nil
		}
		prev = n
	}

	k, err := t.ownership.CopyKey(key)
	if err != nil {
		err = fmt.Errorf("%w: copy key: %w", ErrAllocationFailed, err)
		t.metrics.RecordInsert(time.Since(start), err)
		t.logger.LogInsert(idx, false, err)
		return err
	}
	v, err := t.ownership.CopyValue(value)
	if err != nil {
		t.ownership.FreeKey(k)
		err = fmt.Errorf("%w: copy value: %w", ErrAllocationFailed, err)
		t.metrics.RecordInsert(time.Since(start), err)
		t.logger.LogInsert(idx, false, err)
		return err
	}

	n := &node[K, V]{key: k, value: v}
	if prev == nil {
		t.slots[idx] = n
	} else {
		prev.next = n
	}
	t.count++

	t.metrics.RecordInsert(time.Since(start), nil)
	t.logger.LogInsert(idx, false, nil)
	return nil
}

// Get returns the value stored under key.
//
// The second return value reports whether the key was found. Get is a
// read-only traversal: it never mutates the table and never invokes the
// ownership policy. A nil or closed table reports not found.
func (t *Table[K, V]) Get(key K) (V, bool) {
	start := time.Now()

	var zero V
	if t == nil || t.slots == nil {
		return zero, false
	}

	idx := t.bucketFor(key)
	for n := t.slots[idx]; n != nil; n = n.next {
		if t.equal(n.key, key) {
			t.metrics.RecordGet(true, time.Since(start))
			t.logger.LogGet(idx, true)
			return n.value, true
		}
	}

	t.metrics.RecordGet(false, time.Since(start))
	t.logger.LogGet(idx, false)
	return zero, false
}

// Remove deletes the entry stored under key, releasing the stored key and
// value via the ownership policy.
//
// Remove returns an error wrapping ErrNotFound when no entry matches, and
// an error wrapping ErrInvalidArgument when the table is nil or closed.
func (t *Table[K, V]) Remove(key K) error {
	start := time.Now()

	if t == nil || t.slots == nil {
		return fmt.Errorf("%w: remove on nil or closed table", ErrInvalidArgument)
	}

	idx := t.bucketFor(key)

	var prev *node[K, V]
	for n := t.slots[idx]; n != nil; n = n.next {
		if t.equal(n.key, key) {
			if prev == nil {
				t.slots[idx] = n.next
			} else {
				prev.next = n.next
			}
			t.ownership.FreeKey(n.key)
			t.ownership.FreeValue(n.value)
			t.count--

			t.metrics.RecordRemove(time.Since(start), nil)
			t.logger.LogRemove(idx, nil)
			return nil
		}
		prev = n
	}

	err := fmt.Errorf("%w: no entry for key", ErrNotFound)
	t.metrics.RecordRemove(time.Since(start), err)
	t.logger.LogRemove(idx, err)
	return err
}

// Range calls fn for every entry in the table, in no particular order,
// until fn returns false. Like Get it is read-only and never invokes the
// ownership policy. fn must not mutate the table.
func (t *Table[K, V]) Range(fn func(key K, value V) bool) {
	if t == nil || t.slots == nil {
		return
	}
	for _, head := range t.slots {
		for n := head; n != nil; n = n.next {
			if !fn(n.key, n.value) {
				return
			}
		}
	}
}

// Len returns the number of entries currently stored.
func (t *Table[K, V]) Len() int {
	if t == nil {
		return 0
	}
	return t.count
}

// Buckets returns the fixed bucket count the table was created with, or
// zero after Close.
func (t *Table[K, V]) Buckets() int {
	if t == nil {
		return 0
	}
	return len(t.slots)
}

// Close releases every entry, invoking the ownership policy's free
// operations on each stored key and value, and drops the slot array.
//
// Close is idempotent: closing a nil or already-closed table is a no-op.
// After Close, Insert and Remove report ErrInvalidArgument and Get reports
// not found.
func (t *Table[K, V]) Close() error {
	if t == nil || t.slots == nil {
		return nil
	}

	released := t.count
	for idx, head := range t.slots {
		for n := head; n != nil; n = n.next {
			t.ownership.FreeKey(n.key)
			t.ownership.FreeValue(n.value)
		}
		t.slots[idx] = nil
	}
	t.slots = nil
	t.count = 0

	t.logger.LogClose(released)
	return nil
}

func (t *Table[K, V]) bucketFor(key K) int {
	return int(t.hash(key) % uint64(len(t.slots)))
}

// isNilValue reports whether v is a nil reference of a nilable kind.
// Values of non-nilable kinds (ints, strings, structs, ...) are never nil.
func isNilValue(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	default:
		return false
	}
}

// Package htable provides a generic hash table with separate chaining and a
// caller-fixed bucket count.
//
// The table delegates hashing and key equality to caller-supplied strategy
// functions bound at construction, and optionally delegates key/value
// lifecycle to an Ownership policy (copy on insert, free on overwrite,
// removal and Close). Under the default policy the table stores the
// caller's references verbatim and never releases them.
//
// # Quick Start
//
// Create a table with ready-made strategies from the hashfn subpackage:
//
//	t, err := htable.New[string, int](1024, hashfn.String, hashfn.Equal[string])
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer t.Close()
//
//	_ = t.Insert("answer", 42)
//
//	if v, ok := t.Get("answer"); ok {
//	    fmt.Println(v)
//	}
//
//	_ = t.Remove("answer")
//
// Inserting an existing key replaces the value and keeps the stored key
// untouched. Keys are unique per the equality function: a table never holds
// two entries for equal keys.
//
// # Ownership
//
// A non-default Ownership policy makes the table take defensive copies on
// insert and release them when entries are overwritten, removed or the
// table is closed:
//
//	t, err := htable.New[string, []byte](256, hashfn.String, hashfn.Equal[string],
//	    htable.WithOwnership(htable.Ownership[string, []byte]{
//	        CopyValue: func(v []byte) ([]byte, error) {
//	            return append([]byte(nil), v...), nil
//	        },
//	        FreeValue: func(v []byte) { pool.Put(v) },
//	    }),
//	)
//
// # Design Constraints
//
// The bucket count is fixed for the table's lifetime; there is no resizing,
// rehashing or eviction. Chains grow without bound, so operations are O(n)
// in chain length. The table is single-threaded: callers must serialize all
// access, including concurrent reads.
package htable

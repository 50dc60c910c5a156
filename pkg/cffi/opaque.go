package cffi

import "sync"

// Opaque marks the layout of a foreign type as unknown. A binding declares a
// public type whose sole field is an Opaque:
//
//	type Foo struct{ _ cffi.Opaque }
//
// Such a type cannot be usefully constructed outside the boundary code that
// receives it from the foreign allocator, cannot be compared, and copying it
// by value is flagged by go vet's copylocks check. Values are only ever
// reachable behind a pointer; the pointer itself is the entire interface to
// the foreign object.
//
// Opaque carries no runtime behavior of its own.
type Opaque struct {
	_ [0]func() // makes containing types non-comparable
	_ sync.Mutex
}

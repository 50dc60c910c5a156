package cffi

// Freer is implemented by pointer types that know how to release their
// pointee. For a bound foreign type the method body is the single call to
// the foreign destructor:
//
//	func (f *Foo) Free() { C.foo_delete((*C.foo_t)(unsafe.Pointer(f))) }
//
// Free must only be invoked on a non-nil pointer produced by the matching
// allocator, and never twice for the same address; destructors report no
// errors, so Free returns nothing. Ptr's ownership state machine is what
// keeps the call-at-most-once contract, not the implementation itself.
type Freer interface {
	Free()
}

// FreePtr constrains a type parameter to the pointer type of T carrying T's
// release routine. Exactly one release routine exists per bound type, and it
// is selected at compile time.
type FreePtr[T any] interface {
	Freer
	*T
}

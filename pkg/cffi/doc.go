// Package cffi provides the ownership primitives for writing bindings to
// libraries that follow the opaque-struct idiom: a typedef whose definition
// is hidden in the implementation, created by one function and destroyed by
// another.
//
//	typedef struct foo foo_t;
//
//	extern foo_t *foo_new(void);
//	extern void foo_delete(foo_t *);
//	extern void foo_use(foo_t *);
//
// A binding declares the opaque type, maps its destructor, and wraps the
// constructor result:
//
//	type Foo struct{ _ cffi.Opaque }
//
//	func (f *Foo) Free() { C.foo_delete((*C.foo_t)(unsafe.Pointer(f))) }
//	func (f *Foo) Use()  { C.foo_use((*C.foo_t)(unsafe.Pointer(f))) }
//
//	func NewFoo() (*cffi.Ptr[Foo, *Foo], error) {
//		raw := C.foo_new()
//		if raw == nil {
//			return nil, errors.New("foo_new failed")
//		}
//		return cffi.FromRaw((*Foo)(unsafe.Pointer(raw))), nil
//	}
//
// All further access goes through the owned pointer's borrows (Raw,
// UnsafePtr); the address is released exactly once, either by Free or, when
// an owner is abandoned without being freed, by its finalizer. IntoRaw hands
// the address back across the boundary and permanently forfeits the release
// obligation.
//
// The package never validates foreign pointers. A constructor returning NULL
// must be surfaced as an error before wrapping, and the FromRaw
// preconditions are the sole safety basis for every later access.
package cffi

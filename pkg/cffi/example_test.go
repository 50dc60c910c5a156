package cffi_test

import (
	"fmt"

	"github.com/coinbase/cffi-go/pkg/cffi"
)

// handle stands in for a foreign type reached through a constructor call.
type handle struct{ released bool }

func (h *handle) Free() { h.released = true }

func ExampleFromRaw() {
	h := new(handle) // in a real binding: the checked result of C.foo_new()
	p := cffi.FromRaw(h)
	fmt.Println(h.released)

	p.Free()
	fmt.Println(h.released)

	p.Free() // released handle: the destructor does not run again
	fmt.Println(h.released)
	// Output:
	// false
	// true
	// true
}

func ExamplePtr_IntoRaw() {
	h := new(handle)
	p := cffi.FromRaw(h)

	raw := p.IntoRaw() // hand the address back across the boundary
	fmt.Println(h.released, raw == h)

	raw.Free() // the new holder releases it
	fmt.Println(h.released)
	// Output:
	// false true
	// true
}

package cffi

import (
	"runtime"
	"unsafe"
)

// Ptr owns a single raw address to a foreign T and releases it exactly once
// through T's Freer implementation. It plays the role a smart pointer plays
// in languages with deterministic destruction: construction takes ownership,
// borrows hand out the address without giving it up, and release happens on
// exactly one control path.
//
// A Ptr is in one of two states: owning (it holds the address and will
// release it) or released (Free already ran, or IntoRaw transferred the
// obligation elsewhere). The transition happens at most once and never
// reverses; accessors on a released handle return nil rather than reaching
// the foreign destructor a second time.
//
// Ptr provides no synchronization. At most one owner may exist per address,
// and concurrent use of one handle is the caller's problem, as it is for the
// foreign object itself.
type Ptr[T any, PT FreePtr[T]] struct {
	raw PT
}

// FromRaw takes ownership of raw.
//
// Preconditions: raw is non-nil, points at a validly constructed T produced
// by the matching allocator, and has no other current owner. None of this is
// checked; a constructor that can return NULL must be checked by the caller
// before wrapping. A finalizer backs the explicit Free protocol so that an
// owner abandoned without being freed still releases exactly once.
func FromRaw[T any, PT FreePtr[T]](raw PT) *Ptr[T, PT] {
	p := &Ptr[T, PT]{raw: raw}
	runtime.SetFinalizer(p, (*Ptr[T, PT]).finalize)
	traceEvent("cffi.FromRaw", unsafe.Pointer(raw))
	return p
}

// IntoRaw consumes ownership and returns the address without releasing it.
// Use it to hand the pointer back across the boundary: store it in a foreign
// container, or return it from an exported function. The new holder assumes
// the full release obligation; no operation on p releases anything
// afterwards. Returns nil if p no longer owns an address.
func (p *Ptr[T, PT]) IntoRaw() PT {
	if p == nil || p.raw == nil {
		return nil
	}
	runtime.SetFinalizer(p, nil)
	raw := p.raw
	p.raw = nil
	traceEvent("cffi.IntoRaw", unsafe.Pointer(raw))
	return raw
}

// Raw borrows the typed pointer, for pointee access and for foreign calls
// that take a *T. Ownership is unaffected; returns nil once p has been
// released or consumed. Callers passing the result into a foreign call must
// keep p reachable across the call (runtime.KeepAlive), or the finalizer may
// release the pointee mid-call.
func (p *Ptr[T, PT]) Raw() PT {
	if p == nil {
		return nil
	}
	return p.raw
}

// UnsafePtr borrows the address for foreign calls that take a void*. Same
// contract as Raw. Together with FromRaw this is the module's entire
// unsafe-reinterpretation surface.
func (p *Ptr[T, PT]) UnsafePtr() unsafe.Pointer {
	if p == nil || p.raw == nil {
		return nil
	}
	return unsafe.Pointer(p.raw)
}

// Free releases the pointee through its Freer implementation. The first call
// transitions the handle to released; later calls, calls after IntoRaw, and
// calls on a nil handle are no-ops, so the foreign destructor runs at most
// once per owned address.
func (p *Ptr[T, PT]) Free() {
	if p == nil || p.raw == nil {
		return
	}
	runtime.SetFinalizer(p, nil)
	raw := p.raw
	p.raw = nil
	traceEvent("cffi.Free", unsafe.Pointer(raw))
	raw.Free()
}

func (p *Ptr[T, PT]) finalize() {
	if p.raw == nil {
		return
	}
	traceEvent("cffi.finalize", unsafe.Pointer(p.raw))
	p.Free()
}

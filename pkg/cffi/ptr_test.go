package cffi_test

import (
	"runtime"
	"sync/atomic"
	"testing"
	"time"
	"unsafe"

	"github.com/coinbase/cffi-go/pkg/cffi"
)

// counted stands in for a foreign type; its destructor counts invocations so
// tests can assert the exactly-once release contract.
type counted struct {
	frees atomic.Int32
	value int
}

func (c *counted) Free() { c.frees.Add(1) }

func TestFreeReleasesExactlyOnce(t *testing.T) {
	c := new(counted)
	p := cffi.FromRaw(c)
	if got := c.frees.Load(); got != 0 {
		t.Fatalf("wrapping released the pointee: frees=%d", got)
	}

	p.Free()
	if got := c.frees.Load(); got != 1 {
		t.Fatalf("after Free: frees=%d, want 1", got)
	}

	p.Free()
	if got := c.frees.Load(); got != 1 {
		t.Fatalf("second Free must be a no-op: frees=%d, want 1", got)
	}
}

func TestIntoRawForfeitsRelease(t *testing.T) {
	c := new(counted)
	p := cffi.FromRaw(c)

	raw := p.IntoRaw()
	if raw != c {
		t.Fatalf("IntoRaw returned %p, want the wrapped address %p", raw, c)
	}
	if got := c.frees.Load(); got != 0 {
		t.Fatalf("IntoRaw must not release: frees=%d", got)
	}

	// The consumed handle owns nothing; no operation on it may release.
	p.Free()
	if got := c.frees.Load(); got != 0 {
		t.Fatalf("Free after IntoRaw released the pointee: frees=%d", got)
	}
	if p.Raw() != nil {
		t.Fatal("Raw after IntoRaw must return nil")
	}
	if p.UnsafePtr() != nil {
		t.Fatal("UnsafePtr after IntoRaw must return nil")
	}
	if p.IntoRaw() != nil {
		t.Fatal("second IntoRaw must return nil")
	}

	// The new holder releases once.
	raw.Free()
	if got := c.frees.Load(); got != 1 {
		t.Fatalf("total releases=%d, want exactly 1", got)
	}
}

func TestBorrowsLeaveOwnershipUntouched(t *testing.T) {
	c := &counted{value: 7}
	p := cffi.FromRaw(c)
	defer p.Free()

	for i := 0; i < 3; i++ {
		if p.Raw() != c {
			t.Fatal("Raw changed the wrapped address")
		}
		if p.UnsafePtr() != unsafe.Pointer(c) {
			t.Fatal("UnsafePtr disagrees with the wrapped address")
		}
	}

	p.Raw().value = 9
	if got := p.Raw().value; got != 9 {
		t.Fatalf("mutation through a borrow not visible through a later borrow: value=%d", got)
	}
	if got := c.frees.Load(); got != 0 {
		t.Fatalf("borrowing released the pointee: frees=%d", got)
	}
}

func TestIndependentOwnersReleaseIndependently(t *testing.T) {
	a, b := new(counted), new(counted)
	pa, pb := cffi.FromRaw(a), cffi.FromRaw(b)

	pa.Free()
	if a.frees.Load() != 1 || b.frees.Load() != 0 {
		t.Fatalf("releasing a touched b: a=%d b=%d", a.frees.Load(), b.frees.Load())
	}

	pb.Free()
	if a.frees.Load() != 1 || b.frees.Load() != 1 {
		t.Fatalf("releasing b interfered with a: a=%d b=%d", a.frees.Load(), b.frees.Load())
	}
}

func TestFinalizerReleasesAbandonedOwner(t *testing.T) {
	c := new(counted)
	func() {
		_ = cffi.FromRaw(c)
	}()

	deadline := time.Now().Add(5 * time.Second)
	for c.frees.Load() == 0 {
		if time.Now().After(deadline) {
			t.Fatal("finalizer did not release the abandoned owner")
		}
		runtime.GC()
		time.Sleep(10 * time.Millisecond)
	}
	if got := c.frees.Load(); got != 1 {
		t.Fatalf("finalizer released %d times, want 1", got)
	}
}

func TestNilHandleIsInert(t *testing.T) {
	var p *cffi.Ptr[counted, *counted]
	p.Free()
	if p.Raw() != nil {
		t.Fatal("Raw on a nil handle must return nil")
	}
	if p.UnsafePtr() != nil {
		t.Fatal("UnsafePtr on a nil handle must return nil")
	}
	if p.IntoRaw() != nil {
		t.Fatal("IntoRaw on a nil handle must return nil")
	}
}

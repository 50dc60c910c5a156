package cffi

import (
	"context"
	"fmt"
	"sync/atomic"
	"unsafe"

	"github.com/coinbase/cffi-go/pkg/cffi/logging"
)

var traceLogger atomic.Pointer[logging.Logger]

// SetTraceLogger installs a logger that receives a debug event for every
// ownership transition: wrap, free, transfer, and finalizer-driven release.
// Binding authors use it to hunt leaks and double releases. Passing nil
// disables tracing, which is the default; tracing never changes ownership
// behavior.
func SetTraceLogger(l logging.Logger) {
	if l == nil {
		traceLogger.Store(nil)
		return
	}
	traceLogger.Store(&l)
}

func traceEvent(op string, addr unsafe.Pointer) {
	lp := traceLogger.Load()
	if lp == nil {
		return
	}
	(*lp).Debug(context.Background(), op, "addr", fmt.Sprintf("0x%x", uintptr(addr)))
}

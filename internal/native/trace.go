package native

// TraceFunc observes a runtime call: the operation name and the handle
// it targets. Handles are identified by pointer, which is how the
// envelope layer defines message identity as well.
type TraceFunc func(op string, b *Buffer)

var traceFn TraceFunc

// SetTrace installs fn as the call observer and returns the previous
// one. Passing nil disables tracing. Tests use this to count calls per
// handle, typically to prove that every handle is closed exactly once.
//
// Tracing is process-wide and not synchronized against concurrent
// runtime calls; install it before exercising buffers.
func SetTrace(fn TraceFunc) TraceFunc {
	prev := traceFn
	traceFn = fn
	return prev
}

func trace(op string, b *Buffer) {
	if traceFn != nil {
		traceFn(op, b)
	}
}

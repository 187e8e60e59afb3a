package adapter

import (
	"context"
	"time"
)

// CallOption customises a single API call.
type CallOption func(*callOptions)

type callOptions struct {
	timeout time.Duration
	signal  context.Context
}

// WithTimeout replaces the configured apiTimeout for one call. Non-positive
// values are ignored.
func WithTimeout(d time.Duration) CallOption {
	return func(o *callOptions) {
		if d > 0 {
			o.timeout = d
		}
	}
}

// WithSignal aborts the call when signal is done. A call given a signal
// applies no timeout of its own, so WithTimeout is ignored alongside it.
func WithSignal(signal context.Context) CallOption {
	return func(o *callOptions) {
		o.signal = signal
	}
}

func newCallOptions(opts []CallOption) callOptions {
	var o callOptions
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// scope derives the context a single call runs in. The returned cancel must
// always be called; it stops both the timer and the signal watcher.
func (o callOptions) scope(ctx context.Context, defaultTimeout time.Duration) (context.Context, context.CancelFunc) {
	if o.signal != nil {
		scoped, cancel := context.WithCancelCause(ctx)
		if o.signal.Err() != nil {
			cancel(context.Cause(o.signal))
			return scoped, func() { cancel(nil) }
		}

		stop := context.AfterFunc(o.signal, func() {
			cancel(context.Cause(o.signal))
		})
		return scoped, func() {
			stop()
			cancel(nil)
		}
	}

	timeout := defaultTimeout
	if o.timeout > 0 {
		timeout = o.timeout
	}
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}

	return context.WithTimeoutCause(ctx, timeout, ErrRequestTimeout)
}

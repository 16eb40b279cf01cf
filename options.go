package emitter

import "github.com/dshills/emitter/sched"

// RegOption configures a single registration.
type RegOption func(*regConfig)

// regConfig contains per-registration parameters.
type regConfig struct {
	// key identifies the registration for later removal.
	key Key

	// executor runs the handler during broadcast dispatch.
	executor sched.Executor
}

// WithKey names the registration so it can be unregistered with key.
// Duplicate keys are legal; all duplicates dispatch, and Unregister
// removes them together.
func WithKey(key Key) RegOption {
	return func(c *regConfig) {
		c.key = key
	}
}

// WithExecutor sets the executor the handler is dispatched on.
// Broadcast strategies honor it; result-producing synchronous
// strategies run handlers inline and ignore it.
func WithExecutor(ex sched.Executor) RegOption {
	return func(c *regConfig) {
		if ex != nil {
			c.executor = ex
		}
	}
}

package coupling

import "github.com/katalvlaran/atomlevels/term"

// Options configures the configuration-level functions.
//
// Engine – the term.Engine used for per-subshell terms; nil builds a fresh
//
//	one per call.
type Options struct {
	Engine *term.Engine
}

// Option represents a functional option for the configuration-level
// functions.
type Option func(*Options)

// WithEngine reuses e, and its memo cache, across calls. Panics on nil e.
func WithEngine(e *term.Engine) Option {
	if e == nil {
		panic("coupling: WithEngine(nil)")
	}
	return func(o *Options) {
		o.Engine = e
	}
}

// DefaultOptions returns options that build a fresh Engine.
func DefaultOptions() Options {
	return Options{}
}

func engineFor(opts []Option) *term.Engine {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Engine == nil {
		return term.NewEngine()
	}
	return o.Engine
}

package extend

import (
	"github.com/npillmayer/extend/style"
	"github.com/npillmayer/schuko"
)

// KeyCycleGuard is the configuration key to switch detection of cyclic
// extend chains on or off. Default is on.
const KeyCycleGuard = "extend.cycleguard"

// WarnFunc is a sink for non-fatal warnings.
type WarnFunc func(msg string)

// Option configures a Resolver or a Plugin.
type Option func(*config)

type config struct {
	warn  WarnFunc
	guard bool
	data  style.Data
}

func defaultConfig() config {
	return config{
		warn:  traceWarning,
		guard: true,
	}
}

func newConfig(opts []Option) config {
	c := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&c)
		}
	}
	return c
}

// traceWarning is the default warning sink.
func traceWarning(msg string) {
	tracer().Errorf("%s", msg)
}

// WithWarner sets the sink for warnings. Default is to trace them.
func WithWarner(w WarnFunc) Option {
	return func(c *config) {
		if w == nil {
			w = traceWarning
		}
		c.warn = w
	}
}

// WithCycleGuard switches detection of cyclic chains of named extends on or
// off. A rule extending itself directly is always detected.
//
// Without the guard, a cycle not involving the rule being resolved (e.g.
// rule a extends b, b extends c, c extends b) will recurse until the stack
// is exhausted.
func WithCycleGuard(on bool) Option {
	return func(c *config) {
		c.guard = on
	}
}

// WithData sets the external data lazy extends are evaluated with.
// Plugin.OnUpdate overrides it with the data it is called with.
func WithData(data style.Data) Option {
	return func(c *config) {
		c.data = data
	}
}

// FromConfig reads options from an application configuration.
// Recognized keys are
//
//     extend.cycleguard    bool
//
func FromConfig(conf schuko.Configuration) Option {
	return func(c *config) {
		if conf == nil {
			return
		}
		if conf.IsSet(KeyCycleGuard) {
			c.guard = conf.GetBool(KeyCycleGuard)
		}
	}
}

package discover

import "github.com/katalvlaran/subdue/matcher"

// Option customizes a Run call. Following params.Option's convention, an
// Option handed an optional nil value is a no-op; Run itself never
// rejects a bad Option value with an error, since every field an Option
// touches here is either cosmetic (logging) or has a usable zero value
// (a fresh default Matcher).
type Option func(*runConfig)

type runConfig struct {
	Matcher     *matcher.Matcher
	OutputLevel int
	Logger      Logger
	Sink        func(IterationResult)
}

func newRunConfig(opts ...Option) runConfig {
	cfg := runConfig{
		Matcher: matcher.New(),
		Logger:  discardLogger{},
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithMatcher supplies the inexact matcher every beam search pass uses to
// reject near-duplicate candidates. A nil m is a no-op; Run otherwise
// uses a default-configured matcher.Matcher.
func WithMatcher(m *matcher.Matcher) Option {
	return func(cfg *runConfig) {
		if m != nil {
			cfg.Matcher = m
		}
	}
}

// WithOutputLevel sets how much per-iteration detail Run reports through
// its Logger (1..5; 0, the default, reports nothing).
func WithOutputLevel(level int) Option {
	return func(cfg *runConfig) { cfg.OutputLevel = level }
}

// WithLogger supplies the sink for per-iteration text output. A nil l is
// a no-op; Run otherwise writes nothing (see discardLogger).
func WithLogger(l Logger) Option {
	return func(cfg *runConfig) {
		if l != nil {
			cfg.Logger = l
		}
	}
}

// WithSink registers a callback that receives one IterationResult per
// completed pass, in addition to (not instead of) whatever the Logger
// writes. A nil fn is a no-op.
func WithSink(fn func(IterationResult)) Option {
	return func(cfg *runConfig) {
		if fn != nil {
			cfg.Sink = fn
		}
	}
}

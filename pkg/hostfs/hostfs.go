// Package hostfs is the OS abstraction layer the runtime's standard library
// calls instead of platform filesystem APIs. It exposes a small set of
// filesystem primitives behind the Backend interface, with one variant per
// real platform plus an explicit Unsupported variant that always fails with
// a fixed not-supported error after emitting a diagnostic. The variant is
// selected once at configuration time; call sites never branch on platform
// identity.
package hostfs

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// Backend variant names accepted by WithBackend.
const (
	BackendOS          = "os"
	BackendUnsupported = "unsupported"
)

type config struct {
	backend string
	diag    io.Writer
	logger  zerolog.Logger
}

// Option configures backend construction.
type Option func(*config)

// WithBackend selects the backend variant by name. Unknown names resolve to
// the Unsupported variant, which is safe to call everywhere.
func WithBackend(name string) Option {
	return func(c *config) {
		c.backend = name
	}
}

// WithDiagnostics redirects the advisory diagnostic stream used by the
// Unsupported variant. The default is stderr.
func WithDiagnostics(w io.Writer) Option {
	return func(c *config) {
		c.diag = w
	}
}

// WithLogger attaches a structured logger to the backend. The default is
// DefaultLogger; the diagnostic line of the Unsupported variant is emitted
// regardless of level.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

func newConfig(opts []Option) *config {
	cfg := &config{
		backend: BackendOS,
		diag:    os.Stderr,
		logger:  DefaultLogger(),
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// New selects and constructs a backend variant. The default is the
// platform-backed variant.
func New(opts ...Option) Backend {
	cfg := newConfig(opts)
	switch cfg.backend {
	case BackendOS:
		return &OS{logger: cfg.logger}
	default:
		return &Unsupported{diag: cfg.diag, logger: cfg.logger}
	}
}

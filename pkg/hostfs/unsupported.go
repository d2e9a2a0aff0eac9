package hostfs

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"
)

// Unsupported is the backend variant for platforms without a native
// implementation. Every primitive emits exactly one diagnostic line of the
// form "NOT IMPLEMENTED: <operation> [<argument>]", then fails with
// syscall.ENOSYS. It never touches the filesystem, never inspects its
// arguments, and holds no state between calls, so higher-level code written
// against Backend can run on any platform before a real backend exists.
// A debug-level event mirrors each diagnostic on the attached logger; the
// advisory line is the only output at the default level.
type Unsupported struct {
	diag   io.Writer
	logger zerolog.Logger
}

// NewUnsupported returns the stub backend. Diagnostics go to stderr unless
// WithDiagnostics overrides the writer.
func NewUnsupported(opts ...Option) *Unsupported {
	cfg := newConfig(opts)
	return &Unsupported{diag: cfg.diag, logger: cfg.logger}
}

// MakeDirectory reports the missing implementation and fails. The path is
// echoed verbatim in the diagnostic, empty strings included.
func (u *Unsupported) MakeDirectory(path string) error {
	fmt.Fprintf(u.diag, "NOT IMPLEMENTED: %s %s\n", OpMakeDirectory, path)
	u.logger.Debug().Str("op", OpMakeDirectory).Str("path", path).
		Msg("backend does not implement primitive")
	return newUnsupported(OpMakeDirectory, path)
}

// CurrentDirectory reports the missing implementation and fails.
func (u *Unsupported) CurrentDirectory() (string, error) {
	fmt.Fprintf(u.diag, "NOT IMPLEMENTED: %s\n", OpCurrentDirectory)
	u.logger.Debug().Str("op", OpCurrentDirectory).
		Msg("backend does not implement primitive")
	return "", newUnsupported(OpCurrentDirectory, "")
}

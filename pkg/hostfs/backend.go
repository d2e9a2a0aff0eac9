package hostfs

// Operation names are stable identifiers shared by every backend variant.
// They appear in diagnostics and in OpError values; callers may display
// them but must not parse diagnostics for control flow.
const (
	OpMakeDirectory    = "make_directory"
	OpCurrentDirectory = "current_directory"
)

// Backend is the capability surface the standard library calls in place of
// platform filesystem APIs. Implementations must be safe to call on any
// platform: a primitive either completes or returns a well-formed error.
// It never performs partial work and never crashes the process.
//
// Backends hold no state between calls; concurrent invocations are
// independent.
type Backend interface {
	// MakeDirectory creates the directory named by path. Path syntax is
	// validated only by the underlying platform call, if any.
	MakeDirectory(path string) error

	// CurrentDirectory returns the absolute path of the process's current
	// working directory. The returned path is empty whenever err is non-nil.
	CurrentDirectory() (string, error)
}

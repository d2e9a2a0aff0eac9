package hostfs_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/arthur-debert/hostfs/pkg/hostfs"
)

func TestNewDefaultsToOS(t *testing.T) {
	backend := hostfs.New()
	if _, ok := backend.(*hostfs.OS); !ok {
		t.Fatalf("expected *hostfs.OS, got %T", backend)
	}
}

func TestNewSelectsUnsupported(t *testing.T) {
	backend := hostfs.New(hostfs.WithBackend(hostfs.BackendUnsupported))
	if _, ok := backend.(*hostfs.Unsupported); !ok {
		t.Fatalf("expected *hostfs.Unsupported, got %T", backend)
	}
}

// Unknown variant names resolve to the stub so call sites stay safe on
// platforms nobody has wired up yet.
func TestNewUnknownBackendFallsBack(t *testing.T) {
	var diag bytes.Buffer
	backend := hostfs.New(
		hostfs.WithBackend("plan9front"),
		hostfs.WithDiagnostics(&diag),
	)

	err := backend.MakeDirectory("/tmp/example")
	if !errors.Is(err, hostfs.ErrUnsupported) {
		t.Fatalf("expected ErrUnsupported, got %v", err)
	}
	if diag.Len() == 0 {
		t.Error("expected a diagnostic line")
	}
}

package hostfs_test

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/hostfs/pkg/hostfs"
)

func TestOSMakeDirectory(t *testing.T) {
	tempDir := t.TempDir()
	backend := hostfs.NewOS()

	t.Run("creates directory", func(t *testing.T) {
		path := filepath.Join(tempDir, "sub")
		if err := backend.MakeDirectory(path); err != nil {
			t.Fatalf("MakeDirectory failed: %v", err)
		}

		info, err := os.Stat(path)
		if err != nil {
			t.Fatalf("Stat failed: %v", err)
		}
		if !info.IsDir() {
			t.Errorf("Expected directory, got file")
		}
	})

	t.Run("existing directory", func(t *testing.T) {
		path := filepath.Join(tempDir, "dup")
		if err := backend.MakeDirectory(path); err != nil {
			t.Fatalf("MakeDirectory failed: %v", err)
		}

		err := backend.MakeDirectory(path)
		if err == nil {
			t.Fatal("expected error for existing directory")
		}

		var opErr *hostfs.OpError
		if !errors.As(err, &opErr) {
			t.Fatalf("expected *hostfs.OpError, got %T", err)
		}
		if opErr.Kind != hostfs.KindAlreadyExists {
			t.Errorf("expected kind %v, got %v", hostfs.KindAlreadyExists, opErr.Kind)
		}
		if !errors.Is(err, fs.ErrExist) {
			t.Errorf("expected error chain to contain fs.ErrExist")
		}
	})

	t.Run("missing parent", func(t *testing.T) {
		path := filepath.Join(tempDir, "missing", "child")

		err := backend.MakeDirectory(path)
		if err == nil {
			t.Fatal("expected error for missing parent")
		}

		var opErr *hostfs.OpError
		if !errors.As(err, &opErr) {
			t.Fatalf("expected *hostfs.OpError, got %T", err)
		}
		if opErr.Kind != hostfs.KindNotFound {
			t.Errorf("expected kind %v, got %v", hostfs.KindNotFound, opErr.Kind)
		}
	})

	t.Run("not unsupported", func(t *testing.T) {
		err := backend.MakeDirectory(filepath.Join(tempDir, "dup"))
		if errors.Is(err, hostfs.ErrUnsupported) {
			t.Errorf("real backend must not report unsupported")
		}
	})
}

func TestOSCurrentDirectory(t *testing.T) {
	backend := hostfs.NewOS()

	dir, err := backend.CurrentDirectory()
	if err != nil {
		t.Fatalf("CurrentDirectory failed: %v", err)
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("expected absolute path, got %q", dir)
	}

	want, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd failed: %v", err)
	}
	if dir != want {
		t.Errorf("expected %q, got %q", want, dir)
	}
}

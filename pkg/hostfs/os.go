package hostfs

import (
	"os"

	"github.com/rs/zerolog"
)

// OS is the backend variant backed by the host platform's filesystem.
type OS struct {
	logger zerolog.Logger
}

// NewOS returns the platform-backed backend.
func NewOS(opts ...Option) *OS {
	cfg := newConfig(opts)
	return &OS{logger: cfg.logger}
}

// MakeDirectory creates the directory named by path with mode 0o755.
// Path syntax is validated only by the platform call.
func (o *OS) MakeDirectory(path string) error {
	if err := os.Mkdir(path, 0o755); err != nil {
		return wrapOSError(OpMakeDirectory, path, err)
	}
	o.logger.Debug().Str("op", OpMakeDirectory).Str("path", path).
		Msg("directory created")
	return nil
}

// CurrentDirectory returns the process's current working directory.
func (o *OS) CurrentDirectory() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", wrapOSError(OpCurrentDirectory, "", err)
	}
	o.logger.Debug().Str("op", OpCurrentDirectory).Str("path", dir).
		Msg("resolved current directory")
	return dir, nil
}

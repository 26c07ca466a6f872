package devkit

import (
	"os"
	"path/filepath"

	"github.com/goliatone/go-media-exchange/core"
)

// NewProviderEnv builds a provider environment over the given transports with
// downloads landing in dir. A nil file transport falls back to rest.
func NewProviderEnv(rest, file core.TransportAdapter, dir string) core.ProviderEnv {
	cfg := core.DefaultConfig()
	cfg.Download.Directory = dir
	if file == nil {
		file = rest
	}
	return core.ProviderEnv{
		Config: cfg,
		REST:   rest,
		File:   file,
	}
}

// WriteMediaFixture writes data to dir/name and returns the full path.
func WriteMediaFixture(dir, name string, data []byte) (string, error) {
	target := filepath.Join(dir, name)
	if err := os.WriteFile(target, data, 0o600); err != nil {
		return "", err
	}
	return target, nil
}

// PNGFixture is a minimal byte sequence with a PNG signature and a NUL byte.
func PNGFixture() []byte {
	return []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0x00, 0x01, 0x02}
}

package providers

import (
	"fmt"

	"github.com/goliatone/go-media-exchange/core"
	"github.com/goliatone/go-media-exchange/providers/google/photos"
	"github.com/goliatone/go-media-exchange/providers/meta/instagram"
)

// Builtins returns the built-in provider factories keyed by provider id.
func Builtins() map[string]core.ProviderFactory {
	return map[string]core.ProviderFactory{
		photos.ProviderID:    photos.Factory,
		instagram.ProviderID: instagram.Factory,
	}
}

// RegisterBuiltins adds every built-in factory to registry. Registration stops
// at the first failure.
func RegisterBuiltins(registry core.Registry) error {
	if registry == nil {
		return fmt.Errorf("providers: registry is required")
	}
	for _, id := range []string{photos.ProviderID, instagram.ProviderID} {
		if err := registry.Register(id, Builtins()[id]); err != nil {
			return err
		}
	}
	return nil
}

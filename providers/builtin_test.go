package providers_test

import (
	"context"
	"testing"

	"github.com/goliatone/go-media-exchange/core"
	"github.com/goliatone/go-media-exchange/providers"
	"github.com/goliatone/go-media-exchange/providers/devkit"
	"github.com/goliatone/go-media-exchange/providers/google/photos"
	"github.com/goliatone/go-media-exchange/providers/meta/instagram"
)

func TestRegisterBuiltins_RegistersBothAdapters(t *testing.T) {
	registry := core.NewProviderRegistry()
	if err := providers.RegisterBuiltins(registry); err != nil {
		t.Fatalf("register builtins: %v", err)
	}
	ids := registry.List()
	if len(ids) != 2 || ids[0] != photos.ProviderID || ids[1] != instagram.ProviderID {
		t.Fatalf("unexpected provider ids %#v", ids)
	}
	if err := providers.RegisterBuiltins(registry); err == nil {
		t.Fatalf("expected duplicate registration to fail")
	}
}

func TestBuiltins_SatisfyMediaProviderConformance(t *testing.T) {
	for id, factory := range providers.Builtins() {
		t.Run(id, func(t *testing.T) {
			provider, err := factory("tok", devkit.NewProviderEnv(devkit.NewFakeTransportAdapter("rest"), nil, t.TempDir()))
			if err != nil {
				t.Fatalf("build provider: %v", err)
			}
			if provider.ID() != id {
				t.Fatalf("expected provider id %q, got %q", id, provider.ID())
			}
			if err := devkit.ValidateMediaProviderConformance(context.Background(), provider); err != nil {
				t.Fatalf("conformance: %v", err)
			}
		})
	}
}

func TestRegisterBuiltins_NilRegistry(t *testing.T) {
	if err := providers.RegisterBuiltins(nil); err == nil {
		t.Fatalf("expected nil registry error")
	}
}

package exchange

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/goliatone/go-media-exchange/core"
)

// ProviderPack groups provider factories shipped outside this module.
type ProviderPack struct {
	Name      string
	Factories map[string]core.ProviderFactory
}

type ExtensionHooks struct {
	mu    sync.RWMutex
	packs map[string]ProviderPack
}

func NewExtensionHooks() *ExtensionHooks {
	return &ExtensionHooks{packs: map[string]ProviderPack{}}
}

func (h *ExtensionHooks) RegisterProviderPack(pack ProviderPack) error {
	if h == nil {
		return fmt.Errorf("exchange: extension hooks are nil")
	}
	name := strings.TrimSpace(pack.Name)
	if name == "" {
		return fmt.Errorf("exchange: provider pack name is required")
	}
	if len(pack.Factories) == 0 {
		return fmt.Errorf("exchange: provider pack %q has no providers", name)
	}

	normalized := ProviderPack{Name: name, Factories: cloneFactories(pack.Factories)}

	h.mu.Lock()
	defer h.mu.Unlock()
	if _, exists := h.packs[name]; exists {
		return fmt.Errorf("exchange: provider pack %q already registered", name)
	}
	h.packs[name] = normalized
	return nil
}

// ApplyProviderPacks registers every pack into registry, packs and provider
// ids in lexical order. The first conflicting id aborts the apply.
func (h *ExtensionHooks) ApplyProviderPacks(registry core.Registry) error {
	if h == nil {
		return nil
	}
	if registry == nil {
		return fmt.Errorf("exchange: registry is required")
	}
	for _, pack := range h.ProviderPacks() {
		ids := make([]string, 0, len(pack.Factories))
		for id := range pack.Factories {
			ids = append(ids, id)
		}
		sort.Strings(ids)
		for _, id := range ids {
			factory := pack.Factories[id]
			if factory == nil {
				return fmt.Errorf("exchange: provider pack %q contains nil factory for %q", pack.Name, id)
			}
			if err := registry.Register(id, factory); err != nil {
				return err
			}
		}
	}
	return nil
}

// ApplyTo registers the packs on a running service.
func (h *ExtensionHooks) ApplyTo(service *Service) error {
	if service == nil {
		return fmt.Errorf("exchange: service is required")
	}
	return h.ApplyProviderPacks(service.Dependencies().Registry)
}

func (h *ExtensionHooks) ProviderPacks() []ProviderPack {
	if h == nil {
		return nil
	}
	h.mu.RLock()
	defer h.mu.RUnlock()

	names := make([]string, 0, len(h.packs))
	for name := range h.packs {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]ProviderPack, 0, len(names))
	for _, name := range names {
		pack := h.packs[name]
		out = append(out, ProviderPack{Name: pack.Name, Factories: cloneFactories(pack.Factories)})
	}
	return out
}

func cloneFactories(in map[string]core.ProviderFactory) map[string]core.ProviderFactory {
	out := make(map[string]core.ProviderFactory, len(in))
	for id, factory := range in {
		out[id] = factory
	}
	return out
}

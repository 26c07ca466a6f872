package core

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// ProviderRegistry maps provider ids to adapter factories. Factories build a
// fresh adapter per credential; the registry never caches adapters.
type ProviderRegistry struct {
	mu        sync.RWMutex
	factories map[string]ProviderFactory
}

func NewProviderRegistry() *ProviderRegistry {
	return &ProviderRegistry{factories: make(map[string]ProviderFactory)}
}

func (r *ProviderRegistry) Register(providerID string, factory ProviderFactory) error {
	if factory == nil {
		return fmt.Errorf("core: provider factory is nil")
	}
	id := normalizeProviderID(providerID)
	if id == "" {
		return fmt.Errorf("core: provider id is required")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.factories[id]; exists {
		return fmt.Errorf("core: provider already registered: %s", id)
	}
	r.factories[id] = factory
	return nil
}

func (r *ProviderRegistry) Get(providerID string) (ProviderFactory, bool) {
	id := normalizeProviderID(providerID)
	if id == "" {
		return nil, false
	}
	r.mu.RLock()
	factory, ok := r.factories[id]
	r.mu.RUnlock()
	return factory, ok
}

func (r *ProviderRegistry) List() []string {
	r.mu.RLock()
	ids := make([]string, 0, len(r.factories))
	for id := range r.factories {
		ids = append(ids, id)
	}
	r.mu.RUnlock()
	sort.Strings(ids)
	return ids
}

func normalizeProviderID(providerID string) string {
	return strings.TrimSpace(strings.ToLower(providerID))
}


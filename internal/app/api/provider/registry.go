package provider

import (
	"fmt"
	"sync"

	"audio-transcriber/internal/app/api"
)

// Creator is a function that creates a transcriber from provider settings.
type Creator func(settings map[string]interface{}) (api.Transcriber, error)

// providerRegistry stores provider creation functions
var (
	providerRegistry = make(map[string]Creator)
	registryMutex    sync.RWMutex
)

// RegisterProvider registers a provider creator function. Providers call this
// from init() so a blank import is enough to make them available.
func RegisterProvider(providerType string, creator Creator) {
	registryMutex.Lock()
	defer registryMutex.Unlock()
	providerRegistry[providerType] = creator
}

// GetProviderCreator returns the creator function for a provider type
func GetProviderCreator(providerType string) (Creator, error) {
	registryMutex.RLock()
	defer registryMutex.RUnlock()

	creator, ok := providerRegistry[providerType]
	if !ok {
		return nil, fmt.Errorf("provider type %s not registered", providerType)
	}
	return creator, nil
}

// ListRegisteredProviders returns all registered provider types
func ListRegisteredProviders() []string {
	registryMutex.RLock()
	defer registryMutex.RUnlock()

	var providers []string
	for providerType := range providerRegistry {
		providers = append(providers, providerType)
	}
	return providers
}

// Copyright (c) 2026, The pooch Authors
//
// SPDX-License-Identifier: Apache-2.0

package registry

import (
	"fmt"
	"maps"
	"sort"
	"sync"

	"github.com/Xarthisius/pooch/model"
)

type providerEntry struct {
	factory model.UnpackerFactory
}

var (
	providers = make(map[string]map[string]*providerEntry)
	mu        sync.Mutex
)

// Clear removes all registered providers
func Clear() {
	mu.Lock()
	defer mu.Unlock()

	providers = make(map[string]map[string]*providerEntry)
}

// Register registers a plugin
func Register(p any) error {
	switch tp := p.(type) {
	case model.UnpackerFactory:
		return registerProvider(tp)
	default:
		return fmt.Errorf("cannot register provider of type %T", p)
	}
}

// MustRegister registers a plugin and panics if registration fails
func MustRegister(p any) {
	err := Register(p)
	if err != nil {
		panic(err)
	}
}

// registerProvider registers a provider factory for its type and returns an error if a provider with the same name already exists
func registerProvider(p model.UnpackerFactory) error {
	mu.Lock()
	defer mu.Unlock()

	tn := p.TypeName()
	pn := p.Name()

	_, ok := providers[tn]
	if !ok {
		providers[tn] = make(map[string]*providerEntry)
	}

	_, ok = providers[tn][pn]
	if ok {
		return model.ErrDuplicateProvider
	}

	providers[tn][pn] = &providerEntry{factory: p}

	return nil
}

// Types returns a list of all registered type names
func Types() []string {
	mu.Lock()
	defer mu.Unlock()

	var res []string
	for k := range maps.Keys(providers) {
		res = append(res, k)
	}

	sort.Strings(res)

	return res
}

// Providers returns the sorted provider names registered for a type
func Providers(typeName string) []string {
	mu.Lock()
	defer mu.Unlock()

	var res []string
	for k := range maps.Keys(providers[typeName]) {
		res = append(res, k)
	}

	sort.Strings(res)

	return res
}

// FindUnpacker constructs the unpacker registered for typeName and providerName
func FindUnpacker(typeName string, providerName string, log model.Logger) (model.Unpacker, error) {
	mu.Lock()
	typeEntries, ok := providers[typeName]
	if !ok {
		mu.Unlock()
		log.Debug("No providers registered", "type", typeName)
		return nil, fmt.Errorf("%w: no providers registered for type %q", model.ErrProviderNotFound, typeName)
	}

	p, ok := typeEntries[providerName]
	mu.Unlock()
	if !ok {
		log.Debug("No providers found", "type", typeName, "provider", providerName)
		return nil, fmt.Errorf("%w: %q", model.ErrProviderNotFound, providerName)
	}

	return p.factory.New(log)
}

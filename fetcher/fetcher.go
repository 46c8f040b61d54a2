// Copyright (c) 2026, The pooch Authors
//
// SPDX-License-Identifier: Apache-2.0

// Package fetcher holds the minimal fetch context handed to processors, it
// owns the loggers and the local cache directory but performs no network
// I/O itself.
package fetcher

import (
	"fmt"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/segmentio/ksuid"

	iu "github.com/Xarthisius/pooch/internal/util"
	"github.com/Xarthisius/pooch/model"
)

// Fetcher implements model.Fetch
type Fetcher struct {
	log        model.Logger
	userLogger model.Logger
	cachePath  string
	id         string
}

var _ model.Fetch = (*Fetcher)(nil)

// Option is a functional option for configuring the fetcher
type Option func(*Fetcher) error

// WithCacheDirectory sets the local directory downloaded files live in
func WithCacheDirectory(path string) Option {
	return func(f *Fetcher) error {
		if path == "" {
			return fmt.Errorf("cache directory is required")
		}

		f.cachePath = path

		return nil
	}
}

// New creates a new fetch context with the provided loggers, the cache
// directory defaults to the OS cache location for the project
func New(log model.Logger, userLogger model.Logger, opts ...Option) (*Fetcher, error) {
	if log == nil || userLogger == nil {
		return nil, fmt.Errorf("loggers are required")
	}

	f := &Fetcher{
		log:        log,
		userLogger: userLogger,
		id:         ksuid.New().String(),
	}

	for _, opt := range opts {
		err := opt(f)
		if err != nil {
			return nil, err
		}
	}

	if f.cachePath == "" {
		f.cachePath = OSCachePath("pooch")
	}

	return f, nil
}

// OSCachePath returns the conventional per-user cache directory for a project
func OSCachePath(project string) string {
	return filepath.Join(xdg.CacheHome, project)
}

// ID returns the unique id stamped on every logger this fetch context hands out
func (f *Fetcher) ID() string {
	return f.id
}

// Logger returns a named child of the structured logger
func (f *Fetcher) Logger(args ...any) (model.Logger, error) {
	return f.log.With(append([]any{"fetch", f.id}, args...)...), nil
}

// UserLogger returns the logger advisory messages are emitted on
func (f *Fetcher) UserLogger() model.Logger {
	return f.userLogger
}

// CacheDirectory returns the local directory downloaded files live in
func (f *Fetcher) CacheDirectory() string {
	return f.cachePath
}

// ResolvePath resolves name to a local file, relative names that do not
// exist in the working directory are looked up in the cache directory
func (f *Fetcher) ResolvePath(name string) (string, error) {
	if filepath.IsAbs(name) || iu.FileExists(name) {
		return name, nil
	}

	cached := filepath.Join(f.cachePath, name)
	if iu.FileExists(cached) {
		return cached, nil
	}

	return "", fmt.Errorf("%q does not exist and was not found in cache directory %q", name, f.cachePath)
}

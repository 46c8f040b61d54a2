// Copyright (c) 2026, The pooch Authors
//
// SPDX-License-Identifier: Apache-2.0

package model

import (
	"context"
	"fmt"
)

type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	With(args ...any) Logger
}

// Fetch is the handle the fetch orchestrator passes to every processor
// invocation. Processors treat it as opaque apart from obtaining loggers
// and the cache directory from it.
type Fetch interface {
	Logger(args ...any) (Logger, error)
	UserLogger() Logger
	CacheDirectory() string
}

const (
	// ActionDownload indicates the file did not exist locally and was downloaded
	ActionDownload Action = "download"
	// ActionUpdate indicates the local file was outdated and was re-downloaded
	ActionUpdate Action = "update"
	// ActionFetch indicates the file existed locally and was already current
	ActionFetch Action = "fetch"
)

// Action is the classification the fetch orchestrator supplies for why the
// local file is present
type Action string

// Refresh reports if the action forces reprocessing regardless of any
// output already on disk
func (a Action) Refresh() bool {
	return a == ActionDownload || a == ActionUpdate
}

// Known reports if the action is one of the supported values
func (a Action) Known() bool {
	switch a {
	case ActionDownload, ActionUpdate, ActionFetch:
		return true
	default:
		return false
	}
}

// ParseAction parses s into an Action
func ParseAction(s string) (Action, error) {
	a := Action(s)
	if !a.Known() {
		return "", fmt.Errorf("%w: %q, must be one of %q, %q or %q", ErrInvalidAction, s, ActionDownload, ActionUpdate, ActionFetch)
	}

	return a, nil
}

// Processor is the contract the fetch orchestrator invokes after it produced
// a local file. Extractors return every resulting file path, the decompressor
// returns a single element slice. The input path is never mutated.
type Processor interface {
	Type() string
	Process(ctx context.Context, path string, action Action, fetch Fetch) ([]string, error)
}

// Unpacker unpacks one archive format into a destination directory. A nil or
// empty members list unpacks the whole archive preserving its internal
// structure, otherwise each named member is streamed verbatim to
// dest/<member>.
type Unpacker interface {
	Name() string
	Suffix() string
	Unpack(ctx context.Context, archive string, dest string, members []string, log Logger) error
}

// UnpackerFactory constructs unpackers for the registry
type UnpackerFactory interface {
	TypeName() string
	Name() string
	New(log Logger) (Unpacker, error)
}

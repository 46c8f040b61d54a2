// Copyright (c) 2026, The pooch Authors
//
// SPDX-License-Identifier: Apache-2.0

package extract

import (
	"context"
	"fmt"
	"os"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/Xarthisius/pooch/internal/registry"
	iu "github.com/Xarthisius/pooch/internal/util"
	"github.com/Xarthisius/pooch/metrics"
	"github.com/Xarthisius/pooch/model"
	"github.com/Xarthisius/pooch/processors/extract/tar"
	"github.com/Xarthisius/pooch/processors/extract/zip"
)

func init() {
	zip.Register()
	tar.Register()
}

// Extractor unpacks a downloaded archive into a sibling directory and
// reports every file found there. Instances are immutable once created
// and keep no state between invocations other than what is on disk.
type Extractor struct {
	prop *model.ExtractProperties
}

var _ model.Processor = (*Extractor)(nil)

// New creates an extraction processor for the given properties
func New(properties model.ExtractProperties) (*Extractor, error) {
	err := properties.Validate()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", model.ErrProcessorInvalid, err)
	}

	return &Extractor{prop: &properties}, nil
}

// Type reports the processor type name
func (e *Extractor) Type() string { return model.ExtractTypeName }

// Members reports the configured member restriction, nil means the whole archive
func (e *Extractor) Members() []string { return e.prop.Members }

// Process unpacks path into path+suffix and returns the full path of every
// file below the output directory. The archive is unpacked when the action
// indicates a fresh download or when the output directory does not exist
// yet, otherwise the existing contents are enumerated unchanged, making
// repeat invocations cheap.
//
// Concurrent invocations on the same path are not safe, callers must
// serialize fetches of the same file.
func (e *Extractor) Process(ctx context.Context, path string, action model.Action, fetch model.Fetch) ([]string, error) {
	if !action.Known() {
		return nil, fmt.Errorf("%w: %q", model.ErrInvalidAction, action)
	}

	log, err := fetch.Logger("processor", model.ExtractTypeName, "format", e.prop.Format)
	if err != nil {
		return nil, err
	}

	unpacker, err := registry.FindUnpacker(model.ExtractTypeName, e.prop.Format, log)
	if err != nil {
		return nil, err
	}

	suffix := unpacker.Suffix()
	if suffix == "" {
		return nil, fmt.Errorf("%w: unpacker %q", model.ErrSuffixNotDefined, unpacker.Name())
	}

	dest := path + suffix

	if action.Refresh() || !iu.IsDirectory(dest) {
		if !iu.IsDirectory(dest) {
			// fails when something other than a directory occupies dest
			err = os.MkdirAll(dest, 0755)
			if err != nil {
				return nil, err
			}
		}

		timer := prometheus.NewTimer(metrics.ProcessTime.WithLabelValues(model.ExtractTypeName, unpacker.Name()))
		err = unpacker.Unpack(ctx, path, dest, e.prop.Members, fetch.UserLogger())
		timer.ObserveDuration()
		if err != nil {
			metrics.ProcessErrorCount.WithLabelValues(model.ExtractTypeName, unpacker.Name()).Inc()
			return nil, err
		}
	} else {
		log.Debug("Output directory exists, skipping extraction", "dest", dest)
		metrics.CacheHitCount.WithLabelValues(model.ExtractTypeName, unpacker.Name()).Inc()
	}

	files, err := iu.ListFilesUnder(dest)
	if err != nil {
		return nil, err
	}

	metrics.ProcessedFileCount.WithLabelValues(model.ExtractTypeName, unpacker.Name()).Add(float64(len(files)))

	return files, nil
}

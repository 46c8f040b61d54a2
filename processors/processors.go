// Copyright (c) 2026, The pooch Authors
//
// SPDX-License-Identifier: Apache-2.0

// Package processors creates the post-download processors the fetch
// orchestrator invokes once a file has been downloaded or confirmed
// current. Extractors unpack archives into a sibling directory, the
// decompressor turns a single compressed stream into a sibling file.
package processors

import (
	"fmt"

	"github.com/goccy/go-yaml"

	"github.com/Xarthisius/pooch/model"
	"github.com/Xarthisius/pooch/processors/decompress"
	"github.com/Xarthisius/pooch/processors/extract"
)

// NewUnzip creates a processor that unpacks zip archives into
// <path>.unzip, members restricts extraction to the named entries
func NewUnzip(members ...string) (*extract.Extractor, error) {
	return extract.New(model.ExtractProperties{Format: model.FormatZip, Members: members})
}

// NewUntar creates a processor that unpacks tar archives, including gzip,
// bzip2 and xz compressed tarballs, into <path>.untar, members restricts
// extraction to the named entries
func NewUntar(members ...string) (*extract.Extractor, error) {
	return extract.New(model.ExtractProperties{Format: model.FormatTar, Members: members})
}

// NewDecompress creates a processor that decompresses a file into
// <path>.decomp, method is one of "auto", "lzma", "xz", "gzip" or "bzip2"
func NewDecompress(method string) (*decompress.Decompressor, error) {
	return decompress.New(model.DecompressProperties{Method: method})
}

// NewProcessorFromYaml creates a processor of the named type from a yaml
// properties document
func NewProcessorFromYaml(typeName string, raw yaml.RawMessage) (model.Processor, error) {
	switch typeName {
	case model.ExtractTypeName:
		props, err := model.NewExtractPropertiesFromYaml(raw)
		if err != nil {
			return nil, err
		}
		return extract.New(*props)
	case model.DecompressTypeName:
		props, err := model.NewDecompressPropertiesFromYaml(raw)
		if err != nil {
			return nil, err
		}
		return decompress.New(*props)
	default:
		return nil, fmt.Errorf("%w: %q", model.ErrUnknownType, typeName)
	}
}

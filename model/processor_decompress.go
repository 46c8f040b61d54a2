// Copyright (c) 2026, The pooch Authors
//
// SPDX-License-Identifier: Apache-2.0

package model

import (
	"fmt"
	"strings"

	"github.com/goccy/go-yaml"
)

const (
	// DecompressTypeName is the type name for stream decompression processors
	DecompressTypeName = "decompress"

	// DecompressSuffix is appended to the input path to form the output path
	DecompressSuffix = ".decomp"

	// MethodAuto resolves the method from the input file extension
	MethodAuto = "auto"
	// MethodLzma decompresses lzma/xz streams
	MethodLzma = "lzma"
	// MethodXz is an alias for lzma
	MethodXz = "xz"
	// MethodGzip decompresses gzip streams
	MethodGzip = "gzip"
	// MethodBzip2 decompresses bzip2 streams
	MethodBzip2 = "bzip2"
)

// DecompressMethods lists every supported non-auto method name
var DecompressMethods = []string{MethodLzma, MethodXz, MethodGzip, MethodBzip2}

// DecompressProperties defines the properties for a stream decompression processor
type DecompressProperties struct {
	Method string `json:"method,omitempty" yaml:"method,omitempty"` // Method names the compression method, "auto" detects it from the file extension
}

// Validate validates the decompression processor properties
func (p *DecompressProperties) Validate() error {
	if p.Method == "" || p.Method == MethodAuto {
		return nil
	}

	for _, m := range DecompressMethods {
		if p.Method == m {
			return nil
		}
	}

	return fmt.Errorf("%w: %q, must be one of %q or %q", ErrInvalidMethod, p.Method, MethodAuto, strings.Join(DecompressMethods, `", "`))
}

// ToYamlManifest returns the decompression processor properties as a yaml document
func (p *DecompressProperties) ToYamlManifest() (yaml.RawMessage, error) {
	return yaml.Marshal(p)
}

// NewDecompressPropertiesFromYaml creates new decompression processor properties from a yaml document, does not validate
func NewDecompressPropertiesFromYaml(raw yaml.RawMessage) (*DecompressProperties, error) {
	props := &DecompressProperties{}
	err := yaml.Unmarshal(raw, props)
	if err != nil {
		return nil, err
	}

	return props, nil
}

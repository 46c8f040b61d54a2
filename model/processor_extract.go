// Copyright (c) 2026, The pooch Authors
//
// SPDX-License-Identifier: Apache-2.0

package model

import (
	"fmt"

	"github.com/goccy/go-yaml"
)

const (
	// ExtractTypeName is the type name for archive extraction processors
	ExtractTypeName = "extract"

	// FormatZip selects the zip unpacker variant
	FormatZip = "zip"
	// FormatTar selects the tar unpacker variant
	FormatTar = "tar"
)

// ExtractProperties defines the properties for an archive extraction processor
type ExtractProperties struct {
	Format  string   `json:"format" yaml:"format"`                       // Format selects the archive variant, one of "zip" or "tar"
	Members []string `json:"members,omitempty" yaml:"members,omitempty"` // Members restricts extraction to these archive entries, empty extracts everything
}

// Validate validates the extraction processor properties
func (p *ExtractProperties) Validate() error {
	if p.Format == "" {
		return fmt.Errorf("format cannot be empty")
	}

	if p.Format != FormatZip && p.Format != FormatTar {
		return fmt.Errorf("%w: format %q must be one of %q or %q", ErrProcessorInvalid, p.Format, FormatZip, FormatTar)
	}

	for _, m := range p.Members {
		if m == "" {
			return fmt.Errorf("%w: members cannot contain empty names", ErrProcessorInvalid)
		}
	}

	return nil
}

// ToYamlManifest returns the extraction processor properties as a yaml document
func (p *ExtractProperties) ToYamlManifest() (yaml.RawMessage, error) {
	return yaml.Marshal(p)
}

// NewExtractPropertiesFromYaml creates new extraction processor properties from a yaml document, does not validate
func NewExtractPropertiesFromYaml(raw yaml.RawMessage) (*ExtractProperties, error) {
	props := &ExtractProperties{}
	err := yaml.Unmarshal(raw, props)
	if err != nil {
		return nil, err
	}

	return props, nil
}

// Copyright (c) 2026, The pooch Authors
//
// SPDX-License-Identifier: Apache-2.0

package zip

import (
	"github.com/Xarthisius/pooch/internal/registry"
	"github.com/Xarthisius/pooch/model"
)

func Register() {
	registry.MustRegister(&factory{})
}

type factory struct{}

func (f *factory) TypeName() string { return model.ExtractTypeName }
func (f *factory) Name() string     { return ProviderName }
func (f *factory) New(log model.Logger) (model.Unpacker, error) {
	return NewZipUnpacker(log)
}

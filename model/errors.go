// Copyright (c) 2026, The pooch Authors
//
// SPDX-License-Identifier: Apache-2.0

package model

import (
	"errors"
)

var (
	ErrProcessorInvalid  = errors.New("invalid processor")
	ErrSuffixNotDefined  = errors.New("no suffix defined")
	ErrInvalidAction     = errors.New("invalid action")
	ErrInvalidMethod     = errors.New("invalid compression method")
	ErrUnknownExtension  = errors.New("unrecognized extension")
	ErrMemberNotFound    = errors.New("member not found in archive")
	ErrProviderNotFound  = errors.New("provider not found")
	ErrDuplicateProvider = errors.New("provider already exists")
	ErrUnknownType       = errors.New("unknown processor type")
)

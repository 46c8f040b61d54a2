// Copyright (c) 2026, The pooch Authors
//
// SPDX-License-Identifier: Apache-2.0

package modelmocks

import (
	"go.uber.org/mock/gomock"
)

// NewFetch creates a fetch context mock wired to a permissive logger mock,
// suitable for most processor test suites
func NewFetch(cacheDir string, ctl *gomock.Controller) (*MockFetch, *MockLogger) {
	logger := NewMockLogger(ctl)
	fetch := NewMockFetch(ctl)

	fetch.EXPECT().Logger(gomock.Any()).AnyTimes().Return(logger, nil)
	fetch.EXPECT().UserLogger().AnyTimes().Return(logger)
	fetch.EXPECT().CacheDirectory().AnyTimes().Return(cacheDir)

	logger.EXPECT().Info(gomock.Any(), gomock.Any()).AnyTimes()
	logger.EXPECT().Debug(gomock.Any(), gomock.Any()).AnyTimes()
	logger.EXPECT().Warn(gomock.Any(), gomock.Any()).AnyTimes()

	return fetch, logger
}

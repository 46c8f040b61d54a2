// Copyright (c) 2026, The pooch Authors
//
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"log/slog"
	"os"

	"github.com/SladkyCitron/slogcolor"

	"github.com/Xarthisius/pooch/fetcher"
	"github.com/Xarthisius/pooch/model"
)

func newFetch(cacheDir string) (*fetcher.Fetcher, error) {
	var opts []fetcher.Option

	if cacheDir != "" {
		opts = append(opts, fetcher.WithCacheDirectory(cacheDir))
	}

	return fetcher.New(newLogger(), newOutputLogger(), opts...)
}

func newOutputLogger() model.Logger {
	var level slog.Level

	switch {
	case debug:
		level = slog.LevelDebug
	default:
		level = slog.LevelInfo
	}

	return fetcher.NewSlogLogger(slog.New(slogcolor.NewHandler(os.Stdout, &slogcolor.Options{Level: level})))
}

func newLogger() model.Logger {
	var level slog.Level

	switch {
	case debug:
		level = slog.LevelDebug
	case info:
		level = slog.LevelInfo
	default:
		level = slog.LevelWarn
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	return fetcher.NewSlogLogger(logger)
}

// Copyright (c) 2026, The pooch Authors
//
// SPDX-License-Identifier: Apache-2.0

package util

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func IsDirectory(path string) bool {
	stat, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return false
	}
	if stat == nil {
		return false
	}

	return stat.IsDir()
}

// SafeJoin joins an archive member name onto dest and rejects names that
// would escape the destination directory
func SafeJoin(dest string, name string) (string, error) {
	path := filepath.Join(dest, name)

	cleanDest := filepath.Clean(dest)
	cleanPath := filepath.Clean(path)

	if cleanPath != cleanDest && !strings.HasPrefix(cleanPath, cleanDest+string(os.PathSeparator)) {
		return "", fmt.Errorf("path outside destination directory: %s", name)
	}

	return path, nil
}

// ListFilesUnder returns the full path of every regular file below dir,
// descending into all subdirectories. Order is directory enumeration order
// and not guaranteed to be the same across platforms.
func ListFilesUnder(dir string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.Type().IsRegular() {
			files = append(files, path)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return files, nil
}

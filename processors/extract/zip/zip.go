// Copyright (c) 2026, The pooch Authors
//
// SPDX-License-Identifier: Apache-2.0

package zip

import (
	"archive/zip"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	iu "github.com/Xarthisius/pooch/internal/util"
	"github.com/Xarthisius/pooch/model"
)

const (
	ProviderName = "zip"

	// Suffix is appended to the archive path to form the output directory
	Suffix = ".unzip"
)

type Unpacker struct {
	log model.Logger
}

func NewZipUnpacker(log model.Logger) (*Unpacker, error) {
	return &Unpacker{log: log}, nil
}

func (u *Unpacker) Name() string { return ProviderName }

func (u *Unpacker) Suffix() string { return Suffix }

// Unpack extracts archive into dest. Without members the whole archive is
// extracted preserving its internal structure, otherwise each named member
// is streamed verbatim to dest/<member>. A missing member aborts the
// remaining members.
func (u *Unpacker) Unpack(ctx context.Context, archive string, dest string, members []string, log model.Logger) error {
	reader, err := zip.OpenReader(archive)
	if err != nil {
		return err
	}
	defer reader.Close()

	if len(members) == 0 {
		log.Warn("Unzipping archive contents", "archive", archive, "dest", dest)
		return u.extractAll(ctx, &reader.Reader, dest)
	}

	for _, member := range members {
		log.Warn("Extracting member from archive", "member", member, "archive", archive, "dest", dest)

		err = u.extractMember(&reader.Reader, member, dest)
		if err != nil {
			return err
		}
	}

	return nil
}

func (u *Unpacker) extractAll(ctx context.Context, reader *zip.Reader, dest string) error {
	for _, file := range reader.File {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		path, err := iu.SafeJoin(dest, file.Name)
		if err != nil {
			return err
		}

		if file.FileInfo().IsDir() {
			err = os.MkdirAll(path, 0755)
			if err != nil {
				return err
			}
			continue
		}

		err = os.MkdirAll(filepath.Dir(path), 0755)
		if err != nil {
			return err
		}

		err = u.extractEntry(file, path)
		if err != nil {
			return fmt.Errorf("could not extract %q: %w", file.Name, err)
		}
	}

	return nil
}

func (u *Unpacker) extractEntry(file *zip.File, path string) error {
	in, err := file.Open()
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}

	_, err = io.Copy(out, in)
	closeErr := out.Close()
	if err != nil {
		return err
	}

	return closeErr
}

// extractMember streams a single named member to dest/<member>, the member
// name is taken as given and no archive directory structure is recreated
// beyond what the name itself contains
func (u *Unpacker) extractMember(reader *zip.Reader, member string, dest string) error {
	in, err := reader.Open(member)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %q: %w", model.ErrMemberNotFound, member, err)
		}
		return err
	}
	defer in.Close()

	path, err := iu.SafeJoin(dest, member)
	if err != nil {
		return err
	}

	err = os.MkdirAll(filepath.Dir(path), 0755)
	if err != nil {
		return err
	}

	out, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}

	_, err = io.Copy(out, in)
	closeErr := out.Close()
	if err != nil {
		return err
	}

	return closeErr
}

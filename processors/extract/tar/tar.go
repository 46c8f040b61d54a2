// Copyright (c) 2026, The pooch Authors
//
// SPDX-License-Identifier: Apache-2.0

package tar

import (
	"archive/tar"
	"bufio"
	"bytes"
	"compress/bzip2"
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/ulikunitz/xz"

	iu "github.com/Xarthisius/pooch/internal/util"
	"github.com/Xarthisius/pooch/model"
)

const (
	ProviderName = "tar"

	// Suffix is appended to the archive path to form the output directory
	Suffix = ".untar"
)

var (
	gzipMagic  = []byte{0x1f, 0x8b}
	bzip2Magic = []byte{'B', 'Z', 'h'}
	xzMagic    = []byte{0xfd, '7', 'z', 'X', 'Z', 0x00}
)

type Unpacker struct {
	log model.Logger
}

func NewTarUnpacker(log model.Logger) (*Unpacker, error) {
	return &Unpacker{log: log}, nil
}

func (u *Unpacker) Name() string { return ProviderName }

func (u *Unpacker) Suffix() string { return Suffix }

// Unpack extracts archive into dest. Plain tar as well as gzip, bzip2 and
// xz compressed tarballs are handled, the wrapper is detected from the
// stream magic rather than the file name. Without members the whole archive
// is extracted preserving its internal structure, otherwise each named
// member is streamed verbatim to dest/<member> and a missing member aborts
// the remaining members.
func (u *Unpacker) Unpack(ctx context.Context, archive string, dest string, members []string, log model.Logger) error {
	if len(members) == 0 {
		log.Warn("Untarring archive contents", "archive", archive, "dest", dest)
		return u.extractAll(ctx, archive, dest)
	}

	// tar streams have no index so every member is served by its own pass
	// over the archive, keeping each member extraction independent
	for _, member := range members {
		log.Warn("Extracting member from archive", "member", member, "archive", archive, "dest", dest)

		err := u.extractMember(ctx, archive, member, dest)
		if err != nil {
			return err
		}
	}

	return nil
}

// openStream opens the archive and wraps it in the decompressor matching
// the leading magic bytes, plain tar streams pass through unchanged
func (u *Unpacker) openStream(archive string) (io.Reader, io.Closer, error) {
	f, err := os.Open(archive)
	if err != nil {
		return nil, nil, err
	}

	br := bufio.NewReader(f)
	magic, err := br.Peek(6)
	if err != nil && len(magic) == 0 {
		f.Close()
		return nil, nil, err
	}

	switch {
	case bytes.HasPrefix(magic, gzipMagic):
		gz, err := gzip.NewReader(br)
		if err != nil {
			f.Close()
			return nil, nil, err
		}
		return gz, f, nil
	case bytes.HasPrefix(magic, bzip2Magic):
		return bzip2.NewReader(br), f, nil
	case bytes.HasPrefix(magic, xzMagic):
		xr, err := xz.NewReader(br)
		if err != nil {
			f.Close()
			return nil, nil, err
		}
		return xr, f, nil
	default:
		return br, f, nil
	}
}

func (u *Unpacker) extractAll(ctx context.Context, archive string, dest string) error {
	stream, closer, err := u.openStream(archive)
	if err != nil {
		return err
	}
	defer closer.Close()

	reader := tar.NewReader(stream)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		header, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}

		path, err := iu.SafeJoin(dest, header.Name)
		if err != nil {
			return err
		}

		switch header.Typeflag {
		case tar.TypeDir:
			err = os.MkdirAll(path, 0755)
			if err != nil {
				return err
			}
		case tar.TypeReg:
			err = os.MkdirAll(filepath.Dir(path), 0755)
			if err != nil {
				return err
			}

			err = writeEntry(path, reader)
			if err != nil {
				return fmt.Errorf("could not extract %q: %w", header.Name, err)
			}
		default:
			u.log.Debug("Skipping unsupported entry", "name", header.Name, "type", header.Typeflag)
		}
	}

	return nil
}

func (u *Unpacker) extractMember(ctx context.Context, archive string, member string, dest string) error {
	stream, closer, err := u.openStream(archive)
	if err != nil {
		return err
	}
	defer closer.Close()

	reader := tar.NewReader(stream)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		header, err := reader.Next()
		if err == io.EOF {
			return fmt.Errorf("%w: %q in %q", model.ErrMemberNotFound, member, archive)
		}
		if err != nil {
			return err
		}

		if header.Name != member {
			continue
		}

		path, err := iu.SafeJoin(dest, member)
		if err != nil {
			return err
		}

		err = os.MkdirAll(filepath.Dir(path), 0755)
		if err != nil {
			return err
		}

		return writeEntry(path, reader)
	}
}

func writeEntry(path string, in io.Reader) error {
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

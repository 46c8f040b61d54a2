// Copyright (c) 2026, The pooch Authors
//
// SPDX-License-Identifier: Apache-2.0

package decompress

import (
	"compress/bzip2"
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/ulikunitz/xz"

	iu "github.com/Xarthisius/pooch/internal/util"
	"github.com/Xarthisius/pooch/metrics"
	"github.com/Xarthisius/pooch/model"
)

// compression pairs a method name with the capability to open a
// decompressing reader over a raw stream
type compression struct {
	open func(io.Reader) (io.Reader, error)
}

// read-only after init, methods resolve against this table
var compressions = map[string]*compression{
	model.MethodLzma: {open: func(r io.Reader) (io.Reader, error) { return xz.NewReader(r) }},
	model.MethodXz:   {open: func(r io.Reader) (io.Reader, error) { return xz.NewReader(r) }},
	model.MethodGzip: {open: func(r io.Reader) (io.Reader, error) { return gzip.NewReader(r) }},
	model.MethodBzip2: {open: func(r io.Reader) (io.Reader, error) {
		return bzip2.NewReader(r), nil
	}},
}

// extensions maps recognized file extensions to method names for "auto"
var extensions = map[string]string{
	".xz":  model.MethodLzma,
	".gz":  model.MethodGzip,
	".bz2": model.MethodBzip2,
}

// Decompressor decompresses a single stream compressed file into a sibling
// file named path+".decomp". Instances are immutable once created.
type Decompressor struct {
	prop *model.DecompressProperties
}

var _ model.Processor = (*Decompressor)(nil)

// New creates a decompression processor for the given properties, an empty
// method defaults to auto detection
func New(properties model.DecompressProperties) (*Decompressor, error) {
	err := properties.Validate()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", model.ErrProcessorInvalid, err)
	}

	if properties.Method == "" {
		properties.Method = model.MethodAuto
	}

	return &Decompressor{prop: &properties}, nil
}

// Type reports the processor type name
func (d *Decompressor) Type() string { return model.DecompressTypeName }

// Method reports the configured compression method
func (d *Decompressor) Method() string { return d.prop.Method }

// Process decompresses path and returns a one element slice holding the
// output path, satisfying the processor contract shared with extractors
func (d *Decompressor) Process(ctx context.Context, path string, action model.Action, fetch model.Fetch) ([]string, error) {
	out, err := d.Decompress(ctx, path, action, fetch)
	if err != nil {
		return nil, err
	}

	return []string{out}, nil
}

// Decompress decompresses path into path+".decomp" and returns the output
// path. The stream is decompressed when the action indicates a fresh
// download or when the output file does not exist yet, otherwise the
// existing output path is returned unchanged.
func (d *Decompressor) Decompress(ctx context.Context, path string, action model.Action, fetch model.Fetch) (string, error) {
	if !action.Known() {
		return "", fmt.Errorf("%w: %q", model.ErrInvalidAction, action)
	}

	log, err := fetch.Logger("processor", model.DecompressTypeName, "method", d.prop.Method)
	if err != nil {
		return "", err
	}

	decompressed := path + model.DecompressSuffix

	if !action.Refresh() && iu.FileExists(decompressed) {
		log.Debug("Output file exists, skipping decompression", "dest", decompressed)
		metrics.CacheHitCount.WithLabelValues(model.DecompressTypeName, d.prop.Method).Inc()
		return decompressed, nil
	}

	method, err := d.resolveMethod(path)
	if err != nil {
		return "", err
	}

	fetch.UserLogger().Warn("Decompressing file", "path", path, "dest", decompressed, "method", method)

	timer := prometheus.NewTimer(metrics.ProcessTime.WithLabelValues(model.DecompressTypeName, method))
	err = d.decompressFile(ctx, path, decompressed, compressions[method])
	timer.ObserveDuration()
	if err != nil {
		metrics.ProcessErrorCount.WithLabelValues(model.DecompressTypeName, method).Inc()
		return "", err
	}

	metrics.ProcessedFileCount.WithLabelValues(model.DecompressTypeName, method).Inc()

	return decompressed, nil
}

// decompressFile copies the decompressed stream into a temporary file next
// to dest and renames it into place on success so a failed copy never
// leaves a truncated output behind to be mistaken for a cache hit
func (d *Decompressor) decompressFile(ctx context.Context, path string, dest string, c *compression) error {
	in, err := os.Open(path)
	if err != nil {
		return err
	}
	defer in.Close()

	stream, err := c.open(in)
	if err != nil {
		return err
	}

	tf, err := os.CreateTemp(filepath.Dir(dest), filepath.Base(dest)+"-*")
	if err != nil {
		return err
	}
	defer os.Remove(tf.Name())

	err = copyWithContext(ctx, tf, stream)
	closeErr := tf.Close()
	if err != nil {
		return err
	}
	if closeErr != nil {
		return closeErr
	}

	if rc, ok := stream.(io.Closer); ok {
		err = rc.Close()
		if err != nil {
			return err
		}
	}

	return os.Rename(tf.Name(), dest)
}

// resolveMethod maps the configured method, or under auto the input file
// extension, to an entry in the compression table
func (d *Decompressor) resolveMethod(path string) (string, error) {
	method := d.prop.Method

	if method == model.MethodAuto {
		ext := filepath.Ext(path)
		resolved, ok := extensions[ext]
		if !ok {
			valid := make([]string, 0, len(extensions))
			for e := range extensions {
				valid = append(valid, e)
			}
			sort.Strings(valid)
			return "", fmt.Errorf("%w: %q, must be one of %q", model.ErrUnknownExtension, ext, strings.Join(valid, `", "`))
		}
		method = resolved
	}

	_, ok := compressions[method]
	if !ok {
		return "", fmt.Errorf("%w: %q, must be one of %q", model.ErrInvalidMethod, method, strings.Join(model.DecompressMethods, `", "`))
	}

	return method, nil
}

func copyWithContext(ctx context.Context, dst io.Writer, src io.Reader) error {
	buf := make([]byte, 32*1024)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		n, err := src.Read(buf)
		if n > 0 {
			w, werr := dst.Write(buf[:n])
			if werr != nil {
				return werr
			}
			if w < n {
				return io.ErrShortWrite
			}
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

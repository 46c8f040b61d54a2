// Copyright (c) 2026, The pooch Authors
//
// SPDX-License-Identifier: Apache-2.0

package decompress

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"

	"github.com/Xarthisius/pooch/model"
	"github.com/Xarthisius/pooch/model/modelmocks"
)

func TestDecompress(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Processors/Decompress")
}

var _ = Describe("Decompressor", func() {
	var (
		mockctl  *gomock.Controller
		fetch    *modelmocks.MockFetch
		td       string
		ctx      context.Context
		expected []byte
	)

	// the output file is created next to the input so fixtures are copied
	// into a scratch directory first
	fixture := func(name string) string {
		data, err := os.ReadFile(filepath.Join("testdata", name))
		Expect(err).ToNot(HaveOccurred())

		path := filepath.Join(td, name)
		Expect(os.WriteFile(path, data, 0644)).To(Succeed())

		return path
	}

	BeforeEach(func() {
		mockctl = gomock.NewController(GinkgoT())
		ctx = context.Background()
		td = GinkgoT().TempDir()
		fetch, _ = modelmocks.NewFetch(td, mockctl)

		var err error
		expected, err = os.ReadFile(filepath.Join("testdata", "values.csv"))
		Expect(err).ToNot(HaveOccurred())
	})

	AfterEach(func() {
		mockctl.Finish()
	})

	Describe("New", func() {
		It("Should default to auto detection", func() {
			d, err := New(model.DecompressProperties{})
			Expect(err).ToNot(HaveOccurred())
			Expect(d.Method()).To(Equal(model.MethodAuto))
			Expect(d.Type()).To(Equal("decompress"))
		})

		It("Should reject unknown methods", func() {
			_, err := New(model.DecompressProperties{Method: "zstd"})
			Expect(err).To(MatchError(model.ErrProcessorInvalid))
			Expect(err).To(MatchError(model.ErrInvalidMethod))
		})
	})

	Describe("Decompress", func() {
		DescribeTable("auto detection from file extensions",
			func(name string) {
				d, err := New(model.DecompressProperties{})
				Expect(err).ToNot(HaveOccurred())

				path := fixture(name)
				out, err := d.Decompress(ctx, path, model.ActionDownload, fetch)
				Expect(err).ToNot(HaveOccurred())
				Expect(out).To(Equal(path + ".decomp"))
				Expect(os.ReadFile(out)).To(Equal(expected))
			},

			Entry("gzip", "values.csv.gz"),
			Entry("bzip2", "values.csv.bz2"),
			Entry("xz", "values.csv.xz"),
		)

		DescribeTable("explicit methods",
			func(method string, name string) {
				d, err := New(model.DecompressProperties{Method: method})
				Expect(err).ToNot(HaveOccurred())

				out, err := d.Decompress(ctx, fixture(name), model.ActionDownload, fetch)
				Expect(err).ToNot(HaveOccurred())
				Expect(os.ReadFile(out)).To(Equal(expected))
			},

			Entry("gzip", "gzip", "values.csv.gz"),
			Entry("bzip2", "bzip2", "values.csv.bz2"),
			Entry("xz", "xz", "values.csv.xz"),
			Entry("lzma alias", "lzma", "values.csv.xz"),
		)

		It("Should reject unknown actions", func() {
			d, err := New(model.DecompressProperties{})
			Expect(err).ToNot(HaveOccurred())

			_, err = d.Decompress(ctx, fixture("values.csv.gz"), model.Action("refresh"), fetch)
			Expect(err).To(MatchError(model.ErrInvalidAction))
		})

		It("Should fail auto detection for unknown extensions", func() {
			d, err := New(model.DecompressProperties{})
			Expect(err).ToNot(HaveOccurred())

			_, err = d.Decompress(ctx, fixture("values.csv"), model.ActionDownload, fetch)
			Expect(err).To(MatchError(model.ErrUnknownExtension))
			Expect(err.Error()).To(ContainSubstring(`".bz2", ".gz", ".xz"`))
		})

		It("Should skip decompression when the output exists and the file was current", func() {
			d, err := New(model.DecompressProperties{})
			Expect(err).ToNot(HaveOccurred())

			path := fixture("values.csv.gz")
			out, err := d.Decompress(ctx, path, model.ActionDownload, fetch)
			Expect(err).ToNot(HaveOccurred())

			Expect(os.WriteFile(out, []byte("sentinel"), 0644)).To(Succeed())

			again, err := d.Decompress(ctx, path, model.ActionFetch, fetch)
			Expect(err).ToNot(HaveOccurred())
			Expect(again).To(Equal(out))
			Expect(os.ReadFile(out)).To(Equal([]byte("sentinel")))
		})

		It("Should decompress again when the file was downloaded or updated", func() {
			d, err := New(model.DecompressProperties{})
			Expect(err).ToNot(HaveOccurred())

			path := fixture("values.csv.gz")
			out, err := d.Decompress(ctx, path, model.ActionDownload, fetch)
			Expect(err).ToNot(HaveOccurred())

			Expect(os.WriteFile(out, []byte("sentinel"), 0644)).To(Succeed())

			_, err = d.Decompress(ctx, path, model.ActionUpdate, fetch)
			Expect(err).ToNot(HaveOccurred())
			Expect(os.ReadFile(out)).To(Equal(expected))
		})

		It("Should serve cache hits before resolving the method", func() {
			d, err := New(model.DecompressProperties{})
			Expect(err).ToNot(HaveOccurred())

			path := fixture("values.csv")
			Expect(os.WriteFile(path+".decomp", []byte("cached"), 0644)).To(Succeed())

			out, err := d.Decompress(ctx, path, model.ActionFetch, fetch)
			Expect(err).ToNot(HaveOccurred())
			Expect(out).To(Equal(path + ".decomp"))
		})

		It("Should not skip the method check on cache hits for fresh downloads", func() {
			d, err := New(model.DecompressProperties{})
			Expect(err).ToNot(HaveOccurred())

			path := fixture("values.csv")
			Expect(os.WriteFile(path+".decomp", []byte("stale"), 0644)).To(Succeed())

			_, err = d.Decompress(ctx, path, model.ActionDownload, fetch)
			Expect(err).To(MatchError(model.ErrUnknownExtension))
		})

		It("Should not leave partial output behind on failure", func() {
			d, err := New(model.DecompressProperties{Method: model.MethodGzip})
			Expect(err).ToNot(HaveOccurred())

			path := fixture("values.csv")
			_, err = d.Decompress(ctx, path, model.ActionDownload, fetch)
			Expect(err).To(HaveOccurred())

			Expect(path + ".decomp").ToNot(BeAnExistingFile())

			stale, err := filepath.Glob(path + ".decomp-*")
			Expect(err).ToNot(HaveOccurred())
			Expect(stale).To(BeEmpty())
		})

		It("Should stop when the context is cancelled", func() {
			d, err := New(model.DecompressProperties{})
			Expect(err).ToNot(HaveOccurred())

			cancelled, cancel := context.WithCancel(ctx)
			cancel()

			_, err = d.Decompress(cancelled, fixture("values.csv.gz"), model.ActionDownload, fetch)
			Expect(err).To(MatchError(context.Canceled))
		})
	})

	Describe("Process", func() {
		It("Should return a single element slice", func() {
			d, err := New(model.DecompressProperties{})
			Expect(err).ToNot(HaveOccurred())

			path := fixture("values.csv.xz")
			files, err := d.Process(ctx, path, model.ActionDownload, fetch)
			Expect(err).ToNot(HaveOccurred())
			Expect(files).To(Equal([]string{path + ".decomp"}))
		})
	})
})

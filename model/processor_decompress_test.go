// Copyright (c) 2026, The pooch Authors
//
// SPDX-License-Identifier: Apache-2.0

package model

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("DecompressProperties", func() {
	Describe("Validate", func() {
		DescribeTable("validation tests",
			func(method string, errorText string) {
				prop := &DecompressProperties{Method: method}

				err := prop.Validate()

				if errorText != "" {
					Expect(err).To(HaveOccurred())
					Expect(err.Error()).To(ContainSubstring(errorText))
				} else {
					Expect(err).ToNot(HaveOccurred())
				}
			},

			Entry("empty method", "", ""),
			Entry("auto method", "auto", ""),
			Entry("lzma method", "lzma", ""),
			Entry("xz method", "xz", ""),
			Entry("gzip method", "gzip", ""),
			Entry("bzip2 method", "bzip2", ""),

			Entry("unknown method", "zstd", `"zstd"`),
			Entry("uppercase method", "GZIP", `"GZIP"`),
		)
	})

	Describe("ToYamlManifest", func() {
		It("Should round trip via yaml", func() {
			prop := &DecompressProperties{Method: MethodBzip2}

			raw, err := prop.ToYamlManifest()
			Expect(err).ToNot(HaveOccurred())

			parsed, err := NewDecompressPropertiesFromYaml(raw)
			Expect(err).ToNot(HaveOccurred())
			Expect(parsed).To(Equal(prop))
		})

		It("Should omit the default method", func() {
			prop := &DecompressProperties{}

			raw, err := prop.ToYamlManifest()
			Expect(err).ToNot(HaveOccurred())
			Expect(string(raw)).ToNot(ContainSubstring("method"))
		})
	})
})

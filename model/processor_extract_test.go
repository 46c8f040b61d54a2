// Copyright (c) 2026, The pooch Authors
//
// SPDX-License-Identifier: Apache-2.0

package model

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("ExtractProperties", func() {
	Describe("Validate", func() {
		DescribeTable("validation tests",
			func(format string, members []string, errorText string) {
				prop := &ExtractProperties{
					Format:  format,
					Members: members,
				}

				err := prop.Validate()

				if errorText != "" {
					Expect(err).To(HaveOccurred())
					Expect(err.Error()).To(ContainSubstring(errorText))
				} else {
					Expect(err).ToNot(HaveOccurred())
				}
			},

			Entry("valid zip extraction", "zip", nil, ""),
			Entry("valid tar extraction", "tar", nil, ""),
			Entry("valid extraction with members", "zip", []string{"data/a.csv", "data/b.csv"}, ""),

			Entry("empty format", "", nil, "format cannot be empty"),
			Entry("unknown format", "rar", nil, `format "rar" must be one of "zip" or "tar"`),
			Entry("empty member name", "tar", []string{"data/a.csv", ""}, "members cannot contain empty names"),
		)
	})

	Describe("ToYamlManifest", func() {
		It("Should round trip via yaml", func() {
			prop := &ExtractProperties{
				Format:  FormatTar,
				Members: []string{"store.zarr/.zattrs"},
			}

			raw, err := prop.ToYamlManifest()
			Expect(err).ToNot(HaveOccurred())

			parsed, err := NewExtractPropertiesFromYaml(raw)
			Expect(err).ToNot(HaveOccurred())
			Expect(parsed).To(Equal(prop))
		})

		It("Should omit empty members", func() {
			prop := &ExtractProperties{Format: FormatZip}

			raw, err := prop.ToYamlManifest()
			Expect(err).ToNot(HaveOccurred())
			Expect(string(raw)).ToNot(ContainSubstring("members"))
		})
	})
})

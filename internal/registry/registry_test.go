// Copyright (c) 2026, The pooch Authors
//
// SPDX-License-Identifier: Apache-2.0

package registry

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"

	"github.com/Xarthisius/pooch/model"
	"github.com/Xarthisius/pooch/model/modelmocks"
)

func TestRegistry(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Internal/Registry")
}

var _ = Describe("Registry", func() {
	var (
		mockctl  *gomock.Controller
		factory1 *modelmocks.MockUnpackerFactory
		factory2 *modelmocks.MockUnpackerFactory
		factory3 *modelmocks.MockUnpackerFactory
		logger   *modelmocks.MockLogger
	)

	BeforeEach(func() {
		mockctl = gomock.NewController(GinkgoT())
		Clear()
		logger = modelmocks.NewMockLogger(mockctl)

		factory1 = modelmocks.NewMockUnpackerFactory(mockctl)
		factory1.EXPECT().TypeName().Return("extract").AnyTimes()
		factory1.EXPECT().Name().Return("zip").AnyTimes()

		factory2 = modelmocks.NewMockUnpackerFactory(mockctl)
		factory2.EXPECT().TypeName().Return("extract").AnyTimes()
		factory2.EXPECT().Name().Return("tar").AnyTimes()

		factory3 = modelmocks.NewMockUnpackerFactory(mockctl)
		factory3.EXPECT().TypeName().Return("bundle").AnyTimes()
		factory3.EXPECT().Name().Return("cpio").AnyTimes()

		logger.EXPECT().Warn(gomock.Any(), gomock.Any()).AnyTimes()
		logger.EXPECT().Debug(gomock.Any(), gomock.Any()).AnyTimes()
	})

	AfterEach(func() {
		mockctl.Finish()
		Clear()
	})

	Describe("Register", func() {
		It("Should register a provider factory", func() {
			err := Register(factory1)
			Expect(err).ToNot(HaveOccurred())
		})

		It("Should register multiple providers of the same type", func() {
			err := Register(factory1)
			Expect(err).ToNot(HaveOccurred())

			err = Register(factory2)
			Expect(err).ToNot(HaveOccurred())
		})

		It("Should register providers of different types", func() {
			err := Register(factory1)
			Expect(err).ToNot(HaveOccurred())

			err = Register(factory3)
			Expect(err).ToNot(HaveOccurred())
		})

		It("Should fail when registering duplicate provider", func() {
			err := Register(factory1)
			Expect(err).ToNot(HaveOccurred())

			err = Register(factory1)
			Expect(err).To(Equal(model.ErrDuplicateProvider))
		})

		It("Should fail for unsupported plugin types", func() {
			err := Register("not a factory")
			Expect(err).To(MatchError(ContainSubstring("cannot register provider")))
		})
	})

	Describe("MustRegister", func() {
		It("Should register a provider factory", func() {
			Expect(func() {
				MustRegister(factory1)
			}).ToNot(Panic())
		})

		It("Should panic when registration fails", func() {
			MustRegister(factory1)

			Expect(func() {
				MustRegister(factory1)
			}).To(Panic())
		})
	})

	Describe("Clear", func() {
		It("Should remove all registered providers", func() {
			Register(factory1)
			Register(factory2)
			Register(factory3)

			Expect(Types()).To(HaveLen(2))

			Clear()

			Expect(Types()).To(BeEmpty())
		})
	})

	Describe("Types", func() {
		It("Should return empty list when no providers registered", func() {
			Expect(Types()).To(BeEmpty())
		})

		It("Should return sorted list of registered type names", func() {
			Register(factory1)
			Register(factory3)

			Expect(Types()).To(Equal([]string{"bundle", "extract"}))
		})

		It("Should not duplicate type names for multiple providers", func() {
			Register(factory1)
			Register(factory2)

			Expect(Types()).To(Equal([]string{"extract"}))
		})
	})

	Describe("Providers", func() {
		It("Should return empty list for unknown types", func() {
			Expect(Providers("extract")).To(BeEmpty())
		})

		It("Should return sorted provider names for a type", func() {
			Register(factory1)
			Register(factory2)
			Register(factory3)

			Expect(Providers("extract")).To(Equal([]string{"tar", "zip"}))
			Expect(Providers("bundle")).To(Equal([]string{"cpio"}))
		})
	})

	Describe("FindUnpacker", func() {
		It("Should fail when the type is not registered", func() {
			unpacker, err := FindUnpacker("extract", "zip", logger)
			Expect(err).To(MatchError(model.ErrProviderNotFound))
			Expect(unpacker).To(BeNil())
		})

		It("Should fail when the provider is not registered", func() {
			Register(factory1)

			unpacker, err := FindUnpacker("extract", "rar", logger)
			Expect(err).To(MatchError(model.ErrProviderNotFound))
			Expect(unpacker).To(BeNil())
		})

		It("Should construct the unpacker using the factory", func() {
			unpacker := modelmocks.NewMockUnpacker(mockctl)
			factory1.EXPECT().New(logger).Return(unpacker, nil)
			Register(factory1)

			res, err := FindUnpacker("extract", "zip", logger)
			Expect(err).ToNot(HaveOccurred())
			Expect(res).To(Equal(unpacker))
		})
	})
})

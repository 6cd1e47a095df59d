package asset_test

import (
	"time"

	"github.com/frahmantamala/asset-tracker/internal/asset"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Code generation", func() {
	day := time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC)

	Describe("CodePrefix", func() {
		It("should take the first three characters upper-cased", func() {
			Expect(asset.CodePrefix("Laptop")).To(Equal("LAP"))
			Expect(asset.CodePrefix("monitor")).To(Equal("MON"))
		})

		It("should keep short names as-is", func() {
			Expect(asset.CodePrefix("TV")).To(Equal("TV"))
		})

		It("should fall back to XXX for a blank name", func() {
			Expect(asset.CodePrefix("  ")).To(Equal("XXX"))
		})
	})

	Describe("FormatCode", func() {
		It("should render prefix, DDMMYY and a zero-padded sequence", func() {
			Expect(asset.FormatCode("LAP", day, 1)).To(Equal("LAP010524001"))
			Expect(asset.FormatCode("LAP", day, 42)).To(Equal("LAP010524042"))
			Expect(asset.FormatCode("LAP", day, 999)).To(Equal("LAP010524999"))
		})
	})
})

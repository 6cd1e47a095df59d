package postgres_test

import (
	"testing"

	"github.com/frahmantamala/asset-tracker/internal/category"
	categoryPostgres "github.com/frahmantamala/asset-tracker/internal/category/postgres"
	categoryDatamodel "github.com/frahmantamala/asset-tracker/internal/core/datamodel/category"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestCategoryPostgres(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Category Postgres Suite")
}

var _ = Describe("Category Repository", func() {
	var (
		db   *gorm.DB
		repo category.RepositoryAPI
	)

	BeforeEach(func() {
		var err error
		// SQLite in-memory database keeps the repository tests hermetic
		db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
			Logger:         logger.Default.LogMode(logger.Silent),
			TranslateError: true,
		})
		Expect(err).NotTo(HaveOccurred())

		Expect(db.AutoMigrate(&categoryDatamodel.AssetCategory{})).To(Succeed())

		repo = categoryPostgres.NewCategoryRepository(db)
	})

	Describe("Create and GetActive", func() {
		It("should store a category and list it ordered by name", func() {
			Expect(repo.Create(category.NewCategory("Monitor"))).To(Succeed())
			Expect(repo.Create(category.NewCategory("Laptop"))).To(Succeed())

			categories, err := repo.GetActive()
			Expect(err).NotTo(HaveOccurred())
			Expect(categories).To(HaveLen(2))
			Expect(categories[0].Name).To(Equal("Laptop"))
			Expect(categories[1].Name).To(Equal("Monitor"))
		})

		It("should set the generated id on the domain object", func() {
			c := category.NewCategory("Laptop")
			Expect(repo.Create(c)).To(Succeed())
			Expect(c.ID).NotTo(BeZero())
		})

		It("should exclude inactive rows", func() {
			Expect(db.Create(&categoryDatamodel.AssetCategory{Name: "Old Gear", IsActive: false}).Error).To(Succeed())

			categories, err := repo.GetActive()
			Expect(err).NotTo(HaveOccurred())
			Expect(categories).To(BeEmpty())
		})
	})

	Describe("GetActiveByName", func() {
		BeforeEach(func() {
			Expect(repo.Create(category.NewCategory("Laptop"))).To(Succeed())
		})

		It("should match case-insensitively", func() {
			got, err := repo.GetActiveByName("lApToP")
			Expect(err).NotTo(HaveOccurred())
			Expect(got).NotTo(BeNil())
			Expect(got.Name).To(Equal("Laptop"))
		})

		It("should return nil for an absent name", func() {
			got, err := repo.GetActiveByName("Monitor")
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(BeNil())
		})
	})

	Describe("NameByID", func() {
		It("should resolve the name for code prefixing", func() {
			c := category.NewCategory("Laptop")
			Expect(repo.Create(c)).To(Succeed())

			name, found, err := repo.NameByID(c.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(found).To(BeTrue())
			Expect(name).To(Equal("Laptop"))
		})

		It("should report an unknown id without error", func() {
			_, found, err := repo.NameByID(999)
			Expect(err).NotTo(HaveOccurred())
			Expect(found).To(BeFalse())
		})
	})
})

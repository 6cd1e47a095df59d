package category_test

import (
	"errors"
	"log/slog"
	"os"

	internal "github.com/frahmantamala/asset-tracker/internal"
	"github.com/frahmantamala/asset-tracker/internal/category"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

type mockCategoryRepo struct {
	categories   []*category.Category
	activeByName map[string]*category.Category
	createErr    error
	getErr       error
	created      []*category.Category
}

func (m *mockCategoryRepo) GetActive() ([]*category.Category, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.categories, nil
}

func (m *mockCategoryRepo) GetActiveByName(name string) (*category.Category, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.activeByName[name], nil
}

func (m *mockCategoryRepo) Create(c *category.Category) error {
	if m.createErr != nil {
		return m.createErr
	}
	c.ID = int64(len(m.created) + 1)
	m.created = append(m.created, c)
	return nil
}

func (m *mockCategoryRepo) NameByID(id int64) (string, bool, error) {
	for _, c := range m.categories {
		if c.ID == id {
			return c.Name, true, nil
		}
	}
	return "", false, nil
}

var _ = Describe("Category Service", func() {
	var (
		service *category.Service
		repo    *mockCategoryRepo
	)

	testLogger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

	BeforeEach(func() {
		repo = &mockCategoryRepo{
			activeByName: map[string]*category.Category{},
		}
		service = category.NewService(repo, category.NewMatcher(), testLogger)
	})

	Describe("GetActiveCategories", func() {
		It("should return active categories as responses", func() {
			repo.categories = []*category.Category{
				{ID: 1, Name: "Laptop", IsActive: true},
				{ID: 2, Name: "Monitor", IsActive: true},
			}

			result, err := service.GetActiveCategories()

			Expect(err).NotTo(HaveOccurred())
			Expect(result).To(HaveLen(2))
			Expect(result[0].Name).To(Equal("Laptop"))
		})

		It("should propagate repository errors", func() {
			repo.getErr = errors.New("db down")

			_, err := service.GetActiveCategories()

			Expect(err).To(HaveOccurred())
		})
	})

	Describe("AddCategory", func() {
		It("should create a new category and return its id", func() {
			resp, err := service.AddCategory(category.AddCategoryDTO{Name: "  Laptop  "})

			Expect(err).NotTo(HaveOccurred())
			Expect(resp.Name).To(Equal("Laptop"))
			Expect(resp.ID).To(Equal(int64(1)))
			Expect(repo.created).To(HaveLen(1))
			Expect(repo.created[0].IsActive).To(BeTrue())
		})

		It("should reject an empty name", func() {
			_, err := service.AddCategory(category.AddCategoryDTO{Name: "   "})

			Expect(err).To(HaveOccurred())
			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Type).To(Equal(internal.ErrorTypeValidation))
		})

		It("should reject a name that already exists", func() {
			repo.activeByName["Laptop"] = &category.Category{ID: 1, Name: "Laptop", IsActive: true}

			_, err := service.AddCategory(category.AddCategoryDTO{Name: "Laptop"})

			Expect(err).To(Equal(category.ErrCategoryExists))
			Expect(repo.created).To(BeEmpty())
		})
	})

	Describe("CheckDuplicate", func() {
		BeforeEach(func() {
			repo.categories = []*category.Category{
				{ID: 1, Name: "Laptop", IsActive: true},
				{ID: 2, Name: "Laptops", IsActive: true},
			}
		})

		It("should report exact and similar matches without writing anything", func() {
			result, err := service.CheckDuplicate(category.CheckDuplicateDTO{Name: "laptop"})

			Expect(err).NotTo(HaveOccurred())
			Expect(result.HasSimilar).To(BeTrue())
			Expect(repo.created).To(BeEmpty())
		})

		It("should report no matches for an unrelated name", func() {
			result, err := service.CheckDuplicate(category.CheckDuplicateDTO{Name: "Monitor"})

			Expect(err).NotTo(HaveOccurred())
			Expect(result.HasSimilar).To(BeFalse())
		})

		It("should reject an empty name", func() {
			_, err := service.CheckDuplicate(category.CheckDuplicateDTO{Name: ""})

			Expect(err).To(HaveOccurred())
		})
	})
})

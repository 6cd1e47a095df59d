package category_test

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"

	"github.com/frahmantamala/asset-tracker/internal/category"
	categoryPostgres "github.com/frahmantamala/asset-tracker/internal/category/postgres"
	categoryDatamodel "github.com/frahmantamala/asset-tracker/internal/core/datamodel/category"
	"github.com/frahmantamala/asset-tracker/internal/transport"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var _ = Describe("Category Handler Integration", func() {
	var (
		db      *gorm.DB
		repo    category.RepositoryAPI
		service *category.Service
		handler *category.Handler
	)

	BeforeEach(func() {
		slogger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

		var err error
		db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		Expect(err).NotTo(HaveOccurred())

		Expect(db.AutoMigrate(&categoryDatamodel.AssetCategory{})).To(Succeed())

		repo = categoryPostgres.NewCategoryRepository(db)
		service = category.NewService(repo, category.NewMatcher(), slogger)
		handler = category.NewHandler(&transport.BaseHandler{Logger: slogger}, service)

		for _, name := range []string{"Laptop", "Monitor"} {
			Expect(repo.Create(category.NewCategory(name))).To(Succeed())
		}
	})

	It("should handle GET /categories", func() {
		req := httptest.NewRequest(http.MethodGet, "/categories", nil)
		w := httptest.NewRecorder()

		handler.GetCategories(w, req)

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(w.Header().Get("Content-Type")).To(ContainSubstring("application/json"))

		var response []category.CategoryResponse
		Expect(json.NewDecoder(w.Body).Decode(&response)).To(Succeed())
		Expect(response).To(HaveLen(2))
	})

	It("should handle POST /categories/add", func() {
		req := httptest.NewRequest(http.MethodPost, "/categories/add", strings.NewReader(`{"name":"Keyboard"}`))
		w := httptest.NewRecorder()

		handler.AddCategory(w, req)

		Expect(w.Code).To(Equal(http.StatusCreated))

		var response category.AddCategoryResponse
		Expect(json.NewDecoder(w.Body).Decode(&response)).To(Succeed())
		Expect(response.Name).To(Equal("Keyboard"))
		Expect(response.ID).NotTo(BeZero())
	})

	It("should map an exact duplicate to 409", func() {
		req := httptest.NewRequest(http.MethodPost, "/categories/add", strings.NewReader(`{"name":"laptop"}`))
		w := httptest.NewRecorder()

		handler.AddCategory(w, req)

		Expect(w.Code).To(Equal(http.StatusConflict))
	})

	It("should handle POST /categories/check-duplicate", func() {
		req := httptest.NewRequest(http.MethodPost, "/categories/check-duplicate", strings.NewReader(`{"name":"Labtop"}`))
		w := httptest.NewRecorder()

		handler.CheckDuplicate(w, req)

		Expect(w.Code).To(Equal(http.StatusOK))

		var result category.MatchResult
		Expect(json.NewDecoder(w.Body).Decode(&result)).To(Succeed())
		Expect(result.HasSimilar).To(BeTrue())
	})

	It("should reject a malformed body with 400", func() {
		req := httptest.NewRequest(http.MethodPost, "/categories/add", strings.NewReader(`{`))
		w := httptest.NewRecorder()

		handler.AddCategory(w, req)

		Expect(w.Code).To(Equal(http.StatusBadRequest))
	})
})

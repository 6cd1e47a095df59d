package asset_test

import (
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/frahmantamala/asset-tracker/internal/asset"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestAsset(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Asset Suite")
}

// mockAssetRepo tracks calls so transitions can be asserted without a
// database. Transition methods mutate the stored asset the way the real
// repository would.
type mockAssetRepo struct {
	assets    map[string]*asset.Asset
	history   []string
	createErr error

	assignCalls  int
	recoverCalls int
	retireCalls  int
}

func newMockAssetRepo() *mockAssetRepo {
	return &mockAssetRepo{assets: map[string]*asset.Asset{}}
}

func (m *mockAssetRepo) GetByCode(code string) (*asset.Asset, error) {
	a, ok := m.assets[code]
	if !ok {
		return nil, asset.ErrAssetNotFound
	}
	copied := *a
	return &copied, nil
}

func (m *mockAssetRepo) CodeExists(code string) (bool, error) {
	_, ok := m.assets[code]
	return ok, nil
}

func (m *mockAssetRepo) List() ([]asset.ListItem, error) { return nil, nil }
func (m *mockAssetRepo) Count() (int64, error)           { return int64(len(m.assets)), nil }

func (m *mockAssetRepo) Detail(code string) (*asset.Detail, error) {
	a, ok := m.assets[code]
	if !ok {
		return nil, asset.ErrAssetNotFound
	}
	return &asset.Detail{AssetCode: a.AssetCode, Status: a.Status}, nil
}

func (m *mockAssetRepo) Create(a *asset.Asset) error {
	if m.createErr != nil {
		return m.createErr
	}
	if _, ok := m.assets[a.AssetCode]; ok {
		return asset.ErrDuplicateAssetCode
	}
	copied := *a
	m.assets[a.AssetCode] = &copied
	return nil
}

func (m *mockAssetRepo) UpdateDetails(code string, dto asset.CreateAssetDTO, closeRepair bool) error {
	a, ok := m.assets[code]
	if !ok {
		return asset.ErrAssetNotFound
	}
	a.Type = dto.Type
	a.Brand = dto.Brand
	if closeRepair {
		a.Status = asset.StatusInStock
	}
	return nil
}

func (m *mockAssetRepo) Assign(code, employeeID string) error {
	m.assignCalls++
	a := m.assets[code]
	if a.Status != asset.StatusInStock {
		return asset.ErrAssetNotInStock
	}
	a.Status = asset.StatusAssigned
	return nil
}

func (m *mockAssetRepo) Return(code, remarks string) error {
	a := m.assets[code]
	if a.Status != asset.StatusAssigned {
		return asset.ErrAssetNotAssigned
	}
	a.Status = asset.StatusInStock
	m.history = append(m.history, asset.ActionReturn)
	return nil
}

func (m *mockAssetRepo) SendToRepair(code, assigneeID, remarks string) error {
	a := m.assets[code]
	a.Status = asset.StatusRepair
	m.history = append(m.history, asset.ActionRepair)
	return nil
}

func (m *mockAssetRepo) CompleteRepair(code string) error {
	a := m.assets[code]
	if a.Status != asset.StatusRepair {
		return asset.ErrAssetNotInRepair
	}
	a.Status = asset.StatusInStock
	a.Type = "Repaired"
	return nil
}

func (m *mockAssetRepo) MarkMissing(code, remarks string) error {
	a := m.assets[code]
	a.Status = asset.StatusMissing
	m.history = append(m.history, asset.ActionMissing)
	return nil
}

func (m *mockAssetRepo) Recover(code string) error {
	m.recoverCalls++
	a := m.assets[code]
	if a.Status != asset.StatusMissing {
		return asset.ErrAssetNotMissing
	}
	a.Status = asset.StatusInStock
	m.history = append(m.history, asset.ActionRecover)
	return nil
}

func (m *mockAssetRepo) Retire(code, remarks string) error {
	m.retireCalls++
	a := m.assets[code]
	a.Status = asset.StatusRetired
	m.history = append(m.history, asset.ActionRetire)
	return nil
}

func (m *mockAssetRepo) ActiveRepairs() ([]asset.RepairItem, error) { return nil, nil }

type mockDirectory struct {
	active map[string]bool
}

func (m *mockDirectory) ActiveExists(id string) (bool, error) { return m.active[id], nil }

type mockCategories struct {
	names map[int64]string
}

func (m *mockCategories) NameByID(id int64) (string, bool, error) {
	name, ok := m.names[id]
	return name, ok, nil
}

type staticVerifier struct{ accept string }

func (v staticVerifier) Verify(secret string) bool { return secret == v.accept }

var _ = Describe("Asset Service", func() {
	var (
		service    *asset.Service
		repo       *mockAssetRepo
		employees  *mockDirectory
		categories *mockCategories
	)

	testLogger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	fixedDay := time.Date(2024, time.May, 1, 10, 0, 0, 0, time.UTC)

	seedAsset := func(code, status string) {
		repo.assets[code] = &asset.Asset{AssetCode: code, CategoryID: 1, Type: "Laptop", Status: status}
	}

	BeforeEach(func() {
		repo = newMockAssetRepo()
		employees = &mockDirectory{active: map[string]bool{"EMP001": true}}
		categories = &mockCategories{names: map[int64]string{1: "Laptop"}}
		service = asset.NewService(repo, employees, categories, staticVerifier{accept: "s3cret-admin"}, testLogger).
			WithClock(func() time.Time { return fixedDay })
	})

	Describe("CreateOrUpdate", func() {
		It("should generate sequential codes from the category prefix and date", func() {
			first, err := service.CreateOrUpdate(asset.CreateAssetDTO{CategoryID: 1, Type: "Laptop"})
			Expect(err).NotTo(HaveOccurred())
			Expect(first.AssetCode).To(Equal("LAP010524001"))

			second, err := service.CreateOrUpdate(asset.CreateAssetDTO{CategoryID: 1, Type: "Laptop"})
			Expect(err).NotTo(HaveOccurred())
			Expect(second.AssetCode).To(Equal("LAP010524002"))
		})

		It("should fall back to the XXX prefix for an unknown category", func() {
			resp, err := service.CreateOrUpdate(asset.CreateAssetDTO{CategoryID: 42, Type: "Gadget"})

			Expect(err).NotTo(HaveOccurred())
			Expect(resp.AssetCode).To(Equal("XXX010524001"))
		})

		It("should skip a code candidate lost to a concurrent insert", func() {
			repo.assets["LAP010524001"] = &asset.Asset{AssetCode: "LAP010524001", Status: asset.StatusInStock}

			resp, err := service.CreateOrUpdate(asset.CreateAssetDTO{CategoryID: 1, Type: "Laptop"})

			Expect(err).NotTo(HaveOccurred())
			Expect(resp.AssetCode).To(Equal("LAP010524002"))
		})

		It("should update an existing asset in place", func() {
			seedAsset("LAP010524001", asset.StatusInStock)

			resp, err := service.CreateOrUpdate(asset.CreateAssetDTO{
				AssetCode:  "LAP010524001",
				CategoryID: 1,
				Type:       "Laptop",
				Brand:      "Lenovo",
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(resp.Message).To(Equal("Asset updated"))
			Expect(repo.assets["LAP010524001"].Brand).To(Equal("Lenovo"))
		})

		It("should pull an asset under repair back to stock when edited", func() {
			seedAsset("LAP010524001", asset.StatusRepair)

			_, err := service.CreateOrUpdate(asset.CreateAssetDTO{
				AssetCode:  "LAP010524001",
				CategoryID: 1,
				Type:       "Laptop",
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(repo.assets["LAP010524001"].Status).To(Equal(asset.StatusInStock))
		})

		It("should reject a payload without a category", func() {
			_, err := service.CreateOrUpdate(asset.CreateAssetDTO{Type: "Laptop"})

			Expect(err).To(HaveOccurred())
		})
	})

	Describe("Assign", func() {
		It("should assign an in-stock asset to an active employee", func() {
			seedAsset("LAP010524001", asset.StatusInStock)

			resp, err := service.Assign(asset.AssignDTO{AssetCode: "LAP010524001", EmployeeID: "EMP001"})

			Expect(err).NotTo(HaveOccurred())
			Expect(resp.Status).To(Equal(asset.StatusAssigned))
			Expect(repo.assets["LAP010524001"].Status).To(Equal(asset.StatusAssigned))
		})

		It("should report a conflict when the asset is already assigned", func() {
			seedAsset("LAP010524001", asset.StatusAssigned)

			_, err := service.Assign(asset.AssignDTO{AssetCode: "LAP010524001", EmployeeID: "EMP001"})

			Expect(err).To(Equal(asset.ErrAssetAlreadyAssigned))
		})

		It("should report a conflict when the asset is not in stock", func() {
			seedAsset("LAP010524001", asset.StatusRepair)

			_, err := service.Assign(asset.AssignDTO{AssetCode: "LAP010524001", EmployeeID: "EMP001"})

			Expect(err).To(Equal(asset.ErrAssetNotInStock))
		})

		It("should report not found for an unknown asset", func() {
			_, err := service.Assign(asset.AssignDTO{AssetCode: "NOPE", EmployeeID: "EMP001"})

			Expect(err).To(Equal(asset.ErrAssetNotFound))
		})

		It("should refuse an inactive or unknown employee", func() {
			seedAsset("LAP010524001", asset.StatusInStock)

			_, err := service.Assign(asset.AssignDTO{AssetCode: "LAP010524001", EmployeeID: "EMP999"})

			Expect(err).To(Equal(asset.ErrEmployeeNotFound))
			Expect(repo.assignCalls).To(BeZero())
		})
	})

	Describe("Return", func() {
		It("should return an assigned asset to stock", func() {
			seedAsset("LAP010524001", asset.StatusAssigned)

			resp, err := service.Return(asset.ReturnDTO{AssetCode: "LAP010524001"})

			Expect(err).NotTo(HaveOccurred())
			Expect(resp.Status).To(Equal(asset.StatusInStock))
			Expect(repo.history).To(ContainElement(asset.ActionReturn))
		})

		It("should report a conflict when the asset is not assigned", func() {
			seedAsset("LAP010524001", asset.StatusInStock)

			_, err := service.Return(asset.ReturnDTO{AssetCode: "LAP010524001"})

			Expect(err).To(Equal(asset.ErrAssetNotAssigned))
		})
	})

	Describe("SendToRepair", func() {
		It("should move an assigned asset to repair", func() {
			seedAsset("LAP010524001", asset.StatusAssigned)

			resp, err := service.SendToRepair(asset.RepairDTO{AssetCode: "LAP010524001", RepairEmployeeID: "EMP001"})

			Expect(err).NotTo(HaveOccurred())
			Expect(resp.Status).To(Equal(asset.StatusRepair))
		})

		It("should refuse a retired asset", func() {
			seedAsset("LAP010524001", asset.StatusRetired)

			_, err := service.SendToRepair(asset.RepairDTO{AssetCode: "LAP010524001", RepairEmployeeID: "EMP001"})

			Expect(err).To(Equal(asset.ErrAssetRetired))
		})
	})

	Describe("CompleteRepair", func() {
		It("should return the asset to stock and mark it repaired", func() {
			seedAsset("LAP010524001", asset.StatusRepair)

			resp, err := service.CompleteRepair("LAP010524001")

			Expect(err).NotTo(HaveOccurred())
			Expect(resp.Status).To(Equal(asset.StatusInStock))
			Expect(repo.assets["LAP010524001"].Type).To(Equal("Repaired"))
		})

		It("should report a conflict when the asset is not under repair", func() {
			seedAsset("LAP010524001", asset.StatusInStock)

			_, err := service.CompleteRepair("LAP010524001")

			Expect(err).To(Equal(asset.ErrAssetNotInRepair))
		})
	})

	Describe("MarkMissing and RecoverMissing", func() {
		It("should mark an assigned asset missing", func() {
			seedAsset("LAP010524001", asset.StatusAssigned)

			resp, err := service.MarkMissing(asset.MissingDTO{AssetCode: "LAP010524001"})

			Expect(err).NotTo(HaveOccurred())
			Expect(resp.Status).To(Equal(asset.StatusMissing))
		})

		It("should refuse to mark a retired asset missing", func() {
			seedAsset("LAP010524001", asset.StatusRetired)

			_, err := service.MarkMissing(asset.MissingDTO{AssetCode: "LAP010524001"})

			Expect(err).To(Equal(asset.ErrAssetRetired))
		})

		It("should recover a missing asset and record the transition", func() {
			seedAsset("LAP010524001", asset.StatusMissing)

			resp, err := service.RecoverMissing("LAP010524001")

			Expect(err).NotTo(HaveOccurred())
			Expect(resp.Status).To(Equal(asset.StatusInStock))
			Expect(repo.history).To(ContainElement(asset.ActionRecover))
		})

		It("should refuse to recover an asset that is not missing", func() {
			seedAsset("LAP010524001", asset.StatusInStock)

			_, err := service.RecoverMissing("LAP010524001")

			Expect(err).To(Equal(asset.ErrAssetNotMissing))
			Expect(repo.recoverCalls).To(BeZero())
		})
	})

	Describe("Retire", func() {
		It("should retire an asset with the correct secret", func() {
			seedAsset("LAP010524001", asset.StatusInStock)

			resp, err := service.Retire(asset.RetireDTO{AssetCode: "LAP010524001", Secret: "s3cret-admin"})

			Expect(err).NotTo(HaveOccurred())
			Expect(resp.Status).To(Equal(asset.StatusRetired))
		})

		It("should reject a wrong secret without touching the asset", func() {
			seedAsset("LAP010524001", asset.StatusInStock)

			_, err := service.Retire(asset.RetireDTO{AssetCode: "LAP010524001", Secret: "wrong"})

			Expect(err).To(Equal(asset.ErrInvalidAdminSecret))
			Expect(repo.retireCalls).To(BeZero())
			Expect(repo.assets["LAP010524001"].Status).To(Equal(asset.StatusInStock))
		})

		It("should refuse to retire twice", func() {
			seedAsset("LAP010524001", asset.StatusRetired)

			_, err := service.Retire(asset.RetireDTO{AssetCode: "LAP010524001", Secret: "s3cret-admin"})

			Expect(err).To(Equal(asset.ErrAssetRetired))
		})
	})

	Describe("error propagation", func() {
		It("should surface unexpected repository errors unchanged", func() {
			repo.createErr = errors.New("db down")

			_, err := service.CreateOrUpdate(asset.CreateAssetDTO{CategoryID: 1, Type: "Laptop"})

			Expect(err).To(MatchError("db down"))
		})
	})
})

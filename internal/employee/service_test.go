package employee_test

import (
	"log/slog"
	"os"
	"testing"
	"time"

	internal "github.com/frahmantamala/asset-tracker/internal"
	"github.com/frahmantamala/asset-tracker/internal/employee"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestEmployee(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Employee Suite")
}

type mockEmployeeRepo struct {
	employees    map[string]*employee.Employee
	activeAssets map[string][]employee.ActiveAsset
	created      []*employee.Employee
	deactivated  []string
}

func newMockEmployeeRepo() *mockEmployeeRepo {
	return &mockEmployeeRepo{
		employees:    map[string]*employee.Employee{},
		activeAssets: map[string][]employee.ActiveAsset{},
	}
}

func (m *mockEmployeeRepo) GetActive() ([]*employee.Employee, error) {
	var out []*employee.Employee
	for _, e := range m.employees {
		if e.IsActive() {
			out = append(out, e)
		}
	}
	return out, nil
}

func (m *mockEmployeeRepo) GetByID(id string) (*employee.Employee, error) {
	e, ok := m.employees[id]
	if !ok {
		return nil, employee.ErrEmployeeNotFound
	}
	return e, nil
}

func (m *mockEmployeeRepo) Create(e *employee.Employee) error {
	if _, ok := m.employees[e.EmployeeID]; ok {
		return employee.ErrEmployeeExists
	}
	m.employees[e.EmployeeID] = e
	m.created = append(m.created, e)
	return nil
}

func (m *mockEmployeeRepo) Deactivate(id string) error {
	e, ok := m.employees[id]
	if !ok {
		return employee.ErrEmployeeNotFound
	}
	if len(m.activeAssets[id]) > 0 {
		return employee.ErrEmployeeHasAssets
	}
	e.Status = employee.StatusInactive
	m.deactivated = append(m.deactivated, id)
	return nil
}

func (m *mockEmployeeRepo) ActiveAssets(id string) ([]employee.ActiveAsset, error) {
	return m.activeAssets[id], nil
}

func (m *mockEmployeeRepo) ActiveExists(id string) (bool, error) {
	e, ok := m.employees[id]
	return ok && e.IsActive(), nil
}

var _ = Describe("Employee Service", func() {
	var (
		service *employee.Service
		repo    *mockEmployeeRepo
	)

	testLogger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

	BeforeEach(func() {
		repo = newMockEmployeeRepo()
		service = employee.NewService(repo, testLogger)
	})

	Describe("AddEmployee", func() {
		It("should create an active employee", func() {
			resp, err := service.AddEmployee(employee.AddEmployeeDTO{
				EmployeeID: "EMP001",
				Name:       "Jordan Lee",
				Email:      "jordan.lee@example.com",
				Location:   "Jakarta",
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(resp.EmployeeID).To(Equal("EMP001"))
			Expect(repo.employees["EMP001"].Status).To(Equal(employee.StatusActive))
		})

		It("should reject a duplicate employee id", func() {
			repo.employees["EMP001"] = &employee.Employee{EmployeeID: "EMP001", Status: employee.StatusActive}

			_, err := service.AddEmployee(employee.AddEmployeeDTO{
				EmployeeID: "EMP001",
				Name:       "Jordan Lee",
				Email:      "jordan.lee@example.com",
			})

			Expect(err).To(Equal(employee.ErrEmployeeExists))
		})

		It("should reject a malformed email", func() {
			_, err := service.AddEmployee(employee.AddEmployeeDTO{
				EmployeeID: "EMP002",
				Name:       "Sam Ortiz",
				Email:      "not-an-email",
			})

			Expect(err).To(HaveOccurred())
			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Type).To(Equal(internal.ErrorTypeValidation))
		})
	})

	Describe("Deactivate", func() {
		BeforeEach(func() {
			repo.employees["EMP001"] = &employee.Employee{EmployeeID: "EMP001", Status: employee.StatusActive}
		})

		It("should deactivate an employee with no active assets", func() {
			resp, err := service.Deactivate(employee.DeactivateDTO{EmployeeID: "EMP001"})

			Expect(err).NotTo(HaveOccurred())
			Expect(resp.Status).To(Equal(employee.StatusInactive))
			Expect(repo.employees["EMP001"].IsActive()).To(BeFalse())
		})

		It("should refuse while the employee still holds assets", func() {
			repo.activeAssets["EMP001"] = []employee.ActiveAsset{
				{AssetCode: "LAP010524001", AssignedDate: time.Now()},
			}

			_, err := service.Deactivate(employee.DeactivateDTO{EmployeeID: "EMP001"})

			Expect(err).To(Equal(employee.ErrEmployeeHasAssets))
			Expect(repo.employees["EMP001"].IsActive()).To(BeTrue())
		})

		It("should report not found for an unknown employee", func() {
			_, err := service.Deactivate(employee.DeactivateDTO{EmployeeID: "EMP999"})

			Expect(err).To(Equal(employee.ErrEmployeeNotFound))
		})
	})

	Describe("ActiveAssets", func() {
		It("should list the assets an employee currently holds", func() {
			repo.employees["EMP001"] = &employee.Employee{EmployeeID: "EMP001", Status: employee.StatusActive}
			repo.activeAssets["EMP001"] = []employee.ActiveAsset{
				{AssetCode: "LAP010524001", Type: "Laptop", AssignedDate: time.Now()},
			}

			resp, err := service.ActiveAssets("EMP001")

			Expect(err).NotTo(HaveOccurred())
			Expect(resp.ActiveAssets).To(Equal(1))
			Expect(resp.Assets).To(HaveLen(1))
			Expect(resp.Assets[0].AssetCode).To(Equal("LAP010524001"))
		})

		It("should report not found for an unknown employee", func() {
			_, err := service.ActiveAssets("EMP999")

			Expect(err).To(Equal(employee.ErrEmployeeNotFound))
		})
	})
})
